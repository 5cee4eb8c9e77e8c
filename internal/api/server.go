package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/auth"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/session"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, st store.Store,
	authSvc auth.Service, checkoutSvc checkout.Service, sessions *session.Manager) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Session(sessions))

	// Initialize handlers
	productHandler := handlers.NewProductHandler(st, logger)
	authHandler := handlers.NewAuthHandler(authSvc, sessions, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, logger)
	orderHandler := handlers.NewOrderHandler(st, logger)
	wishlistHandler := handlers.NewWishlistHandler(st, logger)
	cartHandler := handlers.NewCartHandler(st, logger)

	// Routes
	api := router.Group("/api")
	{
		// Products
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/featured", productHandler.Featured)
			products.GET("/:id", productHandler.Get)
		}

		// Authentication
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authHandler.Me)
		}

		// Checkout
		api.POST("/checkout", middleware.RequireAuth(), checkoutHandler.Checkout)

		// Orders
		orders := api.Group("/orders", middleware.RequireAuth())
		{
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
		}

		// Wishlist
		wishlist := api.Group("/wishlist", middleware.RequireAuth())
		{
			wishlist.GET("", wishlistHandler.List)
			wishlist.POST("", wishlistHandler.Add)
			wishlist.POST("/toggle", wishlistHandler.Toggle)
			wishlist.DELETE("/:productId", wishlistHandler.Remove)
		}

		// Cart
		cart := api.Group("/cart", middleware.RequireAuth())
		{
			cart.GET("", cartHandler.Get)
			cart.POST("/items", cartHandler.Add)
			cart.PUT("/items/:productId", cartHandler.Update)
			cart.DELETE("/items/:productId", cartHandler.Remove)
			cart.DELETE("", cartHandler.Clear)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(s.config.AllowedOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the Gin router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
