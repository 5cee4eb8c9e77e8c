package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/auth"
	"storefront/internal/logger"
	"storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     auth.Service
	sessions *session.Manager
	logger   *logger.Logger
}

func NewAuthHandler(svc auth.Service, sessions *session.Manager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     svc,
		sessions: sessions,
		logger:   logger,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &auth.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			respondError(c, http.StatusBadRequest, "email already registered")
			return
		}
		h.logger.Error("registration failed: %v", err)
		respondError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	if err := h.sessions.Issue(c.Writer, c.Request, user.ID); err != nil {
		h.logger.Error("failed to issue session for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("login failed: %v", err)
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	if err := h.sessions.Issue(c.Writer, c.Request, user.ID); err != nil {
		h.logger.Error("failed to issue session for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logger.Error("failed to clear session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		h.logger.Error("failed to resolve user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
