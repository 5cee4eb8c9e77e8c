package store

import (
	"context"
	"errors"

	"storefront/internal/models"
)

var (
	// ErrNotFound covers missing rows and rows the caller does not own.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned by CreateUser for a duplicate email; the
	// existing user's record is left untouched.
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the persistence contract shared by the in-memory and GORM
// implementations. Both must honor the same pre/post-conditions, notably the
// all-or-nothing order write.
type Store interface {
	// Products. Category "all" or "" means no filter. Unavailable products
	// are still returned; purchasability is the caller's concern.
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error

	// Users.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// Orders. CreateOrder persists the order row and all item rows
	// atomically; on error no rows are visible to subsequent reads.
	// GetOrderForUser treats an order owned by another user as ErrNotFound.
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
	GetOrderForUser(ctx context.Context, orderID, userID int64) (*models.Order, error)

	// Wishlist. Add is idempotent and returns the existing row on a repeat.
	// Toggle is atomic: present -> removed, absent -> added.
	AddWishlistItem(ctx context.Context, userID, productID int64) (*models.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, userID, productID int64) error
	ToggleWishlistItem(ctx context.Context, userID, productID int64) (added bool, err error)
	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	HasWishlistItem(ctx context.Context, userID, productID int64) (bool, error)

	// Cart. AddCartLine merges quantities: at most one line per product.
	GetCart(ctx context.Context, userID int64) ([]models.CartLine, error)
	AddCartLine(ctx context.Context, userID, productID int64, quantity int) (*models.CartLine, error)
	SetCartLineQuantity(ctx context.Context, userID, productID int64, quantity int) (*models.CartLine, error)
	RemoveCartLine(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}
