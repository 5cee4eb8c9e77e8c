package models

import "time"

// CartLine is one (product, quantity) entry in an authenticated user's
// server-side cart. At most one line exists per product; adding an existing
// product increments the quantity instead of duplicating the line.
// Anonymous carts live client-side and never reach this table.
type CartLine struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userId" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID int64     `json:"productId" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
