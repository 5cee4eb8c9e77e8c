package models

import "time"

// WishlistItem is unique per (userId, productId); re-adding returns the
// existing row.
type WishlistItem struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userId" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID int64     `json:"productId" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
