package models

import "time"

// Product is a catalog entry. Prices are whole currency units.
// Products are seeded at startup and never mutated afterwards;
// Available == false means the product is displayed but not purchasable.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"index;not null"`
	Description string    `json:"description"`
	Price       int64     `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"index"`
	ImageURL    string    `json:"imageUrl" gorm:"size:1024"`
	Featured    bool      `json:"featured" gorm:"index"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "all"
