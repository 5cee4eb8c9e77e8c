package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type Order struct {
	ID              int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          int64       `json:"userId" gorm:"index;not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	TotalAmount     int64       `json:"totalAmount" gorm:"not null"`
	CustomerEmail   string      `json:"customerEmail" gorm:"not null"`
	CustomerName    string      `json:"customerName" gorm:"not null"`
	ShippingAddress string      `json:"shippingAddress" gorm:"not null"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem.Price is a decimal-string snapshot of the product's unit price
// at checkout time. Orders stay historically accurate when catalog prices
// change later.
type OrderItem struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `json:"orderId" gorm:"index;not null"`
	ProductID int64     `json:"productId" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     string    `json:"price" gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `json:"createdAt"`
}
