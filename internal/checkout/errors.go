package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrOrderCreationFailed = errors.New("failed to create order")
)

// ProductNotFoundError names the line that sank the whole checkout.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// ProductUnavailableError rejects lines whose product is displayed but not
// purchasable; its price is treated as undetermined.
type ProductUnavailableError struct {
	ProductID int64
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %d is not available for purchase", e.ProductID)
}
