package checkout

import (
	"context"
	"errors"
	"strconv"

	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/store"
)

// Request is a cart snapshot plus contact and shipping details. Prices are
// never taken from the client; the orchestrator recomputes every line from
// the live catalog.
type Request struct {
	UserID          int64
	CustomerEmail   string
	CustomerName    string
	ShippingAddress string
	Items           []LineRequest
}

type LineRequest struct {
	ProductID int64
	Quantity  int
}

// Result is the slice of the created order the client needs.
type Result struct {
	Order *models.Order
}

type Service interface {
	Checkout(ctx context.Context, req *Request) (*Result, error)
}

type ServiceImpl struct {
	store     store.Store
	publisher events.Publisher
	logger    *logger.Logger
}

func NewService(st store.Store, pub events.Publisher, log *logger.Logger) *ServiceImpl {
	return &ServiceImpl{store: st, publisher: pub, logger: log}
}

// Checkout validates every line against the catalog, recomputes the total
// from current prices, and persists the order with its items atomically.
// Any validation failure aborts before anything is written; a persistence
// failure leaves the caller's cart untouched so retry is safe. The cart is
// cleared only on full success.
func (s *ServiceImpl) Checkout(ctx context.Context, req *Request) (*Result, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total int64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.store.GetProduct(ctx, line.ProductID)
		if err != nil {
			// No partial order: one missing line rejects the whole request.
			// A store failure is not a missing product; the client must not
			// be told the line is invalid when the lookup itself broke.
			if errors.Is(err, store.ErrNotFound) {
				return nil, &ProductNotFoundError{ProductID: line.ProductID}
			}
			s.logger.Error("catalog lookup failed for product %d: %v", line.ProductID, err)
			return nil, ErrOrderCreationFailed
		}
		if !product.Available {
			return nil, &ProductUnavailableError{ProductID: line.ProductID}
		}

		total += product.Price * int64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     strconv.FormatInt(product.Price, 10),
		})
	}

	order := &models.Order{
		UserID:          req.UserID,
		Status:          models.OrderStatusConfirmed,
		TotalAmount:     total,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
	}
	if err := s.store.CreateOrder(ctx, order, items); err != nil {
		s.logger.Error("order write failed for user %d: %v", req.UserID, err)
		return nil, ErrOrderCreationFailed
	}

	// The whole cart goes, not just the purchased lines.
	if err := s.store.ClearCart(ctx, req.UserID); err != nil {
		s.logger.Error("failed to clear cart for user %d after order %d: %v", req.UserID, order.ID, err)
	}

	// Best-effort: the buyer never waits on the broker.
	if err := s.publisher.OrderCreated(ctx, order.ID, order.UserID, order.TotalAmount); err != nil {
		s.logger.Error("failed to publish order.created for order %d: %v", order.ID, err)
	}

	return &Result{Order: order}, nil
}
