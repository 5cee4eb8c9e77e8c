package processors

import (
	"fmt"

	"storefront/internal/events"
	"storefront/internal/logger"
)

// OrderProcessor handles order events off the request path. Today that is
// confirmation record-keeping; notification delivery hangs off the same hook.
type OrderProcessor struct {
	logger *logger.Logger
}

func NewOrderProcessor(logger *logger.Logger) *OrderProcessor {
	return &OrderProcessor{logger: logger}
}

func (p *OrderProcessor) Process(event events.Event) error {
	switch event.Type {
	case events.TypeOrderCreated:
		p.logger.Info("Order %d confirmed for user %d, total %d", event.OrderID, event.UserID, event.Total)
		return nil
	default:
		return fmt.Errorf("unknown event type: %s", event.Type)
	}
}
