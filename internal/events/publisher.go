package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	Topic            = "order-events"
	TypeOrderCreated = "order.created"
)

// Event is the envelope written to the order-events topic.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Total     int64     `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	OrderCreated(ctx context.Context, orderID, userID, total int64) error
	Close() error
}

// KafkaPublisher writes order events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, orderID, userID, total int64) error {
	event := Event{
		ID:        uuid.New().String(),
		Type:      TypeOrderCreated,
		OrderID:   orderID,
		UserID:    userID,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, int64, int64, int64) error { return nil }
func (NopPublisher) Close() error                                            { return nil }
