// Package events publishes order lifecycle events to Kafka. Publishing is
// best effort: workflows log failures instead of failing the request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

const Topic = "order-events"

type OrderEvent struct {
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	OrderNumber    int       `json:"order_number"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalAmount    string    `json:"total_amount"`
	OccurredAt     time.Time `json:"occurred_at"`
}

const (
	TypeOrderCreated       = "ORDER_CREATED"
	TypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers ...string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, newOrderEvent(TypeOrderCreated, order, ""))
}

func (p *Producer) PublishOrderStatusChanged(ctx context.Context, order *domain.Order, previous domain.OrderStatus) error {
	return p.publish(ctx, newOrderEvent(TypeOrderStatusChanged, order, previous))
}

func (p *Producer) publish(ctx context.Context, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write order event: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func newOrderEvent(eventType string, order *domain.Order, previous domain.OrderStatus) OrderEvent {
	return OrderEvent{
		EventID:        uuid.New().String(),
		Type:           eventType,
		OrderID:        order.ID,
		OrderNumber:    order.Number,
		Status:         order.Status.String(),
		PreviousStatus: previous.String(),
		TotalAmount:    order.Total().String(),
		OccurredAt:     time.Now(),
	}
}

// NopPublisher satisfies the publisher contract when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, *domain.Order) error {
	return nil
}

func (NopPublisher) PublishOrderStatusChanged(context.Context, *domain.Order, domain.OrderStatus) error {
	return nil
}
