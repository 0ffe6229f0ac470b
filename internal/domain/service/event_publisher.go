package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event published for async
// consumers (fulfillment tooling, mail, analytics).
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`           // "order.placed", "order.paid", "order.cancelled"
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	Total       int64  `json:"total"`
	Method      string `json:"method"`
}

// Order event types.
const (
	OrderEventPlaced    = "order.placed"
	OrderEventPaid      = "order.paid"
	OrderEventCancelled = "order.cancelled"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
