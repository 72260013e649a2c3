package port

import (
	"context"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

// EventStore persists the append-only event log per order.
type EventStore interface {
	// Append stores the event. Appending an event id that was already
	// stored is a no-op.
	Append(ctx context.Context, ev domain.OrderEvent) error
	// Stream returns every stored event for the order ordered by ts_event.
	Stream(ctx context.Context, clientOrderID domain.ClientOrderID) ([]domain.OrderEvent, error)
}

// EventPublisher fans applied events out to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.OrderEvent) error
	Close() error
}
