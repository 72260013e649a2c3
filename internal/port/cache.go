package port

import (
	"context"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

// StateCache holds the latest materialized order state keyed by client
// order id.
type StateCache interface {
	SetOrder(ctx context.Context, o *domain.Order) error
	// GetOrder returns (nil, nil) on a cache miss.
	GetOrder(ctx context.Context, clientOrderID domain.ClientOrderID) (*domain.Order, error)
}
