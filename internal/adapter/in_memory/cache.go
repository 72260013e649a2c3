package in_memory

import (
	"context"
	"sync"

	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

type Cache struct {
	mu    sync.Mutex
	store map[domain.ClientOrderID]*domain.Order
}

var _ port.StateCache = (*Cache)(nil)

func NewCache() *Cache {
	return &Cache{store: make(map[domain.ClientOrderID]*domain.Order)}
}

func (c *Cache) SetOrder(ctx context.Context, o *domain.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy := *o
	c.store[o.ClientOrderID] = &copy
	return nil
}

func (c *Cache) GetOrder(ctx context.Context, clientOrderID domain.ClientOrderID) (*domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.store[clientOrderID]
	if !ok {
		return nil, nil
	}
	copy := *o
	return &copy, nil
}
