package in_memory

import (
	"context"
	"sync"

	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher collects published events in memory; the fallback when no broker
// is configured, and an inspection point for tests.
type Publisher struct {
	mu        sync.Mutex
	published []domain.OrderEvent
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(ctx context.Context, ev domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, ev)
	return nil
}

func (p *Publisher) Close() error { return nil }

func (p *Publisher) Published() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]domain.OrderEvent, len(p.published))
	copy(res, p.published)
	return res
}
