package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var ErrOrderNotFound = errors.New("order not found")

// Engine routes incoming order events through the lifecycle state machine,
// appends accepted events to the store, refreshes the state cache and fans
// events out to the publisher.
type Engine struct {
	store     port.EventStore
	cache     port.StateCache
	publisher port.EventPublisher
	log       *zap.Logger

	mu     sync.Mutex
	orders map[domain.ClientOrderID]domain.Order
}

func NewEngine(store port.EventStore, cache port.StateCache, publisher port.EventPublisher, log *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		cache:     cache,
		publisher: publisher,
		log:       log,
		orders:    make(map[domain.ClientOrderID]domain.Order),
	}
}

// Process applies one event to its order and persists the result. The first
// event for an order must be OrderInitialized; every later event is folded
// through the state machine, so an event the machine refuses leaves both the
// in-memory state and the store untouched.
func (e *Engine) Process(ctx context.Context, ev domain.OrderEvent) (domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := ev.GetClientOrderID()
	cur, ok := e.orders[id]
	if !ok {
		restored, found, err := e.rehydrate(ctx, id)
		if err != nil {
			return domain.Order{}, err
		}
		cur, ok = restored, found
	}

	var next domain.Order
	if !ok {
		init, isInit := ev.(domain.OrderInitialized)
		if !isInit {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		o, err := domain.NewOrder(init)
		if err != nil {
			return domain.Order{}, err
		}
		next = o
	} else {
		o, err := cur.Apply(ev)
		if err != nil {
			e.log.Warn("event refused",
				zap.String("client_order_id", string(id)),
				zap.String("event_type", ev.EventType()),
				zap.Error(err))
			return domain.Order{}, err
		}
		// Apply folds duplicates and terminal reconciliation noise into the
		// unchanged order. Re-appending or re-publishing those would hand
		// downstream consumers the same event twice.
		if o.EventCount == cur.EventCount {
			e.log.Debug("event absorbed",
				zap.String("client_order_id", string(id)),
				zap.String("event_type", ev.EventType()))
			return o, nil
		}
		next = o
	}

	if e.store != nil {
		if err := e.store.Append(ctx, ev); err != nil {
			return domain.Order{}, err
		}
	}
	e.orders[id] = next

	if e.cache != nil {
		if err := e.cache.SetOrder(ctx, &next); err != nil {
			e.log.Warn("cache order state", zap.String("client_order_id", string(id)), zap.Error(err))
		}
	}
	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, ev); err != nil {
			e.log.Warn("publish order event", zap.String("client_order_id", string(id)), zap.Error(err))
		}
	}

	e.log.Info("event applied",
		zap.String("client_order_id", string(id)),
		zap.String("event_type", ev.EventType()),
		zap.String("status", string(next.Status)))
	return next, nil
}

// GetOrder returns the current state of an order, checking memory, then the
// cache, then a replay of the stored event stream.
func (e *Engine) GetOrder(ctx context.Context, id domain.ClientOrderID) (domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if o, ok := e.orders[id]; ok {
		return o, nil
	}
	if e.cache != nil {
		o, err := e.cache.GetOrder(ctx, id)
		if err != nil {
			e.log.Warn("read order cache", zap.String("client_order_id", string(id)), zap.Error(err))
		} else if o != nil {
			e.orders[id] = *o
			return *o, nil
		}
	}
	o, ok, err := e.rehydrate(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	e.orders[id] = o
	return o, nil
}

// History returns the stored event stream for an order.
func (e *Engine) History(ctx context.Context, id domain.ClientOrderID) ([]domain.OrderEvent, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	events, err := e.store.Stream(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return events, nil
}

// Replay rebuilds an order from its stored event stream, discarding any
// cached state. Used for reconciliation after a venue report divergence.
func (e *Engine) Replay(ctx context.Context, id domain.ClientOrderID) (domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, ok, err := e.rehydrate(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	e.orders[id] = o
	if e.cache != nil {
		if err := e.cache.SetOrder(ctx, &o); err != nil {
			e.log.Warn("cache order state", zap.String("client_order_id", string(id)), zap.Error(err))
		}
	}
	e.log.Info("order replayed",
		zap.String("client_order_id", string(id)),
		zap.Int("events", int(o.EventCount)),
		zap.String("status", string(o.Status)))
	return o, nil
}

// rehydrate folds the stored stream for an order; ok is false when the store
// holds no events for it. Caller holds e.mu.
func (e *Engine) rehydrate(ctx context.Context, id domain.ClientOrderID) (domain.Order, bool, error) {
	if e.store == nil {
		return domain.Order{}, false, nil
	}
	events, err := e.store.Stream(ctx, id)
	if err != nil {
		return domain.Order{}, false, err
	}
	if len(events) == 0 {
		return domain.Order{}, false, nil
	}
	o, err := domain.Replay(events)
	if err != nil {
		return domain.Order{}, false, err
	}
	return o, true, nil
}
