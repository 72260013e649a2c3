package in_memory

import (
	"context"
	"sort"
	"sync"

	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var _ port.EventStore = (*MemoryStore)(nil)

// MemoryStore is an in-process event log used when no database is configured
// and by tests.
type MemoryStore struct {
	mu     sync.Mutex
	events map[domain.ClientOrderID][]domain.OrderEvent
	seen   map[domain.UUID4]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[domain.ClientOrderID][]domain.OrderEvent),
		seen:   make(map[domain.UUID4]struct{}),
	}
}

func (s *MemoryStore) Append(ctx context.Context, ev domain.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[ev.GetEventID()]; ok {
		return nil
	}
	s.seen[ev.GetEventID()] = struct{}{}
	s.events[ev.GetClientOrderID()] = append(s.events[ev.GetClientOrderID()], ev)
	return nil
}

func (s *MemoryStore) Stream(ctx context.Context, clientOrderID domain.ClientOrderID) ([]domain.OrderEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.events[clientOrderID]
	res := make([]domain.OrderEvent, len(src))
	copy(res, src)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].GetTsEvent() != res[j].GetTsEvent() {
			return res[i].GetTsEvent() < res[j].GetTsEvent()
		}
		return res[i].GetTsInit() < res[j].GetTsInit()
	})
	return res, nil
}

func (s *MemoryStore) Close(ctx context.Context) {}
