package reservation

import (
	"context"
	"sync"
	"time"

	"babylist/internal/babylist/models"
)

// Order is one registry line bought at a point in time.
type Order struct {
	RegistryID string
	Line       models.LineRef
	PlacedAt   time.Time
}

// InMemoryStore keeps orders in memory for local runs and tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Record(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

func (s *InMemoryStore) ReservedLines(_ context.Context, registryID string, since time.Time) ([]models.LineRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var refs []models.LineRef
	for _, o := range s.orders {
		if o.RegistryID == registryID && o.PlacedAt.After(since) {
			refs = append(refs, o.Line)
		}
	}
	return refs, nil
}
