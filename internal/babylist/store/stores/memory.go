package stores

import (
	"context"
	"sync"

	"babylist/internal/babylist/models"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	byLocate map[string]models.Store
}

func NewInMemoryStore(stores ...models.Store) *InMemoryStore {
	s := &InMemoryStore{byLocate: make(map[string]models.Store, len(stores))}
	for _, store := range stores {
		s.byLocate[store.LocateID] = store
	}
	return s
}

func (s *InMemoryStore) FindByLocateID(_ context.Context, locateID string) (*models.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	store, ok := s.byLocate[locateID]
	if !ok {
		return nil, nil
	}
	return &store, nil
}
