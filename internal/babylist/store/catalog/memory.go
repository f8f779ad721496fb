package catalog

import (
	"context"
	"slices"
	"sync"

	"babylist/internal/babylist/models"
)

// InMemoryStore is a catalog for local runs and tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]models.CatalogEntry
}

func NewInMemoryStore(entries ...models.CatalogEntry) *InMemoryStore {
	s := &InMemoryStore{entries: make(map[string]models.CatalogEntry, len(entries))}
	for _, e := range entries {
		s.entries[e.SKU] = e
	}
	return s
}

// Put adds or replaces an entry.
func (s *InMemoryStore) Put(entry models.CatalogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.SKU] = entry
}

func (s *InMemoryStore) BulkFetch(_ context.Context, skus []string) (map[string]models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]models.CatalogEntry, len(skus))
	for _, sku := range skus {
		if e, ok := s.entries[sku]; ok {
			e.Categories = slices.Clone(e.Categories)
			result[sku] = e
		}
	}
	return result, nil
}
