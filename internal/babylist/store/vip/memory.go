package vip

import (
	"context"
	"strings"
	"sync"
)

// InMemoryStore holds VIP cards and customers for local runs and tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	cards     map[string]struct{}
	customers map[string]struct{}
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		cards:     make(map[string]struct{}),
		customers: make(map[string]struct{}),
	}
}

func (s *InMemoryStore) AddCard(cardNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[strings.TrimSpace(cardNumber)] = struct{}{}
}

func (s *InMemoryStore) AddCustomer(viewerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[viewerID] = struct{}{}
}

func (s *InMemoryStore) IsVip(_ context.Context, cardNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cards[strings.TrimSpace(cardNumber)]
	return ok, nil
}

func (s *InMemoryStore) IsVipViewer(_ context.Context, viewerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.customers[viewerID]
	return ok, nil
}
