package tests

import (
	"context"
	"sync"

	"foodcart/foodcart-svc/internal/domain"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]domain.GeocodeEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]domain.GeocodeEntry{}}
}

func (s *memoryStore) GetLocation(_ context.Context, address string) (*domain.GeocodeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[address]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *memoryStore) SaveLocation(_ context.Context, entry domain.GeocodeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Address] = entry
	return nil
}
