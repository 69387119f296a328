package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is an in-memory implementation of driven.ItemStore.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]domain.StoredItem
}

// NewItemStore creates a new in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[string]domain.StoredItem),
	}
}

// Save stores or replaces an item.
func (s *ItemStore) Save(_ context.Context, item *domain.StoredItem) error {
	if item == nil || item.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = *item
	return nil
}

// Get retrieves an item by ID.
func (s *ItemStore) Get(_ context.Context, id string) (*domain.StoredItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// List returns all items, newest first.
func (s *ItemStore) List(_ context.Context) ([]domain.StoredItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.StoredItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Delete removes an item.
func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	return nil
}
