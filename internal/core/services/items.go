package services

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driving"
)

// Ensure ItemService implements the interface.
var _ driving.ItemService = (*ItemService)(nil)

// ItemService manages stored item records.
type ItemService struct {
	itemStore driven.ItemStore
}

// NewItemService creates a new item service.
func NewItemService(itemStore driven.ItemStore) *ItemService {
	return &ItemService{itemStore: itemStore}
}

// List returns all stored items, newest first.
func (s *ItemService) List(ctx context.Context) ([]domain.StoredItem, error) {
	if s.itemStore == nil {
		return nil, ErrItemStoreUnavailable
	}
	return s.itemStore.List(ctx)
}

// Get retrieves a stored item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (*domain.StoredItem, error) {
	if s.itemStore == nil {
		return nil, ErrItemStoreUnavailable
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.itemStore.Get(ctx, id)
}

// Delete removes a stored item.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if s.itemStore == nil {
		return ErrItemStoreUnavailable
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.itemStore.Delete(ctx, id)
}
