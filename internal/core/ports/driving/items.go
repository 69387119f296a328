package driving

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// ItemService manages stored item records.
type ItemService interface {
	// List returns all stored items, newest first.
	List(ctx context.Context) ([]domain.StoredItem, error)

	// Get retrieves a stored item by ID.
	Get(ctx context.Context, id string) (*domain.StoredItem, error)

	// Delete removes a stored item.
	Delete(ctx context.Context, id string) error
}
