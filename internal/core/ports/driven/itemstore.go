package driven

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// ItemStore persists converted item records.
// Implementations must be safe for concurrent use.
type ItemStore interface {
	// Save stores or replaces an item.
	Save(ctx context.Context, item *domain.StoredItem) error

	// Get retrieves an item by ID.
	// Returns domain.ErrNotFound if no item has that ID.
	Get(ctx context.Context, id string) (*domain.StoredItem, error)

	// List returns all items, newest first.
	List(ctx context.Context) ([]domain.StoredItem, error)

	// Delete removes an item.
	// Returns domain.ErrNotFound if no item has that ID.
	Delete(ctx context.Context, id string) error
}
