package driven

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// Normaliser transforms raw metadata documents into item records.
// Each normaliser handles specific MIME types (e.g., FGDC XML).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// SupportedFormats returns metadata dialects for specialised handling.
	// Empty slice means all formats.
	SupportedFormats() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 90-100.
	// Generic MIME normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise converts a raw document into an item record.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Record is the sparse item record.
	Record domain.ItemRecord

	// Format names the metadata dialect that produced the record.
	Format string
}
