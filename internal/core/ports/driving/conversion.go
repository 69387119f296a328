package driving

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// ConvertOptions adjusts a single conversion.
type ConvertOptions struct {
	// ParentID overrides the parent item derived from the document.
	ParentID string

	// SourceURL overrides the configured "Original Source" link.
	SourceURL string

	// Store saves the converted record regardless of settings.
	Store bool
}

// ConversionService converts metadata documents into item records.
type ConversionService interface {
	// Convert converts in-memory document bytes. name is used for the
	// .xml extension check only.
	Convert(ctx context.Context, name string, content []byte, opts ConvertOptions) (*ConversionResult, error)

	// ConvertFile reads and converts one file.
	ConvertFile(ctx context.Context, path string, opts ConvertOptions) (*ConversionResult, error)

	// ConvertBatch converts files concurrently. Results are returned in
	// input order; a failure is reported on its result and does not
	// stop the batch.
	ConvertBatch(ctx context.Context, paths []string, opts ConvertOptions) []ConversionResult
}

// ConversionResult is the outcome of converting one document.
type ConversionResult struct {
	// Source is the file name or path that was converted.
	Source string

	// Record is the converted item. Nil when Err is set.
	Record *domain.ItemRecord

	// StoredID is the item store ID when the record was saved.
	StoredID string

	// Err is the per-document failure, if any.
	Err error
}
