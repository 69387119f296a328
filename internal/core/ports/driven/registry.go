package driven

import (
	"context"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// NormaliserRegistry routes a raw document to one registered Normaliser.
// Higher Priority wins; among normalisers accepting the MIME type, one that
// declares the document's "format" metadata is preferred over one that
// declares no formats at all.
type NormaliserRegistry interface {
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	// Register adds a normaliser. Nil is ignored.
	Register(normaliser Normaliser)

	// SupportedMIMETypes lists the accepted MIME types, sorted and unique.
	SupportedMIMETypes() []string
}
