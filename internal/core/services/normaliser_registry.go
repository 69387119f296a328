package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// MetadataFormat is the RawDocument.Metadata key naming the metadata
// dialect of a document, e.g. "fgdc".
const MetadataFormat = "format"

// NormaliserRegistry dispatches documents to the highest priority
// normaliser accepting their MIME type. When the document names a
// format, normalisers declaring that format are preferred.
type NormaliserRegistry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewNormaliserRegistry creates a registry holding the given normalisers.
func NewNormaliserRegistry(normalisers ...driven.Normaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser. Normalisers are kept in priority order;
// equal priorities keep registration order.
func (r *NormaliserRegistry) Register(normaliser driven.Normaliser) {
	if normaliser == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, normaliser)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise transforms raw with the best matching normaliser.
// Returns domain.ErrUnsupportedType when none accepts the document.
func (r *NormaliserRegistry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	normaliser := r.find(raw)
	if normaliser == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return normaliser.Normalise(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be normalised,
// sorted and without duplicates.
func (r *NormaliserRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	for _, n := range r.normalisers {
		types = append(types, n.SupportedMIMETypes()...)
	}
	slices.Sort(types)
	return slices.Compact(types)
}

func (r *NormaliserRegistry) find(raw *domain.RawDocument) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	format, _ := raw.Metadata[MetadataFormat].(string)

	var fallback driven.Normaliser
	for _, n := range r.normalisers {
		if !slices.Contains(n.SupportedMIMETypes(), raw.MIMEType) {
			continue
		}
		if format == "" || slices.Contains(n.SupportedFormats(), format) {
			return n
		}
		if fallback == nil && len(n.SupportedFormats()) == 0 {
			fallback = n
		}
	}
	return fallback
}
