package fgdc

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/citation"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/weblink"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// Format is the metadata dialect handled by this package.
const Format = "fgdc"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser converts FGDC CSDGM XML into item records.
type Normaliser struct {
	emails driven.EmailValidator
}

// New creates an FGDC normaliser. Contact emails are kept only when
// emails accepts them; a nil validator drops every email.
func New(emails driven.EmailValidator) *Normaliser {
	return &Normaliser{emails: emails}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/xml", "text/xml"}
}

// SupportedFormats returns the metadata dialects for specialised handling.
func (n *Normaliser) SupportedFormats() []string {
	return []string{Format}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 90 // Format-specific normaliser
}

// Normalise maps one FGDC document onto a sparse item record.
//
// The URI must end in ".xml"; anything else fails with
// domain.ErrUnsupportedInput before the content is parsed.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if !strings.EqualFold(filepath.Ext(raw.URI), ".xml") {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedInput, raw.URI)
	}

	doc, err := xmltree.Parse(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", raw.URI, err)
	}

	record := n.build(doc, raw)

	logger.L().Debug("normalised fgdc record",
		zap.String("uri", raw.URI),
		zap.String("parent_id", record.ParentID),
		zap.Int("contacts", len(record.Contacts)),
		zap.Int("web_links", len(record.WebLinks)),
		zap.Int("dates", len(record.Dates)),
		zap.Bool("spatial", record.Spatial != nil),
	)

	return &driven.NormaliseResult{Record: record, Format: Format}, nil
}

func (n *Normaliser) build(doc *xmltree.Document, raw *domain.RawDocument) domain.ItemRecord {
	parentID, largerWorkLinks := resolveParent(doc)
	if raw.ParentID != nil && *raw.ParentID != "" {
		parentID = *raw.ParentID
	}

	body, summary := describe(doc)

	dates := publicationDates(doc)
	dates = append(dates, timePeriods(doc)...)

	return domain.ItemRecord{
		Identifiers:                identifiers(doc),
		Title:                      doc.FirstTextAt(xpathTitle),
		Summary:                    summary,
		Body:                       body,
		Citation:                   citation.Render(citation.ExtractFacets(doc)),
		Purpose:                    doc.FirstTextAt(xpathPurpose),
		MaintenanceUpdateFrequency: doc.FirstTextAt(xpathUpdateFreq),
		ParentID:                   parentID,
		Contacts:                   contacts(doc, n.emails),
		WebLinks:                   webLinks(doc, raw.SourceURL, largerWorkLinks),
		Tags:                       tags(doc),
		Dates:                      dates,
		Spatial:                    spatial(doc),
	}
}

// resolveParent finds the parent catalog item among the larger work
// links. The last catalog link wins; the remaining links are returned
// for the web link pass.
func resolveParent(doc *xmltree.Document) (parentID string, others []string) {
	for _, raw := range doc.TextAt(xpathParentLink) {
		if weblink.Classify(raw).Type == domain.LinkCatalogItem {
			parentID = weblink.CatalogItemID(raw)
			continue
		}
		others = append(others, raw)
	}
	return parentID, others
}
