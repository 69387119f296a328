// Package weblink classifies freeform URLs into typed catalog web links.
package weblink

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

var (
	imageExtension   = regexp.MustCompile(`(?i).(?:jpg|jpeg|tiff|gif|png)$`)
	archiveExtension = regexp.MustCompile(`(?i).(?:pdf|doc|tif|zip|gz|tar|7z|laz)$`)
	thumbnail        = regexp.MustCompile(`(?i)thumbnail`)
	wmsService       = regexp.MustCompile(`(?i)service=wms`)
	wfsService       = regexp.MustCompile(`(?i)service=wfs`)
	getCapabilities  = regexp.MustCompile(`(?i)request=getCapabilities`)
	anyRequest       = regexp.MustCompile(`(?i)request=`)
	legendRequest    = regexp.MustCompile(`(?i)request=getLegendGraphic`)
	featureRequest   = regexp.MustCompile(`(?i)request=getFeatureInfo`)
	originalMetadata = regexp.MustCompile(`(?i)getxml=`)
	catalogItem      = regexp.MustCompile(`sciencebase.gov/catalog/(item|folder)`)
)

// Link titles assigned by classification.
const (
	TitleWMSCapabilities = "OGC WMS Capabilities"
	TitleWFSCapabilities = "OGC WFS Capabilities"
	TitleCapabilities    = "OGC Capabilities"
	TitleLegend          = "Legend"
	TitleFeatureInfo     = "Feature Info"
	TitleOriginalXML     = "Original Metadata (XML)"
	TitleCatalogParent   = "Sciencebase catalog parent item"
)

type options struct {
	rel    string
	hidden bool
}

// Option adjusts a classified link.
type Option func(*options)

// WithRel sets the link relation. The default is "related".
func WithRel(rel string) Option {
	return func(o *options) {
		o.rel = rel
	}
}

// WithHidden sets the hidden flag. The default is false.
func WithHidden(hidden bool) Option {
	return func(o *options) {
		o.hidden = hidden
	}
}

// placeholder is the literal angle-bracket marker some FGDC tools leave
// inside URLs.
const placeholder = "[<|>]"

// Preprocess encodes spaces and removes the "[<|>]" placeholder from a raw
// URL. Other angle brackets are kept.
func Preprocess(raw string) string {
	s := strings.ReplaceAll(raw, " ", "%20")
	return strings.ReplaceAll(s, placeholder, "")
}

// Classify derives a typed, titled web link from a raw URL.
//
// Precedence: file extension, then "thumbnail", then the OGC service
// and catalog checks, each able to overwrite the previous result. A URL
// matching nothing is a plain webLink.
func Classify(raw string, opts ...Option) domain.WebLink {
	o := options{rel: domain.RelRelated}
	for _, opt := range opts {
		opt(&o)
	}

	uri := Preprocess(raw)
	var linkType domain.LinkType
	var title string

	if dot := strings.LastIndex(uri, "."); dot > 0 {
		ext := uri[dot:]
		if imageExtension.MatchString(ext) {
			linkType = domain.LinkBrowseImage
		} else if archiveExtension.MatchString(ext) {
			linkType = domain.LinkDownload
		}
	}

	if thumbnail.MatchString(uri) {
		linkType = domain.LinkBrowseImage
	}

	switch {
	case isCapabilities(uri):
		linkType = domain.LinkServiceCapabilities
		switch {
		case wmsService.MatchString(uri):
			title = TitleWMSCapabilities
		case wfsService.MatchString(uri):
			linkType = domain.LinkServiceWFSBacking
			title = TitleWFSCapabilities
		default:
			title = TitleCapabilities
		}
	case legendRequest.MatchString(uri):
		linkType, title = domain.LinkServiceLegend, TitleLegend
	case featureRequest.MatchString(uri):
		linkType, title = domain.LinkServiceFeatureInfo, TitleFeatureInfo
	case originalMetadata.MatchString(uri):
		linkType, title = domain.LinkOriginalMetadata, TitleOriginalXML
	case catalogItem.MatchString(uri):
		linkType, title = domain.LinkCatalogItem, TitleCatalogParent
	}

	if linkType == "" {
		linkType = domain.LinkWeb
	}

	hidden := o.hidden
	return domain.WebLink{
		Type:   linkType,
		URI:    uri,
		Rel:    o.rel,
		Title:  title,
		Hidden: &hidden,
	}
}

// isCapabilities reports whether uri points at an OGC capabilities
// document. A thumbnail URL always counts, so it overrides the
// browseImage assigned above.
func isCapabilities(uri string) bool {
	if thumbnail.MatchString(uri) || getCapabilities.MatchString(uri) {
		return true
	}
	if !wmsService.MatchString(uri) && !wfsService.MatchString(uri) {
		return false
	}
	return !anyRequest.MatchString(uri)
}

// CatalogItemID returns the segment after the last "/" of a catalog
// item URL.
func CatalogItemID(uri string) string {
	return uri[strings.LastIndex(uri, "/")+1:]
}
