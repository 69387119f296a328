package domain

// LinkType is the role of a web link in the catalog.
type LinkType string

// Link types.
const (
	LinkBrowseImage         LinkType = "browseImage"
	LinkDownload            LinkType = "download"
	LinkServiceCapabilities LinkType = "serviceCapabilitiesUrl"
	LinkServiceWFSBacking   LinkType = "serviceWfsBackingUrl"
	LinkServiceLegend       LinkType = "serviceLegendUrl"
	LinkServiceFeatureInfo  LinkType = "serviceFeatureInfoUrl"
	LinkOriginalMetadata    LinkType = "originalMetadata"
	LinkCatalogItem         LinkType = "catalogItemUrl"
	LinkWeb                 LinkType = "webLink"
	LinkOnline              LinkType = "Online Link"
	LinkOriginalSource      LinkType = "Original Source"
)

// IsValid returns true if the link type is recognised.
func (t LinkType) IsValid() bool {
	switch t {
	case LinkBrowseImage, LinkDownload, LinkServiceCapabilities, LinkServiceWFSBacking,
		LinkServiceLegend, LinkServiceFeatureInfo, LinkOriginalMetadata, LinkCatalogItem,
		LinkWeb, LinkOnline, LinkOriginalSource:
		return true
	default:
		return false
	}
}

// Link relations.
const (
	RelRelated = "related"
	RelSelf    = "self"
)

// WebLink is a typed link attached to the item.
type WebLink struct {
	Type   LinkType `json:"type"`
	URI    string   `json:"uri"`
	Rel    string   `json:"rel"`
	Title  string   `json:"title,omitempty"`
	Hidden *bool    `json:"hidden,omitempty"`

	// Length is the transfer size in bytes; zero is never emitted.
	Length int64 `json:"length,omitempty"`
}
