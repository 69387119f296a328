package fgdc

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/weblink"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// bytesPerMB converts FGDC transfer sizes (megabytes) to bytes.
var bytesPerMB = decimal.NewFromInt(1048576)

// digformDepth is how far a networkr element sits below its digform:
// digform/digtopt/onlinopt/computer/networka/networkr.
const digformDepth = 5

// sourceLinkTitle titles the self link to the original metadata.
const sourceLinkTitle = "Original Source Metadata"

// webLinks gathers links in catalog order: the original source, larger
// work links that are not the parent item, citation online links, browse
// graphics, then network resources.
func webLinks(doc *xmltree.Document, sourceURL string, largerWorkLinks []string) []domain.WebLink {
	var links []domain.WebLink

	if sourceURL != "" {
		links = append(links, domain.WebLink{
			Type:  domain.LinkOriginalSource,
			URI:   sourceURL,
			Rel:   domain.RelSelf,
			Title: sourceLinkTitle,
		})
	}

	for _, raw := range largerWorkLinks {
		links = append(links, onlineLink(raw))
	}
	for _, raw := range doc.TextAt(xpathOnlink) {
		links = append(links, onlineLink(raw))
	}

	links = append(links, browseLinks(doc)...)
	links = append(links, networkLinks(doc)...)
	return links
}

// onlineLink classifies a citation link but files it as an "Online Link"
// with the URI exactly as written.
func onlineLink(raw string) domain.WebLink {
	link := weblink.Classify(raw)
	link.Type = domain.LinkOnline
	link.URI = raw
	return link
}

// browseLinks maps each browse graphic to a browseImage link titled by its
// description.
func browseLinks(doc *xmltree.Document) []domain.WebLink {
	var links []domain.WebLink
	for _, browse := range doc.ElementsAt(xpathBrowse) {
		name := xmltree.FirstDescendant(browse, "browsen")
		if name == nil {
			continue
		}
		link := weblink.Classify(xmltree.Text(name))
		if desc := xmltree.FirstDescendant(browse, "browsed"); desc != nil {
			link.Title = xmltree.Text(desc)
		}
		link.Type = domain.LinkBrowseImage
		links = append(links, link)
	}
	return links
}

// networkLinks classifies each network resource and titles it by the
// format name of its digital form.
func networkLinks(doc *xmltree.Document) []domain.WebLink {
	fallbackSize := doc.FirstTextAt(xpathTransferSize)

	var links []domain.WebLink
	for _, networkr := range doc.ElementsAt(xpathNetworkRes) {
		link := weblink.Classify(xmltree.Text(networkr))

		digform := xmltree.Ancestor(networkr, digformDepth)
		size := fallbackSize
		if own, ok := xmltree.DescendantText(xmltree.FirstDescendant(digform, "digtinfo"), "transize"); ok {
			size = own
		}
		length := transferSize(size)

		for _, formname := range xmltree.Descendants(digform, "formname") {
			link.Title = xmltree.Text(formname)
			if length != 0 {
				link.Length = length
			}
		}
		links = append(links, link)
	}
	return links
}

// transferSize converts a size in megabytes to whole bytes, truncating.
// Missing or non-numeric sizes are zero.
func transferSize(mb string) int64 {
	mb = strings.TrimSpace(mb)
	if mb == "" {
		return 0
	}
	d, err := decimal.NewFromString(mb)
	if err != nil {
		logger.Debug("ignoring transfer size %q: %v", mb, err)
		return 0
	}
	return d.Mul(bytesPerMB).IntPart()
}
