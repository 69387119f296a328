// Package citation extracts citation facets from FGDC citeinfo blocks and
// renders them as a single narrative citation string.
package citation

import (
	"strings"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// CiteinfoPath locates the main citation blocks.
const CiteinfoPath = "idinfo/citation/citeinfo"

// directParts maps citeinfo children that become parts as-is.
var directParts = map[string]domain.CitationRole{
	"origin":  domain.RoleCitationOriginator,
	"pubdate": domain.RolePublicationDate,
	"pubtime": domain.RolePublicationTime,
	"title":   domain.RoleTitle,
	"onlink":  domain.RoleOnlineLinkage,
}

// ExtractFacets builds one facet per citeinfo block, in document order.
// Facets with no keys are dropped.
func ExtractFacets(doc *xmltree.Document) []domain.CitationFacet {
	var facets []domain.CitationFacet
	for _, citeinfo := range doc.ElementsAt(CiteinfoPath) {
		facet := extractFacet(citeinfo)
		if !facet.IsEmpty() {
			facets = append(facets, facet)
		}
	}
	return facets
}

func extractFacet(citeinfo *xmltree.Element) domain.CitationFacet {
	var facet domain.CitationFacet
	for _, child := range citeinfo.ChildElements() {
		text := xmltree.Text(child)

		if role, ok := directParts[child.Tag]; ok {
			facet.Parts = appendPart(facet.Parts, role, text)
			continue
		}

		switch child.Tag {
		case "edition":
			facet.Edition = text
		case "geoform":
			facet.CitationType = text
		case "othercit":
			note := text
			facet.Note = &note
		case "serinfo":
			facet.Parts = append(facet.Parts, seriesParts(child)...)
		case "pubinfo":
			facet.Parts = append(facet.Parts, publicationParts(child)...)
		case "lworkcit":
			facet.Parts = append(facet.Parts, largerWorkParts(child)...)
		}
	}
	return facet
}

func seriesParts(serinfo *xmltree.Element) []domain.CitationPart {
	var parts []domain.CitationPart
	for _, child := range serinfo.ChildElements() {
		switch child.Tag {
		case "sername":
			parts = appendPart(parts, domain.RoleSeriesName, xmltree.Text(child))
		case "issue":
			parts = appendPart(parts, domain.RoleSeriesIssue, xmltree.Text(child))
		}
	}
	return parts
}

func publicationParts(pubinfo *xmltree.Element) []domain.CitationPart {
	var parts []domain.CitationPart
	for _, child := range pubinfo.ChildElements() {
		switch child.Tag {
		case "pubplace":
			parts = appendPart(parts, domain.RolePublicationPlace, xmltree.Text(child))
		case "publish":
			parts = appendPart(parts, domain.RoleCitationPublisher, xmltree.Text(child))
		}
	}
	return parts
}

// largerWorkParts reads the title and online link of the larger work's own
// citeinfo. Other larger-work fields are not cited.
func largerWorkParts(lworkcit *xmltree.Element) []domain.CitationPart {
	var parts []domain.CitationPart
	for _, citeinfo := range lworkcit.ChildElements() {
		if citeinfo.Tag != "citeinfo" {
			continue
		}
		for _, child := range citeinfo.ChildElements() {
			switch child.Tag {
			case "title":
				parts = appendPart(parts, domain.RoleLargerWorkTitle, xmltree.Text(child))
			case "onlink":
				parts = appendPart(parts, domain.RoleSecondOnlineLinkage, xmltree.Text(child))
			}
		}
	}
	return parts
}

func appendPart(parts []domain.CitationPart, role domain.CitationRole, value string) []domain.CitationPart {
	if value == "" {
		return parts
	}
	return append(parts, domain.CitationPart{Type: role, Value: value})
}

// renderOrder is the section order of a rendered citation, after the
// originators. Publication place and larger work title are not rendered.
var renderOrder = []domain.CitationRole{
	domain.RolePublicationDate,
	domain.RolePublicationTime,
	domain.RoleTitle,
	domain.RoleSeriesName,
	domain.RoleSeriesIssue,
	domain.RoleCitationPublisher,
	domain.RoleSecondOnlineLinkage,
	domain.RoleOnlineLinkage,
}

// Render pools the parts of all facets by role and writes them as one
// citation ending in ".". It returns "" when nothing renders.
func Render(facets []domain.CitationFacet) string {
	var originators []string
	sections := make(map[domain.CitationRole]*strings.Builder, len(renderOrder))
	for _, role := range renderOrder {
		sections[role] = &strings.Builder{}
	}

	for _, facet := range facets {
		for _, part := range facet.Parts {
			if part.Type == domain.RoleCitationOriginator {
				originators = append(originators, part.Value)
				continue
			}
			section, ok := sections[part.Type]
			if !ok {
				continue
			}
			section.WriteString(part.Value)
			if part.Type == domain.RoleTitle {
				section.WriteString(": ")
			} else {
				section.WriteString(", ")
			}
		}
	}

	var b strings.Builder
	b.WriteString(JoinOriginators(originators))
	for _, role := range renderOrder {
		b.WriteString(sections[role].String())
	}

	out := b.String()
	if len(out) < 2 {
		return ""
	}
	return out[:len(out)-2] + "."
}

// JoinOriginators writes each name followed by ", ", prefixing the last
// with "and " when there is more than one.
func JoinOriginators(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 && i == len(names)-1 {
			b.WriteString("and ")
		}
		b.WriteString(name)
		b.WriteString(", ")
	}
	return b.String()
}
