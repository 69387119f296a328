package fgdc

import (
	"regexp"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

var (
	gdaIDPattern   = regexp.MustCompile(`"gdaId"\s*:\s*"?(\d+)"?`)
	basisIDPattern = regexp.MustCompile(`This project is (.+?) in the USGS BASIS\+ system\.`)
)

// identifiers finds GDA and BASIS+ ids in the supplemental information.
func identifiers(doc *xmltree.Document) []domain.Identifier {
	text := doc.FirstTextAt(xpathSupplemental)
	if text == "" {
		return nil
	}

	var ids []domain.Identifier
	if m := gdaIDPattern.FindStringSubmatch(text); m != nil {
		ids = append(ids, domain.Identifier{Scheme: domain.SchemeGDA, Type: "id", Key: m[1]})
	}
	if m := basisIDPattern.FindStringSubmatch(text); m != nil {
		ids = append(ids, domain.Identifier{Scheme: domain.SchemeBasis, Type: "", Key: m[1]})
	}
	return ids
}
