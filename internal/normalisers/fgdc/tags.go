package fgdc

import (
	"unicode/utf8"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// keywordGroup names a keyword block and its thesaurus and key elements.
type keywordGroup struct {
	path      string
	thesaurus string
	key       string
}

var keywordGroups = []keywordGroup{
	{path: xpathThemeKeys, thesaurus: "themekt", key: "themekey"},
	{path: xpathPlaceKeys, thesaurus: "placekt", key: "placekey"},
}

// tags turns theme then place keywords into Theme tags. Keywords longer
// than domain.MaxTagLength characters are skipped.
func tags(doc *xmltree.Document) []domain.Tag {
	var out []domain.Tag
	for _, group := range keywordGroups {
		for _, block := range doc.ElementsAt(group.path) {
			scheme, _ := xmltree.DescendantText(block, group.thesaurus)
			for _, key := range xmltree.Descendants(block, group.key) {
				name := xmltree.Text(key)
				if name == "" || utf8.RuneCountInString(name) > domain.MaxTagLength {
					continue
				}
				out = append(out, domain.Tag{Type: domain.TagTypeTheme, Scheme: scheme, Name: name})
			}
		}
	}
	return out
}
