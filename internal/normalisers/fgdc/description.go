package fgdc

import (
	"unicode"

	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// summaryLimit is the longest summary, in characters, before truncation.
const summaryLimit = 745

// truncationMarker ends a truncated summary.
const truncationMarker = "[...]"

// describe returns the abstract as the body and its summary.
func describe(doc *xmltree.Document) (body, summary string) {
	body = doc.FirstTextAt(xpathAbstract)
	return body, summarise(body)
}

// summarise keeps text up to summaryLimit characters. Longer text is cut
// after the last whitespace at or before index summaryLimit, or hard cut
// at summaryLimit when there is none, and marked with "[...]".
func summarise(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	for i := summaryLimit; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return string(runes[:i+1]) + truncationMarker
		}
	}
	return string(runes[:summaryLimit]) + truncationMarker
}
