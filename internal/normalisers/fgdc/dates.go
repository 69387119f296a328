package fgdc

import (
	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/datetime"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// Publication date placeholders that carry no date.
const (
	pubdateUnpublished = "Unpublished Material"
	pubdateUnknown     = "Unknown"
)

// publicationDates returns the citation publication date, with its time
// when one is given.
func publicationDates(doc *xmltree.Document) []domain.DateEntry {
	pubdate := doc.FirstTextAt(xpathPubDate)
	if pubdate == "" || pubdate == pubdateUnpublished || pubdate == pubdateUnknown {
		return nil
	}

	dateString := datetime.NormalizeDate(pubdate)
	if pubtime := doc.FirstTextAt(xpathPubTime); pubtime != "" && pubtime != pubdateUnknown {
		dateString += datetime.NormalizeTime(pubtime)
	}
	if dateString == "" {
		return nil
	}
	return []domain.DateEntry{{
		Type:       domain.DateTypePublication,
		DateString: dateString,
		Label:      domain.LabelPublicationDate,
	}}
}

// timePeriods reads every time period of content: single dates, then
// multiple dates, then ranges, per timeinfo block.
func timePeriods(doc *xmltree.Document) []domain.DateEntry {
	var out []domain.DateEntry
	for _, timeinfo := range doc.ElementsAt(xpathTimePeriod) {
		for _, sngdate := range xmltree.Descendants(timeinfo, "sngdate") {
			if parent := xmltree.Ancestor(sngdate, 1); parent != nil && parent.Tag == "mdattim" {
				continue
			}
			if s := singleDateTime(sngdate); s != "" {
				out = append(out, domain.DateEntry{Type: domain.DateTypeInfo, DateString: s, Label: domain.LabelTimePeriod})
			}
		}
		for _, mdattim := range xmltree.Descendants(timeinfo, "mdattim") {
			out = append(out, multiDateTime(mdattim, domain.LabelTimePeriod)...)
		}
		for _, rngdates := range xmltree.Descendants(timeinfo, "rngdates") {
			out = append(out, rangeDateTime(rngdates)...)
		}
	}
	return out
}

// singleDateTime joins the first calendar date and time below el.
func singleDateTime(el *xmltree.Element) string {
	return dateTime(el, "caldate", "time")
}

// multiDateTime returns one Info entry per sngdate below el.
func multiDateTime(el *xmltree.Element, label string) []domain.DateEntry {
	var out []domain.DateEntry
	for _, sngdate := range xmltree.Descendants(el, "sngdate") {
		if s := singleDateTime(sngdate); s != "" {
			out = append(out, domain.DateEntry{Type: domain.DateTypeInfo, DateString: s, Label: label})
		}
	}
	return out
}

// rangeDateTime returns the Start and End entries of a range. An end that
// resolves to nothing is omitted, as is a start.
func rangeDateTime(el *xmltree.Element) []domain.DateEntry {
	var out []domain.DateEntry
	if begin := dateTime(el, "begdate", "begtime"); begin != "" {
		out = append(out, domain.DateEntry{Type: domain.DateTypeStart, DateString: begin})
	}
	if end := dateTime(el, "enddate", "endtime"); end != "" {
		out = append(out, domain.DateEntry{Type: domain.DateTypeEnd, DateString: end})
	}
	return out
}

// dateTime concatenates the normalised date and time found below el.
// Either half may be missing or invalid.
func dateTime(el *xmltree.Element, dateTag, timeTag string) string {
	var s string
	if text, ok := xmltree.DescendantText(el, dateTag); ok {
		s += datetime.NormalizeDate(text)
	}
	if text, ok := xmltree.DescendantText(el, timeTag); ok {
		s += datetime.NormalizeTime(text)
	}
	return s
}
