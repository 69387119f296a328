package domain

// DateType classifies a DateEntry.
type DateType string

// Date types.
const (
	DateTypeInfo        DateType = "Info"
	DateTypeStart       DateType = "Start"
	DateTypeEnd         DateType = "End"
	DateTypePublication DateType = "Publication"
)

// DateEntry is a dated event on the item.
//
// DateString is YYYY-MM-DD, YYYY-MM or YYYY, optionally followed directly
// by HH:MM:SS or HH:MM.
type DateEntry struct {
	Type       DateType `json:"type"`
	DateString string   `json:"dateString"`
	Label      string   `json:"label"`
}

// Date labels.
const (
	LabelPublicationDate = "Publication Date"
	LabelTimePeriod      = "Time Period"
)
