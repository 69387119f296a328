package domain

// ItemRecord is the catalog's normalised item for one metadata entry.
// Every field is optional; empty fields are omitted when encoded and are
// never represented as null.
type ItemRecord struct {
	Identifiers                []Identifier `json:"identifiers,omitempty"`
	Title                      string       `json:"title,omitempty"`
	Summary                    string       `json:"summary,omitempty"`
	Body                       string       `json:"body,omitempty"`
	Citation                   string       `json:"citation,omitempty"`
	Purpose                    string       `json:"purpose,omitempty"`
	MaintenanceUpdateFrequency string       `json:"maintenanceUpdateFrequency,omitempty"`
	ParentID                   string       `json:"parentId,omitempty"`
	Contacts                   []Contact    `json:"contacts,omitempty"`
	WebLinks                   []WebLink    `json:"webLinks,omitempty"`
	Tags                       []Tag        `json:"tags,omitempty"`
	Dates                      []DateEntry  `json:"dates,omitempty"`
	Spatial                    *Spatial     `json:"spatial,omitempty"`
}

// IsEmpty reports whether the record carries no fields at all.
func (r *ItemRecord) IsEmpty() bool {
	return len(r.Identifiers) == 0 && r.Title == "" && r.Summary == "" &&
		r.Body == "" && r.Citation == "" && r.Purpose == "" &&
		r.MaintenanceUpdateFrequency == "" && r.ParentID == "" &&
		len(r.Contacts) == 0 && len(r.WebLinks) == 0 && len(r.Tags) == 0 &&
		len(r.Dates) == 0 && r.Spatial == nil
}

// Identifier is an external identifier found in the record text.
type Identifier struct {
	Scheme string `json:"scheme"`
	Type   string `json:"type"`
	Key    string `json:"key"`
}

// Identifier schemes.
const (
	SchemeGDA   = "gda"
	SchemeBasis = "BASIS+"
)

// Tag is a keyword attached to the item.
type Tag struct {
	// Type is always TagTypeTheme; place keywords are themed too.
	Type string `json:"type"`

	// Scheme is the keyword thesaurus name, if any.
	Scheme string `json:"scheme,omitempty"`

	// Name is the keyword.
	Name string `json:"name"`
}

// TagTypeTheme is the only tag type emitted.
const TagTypeTheme = "Theme"

// MaxTagLength is the longest keyword, in characters, accepted as a tag.
const MaxTagLength = 80

// Spatial wraps the item's spatial extent.
type Spatial struct {
	BoundingBox BoundingBox `json:"boundingBox"`
}

// BoundingBox is a geographic extent in decimal degrees.
// MinX <= MaxX and MinY <= MaxY always hold.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// NewBoundingBox builds a box from the four bounds in any order.
func NewBoundingBox(west, east, north, south float64) BoundingBox {
	box := BoundingBox{MinX: west, MaxX: east, MinY: south, MaxY: north}
	if west > east {
		box.MinX, box.MaxX = east, west
	}
	if south > north {
		box.MinY, box.MaxY = north, south
	}
	return box
}
