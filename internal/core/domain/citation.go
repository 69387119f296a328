package domain

// CitationRole is the role of a citation part.
type CitationRole string

// Citation roles.
const (
	RoleCitationOriginator  CitationRole = "Originator"
	RolePublicationDate     CitationRole = "Publication Date"
	RolePublicationTime     CitationRole = "Publication Time"
	RoleTitle               CitationRole = "Title"
	RoleSeriesName          CitationRole = "Publication Series Name"
	RoleSeriesIssue         CitationRole = "Publication Series Issue"
	RoleCitationPublisher   CitationRole = "Publisher"
	RolePublicationPlace    CitationRole = "Publication Place"
	RoleOnlineLinkage       CitationRole = "Online Linkage"
	RoleSecondOnlineLinkage CitationRole = "2nd Online Linkage"
	RoleLargerWorkTitle     CitationRole = "Larger Work Title"
)

// CitationPart is one typed value of a citation.
type CitationPart struct {
	Type  CitationRole `json:"type"`
	Value string       `json:"value"`
}

// CitationFacet groups the citation metadata of one citation structure.
// Parts keep source document order.
type CitationFacet struct {
	CitationType string `json:"citationType,omitempty"`

	// Note is set whenever the source carries the element, even when empty.
	Note *string `json:"note,omitempty"`

	Edition string         `json:"edition,omitempty"`
	Parts   []CitationPart `json:"parts,omitempty"`
}

// IsEmpty reports whether the facet carries no keys.
func (f *CitationFacet) IsEmpty() bool {
	return f.CitationType == "" && f.Note == nil && f.Edition == "" && len(f.Parts) == 0
}
