package domain

// RawDocument represents the opaque bytes of a metadata record.
// It is the input to normalisation.
type RawDocument struct {
	// URI is the original location (file path or name). Normalisers
	// use its extension to decide whether they accept the document.
	URI string

	// MIMEType is the content type (e.g., "application/xml").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// ParentID overrides the parent item derived from the document.
	ParentID *string

	// SourceURL is where the original metadata can be fetched.
	// When set, the record gets an "Original Source" self link.
	SourceURL string

	// Metadata contains caller-specific key-value pairs.
	Metadata map[string]any
}
