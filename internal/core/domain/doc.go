// Package domain defines the core business entities for fgdc2sb.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque metadata bytes handed to a normaliser
//   - ItemRecord: The sparse catalog item produced by a conversion
//   - Contact, WebLink, DateEntry, Tag, Identifier, Spatial: item fields
//   - CitationFacet, CitationPart: grouped citation metadata
//   - StoredItem: A converted record persisted by an item store
//   - Settings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Field Order
//
// Output field order is part of the catalog contract. It is fixed by the
// declaration order of struct fields and their json tags, so encoding/json
// emits keys in the documented order without any reordering step.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
