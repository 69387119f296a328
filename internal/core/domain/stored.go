package domain

import "time"

// StoredItem is a converted record kept in an item store.
type StoredItem struct {
	// ID is the unique identifier for the stored item.
	ID string

	// SourceURI is the file the record was converted from.
	SourceURI string

	// Title is copied from the record for listings.
	Title string

	// Record is the converted item.
	Record ItemRecord

	// CreatedAt is when the item was stored.
	CreatedAt time.Time
}
