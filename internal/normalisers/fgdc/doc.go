// Package fgdc provides a Normaliser implementation for FGDC CSDGM
// metadata. It maps one XML record onto a sparse catalog item record:
// scalars, identifiers, bounding box, citation, web links, tags, contacts
// and dates.
//
// Every extractor is a pure function of the parsed document, so a single
// Normaliser may convert many documents concurrently.
package fgdc
