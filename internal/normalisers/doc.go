// Package normalisers holds implementations of the Normaliser interface,
// one sub-package per metadata dialect. Each normaliser turns the raw
// bytes of a record into a catalog item record.
//
// Normalisers are registered with the NormaliserRegistry at startup.
package normalisers
