// Package driven holds the ports the core calls out through.
//
// Normaliser, NormaliserRegistry, EmailValidator and ConfigStore are always
// wired. ItemStore may be nil, in which case records are written to the
// output only and the items commands report that storage is unavailable.
//
// This package imports domain and nothing else from the module.
package driven
