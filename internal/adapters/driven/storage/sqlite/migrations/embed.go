// Package migrations embeds the versioned schema of the item database.
// Files are named NNN_name.up.sql / NNN_name.down.sql and applied in
// version order.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
