// Package sqlite stores converted item records in a pure Go SQLite database
// (modernc.org/sqlite, no CGO).
//
// The database lives at <data_dir>/items.db, ~/.fgdc2sb/data/items.db when
// data_dir is unset. Records are kept whole as JSON next to the title, parent
// id and source file used by `items list`. The schema is created by the
// numbered migrations embedded from migrations/ and recorded in
// schema_migrations. The connection runs in WAL mode with a busy timeout so
// batch conversions can store from several workers.
package sqlite
