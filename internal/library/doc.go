// Package library persists an index of scanned comic archives in SQLite.
//
// The Store manages database connections, schema initialization, and entry
// upserts keyed by archive path. The Scanner walks configured roots, reads
// tags through the registered format, and reconciles the index: new archives
// are added, changed ones re-read, and entries whose files disappeared are
// pruned. Each scan run carries a session ID so pruning can tell stale
// entries from fresh ones.
//
// The index is derived data; deleting the database and rescanning rebuilds
// it. Schema changes bump the version in schema.go and require a rebuild.
package library
