// Package metroninfo implements the MetronInfo XML tag format.
//
// MetronInfo stores comic metadata as a MetronInfo.xml entry inside the
// archive. The package models the full schema as a Document, converts between
// documents and the canonical comicmeta.Metadata model, and exposes a Tag
// that reads and writes the entry through the archive abstraction.
//
// Writes merge into an existing document rather than replacing it, so IDs
// recorded by other metadata sources survive a round trip. Per-entity
// identifiers (genre, creator, character ids) are not modeled on the
// canonical side and are dropped during conversion; this mirrors the schema
// subset the tool supports.
package metroninfo
