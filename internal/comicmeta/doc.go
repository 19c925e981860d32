// Package comicmeta defines the canonical in-memory metadata model shared by
// every tag format.
//
// Metadata is deliberately format-agnostic: it captures the union of fields a
// comic archive can carry (series, issue, credits, identifiers, ratings)
// without committing to any schema's spelling. Tag codecs translate between
// this model and their wire representation; lossy translations document what
// they drop.
package comicmeta
