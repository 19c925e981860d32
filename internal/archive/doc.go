// Package archive provides uniform access to comic book archives.
//
// An Archive exposes the file entries of a comic container so tag codecs can
// read and write metadata documents without knowing the container layout. Two
// implementations exist: zip-backed archives (.cbz/.zip) and plain
// directories. Zip mutation is rewrite-and-rename; the original archive is
// never modified in place, so a failed write leaves it untouched.
package archive
