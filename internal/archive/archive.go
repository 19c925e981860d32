package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported indicates a path does not name a container this package can
// open.
var ErrUnsupported = errors.New("unsupported archive type")

// ErrEntryNotFound indicates a requested entry is absent from the archive.
var ErrEntryNotFound = errors.New("entry not found")

// Archive is the container abstraction tag codecs operate on.
type Archive interface {
	// Name returns a short human-readable label for the container kind.
	Name() string
	// Path returns the filesystem location of the container.
	Path() string
	// SupportsFiles reports whether arbitrary entries can be stored. All
	// current implementations do; read-only container kinds would not.
	SupportsFiles() bool
	// List returns the entry names in the archive.
	List() ([]string, error)
	// ReadFile returns the contents of a named entry.
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or replaces a named entry.
	WriteFile(name string, data []byte) error
	// RemoveFile deletes a named entry. Removing an absent entry is an error.
	RemoveFile(name string) error
}

// Extensions this package recognizes as zip-backed comic archives.
var zipExtensions = map[string]bool{
	".cbz": true,
	".zip": true,
}

// Open inspects path and returns the matching Archive implementation.
func Open(path string) (Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}
	if info.IsDir() {
		return newDirArchive(path), nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if zipExtensions[ext] {
		return newZipArchive(path), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}

// Contains reports whether the archive has an entry with the given name.
func Contains(a Archive, name string) (bool, error) {
	entries, err := a.List()
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry == name {
			return true, nil
		}
	}
	return false, nil
}
