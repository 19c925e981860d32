// Package tagformat hosts the registry of metadata tag formats.
//
// Each format owns one archive entry and translates between it and the
// canonical metadata model. The registry lets CLI commands address formats by
// id without importing each implementation.
package tagformat

import (
	"fmt"
	"sort"
	"sync"

	"longbox/internal/archive"
	"longbox/internal/comicmeta"
)

// Format is the contract a tag format implementation satisfies.
type Format interface {
	ID() string
	Name() string
	EntryName() string
	SupportsArchive(archive.Archive) bool
	SupportsCreditRole(role string) bool
	HasTags(archive.Archive) bool
	ReadTags(archive.Archive) (*comicmeta.Metadata, error)
	ReadRaw(archive.Archive) (string, error)
	WriteTags(archive.Archive, *comicmeta.Metadata) error
	RemoveTags(archive.Archive) error
}

// Registry maps format ids to implementations.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds a format. Registering a duplicate id is an error so wiring
// mistakes surface at startup.
func (r *Registry) Register(format Format) error {
	if format == nil {
		return fmt.Errorf("register format: nil format")
	}
	id := format.ID()
	if id == "" {
		return fmt.Errorf("register format: empty id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formats[id]; exists {
		return fmt.Errorf("register format: duplicate id %q", id)
	}
	r.formats[id] = format
	return nil
}

// Lookup returns the format registered under id.
func (r *Registry) Lookup(id string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	format, ok := r.formats[id]
	if !ok {
		return nil, fmt.Errorf("unknown tag format %q (known: %v)", id, r.ids())
	}
	return format, nil
}

// IDs returns the registered format ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ids()
}

func (r *Registry) ids() []string {
	ids := make([]string, 0, len(r.formats))
	for id := range r.formats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
