package metroninfo

import (
	"fmt"
	"log/slog"
	"time"

	"longbox/internal/archive"
	"longbox/internal/comicmeta"
)

// FormatID identifies this tag format in the registry and on the CLI.
const FormatID = "metroninfo"

// Tag reads and writes MetronInfo.xml entries inside comic archives.
type Tag struct {
	logger       *slog.Logger
	priceCountry string
	clock        func() time.Time
}

// Option configures a Tag.
type Option func(*Tag)

// WithPriceCountry sets the country attribute written on prices.
func WithPriceCountry(country string) Option {
	return func(t *Tag) { t.priceCountry = country }
}

// WithClock overrides the LastModified timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(t *Tag) { t.clock = clock }
}

// New constructs the MetronInfo tag format.
func New(logger *slog.Logger, opts ...Option) *Tag {
	if logger == nil {
		logger = slog.Default()
	}
	tag := &Tag{
		logger: logger.With("component", "metroninfo"),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(tag)
	}
	return tag
}

// ID returns the registry identifier.
func (t *Tag) ID() string { return FormatID }

// Name returns the human-readable format name.
func (t *Tag) Name() string { return "Metron Info" }

// EntryName returns the archive entry the format stores its document in.
func (t *Tag) EntryName() string { return FileName }

// SupportsArchive reports whether the archive can hold a tag entry.
func (t *Tag) SupportsArchive(a archive.Archive) bool {
	return a.SupportsFiles()
}

// SupportsCreditRole reports whether a credit role survives a write without
// collapsing to Other.
func (t *Tag) SupportsCreditRole(role string) bool {
	return comicmeta.SupportsRole(role)
}

// HasTags reports whether the archive carries a valid MetronInfo entry.
// Unreadable archives or malformed entries read as untagged.
func (t *Tag) HasTags(a archive.Archive) bool {
	if !t.SupportsArchive(a) {
		return false
	}
	present, err := archive.Contains(a, FileName)
	if err != nil || !present {
		return false
	}
	data, err := a.ReadFile(FileName)
	if err != nil {
		return false
	}
	return Validate(data)
}

// ReadTags extracts metadata from the archive's MetronInfo entry. An archive
// without valid tags yields empty metadata, not an error.
func (t *Tag) ReadTags(a archive.Archive) (*comicmeta.Metadata, error) {
	if !t.HasTags(a) {
		return &comicmeta.Metadata{}, nil
	}
	data, err := a.ReadFile(FileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ExtractMetadata(doc), nil
}

// ReadRaw returns the re-serialized tag document, or "" when absent.
func (t *Tag) ReadRaw(a archive.Archive) (string, error) {
	if !t.HasTags(a) {
		return "", nil
	}
	data, err := a.ReadFile(FileName)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", FileName, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return "", err
	}
	out, err := Encode(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WriteTags merges metadata into the archive's MetronInfo entry, creating the
// entry when absent.
func (t *Tag) WriteTags(a archive.Archive, md *comicmeta.Metadata) error {
	if !t.SupportsArchive(a) {
		return fmt.Errorf("archive %s (%s) does not support %s metadata", a.Path(), a.Name(), t.Name())
	}

	doc := NewDocument()
	if t.HasTags(a) {
		data, err := a.ReadFile(FileName)
		if err != nil {
			return fmt.Errorf("read existing %s: %w", FileName, err)
		}
		if existing, err := Decode(data); err == nil {
			doc = existing
		} else {
			t.logger.Warn("replacing unreadable tag document", "archive", a.Path(), "error", err)
		}
	}

	ApplyMetadata(doc, md, ConvertOptions{
		Now:          t.clock(),
		PriceCountry: t.priceCountry,
	})

	out, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := a.WriteFile(FileName, out); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	t.logger.Debug("wrote tag document", "archive", a.Path(), "bytes", len(out))
	return nil
}

// RemoveTags deletes the MetronInfo entry when present.
func (t *Tag) RemoveTags(a archive.Archive) error {
	if !t.HasTags(a) {
		return nil
	}
	if err := a.RemoveFile(FileName); err != nil {
		return fmt.Errorf("remove %s: %w", FileName, err)
	}
	return nil
}
