package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type dirArchive struct {
	path string
}

func newDirArchive(path string) *dirArchive {
	return &dirArchive{path: path}
}

func (d *dirArchive) Name() string { return "Folder" }

func (d *dirArchive) Path() string { return d.path }

func (d *dirArchive) SupportsFiles() bool { return true }

func (d *dirArchive) List() ([]string, error) {
	var names []string
	err := filepath.WalkDir(d.path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.path, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", d.path, err)
	}
	sort.Strings(names)
	return names, nil
}

func (d *dirArchive) ReadFile(name string) ([]byte, error) {
	resolved, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
		}
		return nil, fmt.Errorf("read entry %s: %w", name, err)
	}
	return data, nil
}

func (d *dirArchive) WriteFile(name string, data []byte) error {
	resolved, err := d.resolve(name)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(resolved); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create entry directory: %w", err)
		}
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

func (d *dirArchive) RemoveFile(name string) error {
	resolved, err := d.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
		}
		return fmt.Errorf("remove entry %s: %w", name, err)
	}
	return nil
}

// resolve joins name under the folder root and rejects traversal outside it.
func (d *dirArchive) resolve(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid entry name %q", name)
	}
	return filepath.Join(d.path, cleaned), nil
}
