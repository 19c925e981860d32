package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type zipArchive struct {
	path string
}

func newZipArchive(path string) *zipArchive {
	return &zipArchive{path: path}
}

func (z *zipArchive) Name() string { return "ZIP" }

func (z *zipArchive) Path() string { return z.path }

func (z *zipArchive) SupportsFiles() bool { return true }

func (z *zipArchive) List() ([]string, error) {
	reader, err := zip.OpenReader(z.path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		names = append(names, file.Name)
	}
	return names, nil
}

func (z *zipArchive) ReadFile(name string) ([]byte, error) {
	reader, err := zip.OpenReader(z.path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

func (z *zipArchive) WriteFile(name string, data []byte) error {
	return z.rewrite(func(w *zip.Writer, file *zip.File) (bool, error) {
		// Skip the entry being replaced; it is appended fresh afterwards.
		return file.Name == name, nil
	}, func(w *zip.Writer) error {
		entry, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("create entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write entry %s: %w", name, err)
		}
		return nil
	})
}

func (z *zipArchive) RemoveFile(name string) error {
	found := false
	err := z.rewrite(func(w *zip.Writer, file *zip.File) (bool, error) {
		if file.Name == name {
			found = true
			return true, nil
		}
		return false, nil
	}, nil)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return nil
}

// rewrite copies the archive into a sibling temp file, skipping entries the
// filter claims, runs the optional append step, then atomically replaces the
// original.
func (z *zipArchive) rewrite(skip func(*zip.Writer, *zip.File) (bool, error), appendFn func(*zip.Writer) error) error {
	reader, err := zip.OpenReader(z.path)
	if err != nil {
		return fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer reader.Close()

	tmp, err := os.CreateTemp(filepath.Dir(z.path), filepath.Base(z.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	writer := zip.NewWriter(tmp)
	for _, file := range reader.File {
		skipEntry, err := skip(writer, file)
		if err != nil {
			cleanup()
			return err
		}
		if skipEntry {
			continue
		}
		if err := copyZipEntry(writer, file); err != nil {
			cleanup()
			return err
		}
	}

	if appendFn != nil {
		if err := appendFn(writer); err != nil {
			cleanup()
			return err
		}
	}

	if err := writer.Close(); err != nil {
		cleanup()
		return fmt.Errorf("finalize temp archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Rename(tmpPath, z.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace archive: %w", err)
	}
	return nil
}

func copyZipEntry(w *zip.Writer, file *zip.File) error {
	header := file.FileHeader
	dst, err := w.CreateHeader(&header)
	if err != nil {
		return fmt.Errorf("copy entry %s: %w", file.Name, err)
	}
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", file.Name, err)
	}
	defer src.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy entry %s: %w", file.Name, err)
	}
	return nil
}
