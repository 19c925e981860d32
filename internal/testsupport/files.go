package testsupport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteCBZ creates a zip archive at path with the given entries and returns
// the path. Entries iterate in map order; tests that care about entry order
// should not.
func WriteCBZ(t testing.TB, path string, entries map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, data := range entries {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("finalize zip: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create archive directory: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	return path
}

// PageEntries returns count fake page images suitable for WriteCBZ.
func PageEntries(count int) map[string][]byte {
	entries := make(map[string][]byte, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("pages/%03d.jpg", i+1)
		entries[name] = []byte{0xFF, 0xD8, 0xFF, byte(i)}
	}
	return entries
}
