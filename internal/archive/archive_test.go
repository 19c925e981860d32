package archive_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"longbox/internal/archive"
	"longbox/internal/testsupport"
)

func TestOpenRejectsUnknownExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issue.rar")
	if err := os.WriteFile(path, []byte("not an archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := archive.Open(path); !errors.Is(err, archive.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestZipArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issue.cbz")
	testsupport.WriteCBZ(t, path, map[string][]byte{
		"pages/001.jpg": []byte("page one"),
		"pages/002.jpg": []byte("page two"),
	})

	a, err := archive.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !a.SupportsFiles() {
		t.Fatal("zip archive should support files")
	}

	if err := a.WriteFile("MetronInfo.xml", []byte("<MetronInfo/>")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	names, err := a.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 entries, got %v", names)
	}

	data, err := a.ReadFile("MetronInfo.xml")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(data, []byte("<MetronInfo/>")) {
		t.Fatalf("unexpected content: %q", data)
	}

	// Overwriting replaces the entry rather than appending a duplicate.
	if err := a.WriteFile("MetronInfo.xml", []byte("<MetronInfo>v2</MetronInfo>")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	names, err = a.List()
	if err != nil {
		t.Fatalf("List after overwrite: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("overwrite duplicated entry: %v", names)
	}

	if err := a.RemoveFile("MetronInfo.xml"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	if _, err := a.ReadFile("MetronInfo.xml"); !errors.Is(err, archive.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound after remove, got %v", err)
	}

	// Pages survive every mutation.
	data, err = a.ReadFile("pages/001.jpg")
	if err != nil || !bytes.Equal(data, []byte("page one")) {
		t.Fatalf("page corrupted after rewrite: %q, %v", data, err)
	}
}

func TestZipArchiveRemoveMissingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issue.cbz")
	testsupport.WriteCBZ(t, path, testsupport.PageEntries(2))

	a, err := archive.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.RemoveFile("MetronInfo.xml"); !errors.Is(err, archive.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDirArchive(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "pages"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "pages", "001.jpg"), []byte("page"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := archive.Open(root)
	if err != nil {
		t.Fatalf("Open dir: %v", err)
	}
	if a.Name() != "Folder" {
		t.Fatalf("unexpected name: %q", a.Name())
	}

	if err := a.WriteFile("MetronInfo.xml", []byte("<MetronInfo/>")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	found, err := archive.Contains(a, "MetronInfo.xml")
	if err != nil || !found {
		t.Fatalf("Contains = %v, %v", found, err)
	}

	if _, err := a.ReadFile("../escape"); err == nil {
		t.Fatal("expected traversal to be rejected")
	}

	if err := a.RemoveFile("MetronInfo.xml"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	found, err = archive.Contains(a, "MetronInfo.xml")
	if err != nil || found {
		t.Fatalf("entry still present after remove: %v, %v", found, err)
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.cbz")
	pathB := filepath.Join(dir, "b.cbz")
	testsupport.WriteCBZ(t, pathA, map[string][]byte{"pages/001.jpg": []byte("one")})
	testsupport.WriteCBZ(t, pathB, map[string][]byte{"pages/001.jpg": []byte("one")})

	a, err := archive.Open(pathA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := archive.Open(pathB)
	if err != nil {
		t.Fatal(err)
	}

	fpA, err := archive.Fingerprint(a)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	fpB, err := archive.Fingerprint(b)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fpA != fpB {
		t.Fatalf("identical contents should fingerprint equal: %q vs %q", fpA, fpB)
	}

	if err := b.WriteFile("MetronInfo.xml", []byte("<MetronInfo/>")); err != nil {
		t.Fatal(err)
	}
	fpB2, err := archive.Fingerprint(b)
	if err != nil {
		t.Fatal(err)
	}
	if fpB2 == fpB {
		t.Fatal("fingerprint should change after mutation")
	}
}
