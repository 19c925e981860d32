package library_test

import (
	"context"
	"path/filepath"
	"testing"

	"longbox/internal/library"
	"longbox/internal/testsupport"
)

func openTestStore(t *testing.T) *library.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreUpsertAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entry := &library.Entry{
		Path:        "/comics/Saga/saga-001.cbz",
		Fingerprint: "abc",
		Series:      "Saga",
		Issue:       "1",
		Publisher:   "Image",
		Year:        2012,
		Tagged:      true,
		ScanSession: "session-1",
	}
	if err := store.Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := store.GetByPath(ctx, entry.Path)
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if got == nil {
		t.Fatal("entry not found")
	}
	if got.Series != "Saga" || got.Issue != "1" || !got.Tagged || got.Year != 2012 {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.ID == 0 {
		t.Fatal("expected row id")
	}
	if got.UpdatedAt.IsZero() || got.CreatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", got)
	}

	// Updating the same path keeps a single row.
	entry.Issue = "2"
	entry.Fingerprint = "def"
	if err := store.Upsert(ctx, entry); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Issue != "2" || entries[0].Fingerprint != "def" {
		t.Fatalf("upsert did not replace: %+v", entries)
	}
}

func TestStoreGetMissingReturnsNil(t *testing.T) {
	store := openTestStore(t)
	got, err := store.GetByPath(context.Background(), "/nope.cbz")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestStoreSearch(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seed := []*library.Entry{
		{Path: "/comics/Saga/saga-001.cbz", Series: "Saga"},
		{Path: "/comics/Hellions/hellions-003.cbz", Series: "Hellions", Title: "A Story"},
		{Path: "/comics/misc/untitled.cbz"},
	}
	for _, entry := range seed {
		if err := store.Upsert(ctx, entry); err != nil {
			t.Fatal(err)
		}
	}

	bySeries, err := store.Search(ctx, "saga")
	if err != nil {
		t.Fatal(err)
	}
	if len(bySeries) != 1 || bySeries[0].Series != "Saga" {
		t.Fatalf("unexpected series match: %+v", bySeries)
	}

	byTitle, err := store.Search(ctx, "story")
	if err != nil {
		t.Fatal(err)
	}
	if len(byTitle) != 1 || byTitle[0].Series != "Hellions" {
		t.Fatalf("unexpected title match: %+v", byTitle)
	}

	byPath, err := store.Search(ctx, "misc")
	if err != nil {
		t.Fatal(err)
	}
	if len(byPath) != 1 || byPath[0].Path != "/comics/misc/untitled.cbz" {
		t.Fatalf("unexpected path match: %+v", byPath)
	}

	none, err := store.Search(ctx, "nonesuch")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestStoreRemoveByPath(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entry := &library.Entry{Path: "/comics/one.cbz"}
	if err := store.Upsert(ctx, entry); err != nil {
		t.Fatal(err)
	}

	removed, err := store.RemoveByPath(ctx, entry.Path)
	if err != nil || !removed {
		t.Fatalf("RemoveByPath = %v, %v", removed, err)
	}
	removed, err = store.RemoveByPath(ctx, entry.Path)
	if err != nil || removed {
		t.Fatalf("second RemoveByPath = %v, %v", removed, err)
	}
}

func TestStorePruneStale(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	root := "/comics"
	seed := []*library.Entry{
		{Path: filepath.Join(root, "current.cbz"), ScanSession: "new"},
		{Path: filepath.Join(root, "stale.cbz"), ScanSession: "old"},
		{Path: "/elsewhere/outside.cbz", ScanSession: "old"},
	}
	for _, entry := range seed {
		if err := store.Upsert(ctx, entry); err != nil {
			t.Fatal(err)
		}
	}

	pruned, err := store.PruneStale(ctx, "new", []string{root})
	if err != nil {
		t.Fatalf("PruneStale: %v", err)
	}
	if pruned != 1 {
		t.Fatalf("pruned %d entries, want 1", pruned)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("unexpected survivors: %+v", entries)
	}
	for _, entry := range entries {
		if entry.Path == filepath.Join(root, "stale.cbz") {
			t.Fatalf("stale entry survived: %+v", entry)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, entry := range []*library.Entry{
		{Path: "/comics/a.cbz", Tagged: true},
		{Path: "/comics/b.cbz", Tagged: true},
		{Path: "/comics/c.cbz"},
	} {
		if err := store.Upsert(ctx, entry); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Tagged != 2 || stats.Untagged != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStoreCheckHealth(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, &library.Entry{Path: "/comics/a.cbz"}); err != nil {
		t.Fatal(err)
	}

	health, err := store.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.IntegrityCheck {
		t.Fatalf("unexpected health: %+v", health)
	}
	if health.TotalEntries != 1 {
		t.Fatalf("unexpected entry count: %+v", health)
	}
}
