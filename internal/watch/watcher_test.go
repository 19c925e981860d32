package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"longbox/internal/library"
	"longbox/internal/metroninfo"
	"longbox/internal/testsupport"
	"longbox/internal/watch"
)

func newTestWatcher(t *testing.T) (*watch.Watcher, *library.Store, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	cfg.Watch.DebounceMS = 50

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	scanner, err := library.NewScanner(cfg, store, metroninfo.New(nil), nil)
	if err != nil {
		t.Fatalf("new scanner: %v", err)
	}
	watcher, err := watch.New(cfg, scanner, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	return watcher, store, cfg.Library.Roots[0]
}

func waitForEntry(t *testing.T, store *library.Store, path string, want bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		entry, err := store.GetByPath(context.Background(), path)
		if err != nil {
			t.Fatalf("GetByPath: %v", err)
		}
		if (entry != nil) == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("entry %s: presence never became %v", path, want)
}

func TestWatcherIndexesNewArchive(t *testing.T) {
	watcher, store, root := newTestWatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx, nil) }()

	path := filepath.Join(root, "issue.cbz")
	testsupport.WriteCBZ(t, path, testsupport.PageEntries(1))
	waitForEntry(t, store, path, true)

	// Deleting the archive forgets it.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	waitForEntry(t, store, path, false)

	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Library.Roots = nil

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	scanner, err := library.NewScanner(cfg, store, metroninfo.New(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	watcher, err := watch.New(cfg, scanner, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := watcher.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error when no roots are configured")
	}
}
