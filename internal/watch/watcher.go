// Package watch keeps the library index current as archives change on disk.
//
// The watcher registers every directory under the configured roots with
// fsnotify and re-indexes archives after their events settle. Deleted or
// renamed-away archives are forgotten. Run blocks until the context is
// canceled, which is how the CLI `watch` command drives it.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"longbox/internal/config"
	"longbox/internal/library"
)

// Watcher re-indexes archives as filesystem events arrive.
type Watcher struct {
	cfg      *config.Config
	scanner  *library.Scanner
	logger   *slog.Logger
	debounce time.Duration
}

// New constructs a watcher over the given scanner.
func New(cfg *config.Config, scanner *library.Scanner, logger *slog.Logger) (*Watcher, error) {
	if cfg == nil || scanner == nil {
		return nil, errors.New("watcher requires config and scanner")
	}
	if logger == nil {
		logger = slog.Default()
	}
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		cfg:      cfg,
		scanner:  scanner,
		logger:   logger.With("component", "watch"),
		debounce: debounce,
	}, nil
}

// Run watches the roots until ctx is canceled. Roots default to the
// configured library roots.
func (w *Watcher) Run(ctx context.Context, roots []string) error {
	if len(roots) == 0 {
		roots = w.cfg.Library.Roots
	}
	if len(roots) == 0 {
		return errors.New("no library roots configured; pass roots or set library.roots")
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer notifier.Close()

	for _, root := range roots {
		if err := addRecursive(notifier, root); err != nil {
			return err
		}
	}
	w.logger.Info("watching library roots", "roots", strings.Join(roots, ","), "debounce", w.debounce)

	// Paths with a pending re-index, keyed to the time of their last event.
	pending := map[string]time.Time{}
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, notifier, event, pending)

		case err, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, path)
				if _, err := w.scanner.IndexArchive(ctx, path, ""); err != nil {
					w.logger.Warn("re-index failed", "path", path, "error", err)
				} else {
					w.logger.Info("re-indexed archive", "path", path)
				}
			}
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, notifier *fsnotify.Watcher, event fsnotify.Event, pending map[string]time.Time) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if isDir(path) {
			if err := addRecursive(notifier, path); err != nil {
				w.logger.Warn("watch directory failed", "path", path, "error", err)
			}
			return
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if !w.wantedExtension(path) {
			return
		}
		delete(pending, path)
		if removed, err := w.scanner.Forget(ctx, path); err != nil {
			w.logger.Warn("forget failed", "path", path, "error", err)
		} else if removed {
			w.logger.Info("forgot archive", "path", path)
		}
		return
	}

	if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
		if w.wantedExtension(path) {
			pending[path] = time.Now()
		}
	}
}

func (w *Watcher) wantedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.cfg.Library.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func addRecursive(notifier *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return notifier.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
