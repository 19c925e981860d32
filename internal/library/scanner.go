package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"longbox/internal/archive"
	"longbox/internal/config"
	"longbox/internal/tagformat"
)

// Scanner walks library roots and reconciles the index with what it finds.
type Scanner struct {
	cfg    *config.Config
	store  *Store
	format tagformat.Format
	logger *slog.Logger
	lock   *flock.Flock
}

// NewScanner constructs a scanner over the given store and tag format.
func NewScanner(cfg *config.Config, store *Store, format tagformat.Format, logger *slog.Logger) (*Scanner, error) {
	if cfg == nil || store == nil || format == nil {
		return nil, errors.New("scanner requires config, store, and tag format")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		cfg:    cfg,
		store:  store,
		format: format,
		logger: logger.With("component", "scanner"),
		lock:   flock.New(cfg.LockPath()),
	}, nil
}

// Scan indexes every archive under the roots, then prunes entries whose
// archives no longer exist. Roots default to the configured library roots.
// Only one scan may run against a library at a time; a held lock fails fast.
func (s *Scanner) Scan(ctx context.Context, roots []string) (ScanSummary, error) {
	if len(roots) == 0 {
		roots = s.cfg.Library.Roots
	}
	if len(roots) == 0 {
		return ScanSummary{}, errors.New("no library roots configured; pass roots or set library.roots")
	}

	// Index entries store absolute paths, so resolve the roots up front to
	// keep walking and pruning in agreement.
	expanded := make([]string, 0, len(roots))
	for _, root := range roots {
		resolved, err := config.ExpandPath(root)
		if err != nil {
			return ScanSummary{}, err
		}
		expanded = append(expanded, resolved)
	}
	roots = expanded

	locked, err := s.lock.TryLock()
	if err != nil {
		return ScanSummary{}, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return ScanSummary{}, errors.New("another scan is already running against this library")
	}
	defer func() { _ = s.lock.Unlock() }()

	summary := ScanSummary{Session: uuid.NewString()}
	started := time.Now()
	s.logger.Info("scan started", "session", summary.Session, "roots", strings.Join(roots, ","))

	for _, root := range roots {
		if err := s.scanRoot(ctx, root, &summary); err != nil {
			return summary, err
		}
	}

	pruned, err := s.store.PruneStale(ctx, summary.Session, roots)
	if err != nil {
		return summary, err
	}
	summary.Pruned = pruned
	summary.Elapsed = time.Since(started)

	s.logger.Info("scan finished",
		"session", summary.Session,
		"scanned", summary.Scanned,
		"tagged", summary.Tagged,
		"failed", summary.Failed,
		"pruned", summary.Pruned,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}

func (s *Scanner) scanRoot(ctx context.Context, root string, summary *ScanSummary) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := entry.Name()
		if s.cfg.Library.SkipHidden && strings.HasPrefix(name, ".") && path != root {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if !s.wantedExtension(name) {
			return nil
		}

		summary.Scanned++
		indexed, err := s.IndexArchive(ctx, path, summary.Session)
		if err != nil {
			summary.Failed++
			s.logger.Warn("index failed", "path", path, "error", err)
			return nil
		}
		if indexed.Tagged {
			summary.Tagged++
		} else {
			summary.Untagged++
		}
		return nil
	})
}

// IndexArchive reads one archive and upserts its index entry. A previously
// indexed archive with an unchanged fingerprint is refreshed without
// re-reading tags.
func (s *Scanner) IndexArchive(ctx context.Context, path, session string) (*Entry, error) {
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	a, err := archive.Open(resolved)
	if err != nil {
		return nil, err
	}

	fingerprint, err := archive.Fingerprint(a)
	if err != nil {
		return nil, err
	}

	if existing, err := s.store.GetByPath(ctx, resolved); err != nil {
		return nil, err
	} else if existing != nil && existing.Fingerprint == fingerprint {
		existing.ScanSession = session
		if err := s.store.Upsert(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	entry := &Entry{
		Path:        resolved,
		Fingerprint: fingerprint,
		ScanSession: session,
	}
	if s.format.HasTags(a) {
		md, err := s.format.ReadTags(a)
		if err != nil {
			return nil, err
		}
		entry.Tagged = true
		entry.Series = md.Series
		entry.Issue = md.Issue
		entry.Title = md.Title
		entry.Publisher = md.Publisher
		entry.Year = md.Year
		entry.PageCount = md.PageCount
	}

	if err := s.store.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	s.logger.Debug("indexed archive", "path", resolved, "tagged", entry.Tagged)
	return entry, nil
}

// Forget removes an archive from the index, e.g. after its file was deleted.
func (s *Scanner) Forget(ctx context.Context, path string) (bool, error) {
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return false, err
	}
	return s.store.RemoveByPath(ctx, resolved)
}

func (s *Scanner) wantedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range s.cfg.Library.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
