package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"longbox/internal/config"
)

// Store manages index persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the index database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Upsert inserts or updates the entry keyed by its archive path.
func (s *Store) Upsert(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	if entry.Path == "" {
		return errors.New("entry path is empty")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO entries (
            path, fingerprint, series, issue, title, publisher, year,
            page_count, tagged, scan_session, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            fingerprint = excluded.fingerprint,
            series = excluded.series,
            issue = excluded.issue,
            title = excluded.title,
            publisher = excluded.publisher,
            year = excluded.year,
            page_count = excluded.page_count,
            tagged = excluded.tagged,
            scan_session = excluded.scan_session,
            updated_at = excluded.updated_at`,
		entry.Path,
		nullableString(entry.Fingerprint),
		nullableString(entry.Series),
		nullableString(entry.Issue),
		nullableString(entry.Title),
		nullableString(entry.Publisher),
		entry.Year,
		entry.PageCount,
		boolToInt(entry.Tagged),
		nullableString(entry.ScanSession),
		timestamp,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	entry.UpdatedAt = now
	return nil
}

// GetByPath fetches an entry by archive path. Absent paths return nil.
func (s *Store) GetByPath(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE path = ?`, path)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List returns all entries ordered by series, issue, then path.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY series, issue, path`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Search returns entries whose series, title, or path contains the term,
// matching case-insensitively.
func (s *Store) Search(ctx context.Context, term string) ([]*Entry, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM entries
         WHERE lower(coalesce(series, '')) LIKE ?
            OR lower(coalesce(title, '')) LIKE ?
            OR lower(path) LIKE ?
         ORDER BY series, issue, path`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// RemoveByPath deletes the entry for an archive path.
func (s *Store) RemoveByPath(ctx context.Context, path string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE path = ?`, path)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// PruneStale removes entries under the given roots that were not touched by
// the session, i.e. whose archives disappeared since the last scan.
func (s *Store) PruneStale(ctx context.Context, session string, roots []string) (int64, error) {
	if len(roots) == 0 {
		return 0, nil
	}
	clauses := make([]string, 0, len(roots))
	args := []any{session}
	for _, root := range roots {
		clauses = append(clauses, "path LIKE ?")
		args = append(args, strings.TrimRight(root, "/")+"/%")
	}
	query := `DELETE FROM entries WHERE (scan_session IS NULL OR scan_session != ?) AND (` +
		strings.Join(clauses, " OR ") + `)`
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune stale entries: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns entry counts for the index.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1), COALESCE(SUM(tagged), 0) FROM entries`)
	if err := row.Scan(&stats.Total, &stats.Tagged); err != nil {
		return Stats{}, fmt.Errorf("index stats: %w", err)
	}
	stats.Untagged = stats.Total - stats.Tagged
	return stats, nil
}

// CheckHealth returns diagnostic information about the index database.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat index database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("index database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping index database: %w", err)
	}
	health.DatabaseReadable = true

	row := s.db.QueryRowContext(connCtx, `SELECT COUNT(1) FROM entries`)
	if err := row.Scan(&health.TotalEntries); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count entries: %w", err)
	}

	row = s.db.QueryRowContext(connCtx, "PRAGMA integrity_check")
	var integrityResult string
	if err := row.Scan(&integrityResult); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = strings.EqualFold(integrityResult, "ok")

	return health, nil
}

const entryColumns = "id, path, fingerprint, series, issue, title, publisher, year, page_count, tagged, scan_session, created_at, updated_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id          int64
		path        string
		fingerprint sql.NullString
		series      sql.NullString
		issue       sql.NullString
		title       sql.NullString
		publisher   sql.NullString
		year        int
		pageCount   int
		tagged      int
		session     sql.NullString
		createdRaw  string
		updatedRaw  string
	)

	if err := scanner.Scan(
		&id, &path, &fingerprint, &series, &issue, &title, &publisher,
		&year, &pageCount, &tagged, &session, &createdRaw, &updatedRaw,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:          id,
		Path:        path,
		Fingerprint: fingerprint.String,
		Series:      series.String,
		Issue:       issue.String,
		Title:       title.String,
		Publisher:   publisher.String,
		Year:        year,
		PageCount:   pageCount,
		Tagged:      tagged != 0,
		ScanSession: session.String,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		entry.UpdatedAt = updated
	}
	return entry, nil
}

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
