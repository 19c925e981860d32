package preflight

import (
	"context"

	"longbox/internal/config"
	"longbox/internal/library"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config. The store may
// be nil when the database could not be opened; that surfaces as a failed
// check rather than an error.
func RunAll(ctx context.Context, cfg *config.Config, store *library.Store) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	results = append(results, CheckDiskSpace("Data volume", cfg.Paths.DataDir))

	for _, root := range cfg.Library.Roots {
		results = append(results, CheckDirectoryAccess("Library root", root))
	}

	results = append(results, CheckDatabase(ctx, store))

	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
