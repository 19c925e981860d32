// Package testsupport provides fixtures shared by package tests: temp-rooted
// configs and throwaway comic archives.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"longbox/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// The library root exists and is empty.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	root := filepath.Join(base, "comics")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("create library root: %v", err)
	}
	cfg.Library.Roots = []string{root}
	return &cfg
}
