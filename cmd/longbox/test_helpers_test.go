package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"longbox/internal/archive"
	"longbox/internal/comicmeta"
	"longbox/internal/metroninfo"
	"longbox/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	root       string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	root := filepath.Join(base, "comics")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	dataDir := filepath.Join(base, "data")

	configPath := filepath.Join(homeDir, ".config", "longbox", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[library]\nroots = [%q]\n",
		dataDir,
		filepath.Join(base, "logs"),
		root,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{configPath: configPath, root: root, dataDir: dataDir}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if env != nil {
		flags = append(flags, "--config", env.configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTaggedArchive(t *testing.T, path string, md *comicmeta.Metadata) string {
	t.Helper()
	testsupport.WriteCBZ(t, path, testsupport.PageEntries(2))
	a, err := archive.Open(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if err := metroninfo.New(nil).WriteTags(a, md); err != nil {
		t.Fatalf("tag archive: %v", err)
	}
	return path
}

func writeUntaggedArchive(t *testing.T, path string) string {
	t.Helper()
	return testsupport.WriteCBZ(t, path, testsupport.PageEntries(2))
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
