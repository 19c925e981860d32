package main

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestWatchRefusesWhenDisabled(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "watch")
	if err == nil {
		t.Fatal("expected watch to refuse while watch.enabled is off")
	}
	if !strings.Contains(err.Error(), "watch.enabled") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWatchEnabledRequiresRoots(t *testing.T) {
	env := setupCLITestEnv(t)
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n\n[watch]\nenabled = true\n", env.dataDir)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, env, "watch")
	if err == nil {
		t.Fatal("expected watch to fail without roots")
	}
	if !strings.Contains(err.Error(), "roots") {
		t.Fatalf("unexpected error: %v", err)
	}
}
