package main

import (
	"path/filepath"
	"testing"

	"longbox/internal/comicmeta"
)

func TestRemoveDeletesTags(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTaggedArchive(t, filepath.Join(env.root, "saga-001.cbz"), &comicmeta.Metadata{
		Series: "Saga",
	})

	out, _, err := runCLI(t, env, "remove", path)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Removed Metron Info tags")

	md := readBackMetadata(t, path)
	if !md.IsEmpty() {
		t.Fatalf("tags survived removal: %+v", md)
	}

	// Removing again reports the absence without failing.
	out, _, err = runCLI(t, env, "remove", path)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	requireContains(t, out, "no Metron Info tags")
}
