package main

import (
	"testing"
)

func TestDoctorPassesInHealthyEnvironment(t *testing.T) {
	env := setupCLITestEnv(t)
	// A scan creates the data directory and index database.
	if _, _, err := runCLI(t, env, "scan"); err != nil {
		t.Fatalf("scan: %v", err)
	}

	out, _, err := runCLI(t, env, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "All checks passed.")
	requireContains(t, out, "Index database")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "longbox dev")
}
