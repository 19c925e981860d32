// Package main hosts the longbox CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into tag
// reads and writes, library scans, watch sessions, environment checks, and
// configuration scaffolding. It centralizes configuration resolution, logger
// setup, and tag format lookup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
