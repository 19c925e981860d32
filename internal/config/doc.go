// Package config loads, validates, and normalizes longbox configuration.
//
// Configuration lives in a TOML file (default ~/.config/longbox/config.toml,
// with a project-local longbox.toml fallback). Load applies defaults, expands
// paths, and validates the result so the rest of the program can trust every
// field. A sample config is embedded for `longbox config init`.
package config
