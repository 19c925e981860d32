// Package preflight verifies the environment before longbox touches a
// library: directories exist and are writable, the data volume has headroom,
// and the index database answers. The CLI `doctor` command renders the
// results.
package preflight
