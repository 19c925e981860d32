package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"longbox/internal/library"
)

// minFreeBytes is the disk headroom below which the data volume check fails.
const minFreeBytes = 256 << 20

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies the filesystem holding path has headroom for the
// index database and rewritten archives.
func CheckDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	detail := fmt.Sprintf("%s (%.1f GiB free)", path, float64(free)/(1<<30))
	if free < minFreeBytes {
		return Result{Name: name, Detail: detail + ", below the 256 MiB minimum"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckDatabase verifies the index database is reachable and intact.
func CheckDatabase(ctx context.Context, store *library.Store) Result {
	const name = "Index database"
	if store == nil {
		return Result{Name: name, Detail: "not opened"}
	}
	health, err := store.CheckHealth(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", health.DBPath, err)}
	}
	if !health.DatabaseExists {
		// A missing database is fine; the first scan creates it.
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not yet created)", health.DBPath)}
	}
	if !health.IntegrityCheck {
		return Result{Name: name, Detail: fmt.Sprintf("%s (integrity check failed)", health.DBPath)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d entries)", health.DBPath, health.TotalEntries)}
}
