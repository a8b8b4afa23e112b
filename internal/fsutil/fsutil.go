// Package fsutil provides small filesystem helpers shared by the figure and
// report writers.
package fsutil

import (
	"fmt"
	"os"
)

// EnsureDir creates path and any missing parents. Calling it on an existing
// directory is a no-op; any real failure is surfaced.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// Exists reports whether the path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
