package organize

import (
	"fmt"
	"os"
)

// EnsureDir creates path and any missing parents. It is idempotent for
// an existing directory and fails if path (or a parent) exists as a
// regular file.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", path, err)
	}
	return nil
}
