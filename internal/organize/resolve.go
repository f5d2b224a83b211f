package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveUnique returns dir/filename if nothing exists there, otherwise
// the first "stem(N)ext" variant, counting N up from 1, that is free at
// the time of the check.
//
// The check and the caller's subsequent rename are not atomic: a
// concurrent writer to the same directory can claim the name in
// between. Cross-process runs on the same source are serialized by the
// run lock; within a process, callers must not organize the same
// directory from multiple goroutines.
func ResolveUnique(dir, filename string) (string, error) {
	target := filepath.Join(dir, filename)
	free, err := pathFree(target)
	if err != nil {
		return "", err
	}
	if free {
		return target, nil
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, counter, ext))
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

// pathFree reports whether nothing exists at path. Filesystem errors
// other than not-exist are surfaced immediately rather than retried.
func pathFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("check destination %q: %w", path, err)
	}
	return false, nil
}
