package organize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Runs against the same source directory are serialized across
// processes with a flock'd file keyed by the canonicalized source path.
// Lock files live under the user cache directory so the source itself
// is never touched.

func lockPath(source string) (string, error) {
	canonical := source
	if resolved, err := filepath.EvalSymlinks(source); err == nil {
		canonical = resolved
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache directory: %w", err)
	}

	sum := sha256.Sum256([]byte(canonical))
	name := hex.EncodeToString(sum[:8]) + ".lock"
	return filepath.Join(cacheDir, "shelve", "locks", name), nil
}

// acquireRunLock blocks until the per-source lock is held. The caller
// must Unlock the returned lock when the run finishes.
func acquireRunLock(source string) (*flock.Flock, error) {
	path, err := lockPath(source)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire run lock for %q: %w", source, err)
	}
	return lock, nil
}
