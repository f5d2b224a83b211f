package proptest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelve/internal/organize"
)

func TestProperty_Resolve_FreeNameUnchanged(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		name := fileNameGen().Draw(h.T, "name")

		got, err := organize.ResolveUnique(h.Dir, name)
		if err != nil {
			h.T.Fatalf("resolve failed: %v", err)
		}
		if got != filepath.Join(h.Dir, name) {
			h.T.Fatalf("free name was rewritten: %q", got)
		}
	})
}

func TestProperty_Resolve_CounterSequence(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		name := fileNameGen().Draw(h.T, "name")
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)

		// Claim the base name, then each resolution in turn; the i-th
		// resolve must yield stem(i)ext.
		if err := os.WriteFile(filepath.Join(h.Dir, name), nil, 0o644); err != nil {
			h.T.Fatalf("seed failed: %v", err)
		}

		for i := 1; i <= 4; i++ {
			got, err := organize.ResolveUnique(h.Dir, name)
			if err != nil {
				h.T.Fatalf("resolve failed: %v", err)
			}
			want := filepath.Join(h.Dir, fmt.Sprintf("%s(%d)%s", stem, i, ext))
			if got != want {
				h.T.Fatalf("resolution %d: got %q, want %q", i, got, want)
			}
			if _, err := os.Lstat(got); !os.IsNotExist(err) {
				h.T.Fatalf("resolved path already exists: %q", got)
			}
			if err := os.WriteFile(got, nil, 0o644); err != nil {
				h.T.Fatalf("claim failed: %v", err)
			}
		}
	})
}
