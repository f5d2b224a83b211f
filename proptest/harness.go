package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"shelve/internal/category"
	"shelve/internal/organize"
)

const (
	minFiles = 0
	maxFiles = 20
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// SeedFiles creates between minCount and maxCount uniquely named
// regular files in the harness directory and returns their names.
func (h *Harness) SeedFiles(minCount, maxCount int) []string {
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numFiles")
	seen := make(map[string]bool, n)
	var names []string

	for len(names) < n {
		name := fileNameGen().Draw(h.T, "fileName")
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := os.WriteFile(filepath.Join(h.Dir, name), []byte(name), 0o644); err != nil {
			h.T.Fatalf("failed to seed file: %v", err)
		}
		names = append(names, name)
	}
	return names
}

type EngineHarness struct {
	Harness
	Table  *category.Table
	Engine *organize.Engine
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}
		fn(&Harness{T: rt, Dir: iterDir})
	})
}

func RunWithEngine(t *testing.T, fn func(h *EngineHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		table := category.Default()
		fn(&EngineHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Table:   table,
			Engine:  organize.NewEngine(table, organize.WithoutLock()),
		})
	})
}
