package organize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelve/internal/organize"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveUnique(t *testing.T) {
	t.Run("returns input path unchanged in empty directory", func(t *testing.T) {
		dir := t.TempDir()

		got, err := organize.ResolveUnique(dir, "a.txt")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a.txt"), got)
	})

	t.Run("appends counter on collision", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a.txt"))

		got, err := organize.ResolveUnique(dir, "a.txt")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a(1).txt"), got)
	})

	t.Run("skips taken counters", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a.txt"))
		touch(t, filepath.Join(dir, "a(1).txt"))

		got, err := organize.ResolveUnique(dir, "a.txt")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a(2).txt"), got)
	})

	t.Run("counter goes before the extension", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "report.final.pdf"))

		got, err := organize.ResolveUnique(dir, "report.final.pdf")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.final(1).pdf"), got)
	})

	t.Run("handles names without extension", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "notes"))

		got, err := organize.ResolveUnique(dir, "notes")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "notes(1)"), got)
	})

	t.Run("collision with a directory also counts", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "a.txt"), 0o755))

		got, err := organize.ResolveUnique(dir, "a.txt")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a(1).txt"), got)
	})

	t.Run("never returns an existing path", func(t *testing.T) {
		dir := t.TempDir()
		for range 5 {
			got, err := organize.ResolveUnique(dir, "a.txt")
			require.NoError(t, err)
			_, statErr := os.Lstat(got)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
			touch(t, got)
		}
	})
}
