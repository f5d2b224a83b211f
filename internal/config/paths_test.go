package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelve/internal/config"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("expands tilde prefix", func(t *testing.T) {
		got, err := config.ExpandPath("~/downloads")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "downloads"), got)
	})

	t.Run("expands bare tilde", func(t *testing.T) {
		got, err := config.ExpandPath("~")
		require.NoError(t, err)
		assert.Equal(t, home, got)
	})

	t.Run("makes relative paths absolute", func(t *testing.T) {
		got, err := config.ExpandPath("downloads")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "downloads", filepath.Base(got))
	})

	t.Run("leaves absolute paths alone", func(t *testing.T) {
		got, err := config.ExpandPath("/tmp/downloads")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/downloads", got)
	})
}

func TestShortenPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("replaces home prefix", func(t *testing.T) {
		assert.Equal(t, filepath.Join("~", "downloads"), config.ShortenPath(filepath.Join(home, "downloads")))
	})

	t.Run("home itself becomes tilde", func(t *testing.T) {
		assert.Equal(t, "~", config.ShortenPath(home))
	})

	t.Run("paths outside home are unchanged", func(t *testing.T) {
		assert.Equal(t, "/var/tmp/x", config.ShortenPath("/var/tmp/x"))
	})

	t.Run("sibling of home is not shortened", func(t *testing.T) {
		assert.Equal(t, home+"2/x", config.ShortenPath(home+"2/x"))
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("honors XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/shelve/config.toml", config.DefaultConfigPath())
	})

	t.Run("falls back to home config dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "shelve", "config.toml"), config.DefaultConfigPath())
	})
}
