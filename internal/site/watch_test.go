package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreate(t *testing.T) {
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	dir := t.TempDir()
	sub := filepath.Join(dir, "newpkg")
	require.NoError(t, os.Mkdir(sub, 0o755))

	t.Run("DirectoryAddedAndRebuilds", func(t *testing.T) {
		assert.True(t, handleCreate(watcher, sub))
		assert.Contains(t, watcher.WatchList(), sub)
	})

	t.Run("SourceFileRebuilds", func(t *testing.T) {
		path := filepath.Join(dir, "f.m")
		require.NoError(t, os.WriteFile(path, []byte("function f\nend\n"), 0o644))
		assert.True(t, handleCreate(watcher, path))
		assert.NotContains(t, watcher.WatchList(), path)
	})

	t.Run("OtherFileIgnored", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		assert.False(t, handleCreate(watcher, path))
	})

	t.Run("VanishedPathFallsBackToSuffix", func(t *testing.T) {
		assert.True(t, handleCreate(watcher, filepath.Join(dir, "gone.m")))
		assert.False(t, handleCreate(watcher, filepath.Join(dir, "gone.txt")))
	})
}
