package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	w, err := NewFileWatcher(path)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	msgs := make(chan any, 1)
	go func() { msgs <- w.Start()() }()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"T":{}}`), 0o644))

	select {
	case msg := <-msgs:
		changed, ok := msg.(fileChangedMsg)
		require.True(t, ok, "got %T", msg)
		assert.Equal(t, w.Path(), changed.path)
		assert.False(t, changed.removed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestFileWatcher_CloseEndsStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	w, err := NewFileWatcher(path)
	require.NoError(t, err)

	done := make(chan any, 1)
	go func() { done <- w.Start()() }()

	require.NoError(t, w.Close())

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Close")
	}
}

func TestNewFileWatcher_MissingDirectory(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "doc.json"))
	assert.Error(t, err)
}
