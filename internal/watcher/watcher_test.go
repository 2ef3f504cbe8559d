package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewfun/authtui/internal/pubsub"
	"github.com/interviewfun/authtui/internal/watcher"
)

func start(t *testing.T, path string) <-chan pubsub.Event[watcher.Change] {
	t.Helper()
	w, err := watcher.New(watcher.Config{Path: path, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	events := w.Broker().Subscribe(t.Context())
	require.NoError(t, w.Start())
	return events
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o600))
	events := start(t, path)

	for i := range 10 {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("a: %d", i)), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case ev := <-events:
		assert.Equal(t, pubsub.ChangedEvent, ev.Type)
		assert.Equal(t, path, ev.Payload.Path)
		assert.NoError(t, ev.Payload.Err)
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}

	select {
	case <-events:
		t.Fatal("writes were not coalesced")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	events := start(t, path)

	require.NoError(t, os.WriteFile(other, []byte("y"), 0o600))

	select {
	case <-events:
		t.Fatal("unexpected event for another file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DetectsRecreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o600))
	events := start(t, path)

	tmp := filepath.Join(dir, "config.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("a: 2"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case ev := <-events:
		assert.Equal(t, pubsub.ChangedEvent, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("expected a change event after rename")
	}
}

func TestWatcher_StartFailsForMissingDir(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing", "config.yaml")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	require.Error(t, w.Start())
}

func TestWatcher_StopClosesBroker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o600))

	w, err := watcher.New(watcher.DefaultConfig(path))
	require.NoError(t, err)
	events := w.Broker().Subscribe(t.Context())
	require.NoError(t, w.Start())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	_, ok := <-events
	assert.False(t, ok)
}
