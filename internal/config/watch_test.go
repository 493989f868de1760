package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func newWatchedLoader(t *testing.T, ctx context.Context, changes chan Config) *Loader {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte("mode: scroll\n"), 0o600))

	loader := NewLoader(changes, dir)
	_, err := loader.Read()
	require.NoError(t, err)
	loader.Watch(ctx)

	return loader
}

func TestReloadDelivered(t *testing.T) {
	changes := make(chan Config, 1)
	loader := newWatchedLoader(t, t.Context(), changes)

	loader.onConfigChange(fsnotify.Event{Op: fsnotify.Write})

	select {
	case conf := <-changes:
		require.Equal(t, ModeScroll, conf.Mode)
	case <-time.After(time.Second):
		t.Fatal("reload was not delivered")
	}
}

func TestReloadWithoutReceiver(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	loader := newWatchedLoader(t, ctx, make(chan Config))
	cancel()

	done := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Op: fsnotify.Write})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reload blocked after the receiver stopped")
	}
}
