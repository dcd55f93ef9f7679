package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestReloadAfterStopDoesNotBlock(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tvwindow.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("debug: true\n"), 0o600))

	// Nobody ever receives from this channel.
	changes := make(chan Config)
	loader := NewLoader(changes, configPath)
	loader.Stop()
	loader.Stop()

	finished := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Write})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("config reload blocked after stop")
	}
}

func TestReloadIsBroadcast(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tvwindow.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("debug: true\n"), 0o600))

	changes := make(chan Config, 1)
	loader := NewLoader(changes, configPath)
	loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Chmod})
	require.Empty(t, changes)

	loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Write})
	conf := <-changes
	require.True(t, conf.Debug)
}
