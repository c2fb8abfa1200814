//go:build !integration

package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig(t *testing.T) {
	path := writeConfig(t, "scaffy.json", `{"a": {"depNames": ["x"]}}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 8)
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- watchConfig(ctx, &out, path, func() { changes <- struct{}{} })
	}()

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange should run once before watching")
	}

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(`{"b": {"depNames": ["y"]}}`), 0o644); err != nil {
			return false
		}
		select {
		case <-changes:
			return true
		case <-time.After(500 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond, "a write to the config should trigger onChange")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchConfig should return once the context is cancelled")
	}

	assert.Contains(t, out.String(), "Watching "+path+" for changes", "status should go to the given writer")
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	err := watchConfig(context.Background(), &bytes.Buffer{}, "/does/not/exist/scaffy.json", func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
