package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(`{}`), 0644))

	fired := make(chan struct{}, 8)
	w, err := New(payload, 50*time.Millisecond, zap.NewNop(), func() {
		fired <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(payload, []byte(`{"version":"1.0.0"}`), 0644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback did not fire after payload write")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(`{}`), 0644))

	fired := make(chan struct{}, 8)
	w, err := New(payload, time.Millisecond, zap.NewNop(), func() {
		fired <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644))

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(`{}`), 0644))

	w, err := New(payload, time.Millisecond, zap.NewNop(), func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}

func TestWatcher_StopAfterFailedStart(t *testing.T) {
	// The containing directory does not exist, so Start fails before the
	// event loop launches. Stop must still return promptly.
	payload := filepath.Join(t.TempDir(), "missing", "payload.json")

	w, err := New(payload, time.Millisecond, zap.NewNop(), func() {})
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after a failed Start")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(`{}`), 0644))

	fired := make(chan struct{}, 64)
	w, err := New(payload, time.Second, zap.NewNop(), func() {
		fired <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(payload, []byte(`{}`), 0644))
	}

	// The burst fits inside one debounce window: the first event fires and
	// the rest are swallowed.
	time.Sleep(500 * time.Millisecond)
	require.Equal(t, 1, len(fired))
}
