package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPaths(t *testing.T, events <-chan string, want int) map[string]bool {
	t.Helper()
	seen := map[string]bool{}
	deadline := time.After(10 * time.Second)
	for len(seen) < want {
		select {
		case p, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed after %d of %d paths", len(seen), want)
			}
			seen[p] = true
		case <-deadline:
			t.Fatalf("timed out after %d of %d paths", len(seen), want)
		}
	}
	return seen
}

func TestWatcherInitialScanDeliversEveryDocument(t *testing.T) {
	dir := t.TempDir()
	// More documents than the event channel buffers, so delivery has to
	// keep pace with the consumer instead of racing it.
	const n = 300
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("allotment%03d.pdf", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true, Debounce: time.Millisecond})
	require.NoError(t, err)

	seen := collectPaths(t, events, n)
	assert.Len(t, seen, n)
}

func TestWatcherCoalescesBurstsWithoutLosingPaths(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, Debounce: time.Millisecond})
	require.NoError(t, err)

	// Boards republish whole directories at once; a burst of creates
	// under a short debounce must still surface every distinct file.
	const n = 500
	want := map[string]bool{}
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("round%03d.pdf", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
		want[name] = true
	}

	seen := collectPaths(t, events, n)
	for p := range seen {
		assert.Contains(t, want, p)
	}
}

func TestWatcherIgnoresNonPDFEvents(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.pdf"), []byte("x"), 0o644))

	select {
	case p := <-events:
		assert.Equal(t, filepath.Join(dir, "list.pdf"), p)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pdf event")
	}
}
