package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

type fakeVerifier struct {
	calls []string
	fail  bool
}

func (v *fakeVerifier) SampleDocument(_ context.Context, path string, _ constants.Layout, _ int, _ uuid.UUID, _ float64) (int, error) {
	v.calls = append(v.calls, filepath.Base(path))
	if v.fail {
		return 0, assert.AnError
	}
	return 2, nil
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "round1.pdf")
	seen := filepath.Join(dir, "round2.pdf")
	broken := filepath.Join(dir, "broken.pdf")
	touch(t, good)
	touch(t, seen)
	touch(t, broken)
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))

	store := newFakeStore()
	store.processed["round2.pdf"] = true
	// broken.pdf has no registered document, so its open fails.
	p := newPersister(store, map[string][]reader.Page{
		good: singleRoundPages(4),
		seen: singleRoundPages(4),
	})
	verifier := &fakeVerifier{}
	svc := NewService(p, verifier, 0.5, testLogger())

	results, stats, err := svc.ProcessDirectory(context.Background(), dir, "")
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(1), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Equal(t, uint32(1), stats.Failed)
	assert.Len(t, results, 3)

	// Only the freshly ingested document gets sampled.
	assert.Equal(t, []string{"round1.pdf"}, verifier.calls)
}

func TestProcessDirectoryEmptyRoot(t *testing.T) {
	svc := NewService(newPersister(newFakeStore(), nil), nil, 0, testLogger())
	_, _, err := svc.ProcessDirectory(context.Background(), "  ", "")
	assert.Error(t, err)
}

func TestProcessFileSamplingFailureKeepsIngest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round1.pdf")
	touch(t, path)

	store := newFakeStore()
	p := newPersister(store, map[string][]reader.Page{path: singleRoundPages(4)})
	svc := NewService(p, &fakeVerifier{fail: true}, 0.5, testLogger())

	result, err := svc.ProcessFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Inserted)
	assert.True(t, store.processed["round1.pdf"])
}

func TestProcessFileNoSamplingWhenRateZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round1.pdf")
	touch(t, path)

	verifier := &fakeVerifier{}
	p := newPersister(newFakeStore(), map[string][]reader.Page{path: singleRoundPages(4)})
	svc := NewService(p, verifier, 0, testLogger())

	_, err := svc.ProcessFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Empty(t, verifier.calls)
}
