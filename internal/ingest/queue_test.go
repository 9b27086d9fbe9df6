package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

func TestQueueProcessesEnqueuedDocuments(t *testing.T) {
	dir := t.TempDir()
	docs := map[string][]reader.Page{}
	var paths []string
	for i := 1; i <= 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("round%d.pdf", i))
		touch(t, path)
		// Distinct ranks per document so none collide as duplicates.
		header := reader.Row{"Rank", "Quota", "Institute", "Course", "Category", "Status"}
		table := reader.Table{header, header, header}
		for j := 0; j < 2; j++ {
			table = append(table, reader.Row{
				fmt.Sprintf("%d", 1000*i+j), "AI", "Example Medical Institute", "M.D. Medicine", "GENERAL", "Reported",
			})
		}
		docs[path] = []reader.Page{{Tables: []reader.Table{table}}}
		paths = append(paths, path)
	}

	store := newFakeStore()
	svc := NewService(newPersister(store, docs), nil, 0, testLogger())
	q := NewQueue(svc, testLogger(), WithWorkers(1), WithQueueSize(8))

	for _, p := range paths {
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: p, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	for _, p := range paths {
		assert.True(t, store.processed[filepath.Base(p)], "expected %s to be ingested", filepath.Base(p))
	}
}

func TestQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	svc := NewService(newPersister(newFakeStore(), nil), nil, 0, testLogger())
	q := NewQueue(svc, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second shutdown is a no-op

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "late.pdf"}))
}
