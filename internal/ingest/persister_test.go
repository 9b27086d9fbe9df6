package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

// fakeStore is an in-memory RecordStore keyed the way the real unique
// index is.
type fakeStore struct {
	processed map[string]bool
	records   map[string]extract.Record

	begun      int
	committed  int
	rolledBack int
	batchSizes []int

	failInsertAt int // 1-based insert ordinal to fail hard at; 0 = never
	inserts      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		processed: map[string]bool{},
		records:   map[string]extract.Record{},
	}
}

func recordKey(r extract.Record) string {
	return fmt.Sprintf("%d|%d|%d|%s|%s|%s|%s", r.Year, r.Round, r.Rank, r.Quota, r.CollegeName, r.Course, r.Category)
}

func (s *fakeStore) ProcessedFileExists(_ context.Context, filename string) (bool, error) {
	return s.processed[filename], nil
}

func (s *fakeStore) Begin(context.Context) (RecordBatch, error) {
	s.begun++
	return &fakeBatch{store: s}, nil
}

func (s *fakeStore) CreateProcessedFile(_ context.Context, filename string, _ constants.Layout, _ int) (uuid.UUID, error) {
	s.processed[filename] = true
	return uuid.New(), nil
}

type fakeBatch struct {
	store   *fakeStore
	staged  map[string]extract.Record
	inBatch int
}

func (b *fakeBatch) Insert(_ context.Context, rec extract.Record) (uuid.UUID, error) {
	b.store.inserts++
	if b.store.failInsertAt > 0 && b.store.inserts == b.store.failInsertAt {
		return uuid.Nil, errors.New("connection reset")
	}
	key := recordKey(rec)
	if _, ok := b.store.records[key]; ok {
		return uuid.Nil, ErrDuplicateRecord
	}
	if b.staged == nil {
		b.staged = map[string]extract.Record{}
	}
	if _, ok := b.staged[key]; ok {
		return uuid.Nil, ErrDuplicateRecord
	}
	b.staged[key] = rec
	b.inBatch++
	return uuid.New(), nil
}

func (b *fakeBatch) Commit(context.Context) error {
	for k, v := range b.staged {
		b.store.records[k] = v
	}
	b.store.committed++
	b.store.batchSizes = append(b.store.batchSizes, b.inBatch)
	return nil
}

func (b *fakeBatch) Rollback(context.Context) error {
	b.store.rolledBack++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func singleRoundPages(n int) []reader.Page {
	header := reader.Row{"Rank", "Quota", "Institute", "Course", "Category", "Status"}
	table := reader.Table{header, header, header}
	for i := 0; i < n; i++ {
		table = append(table, reader.Row{
			fmt.Sprintf("%d", 100+i), "AI", "Example Medical Institute", "M.D. Medicine", "GENERAL", "Reported",
		})
	}
	return []reader.Page{{Tables: []reader.Table{table}}}
}

func newPersister(store RecordStore, docs map[string][]reader.Page) *BatchPersister {
	opener := &reader.StaticOpener{Docs: docs}
	ex := extract.NewExtractor(opener, extract.DefaultProfiles(), 2024, testLogger())
	return NewBatchPersister(store, ex, testLogger())
}

func TestIngestDocumentInsertsAndMarksFile(t *testing.T) {
	store := newFakeStore()
	p := newPersister(store, map[string][]reader.Page{
		"/data/round1.pdf": singleRoundPages(7),
	})

	result, err := p.IngestDocument(context.Background(), "/data/round1.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, "round1.pdf", result.Filename)
	assert.Equal(t, constants.LayoutAllIndiaSingleRound, result.Layout)
	assert.Equal(t, 1, result.Round)
	assert.Equal(t, 7, result.Extracted)
	assert.Equal(t, 7, result.Inserted)
	assert.Zero(t, result.Duplicates)
	assert.False(t, result.Skipped)
	assert.NotEqual(t, uuid.Nil, result.FileID)
	assert.True(t, store.processed["round1.pdf"])
}

func TestIngestDocumentBatchBoundaries(t *testing.T) {
	store := newFakeStore()
	p := newPersister(store, map[string][]reader.Page{
		"/data/round1.pdf": singleRoundPages(250),
	})

	result, err := p.IngestDocument(context.Background(), "/data/round1.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, 250, result.Inserted)
	// 100 + 100 + 50
	assert.Equal(t, []int{100, 100, 50}, store.batchSizes)
	assert.Equal(t, 3, store.begun)
	assert.Equal(t, 3, store.committed)
}

func TestIngestDocumentIdempotentOnFilename(t *testing.T) {
	store := newFakeStore()
	store.processed["round1.pdf"] = true
	p := newPersister(store, map[string][]reader.Page{
		"/data/round1.pdf": singleRoundPages(5),
	})

	result, err := p.IngestDocument(context.Background(), "/data/round1.pdf", "")
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Zero(t, result.Extracted)
	assert.Zero(t, store.begun)
}

func TestIngestDocumentDuplicatesDoNotPoisonBatch(t *testing.T) {
	store := newFakeStore()
	pages := singleRoundPages(3)
	// Re-append the last data row so the stream yields it twice.
	table := pages[0].Tables[0]
	pages[0].Tables[0] = append(table, table[len(table)-1])

	p := newPersister(store, map[string][]reader.Page{"/data/round1.pdf": pages})

	result, err := p.IngestDocument(context.Background(), "/data/round1.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Extracted)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 1, result.Duplicates)
	assert.True(t, store.processed["round1.pdf"])
}

func TestIngestDocumentNothingInsertedLeavesFileUnmarked(t *testing.T) {
	store := newFakeStore()
	// Headers only: classification succeeds, extraction yields nothing.
	header := reader.Row{"Rank", "Quota", "Institute", "Course", "Category", "Status"}
	p := newPersister(store, map[string][]reader.Page{
		"/data/empty.pdf": {{Tables: []reader.Table{{header, header, header}}}},
	})

	result, err := p.IngestDocument(context.Background(), "/data/empty.pdf", "")
	require.NoError(t, err)

	assert.Zero(t, result.Inserted)
	assert.False(t, store.processed["empty.pdf"])
}

func TestIngestDocumentInsertFailureRollsBack(t *testing.T) {
	store := newFakeStore()
	store.failInsertAt = 3
	p := newPersister(store, map[string][]reader.Page{
		"/data/round1.pdf": singleRoundPages(5),
	})

	_, err := p.IngestDocument(context.Background(), "/data/round1.pdf", "")
	require.Error(t, err)

	assert.Equal(t, 1, store.rolledBack)
	assert.Zero(t, store.committed)
	assert.False(t, store.processed["round1.pdf"])
}

func TestIngestDocumentLayoutOverride(t *testing.T) {
	store := newFakeStore()
	// Content classifies as single-round; the caller forces state layout.
	row := make(reader.Row, 17)
	row[0] = "Delhi"
	row[1] = "Example College"
	row[2] = "M.D. General Medicine"
	row[6] = "AI"
	row[10] = "25579"
	p := newPersister(store, map[string][]reader.Page{
		"/data/state.pdf": {{Tables: []reader.Table{{
			{"State", "College", "Course"},
			row,
		}}}},
	})

	result, err := p.IngestDocument(context.Background(), "/data/state.pdf", constants.LayoutState)
	require.NoError(t, err)

	assert.Equal(t, constants.LayoutState, result.Layout)
	assert.Equal(t, 1, result.Inserted)
}

func TestIngestDocumentUnreadable(t *testing.T) {
	p := newPersister(newFakeStore(), map[string][]reader.Page{})
	_, err := p.IngestDocument(context.Background(), "/data/missing.pdf", "")
	assert.Error(t, err)
}
