package verify

import (
	"context"
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

type fakeLocator struct {
	known         map[int]uuid.UUID // rank -> record id
	verifications []int             // page numbers, in staging order
	sampleSize    *int
}

func (l *fakeLocator) FindRecordID(_ context.Context, rank int, _, _ string) (uuid.UUID, bool, error) {
	id, ok := l.known[rank]
	return id, ok, nil
}

func (l *fakeLocator) CreateVerification(_ context.Context, recordID, _ uuid.UUID, page int) error {
	if recordID == uuid.Nil {
		return fmt.Errorf("nil record id")
	}
	l.verifications = append(l.verifications, page)
	return nil
}

func (l *fakeLocator) SetSampleSize(_ context.Context, _ uuid.UUID, size int) error {
	l.sampleSize = &size
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pagesWithRanks builds single-round pages of perPage rows each, ranks
// numbered from 1.
func pagesWithRanks(total, perPage int) ([]reader.Page, map[int]uuid.UUID) {
	header := reader.Row{"Rank", "Quota", "Institute", "Course", "Category", "Status"}
	known := make(map[int]uuid.UUID, total)
	var pages []reader.Page
	for start := 1; start <= total; start += perPage {
		table := reader.Table{header, header, header}
		for rank := start; rank <= total && rank < start+perPage; rank++ {
			table = append(table, reader.Row{
				fmt.Sprintf("%d", rank), "AI", "Example Medical Institute", "M.D. Medicine", "GENERAL", "Reported",
			})
			known[rank] = uuid.New()
		}
		pages = append(pages, reader.Page{Tables: []reader.Table{table}})
	}
	return pages, known
}

func newSampler(docs map[string][]reader.Page, locator RecordLocator) *Sampler {
	opener := &reader.StaticOpener{Docs: docs}
	ex := extract.NewExtractor(opener, extract.DefaultProfiles(), 2024, testLogger())
	return NewSampler(ex, locator, testLogger())
}

func TestSampleDocumentStride(t *testing.T) {
	pages, known := pagesWithRanks(1000, 50)
	locator := &fakeLocator{known: known}
	s := newSampler(map[string][]reader.Page{"doc.pdf": pages}, locator)

	sampled, err := s.SampleDocument(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1, uuid.New(), 0.1)
	require.NoError(t, err)

	// Every 10th candidate starting at the first: 0, 10, ... 990.
	assert.Equal(t, 100, sampled)
	require.NotNil(t, locator.sampleSize)
	assert.Equal(t, 100, *locator.sampleSize)
}

func TestSampleDocumentFullRate(t *testing.T) {
	pages, known := pagesWithRanks(7, 7)
	locator := &fakeLocator{known: known}
	s := newSampler(map[string][]reader.Page{"doc.pdf": pages}, locator)

	sampled, err := s.SampleDocument(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1, uuid.New(), 1.0)
	require.NoError(t, err)
	assert.Equal(t, 7, sampled)
}

func TestSampleDocumentPageNumbersFollowCandidates(t *testing.T) {
	pages, known := pagesWithRanks(6, 2) // 3 pages, 2 rows each
	locator := &fakeLocator{known: known}
	s := newSampler(map[string][]reader.Page{"doc.pdf": pages}, locator)

	// Stride 2 picks candidates 0, 2, 4: the first row of each page.
	_, err := s.SampleDocument(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1, uuid.New(), 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, locator.verifications)
}

func TestSampleDocumentSkipsUnlocatableRecords(t *testing.T) {
	pages, known := pagesWithRanks(10, 10)
	delete(known, 1) // first sampled candidate has no persisted record
	locator := &fakeLocator{known: known}
	s := newSampler(map[string][]reader.Page{"doc.pdf": pages}, locator)

	sampled, err := s.SampleDocument(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1, uuid.New(), 0.5)
	require.NoError(t, err)

	// Candidates 0, 2, 4, 6, 8 minus the missing one.
	assert.Equal(t, 4, sampled)
	require.NotNil(t, locator.sampleSize)
	assert.Equal(t, 4, *locator.sampleSize)
}

func TestSampleDocumentRejectsBadRate(t *testing.T) {
	locator := &fakeLocator{}
	s := newSampler(map[string][]reader.Page{}, locator)

	for _, rate := range []float64{0, -0.5, 1.5} {
		_, err := s.SampleDocument(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1, uuid.New(), rate)
		assert.Error(t, err, "rate %v", rate)
	}
	assert.Nil(t, locator.sampleSize)
}
