package extract

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func singleRoundRow(rank, college string) reader.Row {
	return reader.Row{rank, "AI", college, "M.D. Medicine", "GENERAL", "Reported"}
}

func headerRows(n int) []reader.Row {
	rows := make([]reader.Row, n)
	for i := range rows {
		rows[i] = reader.Row{"Rank", "Quota", "Institute", "Course", "Category", "Status"}
	}
	return rows
}

func drain(t *testing.T, s *Stream) []Candidate {
	t.Helper()
	var out []Candidate
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	require.NoError(t, s.Close())
	return out
}

func TestStreamOrderAndHeaderSkip(t *testing.T) {
	table1 := append(headerRows(3),
		singleRoundRow("100", "Example Medical Institute A"),
		singleRoundRow("200", "Example Medical Institute B"),
	)
	table2 := append(headerRows(3),
		singleRoundRow("300", "Example Medical Institute C"),
	)
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{
		"doc.pdf": {
			{Tables: []reader.Table{table1, table2}},
			{Tables: []reader.Table{append(headerRows(3), singleRoundRow("400", "Example Medical Institute D"))}},
		},
	}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	stream, err := ex.OpenStream(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1)
	require.NoError(t, err)

	got := drain(t, stream)
	require.Len(t, got, 4)
	assert.Equal(t, []int{100, 200, 300, 400}, []int{
		got[0].Record.Rank, got[1].Record.Rank, got[2].Record.Rank, got[3].Record.Rank,
	})
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, 1, got[2].Page)
	assert.Equal(t, 2, got[3].Page)
}

func TestStreamMultiRoundWindowOrderWithinRow(t *testing.T) {
	row := reader.Row{
		"1024",
		"AI", "Example Medical Institute A", "M.D. Medicine", "GENERAL",
		"DU", "Example Medical Institute B", "M.S. Surgery", "OBC",
		"-", "-", "-", "-", "-", "-",
	}
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{
		"multi.pdf": {{Tables: []reader.Table{append(headerRows(3), row)}}},
	}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	stream, err := ex.OpenStream(context.Background(), "multi.pdf", constants.LayoutAllIndiaMultiRound, 1)
	require.NoError(t, err)

	got := drain(t, stream)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Record.Round)
	assert.Equal(t, 2, got[1].Record.Round)
	assert.Equal(t, got[0].Record.Rank, got[1].Record.Rank)
}

func TestStreamTextFallbackOnlyWhenNoTables(t *testing.T) {
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{
		"mixed.pdf": {
			// Page 1 has a table and free text; the text must be ignored.
			{
				Tables: []reader.Table{append(headerRows(3), singleRoundRow("100", "Example Medical Institute A"))},
				Text:   "999 AI Example Institute of Health Sciences M.D. - Pathology Reported",
			},
			// Page 2 has no tables; the free-text fallback kicks in.
			{
				Text: "777 AI Example Institute of Health Sciences M.D. - Pathology Reported",
			},
		},
	}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	stream, err := ex.OpenStream(context.Background(), "mixed.pdf", constants.LayoutAllIndiaSingleRound, 1)
	require.NoError(t, err)

	got := drain(t, stream)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].Record.Rank)
	assert.Equal(t, 777, got[1].Record.Rank)
	assert.Equal(t, 2, got[1].Page)
}

func TestStreamSkipsEmptyPages(t *testing.T) {
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{
		"sparse.pdf": {
			{},
			{Tables: []reader.Table{append(headerRows(3), singleRoundRow("100", "Example Medical Institute A"))}},
			{},
		},
	}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	stream, err := ex.OpenStream(context.Background(), "sparse.pdf", constants.LayoutAllIndiaSingleRound, 1)
	require.NoError(t, err)

	got := drain(t, stream)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Page)
}

func TestStreamIsRepeatable(t *testing.T) {
	pages := []reader.Page{
		{Tables: []reader.Table{append(headerRows(3),
			singleRoundRow("100", "Example Medical Institute A"),
			singleRoundRow("200", "Example Medical Institute B"),
		)}},
	}
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{"doc.pdf": pages}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	var runs [][]Candidate
	for i := 0; i < 2; i++ {
		stream, err := ex.OpenStream(context.Background(), "doc.pdf", constants.LayoutAllIndiaSingleRound, 1)
		require.NoError(t, err)
		runs = append(runs, drain(t, stream))
	}
	assert.Equal(t, runs[0], runs[1])
}

func TestClassifyReadsOnlyFirstPage(t *testing.T) {
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{
		"state_round_2.pdf": {
			{Text: "State Quota allotments"},
			{Text: "Round 1 Round 2 Round 3"},
		},
	}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())

	layout, round, err := ex.Classify(context.Background(), "state_round_2.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.LayoutState, layout)
	assert.Equal(t, 2, round)
}

func TestClassifyUnreadableDocument(t *testing.T) {
	ex := NewExtractor(&reader.StaticOpener{}, DefaultProfiles(), 2024, discardLogger())
	_, _, err := ex.Classify(context.Background(), "missing.pdf")
	assert.Error(t, err)
}

func TestOpenStreamUnknownLayout(t *testing.T) {
	opener := &reader.StaticOpener{Docs: map[string][]reader.Page{"doc.pdf": {}}}
	ex := NewExtractor(opener, DefaultProfiles(), 2024, discardLogger())
	_, err := ex.OpenStream(context.Background(), "doc.pdf", constants.Layout("BOGUS"), 1)
	assert.Error(t, err)
}
