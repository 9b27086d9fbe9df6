package extract

import (
	"errors"
	"io"
	"log/slog"

	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

// Stream yields one candidate at a time from a single pass over a
// document: page order, then row order, then round-window order. The only
// state between pulls is the page/table/row cursor, so a stream is cheap
// and restartable by reopening the document.
type Stream struct {
	path   string
	doc    reader.Document
	logger *slog.Logger

	parseRow   func([]string) []Record
	parseText  func(string) []Record
	headerRows int

	page     *reader.Page
	tableIdx int
	rowIdx   int
	pending  []Candidate
}

// Next returns the next candidate, or false once the document is drained.
func (s *Stream) Next() (Candidate, bool) {
	for {
		if len(s.pending) > 0 {
			c := s.pending[0]
			s.pending = s.pending[1:]
			return c, true
		}

		if s.page == nil {
			page, err := s.doc.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.logger.Error("page read aborted", "path", s.path, "error", err)
				}
				return Candidate{}, false
			}
			s.page = page
			s.tableIdx = 0
			s.rowIdx = s.headerRows

			if len(page.Tables) == 0 {
				// Table detection found nothing; fall back to the
				// free-text patterns for this page.
				if page.Text != "" {
					for _, rec := range s.parseText(page.Text) {
						s.pending = append(s.pending, Candidate{Record: rec, Page: page.Number})
					}
				}
				s.page = nil
				continue
			}
		}

		if s.tableIdx >= len(s.page.Tables) {
			s.page = nil
			continue
		}
		table := s.page.Tables[s.tableIdx]
		if s.rowIdx >= len(table) {
			s.tableIdx++
			s.rowIdx = s.headerRows
			continue
		}
		row := table[s.rowIdx]
		s.rowIdx++
		for _, rec := range s.parseRow(row) {
			s.pending = append(s.pending, Candidate{Record: rec, Page: s.page.Number})
		}
	}
}

// Close releases the underlying document.
func (s *Stream) Close() error {
	return s.doc.Close()
}
