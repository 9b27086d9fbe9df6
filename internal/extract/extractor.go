package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/reader"
)

// Extractor turns documents into record streams. It owns the layout
// profiles and the year stamp; everything per-document lives on the Stream.
type Extractor struct {
	Opener   reader.Opener
	Profiles Profiles
	Year     int
	Logger   *slog.Logger
}

func NewExtractor(opener reader.Opener, profiles Profiles, year int, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Opener: opener, Profiles: profiles, Year: year, Logger: logger}
}

// Classify opens the document just long enough to read the first page and
// decide layout and round. An unreadable document fails here, before any
// extraction work.
func (e *Extractor) Classify(ctx context.Context, path string) (constants.Layout, int, error) {
	doc, err := e.Opener.Open(ctx, path)
	if err != nil {
		return "", 0, fmt.Errorf("classify %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.Logger.Warn("close after classify", "path", path, "error", cerr)
		}
	}()

	firstPageText := ""
	page, err := doc.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, fmt.Errorf("classify %s: %w", filepath.Base(path), err)
	}
	if page != nil {
		firstPageText = page.Text
	}

	filename := filepath.Base(path)
	layout := ClassifyLayout(firstPageText, filename)
	round := ResolveRound(filename, firstPageText)
	e.Logger.Info("document classified",
		"filename", filename,
		"layout", layout,
		"round", round,
	)
	return layout, round, nil
}

// OpenStream opens the document for a full extraction pass with the given
// layout and round. The same (path, layout, round) always produces the
// same candidate sequence, which verification sampling relies on.
func (e *Extractor) OpenStream(ctx context.Context, path string, layout constants.Layout, round int) (*Stream, error) {
	doc, err := e.Opener.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}

	s := &Stream{
		path:   path,
		doc:    doc,
		logger: e.Logger,
	}
	text := TextParser{Year: e.Year, Round: round}
	s.parseText = text.ParseText

	switch layout {
	case constants.LayoutState:
		p := StateParser{Profile: e.Profiles.State, Year: e.Year, Round: round}
		s.headerRows = e.Profiles.State.HeaderRows
		s.parseRow = func(row []string) []Record {
			if rec, ok := p.ParseRow(row); ok {
				return []Record{rec}
			}
			return nil
		}
	case constants.LayoutAllIndiaMultiRound:
		p := MultiRoundParser{Profile: e.Profiles.MultiRound, Year: e.Year}
		s.headerRows = e.Profiles.MultiRound.HeaderRows
		s.parseRow = p.ParseRow
	case constants.LayoutAllIndiaSingleRound:
		p := SingleRoundParser{Profile: e.Profiles.SingleRound, Year: e.Year, Round: round}
		s.headerRows = e.Profiles.SingleRound.HeaderRows
		s.parseRow = func(row []string) []Record {
			if rec, ok := p.ParseRow(row); ok {
				return []Record{rec}
			}
			return nil
		}
	default:
		_ = doc.Close()
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
	return s, nil
}
