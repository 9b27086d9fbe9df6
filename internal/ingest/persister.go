package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
)

// DefaultBatchSize is how many record inserts share one transaction.
const DefaultBatchSize = 100

// FileResult is the per-document ingest outcome.
type FileResult struct {
	Filename   string
	FileID     uuid.UUID
	Layout     constants.Layout
	Round      int
	Extracted  int
	Inserted   int
	Duplicates int
	Skipped    bool
	Err        string
}

// BatchPersister drains a document's record stream into the store in
// fixed-size transactions, so memory stays flat no matter how large the
// document is.
type BatchPersister struct {
	store     RecordStore
	extractor *extract.Extractor
	batchSize int
	logger    *slog.Logger
}

func NewBatchPersister(store RecordStore, extractor *extract.Extractor, logger *slog.Logger) *BatchPersister {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchPersister{
		store:     store,
		extractor: extractor,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// IngestDocument classifies, extracts and persists one document. A layout
// override of "" means classify from content. Ingest is idempotent on the
// base filename: a document seen before is skipped without touching the
// store.
func (p *BatchPersister) IngestDocument(ctx context.Context, path string, layoutOverride constants.Layout) (FileResult, error) {
	filename := filepath.Base(path)
	out := FileResult{Filename: filename}

	exists, err := p.store.ProcessedFileExists(ctx, filename)
	if err != nil {
		return out, fmt.Errorf("check processed file: %w", err)
	}
	if exists {
		p.logger.Info("document already processed, skipping", "filename", filename)
		out.Skipped = true
		return out, nil
	}

	layout, round, err := p.extractor.Classify(ctx, path)
	if err != nil {
		return out, err
	}
	if layoutOverride != "" {
		layout = layoutOverride
	}
	out.Layout = layout
	out.Round = round

	stream, err := p.extractor.OpenStream(ctx, path, layout, round)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			p.logger.Warn("close stream", "filename", filename, "error", cerr)
		}
	}()

	if err := p.drain(ctx, stream, &out); err != nil {
		return out, err
	}

	// A document that yielded nothing stays unmarked so a fixed profile
	// or parser can pick it up on a rerun.
	if out.Inserted == 0 {
		p.logger.Warn("no records inserted, leaving document unmarked",
			"filename", filename,
			"extracted", out.Extracted,
			"duplicates", out.Duplicates,
		)
		return out, nil
	}

	fileID, err := p.store.CreateProcessedFile(ctx, filename, layout, out.Inserted)
	if err != nil {
		return out, fmt.Errorf("mark processed file: %w", err)
	}
	out.FileID = fileID

	p.logger.Info("document ingested",
		"filename", filename,
		"layout", layout,
		"round", round,
		"extracted", out.Extracted,
		"inserted", out.Inserted,
		"duplicates", out.Duplicates,
	)
	return out, nil
}

// drain pulls candidates off the stream and inserts them in batches of
// p.batchSize records per transaction.
func (p *BatchPersister) drain(ctx context.Context, stream *extract.Stream, out *FileResult) error {
	var batch RecordBatch
	inBatch := 0

	commit := func() error {
		if batch == nil {
			return nil
		}
		if err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch: %w", err)
		}
		batch = nil
		inBatch = 0
		return nil
	}

	for {
		cand, ok := stream.Next()
		if !ok {
			return commit()
		}
		out.Extracted++

		if batch == nil {
			b, err := p.store.Begin(ctx)
			if err != nil {
				return fmt.Errorf("begin batch: %w", err)
			}
			batch = b
		}

		if _, err := batch.Insert(ctx, cand.Record); err != nil {
			if errors.Is(err, ErrDuplicateRecord) {
				out.Duplicates++
			} else {
				if rerr := batch.Rollback(ctx); rerr != nil {
					p.logger.Error("rollback batch", "error", rerr)
				}
				return fmt.Errorf("insert record rank=%d page=%d: %w", cand.Record.Rank, cand.Page, err)
			}
		} else {
			out.Inserted++
		}

		inBatch++
		if inBatch >= p.batchSize {
			if err := commit(); err != nil {
				return err
			}
		}
	}
}
