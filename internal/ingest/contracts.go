package ingest

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
)

// ErrDuplicateRecord reports an insert that collided with an identical
// admission record. Callers count it and move on; it never poisons the
// surrounding batch.
var ErrDuplicateRecord = errors.New("duplicate admission record")

// RecordBatch is one open transaction's worth of record inserts.
type RecordBatch interface {
	// Insert persists one record, returning ErrDuplicateRecord when an
	// identical row already exists.
	Insert(ctx context.Context, rec extract.Record) (uuid.UUID, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RecordStore is the persistence behavior the persister depends on.
type RecordStore interface {
	// ProcessedFileExists reports whether filename was already ingested.
	ProcessedFileExists(ctx context.Context, filename string) (bool, error)
	// Begin opens a transaction for a batch of record inserts.
	Begin(ctx context.Context) (RecordBatch, error)
	// CreateProcessedFile marks filename as done once its records landed.
	CreateProcessedFile(ctx context.Context, filename string, layout constants.Layout, recordsCount int) (uuid.UUID, error)
}
