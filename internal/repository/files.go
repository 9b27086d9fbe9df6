package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	pf "github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/utils"
)

// FileRepository tracks which documents have been ingested.
type FileRepository interface {
	ProcessedFileExists(ctx context.Context, filename string) (bool, error)
	CreateProcessedFile(ctx context.Context, filename string, layout constants.Layout, recordsCount int) (uuid.UUID, error)
	SetSampleSize(ctx context.Context, fileID uuid.UUID, size int) error
	ListProcessedFiles(ctx context.Context) ([]entity.ProcessedFile, error)
}

type fileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFileRepository(client *ent.Client, logger *slog.Logger) FileRepository {
	return &fileRepository{client: client, logger: logger}
}

func (r *fileRepository) ProcessedFileExists(ctx context.Context, filename string) (bool, error) {
	exists, err := r.client.ProcessedFile.Query().
		Where(pf.Filename(filename)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check processed file", "filename", filename, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *fileRepository) CreateProcessedFile(ctx context.Context, filename string, layout constants.Layout, recordsCount int) (uuid.UUID, error) {
	row, err := r.client.ProcessedFile.Create().
		SetFilename(filename).
		SetLayout(string(layout)).
		SetRecordsCount(recordsCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create processed file", "filename", filename, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *fileRepository) SetSampleSize(ctx context.Context, fileID uuid.UUID, size int) error {
	err := r.client.ProcessedFile.UpdateOneID(fileID).
		SetSampleSize(size).
		SetReviewStatus(string(constants.ReviewPending)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set sample size", "file_id", fileID, "error", err)
	}
	return err
}

func (r *fileRepository) ListProcessedFiles(ctx context.Context) ([]entity.ProcessedFile, error) {
	rows, err := r.client.ProcessedFile.Query().
		Order(pf.ByProcessedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list processed files", "error", err)
		return nil, err
	}

	result := make([]entity.ProcessedFile, len(rows))
	for i, row := range rows {
		result[i] = utils.ToProcessedFile(row)
	}
	return result, nil
}

// IngestStore bundles the repositories the ingest persister needs into one
// store.
type IngestStore struct {
	RecordRepository
	FileRepository
}

func NewIngestStore(client *ent.Client, logger *slog.Logger) IngestStore {
	return IngestStore{
		RecordRepository: NewRecordRepository(client, logger),
		FileRepository:   NewFileRepository(client, logger),
	}
}
