package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	vr "github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/utils"
)

// VerificationRepository stages and resolves manual review entries.
type VerificationRepository interface {
	CreateVerification(ctx context.Context, recordID, fileID uuid.UUID, pageNumber int) error
	ListPending(ctx context.Context, fileID uuid.UUID) ([]entity.VerificationRecord, error)
	SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus, reviewer, notes string) error
}

type verificationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVerificationRepository(client *ent.Client, logger *slog.Logger) VerificationRepository {
	return &verificationRepository{client: client, logger: logger}
}

func (r *verificationRepository) CreateVerification(ctx context.Context, recordID, fileID uuid.UUID, pageNumber int) error {
	err := r.client.VerificationRecord.Create().
		SetRecordID(recordID).
		SetFileID(fileID).
		SetPageNumber(pageNumber).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to create verification",
			"record_id", recordID,
			"file_id", fileID,
			"error", err,
		)
	}
	return err
}

func (r *verificationRepository) ListPending(ctx context.Context, fileID uuid.UUID) ([]entity.VerificationRecord, error) {
	q := r.client.VerificationRecord.Query().
		Where(vr.ReviewStatus(string(constants.ReviewPending)))
	if fileID != uuid.Nil {
		q = q.Where(vr.FileID(fileID))
	}

	rows, err := q.Order(vr.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list pending verifications", "error", err)
		return nil, err
	}

	result := make([]entity.VerificationRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToVerificationRecord(row)
	}
	return result, nil
}

func (r *verificationRepository) SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus, reviewer, notes string) error {
	update := r.client.VerificationRecord.UpdateOneID(id).
		SetReviewStatus(string(status))
	if reviewer != "" {
		update.SetReviewer(reviewer)
	}
	if notes != "" {
		update.SetNotes(notes)
	}

	if err := update.Exec(ctx); err != nil {
		r.logger.Error("failed to update review status", "id", id, "error", err)
		return err
	}
	return nil
}
