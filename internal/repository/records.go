package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	rec "github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
	"github.com/avesh-singh/neet-pg-checker/internal/ingest"
	"github.com/avesh-singh/neet-pg-checker/internal/utils"
)

// conflictColumns is the duplicate suppression boundary for admission
// records; it matches the unique index on the table.
var conflictColumns = []string{
	rec.FieldYear,
	rec.FieldRound,
	rec.FieldRank,
	rec.FieldQuota,
	rec.FieldCollegeName,
	rec.FieldCourse,
	rec.FieldCategory,
}

// RecordRepository persists and resolves admission records. It satisfies
// the ingest store, the verification locator and the export lister.
type RecordRepository interface {
	Begin(ctx context.Context) (ingest.RecordBatch, error)
	ListRecords(ctx context.Context, filter entity.RecordFilter) ([]entity.AdmissionRecord, error)
	FindRecordID(ctx context.Context, rank int, collegeName, course string) (uuid.UUID, bool, error)
}

type recordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(client *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{client: client, logger: logger}
}

func (r *recordRepository) Begin(ctx context.Context) (ingest.RecordBatch, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return nil, err
	}
	return &recordBatch{tx: tx}, nil
}

type recordBatch struct {
	tx *ent.Tx
}

func (b *recordBatch) Insert(ctx context.Context, record extract.Record) (uuid.UUID, error) {
	create := b.tx.AdmissionRecord.Create().
		SetYear(record.Year).
		SetRound(record.Round).
		SetRank(record.Rank).
		SetCategory(record.Category)

	setOpt := func(set func(string) *ent.AdmissionRecordCreate, v string) {
		if v != "" {
			set(v)
		}
	}
	setOpt(create.SetQuota, record.Quota)
	setOpt(create.SetState, record.State)
	setOpt(create.SetCollegeName, record.CollegeName)
	setOpt(create.SetCourse, record.Course)
	setOpt(create.SetSubCategory, record.SubCategory)
	setOpt(create.SetGender, record.Gender)
	setOpt(create.SetPhysicallyHandicapped, record.PhysicallyHandicapped)
	setOpt(create.SetStatus, record.Status)
	setOpt(create.SetDateOfAdmission, record.DateOfAdmission)
	setOpt(create.SetStudentName, record.StudentName)
	setOpt(create.SetExamRoll, record.ExamRoll)
	setOpt(create.SetStipend, record.Stipend)
	setOpt(create.SetRegistrationNo, record.RegistrationNo)
	setOpt(create.SetCouncil, record.Council)
	if record.MarksObtained != nil {
		create.SetMarksObtained(*record.MarksObtained)
	}
	if record.MaxMarks != nil {
		create.SetMaxMarks(*record.MaxMarks)
	}

	// DO NOTHING on the unique index keeps the transaction healthy when a
	// duplicate shows up mid-batch.
	id, err := create.
		OnConflictColumns(conflictColumns...).
		DoNothing().
		ID(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ingest.ErrDuplicateRecord
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (b *recordBatch) Commit(context.Context) error {
	return b.tx.Commit()
}

func (b *recordBatch) Rollback(context.Context) error {
	return b.tx.Rollback()
}

func (r *recordRepository) ListRecords(ctx context.Context, filter entity.RecordFilter) ([]entity.AdmissionRecord, error) {
	q := r.client.AdmissionRecord.Query().
		Where(filterPredicates(filter)...).
		Order(rec.ByRank())
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list records", "error", err)
		return nil, err
	}

	result := make([]entity.AdmissionRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToAdmissionRecord(row)
	}
	return result, nil
}

func (r *recordRepository) FindRecordID(ctx context.Context, rank int, collegeName, course string) (uuid.UUID, bool, error) {
	q := r.client.AdmissionRecord.Query().
		Where(rec.Rank(rank))
	if collegeName != "" {
		q = q.Where(rec.CollegeName(collegeName))
	}
	if course != "" {
		q = q.Where(rec.Course(course))
	}

	row, err := q.
		Order(rec.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return row.ID, true, nil
}

// filterPredicates translates a RecordFilter into ent predicates.
func filterPredicates(filter entity.RecordFilter) []predicate.AdmissionRecord {
	var ps []predicate.AdmissionRecord
	if filter.Year > 0 {
		ps = append(ps, rec.Year(filter.Year))
	}
	if filter.Round > 0 {
		ps = append(ps, rec.Round(filter.Round))
	}
	if filter.College != "" {
		ps = append(ps, rec.CollegeNameContainsFold(filter.College))
	}
	if filter.Course != "" {
		ps = append(ps, rec.CourseContainsFold(filter.Course))
	}
	if filter.Quota != "" {
		ps = append(ps, rec.QuotaEqualFold(filter.Quota))
	}
	if filter.Category != "" {
		ps = append(ps, rec.CategoryEqualFold(filter.Category))
	}
	if filter.MinRank > 0 {
		ps = append(ps, rec.RankGTE(filter.MinRank))
	}
	if filter.MaxRank > 0 {
		ps = append(ps, rec.RankLTE(filter.MaxRank))
	}
	return ps
}
