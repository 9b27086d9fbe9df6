// Code generated by ent, DO NOT EDIT.

package processedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldFilename, v))
}

// Layout applies equality check predicate on the "layout" field. It's identical to LayoutEQ.
func Layout(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldLayout, v))
}

// RecordsCount applies equality check predicate on the "records_count" field. It's identical to RecordsCountEQ.
func RecordsCount(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldRecordsCount, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldSampleSize, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldReviewStatus, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldProcessedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContainsFold(FieldFilename, v))
}

// LayoutEQ applies the EQ predicate on the "layout" field.
func LayoutEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldLayout, v))
}

// LayoutNEQ applies the NEQ predicate on the "layout" field.
func LayoutNEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldLayout, v))
}

// LayoutIn applies the In predicate on the "layout" field.
func LayoutIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldLayout, vs...))
}

// LayoutNotIn applies the NotIn predicate on the "layout" field.
func LayoutNotIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldLayout, vs...))
}

// LayoutGT applies the GT predicate on the "layout" field.
func LayoutGT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldLayout, v))
}

// LayoutGTE applies the GTE predicate on the "layout" field.
func LayoutGTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldLayout, v))
}

// LayoutLT applies the LT predicate on the "layout" field.
func LayoutLT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldLayout, v))
}

// LayoutLTE applies the LTE predicate on the "layout" field.
func LayoutLTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldLayout, v))
}

// LayoutContains applies the Contains predicate on the "layout" field.
func LayoutContains(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContains(FieldLayout, v))
}

// LayoutHasPrefix applies the HasPrefix predicate on the "layout" field.
func LayoutHasPrefix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasPrefix(FieldLayout, v))
}

// LayoutHasSuffix applies the HasSuffix predicate on the "layout" field.
func LayoutHasSuffix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasSuffix(FieldLayout, v))
}

// LayoutEqualFold applies the EqualFold predicate on the "layout" field.
func LayoutEqualFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEqualFold(FieldLayout, v))
}

// LayoutContainsFold applies the ContainsFold predicate on the "layout" field.
func LayoutContainsFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContainsFold(FieldLayout, v))
}

// RecordsCountEQ applies the EQ predicate on the "records_count" field.
func RecordsCountEQ(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldRecordsCount, v))
}

// RecordsCountNEQ applies the NEQ predicate on the "records_count" field.
func RecordsCountNEQ(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldRecordsCount, v))
}

// RecordsCountIn applies the In predicate on the "records_count" field.
func RecordsCountIn(vs ...int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldRecordsCount, vs...))
}

// RecordsCountNotIn applies the NotIn predicate on the "records_count" field.
func RecordsCountNotIn(vs ...int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldRecordsCount, vs...))
}

// RecordsCountGT applies the GT predicate on the "records_count" field.
func RecordsCountGT(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldRecordsCount, v))
}

// RecordsCountGTE applies the GTE predicate on the "records_count" field.
func RecordsCountGTE(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldRecordsCount, v))
}

// RecordsCountLT applies the LT predicate on the "records_count" field.
func RecordsCountLT(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldRecordsCount, v))
}

// RecordsCountLTE applies the LTE predicate on the "records_count" field.
func RecordsCountLTE(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldRecordsCount, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v int) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldSampleSize, v))
}

// SampleSizeIsNil applies the IsNil predicate on the "sample_size" field.
func SampleSizeIsNil() predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIsNull(FieldSampleSize))
}

// SampleSizeNotNil applies the NotNil predicate on the "sample_size" field.
func SampleSizeNotNil() predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotNull(FieldSampleSize))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusIsNil applies the IsNil predicate on the "review_status" field.
func ReviewStatusIsNil() predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIsNull(FieldReviewStatus))
}

// ReviewStatusNotNil applies the NotNil predicate on the "review_status" field.
func ReviewStatusNotNil() predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotNull(FieldReviewStatus))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.FieldLTE(FieldProcessedAt, v))
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.ProcessedFile {
	return predicate.ProcessedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationRecord) predicate.ProcessedFile {
	return predicate.ProcessedFile(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedFile) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedFile) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedFile) predicate.ProcessedFile {
	return predicate.ProcessedFile(sql.NotPredicates(p))
}
