// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldID, id))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRecordID, v))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldFileID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldPageNumber, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewStatus, v))
}

// Reviewer applies equality check predicate on the "reviewer" field. It's identical to ReviewerEQ.
func Reviewer(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewer, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldRecordID, vs...))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldFileID, vs...))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldPageNumber, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ReviewerEQ applies the EQ predicate on the "reviewer" field.
func ReviewerEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewer, v))
}

// ReviewerNEQ applies the NEQ predicate on the "reviewer" field.
func ReviewerNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldReviewer, v))
}

// ReviewerIn applies the In predicate on the "reviewer" field.
func ReviewerIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldReviewer, vs...))
}

// ReviewerNotIn applies the NotIn predicate on the "reviewer" field.
func ReviewerNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldReviewer, vs...))
}

// ReviewerGT applies the GT predicate on the "reviewer" field.
func ReviewerGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldReviewer, v))
}

// ReviewerGTE applies the GTE predicate on the "reviewer" field.
func ReviewerGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldReviewer, v))
}

// ReviewerLT applies the LT predicate on the "reviewer" field.
func ReviewerLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldReviewer, v))
}

// ReviewerLTE applies the LTE predicate on the "reviewer" field.
func ReviewerLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldReviewer, v))
}

// ReviewerContains applies the Contains predicate on the "reviewer" field.
func ReviewerContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldReviewer, v))
}

// ReviewerHasPrefix applies the HasPrefix predicate on the "reviewer" field.
func ReviewerHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldReviewer, v))
}

// ReviewerHasSuffix applies the HasSuffix predicate on the "reviewer" field.
func ReviewerHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldReviewer, v))
}

// ReviewerIsNil applies the IsNil predicate on the "reviewer" field.
func ReviewerIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldReviewer))
}

// ReviewerNotNil applies the NotNil predicate on the "reviewer" field.
func ReviewerNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldReviewer))
}

// ReviewerEqualFold applies the EqualFold predicate on the "reviewer" field.
func ReviewerEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldReviewer, v))
}

// ReviewerContainsFold applies the ContainsFold predicate on the "reviewer" field.
func ReviewerContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldReviewer, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRecord applies the HasEdge predicate on the "record" edge.
func HasRecord() predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordWith applies the HasEdge predicate on the "record" edge with a given conditions (other predicates).
func HasRecordWith(preds ...predicate.AdmissionRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := newRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.ProcessedFile) predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.NotPredicates(p))
}
