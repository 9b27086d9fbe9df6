// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationrecord type in the database.
	Label = "verification_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecordID holds the string denoting the record_id field in the database.
	FieldRecordID = "record_id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldReviewer holds the string denoting the reviewer field in the database.
	FieldReviewer = "reviewer"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRecord holds the string denoting the record edge name in mutations.
	EdgeRecord = "record"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the verificationrecord in the database.
	Table = "verification_records"
	// RecordTable is the table that holds the record relation/edge.
	RecordTable = "verification_records"
	// RecordInverseTable is the table name for the AdmissionRecord entity.
	// It exists in this package in order to avoid circular dependency with the "admissionrecord" package.
	RecordInverseTable = "admission_records"
	// RecordColumn is the table column denoting the record relation/edge.
	RecordColumn = "record_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "verification_records"
	// FileInverseTable is the table name for the ProcessedFile entity.
	// It exists in this package in order to avoid circular dependency with the "processedfile" package.
	FileInverseTable = "processed_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for verificationrecord fields.
var Columns = []string{
	FieldID,
	FieldRecordID,
	FieldFileID,
	FieldPageNumber,
	FieldReviewStatus,
	FieldReviewer,
	FieldNotes,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// DefaultReviewStatus holds the default value on creation for the "review_status" field.
	DefaultReviewStatus string
	// ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	ReviewStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerificationRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordID orders the results by the record_id field.
func ByRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByReviewer orders the results by the reviewer field.
func ByReviewer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewer, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRecordField orders the results by record field.
func ByRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
