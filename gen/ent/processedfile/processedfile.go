// Code generated by ent, DO NOT EDIT.

package processedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the processedfile type in the database.
	Label = "processed_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldLayout holds the string denoting the layout field in the database.
	FieldLayout = "layout"
	// FieldRecordsCount holds the string denoting the records_count field in the database.
	FieldRecordsCount = "records_count"
	// FieldSampleSize holds the string denoting the sample_size field in the database.
	FieldSampleSize = "sample_size"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeVerifications holds the string denoting the verifications edge name in mutations.
	EdgeVerifications = "verifications"
	// Table holds the table name of the processedfile in the database.
	Table = "processed_files"
	// VerificationsTable is the table that holds the verifications relation/edge.
	VerificationsTable = "verification_records"
	// VerificationsInverseTable is the table name for the VerificationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "verificationrecord" package.
	VerificationsInverseTable = "verification_records"
	// VerificationsColumn is the table column denoting the verifications relation/edge.
	VerificationsColumn = "file_id"
)

// Columns holds all SQL columns for processedfile fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldLayout,
	FieldRecordsCount,
	FieldSampleSize,
	FieldReviewStatus,
	FieldProcessedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// LayoutValidator is a validator for the "layout" field. It is called by the builders before save.
	LayoutValidator func(string) error
	// RecordsCountValidator is a validator for the "records_count" field. It is called by the builders before save.
	RecordsCountValidator func(int) error
	// ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	ReviewStatusValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ProcessedFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByLayout orders the results by the layout field.
func ByLayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayout, opts...).ToFunc()
}

// ByRecordsCount orders the results by the records_count field.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordsCount, opts...).ToFunc()
}

// BySampleSize orders the results by the sample_size field.
func BySampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleSize, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByVerificationsCount orders the results by verifications count.
func ByVerificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVerificationsStep(), opts...)
	}
}

// ByVerifications orders the results by verifications terms.
func ByVerifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVerificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
	)
}
