// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecord is the model entity for the VerificationRecord schema.
type VerificationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID uuid.UUID `json:"record_id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus string `json:"review_status,omitempty"`
	// Reviewer holds the value of the "reviewer" field.
	Reviewer *string `json:"reviewer,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationRecordQuery when eager-loading is set.
	Edges        VerificationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationRecordEdges holds the relations/edges for other nodes in the graph.
type VerificationRecordEdges struct {
	// Record holds the value of the record edge.
	Record *AdmissionRecord `json:"record,omitempty"`
	// File holds the value of the file edge.
	File *ProcessedFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecordOrErr returns the Record value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationRecordEdges) RecordOrErr() (*AdmissionRecord, error) {
	if e.Record != nil {
		return e.Record, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: admissionrecord.Label}
	}
	return nil, &NotLoadedError{edge: "record"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationRecordEdges) FileOrErr() (*ProcessedFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: processedfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case verificationrecord.FieldReviewStatus, verificationrecord.FieldReviewer, verificationrecord.FieldNotes:
			values[i] = new(sql.NullString)
		case verificationrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verificationrecord.FieldID, verificationrecord.FieldRecordID, verificationrecord.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRecord fields.
func (_m *VerificationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationrecord.FieldRecordID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value != nil {
				_m.RecordID = *value
			}
		case verificationrecord.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case verificationrecord.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case verificationrecord.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = value.String
			}
		case verificationrecord.FieldReviewer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer", values[i])
			} else if value.Valid {
				_m.Reviewer = new(string)
				*_m.Reviewer = value.String
			}
		case verificationrecord.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case verificationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecord queries the "record" edge of the VerificationRecord entity.
func (_m *VerificationRecord) QueryRecord() *AdmissionRecordQuery {
	return NewVerificationRecordClient(_m.config).QueryRecord(_m)
}

// QueryFile queries the "file" edge of the VerificationRecord entity.
func (_m *VerificationRecord) QueryFile() *ProcessedFileQuery {
	return NewVerificationRecordClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this VerificationRecord.
// Note that you need to call VerificationRecord.Unwrap() before calling this method if this VerificationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRecord) Update() *VerificationRecordUpdateOne {
	return NewVerificationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRecord) Unwrap() *VerificationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("record_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordID))
	builder.WriteString(", ")
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(_m.ReviewStatus)
	builder.WriteString(", ")
	if v := _m.Reviewer; v != nil {
		builder.WriteString("reviewer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRecords is a parsable slice of VerificationRecord.
type VerificationRecords []*VerificationRecord
