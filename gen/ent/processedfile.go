// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/google/uuid"
)

// ProcessedFile is the model entity for the ProcessedFile schema.
type ProcessedFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Layout holds the value of the "layout" field.
	Layout string `json:"layout,omitempty"`
	// RecordsCount holds the value of the "records_count" field.
	RecordsCount int `json:"records_count,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize *int `json:"sample_size,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus *string `json:"review_status,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessedFileQuery when eager-loading is set.
	Edges        ProcessedFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessedFileEdges holds the relations/edges for other nodes in the graph.
type ProcessedFileEdges struct {
	// Verifications holds the value of the verifications edge.
	Verifications []*VerificationRecord `json:"verifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VerificationsOrErr returns the Verifications value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessedFileEdges) VerificationsOrErr() ([]*VerificationRecord, error) {
	if e.loadedTypes[0] {
		return e.Verifications, nil
	}
	return nil, &NotLoadedError{edge: "verifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processedfile.FieldRecordsCount, processedfile.FieldSampleSize:
			values[i] = new(sql.NullInt64)
		case processedfile.FieldFilename, processedfile.FieldLayout, processedfile.FieldReviewStatus:
			values[i] = new(sql.NullString)
		case processedfile.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case processedfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedFile fields.
func (_m *ProcessedFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processedfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processedfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case processedfile.FieldLayout:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout", values[i])
			} else if value.Valid {
				_m.Layout = value.String
			}
		case processedfile.FieldRecordsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_count", values[i])
			} else if value.Valid {
				_m.RecordsCount = int(value.Int64)
			}
		case processedfile.FieldSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				_m.SampleSize = new(int)
				*_m.SampleSize = int(value.Int64)
			}
		case processedfile.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = new(string)
				*_m.ReviewStatus = value.String
			}
		case processedfile.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedFile.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessedFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVerifications queries the "verifications" edge of the ProcessedFile entity.
func (_m *ProcessedFile) QueryVerifications() *VerificationRecordQuery {
	return NewProcessedFileClient(_m.config).QueryVerifications(_m)
}

// Update returns a builder for updating this ProcessedFile.
// Note that you need to call ProcessedFile.Unwrap() before calling this method if this ProcessedFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessedFile) Update() *ProcessedFileUpdateOne {
	return NewProcessedFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessedFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessedFile) Unwrap() *ProcessedFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessedFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessedFile) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("layout=")
	builder.WriteString(_m.Layout)
	builder.WriteString(", ")
	builder.WriteString("records_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsCount))
	builder.WriteString(", ")
	if v := _m.SampleSize; v != nil {
		builder.WriteString("sample_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewStatus; v != nil {
		builder.WriteString("review_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedFiles is a parsable slice of ProcessedFile.
type ProcessedFiles []*ProcessedFile
