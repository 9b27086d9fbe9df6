// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/google/uuid"
)

// AdmissionRecord is the model entity for the AdmissionRecord schema.
type AdmissionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Round holds the value of the "round" field.
	Round int `json:"round,omitempty"`
	// Rank holds the value of the "rank" field.
	Rank int `json:"rank,omitempty"`
	// Quota holds the value of the "quota" field.
	Quota *string `json:"quota,omitempty"`
	// State holds the value of the "state" field.
	State *string `json:"state,omitempty"`
	// CollegeName holds the value of the "college_name" field.
	CollegeName *string `json:"college_name,omitempty"`
	// Course holds the value of the "course" field.
	Course *string `json:"course,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// SubCategory holds the value of the "sub_category" field.
	SubCategory *string `json:"sub_category,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *string `json:"gender,omitempty"`
	// PhysicallyHandicapped holds the value of the "physically_handicapped" field.
	PhysicallyHandicapped *string `json:"physically_handicapped,omitempty"`
	// MarksObtained holds the value of the "marks_obtained" field.
	MarksObtained *int `json:"marks_obtained,omitempty"`
	// MaxMarks holds the value of the "max_marks" field.
	MaxMarks *int `json:"max_marks,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// DateOfAdmission holds the value of the "date_of_admission" field.
	DateOfAdmission *string `json:"date_of_admission,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName *string `json:"student_name,omitempty"`
	// ExamRoll holds the value of the "exam_roll" field.
	ExamRoll *string `json:"exam_roll,omitempty"`
	// Stipend holds the value of the "stipend" field.
	Stipend *string `json:"stipend,omitempty"`
	// RegistrationNo holds the value of the "registration_no" field.
	RegistrationNo *string `json:"registration_no,omitempty"`
	// Council holds the value of the "council" field.
	Council *string `json:"council,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdmissionRecordQuery when eager-loading is set.
	Edges        AdmissionRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdmissionRecordEdges holds the relations/edges for other nodes in the graph.
type AdmissionRecordEdges struct {
	// Verifications holds the value of the verifications edge.
	Verifications []*VerificationRecord `json:"verifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VerificationsOrErr returns the Verifications value or an error if the edge
// was not loaded in eager-loading.
func (e AdmissionRecordEdges) VerificationsOrErr() ([]*VerificationRecord, error) {
	if e.loadedTypes[0] {
		return e.Verifications, nil
	}
	return nil, &NotLoadedError{edge: "verifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdmissionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case admissionrecord.FieldYear, admissionrecord.FieldRound, admissionrecord.FieldRank, admissionrecord.FieldMarksObtained, admissionrecord.FieldMaxMarks:
			values[i] = new(sql.NullInt64)
		case admissionrecord.FieldQuota, admissionrecord.FieldState, admissionrecord.FieldCollegeName, admissionrecord.FieldCourse, admissionrecord.FieldCategory, admissionrecord.FieldSubCategory, admissionrecord.FieldGender, admissionrecord.FieldPhysicallyHandicapped, admissionrecord.FieldStatus, admissionrecord.FieldDateOfAdmission, admissionrecord.FieldStudentName, admissionrecord.FieldExamRoll, admissionrecord.FieldStipend, admissionrecord.FieldRegistrationNo, admissionrecord.FieldCouncil:
			values[i] = new(sql.NullString)
		case admissionrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case admissionrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdmissionRecord fields.
func (_m *AdmissionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case admissionrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case admissionrecord.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case admissionrecord.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case admissionrecord.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case admissionrecord.FieldQuota:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quota", values[i])
			} else if value.Valid {
				_m.Quota = new(string)
				*_m.Quota = value.String
			}
		case admissionrecord.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = new(string)
				*_m.State = value.String
			}
		case admissionrecord.FieldCollegeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field college_name", values[i])
			} else if value.Valid {
				_m.CollegeName = new(string)
				*_m.CollegeName = value.String
			}
		case admissionrecord.FieldCourse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course", values[i])
			} else if value.Valid {
				_m.Course = new(string)
				*_m.Course = value.String
			}
		case admissionrecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case admissionrecord.FieldSubCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_category", values[i])
			} else if value.Valid {
				_m.SubCategory = new(string)
				*_m.SubCategory = value.String
			}
		case admissionrecord.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(string)
				*_m.Gender = value.String
			}
		case admissionrecord.FieldPhysicallyHandicapped:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field physically_handicapped", values[i])
			} else if value.Valid {
				_m.PhysicallyHandicapped = new(string)
				*_m.PhysicallyHandicapped = value.String
			}
		case admissionrecord.FieldMarksObtained:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field marks_obtained", values[i])
			} else if value.Valid {
				_m.MarksObtained = new(int)
				*_m.MarksObtained = int(value.Int64)
			}
		case admissionrecord.FieldMaxMarks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_marks", values[i])
			} else if value.Valid {
				_m.MaxMarks = new(int)
				*_m.MaxMarks = int(value.Int64)
			}
		case admissionrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case admissionrecord.FieldDateOfAdmission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_admission", values[i])
			} else if value.Valid {
				_m.DateOfAdmission = new(string)
				*_m.DateOfAdmission = value.String
			}
		case admissionrecord.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = new(string)
				*_m.StudentName = value.String
			}
		case admissionrecord.FieldExamRoll:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_roll", values[i])
			} else if value.Valid {
				_m.ExamRoll = new(string)
				*_m.ExamRoll = value.String
			}
		case admissionrecord.FieldStipend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stipend", values[i])
			} else if value.Valid {
				_m.Stipend = new(string)
				*_m.Stipend = value.String
			}
		case admissionrecord.FieldRegistrationNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field registration_no", values[i])
			} else if value.Valid {
				_m.RegistrationNo = new(string)
				*_m.RegistrationNo = value.String
			}
		case admissionrecord.FieldCouncil:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field council", values[i])
			} else if value.Valid {
				_m.Council = new(string)
				*_m.Council = value.String
			}
		case admissionrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AdmissionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AdmissionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVerifications queries the "verifications" edge of the AdmissionRecord entity.
func (_m *AdmissionRecord) QueryVerifications() *VerificationRecordQuery {
	return NewAdmissionRecordClient(_m.config).QueryVerifications(_m)
}

// Update returns a builder for updating this AdmissionRecord.
// Note that you need to call AdmissionRecord.Unwrap() before calling this method if this AdmissionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdmissionRecord) Update() *AdmissionRecordUpdateOne {
	return NewAdmissionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdmissionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdmissionRecord) Unwrap() *AdmissionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdmissionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdmissionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AdmissionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	if v := _m.Quota; v != nil {
		builder.WriteString("quota=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.State; v != nil {
		builder.WriteString("state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CollegeName; v != nil {
		builder.WriteString("college_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Course; v != nil {
		builder.WriteString("course=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.SubCategory; v != nil {
		builder.WriteString("sub_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhysicallyHandicapped; v != nil {
		builder.WriteString("physically_handicapped=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MarksObtained; v != nil {
		builder.WriteString("marks_obtained=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxMarks; v != nil {
		builder.WriteString("max_marks=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateOfAdmission; v != nil {
		builder.WriteString("date_of_admission=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StudentName; v != nil {
		builder.WriteString("student_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExamRoll; v != nil {
		builder.WriteString("exam_roll=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Stipend; v != nil {
		builder.WriteString("stipend=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RegistrationNo; v != nil {
		builder.WriteString("registration_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Council; v != nil {
		builder.WriteString("council=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdmissionRecords is a parsable slice of AdmissionRecord.
type AdmissionRecords []*AdmissionRecord
