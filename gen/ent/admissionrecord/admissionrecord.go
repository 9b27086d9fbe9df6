// Code generated by ent, DO NOT EDIT.

package admissionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the admissionrecord type in the database.
	Label = "admission_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldQuota holds the string denoting the quota field in the database.
	FieldQuota = "quota"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCollegeName holds the string denoting the college_name field in the database.
	FieldCollegeName = "college_name"
	// FieldCourse holds the string denoting the course field in the database.
	FieldCourse = "course"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubCategory holds the string denoting the sub_category field in the database.
	FieldSubCategory = "sub_category"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldPhysicallyHandicapped holds the string denoting the physically_handicapped field in the database.
	FieldPhysicallyHandicapped = "physically_handicapped"
	// FieldMarksObtained holds the string denoting the marks_obtained field in the database.
	FieldMarksObtained = "marks_obtained"
	// FieldMaxMarks holds the string denoting the max_marks field in the database.
	FieldMaxMarks = "max_marks"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDateOfAdmission holds the string denoting the date_of_admission field in the database.
	FieldDateOfAdmission = "date_of_admission"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldExamRoll holds the string denoting the exam_roll field in the database.
	FieldExamRoll = "exam_roll"
	// FieldStipend holds the string denoting the stipend field in the database.
	FieldStipend = "stipend"
	// FieldRegistrationNo holds the string denoting the registration_no field in the database.
	FieldRegistrationNo = "registration_no"
	// FieldCouncil holds the string denoting the council field in the database.
	FieldCouncil = "council"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVerifications holds the string denoting the verifications edge name in mutations.
	EdgeVerifications = "verifications"
	// Table holds the table name of the admissionrecord in the database.
	Table = "admission_records"
	// VerificationsTable is the table that holds the verifications relation/edge.
	VerificationsTable = "verification_records"
	// VerificationsInverseTable is the table name for the VerificationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "verificationrecord" package.
	VerificationsInverseTable = "verification_records"
	// VerificationsColumn is the table column denoting the verifications relation/edge.
	VerificationsColumn = "record_id"
)

// Columns holds all SQL columns for admissionrecord fields.
var Columns = []string{
	FieldID,
	FieldYear,
	FieldRound,
	FieldRank,
	FieldQuota,
	FieldState,
	FieldCollegeName,
	FieldCourse,
	FieldCategory,
	FieldSubCategory,
	FieldGender,
	FieldPhysicallyHandicapped,
	FieldMarksObtained,
	FieldMaxMarks,
	FieldStatus,
	FieldDateOfAdmission,
	FieldStudentName,
	FieldExamRoll,
	FieldStipend,
	FieldRegistrationNo,
	FieldCouncil,
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
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(int) error
	// RoundValidator is a validator for the "round" field. It is called by the builders before save.
	RoundValidator func(int) error
	// RankValidator is a validator for the "rank" field. It is called by the builders before save.
	RankValidator func(int) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AdmissionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByQuota orders the results by the quota field.
func ByQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuota, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCollegeName orders the results by the college_name field.
func ByCollegeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollegeName, opts...).ToFunc()
}

// ByCourse orders the results by the course field.
func ByCourse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourse, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubCategory orders the results by the sub_category field.
func BySubCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubCategory, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByPhysicallyHandicapped orders the results by the physically_handicapped field.
func ByPhysicallyHandicapped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicallyHandicapped, opts...).ToFunc()
}

// ByMarksObtained orders the results by the marks_obtained field.
func ByMarksObtained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarksObtained, opts...).ToFunc()
}

// ByMaxMarks orders the results by the max_marks field.
func ByMaxMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMarks, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDateOfAdmission orders the results by the date_of_admission field.
func ByDateOfAdmission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfAdmission, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByExamRoll orders the results by the exam_roll field.
func ByExamRoll(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamRoll, opts...).ToFunc()
}

// ByStipend orders the results by the stipend field.
func ByStipend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStipend, opts...).ToFunc()
}

// ByRegistrationNo orders the results by the registration_no field.
func ByRegistrationNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegistrationNo, opts...).ToFunc()
}

// ByCouncil orders the results by the council field.
func ByCouncil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCouncil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
