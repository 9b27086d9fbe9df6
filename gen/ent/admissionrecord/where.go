// Code generated by ent, DO NOT EDIT.

package admissionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldID, id))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldYear, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRound, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRank, v))
}

// Quota applies equality check predicate on the "quota" field. It's identical to QuotaEQ.
func Quota(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldQuota, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldState, v))
}

// CollegeName applies equality check predicate on the "college_name" field. It's identical to CollegeNameEQ.
func CollegeName(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCollegeName, v))
}

// Course applies equality check predicate on the "course" field. It's identical to CourseEQ.
func Course(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCourse, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCategory, v))
}

// SubCategory applies equality check predicate on the "sub_category" field. It's identical to SubCategoryEQ.
func SubCategory(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldSubCategory, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldGender, v))
}

// PhysicallyHandicapped applies equality check predicate on the "physically_handicapped" field. It's identical to PhysicallyHandicappedEQ.
func PhysicallyHandicapped(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldPhysicallyHandicapped, v))
}

// MarksObtained applies equality check predicate on the "marks_obtained" field. It's identical to MarksObtainedEQ.
func MarksObtained(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldMarksObtained, v))
}

// MaxMarks applies equality check predicate on the "max_marks" field. It's identical to MaxMarksEQ.
func MaxMarks(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldMaxMarks, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStatus, v))
}

// DateOfAdmission applies equality check predicate on the "date_of_admission" field. It's identical to DateOfAdmissionEQ.
func DateOfAdmission(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldDateOfAdmission, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStudentName, v))
}

// ExamRoll applies equality check predicate on the "exam_roll" field. It's identical to ExamRollEQ.
func ExamRoll(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldExamRoll, v))
}

// Stipend applies equality check predicate on the "stipend" field. It's identical to StipendEQ.
func Stipend(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStipend, v))
}

// RegistrationNo applies equality check predicate on the "registration_no" field. It's identical to RegistrationNoEQ.
func RegistrationNo(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRegistrationNo, v))
}

// Council applies equality check predicate on the "council" field. It's identical to CouncilEQ.
func Council(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCouncil, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldYear, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldRound, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldRank, v))
}

// QuotaEQ applies the EQ predicate on the "quota" field.
func QuotaEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldQuota, v))
}

// QuotaNEQ applies the NEQ predicate on the "quota" field.
func QuotaNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldQuota, v))
}

// QuotaIn applies the In predicate on the "quota" field.
func QuotaIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldQuota, vs...))
}

// QuotaNotIn applies the NotIn predicate on the "quota" field.
func QuotaNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldQuota, vs...))
}

// QuotaGT applies the GT predicate on the "quota" field.
func QuotaGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldQuota, v))
}

// QuotaGTE applies the GTE predicate on the "quota" field.
func QuotaGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldQuota, v))
}

// QuotaLT applies the LT predicate on the "quota" field.
func QuotaLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldQuota, v))
}

// QuotaLTE applies the LTE predicate on the "quota" field.
func QuotaLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldQuota, v))
}

// QuotaContains applies the Contains predicate on the "quota" field.
func QuotaContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldQuota, v))
}

// QuotaHasPrefix applies the HasPrefix predicate on the "quota" field.
func QuotaHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldQuota, v))
}

// QuotaHasSuffix applies the HasSuffix predicate on the "quota" field.
func QuotaHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldQuota, v))
}

// QuotaIsNil applies the IsNil predicate on the "quota" field.
func QuotaIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldQuota))
}

// QuotaNotNil applies the NotNil predicate on the "quota" field.
func QuotaNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldQuota))
}

// QuotaEqualFold applies the EqualFold predicate on the "quota" field.
func QuotaEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldQuota, v))
}

// QuotaContainsFold applies the ContainsFold predicate on the "quota" field.
func QuotaContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldQuota, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldState, v))
}

// CollegeNameEQ applies the EQ predicate on the "college_name" field.
func CollegeNameEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCollegeName, v))
}

// CollegeNameNEQ applies the NEQ predicate on the "college_name" field.
func CollegeNameNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldCollegeName, v))
}

// CollegeNameIn applies the In predicate on the "college_name" field.
func CollegeNameIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldCollegeName, vs...))
}

// CollegeNameNotIn applies the NotIn predicate on the "college_name" field.
func CollegeNameNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldCollegeName, vs...))
}

// CollegeNameGT applies the GT predicate on the "college_name" field.
func CollegeNameGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldCollegeName, v))
}

// CollegeNameGTE applies the GTE predicate on the "college_name" field.
func CollegeNameGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldCollegeName, v))
}

// CollegeNameLT applies the LT predicate on the "college_name" field.
func CollegeNameLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldCollegeName, v))
}

// CollegeNameLTE applies the LTE predicate on the "college_name" field.
func CollegeNameLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldCollegeName, v))
}

// CollegeNameContains applies the Contains predicate on the "college_name" field.
func CollegeNameContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldCollegeName, v))
}

// CollegeNameHasPrefix applies the HasPrefix predicate on the "college_name" field.
func CollegeNameHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldCollegeName, v))
}

// CollegeNameHasSuffix applies the HasSuffix predicate on the "college_name" field.
func CollegeNameHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldCollegeName, v))
}

// CollegeNameIsNil applies the IsNil predicate on the "college_name" field.
func CollegeNameIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldCollegeName))
}

// CollegeNameNotNil applies the NotNil predicate on the "college_name" field.
func CollegeNameNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldCollegeName))
}

// CollegeNameEqualFold applies the EqualFold predicate on the "college_name" field.
func CollegeNameEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldCollegeName, v))
}

// CollegeNameContainsFold applies the ContainsFold predicate on the "college_name" field.
func CollegeNameContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldCollegeName, v))
}

// CourseEQ applies the EQ predicate on the "course" field.
func CourseEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCourse, v))
}

// CourseNEQ applies the NEQ predicate on the "course" field.
func CourseNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldCourse, v))
}

// CourseIn applies the In predicate on the "course" field.
func CourseIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldCourse, vs...))
}

// CourseNotIn applies the NotIn predicate on the "course" field.
func CourseNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldCourse, vs...))
}

// CourseGT applies the GT predicate on the "course" field.
func CourseGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldCourse, v))
}

// CourseGTE applies the GTE predicate on the "course" field.
func CourseGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldCourse, v))
}

// CourseLT applies the LT predicate on the "course" field.
func CourseLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldCourse, v))
}

// CourseLTE applies the LTE predicate on the "course" field.
func CourseLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldCourse, v))
}

// CourseContains applies the Contains predicate on the "course" field.
func CourseContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldCourse, v))
}

// CourseHasPrefix applies the HasPrefix predicate on the "course" field.
func CourseHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldCourse, v))
}

// CourseHasSuffix applies the HasSuffix predicate on the "course" field.
func CourseHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldCourse, v))
}

// CourseIsNil applies the IsNil predicate on the "course" field.
func CourseIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldCourse))
}

// CourseNotNil applies the NotNil predicate on the "course" field.
func CourseNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldCourse))
}

// CourseEqualFold applies the EqualFold predicate on the "course" field.
func CourseEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldCourse, v))
}

// CourseContainsFold applies the ContainsFold predicate on the "course" field.
func CourseContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldCourse, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldCategory, v))
}

// SubCategoryEQ applies the EQ predicate on the "sub_category" field.
func SubCategoryEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldSubCategory, v))
}

// SubCategoryNEQ applies the NEQ predicate on the "sub_category" field.
func SubCategoryNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldSubCategory, v))
}

// SubCategoryIn applies the In predicate on the "sub_category" field.
func SubCategoryIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldSubCategory, vs...))
}

// SubCategoryNotIn applies the NotIn predicate on the "sub_category" field.
func SubCategoryNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldSubCategory, vs...))
}

// SubCategoryGT applies the GT predicate on the "sub_category" field.
func SubCategoryGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldSubCategory, v))
}

// SubCategoryGTE applies the GTE predicate on the "sub_category" field.
func SubCategoryGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldSubCategory, v))
}

// SubCategoryLT applies the LT predicate on the "sub_category" field.
func SubCategoryLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldSubCategory, v))
}

// SubCategoryLTE applies the LTE predicate on the "sub_category" field.
func SubCategoryLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldSubCategory, v))
}

// SubCategoryContains applies the Contains predicate on the "sub_category" field.
func SubCategoryContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldSubCategory, v))
}

// SubCategoryHasPrefix applies the HasPrefix predicate on the "sub_category" field.
func SubCategoryHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldSubCategory, v))
}

// SubCategoryHasSuffix applies the HasSuffix predicate on the "sub_category" field.
func SubCategoryHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldSubCategory, v))
}

// SubCategoryIsNil applies the IsNil predicate on the "sub_category" field.
func SubCategoryIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldSubCategory))
}

// SubCategoryNotNil applies the NotNil predicate on the "sub_category" field.
func SubCategoryNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldSubCategory))
}

// SubCategoryEqualFold applies the EqualFold predicate on the "sub_category" field.
func SubCategoryEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldSubCategory, v))
}

// SubCategoryContainsFold applies the ContainsFold predicate on the "sub_category" field.
func SubCategoryContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldSubCategory, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldGender, v))
}

// PhysicallyHandicappedEQ applies the EQ predicate on the "physically_handicapped" field.
func PhysicallyHandicappedEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedNEQ applies the NEQ predicate on the "physically_handicapped" field.
func PhysicallyHandicappedNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedIn applies the In predicate on the "physically_handicapped" field.
func PhysicallyHandicappedIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldPhysicallyHandicapped, vs...))
}

// PhysicallyHandicappedNotIn applies the NotIn predicate on the "physically_handicapped" field.
func PhysicallyHandicappedNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldPhysicallyHandicapped, vs...))
}

// PhysicallyHandicappedGT applies the GT predicate on the "physically_handicapped" field.
func PhysicallyHandicappedGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedGTE applies the GTE predicate on the "physically_handicapped" field.
func PhysicallyHandicappedGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedLT applies the LT predicate on the "physically_handicapped" field.
func PhysicallyHandicappedLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedLTE applies the LTE predicate on the "physically_handicapped" field.
func PhysicallyHandicappedLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedContains applies the Contains predicate on the "physically_handicapped" field.
func PhysicallyHandicappedContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedHasPrefix applies the HasPrefix predicate on the "physically_handicapped" field.
func PhysicallyHandicappedHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedHasSuffix applies the HasSuffix predicate on the "physically_handicapped" field.
func PhysicallyHandicappedHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedIsNil applies the IsNil predicate on the "physically_handicapped" field.
func PhysicallyHandicappedIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldPhysicallyHandicapped))
}

// PhysicallyHandicappedNotNil applies the NotNil predicate on the "physically_handicapped" field.
func PhysicallyHandicappedNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldPhysicallyHandicapped))
}

// PhysicallyHandicappedEqualFold applies the EqualFold predicate on the "physically_handicapped" field.
func PhysicallyHandicappedEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldPhysicallyHandicapped, v))
}

// PhysicallyHandicappedContainsFold applies the ContainsFold predicate on the "physically_handicapped" field.
func PhysicallyHandicappedContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldPhysicallyHandicapped, v))
}

// MarksObtainedEQ applies the EQ predicate on the "marks_obtained" field.
func MarksObtainedEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldMarksObtained, v))
}

// MarksObtainedNEQ applies the NEQ predicate on the "marks_obtained" field.
func MarksObtainedNEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldMarksObtained, v))
}

// MarksObtainedIn applies the In predicate on the "marks_obtained" field.
func MarksObtainedIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldMarksObtained, vs...))
}

// MarksObtainedNotIn applies the NotIn predicate on the "marks_obtained" field.
func MarksObtainedNotIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldMarksObtained, vs...))
}

// MarksObtainedGT applies the GT predicate on the "marks_obtained" field.
func MarksObtainedGT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldMarksObtained, v))
}

// MarksObtainedGTE applies the GTE predicate on the "marks_obtained" field.
func MarksObtainedGTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldMarksObtained, v))
}

// MarksObtainedLT applies the LT predicate on the "marks_obtained" field.
func MarksObtainedLT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldMarksObtained, v))
}

// MarksObtainedLTE applies the LTE predicate on the "marks_obtained" field.
func MarksObtainedLTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldMarksObtained, v))
}

// MarksObtainedIsNil applies the IsNil predicate on the "marks_obtained" field.
func MarksObtainedIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldMarksObtained))
}

// MarksObtainedNotNil applies the NotNil predicate on the "marks_obtained" field.
func MarksObtainedNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldMarksObtained))
}

// MaxMarksEQ applies the EQ predicate on the "max_marks" field.
func MaxMarksEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldMaxMarks, v))
}

// MaxMarksNEQ applies the NEQ predicate on the "max_marks" field.
func MaxMarksNEQ(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldMaxMarks, v))
}

// MaxMarksIn applies the In predicate on the "max_marks" field.
func MaxMarksIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldMaxMarks, vs...))
}

// MaxMarksNotIn applies the NotIn predicate on the "max_marks" field.
func MaxMarksNotIn(vs ...int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldMaxMarks, vs...))
}

// MaxMarksGT applies the GT predicate on the "max_marks" field.
func MaxMarksGT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldMaxMarks, v))
}

// MaxMarksGTE applies the GTE predicate on the "max_marks" field.
func MaxMarksGTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldMaxMarks, v))
}

// MaxMarksLT applies the LT predicate on the "max_marks" field.
func MaxMarksLT(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldMaxMarks, v))
}

// MaxMarksLTE applies the LTE predicate on the "max_marks" field.
func MaxMarksLTE(v int) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldMaxMarks, v))
}

// MaxMarksIsNil applies the IsNil predicate on the "max_marks" field.
func MaxMarksIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldMaxMarks))
}

// MaxMarksNotNil applies the NotNil predicate on the "max_marks" field.
func MaxMarksNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldMaxMarks))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldStatus, v))
}

// DateOfAdmissionEQ applies the EQ predicate on the "date_of_admission" field.
func DateOfAdmissionEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldDateOfAdmission, v))
}

// DateOfAdmissionNEQ applies the NEQ predicate on the "date_of_admission" field.
func DateOfAdmissionNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldDateOfAdmission, v))
}

// DateOfAdmissionIn applies the In predicate on the "date_of_admission" field.
func DateOfAdmissionIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldDateOfAdmission, vs...))
}

// DateOfAdmissionNotIn applies the NotIn predicate on the "date_of_admission" field.
func DateOfAdmissionNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldDateOfAdmission, vs...))
}

// DateOfAdmissionGT applies the GT predicate on the "date_of_admission" field.
func DateOfAdmissionGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldDateOfAdmission, v))
}

// DateOfAdmissionGTE applies the GTE predicate on the "date_of_admission" field.
func DateOfAdmissionGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldDateOfAdmission, v))
}

// DateOfAdmissionLT applies the LT predicate on the "date_of_admission" field.
func DateOfAdmissionLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldDateOfAdmission, v))
}

// DateOfAdmissionLTE applies the LTE predicate on the "date_of_admission" field.
func DateOfAdmissionLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldDateOfAdmission, v))
}

// DateOfAdmissionContains applies the Contains predicate on the "date_of_admission" field.
func DateOfAdmissionContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldDateOfAdmission, v))
}

// DateOfAdmissionHasPrefix applies the HasPrefix predicate on the "date_of_admission" field.
func DateOfAdmissionHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldDateOfAdmission, v))
}

// DateOfAdmissionHasSuffix applies the HasSuffix predicate on the "date_of_admission" field.
func DateOfAdmissionHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldDateOfAdmission, v))
}

// DateOfAdmissionIsNil applies the IsNil predicate on the "date_of_admission" field.
func DateOfAdmissionIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldDateOfAdmission))
}

// DateOfAdmissionNotNil applies the NotNil predicate on the "date_of_admission" field.
func DateOfAdmissionNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldDateOfAdmission))
}

// DateOfAdmissionEqualFold applies the EqualFold predicate on the "date_of_admission" field.
func DateOfAdmissionEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldDateOfAdmission, v))
}

// DateOfAdmissionContainsFold applies the ContainsFold predicate on the "date_of_admission" field.
func DateOfAdmissionContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldDateOfAdmission, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameIsNil applies the IsNil predicate on the "student_name" field.
func StudentNameIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldStudentName))
}

// StudentNameNotNil applies the NotNil predicate on the "student_name" field.
func StudentNameNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldStudentName))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldStudentName, v))
}

// ExamRollEQ applies the EQ predicate on the "exam_roll" field.
func ExamRollEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldExamRoll, v))
}

// ExamRollNEQ applies the NEQ predicate on the "exam_roll" field.
func ExamRollNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldExamRoll, v))
}

// ExamRollIn applies the In predicate on the "exam_roll" field.
func ExamRollIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldExamRoll, vs...))
}

// ExamRollNotIn applies the NotIn predicate on the "exam_roll" field.
func ExamRollNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldExamRoll, vs...))
}

// ExamRollGT applies the GT predicate on the "exam_roll" field.
func ExamRollGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldExamRoll, v))
}

// ExamRollGTE applies the GTE predicate on the "exam_roll" field.
func ExamRollGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldExamRoll, v))
}

// ExamRollLT applies the LT predicate on the "exam_roll" field.
func ExamRollLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldExamRoll, v))
}

// ExamRollLTE applies the LTE predicate on the "exam_roll" field.
func ExamRollLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldExamRoll, v))
}

// ExamRollContains applies the Contains predicate on the "exam_roll" field.
func ExamRollContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldExamRoll, v))
}

// ExamRollHasPrefix applies the HasPrefix predicate on the "exam_roll" field.
func ExamRollHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldExamRoll, v))
}

// ExamRollHasSuffix applies the HasSuffix predicate on the "exam_roll" field.
func ExamRollHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldExamRoll, v))
}

// ExamRollIsNil applies the IsNil predicate on the "exam_roll" field.
func ExamRollIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldExamRoll))
}

// ExamRollNotNil applies the NotNil predicate on the "exam_roll" field.
func ExamRollNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldExamRoll))
}

// ExamRollEqualFold applies the EqualFold predicate on the "exam_roll" field.
func ExamRollEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldExamRoll, v))
}

// ExamRollContainsFold applies the ContainsFold predicate on the "exam_roll" field.
func ExamRollContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldExamRoll, v))
}

// StipendEQ applies the EQ predicate on the "stipend" field.
func StipendEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldStipend, v))
}

// StipendNEQ applies the NEQ predicate on the "stipend" field.
func StipendNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldStipend, v))
}

// StipendIn applies the In predicate on the "stipend" field.
func StipendIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldStipend, vs...))
}

// StipendNotIn applies the NotIn predicate on the "stipend" field.
func StipendNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldStipend, vs...))
}

// StipendGT applies the GT predicate on the "stipend" field.
func StipendGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldStipend, v))
}

// StipendGTE applies the GTE predicate on the "stipend" field.
func StipendGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldStipend, v))
}

// StipendLT applies the LT predicate on the "stipend" field.
func StipendLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldStipend, v))
}

// StipendLTE applies the LTE predicate on the "stipend" field.
func StipendLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldStipend, v))
}

// StipendContains applies the Contains predicate on the "stipend" field.
func StipendContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldStipend, v))
}

// StipendHasPrefix applies the HasPrefix predicate on the "stipend" field.
func StipendHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldStipend, v))
}

// StipendHasSuffix applies the HasSuffix predicate on the "stipend" field.
func StipendHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldStipend, v))
}

// StipendIsNil applies the IsNil predicate on the "stipend" field.
func StipendIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldStipend))
}

// StipendNotNil applies the NotNil predicate on the "stipend" field.
func StipendNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldStipend))
}

// StipendEqualFold applies the EqualFold predicate on the "stipend" field.
func StipendEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldStipend, v))
}

// StipendContainsFold applies the ContainsFold predicate on the "stipend" field.
func StipendContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldStipend, v))
}

// RegistrationNoEQ applies the EQ predicate on the "registration_no" field.
func RegistrationNoEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldRegistrationNo, v))
}

// RegistrationNoNEQ applies the NEQ predicate on the "registration_no" field.
func RegistrationNoNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldRegistrationNo, v))
}

// RegistrationNoIn applies the In predicate on the "registration_no" field.
func RegistrationNoIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldRegistrationNo, vs...))
}

// RegistrationNoNotIn applies the NotIn predicate on the "registration_no" field.
func RegistrationNoNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldRegistrationNo, vs...))
}

// RegistrationNoGT applies the GT predicate on the "registration_no" field.
func RegistrationNoGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldRegistrationNo, v))
}

// RegistrationNoGTE applies the GTE predicate on the "registration_no" field.
func RegistrationNoGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldRegistrationNo, v))
}

// RegistrationNoLT applies the LT predicate on the "registration_no" field.
func RegistrationNoLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldRegistrationNo, v))
}

// RegistrationNoLTE applies the LTE predicate on the "registration_no" field.
func RegistrationNoLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldRegistrationNo, v))
}

// RegistrationNoContains applies the Contains predicate on the "registration_no" field.
func RegistrationNoContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldRegistrationNo, v))
}

// RegistrationNoHasPrefix applies the HasPrefix predicate on the "registration_no" field.
func RegistrationNoHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldRegistrationNo, v))
}

// RegistrationNoHasSuffix applies the HasSuffix predicate on the "registration_no" field.
func RegistrationNoHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldRegistrationNo, v))
}

// RegistrationNoIsNil applies the IsNil predicate on the "registration_no" field.
func RegistrationNoIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldRegistrationNo))
}

// RegistrationNoNotNil applies the NotNil predicate on the "registration_no" field.
func RegistrationNoNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldRegistrationNo))
}

// RegistrationNoEqualFold applies the EqualFold predicate on the "registration_no" field.
func RegistrationNoEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldRegistrationNo, v))
}

// RegistrationNoContainsFold applies the ContainsFold predicate on the "registration_no" field.
func RegistrationNoContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldRegistrationNo, v))
}

// CouncilEQ applies the EQ predicate on the "council" field.
func CouncilEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCouncil, v))
}

// CouncilNEQ applies the NEQ predicate on the "council" field.
func CouncilNEQ(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldCouncil, v))
}

// CouncilIn applies the In predicate on the "council" field.
func CouncilIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldCouncil, vs...))
}

// CouncilNotIn applies the NotIn predicate on the "council" field.
func CouncilNotIn(vs ...string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldCouncil, vs...))
}

// CouncilGT applies the GT predicate on the "council" field.
func CouncilGT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldCouncil, v))
}

// CouncilGTE applies the GTE predicate on the "council" field.
func CouncilGTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldCouncil, v))
}

// CouncilLT applies the LT predicate on the "council" field.
func CouncilLT(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldCouncil, v))
}

// CouncilLTE applies the LTE predicate on the "council" field.
func CouncilLTE(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldCouncil, v))
}

// CouncilContains applies the Contains predicate on the "council" field.
func CouncilContains(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContains(FieldCouncil, v))
}

// CouncilHasPrefix applies the HasPrefix predicate on the "council" field.
func CouncilHasPrefix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasPrefix(FieldCouncil, v))
}

// CouncilHasSuffix applies the HasSuffix predicate on the "council" field.
func CouncilHasSuffix(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldHasSuffix(FieldCouncil, v))
}

// CouncilIsNil applies the IsNil predicate on the "council" field.
func CouncilIsNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIsNull(FieldCouncil))
}

// CouncilNotNil applies the NotNil predicate on the "council" field.
func CouncilNotNil() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotNull(FieldCouncil))
}

// CouncilEqualFold applies the EqualFold predicate on the "council" field.
func CouncilEqualFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEqualFold(FieldCouncil, v))
}

// CouncilContainsFold applies the ContainsFold predicate on the "council" field.
func CouncilContainsFold(v string) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldContainsFold(FieldCouncil, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.AdmissionRecord {
	return predicate.AdmissionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationRecord) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdmissionRecord) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdmissionRecord) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdmissionRecord) predicate.AdmissionRecord {
	return predicate.AdmissionRecord(sql.NotPredicates(p))
}
