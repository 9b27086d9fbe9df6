// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// AdmissionRecordUpdate is the builder for updating AdmissionRecord entities.
type AdmissionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AdmissionRecordMutation
}

// Where appends a list predicates to the AdmissionRecordUpdate builder.
func (_u *AdmissionRecordUpdate) Where(ps ...predicate.AdmissionRecord) *AdmissionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetYear sets the "year" field.
func (_u *AdmissionRecordUpdate) SetYear(v int) *AdmissionRecordUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableYear(v *int) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *AdmissionRecordUpdate) AddYear(v int) *AdmissionRecordUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetRound sets the "round" field.
func (_u *AdmissionRecordUpdate) SetRound(v int) *AdmissionRecordUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableRound(v *int) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *AdmissionRecordUpdate) AddRound(v int) *AdmissionRecordUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *AdmissionRecordUpdate) SetRank(v int) *AdmissionRecordUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableRank(v *int) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *AdmissionRecordUpdate) AddRank(v int) *AdmissionRecordUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetQuota sets the "quota" field.
func (_u *AdmissionRecordUpdate) SetQuota(v string) *AdmissionRecordUpdate {
	_u.mutation.SetQuota(v)
	return _u
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableQuota(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetQuota(*v)
	}
	return _u
}

// ClearQuota clears the value of the "quota" field.
func (_u *AdmissionRecordUpdate) ClearQuota() *AdmissionRecordUpdate {
	_u.mutation.ClearQuota()
	return _u
}

// SetState sets the "state" field.
func (_u *AdmissionRecordUpdate) SetState(v string) *AdmissionRecordUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableState(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AdmissionRecordUpdate) ClearState() *AdmissionRecordUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetCollegeName sets the "college_name" field.
func (_u *AdmissionRecordUpdate) SetCollegeName(v string) *AdmissionRecordUpdate {
	_u.mutation.SetCollegeName(v)
	return _u
}

// SetNillableCollegeName sets the "college_name" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableCollegeName(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetCollegeName(*v)
	}
	return _u
}

// ClearCollegeName clears the value of the "college_name" field.
func (_u *AdmissionRecordUpdate) ClearCollegeName() *AdmissionRecordUpdate {
	_u.mutation.ClearCollegeName()
	return _u
}

// SetCourse sets the "course" field.
func (_u *AdmissionRecordUpdate) SetCourse(v string) *AdmissionRecordUpdate {
	_u.mutation.SetCourse(v)
	return _u
}

// SetNillableCourse sets the "course" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableCourse(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetCourse(*v)
	}
	return _u
}

// ClearCourse clears the value of the "course" field.
func (_u *AdmissionRecordUpdate) ClearCourse() *AdmissionRecordUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// SetCategory sets the "category" field.
func (_u *AdmissionRecordUpdate) SetCategory(v string) *AdmissionRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableCategory(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubCategory sets the "sub_category" field.
func (_u *AdmissionRecordUpdate) SetSubCategory(v string) *AdmissionRecordUpdate {
	_u.mutation.SetSubCategory(v)
	return _u
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableSubCategory(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetSubCategory(*v)
	}
	return _u
}

// ClearSubCategory clears the value of the "sub_category" field.
func (_u *AdmissionRecordUpdate) ClearSubCategory() *AdmissionRecordUpdate {
	_u.mutation.ClearSubCategory()
	return _u
}

// SetGender sets the "gender" field.
func (_u *AdmissionRecordUpdate) SetGender(v string) *AdmissionRecordUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableGender(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *AdmissionRecordUpdate) ClearGender() *AdmissionRecordUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (_u *AdmissionRecordUpdate) SetPhysicallyHandicapped(v string) *AdmissionRecordUpdate {
	_u.mutation.SetPhysicallyHandicapped(v)
	return _u
}

// SetNillablePhysicallyHandicapped sets the "physically_handicapped" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillablePhysicallyHandicapped(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetPhysicallyHandicapped(*v)
	}
	return _u
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (_u *AdmissionRecordUpdate) ClearPhysicallyHandicapped() *AdmissionRecordUpdate {
	_u.mutation.ClearPhysicallyHandicapped()
	return _u
}

// SetMarksObtained sets the "marks_obtained" field.
func (_u *AdmissionRecordUpdate) SetMarksObtained(v int) *AdmissionRecordUpdate {
	_u.mutation.ResetMarksObtained()
	_u.mutation.SetMarksObtained(v)
	return _u
}

// SetNillableMarksObtained sets the "marks_obtained" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableMarksObtained(v *int) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetMarksObtained(*v)
	}
	return _u
}

// AddMarksObtained adds value to the "marks_obtained" field.
func (_u *AdmissionRecordUpdate) AddMarksObtained(v int) *AdmissionRecordUpdate {
	_u.mutation.AddMarksObtained(v)
	return _u
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (_u *AdmissionRecordUpdate) ClearMarksObtained() *AdmissionRecordUpdate {
	_u.mutation.ClearMarksObtained()
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *AdmissionRecordUpdate) SetMaxMarks(v int) *AdmissionRecordUpdate {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableMaxMarks(v *int) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *AdmissionRecordUpdate) AddMaxMarks(v int) *AdmissionRecordUpdate {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (_u *AdmissionRecordUpdate) ClearMaxMarks() *AdmissionRecordUpdate {
	_u.mutation.ClearMaxMarks()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AdmissionRecordUpdate) SetStatus(v string) *AdmissionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableStatus(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *AdmissionRecordUpdate) ClearStatus() *AdmissionRecordUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (_u *AdmissionRecordUpdate) SetDateOfAdmission(v string) *AdmissionRecordUpdate {
	_u.mutation.SetDateOfAdmission(v)
	return _u
}

// SetNillableDateOfAdmission sets the "date_of_admission" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableDateOfAdmission(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetDateOfAdmission(*v)
	}
	return _u
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (_u *AdmissionRecordUpdate) ClearDateOfAdmission() *AdmissionRecordUpdate {
	_u.mutation.ClearDateOfAdmission()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AdmissionRecordUpdate) SetStudentName(v string) *AdmissionRecordUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableStudentName(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *AdmissionRecordUpdate) ClearStudentName() *AdmissionRecordUpdate {
	_u.mutation.ClearStudentName()
	return _u
}

// SetExamRoll sets the "exam_roll" field.
func (_u *AdmissionRecordUpdate) SetExamRoll(v string) *AdmissionRecordUpdate {
	_u.mutation.SetExamRoll(v)
	return _u
}

// SetNillableExamRoll sets the "exam_roll" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableExamRoll(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetExamRoll(*v)
	}
	return _u
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (_u *AdmissionRecordUpdate) ClearExamRoll() *AdmissionRecordUpdate {
	_u.mutation.ClearExamRoll()
	return _u
}

// SetStipend sets the "stipend" field.
func (_u *AdmissionRecordUpdate) SetStipend(v string) *AdmissionRecordUpdate {
	_u.mutation.SetStipend(v)
	return _u
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableStipend(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetStipend(*v)
	}
	return _u
}

// ClearStipend clears the value of the "stipend" field.
func (_u *AdmissionRecordUpdate) ClearStipend() *AdmissionRecordUpdate {
	_u.mutation.ClearStipend()
	return _u
}

// SetRegistrationNo sets the "registration_no" field.
func (_u *AdmissionRecordUpdate) SetRegistrationNo(v string) *AdmissionRecordUpdate {
	_u.mutation.SetRegistrationNo(v)
	return _u
}

// SetNillableRegistrationNo sets the "registration_no" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableRegistrationNo(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetRegistrationNo(*v)
	}
	return _u
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (_u *AdmissionRecordUpdate) ClearRegistrationNo() *AdmissionRecordUpdate {
	_u.mutation.ClearRegistrationNo()
	return _u
}

// SetCouncil sets the "council" field.
func (_u *AdmissionRecordUpdate) SetCouncil(v string) *AdmissionRecordUpdate {
	_u.mutation.SetCouncil(v)
	return _u
}

// SetNillableCouncil sets the "council" field if the given value is not nil.
func (_u *AdmissionRecordUpdate) SetNillableCouncil(v *string) *AdmissionRecordUpdate {
	if v != nil {
		_u.SetCouncil(*v)
	}
	return _u
}

// ClearCouncil clears the value of the "council" field.
func (_u *AdmissionRecordUpdate) ClearCouncil() *AdmissionRecordUpdate {
	_u.mutation.ClearCouncil()
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *AdmissionRecordUpdate) AddVerificationIDs(ids ...uuid.UUID) *AdmissionRecordUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *AdmissionRecordUpdate) AddVerifications(v ...*VerificationRecord) *AdmissionRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the AdmissionRecordMutation object of the builder.
func (_u *AdmissionRecordUpdate) Mutation() *AdmissionRecordMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *AdmissionRecordUpdate) ClearVerifications() *AdmissionRecordUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *AdmissionRecordUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *AdmissionRecordUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *AdmissionRecordUpdate) RemoveVerifications(v ...*VerificationRecord) *AdmissionRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdmissionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdmissionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdmissionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdmissionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdmissionRecordUpdate) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := admissionrecord.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := admissionrecord.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := admissionrecord.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.rank": %w`, err)}
		}
	}
	return nil
}

func (_u *AdmissionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admissionrecord.Table, admissionrecord.Columns, sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(admissionrecord.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(admissionrecord.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(admissionrecord.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(admissionrecord.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(admissionrecord.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(admissionrecord.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quota(); ok {
		_spec.SetField(admissionrecord.FieldQuota, field.TypeString, value)
	}
	if _u.mutation.QuotaCleared() {
		_spec.ClearField(admissionrecord.FieldQuota, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(admissionrecord.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(admissionrecord.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CollegeName(); ok {
		_spec.SetField(admissionrecord.FieldCollegeName, field.TypeString, value)
	}
	if _u.mutation.CollegeNameCleared() {
		_spec.ClearField(admissionrecord.FieldCollegeName, field.TypeString)
	}
	if value, ok := _u.mutation.Course(); ok {
		_spec.SetField(admissionrecord.FieldCourse, field.TypeString, value)
	}
	if _u.mutation.CourseCleared() {
		_spec.ClearField(admissionrecord.FieldCourse, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(admissionrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubCategory(); ok {
		_spec.SetField(admissionrecord.FieldSubCategory, field.TypeString, value)
	}
	if _u.mutation.SubCategoryCleared() {
		_spec.ClearField(admissionrecord.FieldSubCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(admissionrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(admissionrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicallyHandicapped(); ok {
		_spec.SetField(admissionrecord.FieldPhysicallyHandicapped, field.TypeString, value)
	}
	if _u.mutation.PhysicallyHandicappedCleared() {
		_spec.ClearField(admissionrecord.FieldPhysicallyHandicapped, field.TypeString)
	}
	if value, ok := _u.mutation.MarksObtained(); ok {
		_spec.SetField(admissionrecord.FieldMarksObtained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksObtained(); ok {
		_spec.AddField(admissionrecord.FieldMarksObtained, field.TypeInt, value)
	}
	if _u.mutation.MarksObtainedCleared() {
		_spec.ClearField(admissionrecord.FieldMarksObtained, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(admissionrecord.FieldMaxMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(admissionrecord.FieldMaxMarks, field.TypeInt, value)
	}
	if _u.mutation.MaxMarksCleared() {
		_spec.ClearField(admissionrecord.FieldMaxMarks, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(admissionrecord.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(admissionrecord.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfAdmission(); ok {
		_spec.SetField(admissionrecord.FieldDateOfAdmission, field.TypeString, value)
	}
	if _u.mutation.DateOfAdmissionCleared() {
		_spec.ClearField(admissionrecord.FieldDateOfAdmission, field.TypeString)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(admissionrecord.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(admissionrecord.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.ExamRoll(); ok {
		_spec.SetField(admissionrecord.FieldExamRoll, field.TypeString, value)
	}
	if _u.mutation.ExamRollCleared() {
		_spec.ClearField(admissionrecord.FieldExamRoll, field.TypeString)
	}
	if value, ok := _u.mutation.Stipend(); ok {
		_spec.SetField(admissionrecord.FieldStipend, field.TypeString, value)
	}
	if _u.mutation.StipendCleared() {
		_spec.ClearField(admissionrecord.FieldStipend, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationNo(); ok {
		_spec.SetField(admissionrecord.FieldRegistrationNo, field.TypeString, value)
	}
	if _u.mutation.RegistrationNoCleared() {
		_spec.ClearField(admissionrecord.FieldRegistrationNo, field.TypeString)
	}
	if value, ok := _u.mutation.Council(); ok {
		_spec.SetField(admissionrecord.FieldCouncil, field.TypeString, value)
	}
	if _u.mutation.CouncilCleared() {
		_spec.ClearField(admissionrecord.FieldCouncil, field.TypeString)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admissionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdmissionRecordUpdateOne is the builder for updating a single AdmissionRecord entity.
type AdmissionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdmissionRecordMutation
}

// SetYear sets the "year" field.
func (_u *AdmissionRecordUpdateOne) SetYear(v int) *AdmissionRecordUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableYear(v *int) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *AdmissionRecordUpdateOne) AddYear(v int) *AdmissionRecordUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetRound sets the "round" field.
func (_u *AdmissionRecordUpdateOne) SetRound(v int) *AdmissionRecordUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableRound(v *int) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *AdmissionRecordUpdateOne) AddRound(v int) *AdmissionRecordUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *AdmissionRecordUpdateOne) SetRank(v int) *AdmissionRecordUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableRank(v *int) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *AdmissionRecordUpdateOne) AddRank(v int) *AdmissionRecordUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetQuota sets the "quota" field.
func (_u *AdmissionRecordUpdateOne) SetQuota(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetQuota(v)
	return _u
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableQuota(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetQuota(*v)
	}
	return _u
}

// ClearQuota clears the value of the "quota" field.
func (_u *AdmissionRecordUpdateOne) ClearQuota() *AdmissionRecordUpdateOne {
	_u.mutation.ClearQuota()
	return _u
}

// SetState sets the "state" field.
func (_u *AdmissionRecordUpdateOne) SetState(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableState(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AdmissionRecordUpdateOne) ClearState() *AdmissionRecordUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetCollegeName sets the "college_name" field.
func (_u *AdmissionRecordUpdateOne) SetCollegeName(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetCollegeName(v)
	return _u
}

// SetNillableCollegeName sets the "college_name" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableCollegeName(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetCollegeName(*v)
	}
	return _u
}

// ClearCollegeName clears the value of the "college_name" field.
func (_u *AdmissionRecordUpdateOne) ClearCollegeName() *AdmissionRecordUpdateOne {
	_u.mutation.ClearCollegeName()
	return _u
}

// SetCourse sets the "course" field.
func (_u *AdmissionRecordUpdateOne) SetCourse(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetCourse(v)
	return _u
}

// SetNillableCourse sets the "course" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableCourse(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetCourse(*v)
	}
	return _u
}

// ClearCourse clears the value of the "course" field.
func (_u *AdmissionRecordUpdateOne) ClearCourse() *AdmissionRecordUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// SetCategory sets the "category" field.
func (_u *AdmissionRecordUpdateOne) SetCategory(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableCategory(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubCategory sets the "sub_category" field.
func (_u *AdmissionRecordUpdateOne) SetSubCategory(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetSubCategory(v)
	return _u
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableSubCategory(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetSubCategory(*v)
	}
	return _u
}

// ClearSubCategory clears the value of the "sub_category" field.
func (_u *AdmissionRecordUpdateOne) ClearSubCategory() *AdmissionRecordUpdateOne {
	_u.mutation.ClearSubCategory()
	return _u
}

// SetGender sets the "gender" field.
func (_u *AdmissionRecordUpdateOne) SetGender(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableGender(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *AdmissionRecordUpdateOne) ClearGender() *AdmissionRecordUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (_u *AdmissionRecordUpdateOne) SetPhysicallyHandicapped(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetPhysicallyHandicapped(v)
	return _u
}

// SetNillablePhysicallyHandicapped sets the "physically_handicapped" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillablePhysicallyHandicapped(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetPhysicallyHandicapped(*v)
	}
	return _u
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (_u *AdmissionRecordUpdateOne) ClearPhysicallyHandicapped() *AdmissionRecordUpdateOne {
	_u.mutation.ClearPhysicallyHandicapped()
	return _u
}

// SetMarksObtained sets the "marks_obtained" field.
func (_u *AdmissionRecordUpdateOne) SetMarksObtained(v int) *AdmissionRecordUpdateOne {
	_u.mutation.ResetMarksObtained()
	_u.mutation.SetMarksObtained(v)
	return _u
}

// SetNillableMarksObtained sets the "marks_obtained" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableMarksObtained(v *int) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetMarksObtained(*v)
	}
	return _u
}

// AddMarksObtained adds value to the "marks_obtained" field.
func (_u *AdmissionRecordUpdateOne) AddMarksObtained(v int) *AdmissionRecordUpdateOne {
	_u.mutation.AddMarksObtained(v)
	return _u
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (_u *AdmissionRecordUpdateOne) ClearMarksObtained() *AdmissionRecordUpdateOne {
	_u.mutation.ClearMarksObtained()
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *AdmissionRecordUpdateOne) SetMaxMarks(v int) *AdmissionRecordUpdateOne {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableMaxMarks(v *int) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *AdmissionRecordUpdateOne) AddMaxMarks(v int) *AdmissionRecordUpdateOne {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (_u *AdmissionRecordUpdateOne) ClearMaxMarks() *AdmissionRecordUpdateOne {
	_u.mutation.ClearMaxMarks()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AdmissionRecordUpdateOne) SetStatus(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableStatus(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *AdmissionRecordUpdateOne) ClearStatus() *AdmissionRecordUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (_u *AdmissionRecordUpdateOne) SetDateOfAdmission(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetDateOfAdmission(v)
	return _u
}

// SetNillableDateOfAdmission sets the "date_of_admission" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableDateOfAdmission(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetDateOfAdmission(*v)
	}
	return _u
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (_u *AdmissionRecordUpdateOne) ClearDateOfAdmission() *AdmissionRecordUpdateOne {
	_u.mutation.ClearDateOfAdmission()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AdmissionRecordUpdateOne) SetStudentName(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableStudentName(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *AdmissionRecordUpdateOne) ClearStudentName() *AdmissionRecordUpdateOne {
	_u.mutation.ClearStudentName()
	return _u
}

// SetExamRoll sets the "exam_roll" field.
func (_u *AdmissionRecordUpdateOne) SetExamRoll(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetExamRoll(v)
	return _u
}

// SetNillableExamRoll sets the "exam_roll" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableExamRoll(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetExamRoll(*v)
	}
	return _u
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (_u *AdmissionRecordUpdateOne) ClearExamRoll() *AdmissionRecordUpdateOne {
	_u.mutation.ClearExamRoll()
	return _u
}

// SetStipend sets the "stipend" field.
func (_u *AdmissionRecordUpdateOne) SetStipend(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetStipend(v)
	return _u
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableStipend(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetStipend(*v)
	}
	return _u
}

// ClearStipend clears the value of the "stipend" field.
func (_u *AdmissionRecordUpdateOne) ClearStipend() *AdmissionRecordUpdateOne {
	_u.mutation.ClearStipend()
	return _u
}

// SetRegistrationNo sets the "registration_no" field.
func (_u *AdmissionRecordUpdateOne) SetRegistrationNo(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetRegistrationNo(v)
	return _u
}

// SetNillableRegistrationNo sets the "registration_no" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableRegistrationNo(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetRegistrationNo(*v)
	}
	return _u
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (_u *AdmissionRecordUpdateOne) ClearRegistrationNo() *AdmissionRecordUpdateOne {
	_u.mutation.ClearRegistrationNo()
	return _u
}

// SetCouncil sets the "council" field.
func (_u *AdmissionRecordUpdateOne) SetCouncil(v string) *AdmissionRecordUpdateOne {
	_u.mutation.SetCouncil(v)
	return _u
}

// SetNillableCouncil sets the "council" field if the given value is not nil.
func (_u *AdmissionRecordUpdateOne) SetNillableCouncil(v *string) *AdmissionRecordUpdateOne {
	if v != nil {
		_u.SetCouncil(*v)
	}
	return _u
}

// ClearCouncil clears the value of the "council" field.
func (_u *AdmissionRecordUpdateOne) ClearCouncil() *AdmissionRecordUpdateOne {
	_u.mutation.ClearCouncil()
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *AdmissionRecordUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *AdmissionRecordUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *AdmissionRecordUpdateOne) AddVerifications(v ...*VerificationRecord) *AdmissionRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the AdmissionRecordMutation object of the builder.
func (_u *AdmissionRecordUpdateOne) Mutation() *AdmissionRecordMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *AdmissionRecordUpdateOne) ClearVerifications() *AdmissionRecordUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *AdmissionRecordUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *AdmissionRecordUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *AdmissionRecordUpdateOne) RemoveVerifications(v ...*VerificationRecord) *AdmissionRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the AdmissionRecordUpdate builder.
func (_u *AdmissionRecordUpdateOne) Where(ps ...predicate.AdmissionRecord) *AdmissionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdmissionRecordUpdateOne) Select(field string, fields ...string) *AdmissionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdmissionRecord entity.
func (_u *AdmissionRecordUpdateOne) Save(ctx context.Context) (*AdmissionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdmissionRecordUpdateOne) SaveX(ctx context.Context) *AdmissionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdmissionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdmissionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdmissionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := admissionrecord.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := admissionrecord.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := admissionrecord.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.rank": %w`, err)}
		}
	}
	return nil
}

func (_u *AdmissionRecordUpdateOne) sqlSave(ctx context.Context) (_node *AdmissionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admissionrecord.Table, admissionrecord.Columns, sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdmissionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, admissionrecord.FieldID)
		for _, f := range fields {
			if !admissionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != admissionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(admissionrecord.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(admissionrecord.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(admissionrecord.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(admissionrecord.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(admissionrecord.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(admissionrecord.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quota(); ok {
		_spec.SetField(admissionrecord.FieldQuota, field.TypeString, value)
	}
	if _u.mutation.QuotaCleared() {
		_spec.ClearField(admissionrecord.FieldQuota, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(admissionrecord.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(admissionrecord.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CollegeName(); ok {
		_spec.SetField(admissionrecord.FieldCollegeName, field.TypeString, value)
	}
	if _u.mutation.CollegeNameCleared() {
		_spec.ClearField(admissionrecord.FieldCollegeName, field.TypeString)
	}
	if value, ok := _u.mutation.Course(); ok {
		_spec.SetField(admissionrecord.FieldCourse, field.TypeString, value)
	}
	if _u.mutation.CourseCleared() {
		_spec.ClearField(admissionrecord.FieldCourse, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(admissionrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubCategory(); ok {
		_spec.SetField(admissionrecord.FieldSubCategory, field.TypeString, value)
	}
	if _u.mutation.SubCategoryCleared() {
		_spec.ClearField(admissionrecord.FieldSubCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(admissionrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(admissionrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicallyHandicapped(); ok {
		_spec.SetField(admissionrecord.FieldPhysicallyHandicapped, field.TypeString, value)
	}
	if _u.mutation.PhysicallyHandicappedCleared() {
		_spec.ClearField(admissionrecord.FieldPhysicallyHandicapped, field.TypeString)
	}
	if value, ok := _u.mutation.MarksObtained(); ok {
		_spec.SetField(admissionrecord.FieldMarksObtained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksObtained(); ok {
		_spec.AddField(admissionrecord.FieldMarksObtained, field.TypeInt, value)
	}
	if _u.mutation.MarksObtainedCleared() {
		_spec.ClearField(admissionrecord.FieldMarksObtained, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(admissionrecord.FieldMaxMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(admissionrecord.FieldMaxMarks, field.TypeInt, value)
	}
	if _u.mutation.MaxMarksCleared() {
		_spec.ClearField(admissionrecord.FieldMaxMarks, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(admissionrecord.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(admissionrecord.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfAdmission(); ok {
		_spec.SetField(admissionrecord.FieldDateOfAdmission, field.TypeString, value)
	}
	if _u.mutation.DateOfAdmissionCleared() {
		_spec.ClearField(admissionrecord.FieldDateOfAdmission, field.TypeString)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(admissionrecord.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(admissionrecord.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.ExamRoll(); ok {
		_spec.SetField(admissionrecord.FieldExamRoll, field.TypeString, value)
	}
	if _u.mutation.ExamRollCleared() {
		_spec.ClearField(admissionrecord.FieldExamRoll, field.TypeString)
	}
	if value, ok := _u.mutation.Stipend(); ok {
		_spec.SetField(admissionrecord.FieldStipend, field.TypeString, value)
	}
	if _u.mutation.StipendCleared() {
		_spec.ClearField(admissionrecord.FieldStipend, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationNo(); ok {
		_spec.SetField(admissionrecord.FieldRegistrationNo, field.TypeString, value)
	}
	if _u.mutation.RegistrationNoCleared() {
		_spec.ClearField(admissionrecord.FieldRegistrationNo, field.TypeString)
	}
	if value, ok := _u.mutation.Council(); ok {
		_spec.SetField(admissionrecord.FieldCouncil, field.TypeString, value)
	}
	if _u.mutation.CouncilCleared() {
		_spec.ClearField(admissionrecord.FieldCouncil, field.TypeString)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   admissionrecord.VerificationsTable,
			Columns: []string{admissionrecord.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AdmissionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admissionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
