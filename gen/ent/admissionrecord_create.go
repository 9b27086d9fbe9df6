// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// AdmissionRecordCreate is the builder for creating a AdmissionRecord entity.
type AdmissionRecordCreate struct {
	config
	mutation *AdmissionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetYear sets the "year" field.
func (_c *AdmissionRecordCreate) SetYear(v int) *AdmissionRecordCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *AdmissionRecordCreate) SetRound(v int) *AdmissionRecordCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *AdmissionRecordCreate) SetRank(v int) *AdmissionRecordCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetQuota sets the "quota" field.
func (_c *AdmissionRecordCreate) SetQuota(v string) *AdmissionRecordCreate {
	_c.mutation.SetQuota(v)
	return _c
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableQuota(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetQuota(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *AdmissionRecordCreate) SetState(v string) *AdmissionRecordCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableState(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCollegeName sets the "college_name" field.
func (_c *AdmissionRecordCreate) SetCollegeName(v string) *AdmissionRecordCreate {
	_c.mutation.SetCollegeName(v)
	return _c
}

// SetNillableCollegeName sets the "college_name" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableCollegeName(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetCollegeName(*v)
	}
	return _c
}

// SetCourse sets the "course" field.
func (_c *AdmissionRecordCreate) SetCourse(v string) *AdmissionRecordCreate {
	_c.mutation.SetCourse(v)
	return _c
}

// SetNillableCourse sets the "course" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableCourse(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetCourse(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *AdmissionRecordCreate) SetCategory(v string) *AdmissionRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableCategory(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubCategory sets the "sub_category" field.
func (_c *AdmissionRecordCreate) SetSubCategory(v string) *AdmissionRecordCreate {
	_c.mutation.SetSubCategory(v)
	return _c
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableSubCategory(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetSubCategory(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *AdmissionRecordCreate) SetGender(v string) *AdmissionRecordCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableGender(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (_c *AdmissionRecordCreate) SetPhysicallyHandicapped(v string) *AdmissionRecordCreate {
	_c.mutation.SetPhysicallyHandicapped(v)
	return _c
}

// SetNillablePhysicallyHandicapped sets the "physically_handicapped" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillablePhysicallyHandicapped(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetPhysicallyHandicapped(*v)
	}
	return _c
}

// SetMarksObtained sets the "marks_obtained" field.
func (_c *AdmissionRecordCreate) SetMarksObtained(v int) *AdmissionRecordCreate {
	_c.mutation.SetMarksObtained(v)
	return _c
}

// SetNillableMarksObtained sets the "marks_obtained" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableMarksObtained(v *int) *AdmissionRecordCreate {
	if v != nil {
		_c.SetMarksObtained(*v)
	}
	return _c
}

// SetMaxMarks sets the "max_marks" field.
func (_c *AdmissionRecordCreate) SetMaxMarks(v int) *AdmissionRecordCreate {
	_c.mutation.SetMaxMarks(v)
	return _c
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableMaxMarks(v *int) *AdmissionRecordCreate {
	if v != nil {
		_c.SetMaxMarks(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AdmissionRecordCreate) SetStatus(v string) *AdmissionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableStatus(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (_c *AdmissionRecordCreate) SetDateOfAdmission(v string) *AdmissionRecordCreate {
	_c.mutation.SetDateOfAdmission(v)
	return _c
}

// SetNillableDateOfAdmission sets the "date_of_admission" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableDateOfAdmission(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetDateOfAdmission(*v)
	}
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *AdmissionRecordCreate) SetStudentName(v string) *AdmissionRecordCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableStudentName(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetStudentName(*v)
	}
	return _c
}

// SetExamRoll sets the "exam_roll" field.
func (_c *AdmissionRecordCreate) SetExamRoll(v string) *AdmissionRecordCreate {
	_c.mutation.SetExamRoll(v)
	return _c
}

// SetNillableExamRoll sets the "exam_roll" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableExamRoll(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetExamRoll(*v)
	}
	return _c
}

// SetStipend sets the "stipend" field.
func (_c *AdmissionRecordCreate) SetStipend(v string) *AdmissionRecordCreate {
	_c.mutation.SetStipend(v)
	return _c
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableStipend(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetStipend(*v)
	}
	return _c
}

// SetRegistrationNo sets the "registration_no" field.
func (_c *AdmissionRecordCreate) SetRegistrationNo(v string) *AdmissionRecordCreate {
	_c.mutation.SetRegistrationNo(v)
	return _c
}

// SetNillableRegistrationNo sets the "registration_no" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableRegistrationNo(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetRegistrationNo(*v)
	}
	return _c
}

// SetCouncil sets the "council" field.
func (_c *AdmissionRecordCreate) SetCouncil(v string) *AdmissionRecordCreate {
	_c.mutation.SetCouncil(v)
	return _c
}

// SetNillableCouncil sets the "council" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableCouncil(v *string) *AdmissionRecordCreate {
	if v != nil {
		_c.SetCouncil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdmissionRecordCreate) SetCreatedAt(v time.Time) *AdmissionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableCreatedAt(v *time.Time) *AdmissionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdmissionRecordCreate) SetID(v uuid.UUID) *AdmissionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdmissionRecordCreate) SetNillableID(v *uuid.UUID) *AdmissionRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_c *AdmissionRecordCreate) AddVerificationIDs(ids ...uuid.UUID) *AdmissionRecordCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_c *AdmissionRecordCreate) AddVerifications(v ...*VerificationRecord) *AdmissionRecordCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the AdmissionRecordMutation object of the builder.
func (_c *AdmissionRecordCreate) Mutation() *AdmissionRecordMutation {
	return _c.mutation
}

// Save creates the AdmissionRecord in the database.
func (_c *AdmissionRecordCreate) Save(ctx context.Context) (*AdmissionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdmissionRecordCreate) SaveX(ctx context.Context) *AdmissionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdmissionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdmissionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdmissionRecordCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := admissionrecord.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := admissionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := admissionrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdmissionRecordCreate) check() error {
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "AdmissionRecord.year"`)}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := admissionrecord.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "AdmissionRecord.round"`)}
	}
	if v, ok := _c.mutation.Round(); ok {
		if err := admissionrecord.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.round": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "AdmissionRecord.rank"`)}
	}
	if v, ok := _c.mutation.Rank(); ok {
		if err := admissionrecord.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "AdmissionRecord.rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AdmissionRecord.category"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdmissionRecord.created_at"`)}
	}
	return nil
}

func (_c *AdmissionRecordCreate) sqlSave(ctx context.Context) (*AdmissionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdmissionRecordCreate) createSpec() (*AdmissionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AdmissionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(admissionrecord.Table, sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(admissionrecord.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(admissionrecord.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(admissionrecord.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.Quota(); ok {
		_spec.SetField(admissionrecord.FieldQuota, field.TypeString, value)
		_node.Quota = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(admissionrecord.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.CollegeName(); ok {
		_spec.SetField(admissionrecord.FieldCollegeName, field.TypeString, value)
		_node.CollegeName = &value
	}
	if value, ok := _c.mutation.Course(); ok {
		_spec.SetField(admissionrecord.FieldCourse, field.TypeString, value)
		_node.Course = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(admissionrecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SubCategory(); ok {
		_spec.SetField(admissionrecord.FieldSubCategory, field.TypeString, value)
		_node.SubCategory = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(admissionrecord.FieldGender, field.TypeString, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.PhysicallyHandicapped(); ok {
		_spec.SetField(admissionrecord.FieldPhysicallyHandicapped, field.TypeString, value)
		_node.PhysicallyHandicapped = &value
	}
	if value, ok := _c.mutation.MarksObtained(); ok {
		_spec.SetField(admissionrecord.FieldMarksObtained, field.TypeInt, value)
		_node.MarksObtained = &value
	}
	if value, ok := _c.mutation.MaxMarks(); ok {
		_spec.SetField(admissionrecord.FieldMaxMarks, field.TypeInt, value)
		_node.MaxMarks = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(admissionrecord.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.DateOfAdmission(); ok {
		_spec.SetField(admissionrecord.FieldDateOfAdmission, field.TypeString, value)
		_node.DateOfAdmission = &value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(admissionrecord.FieldStudentName, field.TypeString, value)
		_node.StudentName = &value
	}
	if value, ok := _c.mutation.ExamRoll(); ok {
		_spec.SetField(admissionrecord.FieldExamRoll, field.TypeString, value)
		_node.ExamRoll = &value
	}
	if value, ok := _c.mutation.Stipend(); ok {
		_spec.SetField(admissionrecord.FieldStipend, field.TypeString, value)
		_node.Stipend = &value
	}
	if value, ok := _c.mutation.RegistrationNo(); ok {
		_spec.SetField(admissionrecord.FieldRegistrationNo, field.TypeString, value)
		_node.RegistrationNo = &value
	}
	if value, ok := _c.mutation.Council(); ok {
		_spec.SetField(admissionrecord.FieldCouncil, field.TypeString, value)
		_node.Council = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(admissionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdmissionRecord.Create().
//		SetYear(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdmissionRecordUpsert) {
//			SetYear(v+v).
//		}).
//		Exec(ctx)
func (_c *AdmissionRecordCreate) OnConflict(opts ...sql.ConflictOption) *AdmissionRecordUpsertOne {
	_c.conflict = opts
	return &AdmissionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdmissionRecordCreate) OnConflictColumns(columns ...string) *AdmissionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdmissionRecordUpsertOne{
		create: _c,
	}
}

type (
	// AdmissionRecordUpsertOne is the builder for "upsert"-ing
	//  one AdmissionRecord node.
	AdmissionRecordUpsertOne struct {
		create *AdmissionRecordCreate
	}

	// AdmissionRecordUpsert is the "OnConflict" setter.
	AdmissionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetYear sets the "year" field.
func (u *AdmissionRecordUpsert) SetYear(v int) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateYear() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldYear)
	return u
}

// AddYear adds v to the "year" field.
func (u *AdmissionRecordUpsert) AddYear(v int) *AdmissionRecordUpsert {
	u.Add(admissionrecord.FieldYear, v)
	return u
}

// SetRound sets the "round" field.
func (u *AdmissionRecordUpsert) SetRound(v int) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldRound, v)
	return u
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateRound() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldRound)
	return u
}

// AddRound adds v to the "round" field.
func (u *AdmissionRecordUpsert) AddRound(v int) *AdmissionRecordUpsert {
	u.Add(admissionrecord.FieldRound, v)
	return u
}

// SetRank sets the "rank" field.
func (u *AdmissionRecordUpsert) SetRank(v int) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateRank() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *AdmissionRecordUpsert) AddRank(v int) *AdmissionRecordUpsert {
	u.Add(admissionrecord.FieldRank, v)
	return u
}

// SetQuota sets the "quota" field.
func (u *AdmissionRecordUpsert) SetQuota(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldQuota, v)
	return u
}

// UpdateQuota sets the "quota" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateQuota() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldQuota)
	return u
}

// ClearQuota clears the value of the "quota" field.
func (u *AdmissionRecordUpsert) ClearQuota() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldQuota)
	return u
}

// SetState sets the "state" field.
func (u *AdmissionRecordUpsert) SetState(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateState() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *AdmissionRecordUpsert) ClearState() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldState)
	return u
}

// SetCollegeName sets the "college_name" field.
func (u *AdmissionRecordUpsert) SetCollegeName(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldCollegeName, v)
	return u
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateCollegeName() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldCollegeName)
	return u
}

// ClearCollegeName clears the value of the "college_name" field.
func (u *AdmissionRecordUpsert) ClearCollegeName() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldCollegeName)
	return u
}

// SetCourse sets the "course" field.
func (u *AdmissionRecordUpsert) SetCourse(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldCourse, v)
	return u
}

// UpdateCourse sets the "course" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateCourse() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldCourse)
	return u
}

// ClearCourse clears the value of the "course" field.
func (u *AdmissionRecordUpsert) ClearCourse() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldCourse)
	return u
}

// SetCategory sets the "category" field.
func (u *AdmissionRecordUpsert) SetCategory(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateCategory() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldCategory)
	return u
}

// SetSubCategory sets the "sub_category" field.
func (u *AdmissionRecordUpsert) SetSubCategory(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldSubCategory, v)
	return u
}

// UpdateSubCategory sets the "sub_category" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateSubCategory() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldSubCategory)
	return u
}

// ClearSubCategory clears the value of the "sub_category" field.
func (u *AdmissionRecordUpsert) ClearSubCategory() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldSubCategory)
	return u
}

// SetGender sets the "gender" field.
func (u *AdmissionRecordUpsert) SetGender(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateGender() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *AdmissionRecordUpsert) ClearGender() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldGender)
	return u
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (u *AdmissionRecordUpsert) SetPhysicallyHandicapped(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldPhysicallyHandicapped, v)
	return u
}

// UpdatePhysicallyHandicapped sets the "physically_handicapped" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdatePhysicallyHandicapped() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldPhysicallyHandicapped)
	return u
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (u *AdmissionRecordUpsert) ClearPhysicallyHandicapped() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldPhysicallyHandicapped)
	return u
}

// SetMarksObtained sets the "marks_obtained" field.
func (u *AdmissionRecordUpsert) SetMarksObtained(v int) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldMarksObtained, v)
	return u
}

// UpdateMarksObtained sets the "marks_obtained" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateMarksObtained() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldMarksObtained)
	return u
}

// AddMarksObtained adds v to the "marks_obtained" field.
func (u *AdmissionRecordUpsert) AddMarksObtained(v int) *AdmissionRecordUpsert {
	u.Add(admissionrecord.FieldMarksObtained, v)
	return u
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (u *AdmissionRecordUpsert) ClearMarksObtained() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldMarksObtained)
	return u
}

// SetMaxMarks sets the "max_marks" field.
func (u *AdmissionRecordUpsert) SetMaxMarks(v int) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldMaxMarks, v)
	return u
}

// UpdateMaxMarks sets the "max_marks" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateMaxMarks() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldMaxMarks)
	return u
}

// AddMaxMarks adds v to the "max_marks" field.
func (u *AdmissionRecordUpsert) AddMaxMarks(v int) *AdmissionRecordUpsert {
	u.Add(admissionrecord.FieldMaxMarks, v)
	return u
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (u *AdmissionRecordUpsert) ClearMaxMarks() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldMaxMarks)
	return u
}

// SetStatus sets the "status" field.
func (u *AdmissionRecordUpsert) SetStatus(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateStatus() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *AdmissionRecordUpsert) ClearStatus() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldStatus)
	return u
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (u *AdmissionRecordUpsert) SetDateOfAdmission(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldDateOfAdmission, v)
	return u
}

// UpdateDateOfAdmission sets the "date_of_admission" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateDateOfAdmission() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldDateOfAdmission)
	return u
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (u *AdmissionRecordUpsert) ClearDateOfAdmission() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldDateOfAdmission)
	return u
}

// SetStudentName sets the "student_name" field.
func (u *AdmissionRecordUpsert) SetStudentName(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldStudentName, v)
	return u
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateStudentName() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldStudentName)
	return u
}

// ClearStudentName clears the value of the "student_name" field.
func (u *AdmissionRecordUpsert) ClearStudentName() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldStudentName)
	return u
}

// SetExamRoll sets the "exam_roll" field.
func (u *AdmissionRecordUpsert) SetExamRoll(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldExamRoll, v)
	return u
}

// UpdateExamRoll sets the "exam_roll" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateExamRoll() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldExamRoll)
	return u
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (u *AdmissionRecordUpsert) ClearExamRoll() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldExamRoll)
	return u
}

// SetStipend sets the "stipend" field.
func (u *AdmissionRecordUpsert) SetStipend(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldStipend, v)
	return u
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateStipend() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldStipend)
	return u
}

// ClearStipend clears the value of the "stipend" field.
func (u *AdmissionRecordUpsert) ClearStipend() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldStipend)
	return u
}

// SetRegistrationNo sets the "registration_no" field.
func (u *AdmissionRecordUpsert) SetRegistrationNo(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldRegistrationNo, v)
	return u
}

// UpdateRegistrationNo sets the "registration_no" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateRegistrationNo() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldRegistrationNo)
	return u
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (u *AdmissionRecordUpsert) ClearRegistrationNo() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldRegistrationNo)
	return u
}

// SetCouncil sets the "council" field.
func (u *AdmissionRecordUpsert) SetCouncil(v string) *AdmissionRecordUpsert {
	u.Set(admissionrecord.FieldCouncil, v)
	return u
}

// UpdateCouncil sets the "council" field to the value that was provided on create.
func (u *AdmissionRecordUpsert) UpdateCouncil() *AdmissionRecordUpsert {
	u.SetExcluded(admissionrecord.FieldCouncil)
	return u
}

// ClearCouncil clears the value of the "council" field.
func (u *AdmissionRecordUpsert) ClearCouncil() *AdmissionRecordUpsert {
	u.SetNull(admissionrecord.FieldCouncil)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(admissionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdmissionRecordUpsertOne) UpdateNewValues() *AdmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(admissionrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(admissionrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdmissionRecordUpsertOne) Ignore() *AdmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdmissionRecordUpsertOne) DoNothing() *AdmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdmissionRecordCreate.OnConflict
// documentation for more info.
func (u *AdmissionRecordUpsertOne) Update(set func(*AdmissionRecordUpsert)) *AdmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdmissionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetYear sets the "year" field.
func (u *AdmissionRecordUpsertOne) SetYear(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *AdmissionRecordUpsertOne) AddYear(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateYear() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateYear()
	})
}

// SetRound sets the "round" field.
func (u *AdmissionRecordUpsertOne) SetRound(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *AdmissionRecordUpsertOne) AddRound(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateRound() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRound()
	})
}

// SetRank sets the "rank" field.
func (u *AdmissionRecordUpsertOne) SetRank(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *AdmissionRecordUpsertOne) AddRank(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateRank() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRank()
	})
}

// SetQuota sets the "quota" field.
func (u *AdmissionRecordUpsertOne) SetQuota(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetQuota(v)
	})
}

// UpdateQuota sets the "quota" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateQuota() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateQuota()
	})
}

// ClearQuota clears the value of the "quota" field.
func (u *AdmissionRecordUpsertOne) ClearQuota() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearQuota()
	})
}

// SetState sets the "state" field.
func (u *AdmissionRecordUpsertOne) SetState(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateState() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *AdmissionRecordUpsertOne) ClearState() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearState()
	})
}

// SetCollegeName sets the "college_name" field.
func (u *AdmissionRecordUpsertOne) SetCollegeName(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCollegeName(v)
	})
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateCollegeName() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCollegeName()
	})
}

// ClearCollegeName clears the value of the "college_name" field.
func (u *AdmissionRecordUpsertOne) ClearCollegeName() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCollegeName()
	})
}

// SetCourse sets the "course" field.
func (u *AdmissionRecordUpsertOne) SetCourse(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCourse(v)
	})
}

// UpdateCourse sets the "course" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateCourse() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCourse()
	})
}

// ClearCourse clears the value of the "course" field.
func (u *AdmissionRecordUpsertOne) ClearCourse() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCourse()
	})
}

// SetCategory sets the "category" field.
func (u *AdmissionRecordUpsertOne) SetCategory(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateCategory() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCategory()
	})
}

// SetSubCategory sets the "sub_category" field.
func (u *AdmissionRecordUpsertOne) SetSubCategory(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetSubCategory(v)
	})
}

// UpdateSubCategory sets the "sub_category" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateSubCategory() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateSubCategory()
	})
}

// ClearSubCategory clears the value of the "sub_category" field.
func (u *AdmissionRecordUpsertOne) ClearSubCategory() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearSubCategory()
	})
}

// SetGender sets the "gender" field.
func (u *AdmissionRecordUpsertOne) SetGender(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateGender() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *AdmissionRecordUpsertOne) ClearGender() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearGender()
	})
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (u *AdmissionRecordUpsertOne) SetPhysicallyHandicapped(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetPhysicallyHandicapped(v)
	})
}

// UpdatePhysicallyHandicapped sets the "physically_handicapped" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdatePhysicallyHandicapped() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdatePhysicallyHandicapped()
	})
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (u *AdmissionRecordUpsertOne) ClearPhysicallyHandicapped() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearPhysicallyHandicapped()
	})
}

// SetMarksObtained sets the "marks_obtained" field.
func (u *AdmissionRecordUpsertOne) SetMarksObtained(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetMarksObtained(v)
	})
}

// AddMarksObtained adds v to the "marks_obtained" field.
func (u *AdmissionRecordUpsertOne) AddMarksObtained(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddMarksObtained(v)
	})
}

// UpdateMarksObtained sets the "marks_obtained" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateMarksObtained() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateMarksObtained()
	})
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (u *AdmissionRecordUpsertOne) ClearMarksObtained() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearMarksObtained()
	})
}

// SetMaxMarks sets the "max_marks" field.
func (u *AdmissionRecordUpsertOne) SetMaxMarks(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetMaxMarks(v)
	})
}

// AddMaxMarks adds v to the "max_marks" field.
func (u *AdmissionRecordUpsertOne) AddMaxMarks(v int) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddMaxMarks(v)
	})
}

// UpdateMaxMarks sets the "max_marks" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateMaxMarks() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateMaxMarks()
	})
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (u *AdmissionRecordUpsertOne) ClearMaxMarks() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearMaxMarks()
	})
}

// SetStatus sets the "status" field.
func (u *AdmissionRecordUpsertOne) SetStatus(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateStatus() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *AdmissionRecordUpsertOne) ClearStatus() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStatus()
	})
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (u *AdmissionRecordUpsertOne) SetDateOfAdmission(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetDateOfAdmission(v)
	})
}

// UpdateDateOfAdmission sets the "date_of_admission" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateDateOfAdmission() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateDateOfAdmission()
	})
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (u *AdmissionRecordUpsertOne) ClearDateOfAdmission() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearDateOfAdmission()
	})
}

// SetStudentName sets the "student_name" field.
func (u *AdmissionRecordUpsertOne) SetStudentName(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateStudentName() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStudentName()
	})
}

// ClearStudentName clears the value of the "student_name" field.
func (u *AdmissionRecordUpsertOne) ClearStudentName() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStudentName()
	})
}

// SetExamRoll sets the "exam_roll" field.
func (u *AdmissionRecordUpsertOne) SetExamRoll(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetExamRoll(v)
	})
}

// UpdateExamRoll sets the "exam_roll" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateExamRoll() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateExamRoll()
	})
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (u *AdmissionRecordUpsertOne) ClearExamRoll() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearExamRoll()
	})
}

// SetStipend sets the "stipend" field.
func (u *AdmissionRecordUpsertOne) SetStipend(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStipend(v)
	})
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateStipend() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStipend()
	})
}

// ClearStipend clears the value of the "stipend" field.
func (u *AdmissionRecordUpsertOne) ClearStipend() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStipend()
	})
}

// SetRegistrationNo sets the "registration_no" field.
func (u *AdmissionRecordUpsertOne) SetRegistrationNo(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRegistrationNo(v)
	})
}

// UpdateRegistrationNo sets the "registration_no" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateRegistrationNo() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRegistrationNo()
	})
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (u *AdmissionRecordUpsertOne) ClearRegistrationNo() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearRegistrationNo()
	})
}

// SetCouncil sets the "council" field.
func (u *AdmissionRecordUpsertOne) SetCouncil(v string) *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCouncil(v)
	})
}

// UpdateCouncil sets the "council" field to the value that was provided on create.
func (u *AdmissionRecordUpsertOne) UpdateCouncil() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCouncil()
	})
}

// ClearCouncil clears the value of the "council" field.
func (u *AdmissionRecordUpsertOne) ClearCouncil() *AdmissionRecordUpsertOne {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCouncil()
	})
}

// Exec executes the query.
func (u *AdmissionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdmissionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdmissionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdmissionRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AdmissionRecordUpsertOne.ID is not supported by MySQL driver. Use AdmissionRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdmissionRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdmissionRecordCreateBulk is the builder for creating many AdmissionRecord entities in bulk.
type AdmissionRecordCreateBulk struct {
	config
	err      error
	builders []*AdmissionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AdmissionRecord entities in the database.
func (_c *AdmissionRecordCreateBulk) Save(ctx context.Context) ([]*AdmissionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdmissionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdmissionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdmissionRecordCreateBulk) SaveX(ctx context.Context) []*AdmissionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdmissionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdmissionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdmissionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdmissionRecordUpsert) {
//			SetYear(v+v).
//		}).
//		Exec(ctx)
func (_c *AdmissionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdmissionRecordUpsertBulk {
	_c.conflict = opts
	return &AdmissionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdmissionRecordCreateBulk) OnConflictColumns(columns ...string) *AdmissionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdmissionRecordUpsertBulk{
		create: _c,
	}
}

// AdmissionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AdmissionRecord nodes.
type AdmissionRecordUpsertBulk struct {
	create *AdmissionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(admissionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdmissionRecordUpsertBulk) UpdateNewValues() *AdmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(admissionrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(admissionrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdmissionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdmissionRecordUpsertBulk) Ignore() *AdmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdmissionRecordUpsertBulk) DoNothing() *AdmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdmissionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AdmissionRecordUpsertBulk) Update(set func(*AdmissionRecordUpsert)) *AdmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdmissionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetYear sets the "year" field.
func (u *AdmissionRecordUpsertBulk) SetYear(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *AdmissionRecordUpsertBulk) AddYear(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateYear() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateYear()
	})
}

// SetRound sets the "round" field.
func (u *AdmissionRecordUpsertBulk) SetRound(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *AdmissionRecordUpsertBulk) AddRound(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateRound() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRound()
	})
}

// SetRank sets the "rank" field.
func (u *AdmissionRecordUpsertBulk) SetRank(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *AdmissionRecordUpsertBulk) AddRank(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateRank() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRank()
	})
}

// SetQuota sets the "quota" field.
func (u *AdmissionRecordUpsertBulk) SetQuota(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetQuota(v)
	})
}

// UpdateQuota sets the "quota" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateQuota() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateQuota()
	})
}

// ClearQuota clears the value of the "quota" field.
func (u *AdmissionRecordUpsertBulk) ClearQuota() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearQuota()
	})
}

// SetState sets the "state" field.
func (u *AdmissionRecordUpsertBulk) SetState(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateState() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *AdmissionRecordUpsertBulk) ClearState() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearState()
	})
}

// SetCollegeName sets the "college_name" field.
func (u *AdmissionRecordUpsertBulk) SetCollegeName(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCollegeName(v)
	})
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateCollegeName() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCollegeName()
	})
}

// ClearCollegeName clears the value of the "college_name" field.
func (u *AdmissionRecordUpsertBulk) ClearCollegeName() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCollegeName()
	})
}

// SetCourse sets the "course" field.
func (u *AdmissionRecordUpsertBulk) SetCourse(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCourse(v)
	})
}

// UpdateCourse sets the "course" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateCourse() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCourse()
	})
}

// ClearCourse clears the value of the "course" field.
func (u *AdmissionRecordUpsertBulk) ClearCourse() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCourse()
	})
}

// SetCategory sets the "category" field.
func (u *AdmissionRecordUpsertBulk) SetCategory(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateCategory() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCategory()
	})
}

// SetSubCategory sets the "sub_category" field.
func (u *AdmissionRecordUpsertBulk) SetSubCategory(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetSubCategory(v)
	})
}

// UpdateSubCategory sets the "sub_category" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateSubCategory() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateSubCategory()
	})
}

// ClearSubCategory clears the value of the "sub_category" field.
func (u *AdmissionRecordUpsertBulk) ClearSubCategory() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearSubCategory()
	})
}

// SetGender sets the "gender" field.
func (u *AdmissionRecordUpsertBulk) SetGender(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateGender() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *AdmissionRecordUpsertBulk) ClearGender() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearGender()
	})
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (u *AdmissionRecordUpsertBulk) SetPhysicallyHandicapped(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetPhysicallyHandicapped(v)
	})
}

// UpdatePhysicallyHandicapped sets the "physically_handicapped" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdatePhysicallyHandicapped() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdatePhysicallyHandicapped()
	})
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (u *AdmissionRecordUpsertBulk) ClearPhysicallyHandicapped() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearPhysicallyHandicapped()
	})
}

// SetMarksObtained sets the "marks_obtained" field.
func (u *AdmissionRecordUpsertBulk) SetMarksObtained(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetMarksObtained(v)
	})
}

// AddMarksObtained adds v to the "marks_obtained" field.
func (u *AdmissionRecordUpsertBulk) AddMarksObtained(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddMarksObtained(v)
	})
}

// UpdateMarksObtained sets the "marks_obtained" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateMarksObtained() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateMarksObtained()
	})
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (u *AdmissionRecordUpsertBulk) ClearMarksObtained() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearMarksObtained()
	})
}

// SetMaxMarks sets the "max_marks" field.
func (u *AdmissionRecordUpsertBulk) SetMaxMarks(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetMaxMarks(v)
	})
}

// AddMaxMarks adds v to the "max_marks" field.
func (u *AdmissionRecordUpsertBulk) AddMaxMarks(v int) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.AddMaxMarks(v)
	})
}

// UpdateMaxMarks sets the "max_marks" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateMaxMarks() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateMaxMarks()
	})
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (u *AdmissionRecordUpsertBulk) ClearMaxMarks() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearMaxMarks()
	})
}

// SetStatus sets the "status" field.
func (u *AdmissionRecordUpsertBulk) SetStatus(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateStatus() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *AdmissionRecordUpsertBulk) ClearStatus() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStatus()
	})
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (u *AdmissionRecordUpsertBulk) SetDateOfAdmission(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetDateOfAdmission(v)
	})
}

// UpdateDateOfAdmission sets the "date_of_admission" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateDateOfAdmission() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateDateOfAdmission()
	})
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (u *AdmissionRecordUpsertBulk) ClearDateOfAdmission() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearDateOfAdmission()
	})
}

// SetStudentName sets the "student_name" field.
func (u *AdmissionRecordUpsertBulk) SetStudentName(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateStudentName() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStudentName()
	})
}

// ClearStudentName clears the value of the "student_name" field.
func (u *AdmissionRecordUpsertBulk) ClearStudentName() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStudentName()
	})
}

// SetExamRoll sets the "exam_roll" field.
func (u *AdmissionRecordUpsertBulk) SetExamRoll(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetExamRoll(v)
	})
}

// UpdateExamRoll sets the "exam_roll" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateExamRoll() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateExamRoll()
	})
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (u *AdmissionRecordUpsertBulk) ClearExamRoll() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearExamRoll()
	})
}

// SetStipend sets the "stipend" field.
func (u *AdmissionRecordUpsertBulk) SetStipend(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetStipend(v)
	})
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateStipend() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateStipend()
	})
}

// ClearStipend clears the value of the "stipend" field.
func (u *AdmissionRecordUpsertBulk) ClearStipend() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearStipend()
	})
}

// SetRegistrationNo sets the "registration_no" field.
func (u *AdmissionRecordUpsertBulk) SetRegistrationNo(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetRegistrationNo(v)
	})
}

// UpdateRegistrationNo sets the "registration_no" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateRegistrationNo() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateRegistrationNo()
	})
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (u *AdmissionRecordUpsertBulk) ClearRegistrationNo() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearRegistrationNo()
	})
}

// SetCouncil sets the "council" field.
func (u *AdmissionRecordUpsertBulk) SetCouncil(v string) *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.SetCouncil(v)
	})
}

// UpdateCouncil sets the "council" field to the value that was provided on create.
func (u *AdmissionRecordUpsertBulk) UpdateCouncil() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.UpdateCouncil()
	})
}

// ClearCouncil clears the value of the "council" field.
func (u *AdmissionRecordUpsertBulk) ClearCouncil() *AdmissionRecordUpsertBulk {
	return u.Update(func(s *AdmissionRecordUpsert) {
		s.ClearCouncil()
	})
}

// Exec executes the query.
func (u *AdmissionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdmissionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdmissionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdmissionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
