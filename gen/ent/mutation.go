// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdmissionRecord    = "AdmissionRecord"
	TypeProcessedFile      = "ProcessedFile"
	TypeVerificationRecord = "VerificationRecord"
)

// AdmissionRecordMutation represents an operation that mutates the AdmissionRecord nodes in the graph.
type AdmissionRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	year                   *int
	addyear                *int
	round                  *int
	addround               *int
	rank                   *int
	addrank                *int
	quota                  *string
	state                  *string
	college_name           *string
	course                 *string
	category               *string
	sub_category           *string
	gender                 *string
	physically_handicapped *string
	marks_obtained         *int
	addmarks_obtained      *int
	max_marks              *int
	addmax_marks           *int
	status                 *string
	date_of_admission      *string
	student_name           *string
	exam_roll              *string
	stipend                *string
	registration_no        *string
	council                *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	verifications          map[uuid.UUID]struct{}
	removedverifications   map[uuid.UUID]struct{}
	clearedverifications   bool
	done                   bool
	oldValue               func(context.Context) (*AdmissionRecord, error)
	predicates             []predicate.AdmissionRecord
}

var _ ent.Mutation = (*AdmissionRecordMutation)(nil)

// admissionrecordOption allows management of the mutation configuration using functional options.
type admissionrecordOption func(*AdmissionRecordMutation)

// newAdmissionRecordMutation creates new mutation for the AdmissionRecord entity.
func newAdmissionRecordMutation(c config, op Op, opts ...admissionrecordOption) *AdmissionRecordMutation {
	m := &AdmissionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAdmissionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdmissionRecordID sets the ID field of the mutation.
func withAdmissionRecordID(id uuid.UUID) admissionrecordOption {
	return func(m *AdmissionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AdmissionRecord
		)
		m.oldValue = func(ctx context.Context) (*AdmissionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdmissionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdmissionRecord sets the old AdmissionRecord of the mutation.
func withAdmissionRecord(node *AdmissionRecord) admissionrecordOption {
	return func(m *AdmissionRecordMutation) {
		m.oldValue = func(context.Context) (*AdmissionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdmissionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdmissionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdmissionRecord entities.
func (m *AdmissionRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdmissionRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdmissionRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdmissionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetYear sets the "year" field.
func (m *AdmissionRecordMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *AdmissionRecordMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *AdmissionRecordMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *AdmissionRecordMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *AdmissionRecordMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetRound sets the "round" field.
func (m *AdmissionRecordMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *AdmissionRecordMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *AdmissionRecordMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *AdmissionRecordMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *AdmissionRecordMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetRank sets the "rank" field.
func (m *AdmissionRecordMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *AdmissionRecordMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *AdmissionRecordMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *AdmissionRecordMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *AdmissionRecordMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetQuota sets the "quota" field.
func (m *AdmissionRecordMutation) SetQuota(s string) {
	m.quota = &s
}

// Quota returns the value of the "quota" field in the mutation.
func (m *AdmissionRecordMutation) Quota() (r string, exists bool) {
	v := m.quota
	if v == nil {
		return
	}
	return *v, true
}

// OldQuota returns the old "quota" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldQuota(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuota: %w", err)
	}
	return oldValue.Quota, nil
}

// ClearQuota clears the value of the "quota" field.
func (m *AdmissionRecordMutation) ClearQuota() {
	m.quota = nil
	m.clearedFields[admissionrecord.FieldQuota] = struct{}{}
}

// QuotaCleared returns if the "quota" field was cleared in this mutation.
func (m *AdmissionRecordMutation) QuotaCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldQuota]
	return ok
}

// ResetQuota resets all changes to the "quota" field.
func (m *AdmissionRecordMutation) ResetQuota() {
	m.quota = nil
	delete(m.clearedFields, admissionrecord.FieldQuota)
}

// SetState sets the "state" field.
func (m *AdmissionRecordMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *AdmissionRecordMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *AdmissionRecordMutation) ClearState() {
	m.state = nil
	m.clearedFields[admissionrecord.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *AdmissionRecordMutation) StateCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *AdmissionRecordMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, admissionrecord.FieldState)
}

// SetCollegeName sets the "college_name" field.
func (m *AdmissionRecordMutation) SetCollegeName(s string) {
	m.college_name = &s
}

// CollegeName returns the value of the "college_name" field in the mutation.
func (m *AdmissionRecordMutation) CollegeName() (r string, exists bool) {
	v := m.college_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCollegeName returns the old "college_name" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldCollegeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollegeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollegeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollegeName: %w", err)
	}
	return oldValue.CollegeName, nil
}

// ClearCollegeName clears the value of the "college_name" field.
func (m *AdmissionRecordMutation) ClearCollegeName() {
	m.college_name = nil
	m.clearedFields[admissionrecord.FieldCollegeName] = struct{}{}
}

// CollegeNameCleared returns if the "college_name" field was cleared in this mutation.
func (m *AdmissionRecordMutation) CollegeNameCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldCollegeName]
	return ok
}

// ResetCollegeName resets all changes to the "college_name" field.
func (m *AdmissionRecordMutation) ResetCollegeName() {
	m.college_name = nil
	delete(m.clearedFields, admissionrecord.FieldCollegeName)
}

// SetCourse sets the "course" field.
func (m *AdmissionRecordMutation) SetCourse(s string) {
	m.course = &s
}

// Course returns the value of the "course" field in the mutation.
func (m *AdmissionRecordMutation) Course() (r string, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourse returns the old "course" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldCourse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourse: %w", err)
	}
	return oldValue.Course, nil
}

// ClearCourse clears the value of the "course" field.
func (m *AdmissionRecordMutation) ClearCourse() {
	m.course = nil
	m.clearedFields[admissionrecord.FieldCourse] = struct{}{}
}

// CourseCleared returns if the "course" field was cleared in this mutation.
func (m *AdmissionRecordMutation) CourseCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldCourse]
	return ok
}

// ResetCourse resets all changes to the "course" field.
func (m *AdmissionRecordMutation) ResetCourse() {
	m.course = nil
	delete(m.clearedFields, admissionrecord.FieldCourse)
}

// SetCategory sets the "category" field.
func (m *AdmissionRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AdmissionRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AdmissionRecordMutation) ResetCategory() {
	m.category = nil
}

// SetSubCategory sets the "sub_category" field.
func (m *AdmissionRecordMutation) SetSubCategory(s string) {
	m.sub_category = &s
}

// SubCategory returns the value of the "sub_category" field in the mutation.
func (m *AdmissionRecordMutation) SubCategory() (r string, exists bool) {
	v := m.sub_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSubCategory returns the old "sub_category" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldSubCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubCategory: %w", err)
	}
	return oldValue.SubCategory, nil
}

// ClearSubCategory clears the value of the "sub_category" field.
func (m *AdmissionRecordMutation) ClearSubCategory() {
	m.sub_category = nil
	m.clearedFields[admissionrecord.FieldSubCategory] = struct{}{}
}

// SubCategoryCleared returns if the "sub_category" field was cleared in this mutation.
func (m *AdmissionRecordMutation) SubCategoryCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldSubCategory]
	return ok
}

// ResetSubCategory resets all changes to the "sub_category" field.
func (m *AdmissionRecordMutation) ResetSubCategory() {
	m.sub_category = nil
	delete(m.clearedFields, admissionrecord.FieldSubCategory)
}

// SetGender sets the "gender" field.
func (m *AdmissionRecordMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *AdmissionRecordMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *AdmissionRecordMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[admissionrecord.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *AdmissionRecordMutation) GenderCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *AdmissionRecordMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, admissionrecord.FieldGender)
}

// SetPhysicallyHandicapped sets the "physically_handicapped" field.
func (m *AdmissionRecordMutation) SetPhysicallyHandicapped(s string) {
	m.physically_handicapped = &s
}

// PhysicallyHandicapped returns the value of the "physically_handicapped" field in the mutation.
func (m *AdmissionRecordMutation) PhysicallyHandicapped() (r string, exists bool) {
	v := m.physically_handicapped
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicallyHandicapped returns the old "physically_handicapped" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldPhysicallyHandicapped(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicallyHandicapped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicallyHandicapped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicallyHandicapped: %w", err)
	}
	return oldValue.PhysicallyHandicapped, nil
}

// ClearPhysicallyHandicapped clears the value of the "physically_handicapped" field.
func (m *AdmissionRecordMutation) ClearPhysicallyHandicapped() {
	m.physically_handicapped = nil
	m.clearedFields[admissionrecord.FieldPhysicallyHandicapped] = struct{}{}
}

// PhysicallyHandicappedCleared returns if the "physically_handicapped" field was cleared in this mutation.
func (m *AdmissionRecordMutation) PhysicallyHandicappedCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldPhysicallyHandicapped]
	return ok
}

// ResetPhysicallyHandicapped resets all changes to the "physically_handicapped" field.
func (m *AdmissionRecordMutation) ResetPhysicallyHandicapped() {
	m.physically_handicapped = nil
	delete(m.clearedFields, admissionrecord.FieldPhysicallyHandicapped)
}

// SetMarksObtained sets the "marks_obtained" field.
func (m *AdmissionRecordMutation) SetMarksObtained(i int) {
	m.marks_obtained = &i
	m.addmarks_obtained = nil
}

// MarksObtained returns the value of the "marks_obtained" field in the mutation.
func (m *AdmissionRecordMutation) MarksObtained() (r int, exists bool) {
	v := m.marks_obtained
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksObtained returns the old "marks_obtained" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldMarksObtained(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksObtained is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksObtained requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksObtained: %w", err)
	}
	return oldValue.MarksObtained, nil
}

// AddMarksObtained adds i to the "marks_obtained" field.
func (m *AdmissionRecordMutation) AddMarksObtained(i int) {
	if m.addmarks_obtained != nil {
		*m.addmarks_obtained += i
	} else {
		m.addmarks_obtained = &i
	}
}

// AddedMarksObtained returns the value that was added to the "marks_obtained" field in this mutation.
func (m *AdmissionRecordMutation) AddedMarksObtained() (r int, exists bool) {
	v := m.addmarks_obtained
	if v == nil {
		return
	}
	return *v, true
}

// ClearMarksObtained clears the value of the "marks_obtained" field.
func (m *AdmissionRecordMutation) ClearMarksObtained() {
	m.marks_obtained = nil
	m.addmarks_obtained = nil
	m.clearedFields[admissionrecord.FieldMarksObtained] = struct{}{}
}

// MarksObtainedCleared returns if the "marks_obtained" field was cleared in this mutation.
func (m *AdmissionRecordMutation) MarksObtainedCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldMarksObtained]
	return ok
}

// ResetMarksObtained resets all changes to the "marks_obtained" field.
func (m *AdmissionRecordMutation) ResetMarksObtained() {
	m.marks_obtained = nil
	m.addmarks_obtained = nil
	delete(m.clearedFields, admissionrecord.FieldMarksObtained)
}

// SetMaxMarks sets the "max_marks" field.
func (m *AdmissionRecordMutation) SetMaxMarks(i int) {
	m.max_marks = &i
	m.addmax_marks = nil
}

// MaxMarks returns the value of the "max_marks" field in the mutation.
func (m *AdmissionRecordMutation) MaxMarks() (r int, exists bool) {
	v := m.max_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxMarks returns the old "max_marks" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldMaxMarks(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxMarks: %w", err)
	}
	return oldValue.MaxMarks, nil
}

// AddMaxMarks adds i to the "max_marks" field.
func (m *AdmissionRecordMutation) AddMaxMarks(i int) {
	if m.addmax_marks != nil {
		*m.addmax_marks += i
	} else {
		m.addmax_marks = &i
	}
}

// AddedMaxMarks returns the value that was added to the "max_marks" field in this mutation.
func (m *AdmissionRecordMutation) AddedMaxMarks() (r int, exists bool) {
	v := m.addmax_marks
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxMarks clears the value of the "max_marks" field.
func (m *AdmissionRecordMutation) ClearMaxMarks() {
	m.max_marks = nil
	m.addmax_marks = nil
	m.clearedFields[admissionrecord.FieldMaxMarks] = struct{}{}
}

// MaxMarksCleared returns if the "max_marks" field was cleared in this mutation.
func (m *AdmissionRecordMutation) MaxMarksCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldMaxMarks]
	return ok
}

// ResetMaxMarks resets all changes to the "max_marks" field.
func (m *AdmissionRecordMutation) ResetMaxMarks() {
	m.max_marks = nil
	m.addmax_marks = nil
	delete(m.clearedFields, admissionrecord.FieldMaxMarks)
}

// SetStatus sets the "status" field.
func (m *AdmissionRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AdmissionRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *AdmissionRecordMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[admissionrecord.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *AdmissionRecordMutation) StatusCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *AdmissionRecordMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, admissionrecord.FieldStatus)
}

// SetDateOfAdmission sets the "date_of_admission" field.
func (m *AdmissionRecordMutation) SetDateOfAdmission(s string) {
	m.date_of_admission = &s
}

// DateOfAdmission returns the value of the "date_of_admission" field in the mutation.
func (m *AdmissionRecordMutation) DateOfAdmission() (r string, exists bool) {
	v := m.date_of_admission
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfAdmission returns the old "date_of_admission" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldDateOfAdmission(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfAdmission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfAdmission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfAdmission: %w", err)
	}
	return oldValue.DateOfAdmission, nil
}

// ClearDateOfAdmission clears the value of the "date_of_admission" field.
func (m *AdmissionRecordMutation) ClearDateOfAdmission() {
	m.date_of_admission = nil
	m.clearedFields[admissionrecord.FieldDateOfAdmission] = struct{}{}
}

// DateOfAdmissionCleared returns if the "date_of_admission" field was cleared in this mutation.
func (m *AdmissionRecordMutation) DateOfAdmissionCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldDateOfAdmission]
	return ok
}

// ResetDateOfAdmission resets all changes to the "date_of_admission" field.
func (m *AdmissionRecordMutation) ResetDateOfAdmission() {
	m.date_of_admission = nil
	delete(m.clearedFields, admissionrecord.FieldDateOfAdmission)
}

// SetStudentName sets the "student_name" field.
func (m *AdmissionRecordMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *AdmissionRecordMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldStudentName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ClearStudentName clears the value of the "student_name" field.
func (m *AdmissionRecordMutation) ClearStudentName() {
	m.student_name = nil
	m.clearedFields[admissionrecord.FieldStudentName] = struct{}{}
}

// StudentNameCleared returns if the "student_name" field was cleared in this mutation.
func (m *AdmissionRecordMutation) StudentNameCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldStudentName]
	return ok
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *AdmissionRecordMutation) ResetStudentName() {
	m.student_name = nil
	delete(m.clearedFields, admissionrecord.FieldStudentName)
}

// SetExamRoll sets the "exam_roll" field.
func (m *AdmissionRecordMutation) SetExamRoll(s string) {
	m.exam_roll = &s
}

// ExamRoll returns the value of the "exam_roll" field in the mutation.
func (m *AdmissionRecordMutation) ExamRoll() (r string, exists bool) {
	v := m.exam_roll
	if v == nil {
		return
	}
	return *v, true
}

// OldExamRoll returns the old "exam_roll" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldExamRoll(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamRoll is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamRoll requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamRoll: %w", err)
	}
	return oldValue.ExamRoll, nil
}

// ClearExamRoll clears the value of the "exam_roll" field.
func (m *AdmissionRecordMutation) ClearExamRoll() {
	m.exam_roll = nil
	m.clearedFields[admissionrecord.FieldExamRoll] = struct{}{}
}

// ExamRollCleared returns if the "exam_roll" field was cleared in this mutation.
func (m *AdmissionRecordMutation) ExamRollCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldExamRoll]
	return ok
}

// ResetExamRoll resets all changes to the "exam_roll" field.
func (m *AdmissionRecordMutation) ResetExamRoll() {
	m.exam_roll = nil
	delete(m.clearedFields, admissionrecord.FieldExamRoll)
}

// SetStipend sets the "stipend" field.
func (m *AdmissionRecordMutation) SetStipend(s string) {
	m.stipend = &s
}

// Stipend returns the value of the "stipend" field in the mutation.
func (m *AdmissionRecordMutation) Stipend() (r string, exists bool) {
	v := m.stipend
	if v == nil {
		return
	}
	return *v, true
}

// OldStipend returns the old "stipend" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldStipend(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStipend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStipend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStipend: %w", err)
	}
	return oldValue.Stipend, nil
}

// ClearStipend clears the value of the "stipend" field.
func (m *AdmissionRecordMutation) ClearStipend() {
	m.stipend = nil
	m.clearedFields[admissionrecord.FieldStipend] = struct{}{}
}

// StipendCleared returns if the "stipend" field was cleared in this mutation.
func (m *AdmissionRecordMutation) StipendCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldStipend]
	return ok
}

// ResetStipend resets all changes to the "stipend" field.
func (m *AdmissionRecordMutation) ResetStipend() {
	m.stipend = nil
	delete(m.clearedFields, admissionrecord.FieldStipend)
}

// SetRegistrationNo sets the "registration_no" field.
func (m *AdmissionRecordMutation) SetRegistrationNo(s string) {
	m.registration_no = &s
}

// RegistrationNo returns the value of the "registration_no" field in the mutation.
func (m *AdmissionRecordMutation) RegistrationNo() (r string, exists bool) {
	v := m.registration_no
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationNo returns the old "registration_no" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldRegistrationNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationNo: %w", err)
	}
	return oldValue.RegistrationNo, nil
}

// ClearRegistrationNo clears the value of the "registration_no" field.
func (m *AdmissionRecordMutation) ClearRegistrationNo() {
	m.registration_no = nil
	m.clearedFields[admissionrecord.FieldRegistrationNo] = struct{}{}
}

// RegistrationNoCleared returns if the "registration_no" field was cleared in this mutation.
func (m *AdmissionRecordMutation) RegistrationNoCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldRegistrationNo]
	return ok
}

// ResetRegistrationNo resets all changes to the "registration_no" field.
func (m *AdmissionRecordMutation) ResetRegistrationNo() {
	m.registration_no = nil
	delete(m.clearedFields, admissionrecord.FieldRegistrationNo)
}

// SetCouncil sets the "council" field.
func (m *AdmissionRecordMutation) SetCouncil(s string) {
	m.council = &s
}

// Council returns the value of the "council" field in the mutation.
func (m *AdmissionRecordMutation) Council() (r string, exists bool) {
	v := m.council
	if v == nil {
		return
	}
	return *v, true
}

// OldCouncil returns the old "council" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldCouncil(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCouncil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCouncil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCouncil: %w", err)
	}
	return oldValue.Council, nil
}

// ClearCouncil clears the value of the "council" field.
func (m *AdmissionRecordMutation) ClearCouncil() {
	m.council = nil
	m.clearedFields[admissionrecord.FieldCouncil] = struct{}{}
}

// CouncilCleared returns if the "council" field was cleared in this mutation.
func (m *AdmissionRecordMutation) CouncilCleared() bool {
	_, ok := m.clearedFields[admissionrecord.FieldCouncil]
	return ok
}

// ResetCouncil resets all changes to the "council" field.
func (m *AdmissionRecordMutation) ResetCouncil() {
	m.council = nil
	delete(m.clearedFields, admissionrecord.FieldCouncil)
}

// SetCreatedAt sets the "created_at" field.
func (m *AdmissionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdmissionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdmissionRecord entity.
// If the AdmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdmissionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by ids.
func (m *AdmissionRecordMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationRecord entity.
func (m *AdmissionRecordMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationRecord entity was cleared.
func (m *AdmissionRecordMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationRecord entity by IDs.
func (m *AdmissionRecordMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationRecord entity.
func (m *AdmissionRecordMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *AdmissionRecordMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *AdmissionRecordMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the AdmissionRecordMutation builder.
func (m *AdmissionRecordMutation) Where(ps ...predicate.AdmissionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdmissionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdmissionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdmissionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdmissionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdmissionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdmissionRecord).
func (m *AdmissionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdmissionRecordMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.year != nil {
		fields = append(fields, admissionrecord.FieldYear)
	}
	if m.round != nil {
		fields = append(fields, admissionrecord.FieldRound)
	}
	if m.rank != nil {
		fields = append(fields, admissionrecord.FieldRank)
	}
	if m.quota != nil {
		fields = append(fields, admissionrecord.FieldQuota)
	}
	if m.state != nil {
		fields = append(fields, admissionrecord.FieldState)
	}
	if m.college_name != nil {
		fields = append(fields, admissionrecord.FieldCollegeName)
	}
	if m.course != nil {
		fields = append(fields, admissionrecord.FieldCourse)
	}
	if m.category != nil {
		fields = append(fields, admissionrecord.FieldCategory)
	}
	if m.sub_category != nil {
		fields = append(fields, admissionrecord.FieldSubCategory)
	}
	if m.gender != nil {
		fields = append(fields, admissionrecord.FieldGender)
	}
	if m.physically_handicapped != nil {
		fields = append(fields, admissionrecord.FieldPhysicallyHandicapped)
	}
	if m.marks_obtained != nil {
		fields = append(fields, admissionrecord.FieldMarksObtained)
	}
	if m.max_marks != nil {
		fields = append(fields, admissionrecord.FieldMaxMarks)
	}
	if m.status != nil {
		fields = append(fields, admissionrecord.FieldStatus)
	}
	if m.date_of_admission != nil {
		fields = append(fields, admissionrecord.FieldDateOfAdmission)
	}
	if m.student_name != nil {
		fields = append(fields, admissionrecord.FieldStudentName)
	}
	if m.exam_roll != nil {
		fields = append(fields, admissionrecord.FieldExamRoll)
	}
	if m.stipend != nil {
		fields = append(fields, admissionrecord.FieldStipend)
	}
	if m.registration_no != nil {
		fields = append(fields, admissionrecord.FieldRegistrationNo)
	}
	if m.council != nil {
		fields = append(fields, admissionrecord.FieldCouncil)
	}
	if m.created_at != nil {
		fields = append(fields, admissionrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdmissionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admissionrecord.FieldYear:
		return m.Year()
	case admissionrecord.FieldRound:
		return m.Round()
	case admissionrecord.FieldRank:
		return m.Rank()
	case admissionrecord.FieldQuota:
		return m.Quota()
	case admissionrecord.FieldState:
		return m.State()
	case admissionrecord.FieldCollegeName:
		return m.CollegeName()
	case admissionrecord.FieldCourse:
		return m.Course()
	case admissionrecord.FieldCategory:
		return m.Category()
	case admissionrecord.FieldSubCategory:
		return m.SubCategory()
	case admissionrecord.FieldGender:
		return m.Gender()
	case admissionrecord.FieldPhysicallyHandicapped:
		return m.PhysicallyHandicapped()
	case admissionrecord.FieldMarksObtained:
		return m.MarksObtained()
	case admissionrecord.FieldMaxMarks:
		return m.MaxMarks()
	case admissionrecord.FieldStatus:
		return m.Status()
	case admissionrecord.FieldDateOfAdmission:
		return m.DateOfAdmission()
	case admissionrecord.FieldStudentName:
		return m.StudentName()
	case admissionrecord.FieldExamRoll:
		return m.ExamRoll()
	case admissionrecord.FieldStipend:
		return m.Stipend()
	case admissionrecord.FieldRegistrationNo:
		return m.RegistrationNo()
	case admissionrecord.FieldCouncil:
		return m.Council()
	case admissionrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdmissionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admissionrecord.FieldYear:
		return m.OldYear(ctx)
	case admissionrecord.FieldRound:
		return m.OldRound(ctx)
	case admissionrecord.FieldRank:
		return m.OldRank(ctx)
	case admissionrecord.FieldQuota:
		return m.OldQuota(ctx)
	case admissionrecord.FieldState:
		return m.OldState(ctx)
	case admissionrecord.FieldCollegeName:
		return m.OldCollegeName(ctx)
	case admissionrecord.FieldCourse:
		return m.OldCourse(ctx)
	case admissionrecord.FieldCategory:
		return m.OldCategory(ctx)
	case admissionrecord.FieldSubCategory:
		return m.OldSubCategory(ctx)
	case admissionrecord.FieldGender:
		return m.OldGender(ctx)
	case admissionrecord.FieldPhysicallyHandicapped:
		return m.OldPhysicallyHandicapped(ctx)
	case admissionrecord.FieldMarksObtained:
		return m.OldMarksObtained(ctx)
	case admissionrecord.FieldMaxMarks:
		return m.OldMaxMarks(ctx)
	case admissionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case admissionrecord.FieldDateOfAdmission:
		return m.OldDateOfAdmission(ctx)
	case admissionrecord.FieldStudentName:
		return m.OldStudentName(ctx)
	case admissionrecord.FieldExamRoll:
		return m.OldExamRoll(ctx)
	case admissionrecord.FieldStipend:
		return m.OldStipend(ctx)
	case admissionrecord.FieldRegistrationNo:
		return m.OldRegistrationNo(ctx)
	case admissionrecord.FieldCouncil:
		return m.OldCouncil(ctx)
	case admissionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdmissionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdmissionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admissionrecord.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case admissionrecord.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case admissionrecord.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case admissionrecord.FieldQuota:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuota(v)
		return nil
	case admissionrecord.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case admissionrecord.FieldCollegeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollegeName(v)
		return nil
	case admissionrecord.FieldCourse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourse(v)
		return nil
	case admissionrecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case admissionrecord.FieldSubCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubCategory(v)
		return nil
	case admissionrecord.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case admissionrecord.FieldPhysicallyHandicapped:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicallyHandicapped(v)
		return nil
	case admissionrecord.FieldMarksObtained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksObtained(v)
		return nil
	case admissionrecord.FieldMaxMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxMarks(v)
		return nil
	case admissionrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case admissionrecord.FieldDateOfAdmission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfAdmission(v)
		return nil
	case admissionrecord.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case admissionrecord.FieldExamRoll:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamRoll(v)
		return nil
	case admissionrecord.FieldStipend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStipend(v)
		return nil
	case admissionrecord.FieldRegistrationNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationNo(v)
		return nil
	case admissionrecord.FieldCouncil:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCouncil(v)
		return nil
	case admissionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdmissionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdmissionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, admissionrecord.FieldYear)
	}
	if m.addround != nil {
		fields = append(fields, admissionrecord.FieldRound)
	}
	if m.addrank != nil {
		fields = append(fields, admissionrecord.FieldRank)
	}
	if m.addmarks_obtained != nil {
		fields = append(fields, admissionrecord.FieldMarksObtained)
	}
	if m.addmax_marks != nil {
		fields = append(fields, admissionrecord.FieldMaxMarks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdmissionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case admissionrecord.FieldYear:
		return m.AddedYear()
	case admissionrecord.FieldRound:
		return m.AddedRound()
	case admissionrecord.FieldRank:
		return m.AddedRank()
	case admissionrecord.FieldMarksObtained:
		return m.AddedMarksObtained()
	case admissionrecord.FieldMaxMarks:
		return m.AddedMaxMarks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdmissionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case admissionrecord.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case admissionrecord.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	case admissionrecord.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case admissionrecord.FieldMarksObtained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksObtained(v)
		return nil
	case admissionrecord.FieldMaxMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxMarks(v)
		return nil
	}
	return fmt.Errorf("unknown AdmissionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdmissionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(admissionrecord.FieldQuota) {
		fields = append(fields, admissionrecord.FieldQuota)
	}
	if m.FieldCleared(admissionrecord.FieldState) {
		fields = append(fields, admissionrecord.FieldState)
	}
	if m.FieldCleared(admissionrecord.FieldCollegeName) {
		fields = append(fields, admissionrecord.FieldCollegeName)
	}
	if m.FieldCleared(admissionrecord.FieldCourse) {
		fields = append(fields, admissionrecord.FieldCourse)
	}
	if m.FieldCleared(admissionrecord.FieldSubCategory) {
		fields = append(fields, admissionrecord.FieldSubCategory)
	}
	if m.FieldCleared(admissionrecord.FieldGender) {
		fields = append(fields, admissionrecord.FieldGender)
	}
	if m.FieldCleared(admissionrecord.FieldPhysicallyHandicapped) {
		fields = append(fields, admissionrecord.FieldPhysicallyHandicapped)
	}
	if m.FieldCleared(admissionrecord.FieldMarksObtained) {
		fields = append(fields, admissionrecord.FieldMarksObtained)
	}
	if m.FieldCleared(admissionrecord.FieldMaxMarks) {
		fields = append(fields, admissionrecord.FieldMaxMarks)
	}
	if m.FieldCleared(admissionrecord.FieldStatus) {
		fields = append(fields, admissionrecord.FieldStatus)
	}
	if m.FieldCleared(admissionrecord.FieldDateOfAdmission) {
		fields = append(fields, admissionrecord.FieldDateOfAdmission)
	}
	if m.FieldCleared(admissionrecord.FieldStudentName) {
		fields = append(fields, admissionrecord.FieldStudentName)
	}
	if m.FieldCleared(admissionrecord.FieldExamRoll) {
		fields = append(fields, admissionrecord.FieldExamRoll)
	}
	if m.FieldCleared(admissionrecord.FieldStipend) {
		fields = append(fields, admissionrecord.FieldStipend)
	}
	if m.FieldCleared(admissionrecord.FieldRegistrationNo) {
		fields = append(fields, admissionrecord.FieldRegistrationNo)
	}
	if m.FieldCleared(admissionrecord.FieldCouncil) {
		fields = append(fields, admissionrecord.FieldCouncil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdmissionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdmissionRecordMutation) ClearField(name string) error {
	switch name {
	case admissionrecord.FieldQuota:
		m.ClearQuota()
		return nil
	case admissionrecord.FieldState:
		m.ClearState()
		return nil
	case admissionrecord.FieldCollegeName:
		m.ClearCollegeName()
		return nil
	case admissionrecord.FieldCourse:
		m.ClearCourse()
		return nil
	case admissionrecord.FieldSubCategory:
		m.ClearSubCategory()
		return nil
	case admissionrecord.FieldGender:
		m.ClearGender()
		return nil
	case admissionrecord.FieldPhysicallyHandicapped:
		m.ClearPhysicallyHandicapped()
		return nil
	case admissionrecord.FieldMarksObtained:
		m.ClearMarksObtained()
		return nil
	case admissionrecord.FieldMaxMarks:
		m.ClearMaxMarks()
		return nil
	case admissionrecord.FieldStatus:
		m.ClearStatus()
		return nil
	case admissionrecord.FieldDateOfAdmission:
		m.ClearDateOfAdmission()
		return nil
	case admissionrecord.FieldStudentName:
		m.ClearStudentName()
		return nil
	case admissionrecord.FieldExamRoll:
		m.ClearExamRoll()
		return nil
	case admissionrecord.FieldStipend:
		m.ClearStipend()
		return nil
	case admissionrecord.FieldRegistrationNo:
		m.ClearRegistrationNo()
		return nil
	case admissionrecord.FieldCouncil:
		m.ClearCouncil()
		return nil
	}
	return fmt.Errorf("unknown AdmissionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdmissionRecordMutation) ResetField(name string) error {
	switch name {
	case admissionrecord.FieldYear:
		m.ResetYear()
		return nil
	case admissionrecord.FieldRound:
		m.ResetRound()
		return nil
	case admissionrecord.FieldRank:
		m.ResetRank()
		return nil
	case admissionrecord.FieldQuota:
		m.ResetQuota()
		return nil
	case admissionrecord.FieldState:
		m.ResetState()
		return nil
	case admissionrecord.FieldCollegeName:
		m.ResetCollegeName()
		return nil
	case admissionrecord.FieldCourse:
		m.ResetCourse()
		return nil
	case admissionrecord.FieldCategory:
		m.ResetCategory()
		return nil
	case admissionrecord.FieldSubCategory:
		m.ResetSubCategory()
		return nil
	case admissionrecord.FieldGender:
		m.ResetGender()
		return nil
	case admissionrecord.FieldPhysicallyHandicapped:
		m.ResetPhysicallyHandicapped()
		return nil
	case admissionrecord.FieldMarksObtained:
		m.ResetMarksObtained()
		return nil
	case admissionrecord.FieldMaxMarks:
		m.ResetMaxMarks()
		return nil
	case admissionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case admissionrecord.FieldDateOfAdmission:
		m.ResetDateOfAdmission()
		return nil
	case admissionrecord.FieldStudentName:
		m.ResetStudentName()
		return nil
	case admissionrecord.FieldExamRoll:
		m.ResetExamRoll()
		return nil
	case admissionrecord.FieldStipend:
		m.ResetStipend()
		return nil
	case admissionrecord.FieldRegistrationNo:
		m.ResetRegistrationNo()
		return nil
	case admissionrecord.FieldCouncil:
		m.ResetCouncil()
		return nil
	case admissionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdmissionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdmissionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verifications != nil {
		edges = append(edges, admissionrecord.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdmissionRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case admissionrecord.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdmissionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedverifications != nil {
		edges = append(edges, admissionrecord.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdmissionRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case admissionrecord.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdmissionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverifications {
		edges = append(edges, admissionrecord.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdmissionRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case admissionrecord.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdmissionRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AdmissionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdmissionRecordMutation) ResetEdge(name string) error {
	switch name {
	case admissionrecord.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown AdmissionRecord edge %s", name)
}

// ProcessedFileMutation represents an operation that mutates the ProcessedFile nodes in the graph.
type ProcessedFileMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	filename             *string
	layout               *string
	records_count        *int
	addrecords_count     *int
	sample_size          *int
	addsample_size       *int
	review_status        *string
	processed_at         *time.Time
	clearedFields        map[string]struct{}
	verifications        map[uuid.UUID]struct{}
	removedverifications map[uuid.UUID]struct{}
	clearedverifications bool
	done                 bool
	oldValue             func(context.Context) (*ProcessedFile, error)
	predicates           []predicate.ProcessedFile
}

var _ ent.Mutation = (*ProcessedFileMutation)(nil)

// processedfileOption allows management of the mutation configuration using functional options.
type processedfileOption func(*ProcessedFileMutation)

// newProcessedFileMutation creates new mutation for the ProcessedFile entity.
func newProcessedFileMutation(c config, op Op, opts ...processedfileOption) *ProcessedFileMutation {
	m := &ProcessedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedFileID sets the ID field of the mutation.
func withProcessedFileID(id uuid.UUID) processedfileOption {
	return func(m *ProcessedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedFile
		)
		m.oldValue = func(ctx context.Context) (*ProcessedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedFile sets the old ProcessedFile of the mutation.
func withProcessedFile(node *ProcessedFile) processedfileOption {
	return func(m *ProcessedFileMutation) {
		m.oldValue = func(context.Context) (*ProcessedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedFile entities.
func (m *ProcessedFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ProcessedFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ProcessedFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ProcessedFileMutation) ResetFilename() {
	m.filename = nil
}

// SetLayout sets the "layout" field.
func (m *ProcessedFileMutation) SetLayout(s string) {
	m.layout = &s
}

// Layout returns the value of the "layout" field in the mutation.
func (m *ProcessedFileMutation) Layout() (r string, exists bool) {
	v := m.layout
	if v == nil {
		return
	}
	return *v, true
}

// OldLayout returns the old "layout" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldLayout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayout: %w", err)
	}
	return oldValue.Layout, nil
}

// ResetLayout resets all changes to the "layout" field.
func (m *ProcessedFileMutation) ResetLayout() {
	m.layout = nil
}

// SetRecordsCount sets the "records_count" field.
func (m *ProcessedFileMutation) SetRecordsCount(i int) {
	m.records_count = &i
	m.addrecords_count = nil
}

// RecordsCount returns the value of the "records_count" field in the mutation.
func (m *ProcessedFileMutation) RecordsCount() (r int, exists bool) {
	v := m.records_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsCount returns the old "records_count" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldRecordsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsCount: %w", err)
	}
	return oldValue.RecordsCount, nil
}

// AddRecordsCount adds i to the "records_count" field.
func (m *ProcessedFileMutation) AddRecordsCount(i int) {
	if m.addrecords_count != nil {
		*m.addrecords_count += i
	} else {
		m.addrecords_count = &i
	}
}

// AddedRecordsCount returns the value that was added to the "records_count" field in this mutation.
func (m *ProcessedFileMutation) AddedRecordsCount() (r int, exists bool) {
	v := m.addrecords_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsCount resets all changes to the "records_count" field.
func (m *ProcessedFileMutation) ResetRecordsCount() {
	m.records_count = nil
	m.addrecords_count = nil
}

// SetSampleSize sets the "sample_size" field.
func (m *ProcessedFileMutation) SetSampleSize(i int) {
	m.sample_size = &i
	m.addsample_size = nil
}

// SampleSize returns the value of the "sample_size" field in the mutation.
func (m *ProcessedFileMutation) SampleSize() (r int, exists bool) {
	v := m.sample_size
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleSize returns the old "sample_size" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldSampleSize(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleSize: %w", err)
	}
	return oldValue.SampleSize, nil
}

// AddSampleSize adds i to the "sample_size" field.
func (m *ProcessedFileMutation) AddSampleSize(i int) {
	if m.addsample_size != nil {
		*m.addsample_size += i
	} else {
		m.addsample_size = &i
	}
}

// AddedSampleSize returns the value that was added to the "sample_size" field in this mutation.
func (m *ProcessedFileMutation) AddedSampleSize() (r int, exists bool) {
	v := m.addsample_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearSampleSize clears the value of the "sample_size" field.
func (m *ProcessedFileMutation) ClearSampleSize() {
	m.sample_size = nil
	m.addsample_size = nil
	m.clearedFields[processedfile.FieldSampleSize] = struct{}{}
}

// SampleSizeCleared returns if the "sample_size" field was cleared in this mutation.
func (m *ProcessedFileMutation) SampleSizeCleared() bool {
	_, ok := m.clearedFields[processedfile.FieldSampleSize]
	return ok
}

// ResetSampleSize resets all changes to the "sample_size" field.
func (m *ProcessedFileMutation) ResetSampleSize() {
	m.sample_size = nil
	m.addsample_size = nil
	delete(m.clearedFields, processedfile.FieldSampleSize)
}

// SetReviewStatus sets the "review_status" field.
func (m *ProcessedFileMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *ProcessedFileMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldReviewStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ClearReviewStatus clears the value of the "review_status" field.
func (m *ProcessedFileMutation) ClearReviewStatus() {
	m.review_status = nil
	m.clearedFields[processedfile.FieldReviewStatus] = struct{}{}
}

// ReviewStatusCleared returns if the "review_status" field was cleared in this mutation.
func (m *ProcessedFileMutation) ReviewStatusCleared() bool {
	_, ok := m.clearedFields[processedfile.FieldReviewStatus]
	return ok
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *ProcessedFileMutation) ResetReviewStatus() {
	m.review_status = nil
	delete(m.clearedFields, processedfile.FieldReviewStatus)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ProcessedFileMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ProcessedFileMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ProcessedFileMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by ids.
func (m *ProcessedFileMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationRecord entity.
func (m *ProcessedFileMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationRecord entity was cleared.
func (m *ProcessedFileMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationRecord entity by IDs.
func (m *ProcessedFileMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationRecord entity.
func (m *ProcessedFileMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *ProcessedFileMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *ProcessedFileMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the ProcessedFileMutation builder.
func (m *ProcessedFileMutation) Where(ps ...predicate.ProcessedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedFile).
func (m *ProcessedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.filename != nil {
		fields = append(fields, processedfile.FieldFilename)
	}
	if m.layout != nil {
		fields = append(fields, processedfile.FieldLayout)
	}
	if m.records_count != nil {
		fields = append(fields, processedfile.FieldRecordsCount)
	}
	if m.sample_size != nil {
		fields = append(fields, processedfile.FieldSampleSize)
	}
	if m.review_status != nil {
		fields = append(fields, processedfile.FieldReviewStatus)
	}
	if m.processed_at != nil {
		fields = append(fields, processedfile.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedfile.FieldFilename:
		return m.Filename()
	case processedfile.FieldLayout:
		return m.Layout()
	case processedfile.FieldRecordsCount:
		return m.RecordsCount()
	case processedfile.FieldSampleSize:
		return m.SampleSize()
	case processedfile.FieldReviewStatus:
		return m.ReviewStatus()
	case processedfile.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedfile.FieldFilename:
		return m.OldFilename(ctx)
	case processedfile.FieldLayout:
		return m.OldLayout(ctx)
	case processedfile.FieldRecordsCount:
		return m.OldRecordsCount(ctx)
	case processedfile.FieldSampleSize:
		return m.OldSampleSize(ctx)
	case processedfile.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case processedfile.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case processedfile.FieldLayout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayout(v)
		return nil
	case processedfile.FieldRecordsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsCount(v)
		return nil
	case processedfile.FieldSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleSize(v)
		return nil
	case processedfile.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case processedfile.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedFileMutation) AddedFields() []string {
	var fields []string
	if m.addrecords_count != nil {
		fields = append(fields, processedfile.FieldRecordsCount)
	}
	if m.addsample_size != nil {
		fields = append(fields, processedfile.FieldSampleSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processedfile.FieldRecordsCount:
		return m.AddedRecordsCount()
	case processedfile.FieldSampleSize:
		return m.AddedSampleSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processedfile.FieldRecordsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsCount(v)
		return nil
	case processedfile.FieldSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleSize(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processedfile.FieldSampleSize) {
		fields = append(fields, processedfile.FieldSampleSize)
	}
	if m.FieldCleared(processedfile.FieldReviewStatus) {
		fields = append(fields, processedfile.FieldReviewStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedFileMutation) ClearField(name string) error {
	switch name {
	case processedfile.FieldSampleSize:
		m.ClearSampleSize()
		return nil
	case processedfile.FieldReviewStatus:
		m.ClearReviewStatus()
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedFileMutation) ResetField(name string) error {
	switch name {
	case processedfile.FieldFilename:
		m.ResetFilename()
		return nil
	case processedfile.FieldLayout:
		m.ResetLayout()
		return nil
	case processedfile.FieldRecordsCount:
		m.ResetRecordsCount()
		return nil
	case processedfile.FieldSampleSize:
		m.ResetSampleSize()
		return nil
	case processedfile.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case processedfile.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verifications != nil {
		edges = append(edges, processedfile.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processedfile.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedverifications != nil {
		edges = append(edges, processedfile.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case processedfile.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverifications {
		edges = append(edges, processedfile.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case processedfile.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedFileMutation) ResetEdge(name string) error {
	switch name {
	case processedfile.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile edge %s", name)
}

// VerificationRecordMutation represents an operation that mutates the VerificationRecord nodes in the graph.
type VerificationRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	page_number    *int
	addpage_number *int
	review_status  *string
	reviewer       *string
	notes          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	record         *uuid.UUID
	clearedrecord  bool
	file           *uuid.UUID
	clearedfile    bool
	done           bool
	oldValue       func(context.Context) (*VerificationRecord, error)
	predicates     []predicate.VerificationRecord
}

var _ ent.Mutation = (*VerificationRecordMutation)(nil)

// verificationrecordOption allows management of the mutation configuration using functional options.
type verificationrecordOption func(*VerificationRecordMutation)

// newVerificationRecordMutation creates new mutation for the VerificationRecord entity.
func newVerificationRecordMutation(c config, op Op, opts ...verificationrecordOption) *VerificationRecordMutation {
	m := &VerificationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationRecordID sets the ID field of the mutation.
func withVerificationRecordID(id uuid.UUID) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationRecord
		)
		m.oldValue = func(ctx context.Context) (*VerificationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationRecord sets the old VerificationRecord of the mutation.
func withVerificationRecord(node *VerificationRecord) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		m.oldValue = func(context.Context) (*VerificationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationRecord entities.
func (m *VerificationRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *VerificationRecordMutation) SetRecordID(u uuid.UUID) {
	m.record = &u
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *VerificationRecordMutation) RecordID() (r uuid.UUID, exists bool) {
	v := m.record
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldRecordID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *VerificationRecordMutation) ResetRecordID() {
	m.record = nil
}

// SetFileID sets the "file_id" field.
func (m *VerificationRecordMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *VerificationRecordMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *VerificationRecordMutation) ResetFileID() {
	m.file = nil
}

// SetPageNumber sets the "page_number" field.
func (m *VerificationRecordMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *VerificationRecordMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *VerificationRecordMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *VerificationRecordMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *VerificationRecordMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *VerificationRecordMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *VerificationRecordMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *VerificationRecordMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewer sets the "reviewer" field.
func (m *VerificationRecordMutation) SetReviewer(s string) {
	m.reviewer = &s
}

// Reviewer returns the value of the "reviewer" field in the mutation.
func (m *VerificationRecordMutation) Reviewer() (r string, exists bool) {
	v := m.reviewer
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewer returns the old "reviewer" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldReviewer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewer: %w", err)
	}
	return oldValue.Reviewer, nil
}

// ClearReviewer clears the value of the "reviewer" field.
func (m *VerificationRecordMutation) ClearReviewer() {
	m.reviewer = nil
	m.clearedFields[verificationrecord.FieldReviewer] = struct{}{}
}

// ReviewerCleared returns if the "reviewer" field was cleared in this mutation.
func (m *VerificationRecordMutation) ReviewerCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldReviewer]
	return ok
}

// ResetReviewer resets all changes to the "reviewer" field.
func (m *VerificationRecordMutation) ResetReviewer() {
	m.reviewer = nil
	delete(m.clearedFields, verificationrecord.FieldReviewer)
}

// SetNotes sets the "notes" field.
func (m *VerificationRecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *VerificationRecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *VerificationRecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[verificationrecord.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *VerificationRecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *VerificationRecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, verificationrecord.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRecord clears the "record" edge to the AdmissionRecord entity.
func (m *VerificationRecordMutation) ClearRecord() {
	m.clearedrecord = true
	m.clearedFields[verificationrecord.FieldRecordID] = struct{}{}
}

// RecordCleared reports if the "record" edge to the AdmissionRecord entity was cleared.
func (m *VerificationRecordMutation) RecordCleared() bool {
	return m.clearedrecord
}

// RecordIDs returns the "record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordID instead. It exists only for internal usage by the builders.
func (m *VerificationRecordMutation) RecordIDs() (ids []uuid.UUID) {
	if id := m.record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecord resets all changes to the "record" edge.
func (m *VerificationRecordMutation) ResetRecord() {
	m.record = nil
	m.clearedrecord = false
}

// ClearFile clears the "file" edge to the ProcessedFile entity.
func (m *VerificationRecordMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[verificationrecord.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ProcessedFile entity was cleared.
func (m *VerificationRecordMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *VerificationRecordMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *VerificationRecordMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the VerificationRecordMutation builder.
func (m *VerificationRecordMutation) Where(ps ...predicate.VerificationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationRecord).
func (m *VerificationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.record != nil {
		fields = append(fields, verificationrecord.FieldRecordID)
	}
	if m.file != nil {
		fields = append(fields, verificationrecord.FieldFileID)
	}
	if m.page_number != nil {
		fields = append(fields, verificationrecord.FieldPageNumber)
	}
	if m.review_status != nil {
		fields = append(fields, verificationrecord.FieldReviewStatus)
	}
	if m.reviewer != nil {
		fields = append(fields, verificationrecord.FieldReviewer)
	}
	if m.notes != nil {
		fields = append(fields, verificationrecord.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, verificationrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldRecordID:
		return m.RecordID()
	case verificationrecord.FieldFileID:
		return m.FileID()
	case verificationrecord.FieldPageNumber:
		return m.PageNumber()
	case verificationrecord.FieldReviewStatus:
		return m.ReviewStatus()
	case verificationrecord.FieldReviewer:
		return m.Reviewer()
	case verificationrecord.FieldNotes:
		return m.Notes()
	case verificationrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationrecord.FieldRecordID:
		return m.OldRecordID(ctx)
	case verificationrecord.FieldFileID:
		return m.OldFileID(ctx)
	case verificationrecord.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case verificationrecord.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case verificationrecord.FieldReviewer:
		return m.OldReviewer(ctx)
	case verificationrecord.FieldNotes:
		return m.OldNotes(ctx)
	case verificationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldRecordID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case verificationrecord.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case verificationrecord.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case verificationrecord.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case verificationrecord.FieldReviewer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewer(v)
		return nil
	case verificationrecord.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case verificationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, verificationrecord.FieldPageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldPageNumber:
		return m.AddedPageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationrecord.FieldReviewer) {
		fields = append(fields, verificationrecord.FieldReviewer)
	}
	if m.FieldCleared(verificationrecord.FieldNotes) {
		fields = append(fields, verificationrecord.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ClearField(name string) error {
	switch name {
	case verificationrecord.FieldReviewer:
		m.ClearReviewer()
		return nil
	case verificationrecord.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ResetField(name string) error {
	switch name {
	case verificationrecord.FieldRecordID:
		m.ResetRecordID()
		return nil
	case verificationrecord.FieldFileID:
		m.ResetFileID()
		return nil
	case verificationrecord.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case verificationrecord.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case verificationrecord.FieldReviewer:
		m.ResetReviewer()
		return nil
	case verificationrecord.FieldNotes:
		m.ResetNotes()
		return nil
	case verificationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.record != nil {
		edges = append(edges, verificationrecord.EdgeRecord)
	}
	if m.file != nil {
		edges = append(edges, verificationrecord.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationrecord.EdgeRecord:
		if id := m.record; id != nil {
			return []ent.Value{*id}
		}
	case verificationrecord.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecord {
		edges = append(edges, verificationrecord.EdgeRecord)
	}
	if m.clearedfile {
		edges = append(edges, verificationrecord.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationrecord.EdgeRecord:
		return m.clearedrecord
	case verificationrecord.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationRecordMutation) ClearEdge(name string) error {
	switch name {
	case verificationrecord.EdgeRecord:
		m.ClearRecord()
		return nil
	case verificationrecord.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationRecordMutation) ResetEdge(name string) error {
	switch name {
	case verificationrecord.EdgeRecord:
		m.ResetRecord()
		return nil
	case verificationrecord.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord edge %s", name)
}
