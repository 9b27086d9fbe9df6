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
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordCreate is the builder for creating a VerificationRecord entity.
type VerificationRecordCreate struct {
	config
	mutation *VerificationRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRecordID sets the "record_id" field.
func (_c *VerificationRecordCreate) SetRecordID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetFileID sets the "file_id" field.
func (_c *VerificationRecordCreate) SetFileID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *VerificationRecordCreate) SetPageNumber(v int) *VerificationRecordCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *VerificationRecordCreate) SetReviewStatus(v string) *VerificationRecordCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableReviewStatus(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewer sets the "reviewer" field.
func (_c *VerificationRecordCreate) SetReviewer(v string) *VerificationRecordCreate {
	_c.mutation.SetReviewer(v)
	return _c
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableReviewer(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetReviewer(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *VerificationRecordCreate) SetNotes(v string) *VerificationRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableNotes(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRecordCreate) SetCreatedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCreatedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRecordCreate) SetID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableID(v *uuid.UUID) *VerificationRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRecord sets the "record" edge to the AdmissionRecord entity.
func (_c *VerificationRecordCreate) SetRecord(v *AdmissionRecord) *VerificationRecordCreate {
	return _c.SetRecordID(v.ID)
}

// SetFile sets the "file" edge to the ProcessedFile entity.
func (_c *VerificationRecordCreate) SetFile(v *ProcessedFile) *VerificationRecordCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_c *VerificationRecordCreate) Mutation() *VerificationRecordMutation {
	return _c.mutation
}

// Save creates the VerificationRecord in the database.
func (_c *VerificationRecordCreate) Save(ctx context.Context) (*VerificationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRecordCreate) SaveX(ctx context.Context) *VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRecordCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := verificationrecord.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRecordCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "VerificationRecord.record_id"`)}
	}
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "VerificationRecord.file_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "VerificationRecord.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := verificationrecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "VerificationRecord.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := verificationrecord.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRecord.created_at"`)}
	}
	if len(_c.mutation.RecordIDs()) == 0 {
		return &ValidationError{Name: "record", err: errors.New(`ent: missing required edge "VerificationRecord.record"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "VerificationRecord.file"`)}
	}
	return nil
}

func (_c *VerificationRecordCreate) sqlSave(ctx context.Context) (*VerificationRecord, error) {
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

func (_c *VerificationRecordCreate) createSpec() (*VerificationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrecord.Table, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(verificationrecord.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(verificationrecord.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.Reviewer(); ok {
		_spec.SetField(verificationrecord.FieldReviewer, field.TypeString, value)
		_node.Reviewer = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(verificationrecord.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationrecord.RecordTable,
			Columns: []string{verificationrecord.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationrecord.FileTable,
			Columns: []string{verificationrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VerificationRecord.Create().
//		SetRecordID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerificationRecordUpsert) {
//			SetRecordID(v+v).
//		}).
//		Exec(ctx)
func (_c *VerificationRecordCreate) OnConflict(opts ...sql.ConflictOption) *VerificationRecordUpsertOne {
	_c.conflict = opts
	return &VerificationRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VerificationRecordCreate) OnConflictColumns(columns ...string) *VerificationRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VerificationRecordUpsertOne{
		create: _c,
	}
}

type (
	// VerificationRecordUpsertOne is the builder for "upsert"-ing
	//  one VerificationRecord node.
	VerificationRecordUpsertOne struct {
		create *VerificationRecordCreate
	}

	// VerificationRecordUpsert is the "OnConflict" setter.
	VerificationRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetRecordID sets the "record_id" field.
func (u *VerificationRecordUpsert) SetRecordID(v uuid.UUID) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldRecordID, v)
	return u
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdateRecordID() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldRecordID)
	return u
}

// SetFileID sets the "file_id" field.
func (u *VerificationRecordUpsert) SetFileID(v uuid.UUID) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldFileID, v)
	return u
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdateFileID() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldFileID)
	return u
}

// SetPageNumber sets the "page_number" field.
func (u *VerificationRecordUpsert) SetPageNumber(v int) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldPageNumber, v)
	return u
}

// UpdatePageNumber sets the "page_number" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdatePageNumber() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldPageNumber)
	return u
}

// AddPageNumber adds v to the "page_number" field.
func (u *VerificationRecordUpsert) AddPageNumber(v int) *VerificationRecordUpsert {
	u.Add(verificationrecord.FieldPageNumber, v)
	return u
}

// SetReviewStatus sets the "review_status" field.
func (u *VerificationRecordUpsert) SetReviewStatus(v string) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldReviewStatus, v)
	return u
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdateReviewStatus() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldReviewStatus)
	return u
}

// SetReviewer sets the "reviewer" field.
func (u *VerificationRecordUpsert) SetReviewer(v string) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldReviewer, v)
	return u
}

// UpdateReviewer sets the "reviewer" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdateReviewer() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldReviewer)
	return u
}

// ClearReviewer clears the value of the "reviewer" field.
func (u *VerificationRecordUpsert) ClearReviewer() *VerificationRecordUpsert {
	u.SetNull(verificationrecord.FieldReviewer)
	return u
}

// SetNotes sets the "notes" field.
func (u *VerificationRecordUpsert) SetNotes(v string) *VerificationRecordUpsert {
	u.Set(verificationrecord.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VerificationRecordUpsert) UpdateNotes() *VerificationRecordUpsert {
	u.SetExcluded(verificationrecord.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *VerificationRecordUpsert) ClearNotes() *VerificationRecordUpsert {
	u.SetNull(verificationrecord.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(verificationrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VerificationRecordUpsertOne) UpdateNewValues() *VerificationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(verificationrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(verificationrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VerificationRecordUpsertOne) Ignore() *VerificationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerificationRecordUpsertOne) DoNothing() *VerificationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerificationRecordCreate.OnConflict
// documentation for more info.
func (u *VerificationRecordUpsertOne) Update(set func(*VerificationRecordUpsert)) *VerificationRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerificationRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetRecordID sets the "record_id" field.
func (u *VerificationRecordUpsertOne) SetRecordID(v uuid.UUID) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdateRecordID() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateRecordID()
	})
}

// SetFileID sets the "file_id" field.
func (u *VerificationRecordUpsertOne) SetFileID(v uuid.UUID) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdateFileID() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateFileID()
	})
}

// SetPageNumber sets the "page_number" field.
func (u *VerificationRecordUpsertOne) SetPageNumber(v int) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetPageNumber(v)
	})
}

// AddPageNumber adds v to the "page_number" field.
func (u *VerificationRecordUpsertOne) AddPageNumber(v int) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.AddPageNumber(v)
	})
}

// UpdatePageNumber sets the "page_number" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdatePageNumber() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdatePageNumber()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *VerificationRecordUpsertOne) SetReviewStatus(v string) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdateReviewStatus() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetReviewer sets the "reviewer" field.
func (u *VerificationRecordUpsertOne) SetReviewer(v string) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetReviewer(v)
	})
}

// UpdateReviewer sets the "reviewer" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdateReviewer() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateReviewer()
	})
}

// ClearReviewer clears the value of the "reviewer" field.
func (u *VerificationRecordUpsertOne) ClearReviewer() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.ClearReviewer()
	})
}

// SetNotes sets the "notes" field.
func (u *VerificationRecordUpsertOne) SetNotes(v string) *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VerificationRecordUpsertOne) UpdateNotes() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VerificationRecordUpsertOne) ClearNotes() *VerificationRecordUpsertOne {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *VerificationRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerificationRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerificationRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VerificationRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VerificationRecordUpsertOne.ID is not supported by MySQL driver. Use VerificationRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VerificationRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VerificationRecordCreateBulk is the builder for creating many VerificationRecord entities in bulk.
type VerificationRecordCreateBulk struct {
	config
	err      error
	builders []*VerificationRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the VerificationRecord entities in the database.
func (_c *VerificationRecordCreateBulk) Save(ctx context.Context) ([]*VerificationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRecordMutation)
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
func (_c *VerificationRecordCreateBulk) SaveX(ctx context.Context) []*VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VerificationRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerificationRecordUpsert) {
//			SetRecordID(v+v).
//		}).
//		Exec(ctx)
func (_c *VerificationRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *VerificationRecordUpsertBulk {
	_c.conflict = opts
	return &VerificationRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VerificationRecordCreateBulk) OnConflictColumns(columns ...string) *VerificationRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VerificationRecordUpsertBulk{
		create: _c,
	}
}

// VerificationRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of VerificationRecord nodes.
type VerificationRecordUpsertBulk struct {
	create *VerificationRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(verificationrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VerificationRecordUpsertBulk) UpdateNewValues() *VerificationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(verificationrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(verificationrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VerificationRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VerificationRecordUpsertBulk) Ignore() *VerificationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerificationRecordUpsertBulk) DoNothing() *VerificationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerificationRecordCreateBulk.OnConflict
// documentation for more info.
func (u *VerificationRecordUpsertBulk) Update(set func(*VerificationRecordUpsert)) *VerificationRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerificationRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetRecordID sets the "record_id" field.
func (u *VerificationRecordUpsertBulk) SetRecordID(v uuid.UUID) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdateRecordID() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateRecordID()
	})
}

// SetFileID sets the "file_id" field.
func (u *VerificationRecordUpsertBulk) SetFileID(v uuid.UUID) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdateFileID() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateFileID()
	})
}

// SetPageNumber sets the "page_number" field.
func (u *VerificationRecordUpsertBulk) SetPageNumber(v int) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetPageNumber(v)
	})
}

// AddPageNumber adds v to the "page_number" field.
func (u *VerificationRecordUpsertBulk) AddPageNumber(v int) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.AddPageNumber(v)
	})
}

// UpdatePageNumber sets the "page_number" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdatePageNumber() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdatePageNumber()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *VerificationRecordUpsertBulk) SetReviewStatus(v string) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdateReviewStatus() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetReviewer sets the "reviewer" field.
func (u *VerificationRecordUpsertBulk) SetReviewer(v string) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetReviewer(v)
	})
}

// UpdateReviewer sets the "reviewer" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdateReviewer() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateReviewer()
	})
}

// ClearReviewer clears the value of the "reviewer" field.
func (u *VerificationRecordUpsertBulk) ClearReviewer() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.ClearReviewer()
	})
}

// SetNotes sets the "notes" field.
func (u *VerificationRecordUpsertBulk) SetNotes(v string) *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VerificationRecordUpsertBulk) UpdateNotes() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VerificationRecordUpsertBulk) ClearNotes() *VerificationRecordUpsertBulk {
	return u.Update(func(s *VerificationRecordUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *VerificationRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VerificationRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerificationRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerificationRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
