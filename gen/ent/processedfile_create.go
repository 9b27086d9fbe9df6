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
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// ProcessedFileCreate is the builder for creating a ProcessedFile entity.
type ProcessedFileCreate struct {
	config
	mutation *ProcessedFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilename sets the "filename" field.
func (_c *ProcessedFileCreate) SetFilename(v string) *ProcessedFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetLayout sets the "layout" field.
func (_c *ProcessedFileCreate) SetLayout(v string) *ProcessedFileCreate {
	_c.mutation.SetLayout(v)
	return _c
}

// SetRecordsCount sets the "records_count" field.
func (_c *ProcessedFileCreate) SetRecordsCount(v int) *ProcessedFileCreate {
	_c.mutation.SetRecordsCount(v)
	return _c
}

// SetSampleSize sets the "sample_size" field.
func (_c *ProcessedFileCreate) SetSampleSize(v int) *ProcessedFileCreate {
	_c.mutation.SetSampleSize(v)
	return _c
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableSampleSize(v *int) *ProcessedFileCreate {
	if v != nil {
		_c.SetSampleSize(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *ProcessedFileCreate) SetReviewStatus(v string) *ProcessedFileCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableReviewStatus(v *string) *ProcessedFileCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ProcessedFileCreate) SetProcessedAt(v time.Time) *ProcessedFileCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableProcessedAt(v *time.Time) *ProcessedFileCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedFileCreate) SetID(v uuid.UUID) *ProcessedFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableID(v *uuid.UUID) *ProcessedFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_c *ProcessedFileCreate) AddVerificationIDs(ids ...uuid.UUID) *ProcessedFileCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_c *ProcessedFileCreate) AddVerifications(v ...*VerificationRecord) *ProcessedFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_c *ProcessedFileCreate) Mutation() *ProcessedFileMutation {
	return _c.mutation
}

// Save creates the ProcessedFile in the database.
func (_c *ProcessedFileCreate) Save(ctx context.Context) (*ProcessedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedFileCreate) SaveX(ctx context.Context) *ProcessedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedFileCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := processedfile.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processedfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedFileCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ProcessedFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := processedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Layout(); !ok {
		return &ValidationError{Name: "layout", err: errors.New(`ent: missing required field "ProcessedFile.layout"`)}
	}
	if v, ok := _c.mutation.Layout(); ok {
		if err := processedfile.LayoutValidator(v); err != nil {
			return &ValidationError{Name: "layout", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.layout": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordsCount(); !ok {
		return &ValidationError{Name: "records_count", err: errors.New(`ent: missing required field "ProcessedFile.records_count"`)}
	}
	if v, ok := _c.mutation.RecordsCount(); ok {
		if err := processedfile.RecordsCountValidator(v); err != nil {
			return &ValidationError{Name: "records_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.records_count": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := processedfile.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ProcessedFile.processed_at"`)}
	}
	return nil
}

func (_c *ProcessedFileCreate) sqlSave(ctx context.Context) (*ProcessedFile, error) {
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

func (_c *ProcessedFileCreate) createSpec() (*ProcessedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedfile.Table, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(processedfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Layout(); ok {
		_spec.SetField(processedfile.FieldLayout, field.TypeString, value)
		_node.Layout = value
	}
	if value, ok := _c.mutation.RecordsCount(); ok {
		_spec.SetField(processedfile.FieldRecordsCount, field.TypeInt, value)
		_node.RecordsCount = value
	}
	if value, ok := _c.mutation.SampleSize(); ok {
		_spec.SetField(processedfile.FieldSampleSize, field.TypeInt, value)
		_node.SampleSize = &value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(processedfile.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processedfile.VerificationsTable,
			Columns: []string{processedfile.VerificationsColumn},
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
//	client.ProcessedFile.Create().
//		SetFilename(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedFileUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedFileCreate) OnConflict(opts ...sql.ConflictOption) *ProcessedFileUpsertOne {
	_c.conflict = opts
	return &ProcessedFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedFileCreate) OnConflictColumns(columns ...string) *ProcessedFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedFileUpsertOne{
		create: _c,
	}
}

type (
	// ProcessedFileUpsertOne is the builder for "upsert"-ing
	//  one ProcessedFile node.
	ProcessedFileUpsertOne struct {
		create *ProcessedFileCreate
	}

	// ProcessedFileUpsert is the "OnConflict" setter.
	ProcessedFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *ProcessedFileUpsert) SetFilename(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateFilename() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldFilename)
	return u
}

// SetLayout sets the "layout" field.
func (u *ProcessedFileUpsert) SetLayout(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldLayout, v)
	return u
}

// UpdateLayout sets the "layout" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateLayout() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldLayout)
	return u
}

// SetRecordsCount sets the "records_count" field.
func (u *ProcessedFileUpsert) SetRecordsCount(v int) *ProcessedFileUpsert {
	u.Set(processedfile.FieldRecordsCount, v)
	return u
}

// UpdateRecordsCount sets the "records_count" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateRecordsCount() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldRecordsCount)
	return u
}

// AddRecordsCount adds v to the "records_count" field.
func (u *ProcessedFileUpsert) AddRecordsCount(v int) *ProcessedFileUpsert {
	u.Add(processedfile.FieldRecordsCount, v)
	return u
}

// SetSampleSize sets the "sample_size" field.
func (u *ProcessedFileUpsert) SetSampleSize(v int) *ProcessedFileUpsert {
	u.Set(processedfile.FieldSampleSize, v)
	return u
}

// UpdateSampleSize sets the "sample_size" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateSampleSize() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldSampleSize)
	return u
}

// AddSampleSize adds v to the "sample_size" field.
func (u *ProcessedFileUpsert) AddSampleSize(v int) *ProcessedFileUpsert {
	u.Add(processedfile.FieldSampleSize, v)
	return u
}

// ClearSampleSize clears the value of the "sample_size" field.
func (u *ProcessedFileUpsert) ClearSampleSize() *ProcessedFileUpsert {
	u.SetNull(processedfile.FieldSampleSize)
	return u
}

// SetReviewStatus sets the "review_status" field.
func (u *ProcessedFileUpsert) SetReviewStatus(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldReviewStatus, v)
	return u
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateReviewStatus() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldReviewStatus)
	return u
}

// ClearReviewStatus clears the value of the "review_status" field.
func (u *ProcessedFileUpsert) ClearReviewStatus() *ProcessedFileUpsert {
	u.SetNull(processedfile.FieldReviewStatus)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsert) SetProcessedAt(v time.Time) *ProcessedFileUpsert {
	u.Set(processedfile.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateProcessedAt() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processedfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessedFileUpsertOne) UpdateNewValues() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(processedfile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessedFileUpsertOne) Ignore() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedFileUpsertOne) DoNothing() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedFileCreate.OnConflict
// documentation for more info.
func (u *ProcessedFileUpsertOne) Update(set func(*ProcessedFileUpsert)) *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *ProcessedFileUpsertOne) SetFilename(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateFilename() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFilename()
	})
}

// SetLayout sets the "layout" field.
func (u *ProcessedFileUpsertOne) SetLayout(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetLayout(v)
	})
}

// UpdateLayout sets the "layout" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateLayout() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateLayout()
	})
}

// SetRecordsCount sets the "records_count" field.
func (u *ProcessedFileUpsertOne) SetRecordsCount(v int) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetRecordsCount(v)
	})
}

// AddRecordsCount adds v to the "records_count" field.
func (u *ProcessedFileUpsertOne) AddRecordsCount(v int) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.AddRecordsCount(v)
	})
}

// UpdateRecordsCount sets the "records_count" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateRecordsCount() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateRecordsCount()
	})
}

// SetSampleSize sets the "sample_size" field.
func (u *ProcessedFileUpsertOne) SetSampleSize(v int) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetSampleSize(v)
	})
}

// AddSampleSize adds v to the "sample_size" field.
func (u *ProcessedFileUpsertOne) AddSampleSize(v int) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.AddSampleSize(v)
	})
}

// UpdateSampleSize sets the "sample_size" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateSampleSize() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateSampleSize()
	})
}

// ClearSampleSize clears the value of the "sample_size" field.
func (u *ProcessedFileUpsertOne) ClearSampleSize() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearSampleSize()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *ProcessedFileUpsertOne) SetReviewStatus(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateReviewStatus() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateReviewStatus()
	})
}

// ClearReviewStatus clears the value of the "review_status" field.
func (u *ProcessedFileUpsertOne) ClearReviewStatus() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearReviewStatus()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsertOne) SetProcessedAt(v time.Time) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateProcessedAt() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateProcessedAt()
	})
}

// Exec executes the query.
func (u *ProcessedFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessedFileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProcessedFileUpsertOne.ID is not supported by MySQL driver. Use ProcessedFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessedFileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessedFileCreateBulk is the builder for creating many ProcessedFile entities in bulk.
type ProcessedFileCreateBulk struct {
	config
	err      error
	builders []*ProcessedFileCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessedFile entities in the database.
func (_c *ProcessedFileCreateBulk) Save(ctx context.Context) ([]*ProcessedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedFileMutation)
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
func (_c *ProcessedFileCreateBulk) SaveX(ctx context.Context) []*ProcessedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessedFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedFileUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessedFileUpsertBulk {
	_c.conflict = opts
	return &ProcessedFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedFileCreateBulk) OnConflictColumns(columns ...string) *ProcessedFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedFileUpsertBulk{
		create: _c,
	}
}

// ProcessedFileUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessedFile nodes.
type ProcessedFileUpsertBulk struct {
	create *ProcessedFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processedfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessedFileUpsertBulk) UpdateNewValues() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(processedfile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessedFileUpsertBulk) Ignore() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedFileUpsertBulk) DoNothing() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedFileCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessedFileUpsertBulk) Update(set func(*ProcessedFileUpsert)) *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *ProcessedFileUpsertBulk) SetFilename(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateFilename() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFilename()
	})
}

// SetLayout sets the "layout" field.
func (u *ProcessedFileUpsertBulk) SetLayout(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetLayout(v)
	})
}

// UpdateLayout sets the "layout" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateLayout() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateLayout()
	})
}

// SetRecordsCount sets the "records_count" field.
func (u *ProcessedFileUpsertBulk) SetRecordsCount(v int) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetRecordsCount(v)
	})
}

// AddRecordsCount adds v to the "records_count" field.
func (u *ProcessedFileUpsertBulk) AddRecordsCount(v int) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.AddRecordsCount(v)
	})
}

// UpdateRecordsCount sets the "records_count" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateRecordsCount() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateRecordsCount()
	})
}

// SetSampleSize sets the "sample_size" field.
func (u *ProcessedFileUpsertBulk) SetSampleSize(v int) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetSampleSize(v)
	})
}

// AddSampleSize adds v to the "sample_size" field.
func (u *ProcessedFileUpsertBulk) AddSampleSize(v int) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.AddSampleSize(v)
	})
}

// UpdateSampleSize sets the "sample_size" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateSampleSize() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateSampleSize()
	})
}

// ClearSampleSize clears the value of the "sample_size" field.
func (u *ProcessedFileUpsertBulk) ClearSampleSize() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearSampleSize()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *ProcessedFileUpsertBulk) SetReviewStatus(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateReviewStatus() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateReviewStatus()
	})
}

// ClearReviewStatus clears the value of the "review_status" field.
func (u *ProcessedFileUpsertBulk) ClearReviewStatus() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearReviewStatus()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsertBulk) SetProcessedAt(v time.Time) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateProcessedAt() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateProcessedAt()
	})
}

// Exec executes the query.
func (u *ProcessedFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessedFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
