// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// ProcessedFileUpdate is the builder for updating ProcessedFile entities.
type ProcessedFileUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedFileMutation
}

// Where appends a list predicates to the ProcessedFileUpdate builder.
func (_u *ProcessedFileUpdate) Where(ps ...predicate.ProcessedFile) *ProcessedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProcessedFileUpdate) SetFilename(v string) *ProcessedFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableFilename(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLayout sets the "layout" field.
func (_u *ProcessedFileUpdate) SetLayout(v string) *ProcessedFileUpdate {
	_u.mutation.SetLayout(v)
	return _u
}

// SetNillableLayout sets the "layout" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableLayout(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetLayout(*v)
	}
	return _u
}

// SetRecordsCount sets the "records_count" field.
func (_u *ProcessedFileUpdate) SetRecordsCount(v int) *ProcessedFileUpdate {
	_u.mutation.ResetRecordsCount()
	_u.mutation.SetRecordsCount(v)
	return _u
}

// SetNillableRecordsCount sets the "records_count" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableRecordsCount(v *int) *ProcessedFileUpdate {
	if v != nil {
		_u.SetRecordsCount(*v)
	}
	return _u
}

// AddRecordsCount adds value to the "records_count" field.
func (_u *ProcessedFileUpdate) AddRecordsCount(v int) *ProcessedFileUpdate {
	_u.mutation.AddRecordsCount(v)
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *ProcessedFileUpdate) SetSampleSize(v int) *ProcessedFileUpdate {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableSampleSize(v *int) *ProcessedFileUpdate {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *ProcessedFileUpdate) AddSampleSize(v int) *ProcessedFileUpdate {
	_u.mutation.AddSampleSize(v)
	return _u
}

// ClearSampleSize clears the value of the "sample_size" field.
func (_u *ProcessedFileUpdate) ClearSampleSize() *ProcessedFileUpdate {
	_u.mutation.ClearSampleSize()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ProcessedFileUpdate) SetReviewStatus(v string) *ProcessedFileUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableReviewStatus(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// ClearReviewStatus clears the value of the "review_status" field.
func (_u *ProcessedFileUpdate) ClearReviewStatus() *ProcessedFileUpdate {
	_u.mutation.ClearReviewStatus()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedFileUpdate) SetProcessedAt(v time.Time) *ProcessedFileUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableProcessedAt(v *time.Time) *ProcessedFileUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *ProcessedFileUpdate) AddVerificationIDs(ids ...uuid.UUID) *ProcessedFileUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *ProcessedFileUpdate) AddVerifications(v ...*VerificationRecord) *ProcessedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_u *ProcessedFileUpdate) Mutation() *ProcessedFileMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *ProcessedFileUpdate) ClearVerifications() *ProcessedFileUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *ProcessedFileUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *ProcessedFileUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *ProcessedFileUpdate) RemoveVerifications(v ...*VerificationRecord) *ProcessedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := processedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Layout(); ok {
		if err := processedfile.LayoutValidator(v); err != nil {
			return &ValidationError{Name: "layout", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.layout": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordsCount(); ok {
		if err := processedfile.RecordsCountValidator(v); err != nil {
			return &ValidationError{Name: "records_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.records_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := processedfile.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedfile.Table, processedfile.Columns, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Layout(); ok {
		_spec.SetField(processedfile.FieldLayout, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordsCount(); ok {
		_spec.SetField(processedfile.FieldRecordsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsCount(); ok {
		_spec.AddField(processedfile.FieldRecordsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(processedfile.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(processedfile.FieldSampleSize, field.TypeInt, value)
	}
	if _u.mutation.SampleSizeCleared() {
		_spec.ClearField(processedfile.FieldSampleSize, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(processedfile.FieldReviewStatus, field.TypeString, value)
	}
	if _u.mutation.ReviewStatusCleared() {
		_spec.ClearField(processedfile.FieldReviewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.VerificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedFileUpdateOne is the builder for updating a single ProcessedFile entity.
type ProcessedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedFileMutation
}

// SetFilename sets the "filename" field.
func (_u *ProcessedFileUpdateOne) SetFilename(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableFilename(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLayout sets the "layout" field.
func (_u *ProcessedFileUpdateOne) SetLayout(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetLayout(v)
	return _u
}

// SetNillableLayout sets the "layout" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableLayout(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetLayout(*v)
	}
	return _u
}

// SetRecordsCount sets the "records_count" field.
func (_u *ProcessedFileUpdateOne) SetRecordsCount(v int) *ProcessedFileUpdateOne {
	_u.mutation.ResetRecordsCount()
	_u.mutation.SetRecordsCount(v)
	return _u
}

// SetNillableRecordsCount sets the "records_count" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableRecordsCount(v *int) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetRecordsCount(*v)
	}
	return _u
}

// AddRecordsCount adds value to the "records_count" field.
func (_u *ProcessedFileUpdateOne) AddRecordsCount(v int) *ProcessedFileUpdateOne {
	_u.mutation.AddRecordsCount(v)
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *ProcessedFileUpdateOne) SetSampleSize(v int) *ProcessedFileUpdateOne {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableSampleSize(v *int) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *ProcessedFileUpdateOne) AddSampleSize(v int) *ProcessedFileUpdateOne {
	_u.mutation.AddSampleSize(v)
	return _u
}

// ClearSampleSize clears the value of the "sample_size" field.
func (_u *ProcessedFileUpdateOne) ClearSampleSize() *ProcessedFileUpdateOne {
	_u.mutation.ClearSampleSize()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ProcessedFileUpdateOne) SetReviewStatus(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableReviewStatus(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// ClearReviewStatus clears the value of the "review_status" field.
func (_u *ProcessedFileUpdateOne) ClearReviewStatus() *ProcessedFileUpdateOne {
	_u.mutation.ClearReviewStatus()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedFileUpdateOne) SetProcessedAt(v time.Time) *ProcessedFileUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableProcessedAt(v *time.Time) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *ProcessedFileUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *ProcessedFileUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *ProcessedFileUpdateOne) AddVerifications(v ...*VerificationRecord) *ProcessedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_u *ProcessedFileUpdateOne) Mutation() *ProcessedFileMutation {
	return _u.mutation
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *ProcessedFileUpdateOne) ClearVerifications() *ProcessedFileUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *ProcessedFileUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *ProcessedFileUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *ProcessedFileUpdateOne) RemoveVerifications(v ...*VerificationRecord) *ProcessedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the ProcessedFileUpdate builder.
func (_u *ProcessedFileUpdateOne) Where(ps ...predicate.ProcessedFile) *ProcessedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedFileUpdateOne) Select(field string, fields ...string) *ProcessedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedFile entity.
func (_u *ProcessedFileUpdateOne) Save(ctx context.Context) (*ProcessedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedFileUpdateOne) SaveX(ctx context.Context) *ProcessedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := processedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Layout(); ok {
		if err := processedfile.LayoutValidator(v); err != nil {
			return &ValidationError{Name: "layout", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.layout": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordsCount(); ok {
		if err := processedfile.RecordsCountValidator(v); err != nil {
			return &ValidationError{Name: "records_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.records_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := processedfile.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedFileUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedfile.Table, processedfile.Columns, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedfile.FieldID)
		for _, f := range fields {
			if !processedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedfile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Layout(); ok {
		_spec.SetField(processedfile.FieldLayout, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordsCount(); ok {
		_spec.SetField(processedfile.FieldRecordsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsCount(); ok {
		_spec.AddField(processedfile.FieldRecordsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(processedfile.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(processedfile.FieldSampleSize, field.TypeInt, value)
	}
	if _u.mutation.SampleSizeCleared() {
		_spec.ClearField(processedfile.FieldSampleSize, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(processedfile.FieldReviewStatus, field.TypeString, value)
	}
	if _u.mutation.ReviewStatusCleared() {
		_spec.ClearField(processedfile.FieldReviewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.VerificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
