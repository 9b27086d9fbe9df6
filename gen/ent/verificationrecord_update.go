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
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordUpdate is the builder for updating VerificationRecord entities.
type VerificationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdate) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *VerificationRecordUpdate) SetRecordID(v uuid.UUID) *VerificationRecordUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableRecordID(v *uuid.UUID) *VerificationRecordUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *VerificationRecordUpdate) SetFileID(v uuid.UUID) *VerificationRecordUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableFileID(v *uuid.UUID) *VerificationRecordUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *VerificationRecordUpdate) SetPageNumber(v int) *VerificationRecordUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillablePageNumber(v *int) *VerificationRecordUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *VerificationRecordUpdate) AddPageNumber(v int) *VerificationRecordUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *VerificationRecordUpdate) SetReviewStatus(v string) *VerificationRecordUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableReviewStatus(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *VerificationRecordUpdate) SetReviewer(v string) *VerificationRecordUpdate {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableReviewer(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *VerificationRecordUpdate) ClearReviewer() *VerificationRecordUpdate {
	_u.mutation.ClearReviewer()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VerificationRecordUpdate) SetNotes(v string) *VerificationRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableNotes(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VerificationRecordUpdate) ClearNotes() *VerificationRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetRecord sets the "record" edge to the AdmissionRecord entity.
func (_u *VerificationRecordUpdate) SetRecord(v *AdmissionRecord) *VerificationRecordUpdate {
	return _u.SetRecordID(v.ID)
}

// SetFile sets the "file" edge to the ProcessedFile entity.
func (_u *VerificationRecordUpdate) SetFile(v *ProcessedFile) *VerificationRecordUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdate) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearRecord clears the "record" edge to the AdmissionRecord entity.
func (_u *VerificationRecordUpdate) ClearRecord() *VerificationRecordUpdate {
	_u.mutation.ClearRecord()
	return _u
}

// ClearFile clears the "file" edge to the ProcessedFile entity.
func (_u *VerificationRecordUpdate) ClearFile() *VerificationRecordUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := verificationrecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := verificationrecord.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.review_status": %w`, err)}
		}
	}
	if _u.mutation.RecordCleared() && len(_u.mutation.RecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.record"`)
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.file"`)
	}
	return nil
}

func (_u *VerificationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(verificationrecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(verificationrecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(verificationrecord.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(verificationrecord.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(verificationrecord.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(verificationrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(verificationrecord.FieldNotes, field.TypeString)
	}
	if _u.mutation.RecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRecordUpdateOne is the builder for updating a single VerificationRecord entity.
type VerificationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// SetRecordID sets the "record_id" field.
func (_u *VerificationRecordUpdateOne) SetRecordID(v uuid.UUID) *VerificationRecordUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableRecordID(v *uuid.UUID) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *VerificationRecordUpdateOne) SetFileID(v uuid.UUID) *VerificationRecordUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableFileID(v *uuid.UUID) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *VerificationRecordUpdateOne) SetPageNumber(v int) *VerificationRecordUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillablePageNumber(v *int) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *VerificationRecordUpdateOne) AddPageNumber(v int) *VerificationRecordUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *VerificationRecordUpdateOne) SetReviewStatus(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableReviewStatus(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *VerificationRecordUpdateOne) SetReviewer(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableReviewer(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *VerificationRecordUpdateOne) ClearReviewer() *VerificationRecordUpdateOne {
	_u.mutation.ClearReviewer()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VerificationRecordUpdateOne) SetNotes(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableNotes(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VerificationRecordUpdateOne) ClearNotes() *VerificationRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetRecord sets the "record" edge to the AdmissionRecord entity.
func (_u *VerificationRecordUpdateOne) SetRecord(v *AdmissionRecord) *VerificationRecordUpdateOne {
	return _u.SetRecordID(v.ID)
}

// SetFile sets the "file" edge to the ProcessedFile entity.
func (_u *VerificationRecordUpdateOne) SetFile(v *ProcessedFile) *VerificationRecordUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdateOne) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearRecord clears the "record" edge to the AdmissionRecord entity.
func (_u *VerificationRecordUpdateOne) ClearRecord() *VerificationRecordUpdateOne {
	_u.mutation.ClearRecord()
	return _u
}

// ClearFile clears the "file" edge to the ProcessedFile entity.
func (_u *VerificationRecordUpdateOne) ClearFile() *VerificationRecordUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdateOne) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRecordUpdateOne) Select(field string, fields ...string) *VerificationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRecord entity.
func (_u *VerificationRecordUpdateOne) Save(ctx context.Context) (*VerificationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) SaveX(ctx context.Context) *VerificationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := verificationrecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := verificationrecord.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.review_status": %w`, err)}
		}
	}
	if _u.mutation.RecordCleared() && len(_u.mutation.RecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.record"`)
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.file"`)
	}
	return nil
}

func (_u *VerificationRecordUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrecord.FieldID)
		for _, f := range fields {
			if !verificationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrecord.FieldID {
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
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(verificationrecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(verificationrecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(verificationrecord.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(verificationrecord.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(verificationrecord.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(verificationrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(verificationrecord.FieldNotes, field.TypeString)
	}
	if _u.mutation.RecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
