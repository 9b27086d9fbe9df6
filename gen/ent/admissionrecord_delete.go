// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
)

// AdmissionRecordDelete is the builder for deleting a AdmissionRecord entity.
type AdmissionRecordDelete struct {
	config
	hooks    []Hook
	mutation *AdmissionRecordMutation
}

// Where appends a list predicates to the AdmissionRecordDelete builder.
func (_d *AdmissionRecordDelete) Where(ps ...predicate.AdmissionRecord) *AdmissionRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdmissionRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdmissionRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdmissionRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(admissionrecord.Table, sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdmissionRecordDeleteOne is the builder for deleting a single AdmissionRecord entity.
type AdmissionRecordDeleteOne struct {
	_d *AdmissionRecordDelete
}

// Where appends a list predicates to the AdmissionRecordDelete builder.
func (_d *AdmissionRecordDeleteOne) Where(ps ...predicate.AdmissionRecord) *AdmissionRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdmissionRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{admissionrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdmissionRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
