// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ItemPairFrequencyDelete is the builder for deleting a ItemPairFrequency entity.
type ItemPairFrequencyDelete struct {
	config
	hooks    []Hook
	mutation *ItemPairFrequencyMutation
}

// Where appends a list predicates to the ItemPairFrequencyDelete builder.
func (_d *ItemPairFrequencyDelete) Where(ps ...predicate.ItemPairFrequency) *ItemPairFrequencyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ItemPairFrequencyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemPairFrequencyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ItemPairFrequencyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itempairfrequency.Table, sqlgraph.NewFieldSpec(itempairfrequency.FieldID, field.TypeInt))
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

// ItemPairFrequencyDeleteOne is the builder for deleting a single ItemPairFrequency entity.
type ItemPairFrequencyDeleteOne struct {
	_d *ItemPairFrequencyDelete
}

// Where appends a list predicates to the ItemPairFrequencyDelete builder.
func (_d *ItemPairFrequencyDeleteOne) Where(ps ...predicate.ItemPairFrequency) *ItemPairFrequencyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ItemPairFrequencyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itempairfrequency.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemPairFrequencyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
