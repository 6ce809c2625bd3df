// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/predicate"
)

// FocusSessionEventDelete is the builder for deleting a FocusSessionEvent entity.
type FocusSessionEventDelete struct {
	config
	hooks    []Hook
	mutation *FocusSessionEventMutation
}

// Where appends a list predicates to the FocusSessionEventDelete builder.
func (_d *FocusSessionEventDelete) Where(ps ...predicate.FocusSessionEvent) *FocusSessionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FocusSessionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FocusSessionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FocusSessionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(focussessionevent.Table, sqlgraph.NewFieldSpec(focussessionevent.FieldID, field.TypeInt))
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

// FocusSessionEventDeleteOne is the builder for deleting a single FocusSessionEvent entity.
type FocusSessionEventDeleteOne struct {
	_d *FocusSessionEventDelete
}

// Where appends a list predicates to the FocusSessionEventDelete builder.
func (_d *FocusSessionEventDeleteOne) Where(ps ...predicate.FocusSessionEvent) *FocusSessionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FocusSessionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{focussessionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FocusSessionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
