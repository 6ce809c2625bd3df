// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/predicate"
)

// FocusSessionEventUpdate is the builder for updating FocusSessionEvent entities.
type FocusSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *FocusSessionEventMutation
}

// Where appends a list predicates to the FocusSessionEventUpdate builder.
func (_u *FocusSessionEventUpdate) Where(ps ...predicate.FocusSessionEvent) *FocusSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *FocusSessionEventUpdate) SetSubjectID(v string) *FocusSessionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *FocusSessionEventUpdate) SetNillableSubjectID(v *string) *FocusSessionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *FocusSessionEventUpdate) SetSubjectName(v string) *FocusSessionEventUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *FocusSessionEventUpdate) SetNillableSubjectName(v *string) *FocusSessionEventUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *FocusSessionEventUpdate) SetMode(v string) *FocusSessionEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *FocusSessionEventUpdate) SetNillableMode(v *string) *FocusSessionEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FocusSessionEventUpdate) SetDurationSecs(v int) *FocusSessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FocusSessionEventUpdate) SetNillableDurationSecs(v *int) *FocusSessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FocusSessionEventUpdate) AddDurationSecs(v int) *FocusSessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FocusSessionEventMutation object of the builder.
func (_u *FocusSessionEventUpdate) Mutation() *FocusSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FocusSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FocusSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusSessionEventUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := focussessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "FocusSessionEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focussessionevent.Table, focussessionevent.Columns, sqlgraph.NewFieldSpec(focussessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(focussessionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(focussessionevent.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(focussessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(focussessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(focussessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focussessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FocusSessionEventUpdateOne is the builder for updating a single FocusSessionEvent entity.
type FocusSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FocusSessionEventMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *FocusSessionEventUpdateOne) SetSubjectID(v string) *FocusSessionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *FocusSessionEventUpdateOne) SetNillableSubjectID(v *string) *FocusSessionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *FocusSessionEventUpdateOne) SetSubjectName(v string) *FocusSessionEventUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *FocusSessionEventUpdateOne) SetNillableSubjectName(v *string) *FocusSessionEventUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *FocusSessionEventUpdateOne) SetMode(v string) *FocusSessionEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *FocusSessionEventUpdateOne) SetNillableMode(v *string) *FocusSessionEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FocusSessionEventUpdateOne) SetDurationSecs(v int) *FocusSessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FocusSessionEventUpdateOne) SetNillableDurationSecs(v *int) *FocusSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FocusSessionEventUpdateOne) AddDurationSecs(v int) *FocusSessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FocusSessionEventMutation object of the builder.
func (_u *FocusSessionEventUpdateOne) Mutation() *FocusSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FocusSessionEventUpdate builder.
func (_u *FocusSessionEventUpdateOne) Where(ps ...predicate.FocusSessionEvent) *FocusSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FocusSessionEventUpdateOne) Select(field string, fields ...string) *FocusSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FocusSessionEvent entity.
func (_u *FocusSessionEventUpdateOne) Save(ctx context.Context) (*FocusSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusSessionEventUpdateOne) SaveX(ctx context.Context) *FocusSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FocusSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := focussessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "FocusSessionEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *FocusSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focussessionevent.Table, focussessionevent.Columns, sqlgraph.NewFieldSpec(focussessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FocusSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, focussessionevent.FieldID)
		for _, f := range fields {
			if !focussessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != focussessionevent.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(focussessionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(focussessionevent.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(focussessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(focussessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(focussessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &FocusSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focussessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
