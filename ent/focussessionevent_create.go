// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
)

// FocusSessionEventCreate is the builder for creating a FocusSessionEvent entity.
type FocusSessionEventCreate struct {
	config
	mutation *FocusSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *FocusSessionEventCreate) SetSequence(v int64) *FocusSessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *FocusSessionEventCreate) SetTimestamp(v time.Time) *FocusSessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *FocusSessionEventCreate) SetNillableTimestamp(v *time.Time) *FocusSessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *FocusSessionEventCreate) SetSubjectID(v string) *FocusSessionEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *FocusSessionEventCreate) SetNillableSubjectID(v *string) *FocusSessionEventCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *FocusSessionEventCreate) SetSubjectName(v string) *FocusSessionEventCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_c *FocusSessionEventCreate) SetNillableSubjectName(v *string) *FocusSessionEventCreate {
	if v != nil {
		_c.SetSubjectName(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *FocusSessionEventCreate) SetMode(v string) *FocusSessionEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *FocusSessionEventCreate) SetDurationSecs(v int) *FocusSessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *FocusSessionEventCreate) SetNillableDurationSecs(v *int) *FocusSessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the FocusSessionEventMutation object of the builder.
func (_c *FocusSessionEventCreate) Mutation() *FocusSessionEventMutation {
	return _c.mutation
}

// Save creates the FocusSessionEvent in the database.
func (_c *FocusSessionEventCreate) Save(ctx context.Context) (*FocusSessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FocusSessionEventCreate) SaveX(ctx context.Context) *FocusSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusSessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusSessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FocusSessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := focussessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		v := focussessionevent.DefaultSubjectID
		_c.mutation.SetSubjectID(v)
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		v := focussessionevent.DefaultSubjectName
		_c.mutation.SetSubjectName(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := focussessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FocusSessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FocusSessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FocusSessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "FocusSessionEvent.subject_id"`)}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "FocusSessionEvent.subject_name"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "FocusSessionEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := focussessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "FocusSessionEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "FocusSessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *FocusSessionEventCreate) sqlSave(ctx context.Context) (*FocusSessionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FocusSessionEventCreate) createSpec() (*FocusSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FocusSessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(focussessionevent.Table, sqlgraph.NewFieldSpec(focussessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(focussessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(focussessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(focussessionevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(focussessionevent.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(focussessionevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(focussessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// FocusSessionEventCreateBulk is the builder for creating many FocusSessionEvent entities in bulk.
type FocusSessionEventCreateBulk struct {
	config
	err      error
	builders []*FocusSessionEventCreate
}

// Save creates the FocusSessionEvent entities in the database.
func (_c *FocusSessionEventCreateBulk) Save(ctx context.Context) ([]*FocusSessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FocusSessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FocusSessionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *FocusSessionEventCreateBulk) SaveX(ctx context.Context) []*FocusSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
