// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/topiccompletionevent"
)

// TopicCompletionEventCreate is the builder for creating a TopicCompletionEvent entity.
type TopicCompletionEventCreate struct {
	config
	mutation *TopicCompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TopicCompletionEventCreate) SetSequence(v int64) *TopicCompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TopicCompletionEventCreate) SetTimestamp(v time.Time) *TopicCompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TopicCompletionEventCreate) SetNillableTimestamp(v *time.Time) *TopicCompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *TopicCompletionEventCreate) SetSubjectID(v string) *TopicCompletionEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *TopicCompletionEventCreate) SetSubjectName(v string) *TopicCompletionEventCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_c *TopicCompletionEventCreate) SetNillableSubjectName(v *string) *TopicCompletionEventCreate {
	if v != nil {
		_c.SetSubjectName(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicCompletionEventCreate) SetTopic(v string) *TopicCompletionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *TopicCompletionEventCreate) SetXpAwarded(v int) *TopicCompletionEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *TopicCompletionEventCreate) SetNillableXpAwarded(v *int) *TopicCompletionEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// SetXpAfter sets the "xp_after" field.
func (_c *TopicCompletionEventCreate) SetXpAfter(v int) *TopicCompletionEventCreate {
	_c.mutation.SetXpAfter(v)
	return _c
}

// SetNillableXpAfter sets the "xp_after" field if the given value is not nil.
func (_c *TopicCompletionEventCreate) SetNillableXpAfter(v *int) *TopicCompletionEventCreate {
	if v != nil {
		_c.SetXpAfter(*v)
	}
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *TopicCompletionEventCreate) SetLevelAfter(v int) *TopicCompletionEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_c *TopicCompletionEventCreate) SetNillableLevelAfter(v *int) *TopicCompletionEventCreate {
	if v != nil {
		_c.SetLevelAfter(*v)
	}
	return _c
}

// Mutation returns the TopicCompletionEventMutation object of the builder.
func (_c *TopicCompletionEventCreate) Mutation() *TopicCompletionEventMutation {
	return _c.mutation
}

// Save creates the TopicCompletionEvent in the database.
func (_c *TopicCompletionEventCreate) Save(ctx context.Context) (*TopicCompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicCompletionEventCreate) SaveX(ctx context.Context) *TopicCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicCompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := topiccompletionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		v := topiccompletionevent.DefaultSubjectName
		_c.mutation.SetSubjectName(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := topiccompletionevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
	if _, ok := _c.mutation.XpAfter(); !ok {
		v := topiccompletionevent.DefaultXpAfter
		_c.mutation.SetXpAfter(v)
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		v := topiccompletionevent.DefaultLevelAfter
		_c.mutation.SetLevelAfter(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicCompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TopicCompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TopicCompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "TopicCompletionEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := topiccompletionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "TopicCompletionEvent.subject_name"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicCompletionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topiccompletionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "TopicCompletionEvent.xp_awarded"`)}
	}
	if _, ok := _c.mutation.XpAfter(); !ok {
		return &ValidationError{Name: "xp_after", err: errors.New(`ent: missing required field "TopicCompletionEvent.xp_after"`)}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "TopicCompletionEvent.level_after"`)}
	}
	return nil
}

func (_c *TopicCompletionEventCreate) sqlSave(ctx context.Context) (*TopicCompletionEvent, error) {
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

func (_c *TopicCompletionEventCreate) createSpec() (*TopicCompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicCompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topiccompletionevent.Table, sqlgraph.NewFieldSpec(topiccompletionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(topiccompletionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(topiccompletionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(topiccompletionevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(topiccompletionevent.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topiccompletionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.XpAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAfter, field.TypeInt, value)
		_node.XpAfter = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	return _node, _spec
}

// TopicCompletionEventCreateBulk is the builder for creating many TopicCompletionEvent entities in bulk.
type TopicCompletionEventCreateBulk struct {
	config
	err      error
	builders []*TopicCompletionEventCreate
}

// Save creates the TopicCompletionEvent entities in the database.
func (_c *TopicCompletionEventCreateBulk) Save(ctx context.Context) ([]*TopicCompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicCompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicCompletionEventMutation)
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
func (_c *TopicCompletionEventCreateBulk) SaveX(ctx context.Context) []*TopicCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
