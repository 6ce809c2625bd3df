// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/predicate"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/topiccompletionevent"
)

// TopicCompletionEventUpdate is the builder for updating TopicCompletionEvent entities.
type TopicCompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TopicCompletionEventMutation
}

// Where appends a list predicates to the TopicCompletionEventUpdate builder.
func (_u *TopicCompletionEventUpdate) Where(ps ...predicate.TopicCompletionEvent) *TopicCompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *TopicCompletionEventUpdate) SetSubjectID(v string) *TopicCompletionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableSubjectID(v *string) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *TopicCompletionEventUpdate) SetSubjectName(v string) *TopicCompletionEventUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableSubjectName(v *string) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicCompletionEventUpdate) SetTopic(v string) *TopicCompletionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableTopic(v *string) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *TopicCompletionEventUpdate) SetXpAwarded(v int) *TopicCompletionEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableXpAwarded(v *int) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *TopicCompletionEventUpdate) AddXpAwarded(v int) *TopicCompletionEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetXpAfter sets the "xp_after" field.
func (_u *TopicCompletionEventUpdate) SetXpAfter(v int) *TopicCompletionEventUpdate {
	_u.mutation.ResetXpAfter()
	_u.mutation.SetXpAfter(v)
	return _u
}

// SetNillableXpAfter sets the "xp_after" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableXpAfter(v *int) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetXpAfter(*v)
	}
	return _u
}

// AddXpAfter adds value to the "xp_after" field.
func (_u *TopicCompletionEventUpdate) AddXpAfter(v int) *TopicCompletionEventUpdate {
	_u.mutation.AddXpAfter(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *TopicCompletionEventUpdate) SetLevelAfter(v int) *TopicCompletionEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *TopicCompletionEventUpdate) SetNillableLevelAfter(v *int) *TopicCompletionEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *TopicCompletionEventUpdate) AddLevelAfter(v int) *TopicCompletionEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the TopicCompletionEventMutation object of the builder.
func (_u *TopicCompletionEventUpdate) Mutation() *TopicCompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicCompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicCompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicCompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicCompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicCompletionEventUpdate) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := topiccompletionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topiccompletionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicCompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topiccompletionevent.Table, topiccompletionevent.Columns, sqlgraph.NewFieldSpec(topiccompletionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(topiccompletionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(topiccompletionevent.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topiccompletionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(topiccompletionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAfter(); ok {
		_spec.AddField(topiccompletionevent.FieldXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(topiccompletionevent.FieldLevelAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topiccompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicCompletionEventUpdateOne is the builder for updating a single TopicCompletionEvent entity.
type TopicCompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicCompletionEventMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *TopicCompletionEventUpdateOne) SetSubjectID(v string) *TopicCompletionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableSubjectID(v *string) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *TopicCompletionEventUpdateOne) SetSubjectName(v string) *TopicCompletionEventUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableSubjectName(v *string) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicCompletionEventUpdateOne) SetTopic(v string) *TopicCompletionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableTopic(v *string) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *TopicCompletionEventUpdateOne) SetXpAwarded(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableXpAwarded(v *int) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *TopicCompletionEventUpdateOne) AddXpAwarded(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetXpAfter sets the "xp_after" field.
func (_u *TopicCompletionEventUpdateOne) SetXpAfter(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.ResetXpAfter()
	_u.mutation.SetXpAfter(v)
	return _u
}

// SetNillableXpAfter sets the "xp_after" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableXpAfter(v *int) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetXpAfter(*v)
	}
	return _u
}

// AddXpAfter adds value to the "xp_after" field.
func (_u *TopicCompletionEventUpdateOne) AddXpAfter(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.AddXpAfter(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *TopicCompletionEventUpdateOne) SetLevelAfter(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *TopicCompletionEventUpdateOne) SetNillableLevelAfter(v *int) *TopicCompletionEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *TopicCompletionEventUpdateOne) AddLevelAfter(v int) *TopicCompletionEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the TopicCompletionEventMutation object of the builder.
func (_u *TopicCompletionEventUpdateOne) Mutation() *TopicCompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicCompletionEventUpdate builder.
func (_u *TopicCompletionEventUpdateOne) Where(ps ...predicate.TopicCompletionEvent) *TopicCompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicCompletionEventUpdateOne) Select(field string, fields ...string) *TopicCompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicCompletionEvent entity.
func (_u *TopicCompletionEventUpdateOne) Save(ctx context.Context) (*TopicCompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicCompletionEventUpdateOne) SaveX(ctx context.Context) *TopicCompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicCompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicCompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicCompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := topiccompletionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topiccompletionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicCompletionEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicCompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *TopicCompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topiccompletionevent.Table, topiccompletionevent.Columns, sqlgraph.NewFieldSpec(topiccompletionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicCompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topiccompletionevent.FieldID)
		for _, f := range fields {
			if !topiccompletionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topiccompletionevent.FieldID {
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
		_spec.SetField(topiccompletionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(topiccompletionevent.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topiccompletionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(topiccompletionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAfter(); ok {
		_spec.AddField(topiccompletionevent.FieldXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(topiccompletionevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(topiccompletionevent.FieldLevelAfter, field.TypeInt, value)
	}
	_node = &TopicCompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topiccompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
