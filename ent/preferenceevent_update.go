// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathweaver/ent/predicate"
	"github.com/abhisek/pathweaver/ent/preferenceevent"
)

// PreferenceEventUpdate is the builder for updating PreferenceEvent entities.
type PreferenceEventUpdate struct {
	config
	hooks    []Hook
	mutation *PreferenceEventMutation
}

// Where appends a list predicates to the PreferenceEventUpdate builder.
func (_u *PreferenceEventUpdate) Where(ps ...predicate.PreferenceEvent) *PreferenceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PreferenceEventUpdate) SetLearnerID(v string) *PreferenceEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PreferenceEventUpdate) SetNillableLearnerID(v *string) *PreferenceEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PreferenceEventUpdate) SetCategory(v string) *PreferenceEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PreferenceEventUpdate) SetNillableCategory(v *string) *PreferenceEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *PreferenceEventUpdate) SetValue(v string) *PreferenceEventUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PreferenceEventUpdate) SetNillableValue(v *string) *PreferenceEventUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// Mutation returns the PreferenceEventMutation object of the builder.
func (_u *PreferenceEventUpdate) Mutation() *PreferenceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreferenceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreferenceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreferenceEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := preferenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := preferenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := preferenceevent.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.value": %w`, err)}
		}
	}
	return nil
}

func (_u *PreferenceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preferenceevent.Table, preferenceevent.Columns, sqlgraph.NewFieldSpec(preferenceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(preferenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(preferenceevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(preferenceevent.FieldValue, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preferenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreferenceEventUpdateOne is the builder for updating a single PreferenceEvent entity.
type PreferenceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreferenceEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PreferenceEventUpdateOne) SetLearnerID(v string) *PreferenceEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PreferenceEventUpdateOne) SetNillableLearnerID(v *string) *PreferenceEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PreferenceEventUpdateOne) SetCategory(v string) *PreferenceEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PreferenceEventUpdateOne) SetNillableCategory(v *string) *PreferenceEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *PreferenceEventUpdateOne) SetValue(v string) *PreferenceEventUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PreferenceEventUpdateOne) SetNillableValue(v *string) *PreferenceEventUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// Mutation returns the PreferenceEventMutation object of the builder.
func (_u *PreferenceEventUpdateOne) Mutation() *PreferenceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreferenceEventUpdate builder.
func (_u *PreferenceEventUpdateOne) Where(ps ...predicate.PreferenceEvent) *PreferenceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreferenceEventUpdateOne) Select(field string, fields ...string) *PreferenceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PreferenceEvent entity.
func (_u *PreferenceEventUpdateOne) Save(ctx context.Context) (*PreferenceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceEventUpdateOne) SaveX(ctx context.Context) *PreferenceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreferenceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreferenceEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := preferenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := preferenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := preferenceevent.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.value": %w`, err)}
		}
	}
	return nil
}

func (_u *PreferenceEventUpdateOne) sqlSave(ctx context.Context) (_node *PreferenceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preferenceevent.Table, preferenceevent.Columns, sqlgraph.NewFieldSpec(preferenceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PreferenceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preferenceevent.FieldID)
		for _, f := range fields {
			if !preferenceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preferenceevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(preferenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(preferenceevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(preferenceevent.FieldValue, field.TypeString, value)
	}
	_node = &PreferenceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preferenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
