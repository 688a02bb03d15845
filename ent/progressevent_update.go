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
	"github.com/abhisek/pathweaver/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressEventUpdate) SetLearnerID(v string) *ProgressEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableLearnerID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *ProgressEventUpdate) SetObjectiveID(v string) *ProgressEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableObjectiveID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *ProgressEventUpdate) SetCompletedCount(v int) *ProgressEventUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableCompletedCount(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *ProgressEventUpdate) AddCompletedCount(v int) *ProgressEventUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := progressevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(progressevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(progressevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(progressevent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(progressevent.FieldCompletedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressEventUpdateOne) SetLearnerID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableLearnerID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *ProgressEventUpdateOne) SetObjectiveID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableObjectiveID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *ProgressEventUpdateOne) SetCompletedCount(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableCompletedCount(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *ProgressEventUpdateOne) AddCompletedCount(v int) *ProgressEventUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := progressevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
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
		_spec.SetField(progressevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(progressevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(progressevent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(progressevent.FieldCompletedCount, field.TypeInt, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
