// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathweaver/ent/pathwayevent"
	"github.com/abhisek/pathweaver/ent/predicate"
)

// PathwayEventUpdate is the builder for updating PathwayEvent entities.
type PathwayEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathwayEventMutation
}

// Where appends a list predicates to the PathwayEventUpdate builder.
func (_u *PathwayEventUpdate) Where(ps ...predicate.PathwayEvent) *PathwayEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathwayID sets the "pathway_id" field.
func (_u *PathwayEventUpdate) SetPathwayID(v string) *PathwayEventUpdate {
	_u.mutation.SetPathwayID(v)
	return _u
}

// SetNillablePathwayID sets the "pathway_id" field if the given value is not nil.
func (_u *PathwayEventUpdate) SetNillablePathwayID(v *string) *PathwayEventUpdate {
	if v != nil {
		_u.SetPathwayID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathwayEventUpdate) SetLearnerID(v string) *PathwayEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathwayEventUpdate) SetNillableLearnerID(v *string) *PathwayEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *PathwayEventUpdate) SetObjectives(v int) *PathwayEventUpdate {
	_u.mutation.ResetObjectives()
	_u.mutation.SetObjectives(v)
	return _u
}

// SetNillableObjectives sets the "objectives" field if the given value is not nil.
func (_u *PathwayEventUpdate) SetNillableObjectives(v *int) *PathwayEventUpdate {
	if v != nil {
		_u.SetObjectives(*v)
	}
	return _u
}

// AddObjectives adds value to the "objectives" field.
func (_u *PathwayEventUpdate) AddObjectives(v int) *PathwayEventUpdate {
	_u.mutation.AddObjectives(v)
	return _u
}

// SetActivities sets the "activities" field.
func (_u *PathwayEventUpdate) SetActivities(v int) *PathwayEventUpdate {
	_u.mutation.ResetActivities()
	_u.mutation.SetActivities(v)
	return _u
}

// SetNillableActivities sets the "activities" field if the given value is not nil.
func (_u *PathwayEventUpdate) SetNillableActivities(v *int) *PathwayEventUpdate {
	if v != nil {
		_u.SetActivities(*v)
	}
	return _u
}

// AddActivities adds value to the "activities" field.
func (_u *PathwayEventUpdate) AddActivities(v int) *PathwayEventUpdate {
	_u.mutation.AddActivities(v)
	return _u
}

// SetSeed sets the "seed" field.
func (_u *PathwayEventUpdate) SetSeed(v int64) *PathwayEventUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *PathwayEventUpdate) SetNillableSeed(v *int64) *PathwayEventUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *PathwayEventUpdate) AddSeed(v int64) *PathwayEventUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// Mutation returns the PathwayEventMutation object of the builder.
func (_u *PathwayEventUpdate) Mutation() *PathwayEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathwayEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathwayEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayEventUpdate) check() error {
	if v, ok := _u.mutation.PathwayID(); ok {
		if err := pathwayevent.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.pathway_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathwayevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathwayevent.Table, pathwayevent.Columns, sqlgraph.NewFieldSpec(pathwayevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathwayID(); ok {
		_spec.SetField(pathwayevent.FieldPathwayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathwayevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(pathwayevent.FieldObjectives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectives(); ok {
		_spec.AddField(pathwayevent.FieldObjectives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(pathwayevent.FieldActivities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivities(); ok {
		_spec.AddField(pathwayevent.FieldActivities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(pathwayevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(pathwayevent.FieldSeed, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathwayevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathwayEventUpdateOne is the builder for updating a single PathwayEvent entity.
type PathwayEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathwayEventMutation
}

// SetPathwayID sets the "pathway_id" field.
func (_u *PathwayEventUpdateOne) SetPathwayID(v string) *PathwayEventUpdateOne {
	_u.mutation.SetPathwayID(v)
	return _u
}

// SetNillablePathwayID sets the "pathway_id" field if the given value is not nil.
func (_u *PathwayEventUpdateOne) SetNillablePathwayID(v *string) *PathwayEventUpdateOne {
	if v != nil {
		_u.SetPathwayID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathwayEventUpdateOne) SetLearnerID(v string) *PathwayEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathwayEventUpdateOne) SetNillableLearnerID(v *string) *PathwayEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *PathwayEventUpdateOne) SetObjectives(v int) *PathwayEventUpdateOne {
	_u.mutation.ResetObjectives()
	_u.mutation.SetObjectives(v)
	return _u
}

// SetNillableObjectives sets the "objectives" field if the given value is not nil.
func (_u *PathwayEventUpdateOne) SetNillableObjectives(v *int) *PathwayEventUpdateOne {
	if v != nil {
		_u.SetObjectives(*v)
	}
	return _u
}

// AddObjectives adds value to the "objectives" field.
func (_u *PathwayEventUpdateOne) AddObjectives(v int) *PathwayEventUpdateOne {
	_u.mutation.AddObjectives(v)
	return _u
}

// SetActivities sets the "activities" field.
func (_u *PathwayEventUpdateOne) SetActivities(v int) *PathwayEventUpdateOne {
	_u.mutation.ResetActivities()
	_u.mutation.SetActivities(v)
	return _u
}

// SetNillableActivities sets the "activities" field if the given value is not nil.
func (_u *PathwayEventUpdateOne) SetNillableActivities(v *int) *PathwayEventUpdateOne {
	if v != nil {
		_u.SetActivities(*v)
	}
	return _u
}

// AddActivities adds value to the "activities" field.
func (_u *PathwayEventUpdateOne) AddActivities(v int) *PathwayEventUpdateOne {
	_u.mutation.AddActivities(v)
	return _u
}

// SetSeed sets the "seed" field.
func (_u *PathwayEventUpdateOne) SetSeed(v int64) *PathwayEventUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *PathwayEventUpdateOne) SetNillableSeed(v *int64) *PathwayEventUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *PathwayEventUpdateOne) AddSeed(v int64) *PathwayEventUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// Mutation returns the PathwayEventMutation object of the builder.
func (_u *PathwayEventUpdateOne) Mutation() *PathwayEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathwayEventUpdate builder.
func (_u *PathwayEventUpdateOne) Where(ps ...predicate.PathwayEvent) *PathwayEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathwayEventUpdateOne) Select(field string, fields ...string) *PathwayEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathwayEvent entity.
func (_u *PathwayEventUpdateOne) Save(ctx context.Context) (*PathwayEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayEventUpdateOne) SaveX(ctx context.Context) *PathwayEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathwayEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayEventUpdateOne) check() error {
	if v, ok := _u.mutation.PathwayID(); ok {
		if err := pathwayevent.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.pathway_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathwayevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayEventUpdateOne) sqlSave(ctx context.Context) (_node *PathwayEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathwayevent.Table, pathwayevent.Columns, sqlgraph.NewFieldSpec(pathwayevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathwayEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathwayevent.FieldID)
		for _, f := range fields {
			if !pathwayevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathwayevent.FieldID {
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
	if value, ok := _u.mutation.PathwayID(); ok {
		_spec.SetField(pathwayevent.FieldPathwayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathwayevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(pathwayevent.FieldObjectives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectives(); ok {
		_spec.AddField(pathwayevent.FieldObjectives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(pathwayevent.FieldActivities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivities(); ok {
		_spec.AddField(pathwayevent.FieldActivities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(pathwayevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(pathwayevent.FieldSeed, field.TypeInt64, value)
	}
	_node = &PathwayEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathwayevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
