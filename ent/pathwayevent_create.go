// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathweaver/ent/pathwayevent"
)

// PathwayEventCreate is the builder for creating a PathwayEvent entity.
type PathwayEventCreate struct {
	config
	mutation *PathwayEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathwayEventCreate) SetSequence(v int64) *PathwayEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathwayEventCreate) SetTimestamp(v time.Time) *PathwayEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathwayEventCreate) SetNillableTimestamp(v *time.Time) *PathwayEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPathwayID sets the "pathway_id" field.
func (_c *PathwayEventCreate) SetPathwayID(v string) *PathwayEventCreate {
	_c.mutation.SetPathwayID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PathwayEventCreate) SetLearnerID(v string) *PathwayEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetObjectives sets the "objectives" field.
func (_c *PathwayEventCreate) SetObjectives(v int) *PathwayEventCreate {
	_c.mutation.SetObjectives(v)
	return _c
}

// SetActivities sets the "activities" field.
func (_c *PathwayEventCreate) SetActivities(v int) *PathwayEventCreate {
	_c.mutation.SetActivities(v)
	return _c
}

// SetSeed sets the "seed" field.
func (_c *PathwayEventCreate) SetSeed(v int64) *PathwayEventCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// Mutation returns the PathwayEventMutation object of the builder.
func (_c *PathwayEventCreate) Mutation() *PathwayEventMutation {
	return _c.mutation
}

// Save creates the PathwayEvent in the database.
func (_c *PathwayEventCreate) Save(ctx context.Context) (*PathwayEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathwayEventCreate) SaveX(ctx context.Context) *PathwayEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwayEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwayEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathwayEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathwayevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathwayEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathwayEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathwayEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PathwayID(); !ok {
		return &ValidationError{Name: "pathway_id", err: errors.New(`ent: missing required field "PathwayEvent.pathway_id"`)}
	}
	if v, ok := _c.mutation.PathwayID(); ok {
		if err := pathwayevent.PathwayIDValidator(v); err != nil {
			return &ValidationError{Name: "pathway_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.pathway_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PathwayEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := pathwayevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathwayEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Objectives(); !ok {
		return &ValidationError{Name: "objectives", err: errors.New(`ent: missing required field "PathwayEvent.objectives"`)}
	}
	if _, ok := _c.mutation.Activities(); !ok {
		return &ValidationError{Name: "activities", err: errors.New(`ent: missing required field "PathwayEvent.activities"`)}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "PathwayEvent.seed"`)}
	}
	return nil
}

func (_c *PathwayEventCreate) sqlSave(ctx context.Context) (*PathwayEvent, error) {
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

func (_c *PathwayEventCreate) createSpec() (*PathwayEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathwayEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathwayevent.Table, sqlgraph.NewFieldSpec(pathwayevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathwayevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathwayevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PathwayID(); ok {
		_spec.SetField(pathwayevent.FieldPathwayID, field.TypeString, value)
		_node.PathwayID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(pathwayevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Objectives(); ok {
		_spec.SetField(pathwayevent.FieldObjectives, field.TypeInt, value)
		_node.Objectives = value
	}
	if value, ok := _c.mutation.Activities(); ok {
		_spec.SetField(pathwayevent.FieldActivities, field.TypeInt, value)
		_node.Activities = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(pathwayevent.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	return _node, _spec
}

// PathwayEventCreateBulk is the builder for creating many PathwayEvent entities in bulk.
type PathwayEventCreateBulk struct {
	config
	err      error
	builders []*PathwayEventCreate
}

// Save creates the PathwayEvent entities in the database.
func (_c *PathwayEventCreateBulk) Save(ctx context.Context) ([]*PathwayEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathwayEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathwayEventMutation)
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
func (_c *PathwayEventCreateBulk) SaveX(ctx context.Context) []*PathwayEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathwayEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathwayEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
