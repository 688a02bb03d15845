// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathweaver/ent/preferenceevent"
)

// PreferenceEventCreate is the builder for creating a PreferenceEvent entity.
type PreferenceEventCreate struct {
	config
	mutation *PreferenceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PreferenceEventCreate) SetSequence(v int64) *PreferenceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PreferenceEventCreate) SetTimestamp(v time.Time) *PreferenceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PreferenceEventCreate) SetNillableTimestamp(v *time.Time) *PreferenceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PreferenceEventCreate) SetLearnerID(v string) *PreferenceEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PreferenceEventCreate) SetCategory(v string) *PreferenceEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *PreferenceEventCreate) SetValue(v string) *PreferenceEventCreate {
	_c.mutation.SetValue(v)
	return _c
}

// Mutation returns the PreferenceEventMutation object of the builder.
func (_c *PreferenceEventCreate) Mutation() *PreferenceEventMutation {
	return _c.mutation
}

// Save creates the PreferenceEvent in the database.
func (_c *PreferenceEventCreate) Save(ctx context.Context) (*PreferenceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreferenceEventCreate) SaveX(ctx context.Context) *PreferenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreferenceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := preferenceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreferenceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PreferenceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PreferenceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PreferenceEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := preferenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PreferenceEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := preferenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "PreferenceEvent.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := preferenceevent.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "PreferenceEvent.value": %w`, err)}
		}
	}
	return nil
}

func (_c *PreferenceEventCreate) sqlSave(ctx context.Context) (*PreferenceEvent, error) {
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

func (_c *PreferenceEventCreate) createSpec() (*PreferenceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PreferenceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preferenceevent.Table, sqlgraph.NewFieldSpec(preferenceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(preferenceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(preferenceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(preferenceevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(preferenceevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(preferenceevent.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	return _node, _spec
}

// PreferenceEventCreateBulk is the builder for creating many PreferenceEvent entities in bulk.
type PreferenceEventCreateBulk struct {
	config
	err      error
	builders []*PreferenceEventCreate
}

// Save creates the PreferenceEvent entities in the database.
func (_c *PreferenceEventCreateBulk) Save(ctx context.Context) ([]*PreferenceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PreferenceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreferenceEventMutation)
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
func (_c *PreferenceEventCreateBulk) SaveX(ctx context.Context) []*PreferenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
