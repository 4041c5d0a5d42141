// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jkasmommy/brainpod-sub000/ent/placementevent"
)

// PlacementEventCreate is the builder for creating a PlacementEvent entity.
type PlacementEventCreate struct {
	config
	mutation *PlacementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlacementEventCreate) SetSequence(v int64) *PlacementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlacementEventCreate) SetTimestamp(v time.Time) *PlacementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableTimestamp(v *time.Time) *PlacementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PlacementEventCreate) SetSubject(v string) *PlacementEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetAbility sets the "ability" field.
func (_c *PlacementEventCreate) SetAbility(v float64) *PlacementEventCreate {
	_c.mutation.SetAbility(v)
	return _c
}

// SetStandardError sets the "standard_error" field.
func (_c *PlacementEventCreate) SetStandardError(v float64) *PlacementEventCreate {
	_c.mutation.SetStandardError(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *PlacementEventCreate) SetLabel(v string) *PlacementEventCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PlacementEventCreate) SetGrade(v string) *PlacementEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *PlacementEventCreate) SetUnit(v string) *PlacementEventCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableUnit(v *string) *PlacementEventCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PlacementEventCreate) SetAttempts(v int) *PlacementEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_c *PlacementEventCreate) Mutation() *PlacementEventMutation {
	return _c.mutation
}

// Save creates the PlacementEvent in the database.
func (_c *PlacementEventCreate) Save(ctx context.Context) (*PlacementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlacementEventCreate) SaveX(ctx context.Context) *PlacementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlacementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := placementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlacementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlacementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlacementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PlacementEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := placementevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ability(); !ok {
		return &ValidationError{Name: "ability", err: errors.New(`ent: missing required field "PlacementEvent.ability"`)}
	}
	if _, ok := _c.mutation.StandardError(); !ok {
		return &ValidationError{Name: "standard_error", err: errors.New(`ent: missing required field "PlacementEvent.standard_error"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "PlacementEvent.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := placementevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "PlacementEvent.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := placementevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PlacementEvent.attempts"`)}
	}
	return nil
}

func (_c *PlacementEventCreate) sqlSave(ctx context.Context) (*PlacementEvent, error) {
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

func (_c *PlacementEventCreate) createSpec() (*PlacementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlacementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(placementevent.Table, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(placementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(placementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(placementevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Ability(); ok {
		_spec.SetField(placementevent.FieldAbility, field.TypeFloat64, value)
		_node.Ability = value
	}
	if value, ok := _c.mutation.StandardError(); ok {
		_spec.SetField(placementevent.FieldStandardError, field.TypeFloat64, value)
		_node.StandardError = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(placementevent.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(placementevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(placementevent.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(placementevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	return _node, _spec
}

// PlacementEventCreateBulk is the builder for creating many PlacementEvent entities in bulk.
type PlacementEventCreateBulk struct {
	config
	err      error
	builders []*PlacementEventCreate
}

// Save creates the PlacementEvent entities in the database.
func (_c *PlacementEventCreateBulk) Save(ctx context.Context) ([]*PlacementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlacementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlacementEventMutation)
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
func (_c *PlacementEventCreateBulk) SaveX(ctx context.Context) []*PlacementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
