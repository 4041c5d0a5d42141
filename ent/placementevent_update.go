// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jkasmommy/brainpod-sub000/ent/placementevent"
	"github.com/jkasmommy/brainpod-sub000/ent/predicate"
)

// PlacementEventUpdate is the builder for updating PlacementEvent entities.
type PlacementEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlacementEventMutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdate) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlacementEventUpdate) SetSubject(v string) *PlacementEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableSubject(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetAbility sets the "ability" field.
func (_u *PlacementEventUpdate) SetAbility(v float64) *PlacementEventUpdate {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableAbility(v *float64) *PlacementEventUpdate {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *PlacementEventUpdate) AddAbility(v float64) *PlacementEventUpdate {
	_u.mutation.AddAbility(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *PlacementEventUpdate) SetStandardError(v float64) *PlacementEventUpdate {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableStandardError(v *float64) *PlacementEventUpdate {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *PlacementEventUpdate) AddStandardError(v float64) *PlacementEventUpdate {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *PlacementEventUpdate) SetLabel(v string) *PlacementEventUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableLabel(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PlacementEventUpdate) SetGrade(v string) *PlacementEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableGrade(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PlacementEventUpdate) SetUnit(v string) *PlacementEventUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableUnit(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *PlacementEventUpdate) ClearUnit() *PlacementEventUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PlacementEventUpdate) SetAttempts(v int) *PlacementEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableAttempts(v *int) *PlacementEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PlacementEventUpdate) AddAttempts(v int) *PlacementEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdate) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlacementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlacementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := placementevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := placementevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := placementevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(placementevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(placementevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(placementevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(placementevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(placementevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(placementevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(placementevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(placementevent.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(placementevent.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(placementevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(placementevent.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlacementEventUpdateOne is the builder for updating a single PlacementEvent entity.
type PlacementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlacementEventMutation
}

// SetSubject sets the "subject" field.
func (_u *PlacementEventUpdateOne) SetSubject(v string) *PlacementEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableSubject(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetAbility sets the "ability" field.
func (_u *PlacementEventUpdateOne) SetAbility(v float64) *PlacementEventUpdateOne {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableAbility(v *float64) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *PlacementEventUpdateOne) AddAbility(v float64) *PlacementEventUpdateOne {
	_u.mutation.AddAbility(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *PlacementEventUpdateOne) SetStandardError(v float64) *PlacementEventUpdateOne {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableStandardError(v *float64) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *PlacementEventUpdateOne) AddStandardError(v float64) *PlacementEventUpdateOne {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *PlacementEventUpdateOne) SetLabel(v string) *PlacementEventUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableLabel(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PlacementEventUpdateOne) SetGrade(v string) *PlacementEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableGrade(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PlacementEventUpdateOne) SetUnit(v string) *PlacementEventUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableUnit(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *PlacementEventUpdateOne) ClearUnit() *PlacementEventUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PlacementEventUpdateOne) SetAttempts(v int) *PlacementEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableAttempts(v *int) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PlacementEventUpdateOne) AddAttempts(v int) *PlacementEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdateOne) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdateOne) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlacementEventUpdateOne) Select(field string, fields ...string) *PlacementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlacementEvent entity.
func (_u *PlacementEventUpdateOne) Save(ctx context.Context) (*PlacementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) SaveX(ctx context.Context) *PlacementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlacementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := placementevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := placementevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := placementevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdateOne) sqlSave(ctx context.Context) (_node *PlacementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlacementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, placementevent.FieldID)
		for _, f := range fields {
			if !placementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != placementevent.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(placementevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(placementevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(placementevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(placementevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(placementevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(placementevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(placementevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(placementevent.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(placementevent.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(placementevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(placementevent.FieldAttempts, field.TypeInt, value)
	}
	_node = &PlacementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
