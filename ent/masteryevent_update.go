// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jkasmommy/brainpod-sub000/ent/masteryevent"
	"github.com/jkasmommy/brainpod-sub000/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryEventUpdate) SetSubject(v string) *MasteryEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSubject(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdate) SetCorrect(v bool) *MasteryEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableCorrect(v *bool) *MasteryEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *MasteryEventUpdate) SetThetaBefore(v float64) *MasteryEventUpdate {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableThetaBefore(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *MasteryEventUpdate) AddThetaBefore(v float64) *MasteryEventUpdate {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *MasteryEventUpdate) SetThetaAfter(v float64) *MasteryEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableThetaAfter(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *MasteryEventUpdate) AddThetaAfter(v float64) *MasteryEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryEventUpdate) SetLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryEventUpdate) SetNextReviewAt(v string) *MasteryEventUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableNextReviewAt(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryEventUpdate) ClearNextReviewAt() *MasteryEventUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(masteryevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(masteryevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(masteryevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(masteryevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryevent.FieldNextReviewAt, field.TypeString, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryevent.FieldNextReviewAt, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetSubject sets the "subject" field.
func (_u *MasteryEventUpdateOne) SetSubject(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSubject(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdateOne) SetCorrect(v bool) *MasteryEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableCorrect(v *bool) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *MasteryEventUpdateOne) SetThetaBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableThetaBefore(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *MasteryEventUpdateOne) AddThetaBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *MasteryEventUpdateOne) SetThetaAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableThetaAfter(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *MasteryEventUpdateOne) AddThetaAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryEventUpdateOne) SetLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryEventUpdateOne) SetNextReviewAt(v string) *MasteryEventUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableNextReviewAt(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryEventUpdateOne) ClearNextReviewAt() *MasteryEventUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := masteryevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
		_spec.SetField(masteryevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(masteryevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(masteryevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(masteryevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(masteryevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryevent.FieldNextReviewAt, field.TypeString, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryevent.FieldNextReviewAt, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
