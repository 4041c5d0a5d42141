// Code generated by ent, DO NOT EDIT.

package placementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jkasmommy/brainpod-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSubject, v))
}

// Ability applies equality check predicate on the "ability" field. It's identical to AbilityEQ.
func Ability(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAbility, v))
}

// StandardError applies equality check predicate on the "standard_error" field. It's identical to StandardErrorEQ.
func StandardError(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldStandardError, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldGrade, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUnit, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAttempts, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSubject, v))
}

// AbilityEQ applies the EQ predicate on the "ability" field.
func AbilityEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAbility, v))
}

// AbilityNEQ applies the NEQ predicate on the "ability" field.
func AbilityNEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldAbility, v))
}

// AbilityIn applies the In predicate on the "ability" field.
func AbilityIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldAbility, vs...))
}

// AbilityNotIn applies the NotIn predicate on the "ability" field.
func AbilityNotIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldAbility, vs...))
}

// AbilityGT applies the GT predicate on the "ability" field.
func AbilityGT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldAbility, v))
}

// AbilityGTE applies the GTE predicate on the "ability" field.
func AbilityGTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldAbility, v))
}

// AbilityLT applies the LT predicate on the "ability" field.
func AbilityLT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldAbility, v))
}

// AbilityLTE applies the LTE predicate on the "ability" field.
func AbilityLTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldAbility, v))
}

// StandardErrorEQ applies the EQ predicate on the "standard_error" field.
func StandardErrorEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldStandardError, v))
}

// StandardErrorNEQ applies the NEQ predicate on the "standard_error" field.
func StandardErrorNEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldStandardError, v))
}

// StandardErrorIn applies the In predicate on the "standard_error" field.
func StandardErrorIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldStandardError, vs...))
}

// StandardErrorNotIn applies the NotIn predicate on the "standard_error" field.
func StandardErrorNotIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldStandardError, vs...))
}

// StandardErrorGT applies the GT predicate on the "standard_error" field.
func StandardErrorGT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldStandardError, v))
}

// StandardErrorGTE applies the GTE predicate on the "standard_error" field.
func StandardErrorGTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldStandardError, v))
}

// StandardErrorLT applies the LT predicate on the "standard_error" field.
func StandardErrorLT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldStandardError, v))
}

// StandardErrorLTE applies the LTE predicate on the "standard_error" field.
func StandardErrorLTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldStandardError, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldLabel, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldGrade, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldUnit, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.NotPredicates(p))
}
