// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jkasmommy/brainpod-sub000/ent/answerevent"
	"github.com/jkasmommy/brainpod-sub000/ent/masteryevent"
	"github.com/jkasmommy/brainpod-sub000/ent/placementevent"
	"github.com/jkasmommy/brainpod-sub000/ent/schema"
	"github.com/jkasmommy/brainpod-sub000/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[1].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[2].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescSkill is the schema descriptor for skill field.
	answereventDescSkill := answereventFields[3].Descriptor()
	// answerevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	answerevent.SkillValidator = answereventDescSkill.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSubject is the schema descriptor for subject field.
	masteryeventDescSubject := masteryeventFields[0].Descriptor()
	// masteryevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	masteryevent.SubjectValidator = masteryeventDescSubject.Validators[0].(func(string) error)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[1].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescLevel is the schema descriptor for level field.
	masteryeventDescLevel := masteryeventFields[5].Descriptor()
	// masteryevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryevent.LevelValidator = masteryeventDescLevel.Validators[0].(func(string) error)
	placementeventMixin := schema.PlacementEvent{}.Mixin()
	placementeventMixinFields0 := placementeventMixin[0].Fields()
	_ = placementeventMixinFields0
	placementeventFields := schema.PlacementEvent{}.Fields()
	_ = placementeventFields
	// placementeventDescTimestamp is the schema descriptor for timestamp field.
	placementeventDescTimestamp := placementeventMixinFields0[1].Descriptor()
	// placementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	placementevent.DefaultTimestamp = placementeventDescTimestamp.Default.(func() time.Time)
	// placementeventDescSubject is the schema descriptor for subject field.
	placementeventDescSubject := placementeventFields[0].Descriptor()
	// placementevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	placementevent.SubjectValidator = placementeventDescSubject.Validators[0].(func(string) error)
	// placementeventDescLabel is the schema descriptor for label field.
	placementeventDescLabel := placementeventFields[3].Descriptor()
	// placementevent.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	placementevent.LabelValidator = placementeventDescLabel.Validators[0].(func(string) error)
	// placementeventDescGrade is the schema descriptor for grade field.
	placementeventDescGrade := placementeventFields[4].Descriptor()
	// placementevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	placementevent.GradeValidator = placementeventDescGrade.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
