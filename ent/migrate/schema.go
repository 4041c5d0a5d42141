// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "ability_before", Type: field.TypeFloat64},
		{Name: "ability_after", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_subject_skill",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "theta_before", Type: field.TypeFloat64},
		{Name: "theta_after", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeString},
		{Name: "next_review_at", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_subject_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4]},
			},
		},
	}
	// PlacementEventsColumns holds the columns for the "placement_events" table.
	PlacementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString},
		{Name: "ability", Type: field.TypeFloat64},
		{Name: "standard_error", Type: field.TypeFloat64},
		{Name: "label", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt},
	}
	// PlacementEventsTable holds the schema information for the "placement_events" table.
	PlacementEventsTable = &schema.Table{
		Name:       "placement_events",
		Columns:    PlacementEventsColumns,
		PrimaryKey: []*schema.Column{PlacementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "placementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[1]},
			},
			{
				Name:    "placementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[2]},
			},
			{
				Name:    "placementevent_subject",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		MasteryEventsTable,
		PlacementEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
