package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records one per-skill mastery update for audit and
// analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Bool("correct"),
		field.Float("theta_before"),
		field.Float("theta_after"),
		field.String("level").NotEmpty(),
		field.String("next_review_at").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "skill_id"),
	}
}
