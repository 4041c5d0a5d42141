package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one scored diagnostic response for audit and
// accuracy queries.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.String("skill").NotEmpty(),
		field.Float("difficulty"),
		field.Bool("correct"),
		field.Float("ability_before"),
		field.Float("ability_after"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "skill"),
		index.Fields("session_id"),
	}
}
