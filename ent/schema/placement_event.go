package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlacementEvent records a completed diagnostic placement.
type PlacementEvent struct {
	ent.Schema
}

func (PlacementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlacementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").NotEmpty(),
		field.Float("ability"),
		field.Float("standard_error"),
		field.String("label").NotEmpty(),
		field.String("grade").NotEmpty(),
		field.String("unit").Optional(),
		field.Int("attempts"),
	}
}

func (PlacementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
