package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathwayEvent records one pathway generation for audit and stats.
type PathwayEvent struct {
	ent.Schema
}

func (PathwayEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathwayEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("pathway_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.Int("objectives").
			Comment("Number of steps in the generated pathway"),
		field.Int("activities").
			Comment("Total content items across all steps"),
		field.Int64("seed").
			Comment("Shuffle seed used, for reproducing a run"),
	}
}

func (PathwayEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("pathway_id"),
	}
}
