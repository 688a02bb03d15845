package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PreferenceEvent records a preference-capture outcome, e.g. the result
// of a visual-vs-textual diagnostic.
type PreferenceEvent struct {
	ent.Schema
}

func (PreferenceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PreferenceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("value").NotEmpty(),
	}
}

func (PreferenceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("category"),
	}
}
