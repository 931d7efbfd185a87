package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records one applied exercise or session feedback for
// audit and analytics. The knowledge graph holds only the smoothed
// result; these rows preserve the raw observations.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("kind").
			Comment("exercise or session"),
		field.Float("score").
			Comment("Raw score in [0,1] before difficulty adjustment"),
		field.Float("mastery_sample").
			Comment("Difficulty-adjusted sample fed into smoothing"),
		field.Float("mastery_after").
			Comment("Smoothed mastery persisted for the topic"),
		field.String("session_id").Optional(),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("topic"),
	}
}
