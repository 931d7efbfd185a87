package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry is one completed learning activity. Append-only;
// queries order by completed_at descending.
type HistoryEntry struct {
	ent.Schema
}

func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			Default("general"),
		field.String("kind").
			Default("lesson").
			Comment("Activity kind: lesson, exercise, assessment"),
		field.Int("time_spent").
			Default(0).
			Comment("Minutes spent on the activity"),
		field.Bool("correct").
			Default(false).
			Comment("Whether an exercise activity was answered correctly"),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Opaque lesson payload carried through for reporting"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "completed_at"),
		index.Fields("learner_id", "topic"),
	}
}
