package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner is the per-user record holding the knowledge graph.
// The graph is stored as a single JSON map; `version` guards
// replace operations with optimistic concurrency so two concurrent
// feedback submissions cannot silently drop each other's update.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("External learner identity"),
		field.JSON("knowledge_graph", map[string]any{}).
			Comment("Topic mastery map plus level/updated_at metadata keys"),
		field.Int64("version").
			Default(0).
			Comment("Incremented on every graph replace; compare-and-set guard"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
