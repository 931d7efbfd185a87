package knowledge

import (
	"encoding/json"
	"time"
)

// Reserved keys in the persisted map layout. They carry metadata, not
// topic mastery, and must never enter a weighted or statistical
// computation over topics.
const (
	KeyLevel     = "level"
	KeyUpdatedAt = "updated_at"
)

// Graph is a learner's knowledge graph: topic → mastery in [0,1],
// plus a cached level override and an update timestamp. In memory the
// metadata lives in dedicated fields so topic iteration can never pick
// it up; on disk it shares the map under the reserved keys.
type Graph struct {
	Topics    map[string]float64
	Level     Level // cached classification override; empty when unset
	UpdatedAt time.Time
}

// NewGraph returns an empty graph.
func NewGraph() Graph {
	return Graph{Topics: make(map[string]float64)}
}

// Empty reports whether the graph carries no information at all.
func (g Graph) Empty() bool {
	return len(g.Topics) == 0 && g.Level == "" && g.UpdatedAt.IsZero()
}

// Mastery returns the clamped mastery for a topic, 0 if absent.
func (g Graph) Mastery(topic string) float64 {
	return clamp01(g.Topics[topic])
}

// Set stores a mastery value, clamped to [0,1]. Reserved keys are
// silently ignored so a malformed caller cannot corrupt the metadata.
func (g *Graph) Set(topic string, mastery float64) {
	if topic == KeyLevel || topic == KeyUpdatedAt {
		return
	}
	if g.Topics == nil {
		g.Topics = make(map[string]float64)
	}
	g.Topics[topic] = clamp01(mastery)
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	out := Graph{Level: g.Level, UpdatedAt: g.UpdatedAt}
	out.Topics = make(map[string]float64, len(g.Topics))
	for k, v := range g.Topics {
		out.Topics[k] = v
	}
	return out
}

// ToMap flattens the graph into the persisted layout: one map with
// topic masteries plus the reserved level/updated_at keys.
func (g Graph) ToMap() map[string]any {
	m := make(map[string]any, len(g.Topics)+2)
	for topic, mastery := range g.Topics {
		m[topic] = mastery
	}
	if g.Level != "" {
		m[KeyLevel] = string(g.Level)
	}
	if !g.UpdatedAt.IsZero() {
		m[KeyUpdatedAt] = g.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return m
}

// GraphFromMap parses the persisted layout back into a Graph.
// Non-numeric topic values default to 0.5, matching the original
// tolerance for dirty data. Unparseable metadata is dropped.
func GraphFromMap(m map[string]any) Graph {
	g := NewGraph()
	for key, raw := range m {
		switch key {
		case KeyLevel:
			if s, ok := raw.(string); ok {
				g.Level = Level(s)
			}
		case KeyUpdatedAt:
			if s, ok := raw.(string); ok {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					g.UpdatedAt = t
				}
			}
		default:
			g.Topics[key] = clamp01(numeric(raw, 0.5))
		}
	}
	return g
}

func numeric(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
