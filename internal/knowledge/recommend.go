package knowledge

import "sort"

// weakMasteryCeiling is the mastery below which a studied topic still
// needs reinforcement.
const weakMasteryCeiling = 0.7

// RecommendNext selects up to n topics to study next: studied topics
// with mastery below 0.7 first, weakest first, then not-yet-studied
// topics from the weight table in table order.
func (m *Model) RecommendNext(g Graph, n int) []string {
	if n <= 0 {
		return nil
	}

	type candidate struct {
		topic   string
		mastery float64
	}

	var weak []candidate
	for _, topic := range m.cfg.TopicOrder() {
		mastery, studied := g.Topics[topic]
		if studied && mastery < weakMasteryCeiling {
			weak = append(weak, candidate{topic, mastery})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].mastery < weak[j].mastery
	})

	out := make([]string, 0, n)
	for _, c := range weak {
		if len(out) == n {
			return out
		}
		out = append(out, c.topic)
	}

	// Backfill with unstudied topics in table order.
	for _, topic := range m.cfg.TopicOrder() {
		if len(out) == n {
			break
		}
		if _, studied := g.Topics[topic]; !studied {
			out = append(out, topic)
		}
	}
	return out
}
