package feedback

import (
	"fmt"
	"sort"
	"strings"
)

// scoreLevel bands a score into a human-readable grade.
func scoreLevel(score float64) string {
	switch {
	case score >= 0.9:
		return "excellent"
	case score >= 0.8:
		return "good"
	case score >= 0.7:
		return "fair"
	case score >= 0.6:
		return "passing"
	default:
		return "needs improvement"
	}
}

// buildSuggestion assembles tiered feedback text: a score-band opener,
// one remark per updated topic, and next-step hints.
func buildSuggestion(score float64, topicMastery map[string]float64) Suggestion {
	var lines []string
	switch {
	case score < 0.6:
		lines = append(lines,
			"You struggled with this one; review the related material.",
			"A more basic tutorial or a worked example may help.")
	case score < 0.8:
		lines = append(lines,
			"You mostly have this down, with room to improve.",
			"A few more exercises will consolidate it.")
	default:
		lines = append(lines,
			"You have a solid grasp of this topic.",
			"Try a harder challenge next.")
	}

	topics := make([]string, 0, len(topicMastery))
	for topic := range topicMastery {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		switch mastery := topicMastery[topic]; {
		case mastery < 0.5:
			lines = append(lines, fmt.Sprintf("More practice needed on %s.", topic))
		case mastery < 0.8:
			lines = append(lines, fmt.Sprintf("Keep working on %s.", topic))
		default:
			lines = append(lines, fmt.Sprintf("Strong performance on %s.", topic))
		}
	}

	return Suggestion{
		ScoreLevel:  scoreLevel(score),
		Suggestions: lines,
		NextSteps:   nextSteps(score),
	}
}

func nextSteps(score float64) []string {
	switch {
	case score < 0.6:
		return []string{
			"Review the core concepts",
			"Walk through a worked solution",
			"Ask for help",
		}
	case score < 0.8:
		return []string{
			"Do more practice exercises",
			"Read the detailed explanations",
			"Discuss with other learners",
		}
	default:
		return []string{
			"Attempt harder problems",
			"Move on to advanced material",
			"Help other learners",
		}
	}
}

// sessionSuggestions builds the session-level advice from the average
// score band plus a pointer at the weak topics, when any.
func sessionSuggestions(avgScore float64, weaknesses []string) []string {
	var out []string
	switch {
	case avgScore < 0.6:
		out = append(out, "This session was rough; slow down and make sure each concept lands.")
	case avgScore < 0.8:
		out = append(out, "Good session; keep it up and shore up the weaker topics.")
	default:
		out = append(out, "Excellent session; you are ready for harder material.")
	}
	if len(weaknesses) > 0 {
		out = append(out, "Focus on: "+strings.Join(weaknesses, ", "))
	}
	return out
}
