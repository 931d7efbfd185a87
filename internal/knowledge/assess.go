package knowledge

import (
	"math"
	"math/rand/v2"
)

// Answer is one diagnostic question outcome.
type Answer struct {
	Topic   string
	Correct bool
}

// Assessment is the result of a question-based knowledge assessment.
type Assessment struct {
	Level        Level
	CorrectCount int
	TotalCount   int
	Accuracy     float64
	// KnowledgePoints is a synthetic per-topic mastery sample derived
	// from overall accuracy plus noise. A stand-in for real per-topic
	// diagnostic inference.
	KnowledgePoints map[string]float64
}

// AssessFromAnswers bands a learner by raw accuracy over a set of
// answered questions: ≥0.8 advanced, ≥0.5 intermediate, else beginner.
// No answers at all means beginner with accuracy 0.
func (m *Model) AssessFromAnswers(answers []Answer, rng *rand.Rand) Assessment {
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}

	total := len(answers)
	var accuracy float64
	level := LevelBeginner
	if total > 0 {
		accuracy = float64(correct) / float64(total)
		switch {
		case accuracy >= 0.8:
			level = LevelAdvanced
		case accuracy >= 0.5:
			level = LevelIntermediate
		}
	}

	return Assessment{
		Level:           level,
		CorrectCount:    correct,
		TotalCount:      total,
		Accuracy:        accuracy,
		KnowledgePoints: m.sampleKnowledgePoints(accuracy, rng),
	}
}

// sampleKnowledgePoints picks a random subset of configured topics and
// assigns each a mastery of accuracy ± 0.1, clamped and rounded to two
// decimals.
func (m *Model) sampleKnowledgePoints(accuracy float64, rng *rand.Rand) map[string]float64 {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	topics := m.cfg.TopicOrder()
	n := 1 + rng.IntN(len(topics))
	rng.Shuffle(len(topics), func(i, j int) {
		topics[i], topics[j] = topics[j], topics[i]
	})

	points := make(map[string]float64, n)
	for _, topic := range topics[:n] {
		variation := rng.Float64()*0.2 - 0.1
		points[topic] = round2(clamp01(accuracy + variation))
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
