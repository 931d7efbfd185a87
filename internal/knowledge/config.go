package knowledge

// Level classifies a learner's overall command of the curriculum.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Challenge is the difficulty band matched to a level.
type Challenge string

const (
	ChallengeEasy   Challenge = "easy"
	ChallengeMedium Challenge = "medium"
	ChallengeHard   Challenge = "hard"
)

// TopicWeight is one row of the static topic weight table.
type TopicWeight struct {
	Topic  string
	Weight float64
}

// Thresholds holds the ordered level cut points. Monotonic: a score at
// or below T1 is beginner, at or below T2 intermediate, else advanced.
type Thresholds struct {
	T1 float64
	T2 float64
}

// Config is the static tuning data for the knowledge model. It is
// configuration, not learner data: weights need not sum to 1, and the
// overall score normalizes by the weight mass actually present.
type Config struct {
	Weights    []TopicWeight
	Thresholds Thresholds
}

// DefaultConfig returns the seed topic weights and thresholds.
func DefaultConfig() Config {
	return Config{
		Weights: []TopicWeight{
			{Topic: "python_basics", Weight: 0.3},
			{Topic: "data_structures", Weight: 0.2},
			{Topic: "web_development", Weight: 0.2},
			{Topic: "machine_learning", Weight: 0.3},
		},
		Thresholds: Thresholds{T1: 0.3, T2: 0.7},
	}
}

// WeightFor returns the configured weight for a topic, 0 if unknown.
func (c Config) WeightFor(topic string) float64 {
	for _, w := range c.Weights {
		if w.Topic == topic {
			return w.Weight
		}
	}
	return 0
}

// TopicOrder returns the topics in table order.
func (c Config) TopicOrder() []string {
	out := make([]string, len(c.Weights))
	for i, w := range c.Weights {
		out[i] = w.Topic
	}
	return out
}
