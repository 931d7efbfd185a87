package knowledge

// Model derives levels and recommendations from knowledge graphs.
// All methods are pure with respect to their inputs.
type Model struct {
	cfg Config
}

// NewModel creates a Model with the given configuration.
func NewModel(cfg Config) *Model {
	if len(cfg.Weights) == 0 {
		cfg = DefaultConfig()
	}
	return &Model{cfg: cfg}
}

// LevelAnalysis is the derived classification for a learner.
type LevelAnalysis struct {
	Level            Level
	OptimalChallenge Challenge
	Confidence       float64
}

// OverallScore computes the weight-normalized average mastery over
// topics present in both the graph and the weight table.
//
// A valid cached level on the graph short-circuits to a fixed proxy
// score, preserving manually-set overrides instead of recomputing from
// topics. An empty graph, or one with no topic overlapping the weight
// table, scores 0.
func (m *Model) OverallScore(g Graph) float64 {
	if g.Empty() {
		return 0.0
	}

	switch g.Level {
	case LevelBeginner:
		return 0.2
	case LevelIntermediate:
		return 0.5
	case LevelAdvanced:
		return 0.8
	}

	var weighted, totalWeight float64
	for _, w := range m.cfg.Weights {
		mastery, ok := g.Topics[w.Topic]
		if !ok {
			continue
		}
		weighted += clamp01(mastery) * w.Weight
		totalWeight += w.Weight
	}
	if totalWeight == 0 {
		return 0.0
	}
	return weighted / totalWeight
}

// Classify maps an overall score to a level. Monotonic in score.
func (m *Model) Classify(score float64) Level {
	switch {
	case score <= m.cfg.Thresholds.T1:
		return LevelBeginner
	case score <= m.cfg.Thresholds.T2:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// OptimalChallenge maps a level to its difficulty band.
func OptimalChallenge(l Level) Challenge {
	switch l {
	case LevelIntermediate:
		return ChallengeMedium
	case LevelAdvanced:
		return ChallengeHard
	default:
		return ChallengeEasy
	}
}

// AnalyzeLevel derives the full classification for a graph.
// An empty graph yields {beginner, easy, 0.0} exactly.
func (m *Model) AnalyzeLevel(g Graph) LevelAnalysis {
	if g.Empty() {
		return LevelAnalysis{
			Level:            LevelBeginner,
			OptimalChallenge: ChallengeEasy,
			Confidence:       0.0,
		}
	}
	score := m.OverallScore(g)
	level := m.Classify(score)
	return LevelAnalysis{
		Level:            level,
		OptimalChallenge: OptimalChallenge(level),
		Confidence:       score,
	}
}
