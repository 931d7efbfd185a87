package knowledge

import (
	"math"
	"testing"
)

func testModel() *Model {
	return NewModel(DefaultConfig())
}

func TestOverallScore_EmptyGraph(t *testing.T) {
	m := testModel()
	if got := m.OverallScore(NewGraph()); got != 0.0 {
		t.Errorf("OverallScore(empty) = %v, want 0.0", got)
	}
}

func TestOverallScore_LevelOverride(t *testing.T) {
	m := testModel()
	tests := []struct {
		level Level
		want  float64
	}{
		{LevelBeginner, 0.2},
		{LevelIntermediate, 0.5},
		{LevelAdvanced, 0.8},
	}
	for _, tt := range tests {
		g := NewGraph()
		g.Level = tt.level
		// Topic values must be ignored when the override is set.
		g.Set("python_basics", 1.0)
		if got := m.OverallScore(g); got != tt.want {
			t.Errorf("OverallScore(level=%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestOverallScore_WeightedAverage(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Set("python_basics", 0.2)
	g.Set("data_structures", 0.1)
	g.Set("web_development", 0.0)
	g.Set("machine_learning", 0.0)

	// 0.2*0.3 + 0.1*0.2 = 0.08 over total weight 1.0
	got := m.OverallScore(g)
	if math.Abs(got-0.08) > 1e-9 {
		t.Errorf("OverallScore = %v, want 0.08", got)
	}
	if m.Classify(got) != LevelBeginner {
		t.Errorf("Classify(%v) = %s, want beginner", got, m.Classify(got))
	}
}

func TestOverallScore_NoOverlap(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Set("quantum_computing", 0.9)
	if got := m.OverallScore(g); got != 0.0 {
		t.Errorf("OverallScore(no overlap) = %v, want 0.0", got)
	}
}

func TestOverallScore_ClampsMastery(t *testing.T) {
	m := testModel()
	g := Graph{Topics: map[string]float64{
		"python_basics":    2.5,
		"data_structures":  -1.0,
		"web_development":  1.0,
		"machine_learning": 1.0,
	}}
	// Clamped: 1.0*0.3 + 0*0.2 + 1.0*0.2 + 1.0*0.3 = 0.8
	got := m.OverallScore(g)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("OverallScore = %v, want 0.8", got)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	m := testModel()
	order := map[Level]int{LevelBeginner: 0, LevelIntermediate: 1, LevelAdvanced: 2}

	prev := LevelBeginner
	for score := 0.0; score <= 1.0001; score += 0.01 {
		level := m.Classify(score)
		if order[level] < order[prev] {
			t.Fatalf("Classify not monotonic: %s after %s at score %v", level, prev, score)
		}
		prev = level
	}
}

func TestClassify_Boundaries(t *testing.T) {
	m := testModel()
	tests := []struct {
		score float64
		want  Level
	}{
		{0.0, LevelBeginner},
		{0.3, LevelBeginner},
		{0.31, LevelIntermediate},
		{0.7, LevelIntermediate},
		{0.71, LevelAdvanced},
		{1.0, LevelAdvanced},
	}
	for _, tt := range tests {
		if got := m.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeLevel_EmptyGraph(t *testing.T) {
	m := testModel()
	got := m.AnalyzeLevel(NewGraph())
	want := LevelAnalysis{Level: LevelBeginner, OptimalChallenge: ChallengeEasy, Confidence: 0.0}
	if got != want {
		t.Errorf("AnalyzeLevel(empty) = %+v, want %+v", got, want)
	}
}

func TestOptimalChallenge(t *testing.T) {
	tests := []struct {
		level Level
		want  Challenge
	}{
		{LevelBeginner, ChallengeEasy},
		{LevelIntermediate, ChallengeMedium},
		{LevelAdvanced, ChallengeHard},
	}
	for _, tt := range tests {
		if got := OptimalChallenge(tt.level); got != tt.want {
			t.Errorf("OptimalChallenge(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}
