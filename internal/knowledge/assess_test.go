package knowledge

import (
	"math"
	"math/rand/v2"
	"testing"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestAssessFromAnswers_Empty(t *testing.T) {
	m := testModel()
	got := m.AssessFromAnswers(nil, fixedRand())
	if got.Level != LevelBeginner {
		t.Errorf("Level = %s, want beginner", got.Level)
	}
	if got.Accuracy != 0 || got.TotalCount != 0 || got.CorrectCount != 0 {
		t.Errorf("counts = %+v, want zeros", got)
	}
}

func TestAssessFromAnswers_Bands(t *testing.T) {
	m := testModel()
	tests := []struct {
		name    string
		correct int
		total   int
		want    Level
	}{
		{"all correct", 10, 10, LevelAdvanced},
		{"exactly 0.8", 8, 10, LevelAdvanced},
		{"exactly 0.5", 5, 10, LevelIntermediate},
		{"below half", 4, 10, LevelBeginner},
		{"none correct", 0, 10, LevelBeginner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]Answer, tt.total)
			for i := 0; i < tt.correct; i++ {
				answers[i].Correct = true
			}
			got := m.AssessFromAnswers(answers, fixedRand())
			if got.Level != tt.want {
				t.Errorf("Level = %s, want %s", got.Level, tt.want)
			}
			if got.CorrectCount != tt.correct || got.TotalCount != tt.total {
				t.Errorf("counts = %d/%d, want %d/%d",
					got.CorrectCount, got.TotalCount, tt.correct, tt.total)
			}
			wantAcc := float64(tt.correct) / float64(tt.total)
			if math.Abs(got.Accuracy-wantAcc) > 1e-9 {
				t.Errorf("Accuracy = %v, want %v", got.Accuracy, wantAcc)
			}
		})
	}
}

func TestAssessFromAnswers_KnowledgePointsInRange(t *testing.T) {
	m := testModel()
	answers := []Answer{{Correct: true}, {Correct: true}, {Correct: false}}

	got := m.AssessFromAnswers(answers, fixedRand())
	if len(got.KnowledgePoints) == 0 {
		t.Fatal("no knowledge points sampled")
	}
	// Samples are accuracy ± 0.1, clamped; outputs are nondeterministic
	// by design so assert the range, not exact values.
	for topic, mastery := range got.KnowledgePoints {
		if mastery < 0 || mastery > 1 {
			t.Errorf("KnowledgePoints[%s] = %v, outside [0,1]", topic, mastery)
		}
		// 0.105 allows for the two-decimal rounding of the ±0.1 noise.
		if math.Abs(mastery-got.Accuracy) > 0.105 {
			t.Errorf("KnowledgePoints[%s] = %v, more than 0.1 from accuracy %v",
				topic, mastery, got.Accuracy)
		}
		if topic == KeyLevel || topic == KeyUpdatedAt {
			t.Errorf("reserved key %q sampled as knowledge point", topic)
		}
	}
}
