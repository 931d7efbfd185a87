package path

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/knowledge"
)

func beginnerGraph() knowledge.Graph {
	g := knowledge.NewGraph()
	g.Set("python_basics", 0.1)
	return g
}

func advancedGraph() knowledge.Graph {
	g := knowledge.NewGraph()
	g.Set("python_basics", 0.9)
	g.Set("data_structures", 0.9)
	g.Set("web_development", 0.9)
	g.Set("machine_learning", 0.9)
	return g
}

func TestGenerate_BeginnerPythonPath(t *testing.T) {
	p := NewPlanner(nil, nil)

	got, err := p.Generate(context.Background(), "amy", beginnerGraph(), "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Level != knowledge.LevelBeginner {
		t.Errorf("level = %q, want beginner", got.Level)
	}
	wantTopics := []string{"variables", "data_types", "control_structures", "functions"}
	if len(got.Steps) != len(wantTopics) {
		t.Fatalf("steps = %d, want %d", len(got.Steps), len(wantTopics))
	}
	for i, want := range wantTopics {
		if got.Steps[i].Topic != want {
			t.Errorf("step %d topic = %q, want %q", i, got.Steps[i].Topic, want)
		}
	}
	if got.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if !got.AdaptedAt.IsZero() || got.Adaptation != nil {
		t.Error("fresh path must not carry adaptation metadata")
	}
}

func TestGenerate_LevelPicksSequence(t *testing.T) {
	p := NewPlanner(nil, nil)

	got, err := p.Generate(context.Background(), "amy", advancedGraph(), "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Level != knowledge.LevelAdvanced {
		t.Fatalf("level = %q, want advanced", got.Level)
	}
	if got.Steps[0].Topic != "memory_management" {
		t.Errorf("first topic = %q, want memory_management", got.Steps[0].Topic)
	}
}

func TestGenerate_UnknownGoalFallsBackToDefault(t *testing.T) {
	p := NewPlanner(nil, nil)

	got, err := p.Generate(context.Background(), "amy", beginnerGraph(), "underwater_basket_weaving")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Goal != DefaultGoal {
		t.Errorf("goal = %q, want %q", got.Goal, DefaultGoal)
	}
	if len(got.Steps) == 0 {
		t.Error("default goal must still produce steps")
	}
}

func TestGenerate_TimeEstimatesAndPrerequisites(t *testing.T) {
	p := NewPlanner(nil, nil)

	got, err := p.Generate(context.Background(), "amy", beginnerGraph(), "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Beginner multiplier is 1.0: the base table applies directly.
	wantMins := map[string]int{
		"variables":          15,
		"data_types":         20,
		"control_structures": 25,
		"functions":          30,
	}
	for _, step := range got.Steps {
		if step.EstimatedMins != wantMins[step.Topic] {
			t.Errorf("%s estimate = %d, want %d", step.Topic, step.EstimatedMins, wantMins[step.Topic])
		}
	}

	last := got.Steps[len(got.Steps)-1]
	if !reflect.DeepEqual(last.Prerequisites, []string{"variables", "data_types"}) {
		t.Errorf("functions prerequisites = %v", last.Prerequisites)
	}
	if got.Steps[0].Prerequisites != nil {
		t.Errorf("variables prerequisites = %v, want none", got.Steps[0].Prerequisites)
	}
}

func TestGenerate_AttachesMaterials(t *testing.T) {
	p := NewPlanner(nil, nil)

	got, err := p.Generate(context.Background(), "amy", beginnerGraph(), "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, step := range got.Steps {
		if step.Explanation == "" || len(step.Exercises) == 0 {
			t.Errorf("step %s missing materials", step.Topic)
		}
	}
}

func TestEstimateTime_LevelMultipliers(t *testing.T) {
	tests := []struct {
		topic string
		level knowledge.Level
		want  int
	}{
		{"decorators", knowledge.LevelBeginner, 40},
		{"decorators", knowledge.LevelIntermediate, 48},
		{"decorators", knowledge.LevelAdvanced, 60},
		{"generators", knowledge.LevelIntermediate, 42},
		{"variables", knowledge.LevelAdvanced, 22}, // 15*1.5 floors to 22
		{"unknown_topic", knowledge.LevelBeginner, 30},
		{"unknown_topic", knowledge.LevelIntermediate, 36},
	}
	for _, tt := range tests {
		if got := estimateTime(tt.topic, tt.level); got != tt.want {
			t.Errorf("estimateTime(%s, %s) = %d, want %d", tt.topic, tt.level, got, tt.want)
		}
	}
}

func fivePathSteps() []Step {
	return []Step{
		{Topic: "a", EstimatedMins: 10},
		{Topic: "b", EstimatedMins: 10},
		{Topic: "c", EstimatedMins: 10},
		{Topic: "d", EstimatedMins: 10},
		{Topic: "e", EstimatedMins: 10},
	}
}

func TestAdapt_HighDifficultyPrependsReview(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Goal: "python_basics", Level: knowledge.LevelBeginner, Steps: fivePathSteps()}

	got, err := p.Adapt(orig, Feedback{Difficulty: 5, Interest: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Steps) != 6 {
		t.Fatalf("steps = %d, want 6", len(got.Steps))
	}
	review := got.Steps[0]
	if review.Topic != "review" || review.EstimatedMins != 20 || len(review.Prerequisites) != 0 {
		t.Errorf("unexpected review step: %+v", review)
	}
	if got.Steps[1].Topic != "a" {
		t.Errorf("original first step displaced to %q", got.Steps[1].Topic)
	}
	if got.AdaptedAt.IsZero() || got.Adaptation == nil {
		t.Error("adapted path must record feedback and AdaptedAt")
	}
}

func TestAdapt_LowDifficultySkipsLeadingSteps(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}

	got, err := p.Adapt(orig, Feedback{Difficulty: 2, Interest: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(got.Steps))
	}
	if got.Steps[0].Topic != "c" {
		t.Errorf("first step = %q, want c", got.Steps[0].Topic)
	}
}

func TestAdapt_LowDifficultyKeepsShortPath(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()[:3]}

	got, err := p.Adapt(orig, Feedback{Difficulty: 1, Interest: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only paths longer than 3 steps get trimmed.
	if len(got.Steps) != 3 {
		t.Errorf("steps = %d, want 3", len(got.Steps))
	}
}

func TestAdapt_HighInterestEmphasizesPreferredTopics(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}

	got, err := p.Adapt(orig, Feedback{Difficulty: 3, Interest: 5, PreferredTopics: []string{"b", "d"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, step := range got.Steps {
		switch step.Topic {
		case "b", "d":
			if len(step.Exercises) != 1 || step.Exercises[0].Type != feedback.TypeCoding {
				t.Errorf("%s should gain one coding exercise: %+v", step.Topic, step.Exercises)
			}
			if step.EstimatedMins != 25 {
				t.Errorf("%s estimate = %d, want 25", step.Topic, step.EstimatedMins)
			}
		default:
			if len(step.Exercises) != 0 || step.EstimatedMins != 10 {
				t.Errorf("%s should be untouched: %+v", step.Topic, step)
			}
		}
	}
}

func TestAdapt_NeutralFeedbackIsIdempotent(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}

	got, err := p.Adapt(orig, Feedback{Difficulty: 3, Interest: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Steps, orig.Steps) {
		t.Errorf("neutral feedback changed the steps: %v", got.Steps)
	}
	if got.AdaptedAt.IsZero() {
		t.Error("metadata timestamp should still be set")
	}
}

func TestAdapt_NeverMutatesInput(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}
	orig.Steps[0].Exercises = nil

	_, err := p.Adapt(orig, Feedback{Difficulty: 5, Interest: 5, PreferredTopics: []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orig.Steps) != 5 {
		t.Errorf("input step count changed to %d", len(orig.Steps))
	}
	if orig.Steps[0].Topic != "a" || len(orig.Steps[0].Exercises) != 0 {
		t.Errorf("input steps mutated: %+v", orig.Steps[0])
	}
	if orig.Steps[0].EstimatedMins != 10 {
		t.Errorf("input estimate mutated: %d", orig.Steps[0].EstimatedMins)
	}
}

func TestAdapt_ZeroRatingsTreatedAsNeutral(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}

	got, err := p.Adapt(orig, Feedback{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Steps, orig.Steps) {
		t.Error("unrated feedback should act like neutral ratings")
	}
}

func TestAdapt_OutOfRangeRatingIsValidationError(t *testing.T) {
	p := NewPlanner(nil, nil)
	orig := &Path{Steps: fivePathSteps()}

	_, err := p.Adapt(orig, Feedback{Difficulty: 9})
	var verr *feedback.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "difficulty" {
		t.Errorf("field = %q, want difficulty", verr.Field)
	}
}

func TestGoals(t *testing.T) {
	if got := Goals(); len(got) != 4 {
		t.Errorf("goals = %v, want 4", got)
	}
}
