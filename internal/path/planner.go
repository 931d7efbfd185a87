package path

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/devraj/learnpath/internal/content"
	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/knowledge"
)

// Step is one entry in a learning path.
type Step struct {
	Topic         string
	EstimatedMins int
	Prerequisites []string
	Explanation   string
	Exercises     []content.Exercise
}

// Path is an ordered, time-estimated learning plan for one goal.
// Adaptation returns a fresh Path; an existing one is never mutated.
type Path struct {
	LearnerID   string
	Goal        string
	Level       knowledge.Level
	Steps       []Step
	GeneratedAt time.Time
	// AdaptedAt and Adaptation are set only on paths produced by Adapt.
	AdaptedAt  time.Time
	Adaptation *Feedback
}

// TotalMinutes sums the step estimates.
func (p *Path) TotalMinutes() int {
	total := 0
	for _, s := range p.Steps {
		total += s.EstimatedMins
	}
	return total
}

// Feedback is a learner's reaction to a path, used for adaptation.
// Difficulty and Interest are 1-5 ratings; zero means unrated and is
// treated as the neutral 3.
type Feedback struct {
	Difficulty      int
	Interest        int
	TimeSpent       int // minutes
	PreferredTopics []string
}

// Planner builds and adapts learning paths.
type Planner struct {
	model   *knowledge.Model
	content content.Provider
}

// NewPlanner creates a Planner. A nil provider gets the static
// template library.
func NewPlanner(model *knowledge.Model, provider content.Provider) *Planner {
	if model == nil {
		model = knowledge.NewModel(knowledge.Config{})
	}
	if provider == nil {
		provider = content.NewTemplateProvider()
	}
	return &Planner{model: model, content: provider}
}

// Generate builds a personalized path: the learner's level picks the
// topic sequence for the goal, and each topic gets materials from the
// content provider. An unknown goal substitutes the default goal.
func (p *Planner) Generate(ctx context.Context, learnerID string, graph knowledge.Graph, goal string) (*Path, error) {
	analysis := p.model.AnalyzeLevel(graph)

	if _, ok := curriculum[goal]; !ok {
		goal = DefaultGoal
	}
	topics := curriculum[goal][analysis.Level]

	steps := make([]Step, 0, len(topics))
	for _, topic := range topics {
		step := Step{
			Topic:         topic,
			EstimatedMins: estimateTime(topic, analysis.Level),
			Prerequisites: prerequisitesFor(topic),
		}
		materials, err := p.content.MaterialsFor(ctx, goal, analysis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no materials for %s/%s: %v\n", goal, topic, err)
		} else {
			step.Explanation = materials.Explanation
			step.Exercises = materials.Exercises
		}
		steps = append(steps, step)
	}

	return &Path{
		LearnerID:   learnerID,
		Goal:        goal,
		Level:       analysis.Level,
		Steps:       steps,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Adapt derives a new path from an existing one and the learner's
// feedback. Rules apply in a fixed order: a high difficulty rating
// prepends a review step, a low one drops the two leading steps of a
// long path, and high interest adds an extra exercise to each
// preferred topic.
func (p *Planner) Adapt(orig *Path, fb Feedback) (*Path, error) {
	if fb.Difficulty < 0 || fb.Difficulty > 5 {
		return nil, &feedback.ValidationError{Field: "difficulty", Reason: "rating must be 1-5"}
	}
	if fb.Interest < 0 || fb.Interest > 5 {
		return nil, &feedback.ValidationError{Field: "interest", Reason: "rating must be 1-5"}
	}
	difficulty := fb.Difficulty
	if difficulty == 0 {
		difficulty = 3
	}
	interest := fb.Interest
	if interest == 0 {
		interest = 3
	}

	steps := cloneSteps(orig.Steps)

	if difficulty >= 4 {
		steps = append([]Step{reviewStep()}, steps...)
	}

	if difficulty <= 2 && len(steps) > 3 {
		steps = steps[2:]
	}

	if interest >= 4 && len(fb.PreferredTopics) > 0 {
		preferred := make(map[string]bool, len(fb.PreferredTopics))
		for _, t := range fb.PreferredTopics {
			preferred[t] = true
		}
		for i := range steps {
			if !preferred[steps[i].Topic] {
				continue
			}
			steps[i].Exercises = append(steps[i].Exercises, content.Exercise{
				Type:     feedback.TypeCoding,
				Question: fmt.Sprintf("Extra practice exercise on %s.", steps[i].Topic),
				Answer:   "Depends on the topic",
			})
			steps[i].EstimatedMins += 15
		}
	}

	adapted := &Path{
		LearnerID:   orig.LearnerID,
		Goal:        orig.Goal,
		Level:       orig.Level,
		Steps:       steps,
		GeneratedAt: orig.GeneratedAt,
		AdaptedAt:   time.Now().UTC(),
		Adaptation:  &fb,
	}
	return adapted, nil
}

// reviewStep is the consolidation step prepended when a path felt too
// hard.
func reviewStep() Step {
	return Step{
		Topic:         "review",
		EstimatedMins: 20,
		Explanation:   "Based on your feedback, this review consolidates the ground you have already covered before moving on.",
		Exercises: []content.Exercise{
			{
				Type:     feedback.TypeConceptual,
				Question: "Summarize the key points you have learned so far.",
				Answer:   "Open-ended",
			},
		},
	}
}

func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s
		out[i].Prerequisites = append([]string(nil), s.Prerequisites...)
		out[i].Exercises = append([]content.Exercise(nil), s.Exercises...)
	}
	return out
}
