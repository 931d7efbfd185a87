package content

import (
	"context"

	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/knowledge"
)

// Materials is everything the planner attaches to a path step for one
// goal at one level.
type Materials struct {
	Concept     string
	KeyPoints   []string
	Explanation string
	Exercises   []Exercise
}

// Exercise is one practice item inside a material set. Options are
// present only for multiple choice.
type Exercise struct {
	Type     feedback.ExerciseType
	Question string
	Options  []string
	Answer   string
}

// Provider supplies learning materials for a goal at a learner's level.
// This is the only content surface the planner consumes; whether the
// materials come from static templates or a generative backend is this
// package's concern alone.
type Provider interface {
	MaterialsFor(ctx context.Context, goal string, levelCtx knowledge.LevelAnalysis) (Materials, error)
}
