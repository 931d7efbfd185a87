package feedback

import (
	"context"
	"math/rand/v2"
)

// Grader scores a free-text exercise answer in [0,1]. Multiple choice
// never reaches a Grader; the scorer handles it deterministically.
type Grader interface {
	Score(ctx context.Context, ex Exercise) (float64, error)
}

// ExactMatchGrader scores by strict string equality with the reference
// answer. Deterministic; useful when the reference text is canonical.
type ExactMatchGrader struct{}

func (ExactMatchGrader) Score(_ context.Context, ex Exercise) (float64, error) {
	if ex.UserAnswer != "" && ex.UserAnswer == ex.CorrectAnswer {
		return 1.0, nil
	}
	return 0.0, nil
}

// StubGrader is a placeholder for an absent grading engine. It samples
// a score from a band chosen by answer length: a longer answer lands in
// the high band, a short one in the low band. Not a real judgment of
// correctness; kept until an external grader replaces it.
type StubGrader struct {
	rng *rand.Rand
}

// NewStubGrader returns a stub grader drawing from rng. A nil rng gets
// a fresh PCG source, so production callers need not care.
func NewStubGrader(rng *rand.Rand) *StubGrader {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &StubGrader{rng: rng}
}

func (g *StubGrader) Score(_ context.Context, ex Exercise) (float64, error) {
	switch ex.Type {
	case TypeCoding:
		if len(ex.UserAnswer) > 10 {
			return g.between(0.7, 1.0), nil
		}
		return g.between(0.1, 0.5), nil
	case TypeConceptual:
		if len(ex.UserAnswer) > 20 {
			return g.between(0.6, 1.0), nil
		}
		return g.between(0.1, 0.6), nil
	default:
		return 0.5, nil
	}
}

func (g *StubGrader) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
