package batch

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/store"
)

// ProgressAnalyzer reassesses every learner's knowledge graph from
// their accumulated history. Each learner is processed independently
// and the whole run is idempotent, so a crashed run is simply rerun.
type ProgressAnalyzer struct {
	users store.UserStore
	model *knowledge.Model
	rng   *rand.Rand
}

// NewProgressAnalyzer creates an analyzer. A nil model gets the
// default configuration; a nil rng a fresh PCG source.
func NewProgressAnalyzer(users store.UserStore, model *knowledge.Model, rng *rand.Rand) *ProgressAnalyzer {
	if model == nil {
		model = knowledge.NewModel(knowledge.Config{})
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ProgressAnalyzer{users: users, model: model, rng: rng}
}

// AnalyzeResult summarizes one analyzer run.
type AnalyzeResult struct {
	Learners int // learners seen
	Updated  int // graphs overwritten
	Skipped  int // no history, nothing to assess
	Failed   int // logged and left for the next run
}

// Run reassesses all learners. Per-learner failures are logged and
// counted, never abort the batch.
func (a *ProgressAnalyzer) Run(ctx context.Context) (*AnalyzeResult, error) {
	ids, err := a.users.ListLearnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	res := &AnalyzeResult{Learners: len(ids)}
	for _, id := range ids {
		switch err := a.analyzeOne(ctx, id); {
		case err == nil:
			res.Updated++
		case errors.Is(err, errNoHistory):
			res.Skipped++
		default:
			res.Failed++
			fmt.Fprintf(os.Stderr, "warning: progress analysis failed for %s: %v\n", id, err)
		}
	}
	return res, nil
}

var errNoHistory = errors.New("no history to assess")

func (a *ProgressAnalyzer) analyzeOne(ctx context.Context, learnerID string) error {
	rec, err := a.users.Get(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if len(rec.History) == 0 {
		return errNoHistory
	}

	answers := make([]knowledge.Answer, 0, len(rec.History))
	for _, entry := range rec.History {
		answers = append(answers, knowledge.Answer{Topic: entry.Topic, Correct: entry.Correct})
	}
	assessment := a.model.AssessFromAnswers(answers, a.rng)

	graph := knowledge.NewGraph()
	for topic, mastery := range assessment.KnowledgePoints {
		graph.Set(topic, mastery)
	}
	graph.Level = assessment.Level
	graph.UpdatedAt = time.Now().UTC()

	// Overwrite at the read version. A conflict means fresher feedback
	// landed mid-run; the next scheduled run covers this learner.
	if err := a.users.ReplaceKnowledgeGraph(ctx, learnerID, graph.ToMap(), rec.Version); err != nil {
		return fmt.Errorf("replace graph: %w", err)
	}
	return nil
}
