package feedback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/store"
)

// maxReplaceRetries bounds the optimistic-concurrency retry loop. Two
// concurrent submissions for the same learner conflict on the graph
// version; the loser re-reads and retries.
const maxReplaceRetries = 3

// smoothing constants: new = round(0.7*old + 0.3*adjusted, 2).
const (
	smoothingKeep  = 0.7
	smoothingBlend = 0.3
)

// defaultTopic absorbs submissions that arrive without a topic, so a
// sloppy exercise payload still lands somewhere in the graph.
const defaultTopic = "general"

// Scorer converts exercise submissions into scores and folds the
// resulting mastery deltas into the learner's knowledge graph.
type Scorer struct {
	users  store.UserStore
	events store.EventRepo
	grader Grader
}

// NewScorer creates a Scorer. A nil grader gets the stub grader.
func NewScorer(users store.UserStore, events store.EventRepo, grader Grader) *Scorer {
	if grader == nil {
		grader = NewStubGrader(nil)
	}
	return &Scorer{users: users, events: events, grader: grader}
}

// Suggestion is the tiered textual feedback for one submission.
type Suggestion struct {
	ScoreLevel  string
	Suggestions []string
	NextSteps   []string
}

// Result is the outcome of applying one exercise's feedback.
type Result struct {
	LearnerID  string
	ExerciseID string
	Score      float64
	// TopicMastery maps the exercise topic to its smoothed mastery
	// after the update.
	TopicMastery map[string]float64
	// Confidence tracks how sure the placeholder grading is; derived
	// from the score, slightly optimistic.
	Confidence  float64
	Suggestion  Suggestion
	ProcessedAt time.Time
}

// ApplyFeedback scores one exercise, adjusts by question difficulty,
// smooths the result into the learner's graph and persists it. A
// submission without a topic falls back to defaultTopic.
func (s *Scorer) ApplyFeedback(ctx context.Context, learnerID string, ex Exercise) (*Result, error) {
	if ex.Topic == "" {
		ex.Topic = defaultTopic
	}

	score, err := s.scoreExercise(ctx, ex)
	if err != nil {
		return nil, err
	}

	adjusted := clamp01(score * DifficultyFactor(ex.Question))

	newMastery, err := s.smoothInto(ctx, learnerID, map[string]float64{ex.Topic: adjusted})
	if err != nil {
		return nil, err
	}

	s.recordExercise(ctx, learnerID, ex, score)
	s.recordEvent(ctx, store.FeedbackEventData{
		LearnerID:     learnerID,
		Topic:         ex.Topic,
		Kind:          "exercise",
		Score:         score,
		MasterySample: adjusted,
		MasteryAfter:  newMastery[ex.Topic],
	})

	return &Result{
		LearnerID:    learnerID,
		ExerciseID:   ex.ID,
		Score:        score,
		TopicMastery: newMastery,
		Confidence:   math.Min(1.0, score*1.2),
		Suggestion:   buildSuggestion(score, newMastery),
		ProcessedAt:  time.Now().UTC(),
	}, nil
}

// SessionSummary is the outcome of applying a whole session's feedback.
type SessionSummary struct {
	LearnerID          string
	SessionID          string
	AverageScore       float64
	Overall            string
	TimeSpent          int
	ExercisesCompleted int
	// TopicMastery maps each session topic to its smoothed mastery
	// after the single per-topic update.
	TopicMastery map[string]float64
	Strengths    []string
	Weaknesses   []string
	Suggestions  []string
	ProcessedAt  time.Time
}

// Session is one learning session's worth of submissions.
type Session struct {
	Exercises []Exercise
	TimeSpent int // minutes
}

// ApplySessionFeedback scores every exercise in the session, averages
// the mastery samples per topic and smooths each topic exactly once.
// An empty session is not an error; it yields a zero summary.
func (s *Scorer) ApplySessionFeedback(ctx context.Context, learnerID string, sess Session) (*SessionSummary, error) {
	summary := &SessionSummary{
		LearnerID:          learnerID,
		SessionID:          uuid.NewString(),
		TimeSpent:          sess.TimeSpent,
		ExercisesCompleted: len(sess.Exercises),
		TopicMastery:       map[string]float64{},
		ProcessedAt:        time.Now().UTC(),
	}
	if len(sess.Exercises) == 0 {
		summary.Overall = scoreLevel(0)
		return summary, nil
	}

	var total float64
	samples := map[string][]float64{}
	for _, ex := range sess.Exercises {
		if ex.Topic == "" {
			ex.Topic = defaultTopic
		}
		score, err := s.scoreExercise(ctx, ex)
		if err != nil {
			return nil, err
		}
		total += score
		adjusted := clamp01(score * DifficultyFactor(ex.Question))
		samples[ex.Topic] = append(samples[ex.Topic], adjusted)
		s.recordExercise(ctx, learnerID, ex, score)
	}
	summary.AverageScore = total / float64(len(sess.Exercises))
	summary.Overall = scoreLevel(summary.AverageScore)

	avg := map[string]float64{}
	for topic, list := range samples {
		var sum float64
		for _, v := range list {
			sum += v
		}
		avg[topic] = sum / float64(len(list))
	}

	updated, err := s.smoothInto(ctx, learnerID, avg)
	if err != nil {
		return nil, err
	}
	summary.TopicMastery = updated

	for topic, sample := range avg {
		if sample >= 0.8 {
			summary.Strengths = append(summary.Strengths, topic)
		} else if sample <= 0.5 {
			summary.Weaknesses = append(summary.Weaknesses, topic)
		}
		s.recordEvent(ctx, store.FeedbackEventData{
			LearnerID:     learnerID,
			Topic:         topic,
			Kind:          "session",
			Score:         summary.AverageScore,
			MasterySample: sample,
			MasteryAfter:  updated[topic],
			SessionID:     summary.SessionID,
		})
	}
	sort.Strings(summary.Strengths)
	sort.Strings(summary.Weaknesses)

	summary.Suggestions = sessionSuggestions(summary.AverageScore, summary.Weaknesses)
	return summary, nil
}

// scoreExercise routes a submission to the right grading strategy.
// Multiple choice is always exact match; free text goes to the
// configured grader; an unknown type scores a flat 0.5.
func (s *Scorer) scoreExercise(ctx context.Context, ex Exercise) (float64, error) {
	switch ex.Type {
	case TypeMultipleChoice:
		return ExactMatchGrader{}.Score(ctx, ex)
	case TypeCoding, TypeConceptual:
		return s.grader.Score(ctx, ex)
	default:
		return 0.5, nil
	}
}

// smoothInto folds one adjusted mastery sample per topic into the
// persisted graph with exponential smoothing, under optimistic
// concurrency. Returns the smoothed value per topic.
func (s *Scorer) smoothInto(ctx context.Context, learnerID string, samples map[string]float64) (map[string]float64, error) {
	var updated map[string]float64

	for attempt := 0; attempt < maxReplaceRetries; attempt++ {
		rec, err := s.users.Get(ctx, learnerID)
		if err != nil {
			return nil, fmt.Errorf("load learner %s: %w", learnerID, err)
		}

		graph := knowledge.GraphFromMap(rec.KnowledgeGraph)
		updated = make(map[string]float64, len(samples))
		for topic, sample := range samples {
			old := graph.Mastery(topic)
			smoothed := round2(smoothingKeep*old + smoothingBlend*sample)
			graph.Set(topic, smoothed)
			updated[topic] = smoothed
		}
		graph.UpdatedAt = time.Now().UTC()

		err = s.users.ReplaceKnowledgeGraph(ctx, learnerID, graph.ToMap(), rec.Version)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, fmt.Errorf("persist knowledge graph for %s: %w", learnerID, err)
		}
	}
	return nil, fmt.Errorf("persist knowledge graph for %s: %w", learnerID, store.ErrVersionConflict)
}

// recordExercise appends the attempt to the learner's history. History
// is reporting data; a write failure degrades reports but must not fail
// the feedback operation.
func (s *Scorer) recordExercise(ctx context.Context, learnerID string, ex Exercise, score float64) {
	entry := store.HistoryEntry{
		Topic:       ex.Topic,
		Kind:        "exercise",
		Correct:     score >= 0.6,
		Payload:     map[string]any{"score": score, "exercise_id": ex.ID, "type": string(ex.Type)},
		CompletedAt: time.Now().UTC(),
	}
	if err := s.users.AppendHistory(ctx, learnerID, entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history append failed for %s: %v\n", learnerID, err)
	}
}

func (s *Scorer) recordEvent(ctx context.Context, data store.FeedbackEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendFeedback(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: feedback event append failed: %v\n", err)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
