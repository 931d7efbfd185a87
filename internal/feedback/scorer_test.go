package feedback

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/devraj/learnpath/internal/store"
)

// mockUserStore implements store.UserStore in memory for testing.
type mockUserStore struct {
	graphs   map[string]map[string]any
	versions map[string]int64
	history  []store.HistoryEntry

	replaceCalls int
	// conflictsLeft makes the next N ReplaceKnowledgeGraph calls fail
	// with a version conflict.
	conflictsLeft int
	failReplace   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		graphs:   map[string]map[string]any{},
		versions: map[string]int64{},
	}
}

func (m *mockUserStore) Get(_ context.Context, learnerID string) (*store.LearnerRecord, error) {
	graph := map[string]any{}
	for k, v := range m.graphs[learnerID] {
		graph[k] = v
	}
	return &store.LearnerRecord{
		LearnerID:      learnerID,
		KnowledgeGraph: graph,
		Version:        m.versions[learnerID],
	}, nil
}

func (m *mockUserStore) ReplaceKnowledgeGraph(_ context.Context, learnerID string, graph map[string]any, version int64) error {
	m.replaceCalls++
	if m.failReplace != nil {
		return m.failReplace
	}
	if m.conflictsLeft > 0 {
		m.conflictsLeft--
		return store.ErrVersionConflict
	}
	if m.versions[learnerID] != version {
		return store.ErrVersionConflict
	}
	m.graphs[learnerID] = graph
	m.versions[learnerID] = version + 1
	return nil
}

func (m *mockUserStore) AppendHistory(_ context.Context, learnerID string, entry store.HistoryEntry) error {
	entry.LearnerID = learnerID
	m.history = append(m.history, entry)
	return nil
}

func (m *mockUserStore) ListLearnerIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.versions))
	for id := range m.versions {
		ids = append(ids, id)
	}
	return ids, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	feedback []store.FeedbackEventData
}

func (m *mockEventRepo) AppendFeedback(_ context.Context, data store.FeedbackEventData) error {
	m.feedback = append(m.feedback, data)
	return nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

// tenCharQuestion has difficulty factor exactly 0.9 (0.8 + 10/100, no
// keyword hits).
const tenCharQuestion = "What is x?"

func TestApplyFeedback_SmoothsIntoGraph(t *testing.T) {
	users := newMockUserStore()
	users.graphs["amy"] = map[string]any{"python_basics": 0.40}
	users.versions["amy"] = 3
	events := &mockEventRepo{}
	s := NewScorer(users, events, nil)

	// Correct multiple choice scores 1.0; adjusted = 1.0 * 0.9 = 0.9;
	// new = round(0.7*0.40 + 0.3*0.9, 2) = 0.55.
	res, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		ID:            "ex-1",
		Type:          TypeMultipleChoice,
		Topic:         "python_basics",
		Question:      tenCharQuestion,
		UserAnswer:    "B",
		CorrectAnswer: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Score != 1.0 {
		t.Errorf("score = %f, want 1.0", res.Score)
	}
	if got := res.TopicMastery["python_basics"]; math.Abs(got-0.55) > 1e-9 {
		t.Errorf("smoothed mastery = %f, want 0.55", got)
	}
	if got := users.graphs["amy"]["python_basics"]; got != 0.55 {
		t.Errorf("persisted mastery = %v, want 0.55", got)
	}
	if users.versions["amy"] != 4 {
		t.Errorf("version = %d, want 4", users.versions["amy"])
	}
}

func TestApplyFeedback_AbsentTopicStartsAtZero(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	// score 1.0, factor 0.9, old 0: new = round(0.3*0.9, 2) = 0.27.
	res, err := s.ApplyFeedback(context.Background(), "new-learner", Exercise{
		Type:          TypeMultipleChoice,
		Topic:         "web_development",
		Question:      tenCharQuestion,
		UserAnswer:    "A",
		CorrectAnswer: "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.TopicMastery["web_development"]; math.Abs(got-0.27) > 1e-9 {
		t.Errorf("got %f, want 0.27", got)
	}
}

func TestApplyFeedback_MissingTopicFallsBackToGeneral(t *testing.T) {
	users := newMockUserStore()
	events := &mockEventRepo{}
	s := NewScorer(users, events, nil)

	// No topic on the submission: the update lands on "general".
	// score 1.0, factor 0.9, old 0: new = round(0.3*0.9, 2) = 0.27.
	res, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		Type:          TypeMultipleChoice,
		Question:      tenCharQuestion,
		UserAnswer:    "B",
		CorrectAnswer: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.TopicMastery["general"]; math.Abs(got-0.27) > 1e-9 {
		t.Errorf("mastery for general = %f, want 0.27", got)
	}
	if got := users.graphs["amy"]["general"]; got != 0.27 {
		t.Errorf("persisted mastery = %v, want 0.27", got)
	}
	if len(users.history) != 1 || users.history[0].Topic != "general" {
		t.Errorf("history not recorded under general: %+v", users.history)
	}
	if len(events.feedback) != 1 || events.feedback[0].Topic != "general" {
		t.Errorf("event not recorded under general: %+v", events.feedback)
	}
}

func TestApplyFeedback_UnknownTypeScoresHalf(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	res, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		Type:     ExerciseType("essay"),
		Topic:    "python_basics",
		Question: tenCharQuestion,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0.5 {
		t.Errorf("score = %f, want 0.5", res.Score)
	}
}

func TestApplyFeedback_RetriesOnVersionConflict(t *testing.T) {
	users := newMockUserStore()
	users.conflictsLeft = 2
	s := NewScorer(users, nil, nil)

	_, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		Type:          TypeMultipleChoice,
		Topic:         "python_basics",
		Question:      tenCharQuestion,
		UserAnswer:    "A",
		CorrectAnswer: "A",
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}
	if users.replaceCalls != 3 {
		t.Errorf("replace calls = %d, want 3", users.replaceCalls)
	}
}

func TestApplyFeedback_GivesUpAfterRetriesExhausted(t *testing.T) {
	users := newMockUserStore()
	users.conflictsLeft = 10
	s := NewScorer(users, nil, nil)

	_, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		Type:          TypeMultipleChoice,
		Topic:         "python_basics",
		Question:      tenCharQuestion,
		UserAnswer:    "A",
		CorrectAnswer: "A",
	})
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if users.replaceCalls != maxReplaceRetries {
		t.Errorf("replace calls = %d, want %d", users.replaceCalls, maxReplaceRetries)
	}
}

func TestApplyFeedback_RecordsHistoryAndEvent(t *testing.T) {
	users := newMockUserStore()
	events := &mockEventRepo{}
	s := NewScorer(users, events, nil)

	_, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		ID:            "ex-9",
		Type:          TypeMultipleChoice,
		Topic:         "data_structures",
		Question:      tenCharQuestion,
		UserAnswer:    "A",
		CorrectAnswer: "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users.history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(users.history))
	}
	h := users.history[0]
	if h.Kind != "exercise" || h.Topic != "data_structures" || !h.Correct {
		t.Errorf("unexpected history entry: %+v", h)
	}

	if len(events.feedback) != 1 {
		t.Fatalf("feedback events = %d, want 1", len(events.feedback))
	}
	ev := events.feedback[0]
	if ev.Kind != "exercise" || ev.Topic != "data_structures" || ev.Score != 1.0 {
		t.Errorf("unexpected feedback event: %+v", ev)
	}
}

func TestApplyFeedback_SuggestionBands(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	// Wrong answer scores 0: "needs improvement" band.
	res, err := s.ApplyFeedback(context.Background(), "amy", Exercise{
		Type:          TypeMultipleChoice,
		Topic:         "python_basics",
		Question:      tenCharQuestion,
		UserAnswer:    "A",
		CorrectAnswer: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggestion.ScoreLevel != "needs improvement" {
		t.Errorf("score level = %q, want needs improvement", res.Suggestion.ScoreLevel)
	}
	if len(res.Suggestion.Suggestions) == 0 || len(res.Suggestion.NextSteps) != 3 {
		t.Errorf("unexpected suggestion shape: %+v", res.Suggestion)
	}
}

func TestApplySessionFeedback_EmptySession(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	sum, err := s.ApplySessionFeedback(context.Background(), "amy", Session{})
	if err != nil {
		t.Fatalf("empty session must not error, got: %v", err)
	}
	if sum.AverageScore != 0 || sum.ExercisesCompleted != 0 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if sum.SessionID == "" {
		t.Error("expected a session id")
	}
	if users.replaceCalls != 0 {
		t.Errorf("empty session must not write, got %d replace calls", users.replaceCalls)
	}
}

func TestApplySessionFeedback_SmoothsOncePerTopic(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	// Two attempts on the same topic: scores 1.0 and 0.0, factor 1.0
	// each (20-char questions, no keywords). Samples average to 0.5 and
	// are smoothed once: round(0.7*0 + 0.3*0.5, 2) = 0.15.
	q := strings.Repeat("y", 20)
	sum, err := s.ApplySessionFeedback(context.Background(), "amy", Session{
		TimeSpent: 25,
		Exercises: []Exercise{
			{Type: TypeMultipleChoice, Topic: "python_basics", Question: q, UserAnswer: "A", CorrectAnswer: "A"},
			{Type: TypeMultipleChoice, Topic: "python_basics", Question: q, UserAnswer: "A", CorrectAnswer: "B"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(sum.AverageScore-0.5) > 1e-9 {
		t.Errorf("average score = %f, want 0.5", sum.AverageScore)
	}
	if got := sum.TopicMastery["python_basics"]; math.Abs(got-0.15) > 1e-9 {
		t.Errorf("smoothed mastery = %f, want 0.15", got)
	}
	if users.replaceCalls != 1 {
		t.Errorf("replace calls = %d, want exactly 1", users.replaceCalls)
	}
}

func TestApplySessionFeedback_StrengthsAndWeaknesses(t *testing.T) {
	users := newMockUserStore()
	events := &mockEventRepo{}
	s := NewScorer(users, events, nil)

	q := strings.Repeat("y", 20)
	sum, err := s.ApplySessionFeedback(context.Background(), "amy", Session{
		Exercises: []Exercise{
			{Type: TypeMultipleChoice, Topic: "python_basics", Question: q, UserAnswer: "A", CorrectAnswer: "A"},
			{Type: TypeMultipleChoice, Topic: "machine_learning", Question: q, UserAnswer: "A", CorrectAnswer: "B"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sum.Strengths) != 1 || sum.Strengths[0] != "python_basics" {
		t.Errorf("strengths = %v, want [python_basics]", sum.Strengths)
	}
	if len(sum.Weaknesses) != 1 || sum.Weaknesses[0] != "machine_learning" {
		t.Errorf("weaknesses = %v, want [machine_learning]", sum.Weaknesses)
	}

	// Weak topics get called out in the suggestions.
	found := false
	for _, line := range sum.Suggestions {
		if strings.Contains(line, "machine_learning") {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions missing weakness callout: %v", sum.Suggestions)
	}

	// One session event per topic, all sharing the session id.
	if len(events.feedback) != 2 {
		t.Fatalf("feedback events = %d, want 2", len(events.feedback))
	}
	for _, ev := range events.feedback {
		if ev.Kind != "session" || ev.SessionID != sum.SessionID {
			t.Errorf("unexpected session event: %+v", ev)
		}
	}
}

func TestApplySessionFeedback_MissingTopicFallsBackToGeneral(t *testing.T) {
	users := newMockUserStore()
	s := NewScorer(users, nil, nil)

	// A topicless exercise in the middle of the session must not stop
	// the rest from processing; its sample lands on "general".
	q := strings.Repeat("y", 20)
	sum, err := s.ApplySessionFeedback(context.Background(), "amy", Session{
		Exercises: []Exercise{
			{Type: TypeMultipleChoice, Topic: "python_basics", Question: q, UserAnswer: "A", CorrectAnswer: "A"},
			{Type: TypeMultipleChoice, Question: q, UserAnswer: "B", CorrectAnswer: "B"},
			{Type: TypeMultipleChoice, Topic: "python_basics", Question: q, UserAnswer: "A", CorrectAnswer: "A"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.ExercisesCompleted != 3 {
		t.Errorf("exercises completed = %d, want 3", sum.ExercisesCompleted)
	}
	// Correct MC, factor 1.0: sample 1.0, smoothed round(0.3*1.0, 2) = 0.3.
	if got := sum.TopicMastery["general"]; math.Abs(got-0.3) > 1e-9 {
		t.Errorf("mastery for general = %f, want 0.3", got)
	}
	if len(users.history) != 3 {
		t.Errorf("history entries = %d, want 3", len(users.history))
	}
	if users.replaceCalls != 1 {
		t.Errorf("replace calls = %d, want exactly 1", users.replaceCalls)
	}
}

func TestScoreLevelBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "excellent"},
		{0.9, "excellent"},
		{0.85, "good"},
		{0.8, "good"},
		{0.75, "fair"},
		{0.7, "fair"},
		{0.65, "passing"},
		{0.6, "passing"},
		{0.59, "needs improvement"},
		{0, "needs improvement"},
	}
	for _, tt := range tests {
		if got := scoreLevel(tt.score); got != tt.want {
			t.Errorf("scoreLevel(%f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
