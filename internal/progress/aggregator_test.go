package progress

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/devraj/learnpath/internal/store"
)

// mockUserStore implements store.UserStore in memory for testing.
type mockUserStore struct {
	graphs  map[string]map[string]any
	history map[string][]store.HistoryEntry
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		graphs:  map[string]map[string]any{},
		history: map[string][]store.HistoryEntry{},
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
		History:        m.history[learnerID],
	}, nil
}

func (m *mockUserStore) ReplaceKnowledgeGraph(_ context.Context, learnerID string, graph map[string]any, _ int64) error {
	m.graphs[learnerID] = graph
	return nil
}

func (m *mockUserStore) AppendHistory(_ context.Context, learnerID string, entry store.HistoryEntry) error {
	m.history[learnerID] = append(m.history[learnerID], entry)
	return nil
}

func (m *mockUserStore) ListLearnerIDs(_ context.Context) ([]string, error) {
	return nil, nil
}

// fixedNow pins the weekly window. Midday avoids day-boundary flakes.
var fixedNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func newTestAggregator(users *mockUserStore) *Aggregator {
	a := NewAggregator(users)
	a.now = func() time.Time { return fixedNow }
	return a
}

func entryAt(topic, kind string, correct bool, at time.Time) store.HistoryEntry {
	return store.HistoryEntry{Topic: topic, Kind: kind, Correct: correct, TimeSpent: 10, CompletedAt: at}
}

func TestSummary_AbsentLearnerYieldsZeroValues(t *testing.T) {
	a := newTestAggregator(newMockUserStore())

	s, err := a.Summary(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("absent learner must not error, got: %v", err)
	}
	if s.TotalLessons != 0 || s.CompletedTopics != 0 || s.AverageMastery != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.KnowledgeLevel != "beginner" {
		t.Errorf("level = %q, want beginner", s.KnowledgeLevel)
	}
	if s.WeeklyActivity != [7]int{} {
		t.Errorf("weekly = %v, want all zeros", s.WeeklyActivity)
	}
}

func TestSummary_CountsAndAverages(t *testing.T) {
	users := newMockUserStore()
	users.graphs["amy"] = map[string]any{
		"python_basics":   0.8,
		"data_structures": 0.4,
		"level":           "intermediate",
		"updated_at":      "2026-03-17T10:00:00Z",
	}
	users.history["amy"] = []store.HistoryEntry{
		entryAt("python_basics", "lesson", false, fixedNow.Add(-48*time.Hour)),
		entryAt("python_basics", "exercise", true, fixedNow.Add(-24*time.Hour)),
		entryAt("data_structures", "lesson", false, fixedNow.Add(-1*time.Hour)),
	}
	a := newTestAggregator(users)

	s, err := a.Summary(context.Background(), "amy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TotalLessons != 3 {
		t.Errorf("total lessons = %d, want 3", s.TotalLessons)
	}
	// Reserved keys are metadata, not completed topics.
	if s.CompletedTopics != 2 {
		t.Errorf("completed topics = %d, want 2", s.CompletedTopics)
	}
	if math.Abs(s.AverageMastery-0.6) > 1e-9 {
		t.Errorf("average mastery = %f, want 0.6", s.AverageMastery)
	}
	if s.KnowledgeLevel != "intermediate" {
		t.Errorf("level = %q, want intermediate", s.KnowledgeLevel)
	}
}

func TestSummary_WeeklyActivityBuckets(t *testing.T) {
	users := newMockUserStore()
	users.history["amy"] = []store.HistoryEntry{
		entryAt("a", "lesson", false, fixedNow),                      // today
		entryAt("a", "lesson", false, fixedNow.Add(-2*time.Hour)),    // today
		entryAt("a", "lesson", false, fixedNow.Add(-24*time.Hour)),   // yesterday
		entryAt("a", "lesson", false, fixedNow.Add(-6*24*time.Hour)), // oldest in window
		entryAt("a", "lesson", false, fixedNow.Add(-8*24*time.Hour)), // outside window
	}
	a := newTestAggregator(users)

	s, err := a.Summary(context.Background(), "amy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [7]int{1, 0, 0, 0, 0, 1, 2}
	if s.WeeklyActivity != want {
		t.Errorf("weekly = %v, want %v", s.WeeklyActivity, want)
	}

	// The vector sum equals the in-window entry count.
	sum := 0
	for _, n := range s.WeeklyActivity {
		sum += n
	}
	if sum != 4 {
		t.Errorf("weekly sum = %d, want 4", sum)
	}
}

func TestSummary_RecentActivityCappedAndDescending(t *testing.T) {
	users := newMockUserStore()
	for i := 0; i < 8; i++ {
		users.history["amy"] = append(users.history["amy"],
			entryAt("a", "lesson", false, fixedNow.Add(-time.Duration(i)*time.Hour)))
	}
	a := newTestAggregator(users)

	s, err := a.Summary(context.Background(), "amy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.RecentActivity) != 5 {
		t.Fatalf("recent = %d entries, want 5", len(s.RecentActivity))
	}
	for i := 1; i < len(s.RecentActivity); i++ {
		if s.RecentActivity[i].CompletedAt.After(s.RecentActivity[i-1].CompletedAt) {
			t.Fatal("recent activity not in descending order")
		}
	}
}

func TestTopicProgress(t *testing.T) {
	users := newMockUserStore()
	users.graphs["amy"] = map[string]any{"python_basics": 0.75}
	users.history["amy"] = []store.HistoryEntry{
		entryAt("python_basics", "lesson", false, fixedNow.Add(-72*time.Hour)),
		entryAt("python_basics", "exercise", true, fixedNow.Add(-48*time.Hour)),
		entryAt("python_basics", "exercise", true, fixedNow.Add(-24*time.Hour)),
		entryAt("python_basics", "exercise", false, fixedNow.Add(-12*time.Hour)),
		entryAt("data_structures", "exercise", true, fixedNow.Add(-6*time.Hour)),
	}
	a := newTestAggregator(users)

	tp, err := a.TopicProgress(context.Background(), "amy", "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tp.Mastery != 0.75 {
		t.Errorf("mastery = %f, want 0.75", tp.Mastery)
	}
	// Four python_basics entries at 10 minutes each; the other topic
	// does not count.
	if tp.TimeSpentMins != 40 {
		t.Errorf("time spent = %d, want 40", tp.TimeSpentMins)
	}
	if tp.ExercisesCompleted != 3 {
		t.Errorf("exercises = %d, want 3", tp.ExercisesCompleted)
	}
	if math.Abs(tp.Accuracy-2.0/3.0) > 1e-9 {
		t.Errorf("accuracy = %f, want 2/3", tp.Accuracy)
	}
}

func TestTopicProgress_NoExercises(t *testing.T) {
	users := newMockUserStore()
	users.history["amy"] = []store.HistoryEntry{
		entryAt("python_basics", "lesson", false, fixedNow),
	}
	a := newTestAggregator(users)

	tp, err := a.TopicProgress(context.Background(), "amy", "python_basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp.Accuracy != 0 {
		t.Errorf("accuracy = %f, want 0 with no exercises", tp.Accuracy)
	}
	if tp.ExercisesCompleted != 0 {
		t.Errorf("exercises = %d, want 0", tp.ExercisesCompleted)
	}
}
