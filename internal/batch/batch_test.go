package batch

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/progress"
	"github.com/devraj/learnpath/internal/store"
)

// mockUserStore implements store.UserStore in memory for testing.
type mockUserStore struct {
	graphs   map[string]map[string]any
	versions map[string]int64
	history  map[string][]store.HistoryEntry

	// conflictFor makes ReplaceKnowledgeGraph fail for one learner.
	conflictFor string
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		graphs:   map[string]map[string]any{},
		versions: map[string]int64{},
		history:  map[string][]store.HistoryEntry{},
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
		History:        m.history[learnerID],
	}, nil
}

func (m *mockUserStore) ReplaceKnowledgeGraph(_ context.Context, learnerID string, graph map[string]any, version int64) error {
	if learnerID == m.conflictFor {
		return store.ErrVersionConflict
	}
	m.graphs[learnerID] = graph
	m.versions[learnerID] = version + 1
	return nil
}

func (m *mockUserStore) AppendHistory(_ context.Context, learnerID string, entry store.HistoryEntry) error {
	m.history[learnerID] = append(m.history[learnerID], entry)
	return nil
}

func (m *mockUserStore) ListLearnerIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.history))
	for id := range m.history {
		ids = append(ids, id)
	}
	return ids, nil
}

func addLearner(m *mockUserStore, id string, entries ...store.HistoryEntry) {
	m.history[id] = entries
}

func exerciseAt(topic string, correct bool, at time.Time) store.HistoryEntry {
	return store.HistoryEntry{Topic: topic, Kind: "exercise", Correct: correct, CompletedAt: at}
}

func TestProgressAnalyzer_ReassessesLearnersWithHistory(t *testing.T) {
	users := newMockUserStore()
	now := time.Now().UTC()
	addLearner(users, "amy",
		exerciseAt("python_basics", true, now.Add(-2*time.Hour)),
		exerciseAt("python_basics", true, now.Add(-1*time.Hour)),
	)
	addLearner(users, "idle-bob") // no history

	a := NewProgressAnalyzer(users, nil, rand.New(rand.NewPCG(1, 2)))
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Learners != 2 || res.Updated != 1 || res.Skipped != 1 || res.Failed != 0 {
		t.Errorf("unexpected result: %+v", res)
	}

	graph := knowledge.GraphFromMap(users.graphs["amy"])
	// Two correct answers: accuracy 1.0 bands as advanced.
	if graph.Level != knowledge.LevelAdvanced {
		t.Errorf("level = %q, want advanced", graph.Level)
	}
	if len(graph.Topics) == 0 {
		t.Error("expected knowledge points in the new graph")
	}
	if graph.UpdatedAt.IsZero() {
		t.Error("expected updated_at on the new graph")
	}
}

func TestProgressAnalyzer_ConflictCountsAsFailedNotFatal(t *testing.T) {
	users := newMockUserStore()
	now := time.Now().UTC()
	addLearner(users, "amy", exerciseAt("python_basics", true, now))
	addLearner(users, "bob", exerciseAt("data_structures", false, now))
	users.conflictFor = "amy"

	a := NewProgressAnalyzer(users, nil, rand.New(rand.NewPCG(3, 4)))
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("batch must not abort on a per-learner failure: %v", err)
	}

	if res.Failed != 1 || res.Updated != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(users.graphs["bob"]) == 0 {
		t.Error("the other learner should still be updated")
	}
}

func TestProgressAnalyzer_RerunIsSafe(t *testing.T) {
	users := newMockUserStore()
	addLearner(users, "amy", exerciseAt("python_basics", true, time.Now().UTC()))

	a := NewProgressAnalyzer(users, nil, rand.New(rand.NewPCG(5, 6)))
	if _, err := a.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.Updated != 1 || res.Failed != 0 {
		t.Errorf("rerun should reprocess cleanly: %+v", res)
	}

	graph := knowledge.GraphFromMap(users.graphs["amy"])
	if graph.Level != knowledge.LevelAdvanced {
		t.Errorf("level = %q, want advanced after rerun", graph.Level)
	}
}

func TestReminderScan(t *testing.T) {
	users := newMockUserStore()
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	addLearner(users, "fresh") // never studied
	addLearner(users, "lapsed", exerciseAt("a", true, now.Add(-4*24*time.Hour)))
	addLearner(users, "active",
		exerciseAt("a", true, now.Add(-5*24*time.Hour)),
		exerciseAt("a", true, now.Add(-1*time.Hour)), // latest wins
	)

	scan := NewReminderScan(users)
	scan.now = func() time.Time { return now }

	due, err := scan.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reasons := map[string]string{}
	for _, r := range due {
		reasons[r.LearnerID] = r.Reason
	}
	if len(due) != 2 {
		t.Fatalf("due = %v, want fresh and lapsed only", reasons)
	}
	if reasons["fresh"] != "new" {
		t.Errorf("fresh reason = %q, want new", reasons["fresh"])
	}
	if reasons["lapsed"] != "idle" {
		t.Errorf("lapsed reason = %q, want idle", reasons["lapsed"])
	}
}

func TestWeeklyReport(t *testing.T) {
	users := newMockUserStore()
	now := time.Now().UTC()
	addLearner(users, "amy",
		exerciseAt("python_basics", true, now.Add(-1*time.Hour)),
		exerciseAt("python_basics", true, now.Add(-25*time.Hour)),
	)
	addLearner(users, "bob")

	job := NewWeeklyReport(users, progress.NewAggregator(users))
	reports, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	byID := map[string]Report{}
	for _, r := range reports {
		byID[r.LearnerID] = r
	}
	if byID["amy"].ActiveDays != 2 {
		t.Errorf("amy active days = %d, want 2", byID["amy"].ActiveDays)
	}
	if byID["bob"].ActiveDays != 0 {
		t.Errorf("bob active days = %d, want 0", byID["bob"].ActiveDays)
	}
	if byID["amy"].Summary.TotalLessons != 2 {
		t.Errorf("amy total lessons = %d, want 2", byID["amy"].Summary.TotalLessons)
	}
}
