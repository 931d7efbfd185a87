package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserStore_GetAbsentLearner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.UserStore().Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("get absent learner: %v", err)
	}
	if rec.Version != 0 {
		t.Errorf("version = %d, want 0", rec.Version)
	}
	if len(rec.KnowledgeGraph) != 0 {
		t.Errorf("knowledge graph = %v, want empty", rec.KnowledgeGraph)
	}
	if len(rec.History) != 0 {
		t.Errorf("history = %v, want empty", rec.History)
	}
}

func TestUserStore_ReplaceCreatesThenGuards(t *testing.T) {
	s := openTestStore(t)
	us := s.UserStore()
	ctx := context.Background()

	graph := map[string]any{"python_basics": 0.3}
	if err := us.ReplaceKnowledgeGraph(ctx, "alice", graph, 0); err != nil {
		t.Fatalf("initial replace: %v", err)
	}

	rec, err := us.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Version != 1 {
		t.Errorf("version = %d, want 1", rec.Version)
	}

	// A replay at the stale version must conflict, not silently win.
	err = us.ReplaceKnowledgeGraph(ctx, "alice", graph, 0)
	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("stale replace err = %v, want ErrVersionConflict", err)
	}

	graph["python_basics"] = 0.5
	if err := us.ReplaceKnowledgeGraph(ctx, "alice", graph, 1); err != nil {
		t.Fatalf("replace at current version: %v", err)
	}
	rec, _ = us.Get(ctx, "alice")
	if rec.Version != 2 {
		t.Errorf("version = %d, want 2", rec.Version)
	}
	if rec.KnowledgeGraph["python_basics"] != 0.5 {
		t.Errorf("python_basics = %v, want 0.5", rec.KnowledgeGraph["python_basics"])
	}
}

func TestUserStore_HistoryOrdering(t *testing.T) {
	s := openTestStore(t)
	us := s.UserStore()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, topic := range []string{"first", "second", "third"} {
		err := us.AppendHistory(ctx, "bob", HistoryEntry{
			Topic:       topic,
			Kind:        "lesson",
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %s: %v", topic, err)
		}
	}

	rec, err := us.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.History) != 3 {
		t.Fatalf("history len = %d, want 3", len(rec.History))
	}
	// Most recent first.
	if rec.History[0].Topic != "third" || rec.History[2].Topic != "first" {
		t.Errorf("history order = [%s %s %s], want [third second first]",
			rec.History[0].Topic, rec.History[1].Topic, rec.History[2].Topic)
	}
}

func TestUserStore_ListLearnerIDs(t *testing.T) {
	s := openTestStore(t)
	us := s.UserStore()
	ctx := context.Background()

	for _, id := range []string{"zoe", "ann", "mia"} {
		if err := us.ReplaceKnowledgeGraph(ctx, id, map[string]any{}, 0); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	ids, err := us.ListLearnerIDs(ctx)
	if err != nil {
		t.Fatalf("list learner ids: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("ids = %v, want 3", ids)
	}
	if ids[0] != "ann" || ids[2] != "zoe" {
		t.Errorf("ids = %v, want sorted [ann mia zoe]", ids)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendFeedback(ctx, FeedbackEventData{
		LearnerID:     "alice",
		Topic:         "python_basics",
		Kind:          "exercise",
		Score:         1.0,
		MasterySample: 0.9,
		MasteryAfter:  0.55,
	})
	if err != nil {
		t.Fatalf("append feedback: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock",
		Model:    "mock",
		Purpose:  "materials",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Purpose != "materials" || !events[0].Success {
		t.Errorf("event = %+v", events[0])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"learners", "history_entries"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
