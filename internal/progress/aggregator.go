package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/store"
)

// recentLimit caps the recent-activity list in a summary.
const recentLimit = 5

// Summary is a learner's read-only progress roll-up.
type Summary struct {
	LearnerID    string
	TotalLessons int
	// CompletedTopics counts topics in the knowledge graph; the
	// level/updated_at metadata never counts.
	CompletedTopics int
	// AverageMastery is the unweighted mean over all graph topics.
	AverageMastery float64
	// WeeklyActivity counts history entries per UTC calendar day over
	// the trailing 7 days, oldest day first.
	WeeklyActivity [7]int
	KnowledgeLevel knowledge.Level
	// RecentActivity holds at most 5 entries, most recent first.
	RecentActivity []store.HistoryEntry
}

// TopicSummary is the per-topic drill-down.
type TopicSummary struct {
	LearnerID          string
	Topic              string
	Mastery            float64
	TimeSpentMins      int
	ExercisesCompleted int
	// Accuracy is correct exercises over exercises attempted, 0 when
	// no exercises exist.
	Accuracy float64
}

// Aggregator answers reporting queries from the persisted graph and
// history. It never writes.
type Aggregator struct {
	users store.UserStore

	// now is replaced in tests to pin the weekly window.
	now func() time.Time
}

// NewAggregator creates an Aggregator over the user store.
func NewAggregator(users store.UserStore) *Aggregator {
	return &Aggregator{users: users, now: time.Now}
}

// Summary builds the learner's progress summary. An absent learner
// yields a zero-valued summary, never an error.
func (a *Aggregator) Summary(ctx context.Context, learnerID string) (*Summary, error) {
	rec, err := a.users.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load learner %s: %w", learnerID, err)
	}

	graph := knowledge.GraphFromMap(rec.KnowledgeGraph)

	s := &Summary{
		LearnerID:       learnerID,
		TotalLessons:    len(rec.History),
		CompletedTopics: len(graph.Topics),
		AverageMastery:  averageMastery(graph),
		WeeklyActivity:  weeklyActivity(rec.History, a.now().UTC()),
		KnowledgeLevel:  knowledge.LevelBeginner,
		RecentActivity:  recent(rec.History),
	}
	if graph.Level.Valid() {
		s.KnowledgeLevel = graph.Level
	}
	return s, nil
}

// TopicProgress builds the drill-down for one topic.
func (a *Aggregator) TopicProgress(ctx context.Context, learnerID, topic string) (*TopicSummary, error) {
	rec, err := a.users.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load learner %s: %w", learnerID, err)
	}

	graph := knowledge.GraphFromMap(rec.KnowledgeGraph)

	t := &TopicSummary{
		LearnerID: learnerID,
		Topic:     topic,
		Mastery:   graph.Mastery(topic),
	}

	var exercises, correct int
	for _, entry := range rec.History {
		if entry.Topic != topic {
			continue
		}
		t.TimeSpentMins += entry.TimeSpent
		if entry.Kind == "exercise" {
			exercises++
			if entry.Correct {
				correct++
			}
		}
	}
	t.ExercisesCompleted = exercises
	if exercises > 0 {
		t.Accuracy = float64(correct) / float64(exercises)
	}
	return t, nil
}

func averageMastery(g knowledge.Graph) float64 {
	if len(g.Topics) == 0 {
		return 0
	}
	var sum float64
	for _, m := range g.Topics {
		sum += m
	}
	return sum / float64(len(g.Topics))
}

// weeklyActivity buckets history entries into the trailing 7 UTC
// calendar days ending at now's day, oldest day first.
func weeklyActivity(entries []store.HistoryEntry, now time.Time) [7]int {
	var out [7]int
	today := now.Truncate(24 * time.Hour)
	for _, entry := range entries {
		day := entry.CompletedAt.UTC().Truncate(24 * time.Hour)
		offset := int(today.Sub(day).Hours() / 24)
		if offset < 0 || offset > 6 {
			continue
		}
		out[6-offset]++
	}
	return out
}

func recent(entries []store.HistoryEntry) []store.HistoryEntry {
	sorted := make([]store.HistoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}
