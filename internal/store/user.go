package store

import (
	"context"
	"fmt"

	"github.com/devraj/learnpath/ent"
	"github.com/devraj/learnpath/ent/historyentry"
	"github.com/devraj/learnpath/ent/learner"
)

// userStore implements UserStore using the ent client.
type userStore struct {
	client *ent.Client
}

func (s *userStore) Get(ctx context.Context, learnerID string) (*LearnerRecord, error) {
	rec := &LearnerRecord{
		LearnerID:      learnerID,
		KnowledgeGraph: map[string]any{},
	}

	l, err := s.client.Learner.Query().
		Where(learner.LearnerIDEQ(learnerID)).
		Only(ctx)
	switch {
	case err == nil:
		rec.KnowledgeGraph = l.KnowledgeGraph
		rec.Version = l.Version
	case ent.IsNotFound(err):
		// Absent learner reads as empty defaults at version 0.
	default:
		return nil, fmt.Errorf("query learner %s: %w", learnerID, err)
	}

	entries, err := s.client.HistoryEntry.Query().
		Where(historyentry.LearnerIDEQ(learnerID)).
		Order(ent.Desc(historyentry.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history for %s: %w", learnerID, err)
	}

	rec.History = make([]HistoryEntry, len(entries))
	for i, e := range entries {
		rec.History[i] = HistoryEntry{
			ID:          e.ID,
			LearnerID:   e.LearnerID,
			Topic:       e.Topic,
			Kind:        e.Kind,
			TimeSpent:   e.TimeSpent,
			Correct:     e.Correct,
			Payload:     e.Payload,
			CompletedAt: e.CompletedAt,
		}
	}

	return rec, nil
}

func (s *userStore) ReplaceKnowledgeGraph(ctx context.Context, learnerID string, graph map[string]any, version int64) error {
	if version == 0 {
		// The learner may not exist yet; try to create first.
		_, err := s.client.Learner.Create().
			SetLearnerID(learnerID).
			SetKnowledgeGraph(graph).
			SetVersion(1).
			Save(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("create learner %s: %w", learnerID, err)
		}
		// Already exists: fall through to the guarded update.
	}

	n, err := s.client.Learner.Update().
		Where(
			learner.LearnerIDEQ(learnerID),
			learner.VersionEQ(version),
		).
		SetKnowledgeGraph(graph).
		SetVersion(version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replace knowledge graph for %s: %w", learnerID, err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (s *userStore) AppendHistory(ctx context.Context, learnerID string, entry HistoryEntry) error {
	create := s.client.HistoryEntry.Create().
		SetLearnerID(learnerID).
		SetTopic(entry.Topic).
		SetKind(entry.Kind).
		SetTimeSpent(entry.TimeSpent).
		SetCorrect(entry.Correct)
	if entry.Payload != nil {
		create.SetPayload(entry.Payload)
	}
	if !entry.CompletedAt.IsZero() {
		create.SetCompletedAt(entry.CompletedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append history for %s: %w", learnerID, err)
	}
	return nil
}

func (s *userStore) ListLearnerIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.Learner.Query().
		Order(ent.Asc(learner.FieldLearnerID)).
		Select(learner.FieldLearnerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	return ids, nil
}
