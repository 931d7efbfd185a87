package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/devraj/learnpath/internal/store"
)

// idleThreshold is how long without activity before a learner is due
// a reminder.
const idleThreshold = 3 * 24 * time.Hour

// Reminder flags one learner for outreach.
type Reminder struct {
	LearnerID string
	// Reason is "new" for learners with no history yet, "idle" for
	// lapsed ones.
	Reason       string
	LastActivity time.Time // zero for new learners
}

// ReminderScan finds learners due a reminder: anyone idle past the
// threshold, plus brand-new learners who have not started.
type ReminderScan struct {
	users store.UserStore

	now func() time.Time
}

// NewReminderScan creates a scanner over the user store.
func NewReminderScan(users store.UserStore) *ReminderScan {
	return &ReminderScan{users: users, now: time.Now}
}

// Run scans all learners and returns those due a reminder. Actual
// delivery is outside this engine; callers route the list to whatever
// channel they have.
func (r *ReminderScan) Run(ctx context.Context) ([]Reminder, error) {
	ids, err := r.users.ListLearnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	cutoff := r.now().UTC().Add(-idleThreshold)

	var due []Reminder
	for _, id := range ids {
		rec, err := r.users.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load learner %s: %w", id, err)
		}

		if len(rec.History) == 0 {
			due = append(due, Reminder{LearnerID: id, Reason: "new"})
			continue
		}

		last := rec.History[0].CompletedAt
		for _, entry := range rec.History {
			if entry.CompletedAt.After(last) {
				last = entry.CompletedAt
			}
		}
		if last.Before(cutoff) {
			due = append(due, Reminder{LearnerID: id, Reason: "idle", LastActivity: last})
		}
	}
	return due, nil
}
