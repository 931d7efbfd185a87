package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/devraj/learnpath/internal/progress"
	"github.com/devraj/learnpath/internal/store"
)

// Report is one learner's weekly roll-up.
type Report struct {
	LearnerID string
	Summary   *progress.Summary
	// ActiveDays counts days in the trailing week with any activity.
	ActiveDays int
}

// WeeklyReport builds a progress report for every learner.
type WeeklyReport struct {
	users      store.UserStore
	aggregator *progress.Aggregator
}

// NewWeeklyReport creates the report job.
func NewWeeklyReport(users store.UserStore, aggregator *progress.Aggregator) *WeeklyReport {
	if aggregator == nil {
		aggregator = progress.NewAggregator(users)
	}
	return &WeeklyReport{users: users, aggregator: aggregator}
}

// Run builds all reports. Per-learner failures are logged and the
// learner skipped.
func (w *WeeklyReport) Run(ctx context.Context) ([]Report, error) {
	ids, err := w.users.ListLearnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	reports := make([]Report, 0, len(ids))
	for _, id := range ids {
		summary, err := w.aggregator.Summary(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: report failed for %s: %v\n", id, err)
			continue
		}
		active := 0
		for _, n := range summary.WeeklyActivity {
			if n > 0 {
				active++
			}
		}
		reports = append(reports, Report{LearnerID: id, Summary: summary, ActiveDays: active})
	}
	return reports, nil
}
