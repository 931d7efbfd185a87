package cmd

import (
	"fmt"

	"github.com/devraj/learnpath/internal/batch"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a weekly summary for every learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		weekly := batch.NewWeeklyReport(s.UserStore(), nil)
		reports, err := weekly.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("weekly report: %w", err)
		}

		if len(reports) == 0 {
			fmt.Println("No learners found.")
			return nil
		}

		fmt.Printf("%-20s  %-12s  %7s  %7s  %6s  %s\n",
			"Learner", "Level", "Lessons", "Topics", "Avg", "Active days")
		for _, r := range reports {
			fmt.Printf("%-20s  %-12s  %7d  %7d  %6.2f  %d/7\n",
				r.LearnerID,
				r.Summary.KnowledgeLevel,
				r.Summary.TotalLessons,
				r.Summary.CompletedTopics,
				r.Summary.AverageMastery,
				r.ActiveDays)
		}
		return nil
	},
}
