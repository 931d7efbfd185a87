package cmd

import (
	"fmt"
	"strings"

	"github.com/devraj/learnpath/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a learner's progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		topic, _ := cmd.Flags().GetString("topic")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		agg := progress.NewAggregator(s.UserStore())

		if topic != "" {
			ts, err := agg.TopicProgress(ctx, learnerID, topic)
			if err != nil {
				return fmt.Errorf("topic progress: %w", err)
			}
			printTopicProgress(ts)
			return nil
		}

		summary, err := agg.Summary(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("progress summary: %w", err)
		}
		printSummary(summary)
		return nil
	},
}

func printSummary(s *progress.Summary) {
	fmt.Println(styleHeading.Render(fmt.Sprintf("Progress for %s", s.LearnerID)))
	fmt.Printf("%s %s\n", styleLabel.Render("Level:"), s.KnowledgeLevel)
	fmt.Printf("%s %d\n", styleLabel.Render("Lessons completed:"), s.TotalLessons)
	fmt.Printf("%s %s\n", styleLabel.Render("Average mastery:"), masteryStyle(s.AverageMastery).Render(fmt.Sprintf("%.2f", s.AverageMastery)))

	fmt.Printf("%s %d\n", styleLabel.Render("Topics studied:"), s.CompletedTopics)
	fmt.Printf("%s %s\n", styleLabel.Render("Last 7 days:"), sparkline(s.WeeklyActivity))

	if len(s.RecentActivity) > 0 {
		fmt.Println()
		fmt.Println(styleHeading.Render("Recent activity"))
		for _, e := range s.RecentActivity {
			mark := styleWeak.Render("✗")
			if e.Correct {
				mark = styleStrong.Render("✓")
			}
			fmt.Printf("  %s  %-12s %-10s %3d min  %s\n",
				e.CompletedAt.Local().Format("2006-01-02 15:04"), e.Topic, e.Kind, e.TimeSpent, mark)
		}
	}
}

func printTopicProgress(t *progress.TopicSummary) {
	fmt.Println(styleHeading.Render(fmt.Sprintf("%s / %s", t.LearnerID, t.Topic)))
	fmt.Printf("%s %s\n", styleLabel.Render("Mastery:"), masteryStyle(t.Mastery).Render(fmt.Sprintf("%.2f", t.Mastery)))
	fmt.Printf("%s %d min\n", styleLabel.Render("Time spent:"), t.TimeSpentMins)
	fmt.Printf("%s %d\n", styleLabel.Render("Exercises:"), t.ExercisesCompleted)
	fmt.Printf("%s %.0f%%\n", styleLabel.Render("Accuracy:"), t.Accuracy*100)
}

// sparkline renders seven activity counts, oldest day first.
func sparkline(days [7]int) string {
	levels := []rune("·▁▂▃▅▇")
	var b strings.Builder
	for _, n := range days {
		i := n
		if i >= len(levels) {
			i = len(levels) - 1
		}
		b.WriteRune(levels[i])
	}
	return b.String()
}

func init() {
	progressCmd.Flags().String("learner", "", "Learner ID")
	progressCmd.Flags().String("topic", "", "Show per-topic detail instead of the summary")
}
