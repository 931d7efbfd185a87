package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/devraj/learnpath/internal/content"
	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/llm"
	"github.com/devraj/learnpath/internal/path"
	"github.com/devraj/learnpath/internal/store"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate or adapt a learning path",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		goal, _ := cmd.Flags().GetString("goal")
		demo, _ := cmd.Flags().GetBool("demo")
		useLLM, _ := cmd.Flags().GetBool("llm")

		if learnerID == "" && !demo {
			return fmt.Errorf("--learner is required (or use --demo)")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		users := s.UserStore()

		if demo {
			learnerID = "demo"
			if err := seedDemoLearner(ctx, users); err != nil {
				return fmt.Errorf("seed demo learner: %w", err)
			}
			fmt.Println("Seeded demo learner with sample history.")
		}

		rec, err := users.Get(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}

		var provider content.Provider = content.NewTemplateProvider()
		if useLLM {
			lp, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Falling back to template materials.")
			} else {
				provider = content.NewGenProvider(lp, content.NewTemplateProvider())
			}
		}

		planner := path.NewPlanner(knowledge.NewModel(knowledge.DefaultConfig()), provider)
		plan, err := planner.Generate(ctx, learnerID, knowledge.GraphFromMap(rec.KnowledgeGraph), goal)
		if err != nil {
			return fmt.Errorf("generate path: %w", err)
		}

		fb, hasFeedback := feedbackFromFlags(cmd)
		if hasFeedback {
			plan, err = planner.Adapt(plan, fb)
			if err != nil {
				return fmt.Errorf("adapt path: %w", err)
			}
		}

		printPath(plan)
		return nil
	},
}

func feedbackFromFlags(cmd *cobra.Command) (path.Feedback, bool) {
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	interest, _ := cmd.Flags().GetInt("interest")
	timeSpent, _ := cmd.Flags().GetInt("time-spent")
	preferred, _ := cmd.Flags().GetStringSlice("prefer")

	has := cmd.Flags().Changed("difficulty") || cmd.Flags().Changed("interest") ||
		cmd.Flags().Changed("time-spent") || cmd.Flags().Changed("prefer")

	return path.Feedback{
		Difficulty:      difficulty,
		Interest:        interest,
		TimeSpent:       timeSpent,
		PreferredTopics: preferred,
	}, has
}

func printPath(plan *path.Path) {
	fmt.Println(styleHeading.Render(fmt.Sprintf("Learning path for %s", plan.LearnerID)))
	fmt.Printf("%s %s    %s %s    %s %d min\n\n",
		styleLabel.Render("Goal:"), plan.Goal,
		styleLabel.Render("Level:"), plan.Level,
		styleLabel.Render("Total:"), plan.TotalMinutes())

	for i, step := range plan.Steps {
		fmt.Printf("%2d. %-24s %4d min", i+1, step.Topic, step.EstimatedMins)
		if len(step.Prerequisites) > 0 {
			fmt.Printf("  %s", styleLabel.Render("requires "+strings.Join(step.Prerequisites, ", ")))
		}
		fmt.Println()
		if step.Explanation != "" {
			fmt.Printf("    %s\n", styleLabel.Render(truncate(step.Explanation, 96)))
		}
		if n := len(step.Exercises); n > 0 {
			fmt.Printf("    %s\n", styleNote.Render(fmt.Sprintf("%d exercise(s)", n)))
		}
	}

	if plan.Adaptation != nil {
		fmt.Println()
		fmt.Println(styleLabel.Render(fmt.Sprintf("Adapted at %s (difficulty %d, interest %d)",
			plan.AdaptedAt.Local().Format("15:04:05"), plan.Adaptation.Difficulty, plan.Adaptation.Interest)))
	}
}

// seedDemoLearner creates or refreshes a "demo" learner with a partial
// knowledge graph and a few days of history, so the path, progress, and
// batch commands have something to chew on.
func seedDemoLearner(ctx context.Context, users store.UserStore) error {
	rec, err := users.Get(ctx, "demo")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	graph := knowledge.NewGraph()
	graph.Set("variables", 0.82)
	graph.Set("functions", 0.55)
	graph.Set("loops", 0.37)
	graph.Level = knowledge.LevelBeginner
	graph.UpdatedAt = now

	if err := users.ReplaceKnowledgeGraph(ctx, "demo", graph.ToMap(), rec.Version); err != nil {
		return err
	}

	entries := []store.HistoryEntry{
		{Topic: "variables", Kind: "lesson", TimeSpent: 25, Correct: true, CompletedAt: now.Add(-72 * time.Hour)},
		{Topic: "variables", Kind: "exercise", TimeSpent: 10, Correct: true, CompletedAt: now.Add(-48 * time.Hour)},
		{Topic: "functions", Kind: "lesson", TimeSpent: 30, Correct: true, CompletedAt: now.Add(-26 * time.Hour)},
		{Topic: "functions", Kind: "exercise", TimeSpent: 15, Correct: false, CompletedAt: now.Add(-2 * time.Hour)},
	}
	for _, e := range entries {
		if err := users.AppendHistory(ctx, "demo", e); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	pathCmd.Flags().String("learner", "", "Learner ID")
	pathCmd.Flags().String("goal", path.DefaultGoal, "Learning goal")
	pathCmd.Flags().Bool("demo", false, "Seed and use a demo learner")
	pathCmd.Flags().Bool("llm", false, "Generate step materials with the configured LLM provider")
	pathCmd.Flags().Int("difficulty", 0, "Difficulty rating 1-5 (adapts the generated path)")
	pathCmd.Flags().Int("interest", 0, "Interest rating 1-5 (adapts the generated path)")
	pathCmd.Flags().Int("time-spent", 0, "Minutes spent so far (adapts the generated path)")
	pathCmd.Flags().StringSlice("prefer", nil, "Preferred topics to emphasize")
}
