package cmd

import (
	"fmt"

	"github.com/devraj/learnpath/internal/batch"
	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Reassess every learner's knowledge graph from history",
	Long: `Walks all learners and rebuilds each knowledge graph from the
recorded answer history. Meant to run from cron; rerunning is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		analyzer := batch.NewProgressAnalyzer(s.UserStore(), knowledge.NewModel(knowledge.DefaultConfig()), nil)
		result, err := analyzer.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		fmt.Printf("Learners: %d  Updated: %d  Skipped: %d  Failed: %d\n",
			result.Learners, result.Updated, result.Skipped, result.Failed)
		return nil
	},
}
