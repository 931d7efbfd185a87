package cmd

import (
	"fmt"

	"github.com/devraj/learnpath/internal/batch"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "List learners due for a study reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		scan := batch.NewReminderScan(s.UserStore())
		reminders, err := scan.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("reminder scan: %w", err)
		}

		if len(reminders) == 0 {
			fmt.Println("All learners active, nothing to send.")
			return nil
		}

		for _, r := range reminders {
			last := "never"
			if !r.LastActivity.IsZero() {
				last = r.LastActivity.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-20s %-6s last active %s\n", r.LearnerID, r.Reason, last)
		}
		return nil
	},
}
