package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/totli/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner profile and adaptive context",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Print("This deletes the profile, progress, strengths, and weaknesses. Continue? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.LearnerRepo().Wipe(cmd.Context()); err != nil {
			return fmt.Errorf("wipe learner data: %w", err)
		}
		fmt.Println("Learner data erased. The next launch starts with onboarding.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
