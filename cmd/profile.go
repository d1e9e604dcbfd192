package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/totli/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the learner profile",
	Long: "Show the learner profile. Pass flags to change fields, e.g.\n" +
		"  totli profile --language urdu --level intermediate",
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

		ctx := cmd.Context()
		rec, err := st.LearnerRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}
		if rec == nil {
			fmt.Println("No learner profile yet. Run totli to get started.")
			return nil
		}

		changed := false
		setString := func(flag string, dst *string) {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				*dst = strings.TrimSpace(v)
				changed = true
			}
		}
		setString("name", &rec.Profile.Name)
		setString("language", &rec.Profile.PreferredLanguage)
		setString("level", &rec.Profile.LearningLevel)
		setString("parent-name", &rec.Parent.Name)
		setString("parent-email", &rec.Parent.Email)
		if cmd.Flags().Changed("age") {
			rec.Profile.Age, _ = cmd.Flags().GetInt("age")
			changed = true
		}

		if changed {
			if err := rec.Profile.Validate(); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}
			if err := st.LearnerRepo().Save(ctx, rec); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			fmt.Println("Profile updated.")
			fmt.Println()
		}

		fmt.Printf("Name:      %s\n", rec.Profile.Name)
		fmt.Printf("Age:       %d\n", rec.Profile.Age)
		fmt.Printf("Language:  %s\n", valueOr(rec.Profile.PreferredLanguage, "english"))
		fmt.Printf("Level:     %s\n", valueOr(rec.Profile.LearningLevel, "(not set)"))
		fmt.Printf("Parent:    %s\n", valueOr(rec.Parent.Name, "(not set)"))
		fmt.Printf("Email:     %s\n", valueOr(rec.Parent.Email, "(not set)"))
		return nil
	},
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	profileCmd.Flags().String("name", "", "Child's name")
	profileCmd.Flags().Int("age", 0, "Child's age")
	profileCmd.Flags().String("language", "", "Preferred language")
	profileCmd.Flags().String("level", "", "Learning level (beginner, intermediate, advanced)")
	profileCmd.Flags().String("parent-name", "", "Parent or guardian name")
	profileCmd.Flags().String("parent-email", "", "Parent or guardian email")
}
