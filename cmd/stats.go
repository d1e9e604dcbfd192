package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/totli/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and answer accuracy",
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

		fmt.Printf("%s, age %d", rec.Profile.Name, rec.Profile.Age)
		if rec.Profile.LearningLevel != "" {
			fmt.Printf(" (%s)", rec.Profile.LearningLevel)
		}
		fmt.Println()
		fmt.Printf("Lessons completed: %d\n", len(rec.Context.PreviousLessons))

		if len(rec.Context.Progress) > 0 {
			fmt.Println()
			fmt.Println("Progress by Subject")
			fmt.Println(strings.Repeat("─", 40))
			subjects := make([]string, 0, len(rec.Context.Progress))
			for s := range rec.Context.Progress {
				subjects = append(subjects, s)
			}
			sort.Strings(subjects)
			for _, s := range subjects {
				fmt.Printf("%-16s  %5.1f%%\n", s, rec.Context.Progress[s])
			}
		}

		acc, err := st.EventRepo().AnswerAccuracyBySubject(ctx)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		if len(acc) > 0 {
			fmt.Println()
			fmt.Println("Answer Accuracy")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("%-16s  %8s  %8s  %7s\n", "Subject", "Answered", "Correct", "Rate")
			fmt.Println(strings.Repeat("─", 40))
			for _, a := range acc {
				rate := 0.0
				if a.Attempts > 0 {
					rate = float64(a.Correct) / float64(a.Attempts) * 100
				}
				fmt.Printf("%-16s  %8d  %8d  %6.1f%%\n", a.Subject, a.Attempts, a.Correct, rate)
			}
		}

		printTally("Strengths", rec.Context.Strengths)
		printTally("Weaknesses", rec.Context.Weaknesses)
		return nil
	},
}

// printTally collapses repeated entries for display; repetition in the
// stored list carries frequency, shown here as a count.
func printTally(title string, items []string) {
	if len(items) == 0 {
		return
	}
	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 40))
	for _, it := range order {
		if n := counts[it]; n > 1 {
			fmt.Printf("  %s ×%d\n", it, n)
		} else {
			fmt.Printf("  %s\n", it)
		}
	}
}
