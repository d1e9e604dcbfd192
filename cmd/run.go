package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/totli/internal/app"
	"github.com/abhisek/totli/internal/llm"
	"github.com/abhisek/totli/internal/speech"
	"github.com/abhisek/totli/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		LearnerRepo: st.LearnerRepo(),
		EventRepo:   st.EventRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons and questions will come from the built-in offline set.")
	} else {
		opts.Provider = provider
	}

	bridge := speech.NewBridgeFromEnv()
	defer bridge.Close()
	opts.Bridge = bridge

	return app.Run(opts)
}
