package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/stepflow/internal/journal"
)

var historyFlags struct {
	dataDir string
}

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded runs, or replay one run's events",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlags.dataDir, "data-dir", "", "Journal directory (default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadEnvironment()
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if historyFlags.dataDir != "" {
		dataDir = historyFlags.dataDir
	}

	store, closeJournal, err := openJournal(ctx, dataDir)
	if err != nil {
		return err
	}
	defer closeJournal()

	if len(args) == 0 {
		return listRuns(cmd, store)
	}
	return showRun(cmd, store, args[0])
}

func listRuns(cmd *cobra.Command, store *journal.Store) error {
	runs, err := store.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("%-28s %-18s %-20s %-10s %s\n", "RUN", "FLOW", "STARTED", "OUTCOME", "STEPS")
	for _, r := range runs {
		outcome := r.Outcome
		if outcome == "" {
			outcome = "open"
		}
		fmt.Printf("%-28s %-18s %-20s %-10s %d\n",
			r.RunID, r.Flow, r.StartedAt.Format("2006-01-02 15:04:05"), outcome, r.Steps)
	}
	return nil
}

func showRun(cmd *cobra.Command, store *journal.Store, runID string) error {
	run, err := store.LoadRun(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if run.StartedAt.IsZero() && len(run.Visits) == 0 {
		return fmt.Errorf("run %q not found", runID)
	}

	outcome := run.Outcome
	if outcome == "" {
		outcome = "open"
	}
	fmt.Printf("Run:     %s\n", run.RunID)
	fmt.Printf("Flow:    %s\n", run.Flow)
	fmt.Printf("Started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	if !run.EndedAt.IsZero() {
		fmt.Printf("Ended:   %s\n", run.EndedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Outcome: %s\n", outcome)

	if len(run.Visits) > 0 {
		fmt.Println("\nSteps visited:")
		for _, v := range run.Visits {
			fmt.Printf("  %s  %s\n", v.EnteredAt.Format("15:04:05"), v.StepID)
		}
	}

	if len(run.Fields) > 0 {
		fmt.Println("\nAnswers:")
		for name, value := range run.Fields {
			fmt.Printf("  %s: %s\n", name, value)
		}
	}
	return nil
}
