package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/stepflow/internal/flowfile"
	"github.com/mark3labs/stepflow/internal/git"
	"github.com/mark3labs/stepflow/internal/hooks"
	"github.com/mark3labs/stepflow/internal/journal"
	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/internal/state"
	"github.com/mark3labs/stepflow/internal/tui"
	"github.com/mark3labs/stepflow/wizard"
)

var runFlags struct {
	out       string
	dataDir   string
	noJournal bool
}

var runCmd = &cobra.Command{
	Use:   "run [flow.yml]",
	Short: "Run a wizard flow in the terminal",
	Long: `Run a wizard flow in the terminal.

With no argument, the flow from the previous run is used. Collected
answers are written as YAML when the flow finishes; cancelled runs
write nothing. Every run is recorded in the journal unless
--no-journal is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.out, "out", "o", "", "Answers file to write (default <flow>.answers.yml)")
	runCmd.Flags().StringVar(&runFlags.dataDir, "data-dir", "", "Journal and state directory (default from config)")
	runCmd.Flags().BoolVar(&runFlags.noJournal, "no-journal", false, "Skip recording this run in the journal")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadEnvironment()
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if runFlags.dataDir != "" {
		dataDir = runFlags.dataDir
	}

	flowPath, err := resolveFlowPath(args, dataDir)
	if err != nil {
		return err
	}

	flow, err := flowfile.Load(flowPath)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(flow)
	if err != nil {
		return err
	}

	runID := journal.NewRunID(flow.Slug())

	var rec *journal.Recorder
	if !runFlags.noJournal {
		store, closeJournal, err := openJournal(ctx, dataDir)
		if err != nil {
			// The journal never blocks a run
			logger.Warn("Journal unavailable, running without it: %v", err)
		} else {
			defer closeJournal()
			rec = journal.NewRecorder(store, runID, flow.Slug())
			rec.RecordStarted(ctx)
			// Initialize is idempotent; selecting the first step now
			// lets Attach journal the first visit.
			m.Engine().Initialize()
			rec.Attach(ctx, m.Engine())
		}
	}

	flowHooks := effectiveHooks(flow)
	attachStepHook(ctx, m.Engine(), flowHooks.OnStep, flow.Slug(), runID)

	res, err := m.Run()
	if err != nil {
		return err
	}

	if err := state.Save(dataDir, &state.UIState{LastFlow: flowPath, LastRun: runID}); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}

	vars := hooks.Variables{Flow: flow.Slug(), Run: runID}

	if !res.Finished {
		if out, err := hooks.Execute(ctx, flowHooks.OnCancel, ".", vars); err == nil && out != "" {
			logger.Debug("on_cancel hook output: %s", out)
		}
		fmt.Println("Flow cancelled; no answers written.")
		return nil
	}

	if rec != nil {
		for name, value := range res.Answers {
			rec.RecordField(ctx, name, value)
		}
		rec.RecordFinished(ctx)
	}

	outPath := resolveOutPath(cfg.Output, flow)
	if err := writeAnswers(outPath, res.Answers); err != nil {
		return err
	}
	fmt.Printf("Flow finished; answers written to %s\n", outPath)

	if out, err := hooks.Execute(ctx, flowHooks.OnFinish, ".", vars); err == nil && out != "" {
		logger.Debug("on_finish hook output: %s", out)
	}

	if cfg.AutoCommit {
		commitAnswers(outPath, flow)
	}

	return nil
}

// resolveFlowPath picks the flow argument, falling back to the flow of
// the previous run.
func resolveFlowPath(args []string, dataDir string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	ui := state.Load(dataDir)
	if ui.LastFlow == "" {
		return "", fmt.Errorf("no flow given and no previous run to repeat")
	}
	logger.Info("Reusing last flow %s", ui.LastFlow)
	return ui.LastFlow, nil
}

// effectiveHooks merges the flow file's hooks with the workspace hooks
// file; the flow file wins per event.
func effectiveHooks(flow *flowfile.Flow) hooks.HooksConfig {
	merged := flow.Hooks

	ws, err := hooks.LoadConfig(".")
	if err != nil {
		logger.Warn("Failed to load workspace hooks: %v", err)
		return merged
	}
	if ws == nil {
		return merged
	}

	if merged.OnStep == nil {
		merged.OnStep = ws.Hooks.OnStep
	}
	if merged.OnFinish == nil {
		merged.OnFinish = ws.Hooks.OnFinish
	}
	if merged.OnCancel == nil {
		merged.OnCancel = ws.Hooks.OnCancel
	}
	return merged
}

// attachStepHook runs the on_step hook on every committed transition.
// Execution happens off the UI goroutine; output and failures only land
// in the log.
func attachStepHook(ctx context.Context, engine *wizard.Engine, hook *hooks.HookConfig, flowSlug, runID string) {
	if hook == nil || hook.Command == "" {
		return
	}

	engine.Hooks().OnStepChanged(func(tr *wizard.Transition) {
		if tr.To == nil {
			return
		}
		vars := hooks.Variables{Flow: flowSlug, Step: tr.To.ID(), Run: runID}
		go func() {
			if out, err := hooks.Execute(ctx, hook, ".", vars); err == nil && out != "" {
				logger.Debug("on_step hook output: %s", out)
			}
		}()
	})
}

func resolveOutPath(configured string, flow *flowfile.Flow) string {
	if runFlags.out != "" {
		return runFlags.out
	}
	if configured != "" {
		return configured
	}
	return flow.Slug() + ".answers.yml"
}

func writeAnswers(path string, answers map[string]string) error {
	data, err := yaml.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing answers file: %w", err)
	}
	return nil
}

// commitAnswers commits the answers file when the working directory is a
// git repository. Failures are logged, never fatal.
func commitAnswers(path string, flow *flowfile.Flow) {
	info, err := git.GetInfo(".")
	if err != nil || info == nil {
		logger.Debug("Skipping auto-commit: not a git repository")
		return
	}

	msg := fmt.Sprintf("Record answers for %s flow", flow.Slug())
	if err := git.CommitFile(".", path, msg); err != nil {
		logger.Warn("Auto-commit failed: %v", err)
		return
	}
	logger.Info("Committed %s on %s", path, info.Branch)
}
