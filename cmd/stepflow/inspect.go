package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mark3labs/stepflow/internal/flowfile"
	"github.com/mark3labs/stepflow/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <flow.yml>",
	Short: "Validate a flow file and print its steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	if _, err := loadEnvironment(); err != nil {
		return err
	}

	flow, err := flowfile.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n\n", flow.Title, flow.Slug())
	fmt.Printf("%-4s %-20s %-8s %-24s %s\n", "#", "ID", "KIND", "TITLE", "ENABLED")
	for i := range flow.Steps {
		d := &flow.Steps[i]
		fmt.Printf("%-4d %-20s %-8s %-24s %v\n", i+1, d.ID, d.Kind, d.Title, d.IsEnabled())
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading flow source: %w", err)
	}
	fmt.Println()
	fmt.Println(tui.HighlightYAML(string(source)))

	return nil
}
