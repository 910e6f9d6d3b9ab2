package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/internal/tui/theme"
)

const (
	logoText1 = "█▀ ▀█▀ █▀▀ █▀█ █▀▀ █   █▀█ █ █ █"
	logoText2 = "▄█  █  ██▄ █▀  █▀  █▄▄ █▄█ ▀▄▀▄▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stepflow",
	Short: "Wizard flows in the terminal, with run history and an agent driver",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

stepflow runs YAML-defined wizard flows as a full-screen terminal UI.
A reusable navigation engine drives ordered steps with skip, back and
cancel semantics; every run is journaled to embedded NATS JetStream,
and flows can be driven headlessly by agents over MCP.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(setupCmd)
}
