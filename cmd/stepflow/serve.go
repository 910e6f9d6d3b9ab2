package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mark3labs/stepflow/internal/flowfile"
	"github.com/mark3labs/stepflow/internal/flowmcp"
	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/wizard"
)

var serveFlags struct {
	printURL bool
}

var serveCmd = &cobra.Command{
	Use:   "serve <flow.yml>",
	Short: "Run a flow headlessly, driven by agents over MCP",
	Long: `Run a flow headlessly, driven by agents over MCP.

The wizard engine runs without a terminal UI; an MCP server on a random
localhost port exposes tools to inspect the navigation state, press the
controls and jump between steps. The command exits when the flow
finishes or is cancelled.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.printURL, "print-url", false, "Print only the MCP endpoint URL on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := loadEnvironment(); err != nil {
		return err
	}

	flow, err := flowfile.Load(args[0])
	if err != nil {
		return err
	}

	reg, err := flow.Registry()
	if err != nil {
		return err
	}

	surface := flowmcp.NewHeadlessSurface()
	engine := wizard.NewEngine(flow.Title, reg, surface)

	server := flowmcp.New(flow.Slug())
	port, err := server.Start(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := server.Stop(); err != nil {
			logger.Warn("MCP server stop: %v", err)
		}
	}()

	if serveFlags.printURL {
		fmt.Println(server.URL())
	} else {
		fmt.Printf("Serving %q on %s (port %d)\n", flow.Title, server.URL(), port)
	}

	if err := flowmcp.Drive(ctx, engine, flow.Slug(), surface, server.Commands()); err != nil {
		// Interrupt is a normal way to stop serving
		logger.Info("Serve loop ended: %v", err)
		fmt.Println("Flow cancelled.")
		return nil
	}

	if engine.FinishCommitted() {
		fmt.Println("Flow finished.")
	} else {
		fmt.Println("Flow cancelled.")
	}
	return nil
}
