// Package flowmcp exposes a running wizard to agents over MCP: inspect
// the navigation state, press the controls, jump between steps. Handlers
// never touch the engine directly; they hand typed commands with result
// channels to the single goroutine that owns it.
package flowmcp

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/stepflow/internal/logger"
)

// CommandKind identifies one driver operation.
type CommandKind int

const (
	CmdState CommandKind = iota
	CmdForward
	CmdBack
	CmdGoToStep
	CmdSetEnabled
)

// Command is one request for the engine-owning loop. The MCP handler
// blocks on ResultCh until the loop replies.
type Command struct {
	Kind     CommandKind
	StepID   string
	Enabled  bool
	ResultCh chan Result
}

// Result is the loop's reply to a command.
type Result struct {
	State    StateSnapshot
	Rejected bool // the engine refused the transition
	Err      error
}

// StateSnapshot is the wire form of the navigation state.
type StateSnapshot struct {
	Flow     string      `json:"flow"`
	Title    string      `json:"title"`
	Current  string      `json:"current,omitempty"`
	Finished bool        `json:"finished"`
	Steps    []StepState `json:"steps"`
}

// StepState is one step in a snapshot.
type StepState struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
	Current bool   `json:"current"`
}

// Server manages the flow-driver MCP server.
type Server struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	port       int
	mu         sync.Mutex

	flowSlug  string
	commandCh chan Command
}

// New creates a new flow MCP server instance.
// The server is not started until Start() is called.
func New(flowSlug string) *Server {
	return &Server{
		flowSlug:  flowSlug,
		commandCh: make(chan Command),
	}
}

// Commands returns the channel the engine-owning loop consumes.
func (s *Server) Commands() <-chan Command {
	return s.commandCh
}

// Start starts the MCP HTTP server on a random available port.
// Returns the port number or an error if startup fails.
func (s *Server) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"stepflow-driver",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	// Find a random available port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find available port: %w", err)
	}

	// Get the port that was assigned
	s.port = listener.Addr().(*net.TCPAddr).Port
	// NOTE: There's a small race window between closing this listener and
	// httpServer.Start() binding to the same port. This is acceptable for
	// local development but could cause intermittent failures under load.
	_ = listener.Close()

	// Create HTTP server with stateless mode
	s.httpServer = server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)

	logger.Debug("Starting flow MCP server on port %d", s.port)

	// Start server in background
	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	httpServer := s.httpServer
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(addr); err != nil {
			logger.Error("Flow MCP server error: %v", err)
			errCh <- err
			return
		}
		errCh <- nil
	}()

	// Give the server a moment to start or fail
	select {
	case err := <-errCh:
		if err != nil {
			return 0, fmt.Errorf("failed to start HTTP server: %w", err)
		}
	case <-time.After(100 * time.Millisecond):
		// Server started successfully (no immediate error)
	}

	logger.Debug("Flow MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop stops the MCP HTTP server and cleans up resources.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil {
		return nil // Already stopped
	}

	logger.Debug("Stopping flow MCP server")
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping flow MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.httpServer = nil
	s.mcpServer = nil
	return nil
}

// URL returns the HTTP URL for the MCP server endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}

// registerTools registers the driver tools with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("wizard-state",
			mcp.WithDescription("Get the wizard's navigation state: all steps, the current step, and whether the run finished"),
		),
		s.handleCommand(func(mcp.CallToolRequest) (Command, error) {
			return Command{Kind: CmdState}, nil
		}),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("press-forward",
			mcp.WithDescription("Activate the forward control: advance to the next enabled step, or finish on the last one"),
		),
		s.handleCommand(func(mcp.CallToolRequest) (Command, error) {
			return Command{Kind: CmdForward}, nil
		}),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("press-back",
			mcp.WithDescription("Activate the back control: return to the previous enabled step"),
		),
		s.handleCommand(func(mcp.CallToolRequest) (Command, error) {
			return Command{Kind: CmdBack}, nil
		}),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("go-to-step",
			mcp.WithDescription("Jump directly to a step by id (the step must be enabled)"),
			mcp.WithString("step", mcp.Required(),
				mcp.Description("Step id to jump to"),
			),
		),
		s.handleCommand(func(request mcp.CallToolRequest) (Command, error) {
			stepID, ok := request.GetArguments()["step"].(string)
			if !ok || stepID == "" {
				return Command{}, fmt.Errorf("missing 'step' parameter")
			}
			return Command{Kind: CmdGoToStep, StepID: stepID}, nil
		}),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set-step-enabled",
			mcp.WithDescription("Enable or disable a step by id"),
			mcp.WithString("step", mcp.Required(),
				mcp.Description("Step id to modify"),
			),
			mcp.WithBoolean("enabled", mcp.Required(),
				mcp.Description("New enabled value"),
			),
		),
		s.handleCommand(func(request mcp.CallToolRequest) (Command, error) {
			args := request.GetArguments()
			stepID, ok := args["step"].(string)
			if !ok || stepID == "" {
				return Command{}, fmt.Errorf("missing 'step' parameter")
			}
			enabled, ok := args["enabled"].(bool)
			if !ok {
				return Command{}, fmt.Errorf("missing 'enabled' parameter")
			}
			return Command{Kind: CmdSetEnabled, StepID: stepID, Enabled: enabled}, nil
		}),
	)
}

// handleCommand adapts a command builder into an MCP tool handler that
// routes through the engine loop and renders the resulting snapshot.
func (s *Server) handleCommand(build func(mcp.CallToolRequest) (Command, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd, err := build(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cmd.ResultCh = make(chan Result, 1)

		select {
		case s.commandCh <- cmd:
		case <-ctx.Done():
			return mcp.NewToolResultError("cancelled"), nil
		}

		select {
		case res := <-cmd.ResultCh:
			if res.Err != nil {
				return mcp.NewToolResultError(res.Err.Error()), nil
			}
			return snapshotResult(res)
		case <-ctx.Done():
			return mcp.NewToolResultError("cancelled"), nil
		}
	}
}
