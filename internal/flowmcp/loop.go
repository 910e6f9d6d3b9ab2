package flowmcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/wizard"
)

// HeadlessSurface is the wizard.Surface for driver-only runs: it keeps
// the derived presentation values in memory and records close requests.
type HeadlessSurface struct {
	Title    string
	Labels   map[wizard.Control]string
	Visible  map[wizard.Control]bool
	focused  wizard.Control
	closedCh chan struct{}
	closed   bool
}

// NewHeadlessSurface creates a surface with no UI behind it.
func NewHeadlessSurface() *HeadlessSurface {
	return &HeadlessSurface{
		Labels:   make(map[wizard.Control]string),
		Visible:  make(map[wizard.Control]bool),
		closedCh: make(chan struct{}),
	}
}

func (h *HeadlessSurface) SetTitle(title string) { h.Title = title }

func (h *HeadlessSurface) SetControlLabel(c wizard.Control, label string) { h.Labels[c] = label }

func (h *HeadlessSurface) SetControlVisible(c wizard.Control, visible bool) { h.Visible[c] = visible }

func (h *HeadlessSurface) SetFocus(c wizard.Control) { h.focused = c }

func (h *HeadlessSurface) HasFocus(c wizard.Control) bool { return c == h.focused }

func (h *HeadlessSurface) Relayout() {}

func (h *HeadlessSurface) Redraw() {}

// RequestClose marks the run closed and unblocks the drive loop.
func (h *HeadlessSurface) RequestClose() {
	if h.closed {
		return
	}
	h.closed = true
	close(h.closedCh)
}

// Closed returns a channel closed when the engine requested close.
func (h *HeadlessSurface) Closed() <-chan struct{} { return h.closedCh }

// Drive runs the engine loop for a headless run: it initializes the
// engine and then applies driver commands one at a time until the engine
// requests close or the context ends. All engine access happens on this
// goroutine.
func Drive(ctx context.Context, engine *wizard.Engine, flowSlug string, surface *HeadlessSurface, commands <-chan Command) error {
	engine.Initialize()

	for {
		select {
		case cmd := <-commands:
			cmd.ResultCh <- apply(engine, flowSlug, cmd)

		case <-surface.Closed():
			logger.Info("Headless run closed (finished=%v)", engine.FinishCommitted())
			if !engine.FinishCommitted() {
				engine.NotifyClosing()
			}
			return nil

		case <-ctx.Done():
			engine.NotifyClosing()
			return ctx.Err()
		}
	}
}

// apply executes one command against the engine and snapshots the result.
func apply(engine *wizard.Engine, flowSlug string, cmd Command) Result {
	res := Result{}

	switch cmd.Kind {
	case CmdState:
		// Snapshot only.

	case CmdForward:
		res.Rejected = !engine.Forward()

	case CmdBack:
		res.Rejected = !engine.Back()

	case CmdGoToStep:
		target := engine.Registry().Lookup(cmd.StepID)
		if target == nil {
			res.Err = fmt.Errorf("%w: %s", wizard.ErrStepNotFound, cmd.StepID)
			return res
		}
		res.Rejected = !engine.GoToStep(target)

	case CmdSetEnabled:
		step := engine.Registry().Lookup(cmd.StepID)
		if step == nil {
			res.Err = fmt.Errorf("%w: %s", wizard.ErrStepNotFound, cmd.StepID)
			return res
		}
		step.SetEnabled(cmd.Enabled)

	default:
		res.Err = fmt.Errorf("unknown command kind %d", cmd.Kind)
		return res
	}

	res.State = Snapshot(engine, flowSlug)
	return res
}

// Snapshot captures the engine's navigation state.
func Snapshot(engine *wizard.Engine, flowSlug string) StateSnapshot {
	snap := StateSnapshot{
		Flow:     flowSlug,
		Title:    engine.Title(),
		Finished: engine.FinishCommitted(),
	}
	current := engine.Current()
	if current != nil {
		snap.Current = current.ID()
	}

	for _, s := range engine.Registry().Steps() {
		snap.Steps = append(snap.Steps, StepState{
			ID:      s.ID(),
			Title:   s.Title(),
			Enabled: s.Enabled(),
			Current: s == current,
		})
	}
	return snap
}

// snapshotResult renders a command result as an MCP tool response.
func snapshotResult(res Result) (*mcp.CallToolResult, error) {
	payload := struct {
		StateSnapshot
		Rejected bool `json:"rejected,omitempty"`
	}{StateSnapshot: res.State, Rejected: res.Rejected}

	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
