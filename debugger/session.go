// Package debugger provides an interactive session around a
// core.Core: breakpoints, single-stepping, run-to-breakpoint, and a
// tcell/tview text UI that drives it.
package debugger

import (
	"fmt"
	"strings"

	"github.com/thumbsim/core/core"
	"github.com/thumbsim/core/trace"
)

// Session owns one core and its debugging state. It is the part of
// the debugger that has nothing to do with terminal rendering, so it
// can be driven directly by tests or by the api package's websocket
// handlers as well as by the TUI.
type Session struct {
	Core        *core.Core
	Breakpoints *BreakpointManager
	History     *CommandHistory
	Trace       *trace.ExecutionTrace

	// Halted records the last fatal error Step reported, if any. A
	// halted session refuses further Step/Continue calls while this is
	// set; nothing in Session clears it.
	Halted *core.FatalError
}

// NewSession wires a core to a fresh breakpoint manager and history,
// and routes its debug trace through tr (which may be nil to disable
// tracing).
func NewSession(c *core.Core, tr *trace.ExecutionTrace, historySize int) *Session {
	if tr != nil {
		c.Dbg = tr
	}
	return &Session{
		Core:        c,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(historySize),
		Trace:       tr,
	}
}

// Step executes exactly one instruction, regardless of any breakpoint
// at the current PC (that's what "step" means to a user standing on a
// breakpoint already).
func (s *Session) Step() error {
	if s.Halted != nil {
		return fmt.Errorf("debugger: session halted: %v", s.Halted)
	}
	if err := s.Core.Step(); err != nil {
		s.recordHalt(err)
		return err
	}
	return nil
}

// Continue runs until a breakpoint is hit or Step returns an error,
// up to maxSteps instructions (a runaway guard, since a simulated
// program can loop forever). It returns the breakpoint that stopped
// it, or nil if maxSteps was reached first.
func (s *Session) Continue(maxSteps int) (*Breakpoint, error) {
	if s.Halted != nil {
		return nil, fmt.Errorf("debugger: session halted: %v", s.Halted)
	}

	for i := 0; i < maxSteps; i++ {
		if err := s.Core.Step(); err != nil {
			s.recordHalt(err)
			return nil, err
		}
		if bp := s.Breakpoints.Hit(s.Core.R[core.PC]); bp != nil {
			return bp, nil
		}
	}
	return nil, nil
}

func (s *Session) recordHalt(err error) {
	if fe, ok := err.(*core.FatalError); ok {
		s.Halted = fe
	}
	if s.Trace != nil {
		s.Trace.RecordFatal(err)
	}
}

// RegisterDump renders all 16 registers and the condition flags as a
// fixed-width block, the shape the TUI's register panel and the api
// package's status endpoint both use.
func (s *Session) RegisterDump() string {
	var b strings.Builder
	names := []string{"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
		"R8", "R9", "R10", "R11", "R12", "SP", "LR", "PC"}
	for i, name := range names {
		fmt.Fprintf(&b, "%-3s = 0x%08x", name, s.Core.R[i])
		if i%4 == 3 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}
	fmt.Fprintf(&b, "flags: N=%v Z=%v C=%v V=%v\n",
		s.Core.Flags.N, s.Core.Flags.Z, s.Core.Flags.C, s.Core.Flags.V)
	return b.String()
}
