package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the terminal front end around a Session: a register panel,
// a scrolling output log, and a command line, in the same
// flex-layout-plus-input-capture shape as the rest of the tcell/tview
// ecosystem's debugger UIs.
type TUI struct {
	Session *Session

	App          *tview.Application
	Layout       *tview.Flex
	RegisterView *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI builds the view tree around session and wires its key
// bindings. Call Run to start the event loop.
func NewTUI(session *Session) *TUI {
	t := &TUI{
		Session: session,
		App:     tview.NewApplication(),
	}
	t.buildViews()
	t.buildLayout()
	t.bindKeys()
	return t
}

func (t *TUI) buildViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ")
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommandInput)
}

func (t *TUI) buildLayout() {
	content := tview.NewFlex().
		AddItem(t.OutputView, 0, 3, false).
		AddItem(t.RegisterView, 40, 0, false)

	t.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) bindKeys() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF11:
			t.runCommand("step")
			return nil
		case tcell.KeyF5:
			t.runCommand("continue")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommandInput(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := strings.TrimSpace(t.CommandInput.GetText())
	if cmd == "" {
		return
	}
	t.Session.History.Add(cmd)
	t.CommandInput.SetText("")
	t.runCommand(cmd)
}

// runCommand executes one debugger command line and refreshes the
// views. It recognizes step, continue and break, the same operations
// the api package's step, continue and breakpoint routes expose.
func (t *TUI) runCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	var err error
	switch fields[0] {
	case "step", "s":
		err = t.Session.Step()
	case "continue", "c":
		var bp *Breakpoint
		bp, err = t.Session.Continue(1_000_000)
		if err == nil && bp != nil {
			fmt.Fprintf(t.OutputView, "hit breakpoint %d at 0x%08x\n", bp.ID, bp.Address)
		}
	case "break", "b":
		if len(fields) < 2 {
			err = fmt.Errorf("usage: break <address>")
			break
		}
		addr, perr := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if perr != nil {
			err = fmt.Errorf("invalid address %q: %w", fields[1], perr)
			break
		}
		bp := t.Session.Breakpoints.Add(uint32(addr), false)
		fmt.Fprintf(t.OutputView, "breakpoint %d set at 0x%08x\n", bp.ID, bp.Address)
	default:
		err = fmt.Errorf("unknown command %q", fields[0])
	}

	if err != nil {
		fmt.Fprintf(t.OutputView, "[red]error:[white] %v\n", err)
	}
	t.Refresh()
}

// Refresh redraws the register panel and scrolls output to the end.
func (t *TUI) Refresh() {
	t.RegisterView.SetText(t.Session.RegisterDump())
	t.OutputView.ScrollToEnd()
	if t.App != nil {
		t.App.Draw()
	}
}

// Run starts the tview event loop. It blocks until the user quits
// (Ctrl-C) or the application is stopped programmatically.
func (t *TUI) Run() error {
	t.RegisterView.SetText(t.Session.RegisterDump())
	return t.App.SetRoot(t.Layout, true).SetFocus(t.CommandInput).Run()
}
