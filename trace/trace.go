// Package trace implements core.DebugSink: a per-instruction execution
// log in the spirit of the emulator's CORE_DBG trace, plus a sink for
// the fatal errors Step returns when execution cannot continue.
package trace

import (
	"fmt"
	"io"
)

// Entry is one recorded trace line.
type Entry struct {
	Sequence uint64
	Message  string
}

// ExecutionTrace collects formatted per-instruction trace lines and
// can flush them to a writer. It implements core.DebugSink, so a
// *Core can be pointed at one directly via Core.Dbg.
type ExecutionTrace struct {
	Enabled    bool
	Writer     io.Writer
	MaxEntries int

	entries []Entry
	seq     uint64
}

// New creates a trace sink. Writer may be nil; entries are still
// buffered and retrievable via Entries.
func New(writer io.Writer) *ExecutionTrace {
	return &ExecutionTrace{
		Enabled:    true,
		Writer:     writer,
		MaxEntries: 100_000,
		entries:    make([]Entry, 0, 1024),
	}
}

// Debug implements core.DebugSink. Called once per retired
// instruction with the handler's formatted mnemonic line.
func (t *ExecutionTrace) Debug(format string, args ...any) {
	if !t.Enabled {
		return
	}
	if t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries {
		return
	}

	t.seq++
	entry := Entry{Sequence: t.seq, Message: fmt.Sprintf(format, args...)}
	t.entries = append(t.entries, entry)

	if t.Writer != nil {
		fmt.Fprintf(t.Writer, "[%06d] %s\n", entry.Sequence, entry.Message)
	}
}

// RecordFatal writes a distinguishable line for a FatalError, so a
// trace file shows exactly where and why execution stopped.
func (t *ExecutionTrace) RecordFatal(err error) {
	if t.Writer == nil {
		return
	}
	fmt.Fprintf(t.Writer, "[%06d] !!! %v\n", t.seq+1, err)
}

// Entries returns everything recorded so far.
func (t *ExecutionTrace) Entries() []Entry {
	return t.entries
}

// Clear discards all recorded entries without resetting the sequence
// counter, so sequence numbers in an already-flushed log stay unique.
func (t *ExecutionTrace) Clear() {
	t.entries = t.entries[:0]
}
