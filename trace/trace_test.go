package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thumbsim/core/trace"
)

func TestExecutionTrace_RecordsAndFlushesLines(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.New(&buf)

	tr.Debug("movs\tr%d, 0x%02x", 0, 5)
	tr.Debug("adds\tr%d, r%d, r%d", 1, 0, 0)

	if len(tr.Entries()) != 2 {
		t.Fatalf("got %d entries, want 2", len(tr.Entries()))
	}
	out := buf.String()
	if !strings.Contains(out, "movs\tr0, 0x05") {
		t.Errorf("output missing first line: %q", out)
	}
	if !strings.Contains(out, "adds\tr1, r0, r0") {
		t.Errorf("output missing second line: %q", out)
	}
}

func TestExecutionTrace_MaxEntriesCapsBuffer(t *testing.T) {
	tr := trace.New(nil)
	tr.MaxEntries = 2
	tr.Debug("one")
	tr.Debug("two")
	tr.Debug("three")

	if len(tr.Entries()) != 2 {
		t.Fatalf("got %d entries, want 2 (capped)", len(tr.Entries()))
	}
}

func TestExecutionTrace_DisabledRecordsNothing(t *testing.T) {
	tr := trace.New(nil)
	tr.Enabled = false
	tr.Debug("should not appear")

	if len(tr.Entries()) != 0 {
		t.Fatalf("got %d entries, want 0 while disabled", len(tr.Entries()))
	}
}
