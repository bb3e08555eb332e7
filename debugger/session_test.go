package debugger_test

import (
	"testing"

	"github.com/thumbsim/core/core"
	"github.com/thumbsim/core/debugger"
)

type fakeBus struct{ mem [0x1000]byte }

func (b *fakeBus) ReadByte(a uint32) (uint8, error)  { return b.mem[a], nil }
func (b *fakeBus) WriteByte(a uint32, v uint8) error { b.mem[a] = v; return nil }
func (b *fakeBus) ReadHalfword(a uint32) (uint16, error) {
	return uint16(b.mem[a]) | uint16(b.mem[a+1])<<8, nil
}
func (b *fakeBus) WriteHalfword(a uint32, v uint16) error {
	b.mem[a], b.mem[a+1] = byte(v), byte(v>>8)
	return nil
}
func (b *fakeBus) ReadWord(a uint32) (uint32, error) {
	return uint32(b.mem[a]) | uint32(b.mem[a+1])<<8 | uint32(b.mem[a+2])<<16 | uint32(b.mem[a+3])<<24, nil
}
func (b *fakeBus) WriteWord(a uint32, v uint32) error {
	b.mem[a], b.mem[a+1], b.mem[a+2], b.mem[a+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	return nil
}

func newSession(program ...uint16) *debugger.Session {
	bus := &fakeBus{}
	for i, op := range program {
		bus.WriteHalfword(uint32(i*2), op)
	}
	c := core.NewCore("t", bus, core.BuildDecoderTable())
	return debugger.NewSession(c, nil, 100)
}

func TestSession_StepAdvancesPC(t *testing.T) {
	s := newSession(0xbf00, 0xbf00) // nop; nop
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s.Core.R[core.PC] != 2 {
		t.Fatalf("PC = %d, want 2", s.Core.R[core.PC])
	}
}

func TestSession_ContinueStopsAtBreakpoint(t *testing.T) {
	s := newSession(0xbf00, 0xbf00, 0xbf00)
	s.Breakpoints.Add(4, false)

	bp, err := s.Continue(10)
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if bp == nil {
		t.Fatal("expected a breakpoint hit")
	}
	if s.Core.R[core.PC] != 4 {
		t.Fatalf("PC = %d, want 4 (stopped before third nop)", s.Core.R[core.PC])
	}
}

func TestSession_HaltsOnFatalError(t *testing.T) {
	s := newSession(0xffff) // undefined opcode
	if _, err := s.Continue(10); err == nil {
		t.Fatal("expected a fatal error")
	}
	if s.Halted == nil {
		t.Fatal("expected session to record the halt")
	}
	if err := s.Step(); err == nil {
		t.Fatal("expected Step to refuse to run after a halt")
	}
}
