package core_test

import (
	"testing"

	"github.com/thumbsim/core/core"
)

// fakeBus is a flat little-endian address space sized generously for
// the handful of instructions each test executes.
type fakeBus struct {
	mem [0x10000]byte
}

func (b *fakeBus) ReadByte(addr uint32) (uint8, error)  { return b.mem[addr], nil }
func (b *fakeBus) WriteByte(addr uint32, v uint8) error { b.mem[addr] = v; return nil }

func (b *fakeBus) ReadHalfword(addr uint32) (uint16, error) {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8, nil
}
func (b *fakeBus) WriteHalfword(addr uint32, v uint16) error {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
	return nil
}

func (b *fakeBus) ReadWord(addr uint32) (uint32, error) {
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 |
		uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24, nil
}
func (b *fakeBus) WriteWord(addr uint32, v uint32) error {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
	b.mem[addr+2] = byte(v >> 16)
	b.mem[addr+3] = byte(v >> 24)
	return nil
}

var sharedTable = core.BuildDecoderTable()

func newTestCore(program ...uint16) (*core.Core, *fakeBus) {
	bus := &fakeBus{}
	for i, op := range program {
		bus.WriteHalfword(uint32(i*2), op)
	}
	c := core.NewCore("t", bus, sharedTable)
	c.SetEntry(0, 0x1000)
	return c, bus
}

// lsls r0, r1, #0 must leave carry untouched (spec.md §8 scenario 1).
func TestLslsImm_ShiftByZeroPreservesCarry(t *testing.T) {
	c, _ := newTestCore(0x0008) // lsls r0, r1, #0
	c.Flags.C = true
	c.R[core.R1] = 0x12345678
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.Flags.C {
		t.Fatal("carry was clobbered by a shift-by-zero")
	}
	if c.R[core.R0] != 0x12345678 {
		t.Fatalf("R0 = 0x%08x, want unchanged source", c.R[core.R0])
	}
}

// lsrs r0, r1, #0 means shift-by-32: result zero, carry = bit 31.
func TestLsrsImm_ShiftByZeroMeansShiftBy32(t *testing.T) {
	c, _ := newTestCore(0x0808) // lsrs r0, r1, #0
	c.R[core.R1] = 0x80000000
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.R0] != 0 {
		t.Fatalf("R0 = 0x%08x, want 0", c.R[core.R0])
	}
	if !c.Flags.C {
		t.Fatal("carry should reflect bit 31 of the source")
	}
}

// adds r0, r1, r2 with operands that overflow signed range.
func TestAddsReg_SignedOverflow(t *testing.T) {
	c, _ := newTestCore(0x1888) // adds r0, r1, r2
	c.R[core.R1] = 0x7fffffff
	c.R[core.R2] = 1
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.Flags.V {
		t.Fatal("expected signed overflow")
	}
	if c.Flags.C {
		t.Fatal("did not expect unsigned carry")
	}
	if c.R[core.R0] != 0x80000000 {
		t.Fatalf("R0 = 0x%08x, want 0x80000000", c.R[core.R0])
	}
}

// subs r0, r1, r2 producing a negative result sets N without carry
// (ARM convention: carry clear means a borrow occurred).
func TestSubsReg_NegativeResult(t *testing.T) {
	c, _ := newTestCore(0x1a88) // subs r0, r1, r2
	c.R[core.R1] = 1
	c.R[core.R2] = 2
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.Flags.N {
		t.Fatal("expected N set for a negative result")
	}
	if c.Flags.C {
		t.Fatal("expected carry clear (borrow occurred)")
	}
	if c.R[core.R0] != 0xffffffff {
		t.Fatalf("R0 = 0x%08x, want 0xffffffff", c.R[core.R0])
	}
}

// ldr r0, [PC, #4] reads from the fetch-advanced PC plus the immediate
// plus a further 2, with no word-alignment of PC: after the fetch
// increment PC is 2, so the literal lives at address 8.
func TestLdrPc_UsesPipelinePCPlusTwo(t *testing.T) {
	c, bus := newTestCore(0x4801) // ldr r0, [PC, #4]
	// After Step advances PC to 2, the base is PC+imm+2 = 2+4+2 = 8.
	if err := bus.WriteWord(8, 0xcafef00d); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.R0] != 0xcafef00d {
		t.Fatalf("R0 = 0x%08x, want 0xcafef00d", c.R[core.R0])
	}
}

// A taken conditional branch adds the pipeline's +2 on top of the
// already-advanced PC (spec.md §4.4; gen_core.py i_b_c_imm).
func TestBCondImm_TakenAddsPipelinePlusTwo(t *testing.T) {
	c, _ := newTestCore(0xd002) // beq #4
	c.Flags.Z = true
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.PC] != 8 {
		t.Fatalf("PC = %d, want 8 (2 + 4 + 2)", c.R[core.PC])
	}
}

func TestBCondImm_NotTakenLeavesFetchAdvancedPC(t *testing.T) {
	c, _ := newTestCore(0xd002) // beq #4
	c.Flags.Z = false
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.PC] != 2 {
		t.Fatalf("PC = %d, want 2 (branch not taken)", c.R[core.PC])
	}
}

// Unconditional b has the same +2 pipeline term (gen_core.py i_b_imm).
func TestBImm_AddsPipelinePlusTwo(t *testing.T) {
	c, _ := newTestCore(0xe002) // b #4
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.PC] != 8 {
		t.Fatalf("PC = %d, want 8 (2 + 4 + 2)", c.R[core.PC])
	}
}

// push {r0,r1,lr} followed by pop {r0,r1,pc} restores the saved
// registers and leaves SP where it started.
func TestPushPop_RoundTrip(t *testing.T) {
	c, _ := newTestCore(0xb503, 0xbd03) // push {r0,r1,lr}; pop {r0,r1,pc}
	c.R[core.SP] = 0x1000
	c.R[core.R0] = 0x11111111
	c.R[core.R1] = 0x22222222
	c.R[core.LR] = 0x00000100

	sp0 := c.R[core.SP]
	if err := c.Step(); err != nil {
		t.Fatalf("push Step: %v", err)
	}
	if c.R[core.SP] != sp0-12 {
		t.Fatalf("SP after push = 0x%x, want 0x%x", c.R[core.SP], sp0-12)
	}

	c.R[core.R0], c.R[core.R1] = 0, 0
	if err := c.Step(); err != nil {
		t.Fatalf("pop Step: %v", err)
	}
	if c.R[core.SP] != sp0 {
		t.Fatalf("SP after pop = 0x%x, want 0x%x", c.R[core.SP], sp0)
	}
	if c.R[core.R0] != 0x11111111 || c.R[core.R1] != 0x22222222 {
		t.Fatalf("registers not restored: r0=0x%x r1=0x%x", c.R[core.R0], c.R[core.R1])
	}
	if c.R[core.PC] != 0x100 {
		t.Fatalf("PC after pop = 0x%x, want 0x100", c.R[core.PC])
	}
}

// rev followed by rev is the identity.
func TestRev_IsSelfInverse(t *testing.T) {
	c, _ := newTestCore(0xba08, 0xba00) // rev r0, r1; rev r0, r0
	c.R[core.R1] = 0x01020304
	if err := c.Step(); err != nil {
		t.Fatalf("first rev: %v", err)
	}
	if c.R[core.R0] != 0x04030201 {
		t.Fatalf("R0 = 0x%08x after first rev", c.R[core.R0])
	}
	if err := c.Step(); err != nil {
		t.Fatalf("second rev: %v", err)
	}
	if c.R[core.R0] != 0x01020304 {
		t.Fatalf("rev(rev(x)) = 0x%08x, want original 0x01020304", c.R[core.R0])
	}
}

// An opcode in the Thumb-2 32-bit prefix range always fails fatally
// rather than executing as if it were a plain 16-bit instruction.
func TestStep_Thumb2PrefixIsFatal(t *testing.T) {
	c, _ := newTestCore(0xf000)
	err := c.Step()
	if err == nil {
		t.Fatal("expected a fatal error for a thumb2 prefix opcode")
	}
	fe, ok := err.(*core.FatalError)
	if !ok {
		t.Fatalf("error type = %T, want *core.FatalError", err)
	}
	if fe.Kind != core.ErrThumb2Unsupported {
		t.Fatalf("Kind = %v, want ErrThumb2Unsupported", fe.Kind)
	}
}

func TestStep_UndefinedOpcodeIsFatal(t *testing.T) {
	c, _ := newTestCore(0xffff)
	err := c.Step()
	fe, ok := err.(*core.FatalError)
	if !ok {
		t.Fatalf("error type = %T, want *core.FatalError", err)
	}
	if fe.Kind != core.ErrUndefinedOpcode {
		t.Fatalf("Kind = %v, want ErrUndefinedOpcode", fe.Kind)
	}
}
