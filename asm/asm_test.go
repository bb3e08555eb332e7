package asm_test

import (
	"testing"

	"github.com/thumbsim/core/asm"
	"github.com/thumbsim/core/core"
)

var table = core.BuildDecoderTable()

func TestEncoders_DecodeToExpectedHandler(t *testing.T) {
	cases := []struct {
		name string
		op   uint16
		want core.HandlerID
	}{}

	add := func(name string, op uint16, err error, want core.HandlerID) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: encode error: %v", name, err)
		}
		cases = append(cases, struct {
			name string
			op   uint16
			want core.HandlerID
		}{name, op, want})
	}

	op, err := asm.Lsls(0, 1, 5)
	add("lsls", op, err, core.HandlerLslsImm)

	op, err = asm.AddsReg(0, 1, 2)
	add("adds reg", op, err, core.HandlerAddsReg)

	op, err = asm.MovsImm(3, 0xaa)
	add("movs imm", op, err, core.HandlerMovsImm)

	op, err = asm.BxReg4(7)
	add("bx", op, err, core.HandlerBxReg4)

	op, err = asm.BlxReg4(7)
	add("blx", op, err, core.HandlerBlxReg4)

	op, err = asm.LdrImm(0, 1, 12)
	add("ldr imm", op, err, core.HandlerLdrImm)

	op, err = asm.Push([]int{0, 1}, true)
	add("push", op, err, core.HandlerPush)

	op, err = asm.Pop([]int{0, 1}, true)
	add("pop", op, err, core.HandlerPop)

	op, err = asm.Rev(0, 1)
	add("rev", op, err, core.HandlerRev)

	op, err = asm.BCond(core.CondEQ, 10)
	add("beq", op, err, core.HandlerBCondImm)

	op, err = asm.B(-10)
	add("b", op, err, core.HandlerBImm)

	op, err = asm.Stm(0, []int{1, 2})
	add("stm", op, err, core.HandlerStm)

	op = asm.Nop()
	cases = append(cases, struct {
		name string
		op   uint16
		want core.HandlerID
	}{"nop", op, core.HandlerNop})

	for _, c := range cases {
		if got := table.Decode(c.op); got != c.want {
			t.Errorf("%s: opcode 0x%04x decoded as %s, want %s", c.name, c.op, got, c.want)
		}
	}
}

func TestAddsImm3_RejectsOutOfRangeImmediate(t *testing.T) {
	if _, err := asm.AddsImm3(0, 1, 8); err == nil {
		t.Fatal("expected an error for a 3-bit immediate value of 8")
	}
}

func TestStrImm_RejectsUnalignedOffset(t *testing.T) {
	if _, err := asm.StrImm(0, 1, 3); err == nil {
		t.Fatal("expected an error for a non-word-aligned str offset")
	}
}

func TestBCond_RejectsOutOfRangeOffset(t *testing.T) {
	if _, err := asm.BCond(core.CondEQ, 1000); err == nil {
		t.Fatal("expected an error for an offset outside the 9-bit signed range")
	}
}
