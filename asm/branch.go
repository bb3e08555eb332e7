package asm

import "github.com/thumbsim/core/core"

// BCond encodes a conditional relative branch. offset is a signed,
// halfword-granular value (it must be even, within [-256, 254]); the
// core's handler adds it, plus a further 2, to the already-advanced PC.
func BCond(cc core.ConditionCode, offset int32) (uint16, error) {
	if offset%2 != 0 {
		return 0, newError("b<cond>", "offset %d is not halfword-aligned", offset)
	}
	if offset < -256 || offset > 254 {
		return 0, newError("b<cond>", "offset %d out of the 9-bit signed range", offset)
	}
	imm := uint16(offset/2) & 0xff
	return 0xd000 | uint16(cc)<<8 | imm, nil
}

// B encodes an unconditional relative branch with an 11-bit signed
// halfword-granular offset.
func B(offset int32) (uint16, error) {
	if offset%2 != 0 {
		return 0, newError("b", "offset %d is not halfword-aligned", offset)
	}
	if offset < -2048 || offset > 2046 {
		return 0, newError("b", "offset %d out of the 12-bit signed range", offset)
	}
	imm := uint16(offset/2) & 0x7ff
	return 0xe000 | imm, nil
}
