package core

// ConditionCode names the 14 Thumb branch conditions that have
// dedicated b_c_imm encodings (0b1110 and 0b1111 are reserved for
// undefined/svc and never reach here as conditions).
type ConditionCode uint16

const (
	CondEQ ConditionCode = iota
	CondNE
	CondCS
	CondCC
	CondMI
	CondPL
	CondVS
	CondVC
	CondHI
	CondLS
	CondGE
	CondLT
	CondGT
	CondLE
)

func (cc ConditionCode) String() string {
	switch cc {
	case CondEQ:
		return "eq"
	case CondNE:
		return "ne"
	case CondCS:
		return "cs"
	case CondCC:
		return "cc"
	case CondMI:
		return "mi"
	case CondPL:
		return "pl"
	case CondVS:
		return "vs"
	case CondVC:
		return "vc"
	case CondHI:
		return "hi"
	case CondLS:
		return "ls"
	case CondGE:
		return "ge"
	case CondLT:
		return "lt"
	case CondGT:
		return "gt"
	case CondLE:
		return "le"
	default:
		return "??"
	}
}

// EvaluateCondition tests a condition code against the current flags,
// mirroring the table of ARM condition predicates.
func (f Flags) EvaluateCondition(cc ConditionCode) bool {
	switch cc {
	case CondEQ:
		return f.Z
	case CondNE:
		return !f.Z
	case CondCS:
		return f.C
	case CondCC:
		return !f.C
	case CondMI:
		return f.N
	case CondPL:
		return !f.N
	case CondVS:
		return f.V
	case CondVC:
		return !f.V
	case CondHI:
		return f.C && !f.Z
	case CondLS:
		return !f.C || f.Z
	case CondGE:
		return f.N == f.V
	case CondLT:
		return f.N != f.V
	case CondGT:
		return !f.Z && f.N == f.V
	case CondLE:
		return f.Z || f.N != f.V
	default:
		return false
	}
}

// execBCondImm is the conditional relative branch. The offset is a
// signed 9-bit value counted in halfwords (imm << 1) and applied to
// the already-incremented PC (spec.md §4.4/§4.2).
func execBCondImm(c *Core) error {
	cond := ConditionCode(fieldCond(c.Opcode))
	imm := fieldImm8(c.Opcode)
	offset := signExtend(imm<<1, 8)

	if !c.Flags.EvaluateCondition(cond) {
		c.debugf("b%s\t0x%x (not taken)", cond, offset)
		return nil
	}

	c.R[PC] += offset + 2
	c.debugf("b%s\t0x%x", cond, offset)
	return nil
}

// execBImm is the unconditional relative branch, with a signed 12-bit
// offset (imm << 1).
func execBImm(c *Core) error {
	imm := fieldImm11(c.Opcode)
	offset := signExtend(imm<<1, 11)
	c.R[PC] += offset + 2
	c.debugf("b\t0x%x", offset)
	return nil
}
