package core

import "fmt"

// SP-adjust and multiple-register push/pop handlers.

func execAddSpI7(c *Core) error {
	imm := fieldImm7(c.Opcode) * 4
	c.R[SP] += imm
	c.debugf("add\tSP, 0x%02x", imm)
	return nil
}

func execSubSpI7(c *Core) error {
	imm := fieldImm7(c.Opcode) * 4
	c.R[SP] -= imm
	c.debugf("sub\tSP, 0x%02x", imm)
	return nil
}

// execPush stores the registers named in the low 8 bits of the
// opcode, lowest register first at the lowest address, then (if the
// extra-register bit is set) LR, and finally decrements SP by the
// total byte count (spec.md §4.4 / §9: the extra bit means LR here,
// PC on the matching pop).
func execPush(c *Core) error {
	extra := fieldExtraReg(c.Opcode)
	regs := pushPopRegList(c.Opcode)

	count := len(regs)
	if extra {
		count++
	}
	addr := c.R[SP] - uint32(count*4)

	cur := addr
	for _, r := range regs {
		if err := c.Bus.WriteWord(cur, c.R[r]); err != nil {
			return err
		}
		cur += 4
	}
	if extra {
		if err := c.Bus.WriteWord(cur, c.R[LR]); err != nil {
			return err
		}
	}

	c.R[SP] = addr
	c.debugf("push\t{%s}", pushPopRegListString(regs, extra, LR))
	return nil
}

// execPop is push's mirror: it restores registers starting from SP in
// ascending address order, then (if the extra bit is set) loads PC,
// and finally advances SP past every word it read.
func execPop(c *Core) error {
	extra := fieldExtraReg(c.Opcode)
	regs := pushPopRegList(c.Opcode)

	count := len(regs)
	if extra {
		count++
	}
	addr := c.R[SP]

	cur := addr
	for _, r := range regs {
		val, err := c.Bus.ReadWord(cur)
		if err != nil {
			return err
		}
		c.R[r] = val
		cur += 4
	}
	if extra {
		val, err := c.Bus.ReadWord(cur)
		if err != nil {
			return err
		}
		c.R[PC] = val &^ 1
	}

	c.R[SP] = addr + uint32(count*4)
	c.debugf("pop\t{%s}", pushPopRegListString(regs, extra, PC))
	return nil
}

func pushPopRegList(opcode uint16) []int {
	var regs []int
	for i := 0; i < 8; i++ {
		if opcode&(1<<uint(i)) != 0 {
			regs = append(regs, i)
		}
	}
	return regs
}

func pushPopRegListString(regs []int, extra bool, extraReg int) string {
	s := ""
	for i, r := range regs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("r%d", r)
	}
	if extra {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("r%d", extraReg)
	}
	return s
}
