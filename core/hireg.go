package core

// High-register (4-bit operand) forms and the interworking branches.
// None of these set flags except cmp_reg4; writing PC through add/mov
// clears bit 0 (the interworking bit), matching spec.md §4.4.

func execAddReg4(c *Core) error {
	r1, r2 := fieldR1_4(c.Opcode), fieldR2_4(c.Opcode)
	c.R[r1] = c.R[r1] + c.R[r2]
	if r1 == PC {
		c.R[PC] &^= 1
	}
	c.debugf("add\tr%d, r%d", r1, r2)
	return nil
}

func execCmpReg4(c *Core) error {
	r1, r2 := fieldR1_4(c.Opcode), fieldR2_4(c.Opcode)
	a, b := c.R[r1], c.R[r2]
	res := a + ^b + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, b)
	c.Flags.V = overflow32(a, ^b, res)
	c.debugf("cmp\tr%d, r%d", r1, r2)
	return nil
}

func execMovReg4(c *Core) error {
	r1, r2 := fieldR1_4(c.Opcode), fieldR2_4(c.Opcode)
	c.R[r1] = c.R[r2]
	if r1 == PC {
		c.R[PC] &^= 1
	}
	c.debugf("mov\tr%d, r%d", r1, r2)
	return nil
}

func execBxReg4(c *Core) error {
	r := fieldR2_4(c.Opcode)
	c.R[PC] = c.R[r] &^ 1
	c.debugf("bx\tr%d", r)
	return nil
}

func execBlxReg4(c *Core) error {
	r := fieldR2_4(c.Opcode)
	target := c.R[r] &^ 1
	c.R[LR] = c.R[PC]
	c.R[PC] = target
	c.debugf("blx\tr%d", r)
	return nil
}
