package core

// Register/immediate add and subtract handlers, plus the compare forms
// that share their flag computation but discard the result. subs/cmp/
// rsbs all use the a + ~b + 1 two's-complement identity (spec.md §4.3)
// so the same carry/overflow helpers apply uniformly.

func execAddsReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	a, b := c.R[r2], c.R[r3]
	res := a + b

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarry32(a, b)
	c.Flags.V = overflow32(a, b, res)
	c.R[r1] = res
	c.debugf("adds\tr%d, r%d, r%d", r1, r2, r3)
	return nil
}

func execSubsReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	a, b := c.R[r2], c.R[r3]
	res := a + ^b + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, b)
	c.Flags.V = overflow32(a, ^b, res)
	c.R[r1] = res
	c.debugf("subs\tr%d, r%d, r%d", r1, r2, r3)
	return nil
}

func execAddsImm3(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm3(c.Opcode)
	a := c.R[r2]
	res := a + imm

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarry32(a, imm)
	c.Flags.V = overflow32(a, imm, res)
	c.R[r1] = res
	c.debugf("adds\tr%d, r%d, 0x%02x", r1, r2, imm)
	return nil
}

func execSubsImm3(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm3(c.Opcode)
	a := c.R[r2]
	res := a + ^imm + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, imm)
	c.Flags.V = overflow32(a, ^imm, res)
	c.R[r1] = res
	c.debugf("subs\tr%d, r%d, 0x%02x", r1, r2, imm)
	return nil
}

func execMovsImm(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode)

	c.Flags.UpdateNZ(imm)
	c.R[rd] = imm
	c.debugf("movs\tr%d, 0x%02x", rd, imm)
	return nil
}

func execCmpImm(c *Core) error {
	r := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode)
	a := c.R[r]
	res := a + ^imm + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, imm)
	c.Flags.V = overflow32(a, ^imm, res)
	c.debugf("cmp\tr%d, 0x%02x", r, imm)
	return nil
}

func execAddsImm8(c *Core) error {
	r := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode)
	a := c.R[r]
	res := a + imm

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarry32(a, imm)
	c.Flags.V = overflow32(a, imm, res)
	c.R[r] = res
	c.debugf("adds\tr%d, 0x%02x", r, imm)
	return nil
}

func execSubsImm8(c *Core) error {
	r := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode)
	a := c.R[r]
	res := a + ^imm + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, imm)
	c.Flags.V = overflow32(a, ^imm, res)
	c.R[r] = res
	c.debugf("subs\tr%d, 0x%02x", r, imm)
	return nil
}

func execAdcsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	a, b := c.R[r1], c.R[r2]
	cin := c.Flags.C
	res := a + b
	if cin {
		res++
	}

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarryIn32(a, b, cin)
	c.Flags.V = overflow32(a, b, res)
	c.R[r1] = res
	c.debugf("adcs\tr%d, r%d", r1, r2)
	return nil
}

func execSbcsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	a, b := c.R[r1], c.R[r2]
	cin := c.Flags.C
	res := a + ^b
	if cin {
		res++
	}

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarryIn32(a, ^b, cin)
	c.Flags.V = overflow32(a, ^b, res)
	c.R[r1] = res
	c.debugf("sbcs\tr%d, r%d", r1, r2)
	return nil
}

func execRsbsImm(c *Core) error {
	// rsbs r1, r2 computes 0 - r2v (the "immediate" is always zero in
	// this Thumb-1 encoding).
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	b := c.R[r2]
	res := ^b + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(0, b)
	c.Flags.V = overflow32(^b, 0, res)
	c.R[r1] = res
	c.debugf("rsbs\tr%d, r%d", r1, r2)
	return nil
}

func execCmpReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	a, b := c.R[r1], c.R[r2]
	res := a + ^b + 1

	c.Flags.UpdateNZ(res)
	c.Flags.C = subCarry32(a, b)
	c.Flags.V = overflow32(a, ^b, res)
	c.debugf("cmp\tr%d, r%d", r1, r2)
	return nil
}

func execCmnReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	a, b := c.R[r1], c.R[r2]
	res := a + b

	c.Flags.UpdateNZ(res)
	c.Flags.C = addCarry32(a, b)
	c.Flags.V = overflow32(a, b, res)
	c.debugf("cmn\tr%d, r%d", r1, r2)
	return nil
}
