package core

// Bitwise/logical register handlers. These update only N and Z; unlike
// the data-processing shifted-register form on full ARM, the Thumb-1
// encodings here have no shift-by-register operand, so there is no
// shifter-carry to fold in either — C and V are simply left untouched
// (confirmed against original_source: none of these touch core->c).

func execAndsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] & c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("ands\tr%d, r%d", r1, r2)
	return nil
}

func execEorsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] ^ c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("eors\tr%d, r%d", r1, r2)
	return nil
}

func execTstReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] & c.R[r2]
	c.Flags.UpdateNZ(res)
	c.debugf("tst\tr%d, r%d", r1, r2)
	return nil
}

func execOrrsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] | c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("orrs\tr%d, r%d", r1, r2)
	return nil
}

func execMulsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] * c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("muls\tr%d, r%d, r%d", r1, r2, r1)
	return nil
}

func execBicsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := c.R[r1] &^ c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("bics\tr%d, r%d", r1, r2)
	return nil
}

func execMvnsReg(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	res := ^c.R[r2]
	c.Flags.UpdateNZ(res)
	c.R[r1] = res
	c.debugf("mvns\tr%d, r%d", r1, r2)
	return nil
}
