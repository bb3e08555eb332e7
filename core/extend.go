package core

// Sign/zero extension and byte-reversal handlers. All are pure
// register-to-register forms with no flag updates (spec.md §4.4).

func execSxth(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	c.R[r1] = signExtend(c.R[r2]&0xffff, 15)
	c.debugf("sxth\tr%d, r%d", r1, r2)
	return nil
}

func execSxtb(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	c.R[r1] = signExtend(c.R[r2]&0xff, 7)
	c.debugf("sxtb\tr%d, r%d", r1, r2)
	return nil
}

func execUxth(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	c.R[r1] = c.R[r2] & 0xffff
	c.debugf("uxth\tr%d, r%d", r1, r2)
	return nil
}

func execUxtb(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	c.R[r1] = c.R[r2] & 0xff
	c.debugf("uxtb\tr%d, r%d", r1, r2)
	return nil
}

func execRev(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	v := c.R[r2]
	c.R[r1] = (v>>24)&0xff | (v>>8)&0xff00 | (v<<8)&0xff0000 | (v<<24)&0xff000000
	c.debugf("rev\tr%d, r%d", r1, r2)
	return nil
}

func execRev16(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	v := c.R[r2]
	lo := (v & 0xff00 >> 8) | (v & 0xff << 8)
	hi := (v & 0xff000000 >> 8) | (v & 0x00ff0000 << 8)
	c.R[r1] = (hi & 0xffff0000) | (lo & 0xffff)
	c.debugf("rev16\tr%d, r%d", r1, r2)
	return nil
}

func execRevsh(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	v := c.R[r2]
	swapped := (v&0xff)<<8 | (v>>8)&0xff
	c.R[r1] = signExtend(swapped, 15)
	c.debugf("revsh\tr%d, r%d", r1, r2)
	return nil
}
