package core

// Block-transfer handlers (stm/ldm). Rb always takes the writeback
// address regardless of whether it appears in the register list for
// stm; ldm suppresses the writeback when Rb is itself one of the
// loaded registers, since the loaded value would otherwise clobber
// the computed address (original_source i_ldm).

func execStm(c *Core) error {
	list := fieldImm8(c.Opcode)
	r := fieldRImm8(c.Opcode)
	addr := c.R[r]

	for i := 0; i < 8; i++ {
		if list&(1<<uint(i)) != 0 {
			if err := c.Bus.WriteWord(addr, c.R[i]); err != nil {
				return err
			}
			addr += 4
		}
	}

	c.R[r] = addr
	c.debugf("stm\tr%d, {0x%02x}", r, list)
	return nil
}

func execLdm(c *Core) error {
	list := fieldImm8(c.Opcode)
	r := fieldRImm8(c.Opcode)
	addr := c.R[r]

	for i := 0; i < 8; i++ {
		if list&(1<<uint(i)) != 0 {
			val, err := c.Bus.ReadWord(addr)
			if err != nil {
				return err
			}
			c.R[i] = val
			addr += 4
		}
	}

	if list&(1<<uint(r)) == 0 {
		c.R[r] = addr
	}
	c.debugf("ldm\tr%d, {0x%02x}", r, list)
	return nil
}
