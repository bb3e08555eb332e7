package core

// Hint instructions, breakpoint/undefined/supervisor-call traps, and
// the decoder's catch-all entries. cps/udf/svc are not modelled — the
// original generator treats them as fatal ("not implemented") rather
// than silently continuing, and this core does the same via the
// FatalError sink (spec.md §7).

func execNop(c *Core) error {
	c.debugf("nop")
	return nil
}

func execYield(c *Core) error {
	c.debugf("yield")
	return nil
}

func execWfe(c *Core) error {
	c.debugf("wfe")
	return nil
}

func execWfi(c *Core) error {
	c.debugf("wfi")
	return nil
}

func execSev(c *Core) error {
	c.debugf("sev")
	return nil
}

func execBkpt(c *Core) error {
	imm := fieldImm8(c.Opcode)
	c.debugf("bkpt\t0x%02x", imm)
	return nil
}

func execCps(c *Core) error {
	addr := c.R[PC] - 2
	return fatal(ErrNotImplemented, addr, c.Opcode, "cps not implemented")
}

func execUdf(c *Core) error {
	addr := c.R[PC] - 2
	return fatal(ErrNotImplemented, addr, c.Opcode, "udf not implemented")
}

func execSvc(c *Core) error {
	addr := c.R[PC] - 2
	return fatal(ErrNotImplemented, addr, c.Opcode, "svc not implemented")
}

func execUndefined(c *Core) error {
	addr := c.R[PC] - 2
	return fatal(ErrUndefinedOpcode, addr, c.Opcode, "undefined opcode")
}

func execThumb2(c *Core) error {
	addr := c.R[PC] - 2
	return fatal(ErrThumb2Unsupported, addr, c.Opcode, "32-bit Thumb-2 encoding not supported")
}
