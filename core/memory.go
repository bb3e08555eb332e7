package core

// Register-offset and immediate-offset load/store handlers, plus the
// PC/SP-relative forms. All data accesses go through c.Bus; any error
// it returns propagates straight back out of Step untranslated
// (spec.md §7).

func execStrReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	c.debugf("str\tr%d, [r%d, r%d]", r1, r2, r3)
	return c.Bus.WriteWord(addr, c.R[r1])
}

func execStrhReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	c.debugf("strh\tr%d, [r%d, r%d]", r1, r2, r3)
	return c.Bus.WriteHalfword(addr, uint16(c.R[r1]))
}

func execStrbReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	c.debugf("strb\tr%d, [r%d, r%d]", r1, r2, r3)
	return c.Bus.WriteByte(addr, uint8(c.R[r1]))
}

func execLdrsbReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	val, err := c.Bus.ReadByte(addr)
	if err != nil {
		return err
	}
	c.R[r1] = signExtend(uint32(val), 7)
	c.debugf("ldrsb\tr%d, [r%d, r%d]", r1, r2, r3)
	return nil
}

func execLdrReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	val, err := c.Bus.ReadWord(addr)
	if err != nil {
		return err
	}
	c.R[r1] = val
	c.debugf("ldr\tr%d, [r%d, r%d]", r1, r2, r3)
	return nil
}

func execLdrhReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	val, err := c.Bus.ReadHalfword(addr)
	if err != nil {
		return err
	}
	c.R[r1] = uint32(val)
	c.debugf("ldrh\tr%d, [r%d, r%d]", r1, r2, r3)
	return nil
}

func execLdrbReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	val, err := c.Bus.ReadByte(addr)
	if err != nil {
		return err
	}
	c.R[r1] = uint32(val)
	c.debugf("ldrb\tr%d, [r%d, r%d]", r1, r2, r3)
	return nil
}

func execLdrshReg(c *Core) error {
	r1, r2, r3 := fieldR1(c.Opcode), fieldR2(c.Opcode), fieldR3(c.Opcode)
	addr := c.R[r2] + c.R[r3]
	val, err := c.Bus.ReadHalfword(addr)
	if err != nil {
		return err
	}
	c.R[r1] = signExtend(uint32(val), 15)
	c.debugf("ldrsh\tr%d, [r%d, r%d]", r1, r2, r3)
	return nil
}

func execStrImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode) * 4
	addr := c.R[r2] + imm
	c.debugf("str\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return c.Bus.WriteWord(addr, c.R[r1])
}

func execLdrImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode) * 4
	addr := c.R[r2] + imm
	val, err := c.Bus.ReadWord(addr)
	if err != nil {
		return err
	}
	c.R[r1] = val
	c.debugf("ldr\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return nil
}

func execStrbImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode)
	addr := c.R[r2] + imm
	c.debugf("strb\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return c.Bus.WriteByte(addr, uint8(c.R[r1]))
}

func execLdrbImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode)
	addr := c.R[r2] + imm
	val, err := c.Bus.ReadByte(addr)
	if err != nil {
		return err
	}
	c.R[r1] = uint32(val)
	c.debugf("ldrb\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return nil
}

func execStrhImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode) * 2
	addr := c.R[r2] + imm
	c.debugf("strh\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return c.Bus.WriteHalfword(addr, uint16(c.R[r1]))
}

func execLdrhImm(c *Core) error {
	r1, r2 := fieldR1(c.Opcode), fieldR2(c.Opcode)
	imm := fieldImm5(c.Opcode) * 2
	addr := c.R[r2] + imm
	val, err := c.Bus.ReadHalfword(addr)
	if err != nil {
		return err
	}
	c.R[r1] = uint32(val)
	c.debugf("ldrh\tr%d, [r%d, 0x%02x]", r1, r2, imm)
	return nil
}

func execStrSpImm(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode) * 4
	addr := c.R[SP] + imm
	c.debugf("str\tr%d, [SP, 0x%02x]", rd, imm)
	return c.Bus.WriteWord(addr, c.R[rd])
}

func execLdrSpImm(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode) * 4
	addr := c.R[SP] + imm
	val, err := c.Bus.ReadWord(addr)
	if err != nil {
		return err
	}
	c.R[rd] = val
	c.debugf("ldr\tr%d, [SP, 0x%02x]", rd, imm)
	return nil
}

// execLdrPc is the PC-relative literal load. Unlike add_r_pc_imm, the
// source does not word-align PC here: the base is the already-advanced
// PC plus its own further +2 pipeline value, plus the scaled immediate
// (spec.md §4.4).
func execLdrPc(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode) * 4
	base := c.R[PC] + imm + 2
	val, err := c.Bus.ReadWord(base)
	if err != nil {
		return err
	}
	c.R[rd] = val
	c.debugf("ldr\tr%d, [PC, 0x%02x]", rd, imm)
	return nil
}

func execAddPcImm(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode) * 4
	c.R[rd] = (c.R[PC] &^ 3) + imm
	c.debugf("add\tr%d, PC, 0x%02x", rd, imm)
	return nil
}

func execAddSpImm(c *Core) error {
	rd := fieldRImm8(c.Opcode)
	imm := fieldImm8(c.Opcode) * 4
	c.R[rd] = c.R[SP] + imm
	c.debugf("add\tr%d, SP, 0x%02x", rd, imm)
	return nil
}
