package asm

// Hint/no-operand encoders and the block-transfer forms.

func Nop() uint16   { return 0xbf00 }
func Yield() uint16 { return 0xbf10 }
func Wfe() uint16   { return 0xbf20 }
func Wfi() uint16   { return 0xbf30 }
func Sev() uint16   { return 0xbf40 }

func Bkpt(imm uint32) (uint16, error) {
	if err := checkImm("bkpt", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0xbe00 | uint16(imm), nil
}

func Udf(imm uint32) (uint16, error) {
	if err := checkImm("udf", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0xde00 | uint16(imm), nil
}

func Svc(imm uint32) (uint16, error) {
	if err := checkImm("svc", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0xdf00 | uint16(imm), nil
}

func blockXfer(mnemonic string, base uint16, r int, regs []int) (uint16, error) {
	if err := checkReg3(mnemonic, "r", r); err != nil {
		return 0, err
	}
	list, err := regList(mnemonic, regs)
	if err != nil {
		return 0, err
	}
	return base | uint16(r)<<8 | list, nil
}

func Stm(r int, regs []int) (uint16, error) { return blockXfer("stm", 0xc000, r, regs) }
func Ldm(r int, regs []int) (uint16, error) { return blockXfer("ldm", 0xc800, r, regs) }
