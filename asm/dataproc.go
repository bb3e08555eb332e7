package asm

// Register/immediate arithmetic, compare, and logic encoders.

func AddsReg(rd, rn, rm int) (uint16, error) {
	for name, r := range map[string]int{"rd": rd, "rn": rn, "rm": rm} {
		if err := checkReg3("adds", name, r); err != nil {
			return 0, err
		}
	}
	return 0x1800 | uint16(rm)<<6 | uint16(rn)<<3 | uint16(rd), nil
}

func SubsReg(rd, rn, rm int) (uint16, error) {
	for name, r := range map[string]int{"rd": rd, "rn": rn, "rm": rm} {
		if err := checkReg3("subs", name, r); err != nil {
			return 0, err
		}
	}
	return 0x1a00 | uint16(rm)<<6 | uint16(rn)<<3 | uint16(rd), nil
}

func AddsImm3(rd, rn int, imm uint32) (uint16, error) {
	if err := checkReg3("adds", "rd", rd); err != nil {
		return 0, err
	}
	if err := checkReg3("adds", "rn", rn); err != nil {
		return 0, err
	}
	if err := checkImm("adds", "imm", imm, 7); err != nil {
		return 0, err
	}
	return 0x1c00 | uint16(imm)<<6 | uint16(rn)<<3 | uint16(rd), nil
}

func SubsImm3(rd, rn int, imm uint32) (uint16, error) {
	if err := checkReg3("subs", "rd", rd); err != nil {
		return 0, err
	}
	if err := checkReg3("subs", "rn", rn); err != nil {
		return 0, err
	}
	if err := checkImm("subs", "imm", imm, 7); err != nil {
		return 0, err
	}
	return 0x1e00 | uint16(imm)<<6 | uint16(rn)<<3 | uint16(rd), nil
}

func MovsImm(rd int, imm uint32) (uint16, error) {
	if err := checkReg3("movs", "rd", rd); err != nil {
		return 0, err
	}
	if err := checkImm("movs", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0x2000 | uint16(rd)<<8 | uint16(imm), nil
}

func CmpImm(rn int, imm uint32) (uint16, error) {
	if err := checkReg3("cmp", "rn", rn); err != nil {
		return 0, err
	}
	if err := checkImm("cmp", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0x2800 | uint16(rn)<<8 | uint16(imm), nil
}

func AddsImm8(rdn int, imm uint32) (uint16, error) {
	if err := checkReg3("adds", "rdn", rdn); err != nil {
		return 0, err
	}
	if err := checkImm("adds", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0x3000 | uint16(rdn)<<8 | uint16(imm), nil
}

func SubsImm8(rdn int, imm uint32) (uint16, error) {
	if err := checkReg3("subs", "rdn", rdn); err != nil {
		return 0, err
	}
	if err := checkImm("subs", "imm", imm, 0xff); err != nil {
		return 0, err
	}
	return 0x3800 | uint16(rdn)<<8 | uint16(imm), nil
}

func AndsReg(rdn, rm int) (uint16, error) { return logicReg("ands", 0x4000, rdn, rm) }
func EorsReg(rdn, rm int) (uint16, error) { return logicReg("eors", 0x4040, rdn, rm) }
func AdcsReg(rdn, rm int) (uint16, error) { return logicReg("adcs", 0x4140, rdn, rm) }
func SbcsReg(rdn, rm int) (uint16, error) { return logicReg("sbcs", 0x4180, rdn, rm) }
func TstReg(rn, rm int) (uint16, error)   { return logicReg("tst", 0x4200, rn, rm) }
func CmpReg(rn, rm int) (uint16, error)   { return logicReg("cmp", 0x4280, rn, rm) }
func CmnReg(rn, rm int) (uint16, error)   { return logicReg("cmn", 0x42c0, rn, rm) }
func OrrsReg(rdn, rm int) (uint16, error) { return logicReg("orrs", 0x4300, rdn, rm) }
func MulsReg(rdn, rm int) (uint16, error) { return logicReg("muls", 0x4340, rdn, rm) }
func BicsReg(rdn, rm int) (uint16, error) { return logicReg("bics", 0x4380, rdn, rm) }
func MvnsReg(rd, rm int) (uint16, error)  { return logicReg("mvns", 0x43c0, rd, rm) }

func logicReg(mnemonic string, base uint16, r1, rm int) (uint16, error) {
	if err := checkReg3(mnemonic, "r1", r1); err != nil {
		return 0, err
	}
	if err := checkReg3(mnemonic, "rm", rm); err != nil {
		return 0, err
	}
	return base | uint16(rm)<<3 | uint16(r1), nil
}

func RsbsImm(rd, rn int) (uint16, error) {
	if err := checkReg3("rsbs", "rd", rd); err != nil {
		return 0, err
	}
	if err := checkReg3("rsbs", "rn", rn); err != nil {
		return 0, err
	}
	return 0x4240 | uint16(rn)<<3 | uint16(rd), nil
}

func AddReg4(rdn, rm int) (uint16, error) {
	if err := checkReg4("add", "rdn", rdn); err != nil {
		return 0, err
	}
	if err := checkReg4("add", "rm", rm); err != nil {
		return 0, err
	}
	return 0x4400 | uint16((rdn>>3)&1)<<7 | uint16(rm&0xf)<<3 | uint16(rdn&7), nil
}

func CmpReg4(rn, rm int) (uint16, error) {
	if err := checkReg4("cmp", "rn", rn); err != nil {
		return 0, err
	}
	if err := checkReg4("cmp", "rm", rm); err != nil {
		return 0, err
	}
	return 0x4500 | uint16((rn>>3)&1)<<7 | uint16(rm&0xf)<<3 | uint16(rn&7), nil
}

func MovReg4(rd, rm int) (uint16, error) {
	if err := checkReg4("mov", "rd", rd); err != nil {
		return 0, err
	}
	if err := checkReg4("mov", "rm", rm); err != nil {
		return 0, err
	}
	return 0x4600 | uint16((rd>>3)&1)<<7 | uint16(rm&0xf)<<3 | uint16(rd&7), nil
}

func BxReg4(rm int) (uint16, error) {
	if err := checkReg4("bx", "rm", rm); err != nil {
		return 0, err
	}
	return 0x4700 | uint16(rm)<<3, nil
}

func BlxReg4(rm int) (uint16, error) {
	if err := checkReg4("blx", "rm", rm); err != nil {
		return 0, err
	}
	return 0x4780 | uint16(rm)<<3, nil
}
