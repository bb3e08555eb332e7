package asm

// Sign/zero extension and byte-reversal encoders; all share the
// 3-bit-register, no-immediate shape.

func Sxth(rd, rm int) (uint16, error)  { return regPair("sxth", 0xb200, rd, rm) }
func Sxtb(rd, rm int) (uint16, error)  { return regPair("sxtb", 0xb240, rd, rm) }
func Uxth(rd, rm int) (uint16, error)  { return regPair("uxth", 0xb280, rd, rm) }
func Uxtb(rd, rm int) (uint16, error)  { return regPair("uxtb", 0xb2c0, rd, rm) }
func Rev(rd, rm int) (uint16, error)   { return regPair("rev", 0xba00, rd, rm) }
func Rev16(rd, rm int) (uint16, error) { return regPair("rev16", 0xba40, rd, rm) }
func Revsh(rd, rm int) (uint16, error) { return regPair("revsh", 0xbac0, rd, rm) }

func regPair(mnemonic string, base uint16, rd, rm int) (uint16, error) {
	if err := checkReg3(mnemonic, "rd", rd); err != nil {
		return 0, err
	}
	if err := checkReg3(mnemonic, "rm", rm); err != nil {
		return 0, err
	}
	return base | uint16(rm)<<3 | uint16(rd), nil
}
