// Package asm encodes Thumb-1 mnemonics into the 16-bit opcodes
// core.DecoderTable understands. Unlike the teacher's parser-driven
// encoder, there is no assembly-language front end here: callers
// build instructions directly from register numbers and immediates,
// the way a test or a loader's relocation fixup would.
package asm

import "fmt"

// EncodingError reports why a mnemonic could not be encoded: an
// out-of-range register index or an immediate that does not fit the
// encoding's field width.
type EncodingError struct {
	Mnemonic string
	Message  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("asm: %s: %s", e.Mnemonic, e.Message)
}

func newError(mnemonic, format string, args ...any) *EncodingError {
	return &EncodingError{Mnemonic: mnemonic, Message: fmt.Sprintf(format, args...)}
}

func checkReg3(mnemonic, name string, r int) error {
	if r < 0 || r > 7 {
		return newError(mnemonic, "%s=%d out of range for a 3-bit register field (0-7)", name, r)
	}
	return nil
}

func checkReg4(mnemonic, name string, r int) error {
	if r < 0 || r > 15 {
		return newError(mnemonic, "%s=%d out of range for a 4-bit register field (0-15)", name, r)
	}
	return nil
}

func checkImm(mnemonic, name string, imm, maxVal uint32) error {
	if imm > maxVal {
		return newError(mnemonic, "%s=0x%x exceeds the field's maximum of 0x%x", name, imm, maxVal)
	}
	return nil
}
