package core

import "fmt"

// ErrorKind classifies why Step could not continue. Every case is
// deliberate and final at this layer — there is no soft-failure path
// inside a handler (spec.md §7).
type ErrorKind int

const (
	ErrUndefinedOpcode ErrorKind = iota
	ErrThumb2Unsupported
	ErrNotImplemented
	ErrInvalidCondition
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUndefinedOpcode:
		return "undefined opcode"
	case ErrThumb2Unsupported:
		return "thumb2 prefix unsupported"
	case ErrNotImplemented:
		return "not implemented"
	case ErrInvalidCondition:
		return "invalid condition code"
	default:
		return "unknown error"
	}
}

// FatalError reports an unrecoverable condition at a given instruction
// address. It is returned from Step, never panicked: a TUI or API
// consumer decides what to do with it (report, halt, abort the
// process) rather than the core deciding for them.
type FatalError struct {
	Kind    ErrorKind
	Address uint32
	Opcode  uint16
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s at 0x%08x (opcode 0x%04x): %s", e.Kind, e.Address, e.Opcode, e.Message)
}

func fatal(kind ErrorKind, addr uint32, opcode uint16, format string, args ...any) *FatalError {
	return &FatalError{
		Kind:    kind,
		Address: addr,
		Opcode:  opcode,
		Message: fmt.Sprintf(format, args...),
	}
}
