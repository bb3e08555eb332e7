package core

// Register aliases, named so handler bodies never carry a bare magic
// index for SP/LR/PC.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	SP = 13
	LR = 14
	PC = 15
)

// Flags holds the four ARMv6-M condition flags (APSR's N, Z, C, V).
// Handlers never see a packed APSR word — only these four booleans.
type Flags struct {
	N, Z, C, V bool
}

// UpdateNZ sets N and Z from a 32-bit result.
func (f *Flags) UpdateNZ(result uint32) {
	f.N = result&0x80000000 != 0
	f.Z = result == 0
}

// Bus is the data-memory interface the core dispatches loads and
// stores through. It is the only thing the core depends on outside
// itself; its contents, timing, and peripheral behaviour belong to the
// surrounding simulator.
type Bus interface {
	ReadWord(addr uint32) (uint32, error)
	ReadHalfword(addr uint32) (uint16, error)
	ReadByte(addr uint32) (uint8, error)
	WriteWord(addr uint32, val uint32) error
	WriteHalfword(addr uint32, val uint16) error
	WriteByte(addr uint32, val uint8) error
}

// DebugSink receives one formatted trace line per executed instruction
// (the CORE_DBG equivalent). A nil sink means tracing is disabled.
type DebugSink interface {
	Debug(format string, args ...any)
}

// Core is the architectural state of a single Thumb-1 / ARMv6-M core:
// the 16-register file (R13=SP, R14=LR, R15=PC), the four condition
// flags, the opcode currently being executed, a name for diagnostics,
// and the bus handle memory accesses go through.
type Core struct {
	R      [16]uint32
	Flags  Flags
	Opcode uint16
	Name   string
	Bus    Bus

	Table *DecoderTable

	// Cycles counts retired instructions, for statistics/trace display
	// only — this core does not model instruction timing.
	Cycles uint64

	// Dbg, if non-nil, receives one line per executed instruction.
	Dbg DebugSink

	// lastHandler records which handler last ran, for Mnemonic().
	lastHandler HandlerID
}

// NewCore creates a core with a shared decoder table, a bus, and a
// diagnostic name. table is typically built once via BuildDecoderTable
// and shared across every core in a multi-core simulation, since it
// never mutates after construction.
func NewCore(name string, bus Bus, table *DecoderTable) *Core {
	return &Core{
		Name:  name,
		Bus:   bus,
		Table: table,
	}
}

// Reset clears registers and flags; PC and SP are left at 0 (the
// simulator is expected to set an entry point and stack top before the
// first Step).
func (c *Core) Reset() {
	for i := range c.R {
		c.R[i] = 0
	}
	c.Flags = Flags{}
	c.Opcode = 0
	c.Cycles = 0
}

// SetEntry sets PC and SP for a freshly loaded program.
func (c *Core) SetEntry(pc, sp uint32) {
	c.R[PC] = pc
	c.R[SP] = sp
}

// Mnemonic renders the last-decoded handler's name. It is not a
// disassembler: it carries no operands (the handlers' own debug lines
// through Dbg are where operands are formatted).
func (c *Core) Mnemonic() string {
	return c.lastHandler.String()
}

func (c *Core) debugf(format string, args ...any) {
	if c.Dbg != nil {
		c.Dbg.Debug(format, args...)
	}
}
