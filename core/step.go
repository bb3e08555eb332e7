package core

import "fmt"

type handlerFunc func(*Core) error

var dispatch = map[HandlerID]handlerFunc{
	HandlerLslsImm:   execLslsImm,
	HandlerLsrsImm:   execLsrsImm,
	HandlerAsrsImm:   execAsrsImm,
	HandlerAddsReg:   execAddsReg,
	HandlerSubsReg:   execSubsReg,
	HandlerAddsImm3:  execAddsImm3,
	HandlerSubsImm3:  execSubsImm3,
	HandlerMovsImm:   execMovsImm,
	HandlerCmpImm:    execCmpImm,
	HandlerAddsImm8:  execAddsImm8,
	HandlerSubsImm8:  execSubsImm8,
	HandlerAndsReg:   execAndsReg,
	HandlerEorsReg:   execEorsReg,
	HandlerLslsReg:   execLslsReg,
	HandlerLsrsReg:   execLsrsReg,
	HandlerAsrsReg:   execAsrsReg,
	HandlerAdcsReg:   execAdcsReg,
	HandlerSbcsReg:   execSbcsReg,
	HandlerRorsReg:   execRorsReg,
	HandlerTstReg:    execTstReg,
	HandlerRsbsImm:   execRsbsImm,
	HandlerCmpReg:    execCmpReg,
	HandlerCmnReg:    execCmnReg,
	HandlerOrrsReg:   execOrrsReg,
	HandlerMulsReg:   execMulsReg,
	HandlerBicsReg:   execBicsReg,
	HandlerMvnsReg:   execMvnsReg,
	HandlerAddReg4:   execAddReg4,
	HandlerCmpReg4:   execCmpReg4,
	HandlerMovReg4:   execMovReg4,
	HandlerBxReg4:    execBxReg4,
	HandlerBlxReg4:   execBlxReg4,
	HandlerLdrPc:     execLdrPc,
	HandlerStrReg:    execStrReg,
	HandlerStrhReg:   execStrhReg,
	HandlerStrbReg:   execStrbReg,
	HandlerLdrsbReg:  execLdrsbReg,
	HandlerLdrReg:    execLdrReg,
	HandlerLdrhReg:   execLdrhReg,
	HandlerLdrbReg:   execLdrbReg,
	HandlerLdrshReg:  execLdrshReg,
	HandlerStrImm:    execStrImm,
	HandlerLdrImm:    execLdrImm,
	HandlerStrbImm:   execStrbImm,
	HandlerLdrbImm:   execLdrbImm,
	HandlerStrhImm:   execStrhImm,
	HandlerLdrhImm:   execLdrhImm,
	HandlerStrSpImm:  execStrSpImm,
	HandlerLdrSpImm:  execLdrSpImm,
	HandlerAddPcImm:  execAddPcImm,
	HandlerAddSpImm:  execAddSpImm,
	HandlerAddSpI7:   execAddSpI7,
	HandlerSubSpI7:   execSubSpI7,
	HandlerSxth:      execSxth,
	HandlerSxtb:      execSxtb,
	HandlerUxth:      execUxth,
	HandlerUxtb:      execUxtb,
	HandlerPush:      execPush,
	HandlerPop:       execPop,
	HandlerCps:       execCps,
	HandlerRev:       execRev,
	HandlerRev16:     execRev16,
	HandlerRevsh:     execRevsh,
	HandlerBkpt:      execBkpt,
	HandlerNop:       execNop,
	HandlerYield:     execYield,
	HandlerWfe:       execWfe,
	HandlerWfi:       execWfi,
	HandlerSev:       execSev,
	HandlerStm:       execStm,
	HandlerLdm:       execLdm,
	HandlerBCondImm:  execBCondImm,
	HandlerUdf:       execUdf,
	HandlerSvc:       execSvc,
	HandlerBImm:      execBImm,
	HandlerUndefined: execUndefined,
	HandlerThumb2:    execThumb2,
}

// Step fetches the halfword at PC, advances PC by 2 before dispatch
// (the Thumb "PC observed by an instruction is its own address + 2"
// pipeline convention, spec.md §4.5), decodes it through the core's
// table, and runs the matching handler. Any bus or handler error is
// returned unwrapped so callers can type-switch on *FatalError.
func (c *Core) Step() error {
	opcode, err := c.Bus.ReadHalfword(c.R[PC])
	if err != nil {
		return err
	}

	c.R[PC] += 2
	c.Opcode = opcode

	id := c.Table.Decode(opcode)
	c.lastHandler = id

	fn, ok := dispatch[id]
	if !ok {
		return fmt.Errorf("core: no handler wired for %s", id)
	}

	if err := fn(c); err != nil {
		return err
	}
	c.Cycles++
	return nil
}
