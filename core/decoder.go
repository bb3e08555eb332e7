package core

// CatalogueEntry is one (handler, mask, value) encoding pattern. An
// opcode o matches when (o & Mask) == Value.
type CatalogueEntry struct {
	Handler HandlerID
	Mask    uint16
	Value   uint16
}

// EncodingCatalogue is the authoritative, hand-crafted set of Thumb-1
// encoding patterns, reproduced exactly from the reference table. Order
// in this slice is cosmetic only — specificity, not position, decides
// ties.
var EncodingCatalogue = []CatalogueEntry{
	{HandlerLslsImm, 0xf800, 0x0000},
	{HandlerLsrsImm, 0xf800, 0x0800},
	{HandlerAsrsImm, 0xf800, 0x1000},
	{HandlerAddsReg, 0xfe00, 0x1800},
	{HandlerSubsReg, 0xfe00, 0x1a00},
	{HandlerAddsImm3, 0xfe00, 0x1c00},
	{HandlerSubsImm3, 0xfe00, 0x1e00},
	{HandlerMovsImm, 0xf800, 0x2000},
	{HandlerCmpImm, 0xf800, 0x2800},
	{HandlerAddsImm8, 0xf800, 0x3000},
	{HandlerSubsImm8, 0xf800, 0x3800},

	{HandlerAndsReg, 0xffc0, 0x4000},
	{HandlerEorsReg, 0xffc0, 0x4040},
	{HandlerLslsReg, 0xffc0, 0x4080},
	{HandlerLsrsReg, 0xffc0, 0x40c0},
	{HandlerAsrsReg, 0xffc0, 0x4100},
	{HandlerAdcsReg, 0xffc0, 0x4140},
	{HandlerSbcsReg, 0xffc0, 0x4180},
	{HandlerRorsReg, 0xffc0, 0x41c0},
	{HandlerTstReg, 0xffc0, 0x4200},
	{HandlerRsbsImm, 0xffc0, 0x4240},
	{HandlerCmpReg, 0xffc0, 0x4280},
	{HandlerCmnReg, 0xffc0, 0x42c0},
	{HandlerOrrsReg, 0xffc0, 0x4300},
	{HandlerMulsReg, 0xffc0, 0x4340},
	{HandlerBicsReg, 0xffc0, 0x4380},
	{HandlerMvnsReg, 0xffc0, 0x43c0},

	{HandlerAddReg4, 0xff00, 0x4400},
	{HandlerCmpReg4, 0xff00, 0x4500},
	{HandlerMovReg4, 0xff00, 0x4600},
	{HandlerBxReg4, 0xff87, 0x4700},
	{HandlerBlxReg4, 0xff87, 0x4780},

	{HandlerLdrPc, 0xf800, 0x4800},

	{HandlerStrReg, 0xfe00, 0x5000},
	{HandlerStrhReg, 0xfe00, 0x5200},
	{HandlerStrbReg, 0xfe00, 0x5400},
	{HandlerLdrsbReg, 0xfe00, 0x5600},
	{HandlerLdrReg, 0xfe00, 0x5800},
	{HandlerLdrhReg, 0xfe00, 0x5a00},
	{HandlerLdrbReg, 0xfe00, 0x5c00},
	{HandlerLdrshReg, 0xfe00, 0x5e00},

	{HandlerStrImm, 0xf800, 0x6000},
	{HandlerLdrImm, 0xf800, 0x6800},
	{HandlerStrbImm, 0xf800, 0x7000},
	{HandlerLdrbImm, 0xf800, 0x7800},
	{HandlerStrhImm, 0xf800, 0x8000},
	{HandlerLdrhImm, 0xf800, 0x8800},

	{HandlerStrSpImm, 0xf800, 0x9000},
	{HandlerLdrSpImm, 0xf800, 0x9800},

	{HandlerAddPcImm, 0xf800, 0xa000},
	{HandlerAddSpImm, 0xf800, 0xa800},

	{HandlerAddSpI7, 0xff80, 0xb000},
	{HandlerSubSpI7, 0xff80, 0xb080},

	{HandlerSxth, 0xffc0, 0xb200},
	{HandlerSxtb, 0xffc0, 0xb240},
	{HandlerUxth, 0xffc0, 0xb280},
	{HandlerUxtb, 0xffc0, 0xb2c0},

	{HandlerPush, 0xfe00, 0xb400},
	{HandlerPop, 0xfe00, 0xbc00},

	{HandlerCps, 0xffef, 0xb662},
	{HandlerRev, 0xffc0, 0xba00},
	{HandlerRev16, 0xffc0, 0xba40},
	{HandlerRevsh, 0xffc0, 0xbac0},
	{HandlerBkpt, 0xff00, 0xbe00},

	{HandlerNop, 0xffff, 0xbf00},
	{HandlerYield, 0xffff, 0xbf10},
	{HandlerWfe, 0xffff, 0xbf20},
	{HandlerWfi, 0xffff, 0xbf30},
	{HandlerSev, 0xffff, 0xbf40},

	{HandlerStm, 0xf800, 0xc000},
	{HandlerLdm, 0xf800, 0xc800},

	{HandlerBCondImm, 0xf000, 0xd000},
	{HandlerUdf, 0xff00, 0xde00},
	{HandlerSvc, 0xff00, 0xdf00},

	{HandlerBImm, 0xf800, 0xe000},
	{HandlerThumb2, 0xf800, 0xf000},
}

// DecoderTable is a fixed mapping from every 16-bit opcode to the
// handler that should execute it: the single indexed load that makes
// dispatch cheap. Build it once with BuildDecoderTable and never mutate
// it.
type DecoderTable [65536]HandlerID

// isMoreSpecific reports whether pattern a is more specific than
// pattern b: a's fixed bits are a superset of b's, i.e. applying a's
// value against b's mask reproduces b's value (spec.md §4.1).
func isMoreSpecific(a, b CatalogueEntry) bool {
	return (a.Value & b.Mask) == b.Value
}

// BuildDecoderTable constructs the flat 65536-entry decode table from
// EncodingCatalogue. For each opcode, among all catalogue entries that
// match, the most specific one wins; opcodes matched by nothing decode
// to HandlerUndefined. The catalogue is hand-crafted so that any two
// patterns matching the same opcode are comparable under isMoreSpecific
// — see TestDecoderTable_ExactlyOneMaximalMatch for the property this
// algorithm relies on.
func BuildDecoderTable() *DecoderTable {
	var table DecoderTable

	for opcode := 0; opcode < 0x10000; opcode++ {
		o := uint16(opcode)
		best := -1

		for i, entry := range EncodingCatalogue {
			if (o & entry.Mask) != entry.Value {
				continue
			}
			if best == -1 || isMoreSpecific(entry, EncodingCatalogue[best]) {
				best = i
			}
		}

		if best == -1 {
			table[opcode] = HandlerUndefined
		} else {
			table[opcode] = EncodingCatalogue[best].Handler
		}
	}

	return &table
}

// Decode looks up the handler for a fetched opcode.
func (t *DecoderTable) Decode(opcode uint16) HandlerID {
	return t[opcode]
}
