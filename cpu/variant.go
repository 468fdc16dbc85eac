package cpu

// Variant selects which real 6502-family part an Engine emulates. It is
// fixed at construction; Cycle looks up that variant's base-cycle table and
// chooses its dispatch path on every call, and a few handlers (JMP (abs),
// interrupt entry) check it as well.
type Variant int

const (
	// NMOS is the original MOS Technology 6502: no 65C02 additions, and the
	// usual crop of undocumented opcodes — none of which this engine models
	// (see Engine.Cycle). Decimal-mode ADC/SBC N/Z follow the 65C02 rule on
	// this variant too (see alu.go).
	NMOS Variant = iota

	// CMOS is the WDC/Rockwell 65C02: adds BBR/BBS/STZ/TSB/TRB/BRA, the
	// PHX/PHY/PLX/PLY and INC A/DEC A opcodes (reusing six of NMOS's
	// undocumented single-byte NOP slots), fixes the JMP (abs) page-wrap
	// bug, and always reads the operand before a read-modify-write store
	// (irrelevant to a pure instruction-level core, so not separately
	// modeled).
	CMOS
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "6502"
	case CMOS:
		return "65C02"
	default:
		return "unknown"
	}
}
