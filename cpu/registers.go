package cpu

// Status register flag bits, identical layout to the MOS 6502/65C02 P
// register.
const (
	flagC byte = 0x01 // Carry
	flagZ byte = 0x02 // Zero
	flagI byte = 0x04 // Interrupt disable
	flagD byte = 0x08 // Decimal mode
	flagB byte = 0x10 // Break (software interrupt marker, stack image only)
	flagU byte = 0x20 // Unused, always reads 1 ("B2")
	flagV byte = 0x40 // Overflow
	flagN byte = 0x80 // Negative
)

// nzTable[v] holds the N and Z flag bits that any 8-bit result v produces.
// Precomputed once so every ALU/load/transfer op can fold its N/Z update
// into a single table lookup instead of two branches.
var nzTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		var f byte
		if i == 0 {
			f |= flagZ
		}
		if i&0x80 != 0 {
			f |= flagN
		}
		nzTable[i] = f
	}
}

// setFlag sets or clears a single status bit, always preserving the
// always-1 U bit regardless of which bit was requested.
func (e *Engine) setFlag(flag byte, on bool) {
	if on {
		e.P |= flag
	} else {
		e.P &^= flag
	}
	e.P |= flagU
}

func (e *Engine) getFlag(flag byte) bool {
	return e.P&flag != 0
}

// setP installs a full status byte, forcing both U and B to 1. PLP, RTI and
// the debug SetRegister path install P through this, so a B=0
// hardware-interrupt frame (pushed with B cleared to mark it as such) can
// never be pulled straight back into the live P by a later PLP/RTI. Reset
// starts P with both bits set and setFlag/updateNZ never clear them, so the
// externally observed P always reads B2=B=1, per spec.md §3/§4.5/§8.
func (e *Engine) setP(p byte) {
	e.P = p | flagU | flagB
}

// updateNZ sets N and Z from an 8-bit result and leaves every other flag
// untouched.
func (e *Engine) updateNZ(v byte) {
	e.P = (e.P &^ (flagN | flagZ)) | nzTable[v]
}
