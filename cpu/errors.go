package cpu

import "fmt"

// UnknownOpcodeError is returned by Cycle when the dispatched opcode has no
// handler for the Engine's Variant. This covers every NMOS undocumented
// opcode and any CMOS slot this engine does not model; the embedder decides
// whether that is fatal.
type UnknownOpcodeError struct {
	Opcode  byte
	PC      uint16
	Variant Variant
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("sixfive: unknown %s opcode $%02X at $%04X", e.Variant, e.Opcode, e.PC)
}
