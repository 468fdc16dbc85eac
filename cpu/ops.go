package cpu

// ops.go holds the register-only and control-flow operations shared by
// every addressing-mode variant of a given mnemonic: loads, transfers,
// stack operations, flag sets, branches, and the JMP/JSR/RTS/RTI family.
// The ALU proper (arithmetic, shifts, compares, BIT) lives in alu.go.

func (e *Engine) lda(v byte) { e.A = v; e.updateNZ(e.A) }
func (e *Engine) ldx(v byte) { e.X = v; e.updateNZ(e.X) }
func (e *Engine) ldy(v byte) { e.Y = v; e.updateNZ(e.Y) }

func (e *Engine) ora(v byte) { e.A |= v; e.updateNZ(e.A) }
func (e *Engine) and(v byte) { e.A &= v; e.updateNZ(e.A) }
func (e *Engine) eor(v byte) { e.A ^= v; e.updateNZ(e.A) }

func (e *Engine) tax() { e.X = e.A; e.updateNZ(e.X) }
func (e *Engine) tay() { e.Y = e.A; e.updateNZ(e.Y) }
func (e *Engine) txa() { e.A = e.X; e.updateNZ(e.A) }
func (e *Engine) tya() { e.A = e.Y; e.updateNZ(e.A) }
func (e *Engine) tsx() { e.X = e.S; e.updateNZ(e.X) }
func (e *Engine) txs() { e.S = e.X } // does not touch N/Z

func (e *Engine) inx() { e.X++; e.updateNZ(e.X) }
func (e *Engine) iny() { e.Y++; e.updateNZ(e.Y) }
func (e *Engine) dex() { e.X--; e.updateNZ(e.X) }
func (e *Engine) dey() { e.Y--; e.updateNZ(e.Y) }

func (e *Engine) clc() { e.setFlag(flagC, false) }
func (e *Engine) sec() { e.setFlag(flagC, true) }
func (e *Engine) cli() { e.setFlag(flagI, false) }
func (e *Engine) sei() { e.setFlag(flagI, true) }
func (e *Engine) clv() { e.setFlag(flagV, false) }
func (e *Engine) cld() { e.setFlag(flagD, false) }
func (e *Engine) sed() { e.setFlag(flagD, true) }

func (e *Engine) pha() { e.push(e.A) }
func (e *Engine) php() { e.push(e.P | flagU | flagB) }
func (e *Engine) pla() { e.A = e.pull(); e.updateNZ(e.A) }
func (e *Engine) plp() { e.setP(e.pull()) }

// phx/ply/plx/phy are 65C02-only (NMOS reuses these opcode slots for
// single-byte undocumented NOPs this engine does not model).
func (e *Engine) phx() { e.push(e.X) }
func (e *Engine) phy() { e.push(e.Y) }
func (e *Engine) plx() { e.X = e.pull(); e.updateNZ(e.X) }
func (e *Engine) ply() { e.Y = e.pull(); e.updateNZ(e.Y) }

func (e *Engine) jmp(addr uint16) { e.PC = addr }

func (e *Engine) jsr(addr uint16) {
	// The pushed return address is the address of JSR's last operand
	// byte, not the address of the following instruction: PC has already
	// been advanced past both operand bytes by the addressing fetch, so
	// the correct return address is PC-1.
	e.push16(e.PC - 1)
	e.PC = addr
}

func (e *Engine) rts() {
	e.PC = e.pull16() + 1
}

func (e *Engine) rti() {
	e.setP(e.pull())
	e.PC = e.pull16()
}

// branch evaluates a relative branch: it always consumes the offset byte
// (advancing PC past it), and if taken adjusts PC by the signed offset and
// reports the cycle penalty — 1 for the branch being taken, plus 1 more if
// the branch target lands on a different page than the instruction
// following the branch.
func (e *Engine) branch(taken bool) int {
	offset := int8(e.fetchByte())
	if !taken {
		return 0
	}
	from := e.PC
	e.PC = uint16(int32(e.PC) + int32(offset))
	if crossesPage(from, e.PC) {
		return 2
	}
	return 1
}
