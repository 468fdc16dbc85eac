package cpu

// executeCMOSOnly dispatches every opcode the 65C02 adds or redefines:
// the genuinely new instructions (STZ, TRB, TSB, BRA, BBR/BBS, RMB/SMB,
// the (zp) addressing mode, BIT #imm, JMP (abs,X)) and the six NMOS
// undocumented single-byte-NOP slots CMOS repurposes for INC A/DEC A and
// PHX/PLX/PHY/PLY. It returns handled=false for every byte outside this
// set, so Cycle's executeCommon (shared with NMOS) handles the rest.
func (e *Engine) executeCMOSOnly(op byte) (int, bool) {
	switch op {
	case 0x1A: // INC A
		e.A++
		e.updateNZ(e.A)
	case 0x3A: // DEC A
		e.A--
		e.updateNZ(e.A)
	case 0x5A:
		e.phy()
	case 0x7A:
		e.ply()
	case 0xDA:
		e.phx()
	case 0xFA:
		e.plx()

	case 0x80: // BRA
		return e.branch(true) - 1, true // branch() charges +1 for "taken"; BRA's base already includes it

	case 0x89: // BIT #imm
		e.bitImmediate(e.fetchByte())

	case 0x04:
		e.tsb(e.addrZeroPage())
	case 0x0C:
		e.tsb(e.addrAbsolute())
	case 0x14:
		e.trb(e.addrZeroPage())
	case 0x1C:
		e.trb(e.addrAbsolute())

	case 0x34: // BIT zp,X
		e.bit(e.bus.Read(e.addrZeroPageX()))
	case 0x3C: // BIT abs,X
		addr, crossed := e.addrAbsoluteX()
		e.bit(e.bus.Read(addr))
		return boolPenalty(crossed), true

	case 0x1E: // ASL abs,X — CMOS adds a page-crossing penalty NMOS doesn't charge
		addr, crossed := e.addrAbsoluteX()
		e.aslMem(addr)
		return boolPenalty(crossed), true
	case 0x5E: // LSR abs,X — same CMOS-only crossing penalty
		addr, crossed := e.addrAbsoluteX()
		e.lsrMem(addr)
		return boolPenalty(crossed), true

	case 0x64:
		e.stage(e.addrZeroPage(), 0)
	case 0x74:
		e.stage(e.addrZeroPageX(), 0)
	case 0x9C:
		e.stage(e.addrAbsolute(), 0)
	case 0x9E:
		addr, _ := e.addrAbsoluteX()
		e.stage(addr, 0)

	case 0x12:
		e.ora(e.bus.Read(e.addrIndirectZP()))
	case 0x32:
		e.and(e.bus.Read(e.addrIndirectZP()))
	case 0x52:
		e.eor(e.bus.Read(e.addrIndirectZP()))
	case 0x72:
		e.adc(e.bus.Read(e.addrIndirectZP()))
	case 0x92:
		e.stage(e.addrIndirectZP(), e.A)
	case 0xB2:
		e.lda(e.bus.Read(e.addrIndirectZP()))
	case 0xD2:
		e.compare(e.A, e.bus.Read(e.addrIndirectZP()))
	case 0xF2:
		e.sbc(e.bus.Read(e.addrIndirectZP()))

	case 0x7C:
		e.jmp(e.addrIndirectAbsX())

	default:
		if penalty, handled := e.executeBitOpcode(op); handled {
			return penalty, true
		}
		return 0, false
	}
	return 0, true
}

// executeBitOpcode handles the sixteen RMB/SMB (set/reset zero-page bit)
// and sixteen BBR/BBS (branch on zero-page bit) opcodes. Each group's
// sixteen opcodes share a byte layout where the high nibble's low three
// bits (opcode bits 4-6) select the bit number 0-7.
func (e *Engine) executeBitOpcode(op byte) (int, bool) {
	bit := byte(op >> 4 & 0x7)
	mask := byte(1) << bit

	switch {
	case op&0x0F == 0x07: // RMB (bit 7 clear, reset) / SMB (bit 7 set, set), both low nibble 0x7
		if op&0x80 == 0 {
			e.rmw(e.addrZeroPage(), func(v byte) byte { return v &^ mask })
		} else {
			e.rmw(e.addrZeroPage(), func(v byte) byte { return v | mask })
		}
		return 0, true
	case op&0x0F == 0x0F: // BBR (bit 7 clear) / BBS (bit 7 set)
		zp := e.addrZeroPage()
		v := e.bus.Read(zp)
		taken := v&mask == 0
		if op&0x80 != 0 {
			taken = v&mask != 0
		}
		return e.branch(taken), true
	}
	return 0, false
}

// tsb (Test and Set Bits) ORs A's set bits into the memory operand and
// sets Z from the pre-modification AND of A and the operand.
func (e *Engine) tsb(addr uint16) {
	e.rmw(addr, func(v byte) byte {
		e.setFlag(flagZ, e.A&v == 0)
		return v | e.A
	})
}

// trb (Test and Reset Bits) clears A's set bits out of the memory operand
// and sets Z the same way tsb does.
func (e *Engine) trb(addr uint16) {
	e.rmw(addr, func(v byte) byte {
		e.setFlag(flagZ, e.A&v == 0)
		return v &^ e.A
	})
}
