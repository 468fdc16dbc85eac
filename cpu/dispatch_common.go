package cpu

// executeCommon dispatches every opcode documented on the original NMOS
// 6502 — the instruction set both variants share unchanged. CMOS-only
// opcodes, and the handful of byte values CMOS redefines, are intercepted
// by executeCMOSOnly in dispatch_cmos.go before this switch ever runs.
func (e *Engine) executeCommon(op byte) int {
	switch op {
	// -- BRK / flow control -------------------------------------------
	case 0x00:
		e.enterBRK()
	case 0x20:
		e.jsr(e.addrAbsolute())
	case 0x40:
		e.rti()
	case 0x60:
		e.rts()
	case 0x4C:
		e.jmp(e.addrAbsolute())
	case 0x6C:
		e.jmp(e.addrIndirect())

	// -- branches -------------------------------------------------------
	case 0x10:
		return e.branch(!e.getFlag(flagN))
	case 0x30:
		return e.branch(e.getFlag(flagN))
	case 0x50:
		return e.branch(!e.getFlag(flagV))
	case 0x70:
		return e.branch(e.getFlag(flagV))
	case 0x90:
		return e.branch(!e.getFlag(flagC))
	case 0xB0:
		return e.branch(e.getFlag(flagC))
	case 0xD0:
		return e.branch(!e.getFlag(flagZ))
	case 0xF0:
		return e.branch(e.getFlag(flagZ))

	// -- flags / misc register ops --------------------------------------
	case 0x08:
		e.php()
	case 0x28:
		e.plp()
	case 0x48:
		e.pha()
	case 0x68:
		e.pla()
	case 0x18:
		e.clc()
	case 0x38:
		e.sec()
	case 0x58:
		e.cli()
	case 0x78:
		e.sei()
	case 0xB8:
		e.clv()
	case 0xD8:
		e.cld()
	case 0xF8:
		e.sed()
	case 0x88:
		e.dey()
	case 0xC8:
		e.iny()
	case 0xCA:
		e.dex()
	case 0xE8:
		e.inx()
	case 0x8A:
		e.txa()
	case 0x98:
		e.tya()
	case 0xA8:
		e.tay()
	case 0xAA:
		e.tax()
	case 0x9A:
		e.txs()
	case 0xBA:
		e.tsx()
	case 0xEA:
		// NOP

	// -- LDA --------------------------------------------------------------
	case 0xA9:
		e.lda(e.fetchByte())
	case 0xA5:
		e.lda(e.bus.Read(e.addrZeroPage()))
	case 0xB5:
		e.lda(e.bus.Read(e.addrZeroPageX()))
	case 0xAD:
		e.lda(e.bus.Read(e.addrAbsolute()))
	case 0xBD:
		addr, crossed := e.addrAbsoluteX()
		e.lda(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xB9:
		addr, crossed := e.addrAbsoluteY()
		e.lda(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xA1:
		e.lda(e.bus.Read(e.addrIndirectX()))
	case 0xB1:
		addr, crossed := e.addrIndirectY()
		e.lda(e.bus.Read(addr))
		return boolPenalty(crossed)

	// -- LDX ---------------------------------------------------------------
	case 0xA2:
		e.ldx(e.fetchByte())
	case 0xA6:
		e.ldx(e.bus.Read(e.addrZeroPage()))
	case 0xB6:
		e.ldx(e.bus.Read(e.addrZeroPageY()))
	case 0xAE:
		e.ldx(e.bus.Read(e.addrAbsolute()))
	case 0xBE:
		addr, crossed := e.addrAbsoluteY()
		e.ldx(e.bus.Read(addr))
		return boolPenalty(crossed)

	// -- LDY ---------------------------------------------------------------
	case 0xA0:
		e.ldy(e.fetchByte())
	case 0xA4:
		e.ldy(e.bus.Read(e.addrZeroPage()))
	case 0xB4:
		e.ldy(e.bus.Read(e.addrZeroPageX()))
	case 0xAC:
		e.ldy(e.bus.Read(e.addrAbsolute()))
	case 0xBC:
		addr, crossed := e.addrAbsoluteX()
		e.ldy(e.bus.Read(addr))
		return boolPenalty(crossed)

	// -- STA ---------------------------------------------------------------
	case 0x85:
		e.stage(e.addrZeroPage(), e.A)
	case 0x95:
		e.stage(e.addrZeroPageX(), e.A)
	case 0x8D:
		e.stage(e.addrAbsolute(), e.A)
	case 0x9D:
		addr, _ := e.addrAbsoluteX()
		e.stage(addr, e.A)
	case 0x99:
		addr, _ := e.addrAbsoluteY()
		e.stage(addr, e.A)
	case 0x81:
		e.stage(e.addrIndirectX(), e.A)
	case 0x91:
		addr, _ := e.addrIndirectY()
		e.stage(addr, e.A)

	// -- STX / STY -----------------------------------------------------
	case 0x86:
		e.stage(e.addrZeroPage(), e.X)
	case 0x96:
		e.stage(e.addrZeroPageY(), e.X)
	case 0x8E:
		e.stage(e.addrAbsolute(), e.X)
	case 0x84:
		e.stage(e.addrZeroPage(), e.Y)
	case 0x94:
		e.stage(e.addrZeroPageX(), e.Y)
	case 0x8C:
		e.stage(e.addrAbsolute(), e.Y)

	// -- ORA / AND / EOR -------------------------------------------------
	case 0x09:
		e.ora(e.fetchByte())
	case 0x05:
		e.ora(e.bus.Read(e.addrZeroPage()))
	case 0x15:
		e.ora(e.bus.Read(e.addrZeroPageX()))
	case 0x0D:
		e.ora(e.bus.Read(e.addrAbsolute()))
	case 0x1D:
		addr, crossed := e.addrAbsoluteX()
		e.ora(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x19:
		addr, crossed := e.addrAbsoluteY()
		e.ora(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x01:
		e.ora(e.bus.Read(e.addrIndirectX()))
	case 0x11:
		addr, crossed := e.addrIndirectY()
		e.ora(e.bus.Read(addr))
		return boolPenalty(crossed)

	case 0x29:
		e.and(e.fetchByte())
	case 0x25:
		e.and(e.bus.Read(e.addrZeroPage()))
	case 0x35:
		e.and(e.bus.Read(e.addrZeroPageX()))
	case 0x2D:
		e.and(e.bus.Read(e.addrAbsolute()))
	case 0x3D:
		addr, crossed := e.addrAbsoluteX()
		e.and(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x39:
		addr, crossed := e.addrAbsoluteY()
		e.and(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x21:
		e.and(e.bus.Read(e.addrIndirectX()))
	case 0x31:
		addr, crossed := e.addrIndirectY()
		e.and(e.bus.Read(addr))
		return boolPenalty(crossed)

	case 0x49:
		e.eor(e.fetchByte())
	case 0x45:
		e.eor(e.bus.Read(e.addrZeroPage()))
	case 0x55:
		e.eor(e.bus.Read(e.addrZeroPageX()))
	case 0x4D:
		e.eor(e.bus.Read(e.addrAbsolute()))
	case 0x5D:
		addr, crossed := e.addrAbsoluteX()
		e.eor(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x59:
		addr, crossed := e.addrAbsoluteY()
		e.eor(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x41:
		e.eor(e.bus.Read(e.addrIndirectX()))
	case 0x51:
		addr, crossed := e.addrIndirectY()
		e.eor(e.bus.Read(addr))
		return boolPenalty(crossed)

	// -- ADC / SBC -----------------------------------------------------
	case 0x69:
		e.adc(e.fetchByte())
	case 0x65:
		e.adc(e.bus.Read(e.addrZeroPage()))
	case 0x75:
		e.adc(e.bus.Read(e.addrZeroPageX()))
	case 0x6D:
		e.adc(e.bus.Read(e.addrAbsolute()))
	case 0x7D:
		addr, crossed := e.addrAbsoluteX()
		e.adc(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x79:
		addr, crossed := e.addrAbsoluteY()
		e.adc(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0x61:
		e.adc(e.bus.Read(e.addrIndirectX()))
	case 0x71:
		addr, crossed := e.addrIndirectY()
		e.adc(e.bus.Read(addr))
		return boolPenalty(crossed)

	case 0xE9:
		e.sbc(e.fetchByte())
	case 0xE5:
		e.sbc(e.bus.Read(e.addrZeroPage()))
	case 0xF5:
		e.sbc(e.bus.Read(e.addrZeroPageX()))
	case 0xED:
		e.sbc(e.bus.Read(e.addrAbsolute()))
	case 0xFD:
		addr, crossed := e.addrAbsoluteX()
		e.sbc(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xF9:
		addr, crossed := e.addrAbsoluteY()
		e.sbc(e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xE1:
		e.sbc(e.bus.Read(e.addrIndirectX()))
	case 0xF1:
		addr, crossed := e.addrIndirectY()
		e.sbc(e.bus.Read(addr))
		return boolPenalty(crossed)

	// -- CMP / CPX / CPY -------------------------------------------------
	case 0xC9:
		e.compare(e.A, e.fetchByte())
	case 0xC5:
		e.compare(e.A, e.bus.Read(e.addrZeroPage()))
	case 0xD5:
		e.compare(e.A, e.bus.Read(e.addrZeroPageX()))
	case 0xCD:
		e.compare(e.A, e.bus.Read(e.addrAbsolute()))
	case 0xDD:
		addr, crossed := e.addrAbsoluteX()
		e.compare(e.A, e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xD9:
		addr, crossed := e.addrAbsoluteY()
		e.compare(e.A, e.bus.Read(addr))
		return boolPenalty(crossed)
	case 0xC1:
		e.compare(e.A, e.bus.Read(e.addrIndirectX()))
	case 0xD1:
		addr, crossed := e.addrIndirectY()
		e.compare(e.A, e.bus.Read(addr))
		return boolPenalty(crossed)

	case 0xE0:
		e.compare(e.X, e.fetchByte())
	case 0xE4:
		e.compare(e.X, e.bus.Read(e.addrZeroPage()))
	case 0xEC:
		e.compare(e.X, e.bus.Read(e.addrAbsolute()))

	case 0xC0:
		e.compare(e.Y, e.fetchByte())
	case 0xC4:
		e.compare(e.Y, e.bus.Read(e.addrZeroPage()))
	case 0xCC:
		e.compare(e.Y, e.bus.Read(e.addrAbsolute()))

	// -- BIT ----------------------------------------------------------
	case 0x24:
		e.bit(e.bus.Read(e.addrZeroPage()))
	case 0x2C:
		e.bit(e.bus.Read(e.addrAbsolute()))

	// -- INC / DEC (memory) ----------------------------------------------
	case 0xE6:
		e.incMem(e.addrZeroPage())
	case 0xF6:
		e.incMem(e.addrZeroPageX())
	case 0xEE:
		e.incMem(e.addrAbsolute())
	case 0xFE:
		addr, _ := e.addrAbsoluteX()
		e.incMem(addr)
	case 0xC6:
		e.decMem(e.addrZeroPage())
	case 0xD6:
		e.decMem(e.addrZeroPageX())
	case 0xCE:
		e.decMem(e.addrAbsolute())
	case 0xDE:
		addr, _ := e.addrAbsoluteX()
		e.decMem(addr)

	// -- ASL / LSR / ROL / ROR ---------------------------------------------
	case 0x0A:
		e.aslAcc()
	case 0x06:
		e.aslMem(e.addrZeroPage())
	case 0x16:
		e.aslMem(e.addrZeroPageX())
	case 0x0E:
		e.aslMem(e.addrAbsolute())
	case 0x1E:
		addr, _ := e.addrAbsoluteX()
		e.aslMem(addr)

	case 0x4A:
		e.lsrAcc()
	case 0x46:
		e.lsrMem(e.addrZeroPage())
	case 0x56:
		e.lsrMem(e.addrZeroPageX())
	case 0x4E:
		e.lsrMem(e.addrAbsolute())
	case 0x5E:
		addr, _ := e.addrAbsoluteX()
		e.lsrMem(addr)

	case 0x2A:
		e.rolAcc()
	case 0x26:
		e.rolMem(e.addrZeroPage())
	case 0x36:
		e.rolMem(e.addrZeroPageX())
	case 0x2E:
		e.rolMem(e.addrAbsolute())
	case 0x3E:
		addr, _ := e.addrAbsoluteX()
		e.rolMem(addr)

	case 0x6A:
		e.rorAcc()
	case 0x66:
		e.rorMem(e.addrZeroPage())
	case 0x76:
		e.rorMem(e.addrZeroPageX())
	case 0x6E:
		e.rorMem(e.addrAbsolute())
	case 0x7E:
		addr, _ := e.addrAbsoluteX()
		e.rorMem(addr)

	default:
		// Every byte reaching here without a case either has a zero
		// cycle-table entry (Cycle already rejected it as unknown) or is
		// one of the CMOS-exclusive opcodes executeCMOSOnly intercepts
		// before this switch runs on a CMOS Engine.
		panic("sixfive: dispatched opcode with no handler in executeCommon")
	}
	return 0
}

// boolPenalty converts a page-crossing flag into the one-cycle penalty it
// costs on every addressing mode that charges for it.
func boolPenalty(crossed bool) int {
	if crossed {
		return 1
	}
	return 0
}
