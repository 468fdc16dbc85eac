package cpu

// fetchByte reads the byte at PC and advances PC by one. Every addressing
// mode and the opcode fetch itself go through this, so PC bookkeeping lives
// in exactly one place.
func (e *Engine) fetchByte() byte {
	v := e.bus.Read(e.PC)
	e.PC++
	return v
}

func (e *Engine) fetchWord() uint16 {
	lo := uint16(e.fetchByte())
	hi := uint16(e.fetchByte())
	return lo | hi<<8
}

// readWord reads a little-endian 16-bit value at addr without touching PC.
func (e *Engine) readWord(addr uint16) uint16 {
	lo := uint16(e.bus.Read(addr))
	hi := uint16(e.bus.Read(addr + 1))
	return lo | hi<<8
}

// readZPWord reads a little-endian pointer stored in zero page, wrapping
// the pointer address (not the value it points at) modulo 256. This is the
// wraparound spec.md's boundary scenario 1 exercises: a pointer at $FF
// reads its high byte from $00, never $100.
func (e *Engine) readZPWord(zp byte) uint16 {
	lo := uint16(e.bus.Read(uint16(zp)))
	hi := uint16(e.bus.Read(uint16(zp + 1)))
	return lo | hi<<8
}

func crossesPage(base, addr uint16) bool {
	return base&0xFF00 != addr&0xFF00
}

// -- absolute ---------------------------------------------------------

func (e *Engine) addrAbsolute() uint16 {
	return e.fetchWord()
}

func (e *Engine) addrAbsoluteX() (addr uint16, crossed bool) {
	base := e.fetchWord()
	addr = base + uint16(e.X)
	return addr, crossesPage(base, addr)
}

func (e *Engine) addrAbsoluteY() (addr uint16, crossed bool) {
	base := e.fetchWord()
	addr = base + uint16(e.Y)
	return addr, crossesPage(base, addr)
}

// -- zero page ----------------------------------------------------------

func (e *Engine) addrZeroPage() uint16 {
	return uint16(e.fetchByte())
}

func (e *Engine) addrZeroPageX() uint16 {
	return uint16((e.fetchByte() + e.X) & 0xFF)
}

func (e *Engine) addrZeroPageY() uint16 {
	return uint16((e.fetchByte() + e.Y) & 0xFF)
}

// -- indirect -------------------------------------------------------------

// addrIndirectX resolves (zp,X): the zero-page pointer address wraps, then
// the two bytes stored there are read verbatim (no further wrap — they are
// already a full 16-bit address).
func (e *Engine) addrIndirectX() uint16 {
	ptr := (e.fetchByte() + e.X) & 0xFF
	return e.readZPWord(ptr)
}

// addrIndirectY resolves (zp),Y: the zero-page pointer is read first (its
// own address does not get indexed), then Y is added to the resulting
// 16-bit address.
func (e *Engine) addrIndirectY() (addr uint16, crossed bool) {
	ptr := e.fetchByte()
	base := e.readZPWord(ptr)
	addr = base + uint16(e.Y)
	return addr, crossesPage(base, addr)
}

// addrIndirectZP resolves the 65C02-only (zp) mode: no index at all.
func (e *Engine) addrIndirectZP() uint16 {
	ptr := e.fetchByte()
	return e.readZPWord(ptr)
}

// addrIndirect resolves JMP's absolute-indirect operand. On NMOS this
// carries the famous page-wrap bug: if the pointer's low byte is $FF, the
// high byte is fetched from the start of the *same* page instead of the
// next one. CMOS fixes it.
func (e *Engine) addrIndirect() uint16 {
	ptr := e.fetchWord()
	if e.variant == NMOS && ptr&0xFF == 0xFF {
		lo := uint16(e.bus.Read(ptr))
		hi := uint16(e.bus.Read(ptr & 0xFF00))
		return lo | hi<<8
	}
	return e.readWord(ptr)
}

// addrIndirectAbsX resolves the 65C02-only JMP (abs,X) operand.
func (e *Engine) addrIndirectAbsX() uint16 {
	ptr := e.fetchWord() + uint16(e.X)
	return e.readWord(ptr)
}

// -- stack ----------------------------------------------------------------

func (e *Engine) push(v byte) {
	e.stage(0x0100|uint16(e.S), v)
	e.S--
}

func (e *Engine) push16(v uint16) {
	e.push(byte(v >> 8))
	e.push(byte(v))
}

// pull reads directly off the bus (not through the write-staging list —
// there is nothing to stage on a read) after advancing S.
func (e *Engine) pull() byte {
	e.S++
	return e.bus.Read(0x0100 | uint16(e.S))
}

func (e *Engine) pull16() uint16 {
	lo := uint16(e.pull())
	hi := uint16(e.pull())
	return lo | hi<<8
}
