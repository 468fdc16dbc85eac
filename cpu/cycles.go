package cpu

// Base-cycle tables, one per Variant, indexed by opcode byte. A zero entry
// means the opcode has no defined meaning for that variant — this engine
// does not model NMOS undocumented opcodes, so every NMOS illegal slot is
// left at zero and Cycle reports it as an *UnknownOpcodeError. Kept as
// plain data, separate from the dispatch switches in dispatch_common.go /
// dispatch_cmos.go, per spec.md §4.6 and §9 ("the cycle table remains a
// separate data structure indexed by the same byte").
var cycleTableNMOS [256]byte
var cycleTableCMOS [256]byte

func init() {
	for op, c := range nmosCycles {
		cycleTableNMOS[op] = c
	}
	cycleTableCMOS = cycleTableNMOS
	for op, c := range cmosCycles {
		cycleTableCMOS[op] = c
	}
}

func cycleTable(v Variant) *[256]byte {
	if v == CMOS {
		return &cycleTableCMOS
	}
	return &cycleTableNMOS
}

// nmosCycles lists every documented 6502 opcode's base cycle cost. Page
// crossing and branch-taken penalties are added on top by the individual
// handlers (ops.go's branch, addressing.go's crossesPage-returning modes),
// not baked into this table.
var nmosCycles = map[byte]byte{
	0x00: 7, 0x01: 6, 0x05: 3, 0x06: 5, 0x08: 3, 0x09: 2, 0x0A: 2, 0x0D: 4, 0x0E: 6,
	0x10: 2, 0x11: 5, 0x15: 4, 0x16: 6, 0x18: 2, 0x19: 4, 0x1D: 4, 0x1E: 7,
	0x20: 6, 0x21: 6, 0x24: 3, 0x25: 3, 0x26: 5, 0x28: 4, 0x29: 2, 0x2A: 2, 0x2C: 4, 0x2D: 4, 0x2E: 6,
	0x30: 2, 0x31: 5, 0x35: 4, 0x36: 6, 0x38: 2, 0x39: 4, 0x3D: 4, 0x3E: 7,
	0x40: 6, 0x41: 6, 0x45: 3, 0x46: 5, 0x48: 3, 0x49: 2, 0x4A: 2, 0x4C: 3, 0x4D: 4, 0x4E: 6,
	0x50: 2, 0x51: 5, 0x55: 4, 0x56: 6, 0x58: 2, 0x59: 4, 0x5D: 4, 0x5E: 7,
	0x60: 6, 0x61: 6, 0x65: 3, 0x66: 5, 0x68: 4, 0x69: 2, 0x6A: 2, 0x6C: 5, 0x6D: 4, 0x6E: 6,
	0x70: 2, 0x71: 5, 0x75: 4, 0x76: 6, 0x78: 2, 0x79: 4, 0x7D: 4, 0x7E: 7,
	0x81: 6, 0x84: 3, 0x85: 3, 0x86: 3, 0x88: 2, 0x8A: 2, 0x8C: 4, 0x8D: 4, 0x8E: 4,
	0x90: 2, 0x91: 6, 0x94: 4, 0x95: 4, 0x96: 4, 0x98: 2, 0x99: 5, 0x9A: 2, 0x9D: 5,
	0xA0: 2, 0xA1: 6, 0xA2: 2, 0xA4: 3, 0xA5: 3, 0xA6: 3, 0xA8: 2, 0xA9: 2, 0xAA: 2, 0xAC: 4, 0xAD: 4, 0xAE: 4,
	0xB0: 2, 0xB1: 5, 0xB4: 4, 0xB5: 4, 0xB6: 4, 0xB8: 2, 0xB9: 4, 0xBA: 2, 0xBC: 4, 0xBD: 4, 0xBE: 4,
	0xC0: 2, 0xC1: 6, 0xC4: 3, 0xC5: 3, 0xC6: 5, 0xC8: 2, 0xC9: 2, 0xCA: 2, 0xCC: 4, 0xCD: 4, 0xCE: 6,
	0xD0: 2, 0xD1: 5, 0xD5: 4, 0xD6: 6, 0xD8: 2, 0xD9: 4, 0xDD: 4, 0xDE: 7,
	0xE0: 2, 0xE1: 6, 0xE4: 3, 0xE5: 3, 0xE6: 5, 0xE8: 2, 0xE9: 2, 0xEA: 2, 0xEC: 4, 0xED: 4, 0xEE: 6,
	0xF0: 2, 0xF1: 5, 0xF5: 4, 0xF6: 6, 0xF8: 2, 0xF9: 4, 0xFD: 4, 0xFE: 7,
}

// cmosCycles patches the 65C02's additions, redefinitions, and timing
// fixes on top of nmosCycles. Every key here either reuses an NMOS
// undocumented single-byte-NOP slot for a real instruction (0x1A, 0x3A,
// 0x5A, 0x7A, 0xDA, 0xFA), adds an opcode NMOS left entirely undefined, or
// (0x6C, JMP (abs)) changes the timing of a documented NMOS opcode.
var cmosCycles = map[byte]byte{
	0x04: 5, 0x0C: 6, 0x12: 5, 0x14: 5, 0x1A: 2, 0x1C: 6,
	0x32: 5, 0x34: 4, 0x3A: 2, 0x3C: 4,
	0x52: 5, 0x5A: 3,
	0x64: 3, 0x6C: 6, 0x72: 5, 0x74: 4, 0x7A: 4, 0x7C: 6,
	0x80: 3, 0x89: 2, 0x92: 5, 0x9C: 4, 0x9E: 5,
	0xB2: 5, 0xD2: 5, 0xDA: 3,
	0xF2: 5, 0xFA: 4,
	// RMB0-7 / SMB0-7: set/reset zero-page bit n.
	0x07: 5, 0x17: 5, 0x27: 5, 0x37: 5, 0x47: 5, 0x57: 5, 0x67: 5, 0x77: 5,
	0x87: 5, 0x97: 5, 0xA7: 5, 0xB7: 5, 0xC7: 5, 0xD7: 5, 0xE7: 5, 0xF7: 5,
	// BBR0-7 / BBS0-7: branch on zero-page bit n.
	0x0F: 5, 0x1F: 5, 0x2F: 5, 0x3F: 5, 0x4F: 5, 0x5F: 5, 0x6F: 5, 0x7F: 5,
	0x8F: 5, 0x9F: 5, 0xAF: 5, 0xBF: 5, 0xCF: 5, 0xDF: 5, 0xEF: 5, 0xFF: 5,
}
