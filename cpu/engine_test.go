package cpu

import "testing"

func TestResetState(t *testing.T) {
	// Reset() itself (run once by New) sets S/P/registers immediately; PC
	// is only loaded from the vector once Cycle actually services the
	// latched reset request (spec.md §5's "resolve pending exception" step).
	e, _, _ := newTestRig(t, CMOS, 0x0600)
	if e.S != 0xFD {
		t.Errorf("S after reset = %#02x, want 0xFD", e.S)
	}
	if !e.getFlag(flagI) {
		t.Errorf("I flag not set after reset")
	}
	if e.P&flagU == 0 {
		t.Errorf("U flag not set after reset")
	}
}

func TestResetVectorLoadsOnFirstCycle(t *testing.T) {
	e, bus, _ := newTestRig(t, CMOS, 0x0600, 0xEA)
	bus.writeWord(vectorReset, 0x0600)
	step(t, e)
	if e.PC != 0x0601 {
		t.Errorf("PC = %#04x, want 0x0601 (reset loads PC=0x0600, then the NOP there is fetched in the same Cycle)", e.PC)
	}
}

func TestUnknownOpcodeReturnsError(t *testing.T) {
	// $02 is an NMOS undocumented opcode (KIL/JAM) this engine does not
	// model, on both variants.
	e, _, _ := newTestRig(t, NMOS, 0x0600, 0x02)
	err := e.Cycle()
	if err == nil {
		t.Fatalf("expected an error dispatching $02, got nil")
	}
	uoe, ok := err.(*UnknownOpcodeError)
	if !ok {
		t.Fatalf("error type = %T, want *UnknownOpcodeError", err)
	}
	if uoe.Opcode != 0x02 || uoe.PC != 0x0600 {
		t.Errorf("UnknownOpcodeError = %+v, want Opcode=0x02 PC=0x0600", uoe)
	}
}

func TestLoadImmediateSetsFlags(t *testing.T) {
	e, _, clock := newTestRig(t, CMOS, 0x0600, 0xA9, 0x00) // LDA #$00
	step(t, e)
	if e.A != 0 {
		t.Errorf("A = %#02x, want 0", e.A)
	}
	if !e.getFlag(flagZ) {
		t.Errorf("Z flag not set after LDA #$00")
	}
	if clock.total != 2 {
		t.Errorf("cycles = %d, want 2", clock.total)
	}
}

func TestStaStagesAndDrainsOneWrite(t *testing.T) {
	e, bus, clock := newTestRig(t, CMOS, 0x0600, 0x85, 0x10) // STA $10
	e.A = 0x42
	step(t, e)
	if bus.Read(0x10) != 0x42 {
		t.Errorf("mem[$10] = %#02x, want 0x42", bus.Read(0x10))
	}
	if len(e.pending) != 0 {
		t.Errorf("pending writes not drained: %v", e.pending)
	}
	if clock.total != 3 {
		t.Errorf("cycles = %d, want 3", clock.total)
	}
}

func TestReadModifyWriteStagesTwoWrites(t *testing.T) {
	// INC $10 performs a spurious write-back of the original value, then
	// the real incremented write — both staged, both charged a cycle.
	e, bus, clock := newTestRig(t, CMOS, 0x0600, 0xE6, 0x10) // INC $10
	bus.Write(0x10, 0x41)
	step(t, e)
	if bus.Read(0x10) != 0x42 {
		t.Errorf("mem[$10] = %#02x, want 0x42", bus.Read(0x10))
	}
	if clock.total != 5 {
		t.Errorf("cycles = %d, want 5 (base 5, no addressing penalty)", clock.total)
	}
}

func TestJsrRtsRoundTrips(t *testing.T) {
	e, bus, _ := newTestRig(t, CMOS, 0x0600, 0x20, 0x00, 0x07) // JSR $0700
	bus.load(0x0700, 0x60)                                    // RTS
	step(t, e)
	if e.PC != 0x0700 {
		t.Fatalf("PC after JSR = %#04x, want 0x0700", e.PC)
	}
	step(t, e)
	if e.PC != 0x0603 {
		t.Errorf("PC after RTS = %#04x, want 0x0603", e.PC)
	}
}

func TestBraIsCmosOnly(t *testing.T) {
	e, _, clock := newTestRig(t, CMOS, 0x0600, 0x80, 0x05) // BRA +5
	step(t, e)
	if e.PC != 0x0607 {
		t.Errorf("PC after BRA = %#04x, want 0x0607", e.PC)
	}
	if clock.total != 3 {
		t.Errorf("cycles = %d, want 3", clock.total)
	}

	// The same byte is an undocumented NMOS opcode this engine doesn't
	// model.
	e2, _, _ := newTestRig(t, NMOS, 0x0600, 0x80, 0x05)
	if err := e2.Cycle(); err == nil {
		t.Errorf("expected $80 to be unknown on NMOS")
	}
}

func TestPhpPushesBSet(t *testing.T) {
	e, bus, _ := newTestRig(t, CMOS, 0x0600, 0x08) // PHP
	e.P = flagC
	step(t, e)
	pushed := bus.Read(0x0100 | uint16(e.S+1))
	if pushed&flagB == 0 || pushed&flagU == 0 {
		t.Errorf("pushed P = %#02x, want B and U both set", pushed)
	}
}

// PLP must force B2=B=1 on whatever byte it pulls, per spec.md §4.5/§8 —
// even a pulled byte with both bits clear comes back with them set.
func TestPlpForcesB2AndB(t *testing.T) {
	e, bus, _ := newTestRig(t, CMOS, 0x0600, 0xEA, 0x28) // NOP ; PLP
	step(t, e)                                           // services the pending RESET (which sets S=$FD), then the NOP
	e.S = 0xFC
	bus.Write(0x01FD, flagC) // pulled byte has B and U clear
	step(t, e)
	if e.P&flagB == 0 {
		t.Errorf("P = %#02x, B not forced set by PLP", e.P)
	}
	if e.P&flagU == 0 {
		t.Errorf("P = %#02x, U not forced set by PLP", e.P)
	}
}

// RTI must re-force B2=B=1 on the pulled status too: a hardware NMI/IRQ
// frame is pushed with B clear, but that clear bit must never survive into
// the live P once it's pulled back by RTI.
func TestRtiForcesBOnRestoredP(t *testing.T) {
	e, bus, _ := newTestRig(t, CMOS, 0x0600, 0xEA) // NOP
	step(t, e)
	e.NMI()
	step(t, e)            // pushes a B=0 hardware frame, vectors to the NMI handler and runs the NOP there
	bus.Write(e.PC, 0x40) // RTI right after that NOP
	step(t, e)
	if e.P&flagB == 0 {
		t.Errorf("P = %#02x after RTI, B not re-forced to 1", e.P)
	}
	if e.P&flagU == 0 {
		t.Errorf("P = %#02x after RTI, U not re-forced to 1", e.P)
	}
}

func TestAslAbsXCmosPageCrossPenalty(t *testing.T) {
	e, bus, clock := newTestRig(t, CMOS, 0x0600, 0x1E, 0xF0, 0x12) // ASL $12F0,X
	bus.Write(0x1310, 0x01)
	e.X = 0x20 // $12F0 + $20 = $1310, crosses page
	step(t, e)
	if clock.total != 8 {
		t.Errorf("cycles = %d, want 8 (7 base + 1 CMOS page-cross)", clock.total)
	}

	e2, bus2, clock2 := newTestRig(t, CMOS, 0x0600, 0x1E, 0x00, 0x12) // ASL $1200,X
	bus2.Write(0x1220, 0x01)
	e2.X = 0x20 // no crossing
	step(t, e2)
	if clock2.total != 7 {
		t.Errorf("cycles = %d, want 7 (no page-cross)", clock2.total)
	}
}

func TestLsrAbsXCmosPageCrossPenalty(t *testing.T) {
	e, bus, clock := newTestRig(t, CMOS, 0x0600, 0x5E, 0xF0, 0x12) // LSR $12F0,X
	bus.Write(0x1310, 0x02)
	e.X = 0x20 // crosses page
	step(t, e)
	if clock.total != 8 {
		t.Errorf("cycles = %d, want 8 (7 base + 1 CMOS page-cross)", clock.total)
	}
}

func TestIncAWrapsToNegativeOnCmos(t *testing.T) {
	e, _, _ := newTestRig(t, CMOS, 0x0600, 0x1A) // INC A
	e.A = 0x7F
	step(t, e)
	if e.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", e.A)
	}
	if !e.getFlag(flagN) {
		t.Errorf("N flag not set after INC A wrapping to 0x80")
	}
}
