package cpu

// Engine is a single instruction-level 6502/65C02 core. It holds exactly
// the state the instruction set itself needs — registers, flags, the
// latched interrupt lines, and the current instruction's staged writes —
// and nothing else: no clock accumulation, no memory of its own, no
// concurrency control. Cycle is synchronous and does exactly one
// instruction's worth of work per call, per spec.md §5.
//
// An Engine is not safe for concurrent use. A caller driving IRQ/NMI from
// a goroutine other than the one calling Cycle must serialize that
// itself.
type Engine struct {
	A, X, Y byte
	S       byte
	P       byte
	PC      uint16

	variant Variant
	bus     Bus
	clock   ClockSink

	resetLine bool
	nmiLine   bool
	irqLine   bool

	pending []pendingWrite
}

// New constructs an Engine for the given variant, wired to bus and clock.
// The Engine starts in its RESET state — callers that want to observe the
// reset vector fetch and the S=$FD/I=1 side effects explicitly may call
// Reset again themselves, but New already performs it once so a freshly
// constructed Engine is immediately runnable.
func New(variant Variant, bus Bus, clock ClockSink) *Engine {
	e := &Engine{variant: variant, bus: bus, clock: clock}
	e.Reset()
	return e
}

// Reset latches a RESET request, serviced on the next Cycle call. Unlike
// IRQ/NMI, RESET takes priority over everything and is serviced
// unconditionally — it cannot be masked.
func (e *Engine) Reset() {
	e.resetLine = true
	e.nmiLine = false
	e.irqLine = false
	e.pending = e.pending[:0]
	// A real 6502 leaves A/X/Y undefined across reset; this engine zeroes
	// them so two Engines constructed identically compare equal before
	// either executes anything.
	e.A, e.X, e.Y = 0, 0, 0
	e.P = flagU | flagB | flagI
	e.S = 0xFD
}

// NMI latches a non-maskable interrupt request, serviced on the next
// Cycle call regardless of the I flag. NMI is edge-triggered on real
// hardware; this engine models it as a one-shot latch that Cycle clears
// as soon as it services it, so calling NMI twice before the pending
// request is serviced has the same effect as calling it once.
func (e *Engine) NMI() {
	e.nmiLine = true
}

// IRQ latches a maskable interrupt request. It remains latched — and is
// re-checked every Cycle call — until the I flag is clear and Cycle
// services it, which clears the latch; this engine does not clear irqLine
// on its own otherwise.
func (e *Engine) IRQ() {
	e.irqLine = true
}

// ClearIRQ deasserts a previously latched IRQ line, for embedders whose
// bus model drives IRQ as a level rather than a one-shot request.
func (e *Engine) ClearIRQ() {
	e.irqLine = false
}

// SetPC is a debug-only hook for test harnesses that need to seed PC
// directly — e.g. a conformance-test binary that starts execution at a
// fixed address rather than through the reset vector — without going
// through a full Reset.
func (e *Engine) SetPC(pc uint16) {
	e.PC = pc
}

// Variant reports which 6502-family part this Engine emulates.
func (e *Engine) Variant() Variant {
	return e.variant
}

// Registers snapshots the current register file, for inspection by a
// debugger or test harness.
func (e *Engine) Registers() (a, x, y, s, p byte, pc uint16) {
	return e.A, e.X, e.Y, e.S, e.P, e.PC
}

// Cycle executes exactly one instruction and returns any error the
// dispatch encountered. The ordering, per spec.md §5, is:
//
//  1. Resolve and, if one is pending, service an exception (RESET, NMI,
//     or IRQ, in that priority order) by pushing its frame and vectoring
//     PC — then fall through to step 2 using the new PC. The frame push
//     itself is not separately charged; only the opcode now at PC is.
//  2. Fetch the opcode byte at PC, advancing PC.
//  3. Dispatch: resolve the addressing mode (which may advance PC further
//     and flag a page crossing) and perform the operation, staging any
//     writes rather than performing them immediately.
//  4. Charge base+penalty-len(pending) cycles to the clock sink.
//  5. Drain staged writes, charging one cycle and performing one bus
//     write per entry, in order.
//
// An opcode with no defined meaning for this Engine's Variant — every
// NMOS undocumented opcode, and any CMOS slot this engine does not model
// — returns an *UnknownOpcodeError instead of dispatching.
func (e *Engine) Cycle() error {
	switch e.pendingException() {
	case exceptionReset:
		e.enterReset()
	case exceptionNMI:
		e.enterNMI()
	case exceptionIRQ:
		e.enterIRQ()
	}

	opPC := e.PC
	op := e.fetchByte()

	base := int(cycleTable(e.variant)[op])
	if base == 0 {
		return &UnknownOpcodeError{Opcode: op, PC: opPC, Variant: e.variant}
	}

	penalty := e.execute(op)
	total := base + penalty

	e.clock.AddCPUCycles(total - len(e.pending))
	e.drainWrites()
	return nil
}

// execute dispatches a single already-fetched opcode byte to its operation
// and returns the cycle penalty (branch-taken, page-crossing) beyond the
// opcode's base cycle-table cost. The cycle table itself is resolved by
// Cycle, independently of this switch, per spec.md §4.6 and §9.
func (e *Engine) execute(op byte) int {
	if e.variant == CMOS {
		if penalty, handled := e.executeCMOSOnly(op); handled {
			return penalty
		}
	}
	return e.executeCommon(op)
}
