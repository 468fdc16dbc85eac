package cpu

// enterReset puts the Engine into its power-on/RESET state: S is set to
// $FD (the three stack pushes a real reset pretends to make), PC loads
// from the RESET vector, and the latched reset line is cleared. Nothing
// is pushed to the stack — a real reset doesn't write memory either, it
// just decrements S three times without driving the write-enable line.
func (e *Engine) enterReset() {
	e.S = 0xFD
	e.setFlag(flagI, true)
	if e.variant == CMOS {
		e.setFlag(flagD, false)
	}
	e.PC = e.readWord(vectorReset)
	e.resetLine = false
}

// enterNMI pushes a hardware interrupt frame and vectors to the NMI
// handler. The pushed status has B clear, marking this as a hardware
// frame rather than a software BRK. The return address pushed is PC-1,
// not the unmodified PC — see DESIGN.md for why this engine follows the
// reference it was checked against rather than the more commonly
// described "unmodified PC" behavior.
func (e *Engine) enterNMI() {
	e.pushInterruptFrame(e.PC-1, vectorNMI, flagB, false)
	e.nmiLine = false
}

// enterIRQ pushes a hardware interrupt frame and vectors to the IRQ
// handler, also pushing PC-1. pendingException already checked the I flag
// before selecting this path. Servicing clears the latched request, so an
// embedder still asserting the line calls IRQ again to re-request it.
func (e *Engine) enterIRQ() {
	e.pushInterruptFrame(e.PC-1, vectorIRQ, flagB, false)
	e.irqLine = false
}

// enterBRK services a software BRK instruction. Unlike the hardware
// entries, the return address pushed is PC+1 as it stands after the
// opcode fetch (BRK's signature/padding byte), and the pushed status has
// B set, marking this as a software frame. BRK shares the IRQ vector.
func (e *Engine) enterBRK() {
	e.PC++
	e.pushInterruptFrame(e.PC, vectorIRQ, 0, true)
}

// pushInterruptFrame is the common push/vector sequence every interrupt
// entry point uses: push returnPC high-then-low, push P with U forced to
// 1 and B set according to clearB/forceBRK, set I, clear D on CMOS, then
// load PC from vector. The clearB argument is the bit to force clear in
// the pushed status (flagB for a hardware frame); forceBRK requests flagB
// be set instead, for the software BRK frame.
func (e *Engine) pushInterruptFrame(returnPC uint16, vector uint16, clearB byte, forceBRK bool) {
	e.push16(returnPC)
	status := (e.P | flagU) &^ clearB
	if forceBRK {
		status |= flagB
	}
	e.push(status)
	e.setFlag(flagI, true)
	if e.variant == CMOS {
		e.setFlag(flagD, false)
	}
	e.PC = e.readWord(vector)
}
