package cpu

// pendingWrite is one bus write an instruction has decided to make but not
// yet performed. Writes are staged during decode/execute and flushed to the
// bus at the end of Cycle, in the order they were staged, so a handler's
// control flow never has to interleave "do the ALU work" with "touch the
// bus" — it just calls stage and moves on.
type pendingWrite struct {
	addr  uint16
	value byte
}

// stage queues a bus write to be performed when the current instruction's
// cycle accounting is drained. Read-modify-write opcodes call this twice
// (once for the 6502's real spurious write-back of the unmodified operand,
// once for the modified result); JSR's return-address push stages two
// writes and an interrupt frame three; every other storing opcode stages one.
func (e *Engine) stage(addr uint16, value byte) {
	e.pending = append(e.pending, pendingWrite{addr: addr, value: value})
}

// drainWrites charges one cycle per staged write and performs it against
// the bus, in FIFO order, then clears the staging slice for the next
// instruction. Cycle has already charged base+penalty-len(pending) before
// calling this, so the per-write charge here brings the instruction's
// total to exactly base+penalty.
func (e *Engine) drainWrites() {
	for _, w := range e.pending {
		e.clock.AddCPUCycles(1)
		e.bus.Write(w.addr, w.value)
	}
	e.pending = e.pending[:0]
}
