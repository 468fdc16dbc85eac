package cpu

import "testing"

// ramBus is a flat 64KB Bus backing every test in this package — adapted
// from the teacher's MachineBus test rig, trimmed of any bank-window/MMIO
// concerns that have no place in a pure instruction-level core's tests.
type ramBus struct {
	mem [1 << 16]byte
}

func (b *ramBus) Read(addr uint16) byte     { return b.mem[addr] }
func (b *ramBus) Write(addr uint16, v byte) { b.mem[addr] = v }

func (b *ramBus) load(addr uint16, data ...byte) {
	for i, v := range data {
		b.mem[int(addr)+i] = v
	}
}

func (b *ramBus) writeWord(addr uint16, v uint16) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
}

// countingClock accumulates every cycle Cycle charges it, so tests can
// assert exact instruction timing.
type countingClock struct{ total int }

func (c *countingClock) AddCPUCycles(n int) { c.total += n }

// newTestRig builds an Engine over a fresh ramBus/countingClock pair,
// sets the reset vector to entry, and runs the engine's own Reset so S and
// P start from their documented power-on values and the first Cycle loads
// PC from the reset vector before executing the opcode at entry — the teacher's
// rig.resetAndLoad/setVectors split, collapsed into one call since
// Cycle() is synchronous here rather than running on its own goroutine.
func newTestRig(t *testing.T, variant Variant, entry uint16, program ...byte) (*Engine, *ramBus, *countingClock) {
	t.Helper()
	bus := &ramBus{}
	bus.load(entry, program...)
	bus.writeWord(vectorReset, entry)
	bus.writeWord(vectorNMI, entry)
	bus.writeWord(vectorIRQ, entry)

	clock := &countingClock{}
	engine := New(variant, bus, clock)
	return engine, bus, clock
}

// step runs exactly one Cycle call and fails the test on error.
func step(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Cycle(); err != nil {
		t.Fatalf("Cycle: %v", err)
	}
}
