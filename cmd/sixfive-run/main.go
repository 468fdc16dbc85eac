// Command sixfive-run loads a raw binary image into a flat 64KB memory bus
// and drives a sixfive Engine against it — the minimal caller a reusable
// CPU core needs to prove its Bus/ClockSink seams actually work.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sixfive/sixfive/cpu"
)

const memSize = 1 << 16

// flatBus is the simplest possible cpu.Bus: 64KB of RAM, no memory map, no
// side effects on any address. Grounded in the teacher's MachineBus, with
// every bank-window/MMIO concern stripped out — this spec has no PPU/APU
// to map, just a CPU core to drive.
type flatBus struct {
	mem [memSize]byte
}

func (b *flatBus) Read(addr uint16) byte       { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v byte)   { b.mem[addr] = v }
func (b *flatBus) load(addr uint16, data []byte) {
	copy(b.mem[int(addr):], data)
}
func (b *flatBus) writeWord(addr uint16, v uint16) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
}

// cycleCounter is the simplest possible cpu.ClockSink.
type cycleCounter struct{ total uint64 }

func (c *cycleCounter) AddCPUCycles(n int) { c.total += uint64(n) }

func main() {
	var (
		path    = flag.String("load", "", "path to a raw binary image to load")
		loadHex = flag.String("addr", "0600", "load address, hex, no 0x prefix")
		entry   string
		variant = flag.String("variant", "cmos", "cpu variant: nmos or cmos")
		steps   = flag.Int("steps", 0, "stop after N instructions (0 = run until an error)")
		step    = flag.Bool("step", false, "interactive single-step: press any key to execute one instruction")
	)
	flag.StringVar(&entry, "entry", "", "entry address, hex (defaults to -addr)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "sixfive-run: -load is required")
		os.Exit(2)
	}

	loadAddr := parseHex16(*loadHex)
	entryAddr := loadAddr
	if entry != "" {
		entryAddr = parseHex16(entry)
	}

	program, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("sixfive-run: %v", err))
		os.Exit(1)
	}

	bus := &flatBus{}
	bus.load(loadAddr, program)
	bus.writeWord(0xFFFC, entryAddr) // RESET
	bus.writeWord(0xFFFA, entryAddr) // NMI
	bus.writeWord(0xFFFE, entryAddr) // IRQ/BRK

	v := cpu.NMOS
	if *variant == "cmos" {
		v = cpu.CMOS
	}

	clock := &cycleCounter{}
	engine := cpu.New(v, bus, clock)
	engine.SetPC(entryAddr)

	if *step {
		runInteractive(engine, clock)
		return
	}
	runToCompletion(engine, clock, *steps)
}

func runToCompletion(engine *cpu.Engine, clock *cycleCounter, maxSteps int) {
	for n := 0; maxSteps == 0 || n < maxSteps; n++ {
		if err := engine.Cycle(); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("FAIL: %v", err))
			fmt.Println(engine.FormatRegisters())
			os.Exit(1)
		}
	}
	fmt.Println(color.GreenString("OK") + fmt.Sprintf(" — %d cycles", clock.total))
	fmt.Println(engine.FormatRegisters())
}

// runInteractive single-steps the engine, reading one raw keypress at a
// time from stdin rather than requiring Enter, grounded in the teacher's
// TerminalHost (term.MakeRaw/term.Restore pairing).
func runInteractive(engine *cpu.Engine, clock *cycleCounter) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sixfive-run: stdin is not a terminal, falling back to -step=false")
		runToCompletion(engine, clock, 0)
		return
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	for {
		fmt.Print("\r\n> ")
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		if buf[0] == 'q' {
			return
		}
		if err := engine.Cycle(); err != nil {
			term.Restore(fd, oldState)
			fmt.Println(color.RedString("FAIL: %v", err))
			fmt.Println(engine.FormatRegisters())
			return
		}
		fmt.Print(engine.FormatRegisters())
	}
}

func parseHex16(s string) uint16 {
	var v uint16
	fmt.Sscanf(s, "%x", &v)
	return v
}
