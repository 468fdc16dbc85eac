package cpu

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// RegisterInfo names one register for display/inspection, grounded in the
// teacher's Debug6502.GetRegisters shape but trimmed to what a pure CPU
// core exposes: no breakpoint/freeze machinery, which belongs to an
// embedder's own debugger, not this engine.
type RegisterInfo struct {
	Name  string
	Value uint64
	Bits  int
}

// GetRegisters returns every register this Engine exposes for inspection.
func (e *Engine) GetRegisters() []RegisterInfo {
	return []RegisterInfo{
		{Name: "A", Value: uint64(e.A), Bits: 8},
		{Name: "X", Value: uint64(e.X), Bits: 8},
		{Name: "Y", Value: uint64(e.Y), Bits: 8},
		{Name: "S", Value: uint64(e.S), Bits: 8},
		{Name: "P", Value: uint64(e.P), Bits: 8},
		{Name: "PC", Value: uint64(e.PC), Bits: 16},
	}
}

// GetRegister fetches one register by name, case-insensitively.
func (e *Engine) GetRegister(name string) (uint64, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return uint64(e.A), true
	case "X":
		return uint64(e.X), true
	case "Y":
		return uint64(e.Y), true
	case "S", "SP":
		return uint64(e.S), true
	case "P", "SR":
		return uint64(e.P), true
	case "PC":
		return uint64(e.PC), true
	}
	return 0, false
}

// SetRegister pokes one register by name. P is routed through setP so the
// always-1 U bit invariant can't be bypassed via the debug path.
func (e *Engine) SetRegister(name string, value uint64) bool {
	switch strings.ToUpper(name) {
	case "A":
		e.A = byte(value)
	case "X":
		e.X = byte(value)
	case "Y":
		e.Y = byte(value)
	case "S", "SP":
		e.S = byte(value)
	case "P", "SR":
		e.setP(byte(value))
	case "PC":
		e.PC = uint16(value)
	default:
		return false
	}
	return true
}

// FormatRegisters renders a one-line, colorized register dump: the flag
// letters are upper-case and green when set, lower-case and faint when
// clear, matching the pass/fail coloring convention this core borrows
// from the retrieval pack's NES test-ROM runner.
func (e *Engine) FormatRegisters() string {
	flagChar := func(set bool, letter byte) string {
		if set {
			return color.GreenString(string(letter))
		}
		return color.New(color.Faint).Sprint(strings.ToLower(string(letter)))
	}
	flags := flagChar(e.getFlag(flagN), 'N') +
		flagChar(e.getFlag(flagV), 'V') +
		flagChar(true, 'U') +
		flagChar(e.getFlag(flagB), 'B') +
		flagChar(e.getFlag(flagD), 'D') +
		flagChar(e.getFlag(flagI), 'I') +
		flagChar(e.getFlag(flagZ), 'Z') +
		flagChar(e.getFlag(flagC), 'C')
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X S=%02X P=%02X[%s]",
		e.PC, e.A, e.X, e.Y, e.S, e.P, flags)
}
