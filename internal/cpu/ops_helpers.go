package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

// readAcc reads an accumulator-width (M-flag-gated) operand: either an
// immediate value fetched from the instruction stream, the accumulator
// itself, or a memory location at operand.Addr using absolute wrap (data
// accesses, unlike direct-page pointer dereferences, cross bank boundaries
// rather than wrapping).
func readAcc(c *CPU, mem *memory.Memory, mode Mode, operand Operand) uint16 {
	switch mode {
	case ModeImmediateM:
		if c.AccIs8Bit() {
			return uint16(c.fetchByte(mem))
		}
		return c.fetchWord(mem)
	case ModeAccumulator:
		if c.AccIs8Bit() {
			return uint16(c.A())
		}
		return c.C
	default:
		if c.AccIs8Bit() {
			return uint16(mem.GetByte(operand.Addr, c.AccessFlags))
		}
		return mem.GetWord(operand.Addr, c.AccessFlags)
	}
}

// writeAcc is the write counterpart of readAcc. Accumulator mode writes go
// to C directly (masked to the low byte when 8-bit), never to memory.
func writeAcc(c *CPU, mem *memory.Memory, mode Mode, operand Operand, v uint16) {
	switch mode {
	case ModeAccumulator:
		if c.AccIs8Bit() {
			c.SetA(uint8(v))
		} else {
			c.C = v
		}
	default:
		if c.AccIs8Bit() {
			mem.SetByte(operand.Addr, uint8(v), c.AccessFlags)
		} else {
			mem.SetWord(operand.Addr, v, c.AccessFlags)
		}
	}
}

// setNZAcc sets N/Z from an accumulator-width result.
func (c *CPU) setNZAcc(v uint16) {
	if c.AccIs8Bit() {
		c.setNZ8(uint8(v))
	} else {
		c.setNZ16(v)
	}
}

// readIndex reads an index-width (X-flag-gated) operand: immediate or
// memory, never a register (LDX/LDY/CPX/CPY only).
func readIndex(c *CPU, mem *memory.Memory, mode Mode, operand Operand) uint16 {
	if mode == ModeImmediateX {
		if c.IndexIs8Bit() {
			return uint16(c.fetchByte(mem))
		}
		return c.fetchWord(mem)
	}
	if c.IndexIs8Bit() {
		return uint16(mem.GetByte(operand.Addr, c.AccessFlags))
	}
	return mem.GetWord(operand.Addr, c.AccessFlags)
}

// setNZIndex sets N/Z from an index-width result.
func (c *CPU) setNZIndex(v uint16) {
	if c.IndexIs8Bit() {
		c.setNZ8(uint8(v))
	} else {
		c.setNZ16(v)
	}
}

// maskIndex truncates v to 8 bits when the index registers are 8-bit wide.
func (c *CPU) maskIndex(v uint16) uint16 {
	if c.IndexIs8Bit() {
		return v & 0xFF
	}
	return v
}

// handlerFunc implements one Op's semantics, returning any additional
// cycles beyond the opcode's table base (e.g. for a page boundary crossed
// by an indexed read).
type handlerFunc func(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int

var opHandlers [int(OpXCE) + 1]handlerFunc

func registerOp(o Op, f handlerFunc) {
	opHandlers[o] = f
}
