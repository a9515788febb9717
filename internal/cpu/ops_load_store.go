package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpLDA, opLDA)
	registerOp(OpLDX, opLDX)
	registerOp(OpLDY, opLDY)
	registerOp(OpSTA, opSTA)
	registerOp(OpSTX, opSTX)
	registerOp(OpSTY, opSTY)
	registerOp(OpSTZ, opSTZ)
}

func opLDA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	c.C = mergeWidth(c.C, v, c.AccIs8Bit())
	c.setNZAcc(v)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opLDX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readIndex(c, mem, mode, operand)
	c.X = mergeWidth(c.X, v, c.IndexIs8Bit())
	c.setNZIndex(v)
	return pageCrossExtra(mode, operand, c.IndexIs8Bit())
}

func opLDY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readIndex(c, mem, mode, operand)
	c.Y = mergeWidth(c.Y, v, c.IndexIs8Bit())
	c.setNZIndex(v)
	return pageCrossExtra(mode, operand, c.IndexIs8Bit())
}

func opSTA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	writeAcc(c, mem, mode, operand, c.C)
	return 0
}

func opSTX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		mem.SetByte(operand.Addr, uint8(c.X), c.AccessFlags)
	} else {
		mem.SetWord(operand.Addr, c.X, c.AccessFlags)
	}
	return 0
}

func opSTY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		mem.SetByte(operand.Addr, uint8(c.Y), c.AccessFlags)
	} else {
		mem.SetWord(operand.Addr, c.Y, c.AccessFlags)
	}
	return 0
}

func opSTZ(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.AccIs8Bit() {
		mem.SetByte(operand.Addr, 0, c.AccessFlags)
	} else {
		mem.SetWord(operand.Addr, 0, c.AccessFlags)
	}
	return 0
}

// mergeWidth folds a narrower result back into a wider register: in 8-bit
// mode only the low byte changes, the high byte (the hidden B half of the
// accumulator, or the discarded top of X/Y) is preserved.
func mergeWidth(reg uint16, v uint16, is8 bool) uint16 {
	if is8 {
		return (reg & 0xFF00) | (v & 0xFF)
	}
	return v
}

// pageCrossExtra returns 1 when an indexed addressing mode reports a page
// boundary crossing on a read. The operand width (is8) does not change the
// result.
func pageCrossExtra(mode Mode, operand Operand, is8 bool) int {
	if !operand.PageCrossed {
		return 0
	}
	switch mode {
	case ModeAbsoluteX, ModeAbsoluteY, ModeDirectIndirectY, ModeDirectIndirectLongY:
		return 1
	default:
		return 0
	}
}
