package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpAND, opAND)
	registerOp(OpORA, opORA)
	registerOp(OpEOR, opEOR)
	registerOp(OpBIT, opBIT)
	registerOp(OpASL, opASL)
	registerOp(OpLSR, opLSR)
	registerOp(OpROL, opROL)
	registerOp(OpROR, opROR)
	registerOp(OpTRB, opTRB)
	registerOp(OpTSB, opTSB)
}

func opAND(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	res := c.C & val
	c.C = mergeWidth(c.C, res, c.AccIs8Bit())
	c.setNZAcc(res)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opORA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	res := c.C | val
	c.C = mergeWidth(c.C, res, c.AccIs8Bit())
	c.setNZAcc(res)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opEOR(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	res := c.C ^ val
	c.C = mergeWidth(c.C, res, c.AccIs8Bit())
	c.setNZAcc(res)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opBIT(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		res := c.A() & uint8(val)
		c.SetFlag(FlagZ, res == 0)
		if mode != ModeImmediateM {
			c.SetFlag(FlagN, val&0x80 != 0)
			c.SetFlag(FlagV, val&0x40 != 0)
		}
		return pageCrossExtra(mode, operand, true)
	}
	res := c.C & val
	c.SetFlag(FlagZ, res == 0)
	if mode != ModeImmediateM {
		c.SetFlag(FlagN, val&0x8000 != 0)
		c.SetFlag(FlagV, val&0x4000 != 0)
	}
	return pageCrossExtra(mode, operand, false)
}

func opASL(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		c.SetFlag(FlagC, v&0x80 != 0)
		v = uint16(uint8(v << 1))
	} else {
		c.SetFlag(FlagC, v&0x8000 != 0)
		v <<= 1
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opLSR(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	c.SetFlag(FlagC, v&0x01 != 0)
	if c.AccIs8Bit() {
		v = uint16(uint8(v) >> 1)
	} else {
		v >>= 1
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opROL(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}
	if c.AccIs8Bit() {
		c.SetFlag(FlagC, v&0x80 != 0)
		v = uint16(uint8(v<<1) | uint8(carryIn))
	} else {
		c.SetFlag(FlagC, v&0x8000 != 0)
		v = (v << 1) | carryIn
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opROR(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}
	if c.AccIs8Bit() {
		c.SetFlag(FlagC, v&0x01 != 0)
		v = (uint16(uint8(v) >> 1)) | (carryIn << 7)
	} else {
		c.SetFlag(FlagC, v&0x0001 != 0)
		v = (v >> 1) | (carryIn << 15)
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opTRB(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		c.SetFlag(FlagZ, uint8(v)&c.A() == 0)
		v = uint16(uint8(v) &^ c.A())
	} else {
		c.SetFlag(FlagZ, v&c.C == 0)
		v &^= c.C
	}
	writeAcc(c, mem, mode, operand, v)
	return 0
}

func opTSB(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		c.SetFlag(FlagZ, uint8(v)&c.A() == 0)
		v = uint16(uint8(v) | c.A())
	} else {
		c.SetFlag(FlagZ, v&c.C == 0)
		v |= c.C
	}
	writeAcc(c, mem, mode, operand, v)
	return 0
}
