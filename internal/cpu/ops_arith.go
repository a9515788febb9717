package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpADC, opADC)
	registerOp(OpSBC, opSBC)
	registerOp(OpCMP, opCMP)
	registerOp(OpCPX, opCPX)
	registerOp(OpCPY, opCPY)
	registerOp(OpINC, opINC)
	registerOp(OpDEC, opDEC)
	registerOp(OpINX, opINX)
	registerOp(OpINY, opINY)
	registerOp(OpDEX, opDEX)
	registerOp(OpDEY, opDEY)
}

func opADC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	c.adc(val)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opSBC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	c.sbc(val)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opCMP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readAcc(c, mem, mode, operand)
	c.compareAcc(c.C, val)
	return pageCrossExtra(mode, operand, c.AccIs8Bit())
}

func opCPX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readIndex(c, mem, mode, operand)
	c.compareIndex(c.X, val)
	return 0
}

func opCPY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	val := readIndex(c, mem, mode, operand)
	c.compareIndex(c.Y, val)
	return 0
}

func opINC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		v = uint16(uint8(v + 1))
	} else {
		v++
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opDEC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	v := readAcc(c, mem, mode, operand)
	if c.AccIs8Bit() {
		v = uint16(uint8(v - 1))
	} else {
		v--
	}
	writeAcc(c, mem, mode, operand, v)
	c.setNZAcc(v)
	return 0
}

func opINX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.X = c.maskIndex(c.X + 1)
	c.setNZIndex(c.X)
	return 0
}

func opINY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.Y = c.maskIndex(c.Y + 1)
	c.setNZIndex(c.Y)
	return 0
}

func opDEX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.X = c.maskIndex(c.X - 1)
	c.setNZIndex(c.X)
	return 0
}

func opDEY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.Y = c.maskIndex(c.Y - 1)
	c.setNZIndex(c.Y)
	return 0
}

// adc implements ADC for the current accumulator width, dispatching to the
// BCD path when the decimal flag is set.
func (c *CPU) adc(val uint16) {
	if c.GetFlag(FlagD) {
		c.adcDecimal(val)
		return
	}
	c.adcBinary(val)
}

// sbc implements SBC as ADC of the one's complement of the operand in
// binary mode (the standard 6502-family identity); decimal mode subtracts
// digit-by-digit with its own borrow chain.
func (c *CPU) sbc(val uint16) {
	if c.GetFlag(FlagD) {
		c.sbcDecimal(val)
		return
	}
	c.adcBinary(^val)
}

func (c *CPU) adcBinary(val uint16) {
	carry := uint32(0)
	if c.GetFlag(FlagC) {
		carry = 1
	}
	if c.AccIs8Bit() {
		a := uint32(c.A())
		v := uint32(uint8(val))
		sum := a + v + carry
		res := uint8(sum)
		overflow := (^(uint32(a) ^ v) & (a ^ sum) & 0x80) != 0
		c.SetFlag(FlagC, sum > 0xFF)
		c.SetFlag(FlagV, overflow)
		c.SetA(res)
		c.setNZ8(res)
		return
	}
	a := uint32(c.C)
	v := uint32(val)
	sum := a + v + carry
	res := uint16(sum)
	overflow := (^(a ^ v) & (a ^ sum) & 0x8000) != 0
	c.SetFlag(FlagC, sum > 0xFFFF)
	c.SetFlag(FlagV, overflow)
	c.C = res
	c.setNZ16(res)
}

// bcdAdd8 adds two packed-BCD bytes plus an incoming carry, returning the
// packed-BCD sum, outgoing carry, and the overflow flag computed against
// the pre-correction binary sum (matching the 65C816's documented V
// behaviour in decimal mode).
func bcdAdd8(a, b uint8, carryIn bool) (sum uint8, carryOut, overflow bool) {
	carry := uint16(0)
	if carryIn {
		carry = 1
	}
	binSum := int16(int8(a)) + int16(int8(b)) + int16(carry)
	overflow = binSum < -128 || binSum > 127

	lo := uint16(a&0x0F) + uint16(b&0x0F) + carry
	hi := uint16(a&0xF0) + uint16(b&0xF0)
	if lo > 9 {
		lo += 6
		hi += 0x10
	}
	if hi > 0x90 {
		hi += 0x60
	}
	carryOut = hi > 0xFF
	sum = uint8((hi & 0xF0) | (lo & 0x0F))
	return
}

func (c *CPU) adcDecimal(val uint16) {
	carryIn := c.GetFlag(FlagC)
	if c.AccIs8Bit() {
		sum, carryOut, overflow := bcdAdd8(c.A(), uint8(val), carryIn)
		c.SetFlag(FlagC, carryOut)
		c.SetFlag(FlagV, overflow)
		c.SetA(sum)
		c.setNZ8(sum)
		return
	}
	aLo, aHi := uint8(c.C), uint8(c.C>>8)
	vLo, vHi := uint8(val), uint8(val>>8)
	sumLo, carryMid, _ := bcdAdd8(aLo, vLo, carryIn)
	sumHi, carryOut, overflow := bcdAdd8(aHi, vHi, carryMid)
	res := uint16(sumLo) | uint16(sumHi)<<8
	c.SetFlag(FlagC, carryOut)
	c.SetFlag(FlagV, overflow)
	c.C = res
	c.setNZ16(res)
}

// bcdSub8 is the decimal-mode subtraction counterpart of bcdAdd8.
func bcdSub8(a, b uint8, borrowIn bool) (diff uint8, borrowOut, overflow bool) {
	borrow := 0
	if borrowIn {
		borrow = 1
	}
	binDiff := int16(int8(a)) - int16(int8(b)) - int16(borrow)
	overflow = binDiff < -128 || binDiff > 127

	lo := int(a&0x0F) - int(b&0x0F) - borrow
	loBorrow := 0
	if lo < 0 {
		lo += 10
		loBorrow = 1
	}
	hi := int(a>>4) - int(b>>4) - loBorrow
	if hi < 0 {
		hi += 10
		borrowOut = true
	}
	diff = uint8((hi<<4)&0xF0) | uint8(lo&0x0F)
	return
}

func (c *CPU) sbcDecimal(val uint16) {
	borrowIn := !c.GetFlag(FlagC)
	if c.AccIs8Bit() {
		diff, borrowOut, overflow := bcdSub8(c.A(), uint8(val), borrowIn)
		c.SetFlag(FlagC, !borrowOut)
		c.SetFlag(FlagV, overflow)
		c.SetA(diff)
		c.setNZ8(diff)
		return
	}
	aLo, aHi := uint8(c.C), uint8(c.C>>8)
	vLo, vHi := uint8(val), uint8(val>>8)
	diffLo, borrowMid, _ := bcdSub8(aLo, vLo, borrowIn)
	diffHi, borrowOut, overflow := bcdSub8(aHi, vHi, borrowMid)
	res := uint16(diffLo) | uint16(diffHi)<<8
	c.SetFlag(FlagC, !borrowOut)
	c.SetFlag(FlagV, overflow)
	c.C = res
	c.setNZ16(res)
}

func (c *CPU) compareAcc(reg, val uint16) {
	if c.AccIs8Bit() {
		a, v := uint8(reg), uint8(val)
		res := a - v
		c.SetFlag(FlagC, a >= v)
		c.setNZ8(res)
		return
	}
	res := reg - val
	c.SetFlag(FlagC, reg >= val)
	c.setNZ16(res)
}

func (c *CPU) compareIndex(reg, val uint16) {
	if c.IndexIs8Bit() {
		a, v := uint8(reg), uint8(val)
		res := a - v
		c.SetFlag(FlagC, a >= v)
		c.setNZ8(res)
		return
	}
	res := reg - val
	c.SetFlag(FlagC, reg >= val)
	c.setNZ16(res)
}
