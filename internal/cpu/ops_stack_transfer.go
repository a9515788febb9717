package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpPHA, opPHA)
	registerOp(OpPLA, opPLA)
	registerOp(OpPHX, opPHX)
	registerOp(OpPLX, opPLX)
	registerOp(OpPHY, opPHY)
	registerOp(OpPLY, opPLY)
	registerOp(OpPHP, opPHP)
	registerOp(OpPLP, opPLP)
	registerOp(OpPHB, opPHB)
	registerOp(OpPLB, opPLB)
	registerOp(OpPHD, opPHD)
	registerOp(OpPLD, opPLD)
	registerOp(OpPHK, opPHK)
	registerOp(OpPEA, opPEA)
	registerOp(OpPEI, opPEI)
	registerOp(OpPER, opPER)

	registerOp(OpTAX, opTAX)
	registerOp(OpTAY, opTAY)
	registerOp(OpTXA, opTXA)
	registerOp(OpTYA, opTYA)
	registerOp(OpTXY, opTXY)
	registerOp(OpTYX, opTYX)
	registerOp(OpTSX, opTSX)
	registerOp(OpTXS, opTXS)
	registerOp(OpTCS, opTCS)
	registerOp(OpTSC, opTSC)
	registerOp(OpTCD, opTCD)
	registerOp(OpTDC, opTDC)
	registerOp(OpXBA, opXBA)
	registerOp(OpXCE, opXCE)
}

func opPHA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.AccIs8Bit() {
		c.push8(mem, c.A(), StackEnable)
	} else {
		c.push16(mem, c.C, StackEnable)
	}
	return 0
}

func opPLA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.AccIs8Bit() {
		v := c.pull8(mem, StackEnable)
		c.SetA(v)
		c.setNZ8(v)
	} else {
		v := c.pull16(mem, StackEnable)
		c.C = v
		c.setNZ16(v)
	}
	return 0
}

func opPHX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		c.push8(mem, uint8(c.X), StackEnable)
	} else {
		c.push16(mem, c.X, StackEnable)
	}
	return 0
}

func opPLX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		v := c.pull8(mem, StackEnable)
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.pull16(mem, StackEnable)
		c.X = v
		c.setNZ16(v)
	}
	return 0
}

func opPHY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		c.push8(mem, uint8(c.Y), StackEnable)
	} else {
		c.push16(mem, c.Y, StackEnable)
	}
	return 0
}

func opPLY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.IndexIs8Bit() {
		v := c.pull8(mem, StackEnable)
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.pull16(mem, StackEnable)
		c.Y = v
		c.setNZ16(v)
	}
	return 0
}

func opPHP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push8(mem, c.P, StackEnable)
	return 0
}

func opPLP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.P = c.pull8(mem, StackEnable)
	if c.E {
		c.P |= FlagM | FlagX
	}
	return 0
}

func opPHB(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push8(mem, c.DBR, StackEnable)
	return 0
}

func opPLB(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.DBR = c.pull8(mem, StackEnable)
	c.setNZ8(c.DBR)
	return 0
}

func opPHD(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push16(mem, c.D, StackDisable)
	return 0
}

func opPLD(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.D = c.pull16(mem, StackDisable)
	c.setNZ16(c.D)
	return 0
}

func opPHK(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push8(mem, c.PBR, StackEnable)
	return 0
}

// opPEA pushes the 16-bit immediate absolute value fetched by Resolve; the
// data-bank byte Resolve folded into operand.Addr is irrelevant here.
func opPEA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push16(mem, uint16(operand.Addr), StackDisable)
	return 0
}

// opPEI dereferences the direct-page pointer computed by Resolve (bank 0,
// page- or bank-wrapped per directPageWraps, i.e. E and D's low byte) and
// pushes the word found there.
func opPEI(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	var word uint16
	if c.directPageWraps() {
		word = mem.GetWordBankWrap(operand.Addr, c.AccessFlags)
	} else {
		word = mem.GetWordPageWrap(operand.Addr, c.AccessFlags)
	}
	c.push16(mem, word, StackDisable)
	return 0
}

// opPER pushes the PC-relative target computed by Resolve, discarding the
// program-bank byte folded into operand.Addr.
func opPER(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.push16(mem, uint16(operand.Addr), StackDisable)
	return 0
}

func opTAX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.X = c.maskIndex(c.C)
	c.setNZIndex(c.X)
	return 0
}

func opTAY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.Y = c.maskIndex(c.C)
	c.setNZIndex(c.Y)
	return 0
}

func opTXA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.C = mergeWidth(c.C, c.X, c.AccIs8Bit())
	c.setNZAcc(c.C)
	return 0
}

func opTYA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.C = mergeWidth(c.C, c.Y, c.AccIs8Bit())
	c.setNZAcc(c.C)
	return 0
}

func opTXY(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.Y = c.maskIndex(c.X)
	c.setNZIndex(c.Y)
	return 0
}

func opTYX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.X = c.maskIndex(c.Y)
	c.setNZIndex(c.X)
	return 0
}

func opTSX(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.X = c.maskIndex(c.SP)
	c.setNZIndex(c.X)
	return 0
}

func opTXS(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.E {
		c.SP = 0x0100 | (c.X & 0xFF)
	} else {
		c.SP = c.X
	}
	return 0
}

func opTCS(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	if c.E {
		c.SP = 0x0100 | (c.C & 0xFF)
	} else {
		c.SP = c.C
	}
	return 0
}

func opTSC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.C = c.SP
	c.setNZ16(c.C)
	return 0
}

func opTCD(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.D = c.C
	c.setNZ16(c.D)
	return 0
}

func opTDC(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.C = c.D
	c.setNZ16(c.C)
	return 0
}

func opXBA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	a, b := c.A(), c.B()
	c.SetA(b)
	c.SetB(a)
	c.setNZ8(b)
	return 0
}

func opXCE(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	oldC := c.GetFlag(FlagC)
	oldE := c.E
	c.SetFlag(FlagC, oldE)
	c.SetEmulation(oldC)
	return 0
}
