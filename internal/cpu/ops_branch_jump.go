package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpBPL, branchIf(FlagN, false))
	registerOp(OpBMI, branchIf(FlagN, true))
	registerOp(OpBVC, branchIf(FlagV, false))
	registerOp(OpBVS, branchIf(FlagV, true))
	registerOp(OpBCC, branchIf(FlagC, false))
	registerOp(OpBCS, branchIf(FlagC, true))
	registerOp(OpBNE, branchIf(FlagZ, false))
	registerOp(OpBEQ, branchIf(FlagZ, true))
	registerOp(OpBRA, opBRA)
	registerOp(OpBRL, opBRA)
	registerOp(OpJMP, opJMP)
	registerOp(OpJML, opJML)
	registerOp(OpJSR, opJSR)
	registerOp(OpJSL, opJSL)
	registerOp(OpRTS, opRTS)
	registerOp(OpRTL, opRTL)
	registerOp(OpRTI, opRTI)
}

// branchIf returns a handler that takes the branch when the status bit
// mask reads as want, adding one cycle when taken.
func branchIf(mask uint8, want bool) handlerFunc {
	return func(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
		if c.GetFlag(mask) != want {
			return 0
		}
		c.PC = uint16(operand.Addr)
		return 1
	}
}

func opBRA(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.PC = uint16(operand.Addr)
	return 0
}

func opJMP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.PC = uint16(operand.Addr)
	return 0
}

func opJML(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.PC = uint16(operand.Addr)
	c.PBR = uint8(operand.Addr >> 16)
	return 0
}

func opJSR(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	ret := c.PC - 1
	c.push16(mem, ret, StackEnable)
	c.PC = uint16(operand.Addr)
	return 0
}

func opJSL(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	ret := c.PC - 1
	c.push8(mem, c.PBR, StackEnable)
	c.push16(mem, ret, StackEnable)
	c.PC = uint16(operand.Addr)
	c.PBR = uint8(operand.Addr >> 16)
	return 0
}

func opRTS(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	ret := c.pull16(mem, StackEnable)
	c.PC = ret + 1
	return 0
}

func opRTL(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	ret := c.pull16(mem, StackEnable)
	bank := c.pull8(mem, StackEnable)
	c.PC = ret + 1
	c.PBR = bank
	return 0
}

func opRTI(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.P = c.pull8(mem, StackEnable)
	c.PC = c.pull16(mem, StackEnable)
	if !c.E {
		c.PBR = c.pull8(mem, StackEnable)
	}
	return 0
}
