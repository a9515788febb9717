package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpCLC, flagOp(FlagC, false))
	registerOp(OpSEC, flagOp(FlagC, true))
	registerOp(OpCLI, flagOp(FlagI, false))
	registerOp(OpSEI, flagOp(FlagI, true))
	registerOp(OpCLD, flagOp(FlagD, false))
	registerOp(OpSED, flagOp(FlagD, true))
	registerOp(OpCLV, flagOp(FlagV, false))
	registerOp(OpREP, opREP)
	registerOp(OpSEP, opSEP)
	registerOp(OpNOP, opNOP)
	registerOp(OpWDM, opWDM)
	registerOp(OpSTP, opSTP)
	registerOp(OpWAI, opWAI)
	registerOp(OpBRK, opBRK)
	registerOp(OpCOP, opCOP)
}

func flagOp(mask uint8, v bool) handlerFunc {
	return func(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
		c.SetFlag(mask, v)
		return 0
	}
}

// opREP clears the status bits set in the fetched mask. In emulation mode
// M and X cannot be cleared: the hardware always reads them as 1.
func opREP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	mask := c.fetchByte(mem)
	c.P &^= mask
	if c.E {
		c.P |= FlagM | FlagX
	}
	return 0
}

func opSEP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	mask := c.fetchByte(mem)
	c.P |= mask
	return 0
}

func opNOP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	return 0
}

// opWDM consumes and discards its signature byte, matching the reserved
// "William D. Mensch" expansion opcode's documented behaviour of doing
// nothing besides advancing past one operand byte.
func opWDM(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.fetchByte(mem)
	return 0
}

func opSTP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.STP = true
	return 0
}

// opWAI parks the CPU until the next pending NMI or IRQ, serviced normally
// (including being ignored if IRQ and the I flag is still set) once Step
// clears Waiting.
func opWAI(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.Waiting = true
	return 0
}

func opBRK(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.fetchByte(mem) // signature byte, discarded
	c.serviceInterrupt(mem, c.brkVector(), true)
	return 0
}

func opCOP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.fetchByte(mem) // signature byte, discarded
	c.serviceInterrupt(mem, c.copVector(), true)
	return 0
}
