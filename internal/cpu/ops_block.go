package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

func init() {
	registerOp(OpMVN, opMVN)
	registerOp(OpMVP, opMVP)
}

// opMVN moves one byte per Step call, incrementing X/Y, matching real
// 65C816 behaviour where MVN/MVP re-fetch themselves (by backing PC up
// three bytes) until the 16-bit C register byte counter wraps from 0.
func opMVN(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.DBR = operand.DstBank
	src := uint32(operand.SrcBank)<<16 | uint32(c.X)
	dst := uint32(operand.DstBank)<<16 | uint32(c.Y)
	mem.SetByte(dst, mem.GetByte(src, c.AccessFlags), c.AccessFlags)
	c.X = (c.X + 1) & 0xFFFF
	c.Y = (c.Y + 1) & 0xFFFF
	c.C--
	if c.C != 0xFFFF {
		c.PC -= 3
	}
	return 0
}

func opMVP(c *CPU, mem *memory.Memory, mode Mode, operand Operand) int {
	c.DBR = operand.DstBank
	src := uint32(operand.SrcBank)<<16 | uint32(c.X)
	dst := uint32(operand.DstBank)<<16 | uint32(c.Y)
	mem.SetByte(dst, mem.GetByte(src, c.AccessFlags), c.AccessFlags)
	c.X = (c.X - 1) & 0xFFFF
	c.Y = (c.Y - 1) & 0xFFFF
	c.C--
	if c.C != 0xFFFF {
		c.PC -= 3
	}
	return 0
}
