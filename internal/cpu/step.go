package cpu

import (
	"log/slog"

	"github.com/corewdc/sim816/internal/memory"
)

// noOperandModes are the addressing modes whose operand bytes are consumed
// by the opcode handler itself (immediate values, or no operand at all),
// rather than by a generic Resolve call.
func noOperandModes(mode Mode) bool {
	switch mode {
	case ModeImplied, ModeAccumulator, ModeImmediateM, ModeImmediateX, ModeImmediate8:
		return true
	default:
		return false
	}
}

// Step executes exactly one unit of CPU activity: servicing a pending
// reset or interrupt, or decoding and executing one instruction. It never
// executes more than one instruction per call.
func Step(c *CPU, mem *memory.Memory) StepResult {
	if c.CRASH {
		return Crash
	}
	if c.STP {
		return Stp
	}

	if c.Waiting {
		if c.NMI || c.IRQ {
			c.Waiting = false
		} else {
			c.Cycles++
			return Ok
		}
	}

	if c.RST {
		c.RST = false
		c.PC = mem.GetWord(VectorReset, false)
		if debugMsk&debugIRQ != 0 {
			slog.Debug("cpu: reset vector serviced", "pc", c.PC)
		}
		return Ok
	}

	if c.NMI {
		c.NMI = false
		c.serviceInterrupt(mem, c.nmiVector(), false)
		c.Cycles += 7
		if debugMsk&debugIRQ != 0 {
			slog.Debug("cpu: NMI serviced", "pc", c.PC, "pbr", c.PBR)
		}
		return Ok
	}

	if c.IRQ && !c.GetFlag(FlagI) {
		// The 65C816 IRQ line is level-triggered; this interpreter clears
		// it on acknowledgement instead, matching observed behaviour of
		// the system this was ported from. The UART re-asserts IRQ each
		// step for as long as its cause condition still holds.
		c.IRQ = false
		c.serviceInterrupt(mem, c.irqVector(), false)
		c.Cycles += 7
		if debugMsk&debugIRQ != 0 {
			slog.Debug("cpu: IRQ serviced", "pc", c.PC, "pbr", c.PBR)
		}
		return Ok
	}

	fetchPC := c.effPC()
	opcode := c.fetchByte(mem)
	instr := OpcodeTable[opcode]
	if instr.Mnemonic == "" {
		return UnknownOpcode
	}
	if debugMsk&debugInst != 0 {
		slog.Debug("cpu: fetch", "addr", fetchPC, "opcode", opcode, "mnemonic", instr.Mnemonic)
	}

	var operand Operand
	if !noOperandModes(instr.Mode) {
		operand = c.Resolve(mem, instr.Mode)
	}

	handler := opHandlers[instr.Op]
	extra := 0
	if handler != nil {
		extra = handler(c, mem, instr.Mode, operand)
	}
	c.Cycles += uint64(instr.Cycles + extra)
	return Ok
}

func (c *CPU) nmiVector() uint32 {
	if c.E {
		return VectorEmuNMI
	}
	return VectorNativeNMI
}

func (c *CPU) irqVector() uint32 {
	if c.E {
		return VectorEmuIRQOrBRK
	}
	return VectorNativeIRQ
}

func (c *CPU) brkVector() uint32 {
	if c.E {
		return VectorEmuIRQOrBRK
	}
	return VectorNativeBRK
}

func (c *CPU) copVector() uint32 {
	if c.E {
		return VectorEmuCOP
	}
	return VectorNativeCOP
}

// serviceInterrupt runs the common BRK/COP/NMI/IRQ sequence: push PBR (if
// native), push PC, push status with the B bit forced per isBRK and mode,
// set I, clear D, zero PBR (if native), and vector PC from the given
// bank-0 address. Cycle accounting matches the BRK/COP opcode entries;
// hardware-triggered NMI/IRQ bill the same 7 cycles.
func (c *CPU) serviceInterrupt(mem *memory.Memory, vector uint32, isBRK bool) {
	if !c.E {
		c.push8(mem, c.PBR, StackEnable)
	}
	c.push16(mem, c.PC, StackEnable)

	p := c.P
	if c.E {
		if isBRK {
			p |= FlagX
		} else {
			p &^= FlagX
		}
	}
	c.push8(mem, p, StackEnable)

	c.SetFlag(FlagI, true)
	c.SetFlag(FlagD, false)
	if !c.E {
		c.PBR = 0
	}
	c.PC = mem.GetWord(vector, false)
}
