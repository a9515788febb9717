/*
 * sim816 - WDC 65C816 CPU state
 *
 * Copyright (c) 2026, The sim816 Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package cpu implements the WDC 65C816 instruction interpreter: the
// register file, status flags, addressing-mode resolver, opcode dispatch
// table and the reset/interrupt servicing sequence.
package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

// Interrupt and reset vectors, 16-bit words stored little-endian in bank 0.
const (
	VectorNativeCOP    uint32 = 0xFFE4
	VectorNativeBRK    uint32 = 0xFFE6
	VectorNativeABORT  uint32 = 0xFFE8
	VectorNativeNMI    uint32 = 0xFFEA
	VectorNativeIRQ    uint32 = 0xFFEE
	VectorEmuCOP       uint32 = 0xFFF4
	VectorEmuABORT     uint32 = 0xFFF8
	VectorEmuNMI       uint32 = 0xFFFA
	VectorReset        uint32 = 0xFFFC
	VectorEmuIRQOrBRK  uint32 = 0xFFFE
)

// Status flag bits, in the documented order N V M X D I Z C. X occupies the
// same bit as B: in native mode it is the index-register-width flag; in
// emulation mode it is the break flag stacked by BRK/COP/NMI/IRQ.
const (
	FlagC uint8 = 1 << 0
	FlagZ uint8 = 1 << 1
	FlagI uint8 = 1 << 2
	FlagD uint8 = 1 << 3
	FlagX uint8 = 1 << 4 // aka B in emulation mode
	FlagM uint8 = 1 << 5
	FlagV uint8 = 1 << 6
	FlagN uint8 = 1 << 7
)

// StepResult is the outcome of one call to Step.
type StepResult int

const (
	// Ok means one instruction (or a reset vector service) executed.
	Ok StepResult = iota
	// UnknownOpcode means the opcode byte has no handler; state is
	// unmodified beyond the PC already consumed while fetching it.
	UnknownOpcode
	// Stp means the CPU is halted by a previous STP instruction.
	Stp
	// Crash means an internal invariant broke; all further Step calls
	// return Crash until the CPU is reset.
	Crash
)

// CPU holds the full register and status state of one 65C816.
type CPU struct {
	C   uint16 // Accumulator; A is the low byte, B is the high byte.
	X   uint16
	Y   uint16
	SP  uint16
	D   uint16 // Direct page register.
	DBR uint8  // Data bank register.
	PBR uint8  // Program bank register.
	PC  uint16

	P uint8 // Status byte: N V M X D I Z C.
	E bool  // Emulation mode (native when false).

	RST   bool // Reset pending; next Step loads PC from the reset vector.
	IRQ   bool // IRQ line asserted.
	NMI   bool // NMI line asserted (edge, cleared on service).
	STP     bool // Halted by STP; only Reset clears it.
	Waiting bool // Halted by WAI; any pending NMI or IRQ clears it.
	CRASH   bool // Internal invariant broken.

	Cycles uint64 // Cumulative cycle count.

	// AccessFlags gates whether fetch/operand reads set the memory
	// substrate's R/W flags. Disabled only for internal fix-ups; the
	// interpreter otherwise leaves it enabled.
	AccessFlags bool
}

// New returns a CPU with all fields zeroed, matching the source's
// zero-initialized lifecycle; call Reset before first use.
func New() *CPU {
	return &CPU{AccessFlags: true}
}

// Reset prepares the CPU for the next Step to vector through RESET: D, DBR
// and PBR are cleared, SP is forced into page 1, X and Y are truncated to
// 8 bits, M, X-flag and I are set, decimal mode is cleared, E is set, and
// RST is marked so the next Step loads PC from 0xFFFC instead of executing
// an opcode.
func (c *CPU) Reset() {
	c.D = 0
	c.DBR = 0
	c.PBR = 0
	c.SP = 0x0100 | (c.SP & 0xFF)
	c.X &= 0xFF
	c.Y &= 0xFF
	c.P |= FlagM | FlagX | FlagI
	c.P &^= FlagD
	c.E = true
	c.STP = false
	c.Waiting = false
	c.CRASH = false
	c.RST = true
}

// A is the low 8 bits of the accumulator.
func (c *CPU) A() uint8 { return uint8(c.C) }

// B is the high 8 bits of the accumulator (the byte XBA swaps with A).
func (c *CPU) B() uint8 { return uint8(c.C >> 8) }

// SetA replaces the low byte of the accumulator, leaving B untouched.
func (c *CPU) SetA(v uint8) { c.C = (c.C & 0xFF00) | uint16(v) }

// SetB replaces the high byte of the accumulator, leaving A untouched.
func (c *CPU) SetB(v uint8) { c.C = (uint16(v) << 8) | (c.C & 0x00FF) }

// AccIs8Bit reports whether accumulator/memory operations are 8-bit wide:
// always true in emulation mode, otherwise the M flag.
func (c *CPU) AccIs8Bit() bool { return c.E || c.P&FlagM != 0 }

// IndexIs8Bit reports whether index-register operations are 8-bit wide:
// always true in emulation mode, otherwise the X flag.
func (c *CPU) IndexIs8Bit() bool { return c.E || c.P&FlagX != 0 }

// GetFlag reports whether the given status bit is set.
func (c *CPU) GetFlag(mask uint8) bool { return c.P&mask != 0 }

// SetFlag sets or clears the given status bit.
func (c *CPU) SetFlag(mask uint8, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// setNZ8 sets N and Z from an 8-bit result.
func (c *CPU) setNZ8(v uint8) {
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x80 != 0)
}

// setNZ16 sets N and Z from a 16-bit result.
func (c *CPU) setNZ16(v uint16) {
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x8000 != 0)
}

// effPC returns the 24-bit effective program counter (PBR<<16 | PC).
func (c *CPU) effPC() uint32 {
	return uint32(c.PBR)<<16 | uint32(c.PC)
}

// fetchByte reads the byte at the effective PC, sets access flags per
// AccessFlags, and advances PC with bank-wrap (PC is 16-bit, so the Go
// overflow of c.PC++ already confines it to the bank).
func (c *CPU) fetchByte(mem *memory.Memory) uint8 {
	v := mem.GetByte(c.effPC(), c.AccessFlags)
	c.PC++
	return v
}

// fetchWord reads a little-endian word starting at the effective PC,
// advancing PC by 2 with bank-wrap.
func (c *CPU) fetchWord(mem *memory.Memory) uint16 {
	lo := c.fetchByte(mem)
	hi := c.fetchByte(mem)
	return uint16(lo) | uint16(hi)<<8
}

// fetchLong reads a little-endian 24-bit value starting at the effective
// PC, advancing PC by 3 with bank-wrap.
func (c *CPU) fetchLong(mem *memory.Memory) uint32 {
	lo := c.fetchByte(mem)
	mid := c.fetchByte(mem)
	hi := c.fetchByte(mem)
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16
}

// push8 writes v to the stack and decrements SP, honouring the
// emulation-mode page-1 confinement for legacy pushes.
func (c *CPU) push8(mem *memory.Memory, v uint8, stack EmulationStack) {
	addr := c.stackAddr(stack)
	mem.SetByte(addr, v, c.AccessFlags)
	c.decSP(stack)
}

// push16 writes a word high-byte-first so the low byte ends up on top.
func (c *CPU) push16(mem *memory.Memory, v uint16, stack EmulationStack) {
	c.push8(mem, uint8(v>>8), stack)
	c.push8(mem, uint8(v), stack)
}

// pull8 increments SP and reads the byte now on top of the stack.
func (c *CPU) pull8(mem *memory.Memory, stack EmulationStack) uint8 {
	c.incSP(stack)
	addr := c.stackAddr(stack)
	return mem.GetByte(addr, c.AccessFlags)
}

// pull16 reads a word low-byte-first.
func (c *CPU) pull16(mem *memory.Memory, stack EmulationStack) uint16 {
	lo := c.pull8(mem, stack)
	hi := c.pull8(mem, stack)
	return uint16(lo) | uint16(hi)<<8
}

// EmulationStack selects whether a push/pop must stay confined to stack
// page 1 (legacy instructions in emulation mode) or may cross into page 0
// (new 65C816 instructions, always in native mode).
type EmulationStack int

const (
	StackEnable  EmulationStack = iota // confine to page 1 when E
	StackDisable                       // full 16-bit SP regardless of E
)

func (c *CPU) stackAddr(stack EmulationStack) uint32 {
	if c.E && stack == StackEnable {
		return 0x0100 | uint32(c.SP&0xFF)
	}
	return uint32(c.SP)
}

func (c *CPU) decSP(stack EmulationStack) {
	if c.E && stack == StackEnable {
		c.SP = 0x0100 | ((c.SP - 1) & 0xFF)
		return
	}
	c.SP--
}

func (c *CPU) incSP(stack EmulationStack) {
	if c.E && stack == StackEnable {
		c.SP = 0x0100 | ((c.SP + 1) & 0xFF)
		return
	}
	c.SP++
}

// SetEmulation implements XCE's mode switch: on a 0->1 transition (native
// to emulation) the high bytes of X/Y are cleared and SP is forced into
// page 1, per the 65C816 hardware manual.
func (c *CPU) SetEmulation(e bool) {
	wasNative := !c.E
	c.E = e
	if e && wasNative {
		c.X &= 0xFF
		c.Y &= 0xFF
		c.SP = 0x0100 | (c.SP & 0xFF)
		c.P |= FlagM | FlagX
	}
}
