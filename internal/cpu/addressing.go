package cpu

import (
	"github.com/corewdc/sim816/internal/memory"
)

// Mode identifies one 65C816 addressing mode. The addressing mode, not the
// mnemonic, determines operand length and effective-address arithmetic.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediateM // width follows the M flag (or E)
	ModeImmediateX // width follows the X flag (or E)
	ModeImmediate8 // always one byte (REP/SEP/block-move bank bytes)
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeDirectIndirect
	ModeDirectIndirectLong
	ModeDirectIndirectX
	ModeDirectIndirectY
	ModeDirectIndirectLongY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeLong
	ModeLongX
	ModeAbsoluteIndirect
	ModeAbsoluteIndirectX
	ModeAbsoluteIndirectLong
	ModeStackRelative
	ModeStackRelativeIndirectY
	ModeRelative8
	ModeRelative16
	ModeBlockMove
)

// Operand carries everything an opcode handler needs once the addressing
// mode has been resolved: the effective address (when applicable), any bank
// bytes fetched for MVN/MVP, and whether a page boundary was crossed (used
// for the +1 cycle penalty on indexed reads, in either mode).
type Operand struct {
	Addr        uint32
	SrcBank     uint8 // MVN/MVP only
	DstBank     uint8 // MVN/MVP only
	PageCrossed bool
}

// directPageWraps reports whether a direct-page indirect pointer fetch
// should bank-wrap rather than page-wrap. Page-wrap only applies in
// emulation mode with D's low byte zero (the 65C816 manual's "Direct Page
// Low not equal to zero" addressing-time note is itself conditioned on
// emulation mode); in native mode, or whenever D's low byte is non-zero,
// the pointer fetch bank-wraps instead.
func (c *CPU) directPageWraps() bool {
	return !(c.E && c.D&0xFF == 0)
}

// Resolve computes the effective address for mode, consuming operand bytes
// from the instruction stream via mem and c.PC/c.PBR. It does not perform
// the opcode's actual read/write; callers use Addr with mem.GetByte/SetByte
// or the appropriate word/long helper.
func (c *CPU) Resolve(mem *memory.Memory, mode Mode) Operand {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return Operand{}

	case ModeDirect:
		dp := uint16(c.fetchByte(mem))
		return Operand{Addr: uint32(c.D+dp) & 0xFFFF}

	case ModeDirectX:
		dp := uint16(c.fetchByte(mem))
		if c.directPageWraps() {
			return Operand{Addr: uint32(c.D+dp+c.X) & 0xFFFF}
		}
		return Operand{Addr: uint32(c.D&0xFF00) | uint32(c.D+dp+c.X)&0xFF}

	case ModeDirectY:
		dp := uint16(c.fetchByte(mem))
		if c.directPageWraps() {
			return Operand{Addr: uint32(c.D+dp+c.Y) & 0xFFFF}
		}
		return Operand{Addr: uint32(c.D&0xFF00) | uint32(c.D+dp+c.Y)&0xFF}

	case ModeDirectIndirect:
		dp := uint16(c.fetchByte(mem))
		ptr := uint32(c.D+dp) & 0xFFFF
		var word uint16
		if c.directPageWraps() {
			word = mem.GetWordBankWrap(ptr, c.AccessFlags)
		} else {
			word = mem.GetWordPageWrap(ptr, c.AccessFlags)
		}
		return Operand{Addr: uint32(c.DBR)<<16 | uint32(word)}

	case ModeDirectIndirectLong:
		dp := uint16(c.fetchByte(mem))
		ptr := uint32(c.D+dp) & 0xFFFF
		long := mem.GetLongBankWrap(ptr, c.AccessFlags)
		return Operand{Addr: long & memory.AddrMask}

	case ModeDirectIndirectX:
		dp := uint16(c.fetchByte(mem))
		ptr := uint32(c.D+dp+c.X) & 0xFFFF
		var word uint16
		if c.directPageWraps() {
			word = mem.GetWordBankWrap(ptr, c.AccessFlags)
		} else {
			word = mem.GetWordPageWrap(ptr, c.AccessFlags)
		}
		return Operand{Addr: uint32(c.DBR)<<16 | uint32(word)}

	case ModeDirectIndirectY:
		dp := uint16(c.fetchByte(mem))
		ptr := uint32(c.D+dp) & 0xFFFF
		var word uint16
		if c.directPageWraps() {
			word = mem.GetWordBankWrap(ptr, c.AccessFlags)
		} else {
			word = mem.GetWordPageWrap(ptr, c.AccessFlags)
		}
		base := uint32(c.DBR)<<16 | uint32(word)
		eff := (base + uint32(c.Y)) & memory.AddrMask
		return Operand{Addr: eff, PageCrossed: base&0xFF00 != eff&0xFF00}

	case ModeDirectIndirectLongY:
		dp := uint16(c.fetchByte(mem))
		ptr := uint32(c.D+dp) & 0xFFFF
		long := mem.GetLongBankWrap(ptr, c.AccessFlags)
		eff := (long + uint32(c.Y)) & memory.AddrMask
		return Operand{Addr: eff}

	case ModeAbsolute:
		w := c.fetchWord(mem)
		return Operand{Addr: uint32(c.DBR)<<16 | uint32(w)}

	case ModeAbsoluteX:
		w := c.fetchWord(mem)
		base := uint32(c.DBR)<<16 | uint32(w)
		eff := (base + uint32(c.X)) & memory.AddrMask
		return Operand{Addr: eff, PageCrossed: base&0xFF00 != eff&0xFF00}

	case ModeAbsoluteY:
		w := c.fetchWord(mem)
		base := uint32(c.DBR)<<16 | uint32(w)
		eff := (base + uint32(c.Y)) & memory.AddrMask
		return Operand{Addr: eff, PageCrossed: base&0xFF00 != eff&0xFF00}

	case ModeLong:
		l := c.fetchLong(mem)
		return Operand{Addr: l & memory.AddrMask}

	case ModeLongX:
		l := c.fetchLong(mem)
		eff := (l + uint32(c.X)) & memory.AddrMask
		return Operand{Addr: eff}

	case ModeAbsoluteIndirect:
		w := c.fetchWord(mem)
		ptr := uint32(w)
		word := mem.GetWordBankWrap(ptr, c.AccessFlags)
		return Operand{Addr: uint32(c.PBR)<<16 | uint32(word)}

	case ModeAbsoluteIndirectX:
		w := c.fetchWord(mem)
		ptr := (uint32(w) + uint32(c.X)) & 0xFFFF
		ptr |= uint32(c.PBR) << 16
		word := mem.GetWordBankWrap(ptr, c.AccessFlags)
		return Operand{Addr: uint32(c.PBR)<<16 | uint32(word)}

	case ModeAbsoluteIndirectLong:
		w := c.fetchWord(mem)
		ptr := uint32(w)
		long := mem.GetLongBankWrap(ptr, c.AccessFlags)
		return Operand{Addr: long & memory.AddrMask}

	case ModeStackRelative:
		disp := uint16(c.fetchByte(mem))
		return Operand{Addr: uint32(c.DBR)<<16 | uint32(c.SP+disp)&0xFFFF}

	case ModeStackRelativeIndirectY:
		disp := uint16(c.fetchByte(mem))
		ptr := uint32(c.SP+disp) & 0xFFFF
		word := mem.GetWordBankWrap(ptr, c.AccessFlags)
		base := uint32(c.DBR)<<16 | uint32(word)
		eff := (base + uint32(c.Y)) & memory.AddrMask
		return Operand{Addr: eff}

	case ModeImmediateM, ModeImmediateX, ModeImmediate8:
		// Immediate operands are consumed directly by the handler via
		// fetchByte/fetchWord; Resolve is not used for this mode.
		return Operand{}

	case ModeRelative8:
		disp := int8(c.fetchByte(mem))
		eff := uint16(int32(c.PC) + int32(disp))
		return Operand{Addr: uint32(c.PBR)<<16 | uint32(eff)}

	case ModeRelative16:
		disp := int16(c.fetchWord(mem))
		eff := uint16(int32(c.PC) + int32(disp))
		return Operand{Addr: uint32(c.PBR)<<16 | uint32(eff)}

	case ModeBlockMove:
		srcBank := c.fetchByte(mem)
		dstBank := c.fetchByte(mem)
		return Operand{SrcBank: srcBank, DstBank: dstBank}

	default:
		return Operand{}
	}
}

// OperandLength returns the number of bytes the addressing mode consumes
// from the instruction stream after the opcode byte, given the current
// accumulator/index widths. Used by the disassembler, which must not
// mutate CPU or memory state while computing instruction length.
func OperandLength(mode Mode, accIs8, idxIs8 bool) int {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0
	case ModeImmediateM:
		if accIs8 {
			return 1
		}
		return 2
	case ModeImmediateX:
		if idxIs8 {
			return 1
		}
		return 2
	case ModeImmediate8, ModeDirect, ModeDirectX, ModeDirectY,
		ModeDirectIndirect, ModeDirectIndirectLong, ModeDirectIndirectX,
		ModeDirectIndirectY, ModeDirectIndirectLongY, ModeStackRelative,
		ModeStackRelativeIndirectY, ModeRelative8:
		return 1
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeAbsoluteIndirect,
		ModeAbsoluteIndirectX, ModeAbsoluteIndirectLong, ModeRelative16,
		ModeBlockMove:
		return 2
	case ModeLong, ModeLongX:
		return 3
	default:
		return 0
	}
}
