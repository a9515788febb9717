/*
 * sim816 - 65C816 disassembler
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

// Package disassemble renders one 65C816 instruction as mnemonic and
// operand text. It shares internal/cpu's OpcodeTable so the text it
// produces can never disagree with what Step actually executes; it never
// mutates memory flags or advances a real program counter.
package disassemble

import (
	"fmt"

	"github.com/corewdc/sim816/internal/cpu"
	"github.com/corewdc/sim816/internal/memory"
)

// DisassembleAt formats the instruction at the 24-bit address addr,
// returning its text and its length in bytes (1-4). accIs8/idxIs8 select
// the operand width for immediate-mode instructions, since the encoded
// byte stream alone does not carry M/X.
func DisassembleAt(mem *memory.Memory, addr uint32, accIs8, idxIs8 bool) (string, int) {
	opcode := mem.GetByte(addr, false)
	instr := cpu.OpcodeTable[opcode]
	if instr.Mnemonic == "" {
		return fmt.Sprintf(".byte $%02X", opcode), 1
	}

	operandLen := cpu.OperandLength(instr.Mode, accIs8, idxIs8)
	total := 1 + operandLen

	raw := mem.CopyOut(addr+1, operandLen)
	text := formatOperand(instr, addr, raw)
	return instr.Mnemonic + text, total
}

// Disassemble is DisassembleAt with data bytes supplied directly, for
// callers formatting a byte slice rather than addressing live memory
// (e.g. listing a loaded image before it is attached to a CPU).
func Disassemble(data []byte, accIs8, idxIs8 bool) (string, int) {
	if len(data) == 0 {
		return "", 0
	}
	opcode := data[0]
	instr := cpu.OpcodeTable[opcode]
	if instr.Mnemonic == "" {
		return fmt.Sprintf(".byte $%02X", opcode), 1
	}
	operandLen := cpu.OperandLength(instr.Mode, accIs8, idxIs8)
	total := 1 + operandLen
	if total > len(data) {
		return fmt.Sprintf(".byte $%02X (truncated)", opcode), len(data)
	}
	text := formatOperand(instr, 0, data[1:total])
	return instr.Mnemonic + text, total
}

// formatOperand renders the addressing-mode-specific operand text. pc is
// only used by the PC-relative modes, to display the absolute branch
// target rather than the raw displacement byte.
func formatOperand(instr cpu.Instr, pc uint32, raw []byte) string {
	switch instr.Mode {
	case cpu.ModeImplied:
		return ""
	case cpu.ModeAccumulator:
		return " A"
	case cpu.ModeImmediateM, cpu.ModeImmediateX, cpu.ModeImmediate8:
		return " " + hexOperand(raw)
	case cpu.ModeDirect:
		return fmt.Sprintf(" $%02X", raw[0])
	case cpu.ModeDirectX:
		return fmt.Sprintf(" $%02X,X", raw[0])
	case cpu.ModeDirectY:
		return fmt.Sprintf(" $%02X,Y", raw[0])
	case cpu.ModeDirectIndirect:
		return fmt.Sprintf(" ($%02X)", raw[0])
	case cpu.ModeDirectIndirectLong:
		return fmt.Sprintf(" [$%02X]", raw[0])
	case cpu.ModeDirectIndirectX:
		return fmt.Sprintf(" ($%02X,X)", raw[0])
	case cpu.ModeDirectIndirectY:
		return fmt.Sprintf(" ($%02X),Y", raw[0])
	case cpu.ModeDirectIndirectLongY:
		return fmt.Sprintf(" [$%02X],Y", raw[0])
	case cpu.ModeAbsolute:
		return fmt.Sprintf(" $%04X", word(raw))
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf(" $%04X,X", word(raw))
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf(" $%04X,Y", word(raw))
	case cpu.ModeLong:
		return fmt.Sprintf(" $%06X", long(raw))
	case cpu.ModeLongX:
		return fmt.Sprintf(" $%06X,X", long(raw))
	case cpu.ModeAbsoluteIndirect:
		return fmt.Sprintf(" ($%04X)", word(raw))
	case cpu.ModeAbsoluteIndirectX:
		return fmt.Sprintf(" ($%04X,X)", word(raw))
	case cpu.ModeAbsoluteIndirectLong:
		return fmt.Sprintf(" [$%04X]", word(raw))
	case cpu.ModeStackRelative:
		return fmt.Sprintf(" $%02X,S", raw[0])
	case cpu.ModeStackRelativeIndirectY:
		return fmt.Sprintf(" ($%02X,S),Y", raw[0])
	case cpu.ModeRelative8:
		target := uint16(int32(uint16(pc&0xFFFF)) + 2 + int32(int8(raw[0])))
		return fmt.Sprintf(" $%04X", target)
	case cpu.ModeRelative16:
		target := uint16(int32(uint16(pc&0xFFFF)) + 3 + int32(int16(word(raw))))
		return fmt.Sprintf(" $%04X", target)
	case cpu.ModeBlockMove:
		return fmt.Sprintf(" $%02X,$%02X", raw[0], raw[1])
	default:
		return ""
	}
}

func word(raw []byte) uint16 {
	if len(raw) < 2 {
		return 0
	}
	return uint16(raw[0]) | uint16(raw[1])<<8
}

func long(raw []byte) uint32 {
	if len(raw) < 3 {
		return 0
	}
	return uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16
}

func hexOperand(raw []byte) string {
	switch len(raw) {
	case 1:
		return fmt.Sprintf("$%02X", raw[0])
	case 2:
		return fmt.Sprintf("$%04X", word(raw))
	default:
		return ""
	}
}
