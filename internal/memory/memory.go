/*
 * sim816 - Flagged memory substrate
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

// Package memory implements the 16 MiB flagged byte substrate shared by the
// CPU interpreter and the UART device. Each cell carries its value plus three
// sticky access flags (read, write, breakpoint) that are metadata only: they
// never influence arithmetic, but the UART uses them to detect programmed I/O
// and the debugger uses them to detect breakpoints.
package memory

const (
	// Size is the number of addressable cells, 2^24.
	Size = 1 << 24
	// AddrMask confines address arithmetic to 24 bits.
	AddrMask = Size - 1
	// bankMask/pageMask select the portions of an address preserved by
	// bank-wrap and page-wrap arithmetic respectively.
	bankMask = 0xFF0000
	pageMask = 0xFFFF00
)

// Flag bits, as referenced by the mask argument of TestAndResetFlags,
// SetFlags and ResetFlags.
const (
	FlagRead       = 1 << 0
	FlagWrite      = 1 << 1
	FlagBreakpoint = 1 << 2
	FlagAll        = FlagRead | FlagWrite | FlagBreakpoint
)

type cell struct {
	value uint8
	flags uint8
}

// Memory is one independent 16 MiB flagged address space. The CPU and the
// UART device both hold a reference to the same *Memory for the lifetime of
// a simulation session.
type Memory struct {
	cells [Size]cell
}

// New returns a zeroed 16 MiB memory substrate.
func New() *Memory {
	return &Memory{}
}

// GetByte returns the value at addr. When setAcc is true the read flag is
// set, marking this as an observable CPU access; internal fix-ups pass false.
func (m *Memory) GetByte(addr uint32, setAcc bool) uint8 {
	addr &= AddrMask
	if setAcc {
		m.cells[addr].flags |= FlagRead
	}
	return m.cells[addr].value
}

// SetByte writes val at addr. When setAcc is true the write flag is set.
func (m *Memory) SetByte(addr uint32, val uint8, setAcc bool) {
	addr &= AddrMask
	m.cells[addr].value = val
	if setAcc {
		m.cells[addr].flags |= FlagWrite
	}
}

// GetWord reads a little-endian word with the 65C816's "absolute" wrap: the
// high byte wraps into bank 0 only when the low byte sits at the very top of
// the 24-bit address space.
func (m *Memory) GetWord(addr uint32, setAcc bool) uint16 {
	lo := m.GetByte(addr, setAcc)
	hiAddr := addr + 1
	if addr&AddrMask == AddrMask {
		hiAddr = 0
	}
	hi := m.GetByte(hiAddr, setAcc)
	return uint16(lo) | uint16(hi)<<8
}

// SetWord is the absolute-wrap counterpart of GetWord.
func (m *Memory) SetWord(addr uint32, val uint16, setAcc bool) {
	m.SetByte(addr, uint8(val), setAcc)
	hiAddr := addr + 1
	if addr&AddrMask == AddrMask {
		hiAddr = 0
	}
	m.SetByte(hiAddr, uint8(val>>8), setAcc)
}

// GetWordPageWrap reads a word where the high byte address wraps within the
// same 256-byte page (upper 16 bits of addr preserved).
func (m *Memory) GetWordPageWrap(addr uint32, setAcc bool) uint16 {
	lo := m.GetByte(addr, setAcc)
	hiAddr := (addr & pageMask) | ((addr + 1) & 0xFF)
	hi := m.GetByte(hiAddr, setAcc)
	return uint16(lo) | uint16(hi)<<8
}

// SetWordPageWrap is the page-wrap counterpart of GetWordPageWrap.
func (m *Memory) SetWordPageWrap(addr uint32, val uint16, setAcc bool) {
	m.SetByte(addr, uint8(val), setAcc)
	hiAddr := (addr & pageMask) | ((addr + 1) & 0xFF)
	m.SetByte(hiAddr, uint8(val>>8), setAcc)
}

// GetWordBankWrap reads a word where the high byte address wraps within the
// same 64 KiB bank (upper 8 bits of addr preserved).
func (m *Memory) GetWordBankWrap(addr uint32, setAcc bool) uint16 {
	lo := m.GetByte(addr, setAcc)
	hiAddr := (addr & bankMask) | ((addr + 1) & 0xFFFF)
	hi := m.GetByte(hiAddr, setAcc)
	return uint16(lo) | uint16(hi)<<8
}

// SetWordBankWrap is the bank-wrap counterpart of GetWordBankWrap.
func (m *Memory) SetWordBankWrap(addr uint32, val uint16, setAcc bool) {
	m.SetByte(addr, uint8(val), setAcc)
	hiAddr := (addr & bankMask) | ((addr + 1) & 0xFFFF)
	m.SetByte(hiAddr, uint8(val>>8), setAcc)
}

// GetLongBankWrap reads a 24-bit little-endian value whose three byte
// addresses all wrap within the bank of addr.
func (m *Memory) GetLongBankWrap(addr uint32, setAcc bool) uint32 {
	b0 := m.GetByte(addr, setAcc)
	a1 := (addr & bankMask) | ((addr + 1) & 0xFFFF)
	b1 := m.GetByte(a1, setAcc)
	a2 := (addr & bankMask) | ((addr + 2) & 0xFFFF)
	b2 := m.GetByte(a2, setAcc)
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
}

// SetLongBankWrap is the bank-wrap counterpart of GetLongBankWrap.
func (m *Memory) SetLongBankWrap(addr uint32, val uint32, setAcc bool) {
	m.SetByte(addr, uint8(val), setAcc)
	a1 := (addr & bankMask) | ((addr + 1) & 0xFFFF)
	m.SetByte(a1, uint8(val>>8), setAcc)
	a2 := (addr & bankMask) | ((addr + 2) & 0xFFFF)
	m.SetByte(a2, uint8(val>>16), setAcc)
}

// TestFlags reports the current read, write and breakpoint flags at addr.
func (m *Memory) TestFlags(addr uint32) (r, w, b bool) {
	f := m.cells[addr&AddrMask].flags
	return f&FlagRead != 0, f&FlagWrite != 0, f&FlagBreakpoint != 0
}

// TestAndResetFlags returns the flag bits selected by mask that were set
// before clearing them. mask is built from FlagRead, FlagWrite and
// FlagBreakpoint.
func (m *Memory) TestAndResetFlags(addr uint32, mask uint8) uint8 {
	addr &= AddrMask
	prev := m.cells[addr].flags & mask
	m.cells[addr].flags &^= mask
	return prev
}

// SetFlags sets the flag bits selected by mask at addr.
func (m *Memory) SetFlags(addr uint32, mask uint8) {
	m.cells[addr&AddrMask].flags |= mask
}

// ResetFlags clears the flag bits selected by mask at addr.
func (m *Memory) ResetFlags(addr uint32, mask uint8) {
	m.cells[addr&AddrMask].flags &^= mask
}

// LoadBytes copies data into memory starting at addr without touching any
// access flags, for loaders and test fixtures whose writes must be
// invisible to a running CPU.
func (m *Memory) LoadBytes(addr uint32, data []byte) {
	for i, b := range data {
		m.cells[(addr+uint32(i))&AddrMask].value = b
	}
}

// CopyOut reads n bytes starting at addr into a fresh slice without touching
// any access flags.
func (m *Memory) CopyOut(addr uint32, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.cells[(addr+uint32(i))&AddrMask].value
	}
	return out
}
