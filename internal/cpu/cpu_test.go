package cpu

import (
	"testing"

	"github.com/corewdc/sim816/internal/memory"
)

func newMachine() (*CPU, *memory.Memory) {
	mem := memory.New()
	c := New()
	c.Reset()
	return c, mem
}

func TestResetVector(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x1234, false)

	res := Step(c, mem)

	if res != Ok {
		t.Fatalf("Step() = %v, want Ok", res)
	}
	if c.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want 0x1234", c.PC)
	}
	if c.PBR != 0 {
		t.Fatalf("PBR = %#02x, want 0", c.PBR)
	}
	if c.Cycles != 0 {
		t.Fatalf("Cycles = %d, want 0", c.Cycles)
	}
	if c.RST {
		t.Fatalf("RST still set after reset-vector service")
	}
}

func TestLDAImmediateNative16Bit(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem) // service reset

	c.E = false
	c.P &^= FlagM // 16-bit accumulator

	mem.SetByte(0x8000, 0xA9, false) // LDA #imm
	mem.SetWord(0x8001, 0xBEEF, false)

	res := Step(c, mem)

	if res != Ok {
		t.Fatalf("Step() = %v, want Ok", res)
	}
	if c.C != 0xBEEF {
		t.Fatalf("C = %#04x, want 0xBEEF", c.C)
	}
	if c.PC != 0x8003 {
		t.Fatalf("PC = %#04x, want 0x8003", c.PC)
	}
	if !c.GetFlag(FlagN) {
		t.Fatalf("N flag not set for negative load")
	}
	if c.GetFlag(FlagZ) {
		t.Fatalf("Z flag set for nonzero load")
	}
}

func TestLDAImmediate8Bit(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)

	mem.SetByte(0x8000, 0xA9, false)
	mem.SetByte(0x8001, 0x00, false)
	c.C = 0xFF00

	Step(c, mem)

	if c.C != 0xFF00 {
		t.Fatalf("C = %#04x, want 0xFF00 (B half preserved)", c.C)
	}
	if !c.GetFlag(FlagZ) {
		t.Fatalf("Z flag not set for zero load")
	}
}

func TestBRKEmulationPushesBFlag(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)

	mem.SetWord(VectorEmuIRQOrBRK, 0x9000, false)
	mem.SetByte(0x8000, 0x00, false) // BRK
	mem.SetByte(0x8001, 0xEA, false) // signature byte, discarded

	spBefore := c.SP
	wantSP := 0x0100 | ((spBefore - 3) & 0xFF)
	res := Step(c, mem)

	if res != Ok {
		t.Fatalf("Step() = %v, want Ok", res)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC = %#04x, want 0x9000", c.PC)
	}
	if c.SP != wantSP {
		t.Fatalf("SP = %#04x, want %#04x (3 bytes pushed, page-1 confined)", c.SP, wantSP)
	}
	if !c.GetFlag(FlagI) {
		t.Fatalf("I flag not set after BRK service")
	}

	pushedP := mem.GetByte(uint32(c.SP+1), false)
	if pushedP&FlagX == 0 {
		t.Fatalf("pushed status %#02x missing B (X) bit for BRK in emulation mode", pushedP)
	}
}

func TestIRQClearsOnServiceEdgeTriggered(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)
	mem.SetByte(0x8000, 0xEA, false) // NOP, never reached this step

	mem.SetWord(VectorEmuIRQOrBRK, 0xA000, false)
	c.SetFlag(FlagI, false) // Reset sets I; unmask so the IRQ is taken
	c.IRQ = true

	Step(c, mem)

	if c.IRQ {
		t.Fatalf("IRQ still set after service; interrupt line should clear on acknowledgement")
	}
	if c.PC != 0xA000 {
		t.Fatalf("PC = %#04x, want 0xA000 (serviced IRQ)", c.PC)
	}
}

func TestIRQMaskedByIFlag(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)
	mem.SetByte(0x8000, 0xEA, false) // NOP

	c.SetFlag(FlagI, true)
	c.IRQ = true

	Step(c, mem)

	if !c.IRQ {
		t.Fatalf("IRQ cleared despite I flag masking it")
	}
	if c.PC != 0x8001 {
		t.Fatalf("PC = %#04x, want 0x8001 (NOP executed instead of IRQ service)", c.PC)
	}
}

func TestWAIResumesOnMaskedIRQWithoutServicing(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)
	mem.SetByte(0x8000, 0xCB, false) // WAI
	mem.SetByte(0x8001, 0xEA, false) // NOP, follows WAI

	c.SetFlag(FlagI, true)
	Step(c, mem) // execute WAI, enters Waiting

	if !c.Waiting {
		t.Fatalf("expected Waiting after WAI")
	}

	c.IRQ = true
	res := Step(c, mem) // masked IRQ still wakes WAI but isn't serviced

	if res != Ok {
		t.Fatalf("Step() = %v, want Ok", res)
	}
	if c.Waiting {
		t.Fatalf("still Waiting after a pending IRQ arrived")
	}
	if !c.IRQ {
		t.Fatalf("IRQ line should remain asserted; WAI wake does not service it")
	}
}

func TestSTPOnlyClearedByReset(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)
	mem.SetByte(0x8000, 0xDB, false) // STP

	Step(c, mem)
	if !c.STP {
		t.Fatalf("expected STP set after STP instruction")
	}

	c.NMI = true
	res := Step(c, mem)
	if res != Stp {
		t.Fatalf("Step() = %v, want Stp; NMI alone must not clear STP", res)
	}

	c.Reset()
	if c.STP {
		t.Fatalf("STP still set after Reset")
	}
}

func TestDirectPageWrapSelection(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)

	c.D = 0x1200 // low byte zero
	c.E = true   // page-wrap only applies in emulation mode
	c.X = 0
	c.PC = 0x9000

	mem.SetByte(0x12FF, 0x01, false)
	mem.SetByte(0x1200, 0x02, false) // page-wrap target for the pointer's high byte

	mem.SetByte(0x9000, 0xFF, false) // direct-page offset byte, PC at fetch time

	operand := c.Resolve(mem, ModeDirectIndirectX)

	if operand.Addr != 0x0201 {
		t.Fatalf("Addr = %#06x, want 0x000201 (pointer 0x02,0x01 page-wrapped within 0x1200-0x12FF)", operand.Addr)
	}
}

func TestDirectPageBankWrapWhenLowByteNonzero(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)

	c.D = 0x1234 // low byte nonzero -> pointer fetch bank-wraps even in emulation mode
	c.E = true
	c.X = 0
	c.PC = 0x9000

	mem.SetByte(0x12FF, 0x01, false)
	mem.SetByte(0x1300, 0x02, false) // bank-wrap target, NOT page-wrapped back to 0x1200

	mem.SetByte(0x9000, 0xCB, false) // D+dp = 0x1234+0xCB = 0x12FF

	operand := c.Resolve(mem, ModeDirectIndirectX)

	if operand.Addr != 0x0201 {
		t.Fatalf("Addr = %#06x, want 0x000201 (pointer 0x02,0x01 bank-wrapped past 0x12FF into 0x1300)", operand.Addr)
	}
}

func TestDirectPageBankWrapInNativeModeRegardlessOfD(t *testing.T) {
	c, mem := newMachine()
	mem.SetWord(VectorReset, 0x8000, false)
	Step(c, mem)

	c.D = 0x1200 // low byte zero, but native mode never page-wraps
	c.E = false
	c.X = 0
	c.PC = 0x9000

	mem.SetByte(0x12FF, 0x01, false)
	mem.SetByte(0x1300, 0x02, false) // bank-wrap target, NOT the page-wrap target at 0x1200

	mem.SetByte(0x9000, 0xFF, false) // D+dp = 0x1200+0xFF = 0x12FF

	operand := c.Resolve(mem, ModeDirectIndirectX)

	if operand.Addr != 0x0201 {
		t.Fatalf("Addr = %#06x, want 0x000201 (pointer 0x02,0x01 bank-wrapped past 0x12FF into 0x1300 despite D low byte zero)", operand.Addr)
	}
}
