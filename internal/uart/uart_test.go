package uart

import (
	"testing"

	"github.com/corewdc/sim816/internal/memory"
)

const testBase = 0xF000

func TestLoopbackEchoesTHRIntoRBR(t *testing.T) {
	mem := memory.New()
	d := New(mem, testBase)

	mem.SetByte(testBase+OffMCR, MCRLoopback, true)
	d.Step()

	mem.SetByte(testBase+OffRBR, 0x41, true)
	d.Step()

	got := mem.GetByte(testBase+OffRBR, true)
	if got != 0x41 {
		t.Fatalf("RBR after loopback write = %#02x, want 0x41", got)
	}
	lsr := mem.GetByte(testBase+OffLSR, false)
	if lsr&LSRDataReady == 0 {
		t.Fatalf("LSR data-ready bit not set after loopback byte, LSR=%#02x", lsr)
	}
}

func TestRxAvailableRaisesIRQWhenEnabled(t *testing.T) {
	mem := memory.New()
	d := New(mem, testBase)

	mem.SetByte(testBase+OffMCR, MCRLoopback, true)
	mem.SetByte(testBase+OffIER, IERRxAvail, true)
	d.Step()

	mem.SetByte(testBase+OffRBR, 0x55, true)
	irq := d.Step()

	if !irq {
		t.Fatalf("expected IRQ asserted after RX-available with IER.RxAvail set")
	}
	iir := mem.GetByte(testBase+OffIIR, false)
	if iir&0x01 != 0 {
		t.Fatalf("IIR pending bit indicates no interrupt, IIR=%#02x", iir)
	}
	if iir&0x06 != iirCauseRxAvail {
		t.Fatalf("IIR cause bits = %#02x, want RX-available", iir&0x06)
	}
}

func TestNoIRQWithoutEnable(t *testing.T) {
	mem := memory.New()
	d := New(mem, testBase)

	mem.SetByte(testBase+OffMCR, MCRLoopback, true)
	d.Step()

	mem.SetByte(testBase+OffRBR, 0x7A, true)
	irq := d.Step()

	if irq {
		t.Fatalf("expected no IRQ when IER.RxAvail is clear")
	}
}

func TestDLABGatesDivisorLatch(t *testing.T) {
	mem := memory.New()
	d := New(mem, testBase)

	mem.SetByte(testBase+OffLCR, LCRDLAB, true)
	mem.SetByte(testBase+OffRBR, 0x03, true)
	mem.SetByte(testBase+OffIER, 0x00, true)
	d.Step()

	if d.dll != 0x03 {
		t.Fatalf("DLL shadow = %#02x, want 0x03", d.dll)
	}

	mem.SetByte(testBase+OffLCR, 0, true)
	d.Step()
	got := mem.GetByte(testBase+OffRBR, false)
	if got == 0x03 {
		t.Fatalf("RBR still reflects DLL after DLAB cleared")
	}
}

func TestFIFOEnableToggleClearsBuffers(t *testing.T) {
	mem := memory.New()
	d := New(mem, testBase)

	mem.SetByte(testBase+OffMCR, MCRLoopback, true)
	d.Step()
	mem.SetByte(testBase+OffRBR, 0x10, true)
	d.Step()

	if d.rx.Empty() {
		t.Fatalf("expected byte buffered before FIFO toggle")
	}

	mem.SetByte(testBase+OffIIR, 0x01, true) // FCR: enable FIFOs
	d.Step()

	if !d.rx.Empty() {
		t.Fatalf("expected RX FIFO cleared on enable-bit toggle")
	}
}
