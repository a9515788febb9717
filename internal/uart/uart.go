/*
 * sim816 - 16C750-compatible UART device
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

// Package uart implements a 16C750-compatible UART memory-mapped at a
// configurable base address, bridging THR/RBR to a single TCP client
// connection. It detects host register accesses through the memory
// substrate's R/W access flags rather than intercepting reads and writes
// directly, so it shares the same byte-level contract any other device
// on the bus would.
package uart

import (
	"errors"
	"log/slog"
	"net"

	"github.com/corewdc/sim816/internal/memory"
)

// Debug category bits, settable from the config file's "debug uart ..."
// line.
const (
	debugIO = 1 << iota
	debugIRQ
)

var debugOption = map[string]int{
	"IO":  debugIO,  // log RX/TX FIFO occupancy once per step
	"IRQ": debugIRQ, // log IIR/trigger decisions
}

var debugMsk int

// Debug enables one debug category by name, matching the vocabulary
// accepted by the config file's debug line.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("uart debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// Register offsets from the device's configured base address.
const (
	OffRBR = 0 // read: RBR / write: THR / DLAB=1: DLL
	OffIER = 1 // DLAB=1: DLM
	OffIIR = 2 // read: IIR / write: FCR
	OffLCR = 3
	OffMCR = 4
	OffLSR = 5
	OffMSR = 6
	OffSCR = 7
	NumRegs = 8
)

// LCR bits.
const LCRDLAB = 1 << 7

// MCR bits.
const MCRLoopback = 1 << 4

// IER bits.
const (
	IERRxAvail = 1 << 0
	IERTxEmpty = 1 << 1
)

// LSR bits.
const (
	LSRDataReady = 1 << 0
	LSRTHRE      = 1 << 5
	LSRTEMT      = 1 << 6
)

// MSR bits.
const MSRDCD = 1 << 7

// IIR cause codes, occupying bits 1-2.
const (
	iirCauseNone    = 0x00
	iirCauseTxEmpty = 0x02
	iirCauseRxAvail = 0x04
)

// rxTriggerTable16 and rxTriggerTable64 are the TL16C750 two-level RX
// FIFO trigger tables, selected by FCR bits 6-7 and the 64-byte mode bit.
var (
	rxTriggerTable16 = [4]int{1, 4, 8, 14}
	rxTriggerTable64 = [4]int{1, 16, 32, 56}
)

// Device is one 16C750-compatible UART.
type Device struct {
	Base uint32 // 24-bit memory-mapped base address

	mem *memory.Memory

	listener *net.TCPListener
	conn     net.Conn
	connClosed bool

	rx, tx fifo
	lastRX uint8 // sticky RBR value when the RX FIFO is empty

	// Shadow state, refreshed from or written back to memory each step.
	ier, lcr, mcr, scr uint8
	dll, dlm           uint8

	fifoEnable bool
	mode64     bool
	rxTrigger  int

	txEmptyLatch bool

	// pendingPort is the listen port requested by the config-file line
	// that created this device, applied once Attach supplies memory.
	pendingPort int
}

// Attach binds a config-created device (see config.go) to the session's
// shared memory, writes a config-requested loopback bit into MCR, and
// opens its listener, if one was requested.
func (d *Device) Attach(mem *memory.Memory) error {
	d.mem = mem
	if d.mcr&MCRLoopback != 0 {
		mem.SetByte(d.Base+OffMCR, d.mcr, false)
	}
	if d.pendingPort != 0 {
		return d.InitPort(d.pendingPort)
	}
	return nil
}

// New returns a UART device memory-mapped at base, backed by mem. Call
// InitPort separately to attach (or decline to attach) a TCP listener.
func New(mem *memory.Memory, base uint32) *Device {
	return &Device{Base: base, mem: mem, rxTrigger: 1}
}

func (d *Device) dlab() bool { return d.lcr&LCRDLAB != 0 }

// Step runs one pass of the per-step protocol (spec §4.3 steps 1-12) and
// returns the UART's IRQ line state for this step.
func (d *Device) Step() bool {
	if debugMsk&debugIO != 0 {
		d.logState("step")
	}
	d.acceptStep()
	d.drainStep()

	d.ier = d.mem.GetByte(d.Base+OffIER, false)
	d.lcr = d.mem.GetByte(d.Base+OffLCR, false)
	d.mcr = d.mem.GetByte(d.Base+OffMCR, false)

	if d.mem.TestAndResetFlags(d.Base+OffIIR, memory.FlagRead) != 0 {
		d.txEmptyLatch = false
	}

	dlab := d.dlab()
	if dlab {
		if d.mem.TestAndResetFlags(d.Base+OffRBR, memory.FlagWrite) != 0 {
			d.dll = d.mem.GetByte(d.Base+OffRBR, false)
		} else {
			d.mem.SetByte(d.Base+OffRBR, d.dll, false)
		}
		if d.mem.TestAndResetFlags(d.Base+OffIER, memory.FlagWrite) != 0 {
			d.dlm = d.mem.GetByte(d.Base+OffIER, false)
		} else {
			d.mem.SetByte(d.Base+OffIER, d.dlm, false)
		}
	} else {
		if d.mem.TestAndResetFlags(d.Base+OffRBR, memory.FlagWrite) != 0 {
			b := d.mem.GetByte(d.Base+OffRBR, false)
			d.txEmptyLatch = false
			if d.mcr&MCRLoopback != 0 {
				d.rx.Push(b)
			} else if d.conn != nil {
				d.sendByte(b)
			}
			if d.tx.Empty() {
				d.txEmptyLatch = true
			}
		}

		if d.mem.TestAndResetFlags(d.Base+OffRBR, memory.FlagRead) != 0 && !d.rx.Empty() {
			d.lastRX = d.rx.Pop()
		}
		var peek uint8
		if !d.rx.Empty() {
			peek = d.rx.Peek()
		} else {
			peek = d.lastRX
		}
		d.mem.SetByte(d.Base+OffRBR, peek, false)
	}

	if d.mem.TestAndResetFlags(d.Base+OffIIR, memory.FlagWrite) != 0 {
		fcr := d.mem.GetByte(d.Base+OffIIR, false)
		newEnable := fcr&0x01 != 0
		if newEnable != d.fifoEnable {
			d.rx.Clear()
			d.tx.Clear()
		}
		if fcr&0x02 != 0 {
			d.rx.Clear()
		}
		if fcr&0x04 != 0 {
			d.tx.Clear()
		}
		d.fifoEnable = newEnable
		d.mode64 = fcr&0x20 != 0
		d.rxTrigger = d.triggerLevel((fcr >> 6) & 0x3)
	}

	var lsr uint8
	if !d.rx.Empty() {
		lsr |= LSRDataReady
	}
	lsr |= LSRTHRE | LSRTEMT
	d.mem.SetByte(d.Base+OffLSR, lsr, false)

	var iir uint8
	irq := false
	switch {
	case !d.rx.Empty() && (!d.fifoEnable || d.rx.Len() >= d.rxTrigger):
		iir = iirCauseRxAvail
		irq = d.ier&IERRxAvail != 0
	case d.txEmptyLatch:
		iir = iirCauseTxEmpty
		irq = d.ier&IERTxEmpty != 0
	default:
		iir = iirCauseNone
	}
	if d.fifoEnable {
		iir |= 0xC0
	}
	if d.mode64 {
		iir |= 0x20
	}
	if !irq {
		iir |= 0x01
	}
	d.mem.SetByte(d.Base+OffIIR, iir, false)
	if debugMsk&debugIRQ != 0 && irq {
		slog.Debug("uart: irq asserted", "base", d.Base, "iir", iir)
	}

	var msr uint8
	if d.conn != nil {
		msr |= MSRDCD
	}
	d.mem.SetByte(d.Base+OffMSR, msr, false)

	d.teardownStep()

	return irq
}

func (d *Device) triggerLevel(sel uint8) int {
	if d.mode64 {
		return rxTriggerTable64[sel]
	}
	return rxTriggerTable16[sel]
}

// Connected reports whether a client is currently attached, for use by
// front ends that want to show link status without reading MSR directly.
func (d *Device) Connected() bool { return d.conn != nil }

func (d *Device) logState(msg string) {
	slog.Debug("uart: "+msg, "base", d.Base, "rx_len", d.rx.Len(), "tx_len", d.tx.Len())
}
