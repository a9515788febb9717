/*
 * sim816 - integration loop tying CPU, UART and the memory substrate together
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

// Package simulator runs the single-threaded cooperative model a
// complete session needs on top of internal/cpu and internal/uart: the
// CPU always advances first, devices observe the memory it left behind,
// and a device's IRQ line only takes effect on the step after it was
// raised. Breakpoints are sampled at the same step boundary, never
// mid-instruction.
package simulator

import (
	"log/slog"

	"github.com/corewdc/sim816/internal/cpu"
	"github.com/corewdc/sim816/internal/memory"
	"github.com/corewdc/sim816/internal/uart"
)

// Machine bundles one CPU, its memory and the devices wired to it.
type Machine struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	UARTs []*uart.Device

	// BreakHit is set by Run when it stops because the next instruction
	// carries the breakpoint flag; callers should clear it before the
	// next Run call to distinguish a fresh breakpoint stop from a stale one.
	BreakHit bool
}

// New returns a Machine with a fresh CPU and memory, reset and ready for
// a Step loop; callers attach UART devices with AttachUART before running.
func New() *Machine {
	c := cpu.New()
	c.Reset()
	return &Machine{CPU: c, Mem: memory.New()}
}

// AttachUART adds a device to the set Step polls every cycle.
func (m *Machine) AttachUART(d *uart.Device) {
	m.UARTs = append(m.UARTs, d)
}

// AtBreakpoint reports whether the instruction Step is about to fetch
// carries the breakpoint flag, without disturbing it (breakpoints are
// sticky, not one-shot). Run samples this at every step boundary, never
// mid-instruction; a single direct Step call ignores it, so manual
// single-stepping past a breakpoint from a REPL's "step" command still
// works.
func (m *Machine) AtBreakpoint() bool {
	_, _, b := m.Mem.TestFlags(effectiveAddr(m.CPU))
	return b
}

// Step runs exactly one cooperative cycle: the CPU executes first, then
// every attached UART observes the memory the CPU just left behind. A
// UART's returned IRQ line is OR'd onto cpu.IRQ for the *next* Step call,
// matching the one-step IRQ-latency behaviour of the source model.
func (m *Machine) Step() cpu.StepResult {
	if m.CPU.CRASH {
		return cpu.Crash
	}

	res := cpu.Step(m.CPU, m.Mem)

	irq := false
	for _, d := range m.UARTs {
		if d.Step() {
			irq = true
		}
	}
	if irq {
		m.CPU.IRQ = true
	}

	if res == cpu.UnknownOpcode {
		slog.Error("simulator: unknown opcode, CPU halted", "pc", m.CPU.PC, "pbr", m.CPU.PBR)
	}

	return res
}

// Run steps the machine until a breakpoint is about to be executed, the
// CPU halts (STP, Crash or an unknown opcode), or limit steps have run
// (limit <= 0 means unbounded). The breakpoint check happens before the
// instruction it guards executes, so Run leaves PC sitting exactly on
// the breakpointed address.
func (m *Machine) Run(limit int) (steps int, res cpu.StepResult) {
	for limit <= 0 || steps < limit {
		if m.AtBreakpoint() {
			m.BreakHit = true
			return steps, cpu.Ok
		}
		res = m.Step()
		steps++
		if res == cpu.Stp || res == cpu.Crash || res == cpu.UnknownOpcode {
			return steps, res
		}
	}
	return steps, cpu.Ok
}

// effectiveAddr is the 24-bit address Step is about to fetch from, used
// for the breakpoint sample: PBR:PC before the opcode fetch advances PC.
func effectiveAddr(c *cpu.CPU) uint32 {
	return uint32(c.PBR)<<16 | uint32(c.PC)
}
