/*
 * S370 - Command reader.
 *
 * Copyright 2024, Richard Cornwell
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

// Package reader implements the interactive front end's command loop: a
// fixed, tiny vocabulary (step, run, break, reset, mem, quit) over a
// *simulator.Machine, not a general command/expression parser.
package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/corewdc/sim816/internal/cpu"
	"github.com/corewdc/sim816/internal/disassemble"
	"github.com/corewdc/sim816/internal/memory"
	"github.com/corewdc/sim816/internal/simulator"
	"github.com/corewdc/sim816/internal/snapshot"
)

var commands = []string{"step", "run", "break", "reset", "mem", "quit", "help"}

// ConsoleReader drives the REPL against m until the user quits or aborts
// (Ctrl-D/Ctrl-C). Each command is processed synchronously; nothing here
// runs the machine between prompts.
func ConsoleReader(m *simulator.Machine) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, c := range commands {
			if strings.HasPrefix(c, partial) {
				out = append(out, c)
			}
		}
		return out
	})

	for {
		text, err := line.Prompt("sim816> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("reader: error reading line", "error", err)
			return
		}
		line.AppendHistory(text)

		quit, err := dispatch(m, text)
		if err != nil {
			fmt.Println("Error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

func dispatch(m *simulator.Machine, text string) (quit bool, err error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "step":
		n := 1
		if len(fields) > 1 {
			n, err = strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("step: bad count %q", fields[1])
			}
		}
		for i := 0; i < n; i++ {
			res := m.Step()
			if res != cpu.Ok {
				fmt.Printf("stopped: %s\n", stepResultString(res))
				break
			}
		}
		printState(m)

	case "run":
		limit := 0
		if len(fields) > 1 {
			limit, err = strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("run: bad step limit %q", fields[1])
			}
		}
		steps, res := m.Run(limit)
		reason := stepResultString(res)
		if m.BreakHit {
			reason = "breakpoint"
			m.BreakHit = false
		}
		fmt.Printf("ran %d steps, stopped: %s\n", steps, reason)
		printState(m)

	case "break":
		if len(fields) != 2 {
			return false, errors.New("break: usage: break <hex-addr>")
		}
		addr, perr := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 24)
		if perr != nil {
			return false, fmt.Errorf("break: bad address %q", fields[1])
		}
		m.Mem.SetFlags(uint32(addr), memory.FlagBreakpoint)
		fmt.Printf("breakpoint set at $%06X\n", addr)

	case "reset":
		m.CPU.Reset()
		fmt.Println("reset")

	case "mem":
		if len(fields) != 2 {
			return false, errors.New("mem: usage: mem <hex-addr>")
		}
		addr, perr := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 24)
		if perr != nil {
			return false, fmt.Errorf("mem: bad address %q", fields[1])
		}
		fmt.Printf("$%06X: %02X\n", addr, m.Mem.GetByte(uint32(addr), false))

	case "quit", "exit":
		return true, nil

	case "help":
		fmt.Println("commands: step [n], run [limit], break <addr>, reset, mem <addr>, quit")

	default:
		return false, errors.New("unknown command: " + fields[0])
	}
	return false, nil
}

// printState prints the disassembly of the instruction PC is about to
// fetch followed by the machine's snapshot line, so the REPL
// always shows what will execute next alongside the raw register dump.
func printState(m *simulator.Machine) {
	c := m.CPU
	addr := uint32(c.PBR)<<16 | uint32(c.PC)
	text, _ := disassemble.DisassembleAt(m.Mem, addr, c.AccIs8Bit(), c.IndexIs8Bit())
	fmt.Printf("%06X: %s\n", addr, text)
	fmt.Println(snapshot.Serialize(c))
}

func stepResultString(res cpu.StepResult) string {
	switch res {
	case cpu.Ok:
		return "ok"
	case cpu.UnknownOpcode:
		return "unknown opcode"
	case cpu.Stp:
		return "stopped (STP)"
	case cpu.Crash:
		return "crashed"
	default:
		return "?"
	}
}
