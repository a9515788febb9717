/*
 * sim816 - CPU state snapshot codec
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

// Package snapshot implements the single-line textual CPU state codec:
// a fixed field order, hex for registers and banks, decimal for booleans
// and the cycle count, and an all-or-nothing parse.
package snapshot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corewdc/sim816/internal/cpu"
)

// MaxFileSize is the largest snapshot file this codec will parse, per the
// external CPU-snapshot-file interface.
const MaxFileSize = 1024

// fieldOrder is the fixed field order of the textual form.
var fieldOrder = []string{
	"C", "X", "Y", "SP", "D", "DBR", "PBR", "PC",
	"RST", "IRQ", "NMI", "STP", "CRASH",
	"PSC", "PSZ", "PSI", "PSD", "PSXB", "PSM", "PSV", "PSN", "PSE",
	"cycles",
}

// Serialize renders c in the documented field order.
func Serialize(c *cpu.CPU) string {
	var b strings.Builder
	b.WriteByte('{')
	fields := map[string]string{
		"C":      hex16(c.C),
		"X":      hex16(c.X),
		"Y":      hex16(c.Y),
		"SP":     hex16(c.SP),
		"D":      hex16(c.D),
		"DBR":    hex8(c.DBR),
		"PBR":    hex8(c.PBR),
		"PC":     hex16(c.PC),
		"RST":    boolDigit(c.RST),
		"IRQ":    boolDigit(c.IRQ),
		"NMI":    boolDigit(c.NMI),
		"STP":    boolDigit(c.STP),
		"CRASH":  boolDigit(c.CRASH),
		"PSC":    boolDigit(c.GetFlag(cpu.FlagC)),
		"PSZ":    boolDigit(c.GetFlag(cpu.FlagZ)),
		"PSI":    boolDigit(c.GetFlag(cpu.FlagI)),
		"PSD":    boolDigit(c.GetFlag(cpu.FlagD)),
		"PSXB":   boolDigit(c.GetFlag(cpu.FlagX)),
		"PSM":    boolDigit(c.GetFlag(cpu.FlagM)),
		"PSV":    boolDigit(c.GetFlag(cpu.FlagV)),
		"PSN":    boolDigit(c.GetFlag(cpu.FlagN)),
		"PSE":    boolDigit(c.E),
		"cycles": strconv.FormatUint(c.Cycles, 10),
	}
	for i, name := range fieldOrder {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s:%s", name, fields[name])
	}
	b.WriteByte('}')
	return b.String()
}

// Parse decodes s and writes the result into out, only on complete
// success: a malformed or incomplete snapshot leaves out untouched.
func Parse(s string, out *cpu.CPU) error {
	if len(s) > MaxFileSize {
		return fmt.Errorf("snapshot: input is %d bytes, over the %d-byte limit", len(s), MaxFileSize)
	}
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")

	values := make(map[string]string, len(fieldOrder))
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return fmt.Errorf("snapshot: malformed field %q", part)
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		values[key] = val
	}

	for _, name := range fieldOrder {
		if _, ok := values[name]; !ok {
			return fmt.Errorf("snapshot: missing field %q", name)
		}
	}

	c16, err := parseHex16(values["C"])
	if err != nil {
		return err
	}
	x, err := parseHex16(values["X"])
	if err != nil {
		return err
	}
	y, err := parseHex16(values["Y"])
	if err != nil {
		return err
	}
	sp, err := parseHex16(values["SP"])
	if err != nil {
		return err
	}
	d, err := parseHex16(values["D"])
	if err != nil {
		return err
	}
	dbr, err := parseHex8(values["DBR"])
	if err != nil {
		return err
	}
	pbr, err := parseHex8(values["PBR"])
	if err != nil {
		return err
	}
	pc, err := parseHex16(values["PC"])
	if err != nil {
		return err
	}
	rst, err := parseBool(values["RST"])
	if err != nil {
		return err
	}
	irq, err := parseBool(values["IRQ"])
	if err != nil {
		return err
	}
	nmi, err := parseBool(values["NMI"])
	if err != nil {
		return err
	}
	stp, err := parseBool(values["STP"])
	if err != nil {
		return err
	}
	crash, err := parseBool(values["CRASH"])
	if err != nil {
		return err
	}

	var p uint8
	flagBits := []struct {
		name string
		mask uint8
	}{
		{"PSC", cpu.FlagC}, {"PSZ", cpu.FlagZ}, {"PSI", cpu.FlagI}, {"PSD", cpu.FlagD},
		{"PSXB", cpu.FlagX}, {"PSM", cpu.FlagM}, {"PSV", cpu.FlagV}, {"PSN", cpu.FlagN},
	}
	for _, fb := range flagBits {
		set, err := parseBool(values[fb.name])
		if err != nil {
			return err
		}
		if set {
			p |= fb.mask
		}
	}
	e, err := parseBool(values["PSE"])
	if err != nil {
		return err
	}
	cycles, err := strconv.ParseUint(values["cycles"], 10, 64)
	if err != nil {
		return fmt.Errorf("snapshot: bad cycles value %q: %w", values["cycles"], err)
	}

	out.C = c16
	out.X = x
	out.Y = y
	out.SP = sp
	out.D = d
	out.DBR = dbr
	out.PBR = pbr
	out.PC = pc
	out.RST = rst
	out.IRQ = irq
	out.NMI = nmi
	out.STP = stp
	out.CRASH = crash
	out.P = p
	out.E = e
	out.Cycles = cycles
	return nil
}

func hex16(v uint16) string { return strconv.FormatUint(uint64(v), 16) }
func hex8(v uint8) string   { return strconv.FormatUint(uint64(v), 16) }

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("snapshot: bad hex value %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseHex8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("snapshot: bad hex value %q: %w", s, err)
	}
	return uint8(v), nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("snapshot: bad boolean value %q", s)
	}
}
