package simulator

import (
	config "github.com/corewdc/sim816/config/configparser"
	"github.com/corewdc/sim816/internal/memory"
)

// breakpoints collects every address named by a config-file "breakpoint"
// line, applied once the session's Machine exists (see ApplyBreakpoints).
var breakpoints []uint32

func init() {
	config.RegisterModel("BREAKPOINT", config.TypeModel, registerBreakpoint)
}

// registerBreakpoint handles a config line of the form:
//
//	breakpoint <hex-addr>
func registerBreakpoint(addr uint16, _ string, _ []config.Option) error {
	breakpoints = append(breakpoints, uint32(addr))
	return nil
}

// ApplyBreakpoints sets the breakpoint flag on every address a config file
// requested, once m.Mem exists to receive it.
func (m *Machine) ApplyBreakpoints() {
	for _, addr := range breakpoints {
		m.Mem.SetFlags(addr, memory.FlagBreakpoint)
	}
}
