package uart

import (
	"errors"
	"strconv"

	config "github.com/corewdc/sim816/config/configparser"
)

// registry holds every UART created by a config-file "uart" line, keyed
// by base address, so the REPL front end can look them up without
// reaching back into the config package.
var registry = map[uint32]*Device{}

// Registered returns every UART created from the config file so far, in
// no particular order.
func Registered() []*Device {
	out := make([]*Device, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	return out
}

func init() {
	config.RegisterModel("UART", config.TypeModel, create)
}

// create handles a config line of the form:
//
//	uart <hex-base-addr> port=<n> [loopback]
//
// The device is registered but has no memory to attach to yet; the
// front end calls Attach once it has constructed the shared
// *memory.Memory for the session.
func create(base uint16, _ string, options []config.Option) error {
	var port uint64
	loopback := false
	for _, opt := range options {
		switch opt.Name {
		case "port":
			if opt.EqualOpt == "" {
				return errors.New("uart: port requires a value, e.g. port=6809")
			}
			n, err := strconv.ParseUint(opt.EqualOpt, 10, 16)
			if err != nil {
				return errors.New("uart: bad port value: " + opt.EqualOpt)
			}
			port = n
		case "loopback":
			if opt.EqualOpt != "" {
				return errors.New("uart: loopback takes no value")
			}
			loopback = true
		default:
			return errors.New("uart: unknown option: " + opt.Name)
		}
	}

	d := New(nil, uint32(base))
	if loopback {
		d.mcr = MCRLoopback
	}
	registry[d.Base] = d

	if port != 0 {
		d.pendingPort = int(port)
	}
	return nil
}
