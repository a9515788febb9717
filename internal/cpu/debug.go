package cpu

import "errors"

// Debug category bits, settable from the config file's "debug cpu ..."
// line; each gates a class of slog.Debug call in Step.
const (
	debugInst = 1 << iota
	debugIRQ
	debugStack
)

var debugOption = map[string]int{
	"INST":  debugInst,  // log every fetched opcode
	"IRQ":   debugIRQ,   // log reset/NMI/IRQ servicing
	"STACK": debugStack, // accepted, but no push/pull logging is emitted
}

var debugMsk int

// Debug enables one debug category by name, matching the vocabulary
// accepted by the config file's debug line.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("cpu debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}
