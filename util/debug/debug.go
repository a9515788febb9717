/*
 * S370 - Log debug data to a file
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

package debug

import (
	"fmt"
	"os"
	"strconv"

	config "github.com/corewdc/sim816/config/configparser"
)

var logFile *os.File

// Generic debug message, gated by the subsystem's own mask against the
// category bits the config file's debug line enabled for it.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(out(), module+": "+format+"\n", a...)
	}
}

// DebugAddrf is the per-device variant: message is prefixed with the
// device's 24-bit base address instead of a bare module name (the UART,
// keyed by its memory-mapped base rather than a channel/unit number).
func DebugAddrf(base uint32, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		addr := strconv.FormatUint(uint64(base), 16)
		fmt.Fprintf(out(), addr+": "+format+"\n", a...)
	}
}

func out() *os.File {
	if logFile != nil {
		return logFile
	}
	return os.Stderr
}

// register a device on initialize.
func init() {
	config.RegisterOption("DEBUGFILE", create)
}

// Create the debug log file named on a DEBUGFILE config line.
func create(_ uint16, fileName string, _ []config.Option) error {
	if logFile != nil {
		return fmt.Errorf("Can't have more then one debug file, previous: %s", logFile.Name())
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", fileName)
	}

	logFile = file
	return nil
}
