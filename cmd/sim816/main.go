/*
 * sim816 - Main process.
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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	config "github.com/corewdc/sim816/config/configparser"
	"github.com/corewdc/sim816/command/reader"
	"github.com/corewdc/sim816/internal/simulator"
	"github.com/corewdc/sim816/internal/uart"
	logger "github.com/corewdc/sim816/util/logger"

	_ "github.com/corewdc/sim816/config/debugconfig"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("sim816: can't create log file", "file", *optLogFile, "error", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	debug := false
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug))
	slog.SetDefault(Logger)

	Logger.Info("sim816 started")

	m := simulator.New()

	if optConfig != nil && *optConfig != "" {
		if _, err := os.Stat(*optConfig); os.IsNotExist(err) {
			Logger.Error("sim816: configuration file not found", "file", *optConfig)
			os.Exit(1)
		}
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error("sim816: error loading configuration", "error", err)
			os.Exit(1)
		}
	}

	for _, d := range uart.Registered() {
		if err := d.Attach(m.Mem); err != nil {
			Logger.Error("sim816: uart attach failed", "base", d.Base, "error", err)
			os.Exit(1)
		}
		m.AttachUART(d)
	}
	m.ApplyBreakpoints()

	reader.ConsoleReader(m)

	for _, d := range m.UARTs {
		d.Stop()
	}
	Logger.Info("sim816 shut down")
}
