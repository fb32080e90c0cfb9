// MMDVM Display Tools
// Copyright (c) 2025 The WPSD Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MMDVM Display Tools.
//
// MMDVM Display Tools is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MMDVM Display Tools is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MMDVM Display Tools.  If not, see <http://www.gnu.org/licenses/>.

// nextion-text sends status text to the Nextion screen while
// MMDVMHost itself is not running.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wpsd-tools/mmdvm-display/pkg/config"
	"github.com/wpsd-tools/mmdvm-display/pkg/helpers"
	"github.com/wpsd-tools/mmdvm-display/pkg/nextion"
)

const logDir = "/var/log/mmdvm-display"

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [-c | <field> <text value>]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	clearFields := flag.Bool("c", false, "clear all fields and refresh the screen")
	listPorts := flag.Bool("list", false, "print candidate serial devices and exit")
	configPath := flag.String("config", config.DefaultPath, "path to the MMDVMHost config file")
	verbose := flag.Bool("verbose", false, "log debug detail")
	flag.Usage = usage
	flag.Parse()

	helpers.InitLogging(logDir, "nextion-text.log",
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if *listPorts {
		ports, err := helpers.ListSerialPorts()
		if err != nil {
			return err
		}
		for _, p := range ports {
			_, _ = fmt.Println(p)
		}
		return nil
	}

	args := flag.Args()
	if !*clearFields && len(args) == 0 {
		flag.Usage()
		return nil
	}
	if !*clearFields {
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		if !nextion.ValidField(args[0]) {
			_, _ = fmt.Fprintf(os.Stderr, "Unknown field %q, expected one of %v\n",
				args[0], nextion.Fields)
			os.Exit(2)
		}
	}

	st, err := config.Load(*configPath)
	if err != nil {
		// No config means no display overrides; the default port still
		// gets a chance below.
		log.Debug().Err(err).Msg("config not loaded, using defaults")
		st = config.Empty()
	}

	port := config.ResolveDisplayPort(st)
	if !config.PortAvailable(port) {
		// Nothing attached, nothing to do.
		return nil
	}

	sender, err := nextion.OpenSender(port, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sender.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close display port")
		}
	}()

	if *clearFields {
		return sender.ClearAll()
	}
	return sender.SetText(args[0], args[1])
}
