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

package config

import (
	"os"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultDisplayPort is the board's primary UART, used when the
	// config names no display at all.
	DefaultDisplayPort = "/dev/ttyAMA0"

	// DriverPort is the pseudo-port MMDVMHost uses when the Nextion
	// panel is handled by the NextionDriver daemon. It indirects to
	// NextionDriver.Port.
	DriverPort = "/dev/ttyNextionDriver"

	// ModemPort means the panel hangs off the modem's own UART and the
	// real device lives in Modem.UARTPort.
	ModemPort = "modem"
)

// ResolveDisplayPort walks the layered MMDVMHost config to find the
// serial device the Nextion panel is attached to. Missing sections and
// keys never abort resolution, they just leave the current candidate
// in place.
func ResolveDisplayPort(st *Store) string {
	port := DefaultDisplayPort

	if display, ok := st.Lookup("General", "Display"); ok && display == "Nextion" {
		if nextionPort, ok := st.Lookup("Nextion", "Port"); ok {
			if nextionPort == DriverPort {
				if driverPort, ok := st.Lookup("NextionDriver", "Port"); ok && driverPort != "" {
					port = driverPort
				} else {
					port = nextionPort
				}
			} else {
				port = nextionPort
			}
		}
	}

	if port == ModemPort {
		if modemPort, ok := st.Lookup("Modem", "UARTPort"); ok && modemPort != "" {
			port = modemPort
		}
	}

	return port
}

// PortAvailable reports whether the resolved device path exists. A
// missing device means no display is attached, which callers treat as
// nothing to do rather than an error.
func PortAvailable(path string) bool {
	if _, err := os.Stat(path); err != nil {
		log.Debug().Str("port", path).Msg("display port not present")
		return false
	}
	return true
}
