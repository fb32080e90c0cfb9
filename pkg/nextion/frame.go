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

// Package nextion builds and sends the framed commands the Nextion
// touch panel expects when addressed through the MMDVM modem's serial
// multiplexer.
package nextion

import "fmt"

const (
	// BaudRate of the modem serial link.
	BaudRate = 115200

	// mmdvmSerial tags a multiplexed frame as panel traffic.
	mmdvmSerial = 0x80
	frameStart  = 0xE0
)

// Fields are the text slots on the WPSD Nextion layouts, in the order
// ClearAll writes them.
// <https://repo.w0chp.net/WPSD-Dev/WPSD_Nextion/src/branch/main/Nextion_Field_Use.md>
var Fields = []string{"t0", "t1", "t2", "t5", "t20", "t30", "t31", "t32"}

// ValidField reports whether name is one of the known text slots.
func ValidField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// MakeCommand encodes a native Nextion instruction: the UTF-8 command
// string followed by the panel's three-byte terminator.
func MakeCommand(cmd string) []byte {
	out := make([]byte, 0, len(cmd)+3)
	out = append(out, cmd...)
	return append(out, 0xFF, 0xFF, 0xFF)
}

// SetTextCommand formats the panel's text-assignment instruction for a
// field. The value is trusted caller input: an embedded double quote
// is not escaped and corrupts the command.
func SetTextCommand(field, value string) string {
	return fmt.Sprintf("%s.txt=\"%s\"", field, value)
}

// WrapModem wraps a native Nextion frame in the modem's serial
// sub-protocol: start byte, total length including this header, and
// the serial passthrough type.
func WrapModem(frame []byte) []byte {
	out := make([]byte, 0, len(frame)+3)
	out = append(out, frameStart, byte(len(frame)+3), mmdvmSerial)
	return append(out, frame...)
}
