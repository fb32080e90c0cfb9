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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.bug.st/serial"
)

// serialPrefixes are the device names a Nextion panel or MMDVM modem
// shows up under on a Pi.
var serialPrefixes = []string{"ttyUSB", "ttyACM", "ttyAMA"}

func getLinuxList() ([]string, error) {
	path := "/dev"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read /dev directory: %w", err)
	}

	devices := make([]string, 0, len(entries))
	for _, v := range entries {
		if v.IsDir() {
			continue
		}
		for _, prefix := range serialPrefixes {
			if strings.HasPrefix(v.Name(), prefix) {
				devices = append(devices, filepath.Join(path, v.Name()))
				break
			}
		}
	}

	return devices, nil
}

// ListSerialPorts returns candidate serial devices a display could be
// attached to, to help users fill in the Nextion.Port setting.
func ListSerialPorts() ([]string, error) {
	if runtime.GOOS == "linux" {
		return getLinuxList()
	}
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports list: %w", err)
	}
	return ports, nil
}
