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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ScreenType identifies the OLED controller behind MMDVMHost's
// numeric OLED.Type setting.
type ScreenType int

const (
	// ScreenSSD1306 is OLED.Type 3, a 128x64 SSD1306 panel.
	ScreenSSD1306 ScreenType = iota
	// ScreenSH1106 is OLED.Type 6, a 128x64 SH1106 panel.
	ScreenSH1106
)

func (t ScreenType) String() string {
	switch t {
	case ScreenSSD1306:
		return "ssd1306"
	case ScreenSH1106:
		return "sh1106"
	default:
		return "unknown"
	}
}

// DefaultOledAddress is the usual 7-bit I2C address for both supported
// panels.
const DefaultOledAddress uint16 = 0x3C

var (
	ErrOledSectionMissing = errors.New("missing [OLED] section")
	ErrOledTypeMissing    = errors.New("missing Type in [OLED] section")
	ErrOledTypeInvalid    = errors.New("unsupported OLED Type")
)

// OledSettings is the validated OLED configuration.
type OledSettings struct {
	Screen  ScreenType
	Address uint16
	Rotate  int
}

// ResolveOled reads and validates the [OLED] section. The section and
// its Type key are mandatory and an unsupported Type fails resolution.
// A malformed Address or Rotate value only logs a warning and keeps
// the default.
func ResolveOled(st *Store) (OledSettings, error) {
	sec, err := st.file.GetSection("OLED")
	if err != nil {
		return OledSettings{}, ErrOledSectionMissing
	}

	if !sec.HasKey("Type") {
		return OledSettings{}, ErrOledTypeMissing
	}

	out := OledSettings{Address: DefaultOledAddress}

	typeVal := strings.TrimSpace(sec.Key("Type").String())
	typeInt, err := strconv.Atoi(typeVal)
	if err != nil {
		return OledSettings{}, fmt.Errorf("%w: %q", ErrOledTypeInvalid, typeVal)
	}
	switch typeInt {
	case 3:
		out.Screen = ScreenSSD1306
	case 6:
		out.Screen = ScreenSH1106
	default:
		return OledSettings{}, fmt.Errorf("%w: %d", ErrOledTypeInvalid, typeInt)
	}

	if addrVal, ok := st.Lookup("OLED", "Address"); ok {
		addr, err := strconv.ParseUint(strings.TrimPrefix(addrVal, "0x"), 16, 7)
		if err != nil {
			log.Warn().Str("address", addrVal).
				Msgf("invalid OLED address, using default 0x%02X", out.Address)
		} else {
			out.Address = uint16(addr)
		}
	}

	if rotVal, ok := st.Lookup("OLED", "Rotate"); ok {
		rot, err := strconv.Atoi(rotVal)
		if err != nil || (rot != 0 && rot != 1) {
			log.Warn().Str("rotate", rotVal).Msg("invalid OLED rotate value, using 0")
		} else {
			out.Rotate = rot
		}
	}

	return out, nil
}
