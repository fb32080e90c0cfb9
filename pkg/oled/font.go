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

package oled

import (
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is the DejaVu font shipped on Raspberry Pi OS.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// LoadFace opens a TrueType font at the given pixel size. Any failure
// falls back to the built-in fixed 7x13 face so the tool can always
// draw something.
func LoadFace(path string, size int) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("font", path).Msg("font not readable, using builtin face")
		return basicfont.Face7x13
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("font", path).Msg("font not parsable, using builtin face")
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Warn().Err(err).Str("font", path).Msg("face creation failed, using builtin face")
		return basicfont.Face7x13
	}
	return face
}

// FaceMetrics adapts a font face to the layout engine's measurement
// capability using the tight bounding box of the rendered string.
func FaceMetrics(face font.Face) Metrics {
	return func(text string) (int, int) {
		b, _ := font.BoundString(face, text)
		return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
	}
}
