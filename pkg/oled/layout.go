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

// Package oled lays out and renders two lines of text on a small
// monochrome raster.
package oled

import "image"

// Metrics reports the rendered extents of a text string for some
// fixed font and size.
type Metrics func(text string) (width, height int)

// Placement holds the top-left pixel position of each text line.
type Placement struct {
	Line1 image.Point
	Line2 image.Point
}

// Layout centers two text lines horizontally and distributes them
// vertically inside a width x height raster. When the lines do not
// fit with even spacing it degrades step by step: zero minimum
// spacing, then packing from the top, then pinning the second line to
// the bottom edge. With fonts too tall for the raster the result can
// still fall outside bounds, which the renderer clips.
func Layout(line1, line2 string, m1, m2 Metrics, width, height int) Placement {
	w1, h1 := m1(line1)
	w2, h2 := m2(line2)

	x1 := max(0, (width-w1)/2)
	x2 := max(0, (width-w2)/2)

	total := h1 + h2
	spacing := max(1, (height-total)/3)
	y1 := spacing
	y2 := y1 + h1 + spacing
	if y2+h2 > height {
		spacing = max(0, (height-total)/3)
		y1, y2 = spacing, y1+h1+spacing
		if y2+h2 > height {
			y1, y2 = 0, h1+1
			if y2+h2 > height {
				y2 = height - h2
				y1 = max(0, y2-h1-1)
			}
		}
	}

	return Placement{
		Line1: image.Pt(x1, y1),
		Line2: image.Pt(x2, y2),
	}
}
