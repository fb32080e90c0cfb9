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
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Device is a monochrome bitmap display accepting full-frame images,
// the shape of a periph display driver.
type Device interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// Renderer draws the two-line status screen on an injected display.
type Renderer struct {
	dev Device
}

// NewRenderer wraps a display device.
func NewRenderer(dev Device) *Renderer {
	return &Renderer{dev: dev}
}

// Clear blanks the whole raster.
func (r *Renderer) Clear() error {
	bounds := r.dev.Bounds()
	if err := r.dev.Draw(bounds, image1bit.NewVerticalLSB(bounds), image.Point{}); err != nil {
		return fmt.Errorf("failed to clear display: %w", err)
	}
	return nil
}

// DrawText lays out both lines and pushes a single frame to the
// display. Placement outside the raster (oversize fonts) is clipped
// by the image bounds.
func (r *Renderer) DrawText(line1 string, face1 font.Face, line2 string, face2 font.Face) error {
	bounds := r.dev.Bounds()
	p := Layout(line1, line2, FaceMetrics(face1), FaceMetrics(face2), bounds.Dx(), bounds.Dy())

	img := image1bit.NewVerticalLSB(bounds)
	drawString(img, face1, line1, p.Line1)
	drawString(img, face2, line2, p.Line2)

	if err := r.dev.Draw(bounds, img, image.Point{}); err != nil {
		return fmt.Errorf("failed to draw to display: %w", err)
	}
	return nil
}

// drawString places the string's bounding box with its top-left
// corner at the given point, matching how the layout engine measured
// it.
func drawString(dst draw.Image, face font.Face, text string, at image.Point) {
	b, _ := font.BoundString(face, text)
	d := font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{image1bit.On},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(at.X) - b.Min.X,
			Y: fixed.I(at.Y) - b.Min.Y,
		},
	}
	d.DrawString(text)
}
