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
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type fakeDevice struct {
	bounds  image.Rectangle
	frames  []image.Image
	drawErr error
}

func (d *fakeDevice) Bounds() image.Rectangle {
	return d.bounds
}

func (d *fakeDevice) Draw(_ image.Rectangle, src image.Image, _ image.Point) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.frames = append(d.frames, src)
	return nil
}

func litPixels(img image.Image) int {
	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) == image1bit.On {
				lit++
			}
		}
	}
	return lit
}

func TestRendererClear(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{bounds: image.Rect(0, 0, 128, 64)}
	renderer := NewRenderer(dev)

	require.NoError(t, renderer.Clear())
	require.Len(t, dev.frames, 1)
	assert.Zero(t, litPixels(dev.frames[0]), "cleared frame must be fully dark")
}

func TestRendererDrawText(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{bounds: image.Rect(0, 0, 128, 64)}
	renderer := NewRenderer(dev)

	err := renderer.DrawText("MMDVM", basicfont.Face7x13, "Stopped", basicfont.Face7x13)
	require.NoError(t, err)

	require.Len(t, dev.frames, 1, "one full frame per draw")
	assert.Positive(t, litPixels(dev.frames[0]))
	assert.Equal(t, dev.bounds, dev.frames[0].Bounds())
}

func TestRendererDrawError(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{
		bounds:  image.Rect(0, 0, 128, 64),
		drawErr: errors.New("bus fault"),
	}
	renderer := NewRenderer(dev)

	require.Error(t, renderer.Clear())
	require.Error(t, renderer.DrawText("a", basicfont.Face7x13, "b", basicfont.Face7x13))
}
