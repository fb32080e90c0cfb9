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

// Package ssd1xxx drives SSD1306 and SH1106 monochrome OLED
// controllers over I2C. The two controllers share most of their
// command set; SH1106 only supports page addressing and maps its
// 132-column RAM with the 128 visible columns offset by two.
package ssd1xxx

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Controller selects the command variant used during init and frame
// writes.
type Controller int

const (
	SSD1306 Controller = iota
	SH1106
)

func (c Controller) String() string {
	switch c {
	case SSD1306:
		return "SSD1306"
	case SH1106:
		return "SH1106"
	default:
		return "unknown"
	}
}

const (
	cmdSetContrast       = 0x81
	cmdSetChargePump     = 0x8D
	cmdSetMemoryMode     = 0x20
	cmdSetSegmentRemapOn = 0xA1
	cmdSetSegmentRemap   = 0xA0
	cmdSetDisplayResume  = 0xA4
	cmdSetNormalDisplay  = 0xA6
	cmdSetMultiplex      = 0xA8
	cmdSetDCDC           = 0xAD
	cmdSetDisplayOff     = 0xAE
	cmdSetDisplayOn      = 0xAF
	cmdSetPage           = 0xB0
	cmdSetComScanInc     = 0xC0
	cmdSetComScanDec     = 0xC8
	cmdSetDisplayOffset  = 0xD3
	cmdSetDisplayClock   = 0xD5
	cmdSetPrecharge      = 0xD9
	cmdSetComPins        = 0xDA
	cmdSetVComDetect     = 0xDB
	cmdSetStartLine      = 0x40
	cmdSetLowColumn      = 0x00
	cmdSetHighColumn     = 0x10

	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// DefaultAddr is the usual I2C address for both controllers.
const DefaultAddr uint16 = 0x3C

// Opts configures the device geometry and orientation.
type Opts struct {
	W          int
	H          int
	Addr       uint16
	Rotated    bool // rotate output by 180 degrees
	Controller Controller
}

// Dev is an open handle to the display controller.
type Dev struct {
	c         *i2c.Dev
	rect      image.Rectangle
	colOffset int
	ctrl      Controller
}

// NewI2C opens and initializes the display on the given bus.
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts.W <= 0 || opts.H <= 0 || opts.H%8 != 0 {
		return nil, errors.New("ssd1xxx: invalid display geometry")
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	d := &Dev{
		c:    &i2c.Dev{Bus: bus, Addr: addr},
		rect: image.Rect(0, 0, opts.W, opts.H),
		ctrl: opts.Controller,
	}
	if opts.Controller == SH1106 {
		// 132-column RAM, 128 visible columns centered.
		d.colOffset = 2
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1xxx.Dev{%s, %dx%d}", d.ctrl, d.rect.Dx(), d.rect.Dy())
}

// Bounds implements the display device contract.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

func (d *Dev) init(opts *Opts) error {
	segmentRemap := byte(cmdSetSegmentRemapOn)
	comScan := byte(cmdSetComScanDec)
	if opts.Rotated {
		segmentRemap = cmdSetSegmentRemap
		comScan = cmdSetComScanInc
	}

	init := []byte{
		cmdSetDisplayOff,
		cmdSetDisplayClock, 0x80,
		cmdSetMultiplex, byte(opts.H - 1),
		cmdSetDisplayOffset, 0x00,
		cmdSetStartLine,
	}
	if opts.Controller == SH1106 {
		// Internal DC-DC charge pump.
		init = append(init, cmdSetDCDC, 0x8B)
	} else {
		init = append(init,
			cmdSetChargePump, 0x14,
			cmdSetMemoryMode, 0x02, // page addressing
		)
	}
	init = append(init,
		segmentRemap,
		comScan,
		cmdSetComPins, 0x12,
		cmdSetContrast, 0x80,
		cmdSetPrecharge, 0x22,
		cmdSetVComDetect, 0x40,
		cmdSetDisplayResume,
		cmdSetNormalDisplay,
		cmdSetDisplayOn,
	)
	if err := d.command(init...); err != nil {
		return fmt.Errorf("ssd1xxx: init failed: %w", err)
	}
	return nil
}

func (d *Dev) command(cmds ...byte) error {
	buf := make([]byte, 0, len(cmds)+1)
	buf = append(buf, ctrlCommand)
	buf = append(buf, cmds...)
	if _, err := d.c.Write(buf); err != nil {
		return fmt.Errorf("ssd1xxx: command write failed: %w", err)
	}
	return nil
}

func (d *Dev) data(b []byte) error {
	buf := make([]byte, 0, len(b)+1)
	buf = append(buf, ctrlData)
	buf = append(buf, b...)
	if _, err := d.c.Write(buf); err != nil {
		return fmt.Errorf("ssd1xxx: data write failed: %w", err)
	}
	return nil
}

// Draw pushes a full frame to the controller RAM. The source is
// converted to the controller's vertical-LSB page layout if needed.
// Both controllers are written page by page, which is the only mode
// SH1106 supports.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	img, ok := src.(*image1bit.VerticalLSB)
	if !ok || img.Bounds() != d.rect {
		img = image1bit.NewVerticalLSB(d.rect)
		draw.Draw(img, r, src, sp, draw.Src)
	}

	w := d.rect.Dx()
	pages := d.rect.Dy() / 8
	for page := 0; page < pages; page++ {
		if err := d.command(
			cmdSetPage|byte(page),
			cmdSetLowColumn|byte(d.colOffset&0x0F),
			cmdSetHighColumn|byte(d.colOffset>>4),
		); err != nil {
			return err
		}
		if err := d.data(img.Pix[page*w : (page+1)*w]); err != nil {
			return err
		}
	}
	return nil
}

// Halt turns the display off.
func (d *Dev) Halt() error {
	return d.command(cmdSetDisplayOff)
}
