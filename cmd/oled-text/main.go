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

// oled-text shows a two line status message on the I2C OLED while
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
	"github.com/wpsd-tools/mmdvm-display/pkg/oled"
	"github.com/wpsd-tools/mmdvm-display/pkg/oled/ssd1xxx"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

const (
	logDir = "/var/log/mmdvm-display"

	// Both supported panels are 128x64.
	displayWidth  = 128
	displayHeight = 64

	// The panel hangs off the Pi's primary I2C bus.
	i2cBusName = "1"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	text1 := flag.String("text1", "", "text for line 1")
	size1 := flag.Int("size1", 12, "font size for line 1")
	text2 := flag.String("text2", "", "text for line 2")
	size2 := flag.Int("size2", 12, "font size for line 2")
	clearScreen := flag.Bool("clear", false, "clear the display")
	configPath := flag.String("config", config.DefaultPath, "path to the MMDVMHost config file")
	fontPath := flag.String("font", oled.DefaultFontPath, "TrueType font to render with")
	verbose := flag.Bool("verbose", false, "log debug detail")
	flag.Parse()

	if len(os.Args) == 1 {
		flag.Usage()
		return nil
	}

	helpers.InitLogging(logDir, "oled-text.log",
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if !*clearScreen {
		if *text1 == "" || *text2 == "" {
			_, _ = fmt.Fprintln(os.Stderr, "--text1 and --text2 are required unless --clear is given")
			os.Exit(2)
		}
		if *size1 <= 0 || *size2 <= 0 {
			_, _ = fmt.Fprintln(os.Stderr, "--size1 and --size2 must be positive")
			os.Exit(2)
		}
	}

	st, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	settings, err := config.ResolveOled(st)
	if err != nil {
		return fmt.Errorf("failed to resolve OLED config: %w", err)
	}
	log.Debug().Stringer("screen", settings.Screen).
		Uint16("address", settings.Address).Int("rotate", settings.Rotate).
		Msg("resolved OLED config")

	if _, err = host.Init(); err != nil {
		return fmt.Errorf("failed to init host drivers: %w", err)
	}
	bus, err := i2creg.Open(i2cBusName)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close I2C bus")
		}
	}()

	ctrl := ssd1xxx.SSD1306
	if settings.Screen == config.ScreenSH1106 {
		ctrl = ssd1xxx.SH1106
	}
	dev, err := ssd1xxx.NewI2C(bus, &ssd1xxx.Opts{
		W:          displayWidth,
		H:          displayHeight,
		Addr:       settings.Address,
		Rotated:    settings.Rotate == 1,
		Controller: ctrl,
	})
	if err != nil {
		return fmt.Errorf("failed to init display at 0x%02X: %w", settings.Address, err)
	}

	renderer := oled.NewRenderer(dev)
	if *clearScreen {
		return renderer.Clear()
	}
	return renderer.DrawText(
		*text1, oled.LoadFace(*fontPath, *size1),
		*text2, oled.LoadFace(*fontPath, *size2),
	)
}
