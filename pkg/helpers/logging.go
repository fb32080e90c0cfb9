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

// Package helpers holds small pieces of glue shared by the display
// tools.
package helpers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging configures the global logger with a small rotating file
// log plus any extra writers, typically a console writer on stderr so
// config warnings reach the invoking user. A log dir that cannot be
// created is not fatal; the tools are run from scripts that may not
// have one.
func InitLogging(logDir, logFile string, extra []io.Writer) {
	var writers []io.Writer
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o750); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(logDir, logFile),
				MaxSize:    1,
				MaxBackups: 2,
			})
		}
	}
	writers = append(writers, extra...)

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
		return
	}

	log.Logger = log.Output(io.MultiWriter(writers...)).
		With().Timestamp().Logger()
}
