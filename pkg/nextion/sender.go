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

package nextion

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// SerialPort defines the serial port operations the sender needs (for
// mocking in tests).
type SerialPort interface {
	Write(p []byte) (n int, err error)
	Close() error
}

// SerialPortFactory creates a serial port connection.
type SerialPortFactory func(path string, mode *serial.Mode) (SerialPort, error)

// DefaultSerialPortFactory is the default factory that opens real
// serial ports.
func DefaultSerialPortFactory(path string, mode *serial.Mode) (SerialPort, error) {
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	return port, nil
}

// Sender writes panel commands to an open modem serial link. Each
// command goes out as exactly one write.
type Sender struct {
	port SerialPort
}

// NewSender wraps an already open port, typically a mock in tests.
func NewSender(port SerialPort) *Sender {
	return &Sender{port: port}
}

// OpenSender opens the modem serial link at path with the fixed
// 115200 8N1 settings MMDVMHost uses.
func OpenSender(path string, factory SerialPortFactory) (*Sender, error) {
	if factory == nil {
		factory = DefaultSerialPortFactory
	}
	port, err := factory(path, &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("port", path).Msg("opened display port")
	return &Sender{port: port}, nil
}

// Close closes the underlying port.
func (s *Sender) Close() error {
	if err := s.port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port: %w", err)
	}
	return nil
}

func (s *Sender) send(frame []byte) error {
	if _, err := s.port.Write(frame); err != nil {
		return fmt.Errorf("failed to write to display port: %w", err)
	}
	return nil
}

// SetText assigns value to a named text field on the panel.
func (s *Sender) SetText(field, value string) error {
	return s.send(WrapModem(MakeCommand(SetTextCommand(field, value))))
}

// Raw sends a native Nextion instruction unchanged.
func (s *Sender) Raw(cmd string) error {
	return s.send(WrapModem(MakeCommand(cmd)))
}

// ClearAll blanks every known text field in declared order, then
// forces a screen refresh. The refresh must be the last frame sent.
func (s *Sender) ClearAll() error {
	for _, field := range Fields {
		if err := s.SetText(field, ""); err != nil {
			return err
		}
	}
	return s.Raw("ref 0")
}
