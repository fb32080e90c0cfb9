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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCommand(t *testing.T) {
	t.Parallel()

	frame := MakeCommand("ref 0")
	assert.Equal(t, []byte{'r', 'e', 'f', ' ', '0', 0xFF, 0xFF, 0xFF}, frame)
}

func TestMakeCommandEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF}, MakeCommand(""))
}

func TestSetTextCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `t0.txt="HELLO"`, SetTextCommand("t0", "HELLO"))
	assert.Equal(t, `t32.txt=""`, SetTextCommand("t32", ""))
}

func TestSetTextCommandDoesNotEscapeQuotes(t *testing.T) {
	t.Parallel()

	// Values are trusted caller input; an embedded quote passes
	// through verbatim and corrupts the command on the panel.
	assert.Equal(t, `t0.txt="say "hi""`, SetTextCommand("t0", `say "hi"`))
}

func TestWrapModem(t *testing.T) {
	t.Parallel()

	frame := WrapModem(MakeCommand(SetTextCommand("t0", "HELLO")))

	want := []byte{
		0xE0, 0x14, 0x80,
		't', '0', '.', 't', 'x', 't', '=', '"', 'H', 'E', 'L', 'L', 'O', '"',
		0xFF, 0xFF, 0xFF,
	}
	require.Equal(t, want, frame)
	assert.Equal(t, byte(len(frame)), frame[1], "length byte covers the whole wrapped frame")
}

func TestWrapModemDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	inner := MakeCommand("ref 0")
	snapshot := append([]byte(nil), inner...)

	_ = WrapModem(inner)
	assert.Equal(t, snapshot, inner)
}

func TestFields(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"t0", "t1", "t2", "t5", "t20", "t30", "t31", "t32"}, Fields)

	assert.True(t, ValidField("t20"))
	assert.False(t, ValidField("t3"))
	assert.False(t, ValidField(""))
}
