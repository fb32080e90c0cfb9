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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceMissingFile(t *testing.T) {
	t.Parallel()

	face := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	assert.Equal(t, basicfont.Face7x13, face)
}

func TestLoadFaceUnparsableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bogus.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o600))

	face := LoadFace(path, 12)
	assert.Equal(t, basicfont.Face7x13, face)
}

func TestFaceMetrics(t *testing.T) {
	t.Parallel()

	m := FaceMetrics(basicfont.Face7x13)

	w, h := m("HELLO")
	assert.Positive(t, w)
	assert.Positive(t, h)

	wide, _ := m("HELLO WORLD")
	assert.Greater(t, wide, w, "longer text measures wider")

	w, h = m("")
	assert.Zero(t, w)
	assert.Zero(t, h)
}
