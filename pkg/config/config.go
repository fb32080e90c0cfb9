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

// Package config reads the MMDVMHost ini file and resolves display
// settings from it. The file is loaded once per invocation and treated
// as read-only afterwards.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultPath is where MMDVMHost keeps its configuration on a stock
// install.
const DefaultPath = "/etc/mmdvmhost"

// Store is a read-only view over a loaded MMDVMHost config file.
type Store struct {
	file *ini.File
}

// Load reads and parses the config file at path. A missing or
// unreadable file is an error; callers that can run without config
// should fall back to Empty.
func Load(path string) (*Store, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return &Store{file: f}, nil
}

// Empty returns a store with no sections, so every lookup reports
// absence.
func Empty() *Store {
	return &Store{file: ini.Empty()}
}

// Lookup returns the trimmed value of section.key and whether the key
// was present at all. Absence of the section or the key is not an
// error.
func (s *Store) Lookup(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return strings.TrimSpace(sec.Key(key).String()), true
}
