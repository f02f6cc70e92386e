// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scheme/scheme.go
// Summary: Named color scheme entity and the name-keyed scheme map.

// Package scheme defines terminal color schemes: a named bundle of default
// colors plus an ordered palette sequence for the ANSI table slots.
package scheme

import (
	"github.com/framegrace/texelsettings/termcolor"
)

// ColorScheme is one named scheme. Table carries the palette entries in slot
// order; its length is whatever the source declared and consumers must read
// it rather than assume 16 entries.
type ColorScheme struct {
	Name                string            `json:"name" toml:"name" yaml:"name"`
	Foreground          termcolor.Color   `json:"foreground" toml:"foreground" yaml:"foreground"`
	Background          termcolor.Color   `json:"background" toml:"background" yaml:"background"`
	SelectionBackground termcolor.Color   `json:"selectionBackground" toml:"selectionBackground" yaml:"selectionBackground"`
	CursorColor         termcolor.Color   `json:"cursorColor" toml:"cursorColor" yaml:"cursorColor"`
	Table               []termcolor.Color `json:"colors" toml:"colors" yaml:"colors"`
}

// Clone returns a deep copy; the palette slice is not shared.
func (s *ColorScheme) Clone() *ColorScheme {
	if s == nil {
		return nil
	}
	dup := *s
	dup.Table = append([]termcolor.Color(nil), s.Table...)
	return &dup
}

// Map indexes schemes by name. Lookups are exact and case-sensitive.
type Map map[string]*ColorScheme

// Get returns the scheme for name, if present.
func (m Map) Get(name string) (*ColorScheme, bool) {
	s, ok := m[name]
	return s, ok
}

// Names returns the scheme names in unspecified order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
