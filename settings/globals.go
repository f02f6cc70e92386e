// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/globals.go
// Summary: Application-wide settings copied into every resolved record.

package settings

import (
	"github.com/framegrace/texelsettings/scheme"
)

// GlobalSettings holds the application-wide values that apply to every
// session regardless of profile, plus the scheme map profiles resolve
// their color scheme names against. The resolver only reads it.
type GlobalSettings struct {
	InitialRows               int    `json:"initialRows" toml:"initialRows"`
	InitialCols               int    `json:"initialCols" toml:"initialCols"`
	WordDelimiters            string `json:"wordDelimiters" toml:"wordDelimiters"`
	CopyOnSelect              bool   `json:"copyOnSelect" toml:"copyOnSelect"`
	ForceFullRepaintRendering bool   `json:"forceFullRepaintRendering" toml:"forceFullRepaintRendering"`
	SoftwareRendering         bool   `json:"softwareRendering" toml:"softwareRendering"`
	ForceVTInput              bool   `json:"forceVTInput" toml:"forceVTInput"`

	// ColorSchemes is keyed by scheme name. The catalog builds it from its
	// scheme list; it is not part of the globals' own wire format.
	ColorSchemes scheme.Map `json:"-" toml:"-"`
}

// DefaultGlobals mirrors the stock values of the default record.
func DefaultGlobals() *GlobalSettings {
	d := Defaults()
	return &GlobalSettings{
		InitialRows:    d.initialRows,
		InitialCols:    d.initialCols,
		WordDelimiters: d.wordDelimiters,
		ColorSchemes:   scheme.Map{},
	}
}
