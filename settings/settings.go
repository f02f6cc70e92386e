// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/settings.go
// Summary: The resolved effective-settings record for one terminal session.
// Usage: Built through New/Build; read-only afterwards except for the color
// table slot writes and live scheme application.

// Package settings resolves the layered configuration of a terminal
// session. A profile, the global defaults, an optional named color scheme
// and optional per-invocation overrides are flattened, in a fixed order,
// into one EffectiveSettings record that consumers read without knowing
// where each value came from.
package settings

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsettings/profile"
	"github.com/framegrace/texelsettings/scheme"
	"github.com/framegrace/texelsettings/termcolor"
)

// EffectiveSettings is the flattened result of settings resolution. It is
// mutable only while the pipeline assembles it; afterwards the sole writers
// are SetColorTableEntry and ApplyColorScheme.
type EffectiveSettings struct {
	profileName string

	historySize   int
	snapOnInput   bool
	altGrAliasing bool
	cursorShape   profile.CursorShape
	cursorHeight  int

	defaultForeground   termcolor.Color
	defaultBackground   termcolor.Color
	selectionBackground termcolor.Color
	cursorColor         termcolor.Color
	tabColor            *termcolor.Color
	colorTable          termcolor.Table

	useAcrylic  bool
	tintOpacity float64

	fontFace   string
	fontSize   int
	fontWeight int
	padding    string

	commandline              string
	startingDirectory        string
	startingTitle            string
	suppressApplicationTitle bool

	scrollbarState profile.ScrollbarState

	backgroundImage                    string
	backgroundImageOpacity             float64
	backgroundImageStretchMode         profile.StretchMode
	backgroundImageHorizontalAlignment profile.HorizontalAlignment
	backgroundImageVerticalAlignment   profile.VerticalAlignment

	retroTerminalEffect bool
	antialiasingMode    profile.AntialiasingMode

	initialRows               int
	initialCols               int
	wordDelimiters            string
	copyOnSelect              bool
	forceFullRepaintRendering bool
	softwareRendering         bool
	forceVTInput              bool
}

// Defaults returns a record carrying the stock values every resolution
// starts from. Profiles, globals and overrides layer on top of these.
func Defaults() *EffectiveSettings {
	return &EffectiveSettings{
		historySize:   9001,
		snapOnInput:   true,
		altGrAliasing: true,
		cursorShape:   profile.CursorShapeBar,
		cursorHeight:  25,

		defaultForeground:   termcolor.RGB(192, 192, 192),
		defaultBackground:   termcolor.RGB(0, 0, 0),
		selectionBackground: termcolor.RGB(255, 255, 255),
		cursorColor:         termcolor.RGB(255, 255, 255),
		colorTable:          termcolor.DefaultTable(),

		tintOpacity: 0.5,

		fontFace:   "monospace",
		fontSize:   12,
		fontWeight: 400,
		padding:    "8, 8, 8, 8",

		scrollbarState: profile.ScrollbarVisible,

		backgroundImageOpacity:             1.0,
		backgroundImageStretchMode:         profile.StretchUniformToFill,
		backgroundImageHorizontalAlignment: profile.AlignHCenter,
		backgroundImageVerticalAlignment:   profile.AlignVCenter,

		antialiasingMode: profile.AntialiasingGrayscale,

		initialRows:    24,
		initialCols:    80,
		wordDelimiters: ` /\()"'-.,:;<>~!@#$%^&*|+=[]{}~?│`,
	}
}

func (s *EffectiveSettings) ProfileName() string              { return s.profileName }
func (s *EffectiveSettings) HistorySize() int                 { return s.historySize }
func (s *EffectiveSettings) SnapOnInput() bool                { return s.snapOnInput }
func (s *EffectiveSettings) AltGrAliasing() bool              { return s.altGrAliasing }
func (s *EffectiveSettings) CursorShape() profile.CursorShape { return s.cursorShape }
func (s *EffectiveSettings) CursorHeight() int                { return s.cursorHeight }

func (s *EffectiveSettings) DefaultForeground() termcolor.Color   { return s.defaultForeground }
func (s *EffectiveSettings) DefaultBackground() termcolor.Color   { return s.defaultBackground }
func (s *EffectiveSettings) SelectionBackground() termcolor.Color { return s.selectionBackground }
func (s *EffectiveSettings) CursorColor() termcolor.Color         { return s.cursorColor }

// TabColor reports the explicit tab color, when the profile set one.
func (s *EffectiveSettings) TabColor() (termcolor.Color, bool) {
	if s.tabColor == nil {
		return 0, false
	}
	return *s.tabColor, true
}

// ColorTable returns a copy of the 16 ANSI slots.
func (s *EffectiveSettings) ColorTable() termcolor.Table { return s.colorTable }

// ColorTableEntry reads one ANSI slot; the index is bounds-checked.
func (s *EffectiveSettings) ColorTableEntry(index int) (termcolor.Color, error) {
	return s.colorTable.Entry(index)
}

// SetColorTableEntry writes one ANSI slot; the index is bounds-checked and
// a rejected write changes nothing.
func (s *EffectiveSettings) SetColorTableEntry(index int, c termcolor.Color) error {
	return s.colorTable.SetEntry(index, c)
}

// ApplyColorScheme looks up name and, when found, overwrites the four
// default colors and the table slots covered by the scheme, in slot order.
// Schemes with fewer than 16 entries leave the remaining slots untouched;
// entries beyond 16 are ignored. A miss returns false and writes nothing.
func (s *EffectiveSettings) ApplyColorScheme(name string, schemes scheme.Map) bool {
	sch, ok := schemes.Get(name)
	if !ok || sch == nil {
		return false
	}

	s.defaultForeground = sch.Foreground
	s.defaultBackground = sch.Background
	s.selectionBackground = sch.SelectionBackground
	s.cursorColor = sch.CursorColor

	n := len(sch.Table)
	if n > termcolor.TableSize {
		n = termcolor.TableSize
	}
	for i := 0; i < n; i++ {
		s.colorTable[i] = sch.Table[i]
	}
	return true
}

// DefaultStyle returns a tcell style seeded with the resolved default
// foreground and background, ready for renderers.
func (s *EffectiveSettings) DefaultStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.defaultForeground.TCell()).
		Background(s.defaultBackground.TCell())
}

func (s *EffectiveSettings) UseAcrylic() bool      { return s.useAcrylic }
func (s *EffectiveSettings) TintOpacity() float64  { return s.tintOpacity }
func (s *EffectiveSettings) FontFace() string      { return s.fontFace }
func (s *EffectiveSettings) FontSize() int         { return s.fontSize }
func (s *EffectiveSettings) FontWeight() int       { return s.fontWeight }
func (s *EffectiveSettings) Padding() string       { return s.padding }
func (s *EffectiveSettings) Commandline() string   { return s.commandline }

func (s *EffectiveSettings) StartingDirectory() string      { return s.startingDirectory }
func (s *EffectiveSettings) StartingTitle() string          { return s.startingTitle }
func (s *EffectiveSettings) SuppressApplicationTitle() bool { return s.suppressApplicationTitle }

func (s *EffectiveSettings) ScrollbarState() profile.ScrollbarState { return s.scrollbarState }

func (s *EffectiveSettings) BackgroundImage() string            { return s.backgroundImage }
func (s *EffectiveSettings) BackgroundImageOpacity() float64    { return s.backgroundImageOpacity }
func (s *EffectiveSettings) BackgroundImageStretchMode() profile.StretchMode {
	return s.backgroundImageStretchMode
}
func (s *EffectiveSettings) BackgroundImageHorizontalAlignment() profile.HorizontalAlignment {
	return s.backgroundImageHorizontalAlignment
}
func (s *EffectiveSettings) BackgroundImageVerticalAlignment() profile.VerticalAlignment {
	return s.backgroundImageVerticalAlignment
}

func (s *EffectiveSettings) RetroTerminalEffect() bool { return s.retroTerminalEffect }
func (s *EffectiveSettings) AntialiasingMode() profile.AntialiasingMode {
	return s.antialiasingMode
}

func (s *EffectiveSettings) InitialRows() int                { return s.initialRows }
func (s *EffectiveSettings) InitialCols() int                { return s.initialCols }
func (s *EffectiveSettings) WordDelimiters() string          { return s.wordDelimiters }
func (s *EffectiveSettings) CopyOnSelect() bool              { return s.copyOnSelect }
func (s *EffectiveSettings) ForceFullRepaintRendering() bool { return s.forceFullRepaintRendering }
func (s *EffectiveSettings) SoftwareRendering() bool         { return s.softwareRendering }
func (s *EffectiveSettings) ForceVTInput() bool              { return s.forceVTInput }
