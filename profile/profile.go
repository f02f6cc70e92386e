// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: profile/profile.go
// Summary: Terminal profile entity consumed by the settings resolver.
// Usage: Profiles arrive fully defaulted from the catalog; optional fields
// use pointers (nil means "not set, inherit").

// Package profile defines the source profile entity: the per-shell bundle
// of appearance and behavior values that settings resolution layers over
// the global defaults.
package profile

import (
	"github.com/google/uuid"

	"github.com/framegrace/texelsettings/termcolor"
)

// CursorShape selects the cursor glyph drawn by the terminal.
type CursorShape string

const (
	CursorShapeVintage    CursorShape = "vintage"
	CursorShapeBar        CursorShape = "bar"
	CursorShapeUnderscore CursorShape = "underscore"
	CursorShapeFilledBox  CursorShape = "filledBox"
	CursorShapeEmptyBox   CursorShape = "emptyBox"
)

// ScrollbarState controls scrollbar visibility for the session.
type ScrollbarState string

const (
	ScrollbarVisible ScrollbarState = "visible"
	ScrollbarHidden  ScrollbarState = "hidden"
)

// StretchMode controls how a background image fills the pane.
type StretchMode string

const (
	StretchNone          StretchMode = "none"
	StretchFill          StretchMode = "fill"
	StretchUniform       StretchMode = "uniform"
	StretchUniformToFill StretchMode = "uniformToFill"
)

// HorizontalAlignment positions a background image horizontally.
type HorizontalAlignment string

const (
	AlignLeft    HorizontalAlignment = "left"
	AlignHCenter HorizontalAlignment = "center"
	AlignRight   HorizontalAlignment = "right"
)

// VerticalAlignment positions a background image vertically.
type VerticalAlignment string

const (
	AlignTop     VerticalAlignment = "top"
	AlignVCenter VerticalAlignment = "center"
	AlignBottom  VerticalAlignment = "bottom"
)

// AntialiasingMode selects the text rendering mode.
type AntialiasingMode string

const (
	AntialiasingGrayscale AntialiasingMode = "grayscale"
	AntialiasingCleartype AntialiasingMode = "cleartype"
	AntialiasingAliased   AntialiasingMode = "aliased"
)

// Namespace is the UUID namespace for profile GUIDs derived from names.
var Namespace = uuid.MustParse("6e9b9a12-3c58-4c1d-8f4e-2a7d90b51c3a")

// Profile is one terminal profile. Values are complete by the time a
// profile reaches the resolver (the catalog and the embedded defaults carry
// fully populated entries); only the pointer fields and the empty-string
// fields below are genuinely optional.
type Profile struct {
	// GUID identifies the profile across renames.
	GUID uuid.UUID `json:"guid" toml:"guid"`

	// Name is the human-readable profile name, also the starting-title
	// fallback when no tab title is set.
	Name string `json:"name" toml:"name"`

	// Commandline is the program line launched for this profile.
	Commandline string `json:"commandline" toml:"commandline"`

	// StartingDirectory may carry ~, $VAR, ${VAR} or %VAR% references;
	// empty means "inherit the caller's working directory".
	StartingDirectory string `json:"startingDirectory,omitempty" toml:"startingDirectory,omitempty"`

	// TabTitle overrides Name as the starting title when non-empty.
	TabTitle string `json:"tabTitle,omitempty" toml:"tabTitle,omitempty"`

	// SuppressApplicationTitle pins the starting title against escape
	// sequences from the running application.
	SuppressApplicationTitle bool `json:"suppressApplicationTitle,omitempty" toml:"suppressApplicationTitle,omitempty"`

	HistorySize   int         `json:"historySize" toml:"historySize"`
	SnapOnInput   bool        `json:"snapOnInput" toml:"snapOnInput"`
	AltGrAliasing bool        `json:"altGrAliasing" toml:"altGrAliasing"`
	CursorShape   CursorShape `json:"cursorShape" toml:"cursorShape"`
	CursorHeight  int         `json:"cursorHeight" toml:"cursorHeight"`

	// ColorScheme names a scheme in the catalog; empty means none. A name
	// that matches no scheme is ignored during resolution.
	ColorScheme string `json:"colorScheme,omitempty" toml:"colorScheme,omitempty"`

	// Explicit colors override whatever the scheme set. Nil = not set.
	Foreground          *termcolor.Color `json:"foreground,omitempty" toml:"foreground,omitempty"`
	Background          *termcolor.Color `json:"background,omitempty" toml:"background,omitempty"`
	SelectionBackground *termcolor.Color `json:"selectionBackground,omitempty" toml:"selectionBackground,omitempty"`
	CursorColor         *termcolor.Color `json:"cursorColor,omitempty" toml:"cursorColor,omitempty"`
	TabColor            *termcolor.Color `json:"tabColor,omitempty" toml:"tabColor,omitempty"`

	UseAcrylic     bool    `json:"useAcrylic" toml:"useAcrylic"`
	AcrylicOpacity float64 `json:"acrylicOpacity" toml:"acrylicOpacity"`

	FontFace   string `json:"fontFace" toml:"fontFace"`
	FontSize   int    `json:"fontSize" toml:"fontSize"`
	FontWeight int    `json:"fontWeight" toml:"fontWeight"`
	Padding    string `json:"padding" toml:"padding"`

	ScrollbarState ScrollbarState `json:"scrollbarState" toml:"scrollbarState"`

	// BackgroundImagePath may carry environment references like
	// StartingDirectory; empty means no image.
	BackgroundImagePath                string              `json:"backgroundImage,omitempty" toml:"backgroundImage,omitempty"`
	BackgroundImageOpacity             float64             `json:"backgroundImageOpacity" toml:"backgroundImageOpacity"`
	BackgroundImageStretchMode         StretchMode         `json:"backgroundImageStretchMode" toml:"backgroundImageStretchMode"`
	BackgroundImageHorizontalAlignment HorizontalAlignment `json:"backgroundImageHorizontalAlignment" toml:"backgroundImageHorizontalAlignment"`
	BackgroundImageVerticalAlignment   VerticalAlignment   `json:"backgroundImageVerticalAlignment" toml:"backgroundImageVerticalAlignment"`

	RetroTerminalEffect bool             `json:"experimental.retroTerminalEffect,omitempty" toml:"retroTerminalEffect,omitempty"`
	AntialiasingMode    AntialiasingMode `json:"antialiasingMode" toml:"antialiasingMode"`
}

// New returns a profile with the stock defaults and a GUID derived from the
// name, so the same name always maps to the same profile identity.
func New(name string) *Profile {
	return &Profile{
		GUID:                               uuid.NewSHA1(Namespace, []byte(name)),
		Name:                               name,
		HistorySize:                        9001,
		SnapOnInput:                        true,
		AltGrAliasing:                      true,
		CursorShape:                        CursorShapeBar,
		CursorHeight:                       25,
		AcrylicOpacity:                     0.5,
		FontFace:                           "monospace",
		FontSize:                           12,
		FontWeight:                         400,
		Padding:                            "8, 8, 8, 8",
		ScrollbarState:                     ScrollbarVisible,
		BackgroundImageOpacity:             1.0,
		BackgroundImageStretchMode:         StretchUniformToFill,
		BackgroundImageHorizontalAlignment: AlignHCenter,
		BackgroundImageVerticalAlignment:   AlignVCenter,
		AntialiasingMode:                   AntialiasingGrayscale,
	}
}

// EvaluatedStartingDirectory expands environment references in the starting
// directory. A nil expander uses the process environment.
func (p *Profile) EvaluatedStartingDirectory(exp Expander) string {
	if exp == nil {
		exp = Env
	}
	return exp.Expand(p.StartingDirectory)
}

// ExpandedBackgroundImagePath expands environment references in the
// background image path. A nil expander uses the process environment.
func (p *Profile) ExpandedBackgroundImagePath(exp Expander) string {
	if exp == nil {
		exp = Env
	}
	return exp.Expand(p.BackgroundImagePath)
}
