// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/pipeline.go
// Summary: The layered resolution pipeline: profile, scheme, globals, args.
// Usage: New resolves by profile id; Build resolves a "new terminal"
// request end to end, overrides included.

package settings

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/framegrace/texelsettings/profile"
	"github.com/framegrace/texelsettings/scheme"
)

// ProfileSource is what the resolver needs from a settings catalog: profile
// lookup by id, selector resolution for new-terminal requests, and the
// global settings. Implementations must not mutate profiles they hand out
// while a resolution is running.
type ProfileSource interface {
	// FindProfile returns the profile for id, or nil.
	FindProfile(id uuid.UUID) *profile.Profile

	// ProfileForArgs resolves the selector in args (nil args or an empty
	// selector picks the default profile) to a profile id.
	ProfileForArgs(args *NewTerminalArgs) (uuid.UUID, bool)

	// Globals returns the application-wide settings.
	Globals() *GlobalSettings
}

// New resolves the settings for one profile id: profile values (and its
// color scheme, when it names one) first, then the globals. It fails with
// ErrInvalidProfile when id does not exist; no partial record escapes.
func New(src ProfileSource, id uuid.UUID) (*EffectiveSettings, error) {
	if src == nil {
		return nil, fmt.Errorf("settings: nil profile source: %w", ErrInvalidProfile)
	}
	p := src.FindProfile(id)
	if p == nil {
		return nil, fmt.Errorf("settings: profile %s: %w", id, ErrInvalidProfile)
	}

	g := src.Globals()
	if g == nil {
		g = DefaultGlobals()
	}

	s := Defaults()
	s.applyProfile(p, g.ColorSchemes)
	s.applyGlobals(g)
	return s, nil
}

// Build resolves a full new-terminal request: it picks the profile for the
// selector in args, resolves its settings, then layers the sparse overrides
// from args on top. The chosen profile id is returned with the record so
// callers can key the session by profile.
func Build(src ProfileSource, args *NewTerminalArgs) (uuid.UUID, *EffectiveSettings, error) {
	if src == nil {
		return uuid.Nil, nil, fmt.Errorf("settings: nil profile source: %w", ErrProfileNotFound)
	}
	id, ok := src.ProfileForArgs(args)
	if !ok {
		selector := ""
		if args != nil {
			selector = args.Profile
		}
		return uuid.Nil, nil, fmt.Errorf("settings: selector %q: %w", selector, ErrProfileNotFound)
	}

	s, err := New(src, id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	s.applyArgs(args)
	return id, s, nil
}

// applyProfile copies the profile layer onto the record. The step order
// matters: the named scheme is applied before the profile's explicit colors
// so that explicit colors win.
func (s *EffectiveSettings) applyProfile(p *profile.Profile, schemes scheme.Map) {
	s.profileName = p.Name
	s.historySize = p.HistorySize
	s.snapOnInput = p.SnapOnInput
	s.altGrAliasing = p.AltGrAliasing
	s.cursorHeight = p.CursorHeight
	s.cursorShape = p.CursorShape
	s.useAcrylic = p.UseAcrylic
	s.tintOpacity = p.AcrylicOpacity
	s.fontFace = p.FontFace
	s.fontSize = p.FontSize
	s.fontWeight = p.FontWeight
	s.padding = p.Padding
	s.commandline = p.Commandline

	// Only an explicitly configured directory is evaluated; empty keeps
	// the record default (inherit the caller's working directory).
	if p.StartingDirectory != "" {
		s.startingDirectory = p.EvaluatedStartingDirectory(nil)
	}

	if p.TabTitle != "" {
		s.startingTitle = p.TabTitle
	} else {
		s.startingTitle = p.Name
	}
	if p.SuppressApplicationTitle {
		s.suppressApplicationTitle = true
	}

	// A scheme name that matches nothing is silently ignored: the record
	// keeps whatever colors it already has. The explicit colors run after
	// the scheme, so they win for any field the profile sets directly.
	if p.ColorScheme != "" {
		s.ApplyColorScheme(p.ColorScheme, schemes)
	}
	if p.Foreground != nil {
		s.defaultForeground = *p.Foreground
	}
	if p.Background != nil {
		s.defaultBackground = *p.Background
	}
	if p.SelectionBackground != nil {
		s.selectionBackground = *p.SelectionBackground
	}
	if p.CursorColor != nil {
		s.cursorColor = *p.CursorColor
	}
	if p.TabColor != nil {
		c := *p.TabColor
		s.tabColor = &c
	}

	s.scrollbarState = p.ScrollbarState

	if p.BackgroundImagePath != "" {
		s.backgroundImage = p.ExpandedBackgroundImagePath(nil)
	}
	s.backgroundImageOpacity = p.BackgroundImageOpacity
	s.backgroundImageStretchMode = p.BackgroundImageStretchMode
	s.backgroundImageHorizontalAlignment = p.BackgroundImageHorizontalAlignment
	s.backgroundImageVerticalAlignment = p.BackgroundImageVerticalAlignment

	s.retroTerminalEffect = p.RetroTerminalEffect
	s.antialiasingMode = p.AntialiasingMode
}

// applyGlobals copies the application-wide layer verbatim. It never reads
// profile-derived state, so the outcome is independent of the profile.
func (s *EffectiveSettings) applyGlobals(g *GlobalSettings) {
	s.initialRows = g.InitialRows
	s.initialCols = g.InitialCols
	s.wordDelimiters = g.WordDelimiters
	s.copyOnSelect = g.CopyOnSelect
	s.forceFullRepaintRendering = g.ForceFullRepaintRendering
	s.softwareRendering = g.SoftwareRendering
	s.forceVTInput = g.ForceVTInput
}

// applyArgs layers the sparse per-invocation overrides. Empty fields leave
// the resolved value alone; the directory override is taken as given, with
// no environment expansion.
func (s *EffectiveSettings) applyArgs(args *NewTerminalArgs) {
	if args == nil {
		return
	}
	if args.Commandline != "" {
		s.commandline = args.Commandline
	}
	if args.StartingDirectory != "" {
		s.startingDirectory = args.StartingDirectory
	}
	if args.TabTitle != "" {
		s.startingTitle = args.TabTitle
	}
}
