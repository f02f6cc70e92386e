// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scheme

import (
	"testing"

	"github.com/framegrace/texelsettings/termcolor"
)

const tomorrowNight = `
colors:
  primary:
    background: '0x1d1f21'
    foreground: '0xc5c8c6'
  cursor:
    text: '0x1d1f21'
    cursor: '0xffffff'
  selection:
    text: '0xc5c8c6'
    background: '0x373b41'
  normal:
    black:   '0x1d1f21'
    red:     '0xcc6666'
    green:   '0xb5bd68'
    yellow:  '0xf0c674'
    blue:    '0x81a2be'
    magenta: '0xb294bb'
    cyan:    '0x8abeb7'
    white:   '0xc5c8c6'
  bright:
    black:   '0x969896'
    red:     '0xcc6666'
    green:   '0xb5bd68'
    yellow:  '0xf0c674'
    blue:    '0x81a2be'
    magenta: '0xb294bb'
    cyan:    '0x8abeb7'
    white:   '0xffffff'
`

func TestImportAlacritty(t *testing.T) {
	s, err := ImportAlacritty("Tomorrow Night", []byte(tomorrowNight))
	if err != nil {
		t.Fatalf("ImportAlacritty error = %v", err)
	}

	if s.Name != "Tomorrow Night" {
		t.Errorf("Name = %q, want %q", s.Name, "Tomorrow Night")
	}
	if want := mustHex(t, "#c5c8c6"); s.Foreground != want {
		t.Errorf("Foreground = %v, want %v", s.Foreground, want)
	}
	if want := mustHex(t, "#1d1f21"); s.Background != want {
		t.Errorf("Background = %v, want %v", s.Background, want)
	}
	if want := mustHex(t, "#373b41"); s.SelectionBackground != want {
		t.Errorf("SelectionBackground = %v, want %v", s.SelectionBackground, want)
	}
	if want := mustHex(t, "#ffffff"); s.CursorColor != want {
		t.Errorf("CursorColor = %v, want %v", s.CursorColor, want)
	}

	if len(s.Table) != 16 {
		t.Fatalf("Table length = %d, want 16", len(s.Table))
	}
	// normal block fills 0-7, bright block 8-15
	if want := mustHex(t, "#cc6666"); s.Table[1] != want {
		t.Errorf("Table[1] = %v, want %v", s.Table[1], want)
	}
	if want := mustHex(t, "#969896"); s.Table[8] != want {
		t.Errorf("Table[8] = %v, want %v", s.Table[8], want)
	}
	if want := mustHex(t, "#ffffff"); s.Table[15] != want {
		t.Errorf("Table[15] = %v, want %v", s.Table[15], want)
	}
}

func TestImportAlacrittyPartial(t *testing.T) {
	const noBright = `
colors:
  primary:
    background: '#101010'
    foreground: '#d0d0d0'
  normal:
    black:   '#101010'
    red:     '#aa0000'
    green:   '#00aa00'
    yellow:  '#aaaa00'
    blue:    '#0000aa'
    magenta: '#aa00aa'
    cyan:    '#00aaaa'
    white:   '#d0d0d0'
`
	s, err := ImportAlacritty("Dim", []byte(noBright))
	if err != nil {
		t.Fatalf("ImportAlacritty error = %v", err)
	}

	if len(s.Table) != 8 {
		t.Errorf("Table length = %d, want 8 when bright block missing", len(s.Table))
	}
	// No cursor/selection blocks: both fall back to the foreground.
	if s.CursorColor != s.Foreground {
		t.Errorf("CursorColor = %v, want foreground %v", s.CursorColor, s.Foreground)
	}
	if s.SelectionBackground != s.Foreground {
		t.Errorf("SelectionBackground = %v, want foreground %v", s.SelectionBackground, s.Foreground)
	}
}

func TestImportAlacrittyErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "no primary block",
			data: "colors:\n  normal:\n    black: '#000000'\n",
		},
		{
			name: "missing named color",
			data: `
colors:
  primary:
    background: '#000000'
    foreground: '#ffffff'
  normal:
    black: '#000000'
`,
		},
		{
			name: "bad hex value",
			data: `
colors:
  primary:
    background: 'zzz'
    foreground: '#ffffff'
`,
		},
		{
			name: "not yaml",
			data: "\t{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportAlacritty("broken", []byte(tt.data)); err == nil {
				t.Error("ImportAlacritty should fail")
			}
		})
	}
}

func mustHex(t *testing.T, value string) termcolor.Color {
	t.Helper()
	c, err := termcolor.FromHex(value)
	if err != nil {
		t.Fatalf("FromHex(%q) error = %v", value, err)
	}
	return c
}
