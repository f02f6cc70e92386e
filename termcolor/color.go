// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termcolor/color.go
// Summary: Packed 32-bit color value with channel helpers and hex parsing.
// Usage: Shared color representation for profiles, schemes and resolved settings.

// Package termcolor provides the color primitives shared by the settings
// engine: a packed 32-bit Color and the fixed 16-slot ANSI Table.
package termcolor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Color is a packed 0xAARRGGBB value. Callers should treat it as opaque and
// go through the constructors and channel helpers rather than the raw bits.
type Color uint32

// RGB builds a fully opaque color from its channels.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA builds a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromHex parses "#rrggbb" or "#rgb" (case-insensitive) into an opaque color.
func FromHex(value string) (Color, error) {
	if len(value) == 0 || value[0] != '#' {
		return 0, fmt.Errorf("termcolor: invalid color %q", value)
	}
	digits := value[1:]
	switch len(digits) {
	case 6:
		var r, g, b uint8
		for i, dst := range []*uint8{&r, &g, &b} {
			hi, ok1 := hexNibble(digits[i*2])
			lo, ok2 := hexNibble(digits[i*2+1])
			if !ok1 || !ok2 {
				return 0, fmt.Errorf("termcolor: invalid color %q", value)
			}
			*dst = hi<<4 | lo
		}
		return RGB(r, g, b), nil
	case 3:
		var r, g, b uint8
		for i, dst := range []*uint8{&r, &g, &b} {
			n, ok := hexNibble(digits[i])
			if !ok {
				return 0, fmt.Errorf("termcolor: invalid color %q", value)
			}
			*dst = n<<4 | n
		}
		return RGB(r, g, b), nil
	default:
		return 0, fmt.Errorf("termcolor: invalid color %q", value)
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns the same color with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// Hex formats the color as "#rrggbb". Alpha is not part of the wire form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

func (c Color) String() string { return c.Hex() }

// TCell converts the color to a true RGB tcell color for renderers.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// MarshalText encodes the color as its hex form. Implementing the text
// interfaces gives the same "#rrggbb" wire format under encoding/json,
// go-toml and yaml.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses a hex color in place.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
