// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scheme/alacritty.go
// Summary: Import of Alacritty-style YAML color scheme files.

package scheme

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framegrace/texelsettings/termcolor"
)

// alacrittyFile mirrors the "colors:" block of an Alacritty theme file.
// Color values arrive as strings because the format allows both "0x1d1f21"
// and "#1d1f21".
type alacrittyFile struct {
	Colors struct {
		Primary struct {
			Foreground string `yaml:"foreground"`
			Background string `yaml:"background"`
		} `yaml:"primary"`
		Cursor struct {
			Cursor string `yaml:"cursor"`
		} `yaml:"cursor"`
		Selection struct {
			Background string `yaml:"background"`
		} `yaml:"selection"`
		Normal map[string]string `yaml:"normal"`
		Bright map[string]string `yaml:"bright"`
	} `yaml:"colors"`
}

// ansiOrder is the slot order of the named keys in the normal/bright blocks.
var ansiOrder = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ImportAlacritty builds a ColorScheme from an Alacritty theme file. The
// normal block fills slots 0-7 and the bright block slots 8-15; a missing
// bright block yields an 8-entry table. Cursor and selection colors fall
// back to the foreground when their blocks are absent.
func ImportAlacritty(name string, data []byte) (*ColorScheme, error) {
	var file alacrittyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("scheme: parse alacritty theme: %w", err)
	}

	colors := file.Colors
	if colors.Primary.Foreground == "" || colors.Primary.Background == "" {
		return nil, fmt.Errorf("scheme: alacritty theme %q has no primary colors", name)
	}

	fg, err := parseAlacrittyColor(colors.Primary.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseAlacrittyColor(colors.Primary.Background)
	if err != nil {
		return nil, err
	}

	out := &ColorScheme{
		Name:                name,
		Foreground:          fg,
		Background:          bg,
		SelectionBackground: fg,
		CursorColor:         fg,
	}

	if colors.Selection.Background != "" {
		if out.SelectionBackground, err = parseAlacrittyColor(colors.Selection.Background); err != nil {
			return nil, err
		}
	}
	if colors.Cursor.Cursor != "" {
		if out.CursorColor, err = parseAlacrittyColor(colors.Cursor.Cursor); err != nil {
			return nil, err
		}
	}

	for _, block := range []map[string]string{colors.Normal, colors.Bright} {
		if len(block) == 0 {
			break
		}
		for _, key := range ansiOrder {
			value, ok := block[key]
			if !ok {
				return nil, fmt.Errorf("scheme: alacritty theme %q missing color %q", name, key)
			}
			c, err := parseAlacrittyColor(value)
			if err != nil {
				return nil, err
			}
			out.Table = append(out.Table, c)
		}
	}

	return out, nil
}

// parseAlacrittyColor accepts "#rrggbb" and the "0xrrggbb" spelling common
// in alacritty themes.
func parseAlacrittyColor(value string) (termcolor.Color, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		value = "#" + value[2:]
	}
	return termcolor.FromHex(value)
}
