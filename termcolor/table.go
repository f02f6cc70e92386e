// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termcolor/table.go
// Summary: Fixed 16-slot ANSI color table with bounds-checked access.

package termcolor

import (
	"errors"
	"fmt"
)

// TableSize is the number of ANSI slots in a terminal color table.
const TableSize = 16

// ErrOutOfRange reports a color table access outside [0, TableSize).
var ErrOutOfRange = errors.New("termcolor: color table index out of range")

// Table holds the 16 ANSI palette slots of a terminal session. The zero
// value is all-black; most callers start from DefaultTable.
type Table [TableSize]Color

// Entry returns the color at index, or ErrOutOfRange.
func (t *Table) Entry(index int) (Color, error) {
	if index < 0 || index >= TableSize {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return t[index], nil
}

// SetEntry writes one slot. Writes are single-slot: an out-of-range index
// fails without touching the table.
func (t *Table) SetEntry(index int, c Color) error {
	if index < 0 || index >= TableSize {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	t[index] = c
	return nil
}

// DefaultTable returns the standard xterm ANSI-16 palette.
func DefaultTable() Table {
	return Table{
		RGB(0, 0, 0),       // Black
		RGB(128, 0, 0),     // Maroon
		RGB(0, 128, 0),     // Green
		RGB(128, 128, 0),   // Olive
		RGB(0, 0, 128),     // Navy
		RGB(128, 0, 128),   // Purple
		RGB(0, 128, 128),   // Teal
		RGB(192, 192, 192), // Silver
		RGB(128, 128, 128), // Grey
		RGB(255, 0, 0),     // Red
		RGB(0, 255, 0),     // Lime
		RGB(255, 255, 0),   // Yellow
		RGB(0, 0, 255),     // Blue
		RGB(255, 0, 255),   // Fuchsia
		RGB(0, 255, 255),   // Aqua
		RGB(255, 255, 255), // White
	}
}
