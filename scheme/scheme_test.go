// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scheme

import (
	"testing"

	"github.com/framegrace/texelsettings/termcolor"
)

func TestMapGet(t *testing.T) {
	campbell := &ColorScheme{Name: "Campbell"}
	m := Map{"Campbell": campbell}

	tests := []struct {
		name   string
		lookup string
		want   *ColorScheme
		wantOk bool
	}{
		{name: "exact match", lookup: "Campbell", want: campbell, wantOk: true},
		{name: "case mismatch", lookup: "campbell"},
		{name: "missing", lookup: "Vintage"},
		{name: "empty", lookup: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Get(tt.lookup)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("Get(%q) = (%v, %v), want (%v, %v)", tt.lookup, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := &ColorScheme{
		Name:       "Test",
		Foreground: termcolor.RGB(1, 2, 3),
		Table:      []termcolor.Color{termcolor.RGB(9, 9, 9)},
	}

	dup := orig.Clone()
	if dup == orig {
		t.Fatal("Clone returned the same pointer")
	}
	dup.Table[0] = termcolor.RGB(0, 0, 0)
	if orig.Table[0] != termcolor.RGB(9, 9, 9) {
		t.Error("mutating the clone's table changed the original")
	}

	var nilScheme *ColorScheme
	if nilScheme.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
