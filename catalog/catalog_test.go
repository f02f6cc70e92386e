// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"testing"

	"github.com/google/uuid"

	"github.com/framegrace/texelsettings/profile"
	"github.com/framegrace/texelsettings/scheme"
	"github.com/framegrace/texelsettings/settings"
	"github.com/framegrace/texelsettings/termcolor"
)

func testDocument() *Document {
	def := profile.New("Default")
	def.ColorScheme = "Night"
	other := profile.New("Other")

	night := &scheme.ColorScheme{
		Name:       "Night",
		Foreground: termcolor.RGB(0xc5, 0xc8, 0xc6),
		Background: termcolor.RGB(0x1d, 0x1f, 0x21),
	}

	return &Document{
		DefaultProfile: "Default",
		Profiles:       []*profile.Profile{def, other},
		Schemes:        []*scheme.ColorScheme{night},
	}
}

func TestNewIndexesProfilesAndSchemes(t *testing.T) {
	doc := testDocument()
	c, err := New(doc)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	def := doc.Profiles[0]
	if got := c.FindProfile(def.GUID); got != def {
		t.Errorf("FindProfile = %v, want the Default profile", got)
	}
	if got := c.FindProfile(uuid.New()); got != nil {
		t.Errorf("FindProfile(unknown) = %v, want nil", got)
	}

	if _, ok := c.Schemes().Get("Night"); !ok {
		t.Error("Schemes should contain Night")
	}
	if _, ok := c.Globals().ColorSchemes.Get("Night"); !ok {
		t.Error("the globals must expose the catalog's scheme map")
	}

	profiles := c.Profiles()
	if len(profiles) != 2 || profiles[0].Name != "Default" || profiles[1].Name != "Other" {
		t.Errorf("Profiles() should preserve file order, got %v", profiles)
	}
}

func TestNewRejectsEmptyDocuments(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
	if _, err := New(&Document{}); err == nil {
		t.Error("New of an empty document should fail")
	}
}

func TestDuplicateProfileGUIDKeepsFirst(t *testing.T) {
	first := profile.New("First")
	second := profile.New("Second")
	second.GUID = first.GUID

	c, err := New(&Document{Profiles: []*profile.Profile{first, second}})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if got := c.FindProfile(first.GUID); got != first {
		t.Errorf("FindProfile = %q, want the first entry", got.Name)
	}
	if len(c.Profiles()) != 1 {
		t.Errorf("Profiles() length = %d, want 1", len(c.Profiles()))
	}
}

func TestZeroGUIDDerivedFromName(t *testing.T) {
	p := &profile.Profile{Name: "bare"}
	c, err := New(&Document{Profiles: []*profile.Profile{p}})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	want := uuid.NewSHA1(profile.Namespace, []byte("bare"))
	if p.GUID != want {
		t.Errorf("derived GUID = %v, want %v", p.GUID, want)
	}
	if c.FindProfile(want) != p {
		t.Error("profile should be indexed under the derived GUID")
	}
}

func TestDefaultProfileSelection(t *testing.T) {
	a := profile.New("A")
	b := profile.New("B")

	tests := []struct {
		name     string
		selector string
		want     uuid.UUID
	}{
		{name: "empty selector takes first", selector: "", want: a.GUID},
		{name: "by name", selector: "B", want: b.GUID},
		{name: "by guid", selector: b.GUID.String(), want: b.GUID},
		{name: "unknown falls back to first", selector: "missing", want: a.GUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(&Document{
				DefaultProfile: tt.selector,
				Profiles:       []*profile.Profile{a, b},
			})
			if err != nil {
				t.Fatalf("New error = %v", err)
			}
			if c.DefaultProfileID() != tt.want {
				t.Errorf("DefaultProfileID = %v, want %v", c.DefaultProfileID(), tt.want)
			}
		})
	}
}

func TestProfileForArgs(t *testing.T) {
	doc := testDocument()
	c, err := New(doc)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	def, other := doc.Profiles[0], doc.Profiles[1]

	tests := []struct {
		name   string
		args   *settings.NewTerminalArgs
		want   uuid.UUID
		wantOk bool
	}{
		{name: "nil args", want: def.GUID, wantOk: true},
		{name: "empty selector", args: &settings.NewTerminalArgs{}, want: def.GUID, wantOk: true},
		{name: "guid selector", args: &settings.NewTerminalArgs{Profile: other.GUID.String()}, want: other.GUID, wantOk: true},
		{name: "name selector", args: &settings.NewTerminalArgs{Profile: "Other"}, want: other.GUID, wantOk: true},
		{name: "unknown guid", args: &settings.NewTerminalArgs{Profile: uuid.New().String()}},
		{name: "unknown name", args: &settings.NewTerminalArgs{Profile: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ProfileForArgs(tt.args)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ProfileForArgs = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestCatalogDrivesResolution(t *testing.T) {
	c, err := New(testDocument())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	id, s, err := settings.Build(c, nil)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if id != c.DefaultProfileID() {
		t.Errorf("resolved id = %v, want default %v", id, c.DefaultProfileID())
	}
	if s.DefaultBackground() != termcolor.RGB(0x1d, 0x1f, 0x21) {
		t.Errorf("DefaultBackground = %v, want the Night scheme background", s.DefaultBackground())
	}
	if s.StartingTitle() != "Default" {
		t.Errorf("StartingTitle = %q, want %q", s.StartingTitle(), "Default")
	}
}
