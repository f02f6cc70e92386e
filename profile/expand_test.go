// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import "testing"

// stubLookup builds a lookup func over a fixed variable map.
func stubLookup(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func stubHome(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestExpandWith(t *testing.T) {
	vars := map[string]string{
		"HOME":        "/home/ada",
		"USERPROFILE": `C:\Users\ada`,
		"PROJ":        "/srv/proj",
		"EMPTY":       "",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain path", input: "/tmp/work", want: "/tmp/work"},
		{name: "empty", input: "", want: ""},
		{name: "dollar var", input: "$PROJ/src", want: "/srv/proj/src"},
		{name: "braced var", input: "${PROJ}/src", want: "/srv/proj/src"},
		{name: "percent var", input: "%USERPROFILE%\\work", want: `C:\Users\ada\work`},
		{name: "tilde", input: "~/work", want: "/home/ada/work"},
		{name: "bare tilde", input: "~", want: "/home/ada"},
		{name: "tilde mid-path stays", input: "/a/~b", want: "/a/~b"},
		{name: "tilde user form stays", input: "~root/x", want: "~root/x"},
		{name: "unknown dollar stays literal", input: "$NOPE/src", want: "$NOPE/src"},
		{name: "unknown braced stays literal", input: "${NOPE}/src", want: "${NOPE}/src"},
		{name: "unknown percent stays literal", input: "%NOPE%\\x", want: "%NOPE%\\x"},
		{name: "set but empty expands", input: "a${EMPTY}b", want: "ab"},
		{name: "lone dollar", input: "cost: $", want: "cost: $"},
		{name: "lone percent", input: "50%", want: "50%"},
		{name: "double percent", input: "50%%60%", want: "50%%60%"},
		{name: "percent around spaces", input: "50% and 60%", want: "50% and 60%"},
		{name: "adjacent vars", input: "$PROJ$PROJ", want: "/srv/proj/srv/proj"},
		{name: "var then text", input: "${PROJ}x", want: "/srv/projx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandWith(tt.input, stubLookup(vars), stubHome("/home/ada"))
			if got != tt.want {
				t.Errorf("expandWith(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluatedPaths(t *testing.T) {
	stub := ExpanderFunc(func(s string) string { return "X:" + s })

	p := New("dev")
	p.StartingDirectory = "/work"
	p.BackgroundImagePath = "bg.png"

	if got := p.EvaluatedStartingDirectory(stub); got != "X:/work" {
		t.Errorf("EvaluatedStartingDirectory = %q, want %q", got, "X:/work")
	}
	if got := p.ExpandedBackgroundImagePath(stub); got != "X:bg.png" {
		t.Errorf("ExpandedBackgroundImagePath = %q, want %q", got, "X:bg.png")
	}
}

func TestEnvExpander(t *testing.T) {
	t.Setenv("TEXELSETTINGS_TEST_DIR", "/srv/data")

	p := New("dev")
	p.StartingDirectory = "$TEXELSETTINGS_TEST_DIR/logs"
	if got := p.EvaluatedStartingDirectory(nil); got != "/srv/data/logs" {
		t.Errorf("EvaluatedStartingDirectory = %q, want %q", got, "/srv/data/logs")
	}
}
