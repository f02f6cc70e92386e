// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"reflect"
	"testing"
)

func TestSplitCommandline(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "empty", line: "", want: nil},
		{name: "blank", line: "   ", want: nil},
		{name: "single word", line: "htop", want: []string{"htop"}},
		{name: "flags", line: "zsh -l -i", want: []string{"zsh", "-l", "-i"}},
		{name: "extra whitespace", line: "  ls \t -la  ", want: []string{"ls", "-la"}},
		{name: "single quotes", line: "watch 'df -h'", want: []string{"watch", "df -h"}},
		{name: "double quotes", line: `sh -c "echo hi"`, want: []string{"sh", "-c", "echo hi"}},
		{name: "escaped quote in double quotes", line: `echo "a \" b"`, want: []string{"echo", `a " b`}},
		{name: "escaped backslash in double quotes", line: `echo "a \\ b"`, want: []string{"echo", `a \ b`}},
		{name: "backslash escape outside quotes", line: `ls My\ Files`, want: []string{"ls", "My Files"}},
		{name: "empty quoted argument", line: "prog '' after", want: []string{"prog", "", "after"}},
		{name: "adjacent quoted parts", line: `echo 'a'"b"`, want: []string{"echo", "ab"}},
		{name: "unbalanced single quote", line: "echo 'oops", wantErr: true},
		{name: "unbalanced double quote", line: `echo "oops`, wantErr: true},
		{name: "trailing backslash", line: `echo oops\`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommandline(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitCommandline(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommandline(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
