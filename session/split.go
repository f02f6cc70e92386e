// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/split.go
// Summary: Quote-aware splitting of profile command lines.

package session

import (
	"fmt"
	"strings"
)

// splitCommandline breaks a profile command line into argv. Single quotes
// take everything verbatim; double quotes allow \" and \\; a backslash
// outside quotes escapes the next byte. No variable expansion happens
// here. An empty line yields an empty argv.
func splitCommandline(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	var quote byte
	escaped := false
	inToken := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case quote == '\'':
			if c == '\'' {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case quote == '"':
			if c == '"' {
				quote = 0
			} else if c == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\') {
				escaped = true
			} else {
				cur.WriteByte(c)
			}
		case c == '\\':
			escaped = true
			inToken = true
		case c == '\'' || c == '"':
			quote = c
			inToken = true
		case c == ' ' || c == '\t':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("session: trailing backslash in %q", line)
	}
	if quote != 0 {
		return nil, fmt.Errorf("session: unbalanced quote in %q", line)
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}
