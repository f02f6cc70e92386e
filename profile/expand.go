// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: profile/expand.go
// Summary: Environment-reference expansion for profile paths.

package profile

import (
	"os"
	"strings"
)

// Expander resolves environment references inside profile paths. Profiles
// may carry "~/work", "$HOME/work", "${HOME}/work" or "%USERPROFILE%\work";
// the engine expands them through this interface so tests can substitute a
// stub environment.
type Expander interface {
	Expand(value string) string
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(string) string

func (f ExpanderFunc) Expand(value string) string { return f(value) }

// Env expands against the process environment and home directory.
var Env Expander = ExpanderFunc(func(value string) string {
	return expandWith(value, os.LookupEnv, os.UserHomeDir)
})

// expandWith rewrites ~, $NAME, ${NAME} and %NAME% references. References
// that name an unset variable are kept literal rather than collapsed to the
// empty string. There is no escape syntax.
func expandWith(value string, lookup func(string) (string, bool), home func() (string, error)) string {
	if strings.HasPrefix(value, "~") {
		if len(value) == 1 || value[1] == '/' || value[1] == '\\' {
			if h, err := home(); err == nil {
				value = h + value[1:]
			}
		}
	}

	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); {
		switch value[i] {
		case '$':
			if i+1 < len(value) && value[i+1] == '{' {
				if end := strings.IndexByte(value[i+2:], '}'); end >= 0 {
					name := value[i+2 : i+2+end]
					if validRefName(name) {
						if v, ok := lookup(name); ok {
							b.WriteString(v)
							i += end + 3
							continue
						}
					}
				}
			} else {
				j := i + 1
				for j < len(value) && refNameByte(value[j], j > i+1) {
					j++
				}
				if j > i+1 {
					if v, ok := lookup(value[i+1 : j]); ok {
						b.WriteString(v)
						i = j
						continue
					}
				}
			}
			b.WriteByte('$')
			i++
		case '%':
			if end := strings.IndexByte(value[i+1:], '%'); end > 0 {
				name := value[i+1 : i+1+end]
				if validRefName(name) {
					if v, ok := lookup(name); ok {
						b.WriteString(v)
						i += end + 2
						continue
					}
				}
			}
			b.WriteByte('%')
			i++
		default:
			b.WriteByte(value[i])
			i++
		}
	}
	return b.String()
}

func validRefName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !refNameByte(name[i], i > 0) {
			return false
		}
	}
	return true
}

func refNameByte(c byte, interior bool) bool {
	if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return true
	}
	return interior && c >= '0' && c <= '9'
}
