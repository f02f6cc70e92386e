// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default settings document.

// Package defaults ships the stock settings document in the binary, so the
// engine works without any settings file on disk.
package defaults

import (
	"embed"
)

//go:embed settings.json
var fs embed.FS

// Settings returns the embedded default settings JSON.
func Settings() ([]byte, error) {
	return fs.ReadFile("settings.json")
}
