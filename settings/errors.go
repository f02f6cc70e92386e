// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/errors.go
// Summary: Sentinel errors of the resolution pipeline.

package settings

import "errors"

var (
	// ErrInvalidProfile reports a resolution request whose profile id does
	// not exist in the source.
	ErrInvalidProfile = errors.New("settings: invalid profile")

	// ErrProfileNotFound reports a selector (name or GUID string) that
	// matched no profile.
	ErrProfileNotFound = errors.New("settings: profile not found")
)
