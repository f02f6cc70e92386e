// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/store.go
// Summary: Settings file loading (JSON and TOML) and the embedded fallback.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/framegrace/texelsettings/defaults"
)

// Path returns the default settings file location under the user config
// directory.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelsettings", "settings.json"), nil
}

// Load reads and indexes a settings file. The extension picks the format:
// ".toml" decodes as TOML, everything else as JSON.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	}

	c, err := New(&doc)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	log.Printf("Catalog: Loaded %d profiles, %d schemes from %s", len(c.profiles), len(c.schemes), path)
	return c, nil
}

// Default builds the catalog shipped in the binary.
func Default() (*Catalog, error) {
	data, err := defaults.Settings()
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded defaults: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: embedded defaults: %w", err)
	}
	return New(&doc)
}

// LoadOrDefault loads path when it exists and falls back to the embedded
// defaults otherwise. Settings files are never written here; a missing
// file just means stock settings.
func LoadOrDefault(path string) (*Catalog, error) {
	c, err := Load(path)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	log.Printf("Catalog: No settings file at %s, using embedded defaults", path)
	return Default()
}
