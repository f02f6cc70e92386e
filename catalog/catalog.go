// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/catalog.go
// Summary: The settings catalog: profiles, globals and color schemes.
// Usage: Implements settings.ProfileSource; resolution pipelines consume it.

// Package catalog owns the loaded settings universe: the ordered profile
// list, the global settings and the named color schemes, indexed for the
// lookups the resolution pipeline needs.
package catalog

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/framegrace/texelsettings/profile"
	"github.com/framegrace/texelsettings/scheme"
	"github.com/framegrace/texelsettings/settings"
)

// Document is the wire shape of a settings file, shared by the JSON and
// TOML formats and by the embedded defaults.
type Document struct {
	// DefaultProfile selects the profile used when a request names none:
	// a GUID string or an exact profile name. Empty means the first
	// profile in the list.
	DefaultProfile string `json:"defaultProfile,omitempty" toml:"defaultProfile,omitempty"`

	Globals  *settings.GlobalSettings `json:"globals,omitempty" toml:"globals,omitempty"`
	Profiles []*profile.Profile       `json:"profiles" toml:"profiles"`
	Schemes  []*scheme.ColorScheme    `json:"schemes,omitempty" toml:"schemes,omitempty"`
}

// Catalog is an immutable, indexed view of one Document.
type Catalog struct {
	profiles  []*profile.Profile
	index     map[uuid.UUID]*profile.Profile
	schemes   scheme.Map
	globals   *settings.GlobalSettings
	defaultID uuid.UUID
}

// New builds a catalog from a document. Profile order is preserved.
// Duplicate profile GUIDs and duplicate scheme names keep the first entry;
// later ones are dropped with a log line. The default-profile selector may
// be a GUID or a name; when it matches nothing the first profile wins.
func New(doc *Document) (*Catalog, error) {
	if doc == nil || len(doc.Profiles) == 0 {
		return nil, fmt.Errorf("catalog: no profiles")
	}

	c := &Catalog{
		index:   make(map[uuid.UUID]*profile.Profile, len(doc.Profiles)),
		schemes: make(scheme.Map, len(doc.Schemes)),
	}

	for _, p := range doc.Profiles {
		if p == nil {
			continue
		}
		if p.GUID == uuid.Nil {
			p.GUID = uuid.NewSHA1(profile.Namespace, []byte(p.Name))
		}
		if _, dup := c.index[p.GUID]; dup {
			log.Printf("Catalog: Duplicate profile guid %s (%s), keeping the first", p.GUID, p.Name)
			continue
		}
		c.index[p.GUID] = p
		c.profiles = append(c.profiles, p)
	}
	if len(c.profiles) == 0 {
		return nil, fmt.Errorf("catalog: no profiles")
	}

	for _, s := range doc.Schemes {
		if s == nil || s.Name == "" {
			continue
		}
		if _, dup := c.schemes[s.Name]; dup {
			log.Printf("Catalog: Duplicate scheme %q, keeping the first", s.Name)
			continue
		}
		c.schemes[s.Name] = s
	}

	c.globals = doc.Globals
	if c.globals == nil {
		c.globals = settings.DefaultGlobals()
	}
	c.globals.ColorSchemes = c.schemes

	c.defaultID = c.profiles[0].GUID
	if doc.DefaultProfile != "" {
		if id, ok := c.lookupSelector(doc.DefaultProfile); ok {
			c.defaultID = id
		} else {
			log.Printf("Catalog: Default profile %q not found, using %q", doc.DefaultProfile, c.profiles[0].Name)
		}
	}

	return c, nil
}

// lookupSelector resolves a GUID string or an exact profile name.
func (c *Catalog) lookupSelector(selector string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(selector); err == nil {
		if _, ok := c.index[id]; ok {
			return id, true
		}
		return uuid.Nil, false
	}
	for _, p := range c.profiles {
		if p.Name == selector {
			return p.GUID, true
		}
	}
	return uuid.Nil, false
}

// FindProfile returns the profile for id, or nil.
func (c *Catalog) FindProfile(id uuid.UUID) *profile.Profile {
	return c.index[id]
}

// ProfileForArgs resolves the profile selector of a new-terminal request.
// Nil args and an empty selector pick the default profile.
func (c *Catalog) ProfileForArgs(args *settings.NewTerminalArgs) (uuid.UUID, bool) {
	if args == nil || args.Profile == "" {
		return c.defaultID, true
	}
	return c.lookupSelector(args.Profile)
}

// Globals returns the application-wide settings, scheme map included.
func (c *Catalog) Globals() *settings.GlobalSettings { return c.globals }

// Profiles returns the profiles in file order. The slice is a copy; the
// profiles are shared and must be treated as read-only.
func (c *Catalog) Profiles() []*profile.Profile {
	return append([]*profile.Profile(nil), c.profiles...)
}

// Schemes returns the scheme map. Treat it as read-only.
func (c *Catalog) Schemes() scheme.Map { return c.schemes }

// DefaultProfileID returns the id ProfileForArgs falls back to.
func (c *Catalog) DefaultProfileID() uuid.UUID { return c.defaultID }
