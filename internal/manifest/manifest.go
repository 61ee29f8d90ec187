package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// FileName is the manifest filename inside an extension project
const FileName = "manifest.json"

// Manifest represents a Chrome extension manifest (manifest v3).
// Unknown top-level keys survive a parse/serialize round trip via Extra,
// so composing features never drops fields it does not understand.
type Manifest struct {
	ManifestVersion int                        `json:"manifest_version"`
	Name            string                     `json:"name"`
	Version         string                     `json:"version"`
	Description     string                     `json:"description,omitempty"`
	Icons           map[string]string          `json:"icons,omitempty"`
	Permissions     []string                   `json:"permissions,omitempty"`
	HostPermissions []string                   `json:"host_permissions,omitempty"`
	Background      *Background                `json:"background,omitempty"`
	Action          *Action                    `json:"action,omitempty"`
	SidePanel       *SidePanel                 `json:"side_panel,omitempty"`
	ContentScripts  []ContentScript            `json:"content_scripts,omitempty"`
	Commands        map[string]json.RawMessage `json:"commands,omitempty"`

	// Extra holds top-level keys outside the modeled schema
	Extra map[string]json.RawMessage `json:"-"`
}

// Background describes the extension's background entry point
type Background struct {
	ServiceWorker string `json:"service_worker,omitempty"`
	Type          string `json:"type,omitempty"`
	// Persistent is manifest v2 only; its presence is a validation error
	Persistent *bool `json:"persistent,omitempty"`
}

// Action describes the unified toolbar action
type Action struct {
	DefaultPopup string            `json:"default_popup,omitempty"`
	DefaultTitle string            `json:"default_title,omitempty"`
	DefaultIcon  map[string]string `json:"default_icon,omitempty"`
}

// SidePanel describes the side panel entry point
type SidePanel struct {
	DefaultPath string `json:"default_path,omitempty"`
}

// ContentScript describes a single content_scripts entry
type ContentScript struct {
	Matches []string `json:"matches,omitempty"`
	JS      []string `json:"js,omitempty"`
	CSS     []string `json:"css,omitempty"`
	RunAt   string   `json:"run_at,omitempty"`
}

// canonicalKeys is the serialization order for modeled fields. Extra keys
// follow, sorted, so output is byte-identical for identical input.
var canonicalKeys = []string{
	"manifest_version",
	"name",
	"version",
	"description",
	"icons",
	"permissions",
	"host_permissions",
	"background",
	"action",
	"side_panel",
	"content_scripts",
	"commands",
}

// Parse parses manifest.json bytes into a Manifest
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	m := &Manifest{}
	known := map[string]any{
		"manifest_version": &m.ManifestVersion,
		"name":             &m.Name,
		"version":          &m.Version,
		"description":      &m.Description,
		"icons":            &m.Icons,
		"permissions":      &m.Permissions,
		"host_permissions": &m.HostPermissions,
		"background":       &m.Background,
		"action":           &m.Action,
		"side_panel":       &m.SidePanel,
		"content_scripts":  &m.ContentScripts,
		"commands":         &m.Commands,
	}

	for key, value := range raw {
		dst, ok := known[key]
		if !ok {
			if m.Extra == nil {
				m.Extra = make(map[string]json.RawMessage)
			}
			m.Extra[key] = value
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return nil, fmt.Errorf("failed to parse manifest field %q: %w", key, err)
		}
	}

	return m, nil
}

// MarshalJSON serializes the manifest with canonical key order
func (m *Manifest) MarshalJSON() ([]byte, error) {
	fields := map[string]any{
		"manifest_version": m.ManifestVersion,
		"name":             m.Name,
		"version":          m.Version,
		"description":      m.Description,
		"icons":            m.Icons,
		"permissions":      m.Permissions,
		"host_permissions": m.HostPermissions,
		"background":       m.Background,
		"action":           m.Action,
		"side_panel":       m.SidePanel,
		"content_scripts":  m.ContentScripts,
		"commands":         m.Commands,
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	write := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyData, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valueData, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(valueData)
		return nil
	}

	for _, key := range canonicalKeys {
		value := fields[key]
		if omitted(key, value) {
			continue
		}
		if err := write(key, value); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(m.Extra))
	for key := range m.Extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		if err := write(key, m.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// omitted reports whether an optional field should be left out of output.
// Required fields (manifest_version, name, version) are always written.
func omitted(key string, value any) bool {
	switch key {
	case "manifest_version", "name", "version":
		return false
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case map[string]string:
		return len(v) == 0
	case map[string]json.RawMessage:
		return len(v) == 0
	case []ContentScript:
		return len(v) == 0
	case *Background:
		return v == nil
	case *Action:
		return v == nil
	case *SidePanel:
		return v == nil
	}
	return value == nil
}

// Serialize renders the manifest as indented JSON suitable for manifest.json
func (m *Manifest) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Clone returns a deep copy of the manifest
func (m *Manifest) Clone() *Manifest {
	data, err := json.Marshal(m)
	if err != nil {
		// Marshal of a parsed manifest cannot fail; keep the API simple
		panic(fmt.Sprintf("manifest clone: %v", err))
	}
	clone, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("manifest clone: %v", err))
	}
	return clone
}

// HasPermission reports whether the given API permission is declared
func (m *Manifest) HasPermission(perm string) bool {
	for _, p := range m.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasHostPermission reports whether the given host pattern is declared
func (m *Manifest) HasHostPermission(pattern string) bool {
	for _, p := range m.HostPermissions {
		if p == pattern {
			return true
		}
	}
	return false
}

// AddPermissions unions the given API permissions into the manifest.
// Existing entries keep their position; new entries are appended in the
// order given. Nothing is ever removed.
func (m *Manifest) AddPermissions(perms ...string) {
	for _, perm := range perms {
		if !m.HasPermission(perm) {
			m.Permissions = append(m.Permissions, perm)
		}
	}
}

// AddHostPermissions unions the given host patterns into the manifest
func (m *Manifest) AddHostPermissions(patterns ...string) {
	for _, pattern := range patterns {
		if !m.HasHostPermission(pattern) {
			m.HostPermissions = append(m.HostPermissions, pattern)
		}
	}
}
