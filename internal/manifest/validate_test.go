package manifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManifest() *Manifest {
	return &Manifest{
		ManifestVersion: 3,
		Name:            "My Extension",
		Version:         "1.2.3",
		Description:     "Does a thing",
		Icons:           map[string]string{"128": "icon.png"},
	}
}

func findingKinds(findings []Finding) []string {
	kinds := make([]string, 0, len(findings))
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	return kinds
}

func TestValidateCleanManifest(t *testing.T) {
	report := Validate(validManifest())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Manifest)
		want   string
	}{
		{
			name:   "missing manifest_version",
			mutate: func(m *Manifest) { m.ManifestVersion = 0 },
			want:   KindMissingManifestVersion,
		},
		{
			name:   "manifest v2",
			mutate: func(m *Manifest) { m.ManifestVersion = 2 },
			want:   KindBadManifestVersion,
		},
		{
			name:   "missing name",
			mutate: func(m *Manifest) { m.Name = "" },
			want:   KindMissingName,
		},
		{
			name:   "missing version",
			mutate: func(m *Manifest) { m.Version = "" },
			want:   KindMissingVersion,
		},
		{
			name:   "non numeric version",
			mutate: func(m *Manifest) { m.Version = "1.0-beta" },
			want:   KindBadVersion,
		},
		{
			name:   "five version components",
			mutate: func(m *Manifest) { m.Version = "1.2.3.4.5" },
			want:   KindBadVersion,
		},
		{
			name:   "background without service worker",
			mutate: func(m *Manifest) { m.Background = &Background{} },
			want:   KindBackgroundNoWorker,
		},
		{
			name: "persistent background",
			mutate: func(m *Manifest) {
				persistent := true
				m.Background = &Background{ServiceWorker: "bg.js", Persistent: &persistent}
			},
			want: KindBackgroundPersistent,
		},
		{
			name: "content script without matches",
			mutate: func(m *Manifest) {
				m.ContentScripts = []ContentScript{{JS: []string{"content.js"}}}
			},
			want: KindContentScriptNoMatches,
		},
		{
			name: "deprecated browser_action",
			mutate: func(m *Manifest) {
				m.Extra = map[string]json.RawMessage{"browser_action": json.RawMessage(`{}`)}
			},
			want: KindDeprecatedAction,
		},
		{
			name: "deprecated page_action",
			mutate: func(m *Manifest) {
				m.Extra = map[string]json.RawMessage{"page_action": json.RawMessage(`{}`)}
			},
			want: KindDeprecatedAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(m)

			report := Validate(m)
			assert.False(t, report.Valid)
			assert.Contains(t, findingKinds(report.Errors), tt.want)
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Manifest)
		want   string
	}{
		{
			name:   "long name",
			mutate: func(m *Manifest) { m.Name = strings.Repeat("x", 46) },
			want:   KindNameTooLong,
		},
		{
			name:   "missing description",
			mutate: func(m *Manifest) { m.Description = "" },
			want:   KindMissingDescription,
		},
		{
			name:   "long description",
			mutate: func(m *Manifest) { m.Description = strings.Repeat("x", 133) },
			want:   KindDescriptionTooLong,
		},
		{
			name:   "no icons",
			mutate: func(m *Manifest) { m.Icons = nil },
			want:   KindMissingIcons,
		},
		{
			name:   "all_urls host access",
			mutate: func(m *Manifest) { m.HostPermissions = []string{"<all_urls>"} },
			want:   KindBroadHostAccess,
		},
		{
			name:   "wildcard host access",
			mutate: func(m *Manifest) { m.HostPermissions = []string{"*://*/*"} },
			want:   KindBroadHostAccess,
		},
		{
			name: "http plus https wildcard pair",
			mutate: func(m *Manifest) {
				m.HostPermissions = []string{"http://*/*", "https://*/*"}
			},
			want: KindBroadHostAccess,
		},
		{
			name:   "tabs without activeTab",
			mutate: func(m *Manifest) { m.Permissions = []string{"tabs"} },
			want:   KindTabsWithoutActiveTab,
		},
		{
			name: "content script without sources",
			mutate: func(m *Manifest) {
				m.ContentScripts = []ContentScript{{Matches: []string{"<all_urls>"}}}
			},
			want: KindContentScriptNoSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(m)

			report := Validate(m)
			assert.True(t, report.Valid, "warnings must not invalidate")
			assert.Contains(t, findingKinds(report.Warnings), tt.want)
		})
	}
}

func TestValidateNoBroadAccessForSingleWildcard(t *testing.T) {
	m := validManifest()
	m.HostPermissions = []string{"https://*/*"}

	report := Validate(m)
	assert.NotContains(t, findingKinds(report.Warnings), KindBroadHostAccess)
}

func TestValidateTabsWithActiveTab(t *testing.T) {
	m := validManifest()
	m.Permissions = []string{"tabs", "activeTab"}

	report := Validate(m)
	assert.NotContains(t, findingKinds(report.Warnings), KindTabsWithoutActiveTab)
}

func TestValidateVersionFormats(t *testing.T) {
	valid := []string{"1", "1.0", "0.1.0", "1.2.3.4", "100.200.300.400"}
	for _, v := range valid {
		m := validManifest()
		m.Version = v
		report := Validate(m)
		require.True(t, report.Valid, "version %q should be accepted", v)
	}

	invalid := []string{"v1", "1.0.0-rc1", "1..0", ".1", "1."}
	for _, v := range invalid {
		m := validManifest()
		m.Version = v
		report := Validate(m)
		require.False(t, report.Valid, "version %q should be rejected", v)
	}
}
