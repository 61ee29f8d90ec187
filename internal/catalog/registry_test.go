package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{
		{ID: "b", Title: "B"},
		{ID: "a", Title: "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"a", "b"}, reg.IDs())

	d, ok := reg.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "A", d.Title)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestNewRegistryRejectsBadDescriptors(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
		wantErr     string
	}{
		{
			name:        "empty id",
			descriptors: []Descriptor{{ID: ""}},
			wantErr:     "empty id",
		},
		{
			name: "duplicate id",
			descriptors: []Descriptor{
				{ID: "storage"},
				{ID: "storage"},
			},
			wantErr: "duplicate feature id",
		},
		{
			name: "duplicate marker in same target file",
			descriptors: []Descriptor{
				{ID: "a", TargetFile: "popup.js", Marker: "function x", Fragment: "function x() {}"},
				{ID: "b", TargetFile: "popup.js", Marker: "function x", Fragment: "function x() {}"},
			},
			wantErr: "share marker",
		},
		{
			name: "fragment without marker",
			descriptors: []Descriptor{
				{ID: "a", TargetFile: "popup.js", Fragment: "code"},
			},
			wantErr: "without a marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.descriptors)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRegistryAllowsSameMarkerInDifferentFiles(t *testing.T) {
	_, err := NewRegistry([]Descriptor{
		{ID: "a", TargetFile: "popup.js", Marker: "init()", Fragment: "init();"},
		{ID: "b", TargetFile: "background.js", Marker: "init()", Fragment: "init();"},
	})
	assert.NoError(t, err)
}

func TestAllSortedByID(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{
		{ID: "zeta"}, {ID: "alpha"}, {ID: "mid"},
	})
	require.NoError(t, err)

	all := reg.All()
	ids := make([]string, len(all))
	for i, d := range all {
		ids[i] = d.ID
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestBuiltinIsValid(t *testing.T) {
	// Builtin panics on an invalid descriptor set; constructing it is the test
	reg := Builtin()
	assert.Greater(t, reg.Len(), 0)

	// Every injecting builtin carries a marker for idempotent re-application
	for _, d := range reg.All() {
		if d.Fragment != "" {
			assert.NotEmpty(t, d.Marker, "feature %s injects without a marker", d.ID)
			assert.NotEmpty(t, d.TargetFile, "feature %s has a fragment but no target", d.ID)
			assert.Contains(t, d.Fragment, d.Marker, "feature %s fragment does not contain its own marker", d.ID)
		}
	}
}
