package catalog

import (
	"fmt"
	"sort"
)

// Registry is the immutable feature catalog. It is built once, validated
// at build time, and never mutated afterwards.
type Registry struct {
	byID map[string]Descriptor
	ids  []string
}

// NewRegistry builds a registry from the given descriptors. It rejects
// empty or duplicate ids, and duplicate markers within one target file.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	byID := make(map[string]Descriptor, len(descriptors))
	markers := make(map[string]string) // targetFile+marker -> feature id

	for _, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("feature descriptor with empty id")
		}
		if _, exists := byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate feature id: %s", d.ID)
		}
		if d.TargetFile != "" && d.Marker != "" {
			key := d.TargetFile + "\x00" + d.Marker
			if other, exists := markers[key]; exists {
				return nil, fmt.Errorf("features %s and %s share marker %q in %s", other, d.ID, d.Marker, d.TargetFile)
			}
			markers[key] = d.ID
		}
		if d.TargetFile != "" && d.Marker == "" && d.Fragment != "" {
			return nil, fmt.Errorf("feature %s injects into %s without a marker", d.ID, d.TargetFile)
		}
		byID[d.ID] = d
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Registry{byID: byID, ids: ids}, nil
}

// MustNewRegistry is NewRegistry for descriptor sets known at compile time
func MustNewRegistry(descriptors []Descriptor) *Registry {
	r, err := NewRegistry(descriptors)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the descriptor for id
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// IDs returns all feature ids, sorted
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns all descriptors, sorted by id
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered features
func (r *Registry) Len() int {
	return len(r.ids)
}
