package project

import (
	"fmt"

	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/scaffold"
)

// Project is an in-memory extension project: a name plus a mapping from
// relative path to text content. A project always carries manifest.json.
// Values are treated as immutable by the composition engine; use Clone
// before mutating.
type Project struct {
	Name  string            `json:"name"`
	Files map[string]string `json:"files"`
}

// New creates a blank project with a minimal manifest v3 manifest
func New(name string) *Project {
	return &Project{
		Name: name,
		Files: map[string]string{
			manifest.FileName: scaffold.DefaultManifest(name),
		},
	}
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	files := make(map[string]string, len(p.Files))
	for path, content := range p.Files {
		files[path] = content
	}
	return &Project{Name: p.Name, Files: files}
}

// Manifest parses the project's manifest.json
func (p *Project) Manifest() (*manifest.Manifest, error) {
	raw, ok := p.Files[manifest.FileName]
	if !ok {
		return nil, fmt.Errorf("project has no %s", manifest.FileName)
	}
	return manifest.Parse([]byte(raw))
}

// SetManifest serializes m back into the project's manifest.json
func (p *Project) SetManifest(m *manifest.Manifest) error {
	data, err := m.Serialize()
	if err != nil {
		return err
	}
	p.Files[manifest.FileName] = string(data)
	return nil
}
