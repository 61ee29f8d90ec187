package compose

import (
	"strings"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/project"
)

// AppliedFeatures reports which catalog features look already composed
// into the project. Features that inject code are detected by their
// marker; manifest-only features by their grants being present. This is a
// heuristic for display purposes - composition itself relies only on the
// per-feature marker check.
func AppliedFeatures(p *project.Project, reg *catalog.Registry) map[string]bool {
	applied := make(map[string]bool)

	m, err := p.Manifest()
	if err != nil {
		return applied
	}

	for _, d := range reg.All() {
		applied[d.ID] = featureApplied(p, m, d)
	}
	return applied
}

func featureApplied(p *project.Project, m *manifest.Manifest, d catalog.Descriptor) bool {
	if d.Fragment != "" && d.Marker != "" {
		content, ok := p.Files[d.TargetFile]
		return ok && strings.Contains(content, d.Marker)
	}

	if len(d.Grants) == 0 {
		return false
	}
	for _, grant := range d.Grants {
		if !m.HasPermission(grant) {
			return false
		}
	}
	return true
}
