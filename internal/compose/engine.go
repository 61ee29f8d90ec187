package compose

import (
	"sort"
	"strings"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/crxforge/crxforge/internal/scaffold"
)

// Engine merges feature selections into extension projects. It holds only
// the immutable catalog: every Compose call is a pure function of its
// inputs, so concurrent calls need no locking.
type Engine struct {
	catalog *catalog.Registry
}

// NewEngine creates an engine over the given feature catalog
func NewEngine(reg *catalog.Registry) *Engine {
	return &Engine{catalog: reg}
}

// Result is a successful composition: the new project value and the ids
// of the features applied. Features skipped by the marker check are still
// listed - they reached their intended end state.
type Result struct {
	Project *project.Project
	Applied []string
}

// Compose applies a selection to a project and returns the new project.
// The input project is never mutated: on any error the caller's value is
// exactly what it was, with no partial writes.
func (e *Engine) Compose(p *project.Project, sel Selection) (*Result, error) {
	raw, ok := p.Files[manifest.FileName]
	if !ok {
		return nil, &ManifestError{Err: errMissingManifest}
	}
	m, err := manifest.Parse([]byte(raw))
	if err != nil {
		return nil, &ManifestError{Err: err}
	}

	descriptors, err := e.resolve(sel.Features)
	if err != nil {
		return nil, err
	}

	if sel.IsZero() {
		return &Result{Project: p.Clone(), Applied: []string{}}, nil
	}

	work := p.Clone()

	applyExtensionType(work, m, sel)

	for _, d := range descriptors {
		m.AddPermissions(d.Grants...)
		applyHostAccess(m, d.HostAccess)

		if d.RequiresBackground {
			ensureBackground(work, m)
		}

		if d.TargetFile != "" && d.Fragment != "" {
			injectFragment(work, d)
		}

		if d.Mutate != nil {
			d.Mutate(m)
		}
	}

	applyHostMode(m, sel)

	if sel.Framework != FrameworkNone {
		// Wholesale replacement: hand edits to the popup entry files are
		// lost. Callers confirm before selecting a framework.
		if err := scaffold.ApplyFramework(work.Files, string(sel.Framework)); err != nil {
			return nil, err
		}
	}

	if sel.Identity.Name != "" {
		m.Name = sel.Identity.Name
		work.Name = sel.Identity.Name
	}
	if sel.Identity.Description != "" {
		m.Description = sel.Identity.Description
	}

	if err := work.SetManifest(m); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		applied = append(applied, d.ID)
	}

	return &Result{Project: work, Applied: applied}, nil
}

// resolve maps feature ids to descriptors, sorted by id. Every id must be
// in the catalog; unknown ids fail the call before anything is applied.
func (e *Engine) resolve(ids []string) ([]catalog.Descriptor, error) {
	seen := make(map[string]bool, len(ids))
	var unknown []string
	descriptors := make([]catalog.Descriptor, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		d, ok := e.catalog.Lookup(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		descriptors = append(descriptors, d)
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFeatureError{IDs: unknown}
	}

	sort.Slice(descriptors, func(i, j int) bool { return descriptors[i].ID < descriptors[j].ID })
	return descriptors, nil
}

// applyExtensionType writes the manifest fields for the chosen type. Only
// the chosen type's fields are touched: switching types does not retract
// fields a previous type wrote. Validation reports surface leftovers.
func applyExtensionType(work *project.Project, m *manifest.Manifest, sel Selection) {
	switch sel.Type {
	case TypeContentScript:
		if !hasContentScriptEntry(m, "content.js") {
			m.ContentScripts = append(m.ContentScripts, manifest.ContentScript{
				Matches: []string{"<all_urls>"},
				JS:      []string{"content.js"},
			})
		}
		ensureFile(work, "content.js")

	case TypePopup:
		if m.Action == nil {
			m.Action = &manifest.Action{}
		}
		m.Action.DefaultPopup = "popup.html"
		ensureFile(work, "popup.html")
		ensureFile(work, "popup.js")
		ensureFile(work, "popup.css")

	case TypeSidePanel:
		if m.SidePanel == nil {
			m.SidePanel = &manifest.SidePanel{}
		}
		m.SidePanel.DefaultPath = "sidepanel.html"
		m.AddPermissions("sidePanel")
		ensureFile(work, "sidepanel.html")
		ensureFile(work, "sidepanel.js")

	case TypePageAction:
		if m.Action == nil {
			m.Action = &manifest.Action{}
		}
		if m.Action.DefaultTitle == "" {
			m.Action.DefaultTitle = m.Name
		}
	}
}

// applyHostAccess merges a single descriptor's implied host permission
func applyHostAccess(m *manifest.Manifest, access catalog.HostAccess) {
	switch access {
	case catalog.HostAccessActiveTab:
		m.AddPermissions("activeTab")
	case catalog.HostAccessAllURLs:
		m.AddHostPermissions("<all_urls>")
	}
}

// applyHostMode merges the selection's host permission mode
func applyHostMode(m *manifest.Manifest, sel Selection) {
	switch sel.HostMode {
	case HostModeActiveTab:
		m.AddPermissions("activeTab")
	case HostModeAllURLs:
		m.AddHostPermissions("<all_urls>")
	case HostModeCustom:
		m.AddHostPermissions(sel.HostPatterns...)
	}
}

// ensureBackground provisions the service worker entry if absent
func ensureBackground(work *project.Project, m *manifest.Manifest) {
	if m.Background == nil {
		m.Background = &manifest.Background{}
	}
	if m.Background.ServiceWorker == "" {
		m.Background.ServiceWorker = "background.js"
	}
	ensureFile(work, m.Background.ServiceWorker)
}

// ensureFile creates a project file from its stub if absent
func ensureFile(work *project.Project, path string) {
	if _, ok := work.Files[path]; !ok {
		work.Files[path] = scaffold.Stub(path)
	}
}

// injectFragment appends a feature's code fragment to its target file.
// The marker check makes re-application a no-op.
func injectFragment(work *project.Project, d catalog.Descriptor) {
	ensureFile(work, d.TargetFile)

	content := work.Files[d.TargetFile]
	if d.Marker != "" && strings.Contains(content, d.Marker) {
		return
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	work.Files[d.TargetFile] = content + "\n" + d.Fragment + "\n"
}

// hasContentScriptEntry reports whether any content_scripts entry already
// loads the given script
func hasContentScriptEntry(m *manifest.Manifest, script string) bool {
	for _, cs := range m.ContentScripts {
		for _, js := range cs.JS {
			if js == script {
				return true
			}
		}
	}
	return false
}
