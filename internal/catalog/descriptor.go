package catalog

import "github.com/crxforge/crxforge/internal/manifest"

// HostAccess is the host permission a feature implies on its own
type HostAccess string

const (
	// HostAccessNone implies no host permission
	HostAccessNone HostAccess = ""
	// HostAccessActiveTab implies the "activeTab" permission
	HostAccessActiveTab HostAccess = "active-tab"
	// HostAccessAllURLs implies the "<all_urls>" host permission
	HostAccessAllURLs HostAccess = "all-urls"
)

// Descriptor describes one optional capability: the permissions it needs,
// the code it injects and the manifest changes it makes.
//
// Marker is a substring used to detect that Fragment was already injected
// into TargetFile. Substring detection is brittle - editing the injected
// block past recognition makes the feature re-inject - but it keeps
// composition a pure text transformation. Markers must be unique among all
// descriptors sharing a TargetFile; NewRegistry enforces this.
type Descriptor struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`

	// Grants are the API permissions the feature requires
	Grants []string `json:"grants,omitempty"`
	// HostAccess is the host permission the feature implies
	HostAccess HostAccess `json:"hostAccess,omitempty"`
	// RequiresBackground provisions a service worker when set
	RequiresBackground bool `json:"requiresBackground,omitempty"`

	// TargetFile and Fragment describe the code injection; both empty for
	// manifest-only features
	TargetFile string `json:"targetFile,omitempty"`
	Fragment   string `json:"fragment,omitempty"`
	Marker     string `json:"marker,omitempty"`

	// Mutate applies a manifest change beyond permission grants. Builtin
	// only; the engine calls it on its private working copy.
	Mutate func(*manifest.Manifest) `json:"-"`

	// Catalog is the name of the external catalog that contributed this
	// descriptor; empty for builtin features
	Catalog string `json:"-"`
}
