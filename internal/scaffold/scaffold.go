// Package scaffold holds the deterministic boilerplate crxforge writes
// into extension projects: the blank manifest, per-entry-point stubs and
// the framework UI file sets. Everything here is a fixed string table so
// composing the same selection twice produces byte-identical output.
package scaffold

import "fmt"

// DefaultManifest returns the manifest.json content for a blank project
func DefaultManifest(name string) string {
	return fmt.Sprintf(`{
  "manifest_version": 3,
  "name": %q,
  "version": "0.1.0",
  "description": ""
}
`, name)
}

// Entry file stubs, written when a feature or extension type needs a file
// that does not exist yet.
const (
	PopupHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <link rel="stylesheet" href="popup.css" />
  </head>
  <body>
    <main id="app">
      <h1 id="title"></h1>
    </main>
    <script src="popup.js"></script>
  </body>
</html>
`

	PopupJS = `// popup.js - extension popup logic

document.addEventListener("DOMContentLoaded", () => {
  const title = document.getElementById("title");
  if (title) {
    title.textContent = chrome.runtime.getManifest().name;
  }
});
`

	PopupCSS = `body {
  margin: 0;
  min-width: 320px;
  font-family: system-ui, sans-serif;
}

main {
  padding: 12px;
}
`

	BackgroundJS = `// background.js - extension service worker
`

	ContentJS = `// content.js - runs in the context of matched pages
`

	SidePanelHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
  </head>
  <body>
    <main id="panel"></main>
    <script src="sidepanel.js"></script>
  </body>
</html>
`

	SidePanelJS = `// sidepanel.js - side panel logic
`
)

// stubs maps well-known project paths to their initial content
var stubs = map[string]string{
	"popup.html":     PopupHTML,
	"popup.js":       PopupJS,
	"popup.css":      PopupCSS,
	"background.js":  BackgroundJS,
	"content.js":     ContentJS,
	"sidepanel.html": SidePanelHTML,
	"sidepanel.js":   SidePanelJS,
}

// Stub returns the initial content for a well-known project file. Files
// outside the known set start as a bare comment header so injected
// fragments have something to append to.
func Stub(path string) string {
	if content, ok := stubs[path]; ok {
		return content
	}
	return fmt.Sprintf("// %s - generated by crxforge\n", path)
}
