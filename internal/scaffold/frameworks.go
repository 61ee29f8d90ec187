package scaffold

import (
	"fmt"
	"sort"
)

// Framework UI file sets. Applying a framework replaces the popup entry
// files wholesale: prior hand edits to those files are discarded. Callers
// must warn before applying one to an existing project.

// entryFiles are the popup entry files a framework replaces
var entryFiles = []string{"popup.html", "popup.js", "popup.css"}

// frameworkFiles maps framework name to the file set it writes
var frameworkFiles = map[string]map[string]string{
	"vanilla": {
		"popup.html": PopupHTML,
		"popup.js":   PopupJS,
		"popup.css":  PopupCSS,
	},
	"react": {
		"popup.html": `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <link rel="stylesheet" href="popup.css" />
    <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  </head>
  <body>
    <div id="root"></div>
    <script src="popup.js"></script>
  </body>
</html>
`,
		"popup.js": `// popup.js - React entry point

const e = React.createElement;

function App() {
  return e("main", null, e("h1", null, chrome.runtime.getManifest().name));
}

ReactDOM.createRoot(document.getElementById("root")).render(e(App));
`,
		"popup.css": PopupCSS,
	},
	"vue": {
		"popup.html": `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <link rel="stylesheet" href="popup.css" />
    <script src="https://unpkg.com/vue@3/dist/vue.global.prod.js"></script>
  </head>
  <body>
    <div id="app">{{ title }}</div>
    <script src="popup.js"></script>
  </body>
</html>
`,
		"popup.js": `// popup.js - Vue entry point

Vue.createApp({
  data() {
    return { title: chrome.runtime.getManifest().name };
  },
}).mount("#app");
`,
		"popup.css": PopupCSS,
	},
	"svelte": {
		"popup.html": `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <link rel="stylesheet" href="popup.css" />
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="popup.js"></script>
  </body>
</html>
`,
		"popup.js": `// popup.js - Svelte entry point
// Compiled Svelte output goes here; run the bundler to regenerate.

document.getElementById("app").textContent = chrome.runtime.getManifest().name;
`,
		"popup.css": PopupCSS,
	},
}

// Frameworks returns the supported framework names, sorted
func Frameworks() []string {
	names := make([]string, 0, len(frameworkFiles))
	for name := range frameworkFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsFramework reports whether name is a supported framework
func IsFramework(name string) bool {
	_, ok := frameworkFiles[name]
	return ok
}

// ApplyFramework replaces the popup entry files in files with the given
// framework's boilerplate. Existing content at those paths is overwritten.
func ApplyFramework(files map[string]string, framework string) error {
	set, ok := frameworkFiles[framework]
	if !ok {
		return fmt.Errorf("unknown framework: %s", framework)
	}
	for _, path := range entryFiles {
		files[path] = set[path]
	}
	return nil
}
