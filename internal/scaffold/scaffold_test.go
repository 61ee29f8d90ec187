package scaffold

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestIsValidJSON(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(DefaultManifest("my-ext")), &m))

	assert.Equal(t, float64(3), m["manifest_version"])
	assert.Equal(t, "my-ext", m["name"])
	assert.Equal(t, "0.1.0", m["version"])
}

func TestDefaultManifestEscapesName(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(DefaultManifest(`ext "quoted"`)), &m))
	assert.Equal(t, `ext "quoted"`, m["name"])
}

func TestStubKnownFiles(t *testing.T) {
	assert.Equal(t, PopupJS, Stub("popup.js"))
	assert.Equal(t, BackgroundJS, Stub("background.js"))
	assert.Equal(t, ContentJS, Stub("content.js"))
}

func TestStubUnknownFile(t *testing.T) {
	stub := Stub("options.js")
	assert.Contains(t, stub, "options.js")
	assert.Contains(t, stub, "crxforge")
}

func TestFrameworks(t *testing.T) {
	assert.Equal(t, []string{"react", "svelte", "vanilla", "vue"}, Frameworks())

	assert.True(t, IsFramework("react"))
	assert.False(t, IsFramework("angular"))
}

func TestApplyFramework(t *testing.T) {
	files := map[string]string{
		"popup.js":      "// hand edited\n",
		"manifest.json": "{}",
	}

	require.NoError(t, ApplyFramework(files, "react"))

	assert.Contains(t, files["popup.js"], "React.createElement")
	assert.Contains(t, files["popup.html"], "react-dom")
	assert.NotEmpty(t, files["popup.css"])
	// Files outside the entry set are untouched
	assert.Equal(t, "{}", files["manifest.json"])
}

func TestApplyFrameworkUnknown(t *testing.T) {
	err := ApplyFramework(map[string]string{}, "angular")
	assert.Error(t, err)
}
