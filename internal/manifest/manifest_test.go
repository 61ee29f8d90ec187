package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimal(t *testing.T) {
	m, err := Parse([]byte(`{"manifest_version": 3, "name": "ext", "version": "1.0"}`))
	require.NoError(t, err)

	assert.Equal(t, 3, m.ManifestVersion)
	assert.Equal(t, "ext", m.Name)
	assert.Equal(t, "1.0", m.Version)
	assert.Empty(t, m.Extra)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestParseRejectsWrongFieldType(t *testing.T) {
	_, err := Parse([]byte(`{"manifest_version": "three", "name": "ext", "version": "1.0"}`))
	assert.Error(t, err)
}

func TestParsePreservesUnknownKeys(t *testing.T) {
	input := `{
  "manifest_version": 3,
  "name": "ext",
  "version": "1.0",
  "minimum_chrome_version": "120",
  "web_accessible_resources": [{"resources": ["img/*"], "matches": ["<all_urls>"]}]
}`
	m, err := Parse([]byte(input))
	require.NoError(t, err)

	assert.Contains(t, m.Extra, "minimum_chrome_version")
	assert.Contains(t, m.Extra, "web_accessible_resources")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"minimum_chrome_version":"120"`)
	assert.Contains(t, string(out), `"web_accessible_resources"`)
}

func TestMarshalCanonicalOrder(t *testing.T) {
	m := &Manifest{
		ManifestVersion: 3,
		Name:            "ext",
		Version:         "1.0",
		Permissions:     []string{"storage"},
		Extra: map[string]json.RawMessage{
			"zeta":  json.RawMessage(`1`),
			"alpha": json.RawMessage(`2`),
		},
	}

	out, err := json.Marshal(m)
	require.NoError(t, err)

	want := `{"manifest_version":3,"name":"ext","version":"1.0","permissions":["storage"],"alpha":2,"zeta":1}`
	assert.Equal(t, want, string(out))
}

func TestSerializeIsDeterministic(t *testing.T) {
	input := `{
  "version": "2.0.1",
  "zzz_custom": {"b": 2, "a": 1},
  "name": "ext",
  "manifest_version": 3,
  "permissions": ["storage", "alarms"]
}`

	m1, err := Parse([]byte(input))
	require.NoError(t, err)
	m2, err := Parse([]byte(input))
	require.NoError(t, err)

	out1, err := m1.Serialize()
	require.NoError(t, err)
	out2, err := m2.Serialize()
	require.NoError(t, err)

	assert.Equal(t, out1, out2)

	// Serialized output parses back to the same manifest
	m3, err := Parse(out1)
	require.NoError(t, err)
	out3, err := m3.Serialize()
	require.NoError(t, err)
	assert.Equal(t, out1, out3)
}

func TestMarshalOmitsEmptyOptionalFields(t *testing.T) {
	m := &Manifest{ManifestVersion: 3, Name: "ext", Version: "1.0"}

	out, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, `{"manifest_version":3,"name":"ext","version":"1.0"}`, string(out))
}

func TestMarshalKeepsRequiredFieldsWhenZero(t *testing.T) {
	m := &Manifest{}

	out, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, `{"manifest_version":0,"name":"","version":""}`, string(out))
}

func TestAddPermissions(t *testing.T) {
	m := &Manifest{Permissions: []string{"storage"}}

	m.AddPermissions("tabs", "storage", "alarms")

	assert.Equal(t, []string{"storage", "tabs", "alarms"}, m.Permissions)
}

func TestAddHostPermissions(t *testing.T) {
	m := &Manifest{}

	m.AddHostPermissions("<all_urls>")
	m.AddHostPermissions("<all_urls>", "https://example.com/*")

	assert.Equal(t, []string{"<all_urls>", "https://example.com/*"}, m.HostPermissions)
}

func TestClone(t *testing.T) {
	m, err := Parse([]byte(`{
  "manifest_version": 3,
  "name": "ext",
  "version": "1.0",
  "permissions": ["storage"],
  "background": {"service_worker": "background.js"},
  "custom_key": {"nested": true}
}`))
	require.NoError(t, err)

	clone := m.Clone()
	clone.AddPermissions("tabs")
	clone.Background.ServiceWorker = "other.js"

	assert.Equal(t, []string{"storage"}, m.Permissions)
	assert.Equal(t, "background.js", m.Background.ServiceWorker)
	assert.Contains(t, clone.Extra, "custom_key")
}
