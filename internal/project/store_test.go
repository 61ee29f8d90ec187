package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-ext")

	p := New("my-ext")
	p.Files["popup.js"] = "// popup\n"
	p.Files["assets/icon.svg"] = "<svg/>"

	require.NoError(t, SaveDir(p, dir))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-ext", loaded.Name)
	assert.Equal(t, p.Files, loaded.Files)
}

func TestLoadDirRequiresManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "popup.js"), []byte("//"), 0644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manifest.json")
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := LoadDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestLoadDirSkipsVCSAndDependencies(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte("{}"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "pkg", "index.js"), []byte("x"), 0644))

	p, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"manifest.json": "{}"}, p.Files)
}

func TestSaveDirRejectsPathTraversal(t *testing.T) {
	p := New("evil")
	p.Files["../outside.txt"] = "nope"

	err := SaveDir(p, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project path")
}

func TestSaveDirOverwritesProjectFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ext")

	p := New("ext")
	p.Files["popup.js"] = "// v1\n"
	require.NoError(t, SaveDir(p, dir))

	p.Files["popup.js"] = "// v2\n"
	require.NoError(t, SaveDir(p, dir))

	data, err := os.ReadFile(filepath.Join(dir, "popup.js"))
	require.NoError(t, err)
	assert.Equal(t, "// v2\n", string(data))
}

func TestCloneIsIndependent(t *testing.T) {
	p := New("ext")
	clone := p.Clone()

	clone.Files["new.js"] = "x"
	clone.Name = "other"

	assert.NotContains(t, p.Files, "new.js")
	assert.Equal(t, "ext", p.Name)
}

func TestManifestAccessors(t *testing.T) {
	p := New("ext")

	m, err := p.Manifest()
	require.NoError(t, err)
	assert.Equal(t, 3, m.ManifestVersion)
	assert.Equal(t, "ext", m.Name)

	m.AddPermissions("storage")
	require.NoError(t, p.SetManifest(m))

	again, err := p.Manifest()
	require.NoError(t, err)
	assert.True(t, again.HasPermission("storage"))
}

func TestManifestMissing(t *testing.T) {
	p := &Project{Name: "bare", Files: map[string]string{}}

	_, err := p.Manifest()
	assert.Error(t, err)
}
