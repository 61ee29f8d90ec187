package pack

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/crxforge/crxforge/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProject() *project.Project {
	p := project.New("my-ext")
	p.Files["popup.js"] = "// popup\n"
	p.Files["assets/icon.svg"] = "<svg/>"
	return p
}

func TestWriteProducesReadableArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testProject()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = string(data)
	}

	assert.Equal(t, testProject().Files, got)
}

func TestWriteEntriesSorted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testProject()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"assets/icon.svg", "manifest.json", "popup.js"}, names)
}
