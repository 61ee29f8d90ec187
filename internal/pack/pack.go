// Package pack serializes a project into a distributable zip archive,
// the format Chrome accepts for unpacked-to-store uploads.
package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"

	"github.com/crxforge/crxforge/internal/project"
)

// Write writes the project's files as a zip archive to w. Entries are
// written in sorted path order so identical projects produce identical
// archives.
func Write(w io.Writer, p *project.Project) error {
	paths := make([]string, 0, len(p.Files))
	for path := range p.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	zw := zip.NewWriter(w)
	for _, path := range paths {
		entry, err := zw.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", path, err)
		}
		if _, err := entry.Write([]byte(p.Files[path])); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", path, err)
		}
	}

	return zw.Close()
}
