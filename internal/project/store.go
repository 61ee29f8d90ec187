package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// directories never loaded into a project
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// LoadDir reads an extension project from disk. Every regular file below
// dir becomes a project entry keyed by its slash-separated relative path.
// The directory must contain manifest.json.
func LoadDir(dir string) (*Project, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files := make(map[string]string)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := files["manifest.json"]; !ok {
		return nil, fmt.Errorf("no manifest.json in %s", dir)
	}

	return &Project{Name: filepath.Base(dir), Files: files}, nil
}

// SaveDir writes every project file below dir, creating directories as
// needed. Existing files at project paths are overwritten; files outside
// the project are left alone.
func SaveDir(p *Project, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for rel, content := range p.Files {
		if strings.Contains(rel, "..") {
			return fmt.Errorf("invalid project path: %s", rel)
		}
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}

	return nil
}
