package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileDir is the directory containing catalog.json inside a catalog repo
	FileDir = "crxforge"
	// File is the catalog manifest filename
	File = "catalog.json"
)

// CatalogFile is the on-disk format of an external feature catalog
type CatalogFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Features    []Descriptor `json:"features"`
}

// LoadFile loads an external catalog from the given directory
func LoadFile(catalogPath string) (*CatalogFile, error) {
	path := filepath.Join(catalogPath, FileDir, File)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return &file, nil
}

// Merge builds one registry from the builtin features plus any external
// catalog files. External descriptors are tagged with their catalog name.
// Build-time invariants (unique ids, unique markers per target file) apply
// across the whole merged set.
func Merge(external map[string]*CatalogFile) (*Registry, error) {
	descriptors := make([]Descriptor, 0, len(builtinDescriptors))
	descriptors = append(descriptors, builtinDescriptors...)

	for name, file := range external {
		if file == nil {
			continue
		}
		for _, d := range file.Features {
			d.Catalog = name
			descriptors = append(descriptors, d)
		}
	}

	return NewRegistry(descriptors)
}
