package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// CrxforgeDir returns the crxforge config directory path
// ~/.config/crxforge/
func CrxforgeDir() string {
	return filepath.Join(homeDir, ".config", "crxforge")
}

// ConfigPath returns the config.json file path
// ~/.config/crxforge/config.json
func ConfigPath() string {
	return filepath.Join(CrxforgeDir(), "config.json")
}

// CatalogsDir returns the directory where external catalogs are cloned
// ~/.config/crxforge/catalogs/
func CatalogsDir() string {
	return filepath.Join(CrxforgeDir(), "catalogs")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
