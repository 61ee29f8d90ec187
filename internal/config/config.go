package config

import (
	"encoding/json"
	"os"
	"sync"
)

// HostMode defines the default host permission scope for new compositions
type HostMode string

const (
	// HostModeActiveTab grants access to the active tab only
	HostModeActiveTab HostMode = "active-tab"
	// HostModeAllURLs grants access to every origin
	HostModeAllURLs HostMode = "all-urls"
)

// DefaultsConfig contains default values applied to new projects
type DefaultsConfig struct {
	Framework string   `json:"framework"` // "vanilla", "react", "vue", "svelte"
	HostMode  HostMode `json:"hostMode"`  // "active-tab" or "all-urls"
	Author    string   `json:"author,omitempty"`
}

// Config represents the main configuration file structure
type Config struct {
	Locale   string             `json:"locale"` // "auto" or ISO format (e.g., "ko-KR", "en-US")
	Defaults DefaultsConfig     `json:"defaults"`
	Catalogs map[string]Catalog `json:"catalogs"`
}

// Catalog represents a registered external feature catalog
type Catalog struct {
	Source          CatalogSource `json:"source"`
	InstallLocation string        `json:"installLocation"`
	LastUpdated     string        `json:"lastUpdated"`
}

// CatalogSource describes the source of a feature catalog
type CatalogSource struct {
	Source string `json:"source"` // "git", "directory"
	URL    string `json:"url,omitempty"`
	Path   string `json:"path,omitempty"`
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
		Defaults: DefaultsConfig{
			Framework: "vanilla",
			HostMode:  HostModeActiveTab, // narrowest scope by default
		},
		Catalogs: make(map[string]Catalog),
	}
}

// Load loads the configuration from file
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Ensure maps are initialized
	if config.Catalogs == nil {
		config.Catalogs = make(map[string]Catalog)
	}

	// Set default locale if empty
	if config.Locale == "" {
		config.Locale = "auto"
	}

	// Fill defaults left empty by older config files
	if config.Defaults.Framework == "" {
		config.Defaults.Framework = "vanilla"
	}
	if config.Defaults.HostMode == "" {
		config.Defaults.HostMode = HostModeActiveTab
	}

	return &config, nil
}

// Save saves the configuration to file
func Save(config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if err := EnsureDir(CrxforgeDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// Reload reloads the configuration from file
func Reload() error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	newCfg, err := Load()
	if err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetLocale sets the locale and saves
func SetLocale(locale string) error {
	config := Get()
	config.Locale = locale
	return Save(config)
}

// GetDefaultFramework returns the configured default framework
func GetDefaultFramework() string {
	return Get().Defaults.Framework
}

// SetDefaultFramework sets the default framework and saves
func SetDefaultFramework(framework string) error {
	config := Get()
	config.Defaults.Framework = framework
	return Save(config)
}

// GetDefaultHostMode returns the configured default host permission mode
func GetDefaultHostMode() HostMode {
	return Get().Defaults.HostMode
}

// SetDefaultHostMode sets the default host permission mode and saves
func SetDefaultHostMode(mode HostMode) error {
	config := Get()
	config.Defaults.HostMode = mode
	return Save(config)
}
