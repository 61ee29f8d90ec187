package catalog

import (
	"sync"
	"time"

	"github.com/crxforge/crxforge/internal/config"
)

var (
	sources     *Sources
	sourcesOnce sync.Once
)

// Sources manages the registered external catalogs. Registration state
// lives in the config file; the cloned repos live under CatalogsDir.
type Sources struct {
	mu sync.RWMutex
}

// GetSources returns the singleton sources instance
func GetSources() *Sources {
	sourcesOnce.Do(func() {
		sources = &Sources{}
	})
	return sources
}

// List returns all registered catalogs by name
func (s *Sources) List() map[string]config.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := config.Get()
	result := make(map[string]config.Catalog, len(cfg.Catalogs))
	for name, c := range cfg.Catalogs {
		result[name] = c
	}
	return result
}

// Get returns a single catalog by name, or nil if not registered
func (s *Sources) Get(name string) *config.Catalog {
	catalogs := s.List()
	c, ok := catalogs[name]
	if !ok {
		return nil
	}
	return &c
}

// Exists checks if a catalog is registered
func (s *Sources) Exists(name string) bool {
	return s.Get(name) != nil
}

// Add registers a new catalog
func (s *Sources) Add(name, url, installLocation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := config.Get()
	cfg.Catalogs[name] = config.Catalog{
		Source: config.CatalogSource{
			Source: "git",
			URL:    url,
		},
		InstallLocation: installLocation,
		LastUpdated:     time.Now().Format(time.RFC3339),
	}
	return config.Save(cfg)
}

// Remove unregisters a catalog
func (s *Sources) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := config.Get()
	delete(cfg.Catalogs, name)
	return config.Save(cfg)
}

// UpdateTimestamp updates the last updated timestamp for a catalog
func (s *Sources) UpdateTimestamp(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := config.Get()
	if c, ok := cfg.Catalogs[name]; ok {
		c.LastUpdated = time.Now().Format(time.RFC3339)
		cfg.Catalogs[name] = c
		return config.Save(cfg)
	}
	return nil
}

// Default builds the full feature registry: builtin features merged with
// every registered external catalog. Catalogs whose files cannot be read
// are skipped; a merge conflict (duplicate id or marker) is an error.
func Default() (*Registry, error) {
	external := make(map[string]*CatalogFile)
	for name, c := range GetSources().List() {
		file, err := LoadFile(c.InstallLocation)
		if err != nil {
			continue
		}
		external[name] = file
	}
	return Merge(external)
}
