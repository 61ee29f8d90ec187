package search

import (
	"sort"
	"strings"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/sahilm/fuzzy"
)

// Result represents a search result
type Result struct {
	Feature catalog.Descriptor
	Score   int // Higher is better
}

// featureSearchable wraps descriptors for fuzzy searching
type featureSearchable struct {
	features []catalog.Descriptor
}

// String returns the searchable string for a feature
func (f featureSearchable) String(i int) string {
	d := f.features[i]
	parts := []string{d.ID, d.Title}

	if d.Description != "" {
		parts = append(parts, d.Description)
	}

	parts = append(parts, d.Keywords...)
	parts = append(parts, d.Grants...)

	return strings.ToLower(strings.Join(parts, " "))
}

// Len returns the number of features
func (f featureSearchable) Len() int {
	return len(f.features)
}

// FuzzySearch performs a fuzzy search across the feature catalog
func FuzzySearch(reg *catalog.Registry, query string) []Result {
	features := reg.All()
	if len(features) == 0 {
		return nil
	}

	searchable := featureSearchable{features: features}
	matches := fuzzy.FindFrom(strings.ToLower(query), searchable)

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Feature: features[match.Index],
			Score:   match.Score,
		})
	}

	// Sort by score (descending); equal scores keep id order for stability
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// SimpleSearch performs a simple substring search
func SimpleSearch(reg *catalog.Registry, query string) []Result {
	query = strings.ToLower(query)

	var results []Result
	for _, d := range reg.All() {
		if matchesQuery(d, query) {
			results = append(results, Result{Feature: d, Score: 100})
		}
	}
	return results
}

// matchesQuery checks if a descriptor matches the search query
func matchesQuery(d catalog.Descriptor, query string) bool {
	if strings.Contains(strings.ToLower(d.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Description), query) {
		return true
	}
	for _, kw := range d.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	for _, grant := range d.Grants {
		if strings.Contains(strings.ToLower(grant), query) {
			return true
		}
	}
	return false
}
