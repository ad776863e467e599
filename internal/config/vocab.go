// Package config loads vocabulary-extension files. Operators whose
// workbooks use local jargon can teach the importer extra status and
// category synonyms without rebuilding; the canonical values stay fixed.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/normalize"
)

// VocabFile is the on-disk shape of a vocabulary extension:
//
//	statuses:
//	  Done: ["shipped", "closed"]
//	categories:
//	  Repair: ["sav"]
//
// Keys must be canonical status/category values; list entries are raw-cell
// synonyms (matched after trimming and lower-casing).
type VocabFile struct {
	Statuses   map[string][]string `yaml:"statuses"`
	Categories map[string][]string `yaml:"categories"`
}

var canonicalStatuses = map[string]domain.Status{
	string(domain.StatusPending):    domain.StatusPending,
	string(domain.StatusInProgress): domain.StatusInProgress,
	string(domain.StatusDone):       domain.StatusDone,
	string(domain.StatusCancelled):  domain.StatusCancelled,
	string(domain.StatusOnHold):     domain.StatusOnHold,
}

var canonicalCategories = map[string]domain.Category{
	string(domain.CategoryInstallation): domain.CategoryInstallation,
	string(domain.CategoryRepair):       domain.CategoryRepair,
	string(domain.CategoryDevelopment):  domain.CategoryDevelopment,
	string(domain.CategoryDelivery):     domain.CategoryDelivery,
	string(domain.CategoryCommercial):   domain.CategoryCommercial,
}

// LoadVocabulary reads a vocabulary file and merges it over the built-in
// FR/EN tables. Extensions win on conflicting synonyms.
func LoadVocabulary(path string) (*normalize.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary merges raw YAML vocabulary data over the defaults.
func ParseVocabulary(data []byte) (*normalize.Vocabulary, error) {
	var file VocabFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file: %w", err)
	}

	vocab := normalize.DefaultVocabulary()

	for canonical, synonyms := range file.Statuses {
		status, ok := canonicalStatuses[canonical]
		if !ok {
			return nil, fmt.Errorf("unknown canonical status %q in vocabulary file", canonical)
		}
		for _, syn := range synonyms {
			vocab.Statuses[strings.ToLower(strings.TrimSpace(syn))] = status
		}
	}

	for canonical, synonyms := range file.Categories {
		category, ok := canonicalCategories[canonical]
		if !ok {
			return nil, fmt.Errorf("unknown canonical category %q in vocabulary file", canonical)
		}
		for _, syn := range synonyms {
			vocab.Categories[strings.ToLower(strings.TrimSpace(syn))] = category
		}
	}

	return vocab, nil
}
