// Package store loads and saves the category taxonomy file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultTaxonomyFile is the file name looked up when no path is configured.
const DefaultTaxonomyFile = "taxonomy.yaml"

// TaxonomyStore manages loading and saving of the category taxonomy.
type TaxonomyStore struct {
	TaxonomyFile string
	logger       logging.Logger
}

// NewTaxonomyStore creates a new store for the taxonomy file. An empty path
// selects DefaultTaxonomyFile in the standard locations.
func NewTaxonomyStore(taxonomyFile string, logger logging.Logger) *TaxonomyStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TaxonomyStore{
		TaxonomyFile: taxonomyFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *TaxonomyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".voice-expense", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".voice-expense", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *TaxonomyStore) filename() string {
	if s.TaxonomyFile == "" {
		return DefaultTaxonomyFile
	}
	return s.TaxonomyFile
}

// LoadCategories loads the category entries from the taxonomy file.
// A missing file is not an error: the result is nil and callers fall back
// to the built-in taxonomy.
func (s *TaxonomyStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.filename()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Taxonomy file not found, using built-in taxonomy",
				logging.Field{Key: logging.FieldInputFile, Value: filename})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- user supplied config path
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file: %w", err)
	}

	// "categories: [...]" is the documented layout
	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		s.logger.Debug("Loaded taxonomy",
			logging.Field{Key: logging.FieldInputFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(cfg.Categories)})
		return cfg.Categories, nil
	}

	// a bare list without the top-level key
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil && len(categories) > 0 {
		s.logger.Debug("Loaded taxonomy from bare list",
			logging.Field{Key: logging.FieldInputFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categories)})
		return categories, nil
	}

	return s.parseCategoryMap(data, filePath)
}

// parseCategoryMap accepts the short layout "Category Name: [kw, kw]".
// Map order is not preserved by YAML decoding into a Go map, so entries are
// decoded through a yaml.Node to keep the declaration order.
func (s *TaxonomyStore) parseCategoryMap(data []byte, filePath string) ([]models.CategoryConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy file: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("error parsing taxonomy file %s: document is empty", filePath)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("error parsing taxonomy file %s: unsupported layout", filePath)
	}

	var categories []models.CategoryConfig
	for i := 0; i+1 < len(root.Content); i += 2 {
		category := models.CategoryConfig{Name: strings.TrimSpace(root.Content[i].Value)}

		var keywords []string
		if err := root.Content[i+1].Decode(&keywords); err != nil {
			return nil, fmt.Errorf("error parsing keywords of %q: %w", category.Name, err)
		}
		category.Keywords = keywords
		categories = append(categories, category)
	}

	s.logger.Debug("Parsed taxonomy from category map",
		logging.Field{Key: logging.FieldInputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}

// SaveCategories writes the category entries to path in the documented
// "categories: [...]" layout, creating parent directories as needed.
func (s *TaxonomyStore) SaveCategories(path string, categories []models.CategoryConfig) error {
	if path == "" {
		path = s.filename()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}

	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing taxonomy: %w", err)
	}

	s.logger.Debug("Saved taxonomy",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return nil
}
