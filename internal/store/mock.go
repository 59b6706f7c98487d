package store

import (
	"fjacquet/voice-expense/internal/models"
)

// TaxonomyLoader is the read side of TaxonomyStore.
type TaxonomyLoader interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// MockTaxonomyStore is a mock implementation of TaxonomyLoader for testing.
type MockTaxonomyStore struct {
	Categories          []models.CategoryConfig
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockTaxonomyStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
