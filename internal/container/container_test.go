package container

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/voice-expense/internal/categorizer"
	"fjacquet/voice-expense/internal/config"
	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAIClient struct {
	expense models.ExtractedExpense
	err     error
	closed  bool
}

func (s *stubAIClient) ExtractExpense(ctx context.Context, transcript string, categories []string) (models.ExtractedExpense, error) {
	return s.expense, s.err
}

func (s *stubAIClient) Close() error {
	s.closed = true
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.AI.Model = "gemini-1.5-flash"
	cfg.AI.TimeoutSeconds = 5
	cfg.Taxonomy.File = filepath.Join(os.TempDir(), "voice-expense-missing-taxonomy.yaml")
	cfg.Dates.Timezone = "UTC"
	cfg.Batch.Workers = 2
	cfg.Batch.Delimiter = ","
	return cfg
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_WithoutAI(t *testing.T) {
	c, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()), WithClock(fixedClock))
	require.NoError(t, err)
	defer func() { assert.NoError(t, c.Close()) }()

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetStore())
	assert.NotNil(t, c.GetClassifier())
	assert.Nil(t, c.GetAIClient())
	assert.Same(t, categorizer.DefaultTaxonomy(), c.GetTaxonomy())

	result, err := c.GetPipeline().Extract(context.Background(), "lunch yesterday 12 dollars")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, models.SourceLocal, result.Source)
	assert.Equal(t, "2024-03-09", result.Expense.Date)
}

func TestNewContainer_WithAI(t *testing.T) {
	cfg := testConfig()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = "test-key"

	client := &stubAIClient{expense: models.ExtractedExpense{
		Description: "Gas",
		Amount:      decimal.NewFromInt(45),
		Category:    models.CategoryTransport,
		Date:        "2024-03-10",
	}}

	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()), WithAIClient(client), WithClock(fixedClock))
	require.NoError(t, err)

	assert.Same(t, client, c.GetAIClient())

	result, err := c.GetPipeline().Extract(context.Background(), "Bought gas for forty five dollars")
	require.NoError(t, err)
	assert.Equal(t, models.SourceRemote, result.Source)
	assert.Equal(t, "Gas", result.Expense.Description)

	require.NoError(t, c.Close())
	assert.True(t, client.closed)
}

func TestNewContainer_AIClientIgnoredWhenDisabled(t *testing.T) {
	client := &stubAIClient{err: errors.New("should not be called")}
	c, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()), WithAIClient(client))
	require.NoError(t, err)
	assert.Nil(t, c.GetAIClient())
}

func TestNewContainer_TaxonomyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `categories:
  - name: Healthcare
    keywords: [doctor, visit]
  - name: Travel
    keywords: [hotel]
  - name: Other
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := testConfig()
	cfg.Taxonomy.File = path

	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	assert.Equal(t, []string{models.CategoryHealthcare, models.CategoryTravel, models.CategoryOther}, c.GetTaxonomy().Names())
	// bonuses for Healthcare survive; the others were never declared
	assert.Len(t, c.GetTaxonomy().PhraseBonuses(), 3)
	assert.Equal(t, models.CategoryOther, c.GetClassifier().Classify("lunch").Name)
}

func TestNewContainer_InvalidTaxonomy(t *testing.T) {
	loader := &store.MockTaxonomyStore{Categories: []models.CategoryConfig{{Name: "Groceries", Keywords: []string{"coop"}}}}

	_, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()), WithTaxonomyLoader(loader))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid taxonomy")
}

func TestNewContainer_TaxonomyLoadError(t *testing.T) {
	loader := &store.MockTaxonomyStore{LoadCategoriesError: os.ErrPermission}

	_, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()), WithTaxonomyLoader(loader))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoadTaxonomy_DropsBonusesForUndeclaredCategories(t *testing.T) {
	loader := &store.MockTaxonomyStore{Categories: []models.CategoryConfig{
		{Name: models.CategoryTravel, Keywords: []string{"hotel"}},
		{Name: models.CategoryOther},
	}}

	tax, err := loadTaxonomy(loader)
	require.NoError(t, err)
	assert.Empty(t, tax.PhraseBonuses())
}

func TestContainer_DefaultClockUsesConfiguredZone(t *testing.T) {
	cfg := testConfig()
	cfg.Dates.Timezone = "UTC"

	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.GetClock()().Location())
}
