// Package container provides dependency injection for the voice-expense application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/voice-expense/internal/categorizer"
	"fjacquet/voice-expense/internal/config"
	"fjacquet/voice-expense/internal/extraction"
	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.TaxonomyStore
	taxonomy   *categorizer.Taxonomy
	classifier *categorizer.Classifier
	aiClient   extraction.AIClient
	clock      extraction.Clock
	pipeline   *extraction.Pipeline
}

// Option customises a Container during construction.
type Option func(*options)

type options struct {
	logger   logging.Logger
	aiClient extraction.AIClient
	clock    extraction.Clock
	loader   store.TaxonomyLoader
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithAIClient replaces the Gemini client. It is only used when AI is enabled.
func WithAIClient(client extraction.AIClient) Option {
	return func(o *options) { o.aiClient = client }
}

// WithClock replaces the clock that decides what "today" is.
func WithClock(clock extraction.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithTaxonomyLoader replaces the taxonomy file loader.
func WithTaxonomyLoader(loader store.TaxonomyLoader) Option {
	return func(o *options) { o.loader = loader }
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	taxonomyStore := store.NewTaxonomyStore(cfg.Taxonomy.File, logger)
	loader := o.loader
	if loader == nil {
		loader = taxonomyStore
	}

	taxonomy, err := loadTaxonomy(loader)
	if err != nil {
		return nil, err
	}
	classifier := categorizer.NewClassifier(taxonomy, logger)

	clock := o.clock
	if clock == nil {
		loc := cfg.Location()
		clock = func() time.Time { return time.Now().In(loc) }
	}

	var aiClient extraction.AIClient
	var remote extraction.Strategy
	if cfg.AI.Enabled {
		aiClient = o.aiClient
		if aiClient == nil {
			gemini, err := extraction.NewGeminiClient(context.Background(), extraction.GeminiOptions{
				APIKey:  cfg.AI.APIKey,
				Model:   cfg.AI.Model,
				Timeout: cfg.AITimeout(),
				Now:     clock,
			}, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create AI client: %w", err)
			}
			aiClient = gemini
		}
		remote = extraction.NewAIStrategy(aiClient, logger)
		logger.Info("AI extraction enabled", logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Debug("AI extraction disabled")
	}

	local := extraction.NewLocalStrategy(classifier, clock, logger)
	pipeline := extraction.NewPipeline(remote, local, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldCount, Value: taxonomy.Len()},
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      taxonomyStore,
		taxonomy:   taxonomy,
		classifier: classifier,
		aiClient:   aiClient,
		clock:      clock,
		pipeline:   pipeline,
	}, nil
}

// loadTaxonomy builds the taxonomy from the loader, falling back to the
// built-in one when no file is present. Phrase bonuses are kept for the
// categories the file declares.
func loadTaxonomy(loader store.TaxonomyLoader) (*categorizer.Taxonomy, error) {
	categories, err := loader.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	if len(categories) == 0 {
		return categorizer.DefaultTaxonomy(), nil
	}

	declared := make(map[string]bool, len(categories))
	for _, c := range categories {
		declared[c.Name] = true
	}
	var bonuses []models.PhraseBonus
	for _, b := range categorizer.DefaultPhraseBonuses {
		if declared[b.Category] {
			bonuses = append(bonuses, b)
		}
	}

	taxonomy, err := categorizer.NewTaxonomy(categories, bonuses)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	return taxonomy, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's taxonomy store instance.
func (c *Container) GetStore() *store.TaxonomyStore {
	return c.store
}

// GetTaxonomy returns the taxonomy in use.
func (c *Container) GetTaxonomy() *categorizer.Taxonomy {
	return c.taxonomy
}

// GetClassifier returns the container's classifier instance.
func (c *Container) GetClassifier() *categorizer.Classifier {
	return c.classifier
}

// GetAIClient returns the container's AI client instance.
// Returns nil if AI is not enabled.
func (c *Container) GetAIClient() extraction.AIClient {
	return c.aiClient
}

// GetClock returns the clock used for relative dates.
func (c *Container) GetClock() extraction.Clock {
	return c.clock
}

// GetPipeline returns the extraction pipeline.
func (c *Container) GetPipeline() *extraction.Pipeline {
	return c.pipeline
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close AI client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
