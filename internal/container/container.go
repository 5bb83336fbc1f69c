// Package container provides dependency injection for the event-budget application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/event-budget/internal/config"
	"fjacquet/event-budget/internal/export"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/report"
	"fjacquet/event-budget/internal/session"
	"fjacquet/event-budget/internal/store"
	"fjacquet/event-budget/internal/suggestion"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	documents *store.DocumentStore
	aiClient  suggestion.Client
	suggester *suggestion.Suggester
	exporter  *export.CSVExporter
	reporter  *report.ReportGenerator
	closer    func() error
}

// Option adjusts how the container is wired.
type Option func(*options)

type options struct {
	logger       logging.Logger
	documentPath string
	aiClient     suggestion.Client
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDocumentPath overrides budget.file.
func WithDocumentPath(path string) Option {
	return func(o *options) { o.documentPath = path }
}

// WithAIClient injects the model client instead of connecting to Gemini.
func WithAIClient(client suggestion.Client) Option {
	return func(o *options) { o.aiClient = client }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	}

	path := o.documentPath
	if path == "" {
		path = cfg.Budget.File
	}
	documents := store.NewDocumentStore(path, logger)

	c := &Container{
		logger:    logger,
		config:    cfg,
		documents: documents,
		exporter:  export.NewCSVExporter(cfg.Delimiter(), logger),
		reporter:  report.NewReportGenerator(logger),
		closer:    func() error { return nil },
	}

	// Create AI client (if enabled)
	switch {
	case o.aiClient != nil:
		c.aiClient = o.aiClient
	case cfg.AI.Enabled && cfg.AI.APIKey != "":
		gemini, err := suggestion.NewGeminiClient(context.Background(), cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		c.aiClient = gemini
		c.closer = gemini.Close
	}
	if c.aiClient != nil {
		logger.Debug("AI suggestions enabled", logging.F(logging.FieldModel, cfg.AI.Model))
	} else {
		logger.Debug("AI suggestions disabled")
	}
	c.suggester = suggestion.NewSuggester(c.aiClient, cfg.AI.Model, cfg.Timeout(), logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldAIEnabled, c.aiClient != nil))

	return c, nil
}

// NewSession returns an empty session using the configured currency.
func (c *Container) NewSession() *session.Session {
	return session.New(
		session.WithLogger(c.logger),
		session.WithCurrency(c.config.Budget.Currency),
	)
}

// LoadSession reads the budget document, or returns an empty session when
// the document does not exist yet.
func (c *Container) LoadSession() (*session.Session, error) {
	if !c.documents.Exists() {
		c.logger.Debug("Budget document not found, starting empty", logging.F(logging.FieldFile, c.documents.Path()))
		return c.NewSession(), nil
	}

	doc, err := c.documents.Load()
	if err != nil {
		return nil, err
	}
	return session.FromDocument(doc, c.documents.Path(),
		session.WithLogger(c.logger),
		session.WithCurrency(c.config.Budget.Currency))
}

// SaveSession writes the session back to the budget document.
func (c *Container) SaveSession(s *session.Session) error {
	return c.documents.Save(s.Document())
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetDocumentStore returns the budget document store.
func (c *Container) GetDocumentStore() *store.DocumentStore {
	return c.documents
}

// GetAIClient returns the model client. Returns nil if AI is not enabled.
func (c *Container) GetAIClient() suggestion.Client {
	return c.aiClient
}

// GetSuggester returns the suggestion runner.
func (c *Container) GetSuggester() *suggestion.Suggester {
	return c.suggester
}

// GetExporter returns the CSV exporter.
func (c *Container) GetExporter() *export.CSVExporter {
	return c.exporter
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}

// Close releases the AI client connection, if any.
func (c *Container) Close() error {
	return c.closer()
}
