package suggestion

import (
	"context"
	"errors"
	"sync"
	"time"

	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
)

var (
	// ErrBusy is returned while another suggestion request is outstanding.
	ErrBusy = errors.New("a suggestion request is already in progress")
	// ErrDisabled is returned when no model client is configured.
	ErrDisabled = errors.New("AI suggestions are disabled")
)

// DefaultTimeout bounds one request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Suggester runs one suggestion request at a time.
type Suggester struct {
	client  Client
	model   string
	timeout time.Duration
	logger  logging.Logger
	mu      sync.Mutex
}

// NewSuggester builds a suggester. A nil client yields ErrDisabled on use.
func NewSuggester(client Client, model string, timeout time.Duration, logger logging.Logger) *Suggester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Suggester{client: client, model: model, timeout: timeout, logger: logger}
}

// Suggest asks the model for budget lines for the described event.
func (s *Suggester) Suggest(ctx context.Context, description string, attendees int) ([]models.Draft, error) {
	if s.client == nil {
		return nil, ErrDisabled
	}
	if !s.mu.TryLock() {
		return nil, ErrBusy
	}
	defer s.mu.Unlock()

	if attendees < 0 {
		attendees = 0
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.client.Generate(ctx, BuildPrompt(description, attendees))
	if err != nil {
		s.logger.WithError(err).Warn("Suggestion request failed", logging.F(logging.FieldModel, s.model))
		return nil, &budgeterror.SuggestionError{Model: s.model, Stage: "request", Err: err}
	}

	drafts, err := ParseDrafts(text, attendees)
	if err != nil {
		s.logger.WithError(err).Warn("Suggestion response rejected", logging.F(logging.FieldModel, s.model))
		return nil, &budgeterror.SuggestionError{Model: s.model, Stage: "parse", Err: err}
	}

	s.logger.Info("Received budget suggestions",
		logging.F(logging.FieldModel, s.model),
		logging.F(logging.FieldCount, len(drafts)),
		logging.F(logging.FieldAttendees, attendees),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return drafts, nil
}
