package extraction

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
	"fjacquet/voice-expense/internal/validation"
)

// AIStrategy implements extraction using a remote AI service.
// Every remote problem is reported as a RemoteUnavailableError so callers can
// fall back; cancellation of the caller's context is returned unchanged.
type AIStrategy struct {
	aiClient   AIClient
	categories []string
	logger     logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance. A nil aiClient yields a
// strategy that is always unavailable.
func NewAIStrategy(aiClient AIClient, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AIStrategy{
		aiClient:   aiClient,
		categories: models.CategoryNames(),
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return models.SourceRemote
}

// Extract asks the AI client for the expense and validates the answer.
func (s *AIStrategy) Extract(ctx context.Context, transcript string) (models.ExtractedExpense, error) {
	if s.aiClient == nil {
		return models.ExtractedExpense{}, &parsererror.RemoteUnavailableError{Strategy: s.Name(), Reason: "no client configured"}
	}
	if strings.TrimSpace(transcript) == "" {
		return models.ExtractedExpense{}, &parsererror.EmptyInputError{Transcript: transcript}
	}

	exp, err := s.call(ctx, transcript)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.ExtractedExpense{}, ctxErr
		}
		return models.ExtractedExpense{}, &parsererror.RemoteUnavailableError{Strategy: s.Name(), Reason: "request failed", Err: err}
	}

	if err := validation.ValidateExpense(exp); err != nil {
		s.logger.WithError(err).Debug("Remote response rejected",
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()})
		return models.ExtractedExpense{}, &parsererror.RemoteUnavailableError{Strategy: s.Name(), Reason: "invalid response", Err: err}
	}

	s.logger.Debug("Transcript extracted remotely",
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: exp.Category})

	return exp, nil
}

// call invokes the client, turning a panic into an error.
func (s *AIStrategy) call(ctx context.Context, transcript string) (exp models.ExtractedExpense, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("client panic: %v", r)
		}
	}()
	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return s.aiClient.ExtractExpense(ctx, transcript, categories)
}
