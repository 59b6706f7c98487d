package extraction

import (
	"context"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/categorizer"
	"fjacquet/voice-expense/internal/currencyutils"
	"fjacquet/voice-expense/internal/dateutils"
	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
	"fjacquet/voice-expense/internal/textutils"
)

// Clock returns the current time. Its location decides which calendar day
// "today" is.
type Clock func() time.Time

// LocalStrategy extracts expenses with rules only: amount patterns, keyword
// scoring, date phrases and description cleanup. It needs no network and
// only fails on empty input.
type LocalStrategy struct {
	classifier *categorizer.Classifier
	now        Clock
	logger     logging.Logger
}

// NewLocalStrategy creates a LocalStrategy. Nil arguments select the default
// classifier, time.Now and the default logger.
func NewLocalStrategy(classifier *categorizer.Classifier, now Clock, logger logging.Logger) *LocalStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if classifier == nil {
		classifier = categorizer.NewClassifier(nil, logger)
	}
	if now == nil {
		now = time.Now
	}
	return &LocalStrategy{classifier: classifier, now: now, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *LocalStrategy) Name() string {
	return models.SourceLocal
}

// Extract runs the rule pipeline over transcript.
func (s *LocalStrategy) Extract(_ context.Context, transcript string) (models.ExtractedExpense, error) {
	if strings.TrimSpace(transcript) == "" {
		return models.ExtractedExpense{}, &parsererror.EmptyInputError{Transcript: transcript}
	}

	lower := strings.ToLower(transcript)

	amount := currencyutils.ExtractAmount(lower)
	category := s.classifier.Classify(lower)
	date := dateutils.ResolveISODate(lower, s.now())
	keywords := s.classifier.Taxonomy().Keywords(category.Name)

	exp := models.ExtractedExpense{
		Description: textutils.CleanDescription(transcript, amount.Text, keywords),
		Amount:      amount.Value,
		Category:    category.Name,
		Date:        date,
	}

	s.logger.Debug("Transcript extracted locally",
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldAmountText, Value: amount.Text},
		logging.Field{Key: logging.FieldPattern, Value: amount.Pattern},
		logging.Field{Key: logging.FieldCategory, Value: category.Name},
		logging.Field{Key: logging.FieldScore, Value: category.Score},
		logging.Field{Key: logging.FieldDate, Value: date})

	return exp, nil
}
