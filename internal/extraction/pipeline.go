package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
)

// Pipeline runs at most one remote attempt followed, when needed, by one
// local attempt. It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	remote Strategy
	local  Strategy
	logger logging.Logger
}

// NewPipeline creates a Pipeline. remote may be nil to run locally only.
func NewPipeline(remote, local Strategy, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if local == nil {
		local = NewLocalStrategy(nil, nil, logger)
	}
	return &Pipeline{remote: remote, local: local, logger: logger}
}

// Extract turns transcript into an ExtractionResult.
//
// Empty input is the only failed result. Remote problems are logged and the
// local strategy runs instead. If ctx is cancelled while the remote attempt
// is in flight, ctx.Err() is returned and nothing else runs.
func (p *Pipeline) Extract(ctx context.Context, transcript string) (models.ExtractionResult, error) {
	if strings.TrimSpace(transcript) == "" {
		reason := (&parsererror.EmptyInputError{Transcript: transcript}).Error()
		p.logger.Debug("Rejected empty transcript", logging.Field{Key: logging.FieldReason, Value: reason})
		return models.NewFailure(reason), nil
	}

	var results StrategyResults
	defer func() {
		if len(results.Results) == 0 {
			return
		}
		fields := []logging.Field{{Key: logging.FieldStatus, Value: results.Summary()}}
		if best, ok := results.GetBestResult(); ok {
			fields = append(fields, logging.Field{Key: logging.FieldStrategy, Value: best.Strategy})
		}
		log := p.logger
		if errs := results.GetErrors(); len(errs) > 0 {
			log = log.WithError(errors.Join(errs...))
		}
		log.Debug("Extraction finished", fields...)
	}()

	if p.remote != nil {
		start := time.Now()
		exp, err := p.remote.Extract(ctx, transcript)
		if err == nil {
			results.Add(p.remote.Name(), &exp, nil, time.Since(start))
			return models.NewSuccess(exp, p.remote.Name()), nil
		}
		results.Add(p.remote.Name(), nil, err, time.Since(start))

		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.ExtractionResult{}, ctxErr
		}

		p.logger.WithError(err).Warn("Remote extraction failed, falling back to local extraction",
			logging.Field{Key: logging.FieldStrategy, Value: p.remote.Name()})
	}

	start := time.Now()
	exp, err := p.local.Extract(ctx, transcript)
	if err != nil {
		results.Add(p.local.Name(), nil, err, time.Since(start))
		if parsererror.IsEmptyInput(err) {
			return models.NewFailure(err.Error()), nil
		}
		return models.ExtractionResult{}, fmt.Errorf("local extraction failed: %w", err)
	}
	results.Add(p.local.Name(), &exp, nil, time.Since(start))

	return models.NewSuccess(exp, p.local.Name()), nil
}
