// Package extraction turns a free-form transcript into a structured expense.
// A Pipeline tries an optional remote strategy first and falls back to the
// deterministic local strategy.
package extraction

import (
	"context"

	"fjacquet/voice-expense/internal/models"
)

// Strategy defines one way of extracting an expense from a transcript.
type Strategy interface {
	// Extract returns the expense described by transcript, or an error when
	// this strategy cannot produce one.
	Extract(ctx context.Context, transcript string) (models.ExtractedExpense, error)

	// Name returns the name of this strategy for logging and result tagging.
	Name() string
}
