package extraction

import (
	"context"

	"fjacquet/voice-expense/internal/models"
)

// AIClient defines the interface for remote semantic extraction services.
// This abstraction allows the pipeline to be tested independently of
// external API calls.
type AIClient interface {
	// ExtractExpense asks the service for the expense described by
	// transcript, restricted to the given category names. Implementations
	// return an error when the service is unreachable, times out or states
	// that it could not parse the transcript.
	ExtractExpense(ctx context.Context, transcript string, categories []string) (models.ExtractedExpense, error)
}
