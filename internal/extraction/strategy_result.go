package extraction

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/models"
)

// StrategyResult records one strategy attempt of a pipeline call.
type StrategyResult struct {
	Strategy string
	Expense  *models.ExtractedExpense
	Error    error
	Duration time.Duration
}

// Found reports whether the attempt produced an expense.
func (r StrategyResult) Found() bool {
	return r.Expense != nil && r.Error == nil
}

// StrategyResults aggregates the attempts of one pipeline call in order.
type StrategyResults struct {
	Results []StrategyResult
}

// Add records an attempt.
func (sr *StrategyResults) Add(strategy string, exp *models.ExtractedExpense, err error, d time.Duration) {
	sr.Results = append(sr.Results, StrategyResult{Strategy: strategy, Expense: exp, Error: err, Duration: d})
}

// GetBestResult returns the first successful attempt.
func (sr StrategyResults) GetBestResult() (StrategyResult, bool) {
	for _, r := range sr.Results {
		if r.Found() {
			return r, true
		}
	}
	return StrategyResult{}, false
}

// GetErrors returns all errors encountered during strategy execution
func (sr StrategyResults) GetErrors() []error {
	var errs []error
	for _, result := range sr.Results {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("%s strategy: %w", result.Strategy, result.Error))
		}
	}
	return errs
}

// Summary returns a human-readable summary of all strategy attempts
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, result := range sr.Results {
		status := "failed"
		if result.Found() {
			status = "success"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", result.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
