// Package models provides the data structures used throughout the application.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExtractedExpense is the structured form of one spoken expense.
// A new value is produced by every extraction call and handed to the caller.
type ExtractedExpense struct {
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Date        string          `json:"date" yaml:"date"` // YYYY-MM-DD
}

// MarshalJSON writes Amount as a JSON number rather than a quoted string.
func (e ExtractedExpense) MarshalJSON() ([]byte, error) {
	type plain ExtractedExpense
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{
		plain:  plain(e),
		Amount: json.Number(e.Amount.String()),
	})
}

// Source names of the strategies that can produce an ExtractedExpense.
const (
	SourceRemote = "Remote"
	SourceLocal  = "Local"
)

// ExtractionResult is the outcome of one pipeline call: either Success with
// an Expense, or a failure carrying a human-readable Reason.
type ExtractionResult struct {
	Success bool              `json:"success"`
	Expense *ExtractedExpense `json:"data,omitempty"`
	Reason  string            `json:"error,omitempty"`
	Source  string            `json:"source,omitempty"`
}

// NewSuccess wraps an expense produced by the named source.
func NewSuccess(expense ExtractedExpense, source string) ExtractionResult {
	return ExtractionResult{
		Success: true,
		Expense: &expense,
		Source:  source,
	}
}

// NewFailure builds a failed result with the given reason.
func NewFailure(reason string) ExtractionResult {
	return ExtractionResult{Reason: reason}
}
