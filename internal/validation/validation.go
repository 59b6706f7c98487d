// Package validation checks expenses and command inputs before they are used.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/voice-expense/internal/currencyutils"
	"fjacquet/voice-expense/internal/dateutils"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
)

// ValidateExpense checks the invariants every extracted expense must hold:
// a non-empty description, a non-negative amount, a category from the
// closed set and an ISO calendar date.
func ValidateExpense(exp models.ExtractedExpense) error {
	if strings.TrimSpace(exp.Description) == "" {
		return &parsererror.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if currencyutils.IsNegative(exp.Amount) {
		return &parsererror.ValidationError{Field: "amount", Value: exp.Amount.String(), Reason: "must not be negative"}
	}
	if !models.IsKnownCategory(exp.Category) {
		return &parsererror.ValidationError{Field: "category", Value: exp.Category, Reason: "not a known category"}
	}
	if !dateutils.IsISODate(exp.Date) {
		return &parsererror.ValidationError{Field: "date", Value: exp.Date, Reason: "must be a YYYY-MM-DD calendar date"}
	}
	return nil
}

// IsValidInputFile checks that path exists and is a regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}

	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'text'", format)
	}
}

// IsValidInputFormat checks if the given batch input format is supported.
func IsValidInputFormat(format string) error {
	switch format {
	case "text", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported input format: %s. Supported formats are 'text', 'csv'", format)
	}
}
