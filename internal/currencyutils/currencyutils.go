// Package currencyutils provides amount extraction and decimal helpers used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencySymbolsRe = regexp.MustCompile(`[€$£¥₣₤₹\s]`)
	currencyCodesRe   = regexp.MustCompile(`(?i)\b(?:usd|eur|chf|gbp|dollars?|bucks?)\b`)
)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "$1,234.56", "1.234,56", "15 USD" and "15.5".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a plain
// decimal string that decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyCodesRe.ReplaceAllString(amountStr, "")
	amountStr = currencySymbolsRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount formats an amount with two decimal places and the currency
// symbol or code, e.g. "$15.50" or "CHF 15.50".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formatted
	case "USD":
		return "$" + formatted
	case "EUR":
		return "€" + formatted
	case "GBP":
		return "£" + formatted
	default:
		return strings.ToUpper(currency) + " " + formatted
	}
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}
