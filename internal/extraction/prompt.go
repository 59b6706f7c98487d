package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/currencyutils"
	"fjacquet/voice-expense/internal/dateutils"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
)

const promptTemplate = `You are an intelligent expense tracking assistant. Parse the following voice transcript and extract expense information.

Voice Transcript: %q

Today's date: %s

Available Categories: %s

Instructions:
1. Extract a clean, descriptive title for the expense (remove filler words, amounts, dates)
2. Identify the amount spent (look for numbers, dollar signs, currency mentions)
3. Choose the most appropriate category from the available list
4. Determine the date (today, yesterday, specific dates, or default to today)
5. Handle natural language variations and context

Examples:
- "I spent fifteen dollars on lunch at McDonald's today" → Description: "Lunch at McDonald's", Amount: 15.00, Category: "Food & Dining", Date: today
- "Doctor appointment cost me one hundred fifty bucks yesterday" → Description: "Doctor appointment", Amount: 150.00, Category: "Healthcare", Date: yesterday
- "Bought gas for forty five dollars" → Description: "Gas", Amount: 45.00, Category: "Transportation", Date: today
- "Movie tickets were twenty eight dollars on January 15th" → Description: "Movie tickets", Amount: 28.00, Category: "Entertainment", Date: 2024-01-15

Return ONLY a JSON object with this exact structure:
{
  "description": "Clean expense description",
  "amount": 0.00,
  "category": "Exact category from list",
  "date": "YYYY-MM-DD format"
}

If you cannot parse the transcript properly, return:
{
  "error": "Could not parse expense information"
}
`

// BuildPrompt renders the extraction prompt for one transcript.
func BuildPrompt(transcript string, categories []string, today time.Time) string {
	return fmt.Sprintf(promptTemplate, transcript, dateutils.ToISODate(today), strings.Join(categories, ", "))
}

var codeFenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// expenseResponse mirrors the JSON object the remote service is asked for.
// Amount stays raw because models answer with numbers or strings.
type expenseResponse struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Error       string          `json:"error"`
}

// ParseExpenseResponse decodes the remote answer into an expense. Markdown
// code fences around the JSON are tolerated. An answer carrying "error" is
// reported as a failure.
func ParseExpenseResponse(text string) (models.ExtractedExpense, error) {
	text = strings.TrimSpace(text)
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	if text == "" {
		return models.ExtractedExpense{}, fmt.Errorf("empty response")
	}

	var resp expenseResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return models.ExtractedExpense{}, &parsererror.ParseError{Source: "remote", Field: "response", Value: truncate(text, 80), Err: err}
	}
	if resp.Error != "" {
		return models.ExtractedExpense{}, fmt.Errorf("remote could not parse transcript: %s", resp.Error)
	}

	amountText := strings.Trim(strings.TrimSpace(string(resp.Amount)), `"`)
	amount, err := currencyutils.ParseAmount(amountText)
	if err != nil {
		return models.ExtractedExpense{}, &parsererror.ParseError{Source: "remote", Field: "amount", Value: amountText, Err: err}
	}

	date, err := dateutils.NormalizeISODate(resp.Date)
	if err != nil {
		return models.ExtractedExpense{}, &parsererror.ParseError{Source: "remote", Field: "date", Value: resp.Date, Err: err}
	}

	return models.ExtractedExpense{
		Description: strings.TrimSpace(resp.Description),
		Amount:      amount,
		Category:    canonicalCategory(resp.Category),
		Date:        date,
	}, nil
}

// canonicalCategory maps a case-insensitive match onto the exact category
// name; anything else is returned trimmed and left for validation.
func canonicalCategory(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range models.CategoryNames() {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return name
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
