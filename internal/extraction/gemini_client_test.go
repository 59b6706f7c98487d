package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	resp     *genai.GenerateContentResponse
	err      error
	prompt   string
	deadline bool
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if text, ok := parts[0].(genai.Text); ok {
			f.prompt = string(text)
		}
	}
	_, f.deadline = ctx.Deadline()
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGeminiClient_ExtractExpense(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(
		"```json\n{\"description\":\"Lunch at McDonald's\",",
		"\"amount\":15.00,\"category\":\"Food & Dining\",\"date\":\"2024-03-10\"}\n```",
	)}
	c := newGeminiClient(gen, GeminiOptions{Model: "test-model", Timeout: 5 * time.Second, Now: fixedClock}, logging.NewMockLogger())

	exp, err := c.ExtractExpense(context.Background(), "I spent fifteen dollars on lunch at McDonald's today", models.CategoryNames())
	require.NoError(t, err)

	assert.Equal(t, "Lunch at McDonald's", exp.Description)
	assert.Equal(t, "15", exp.Amount.String())
	assert.Equal(t, models.CategoryFoodDining, exp.Category)
	assert.Equal(t, "2024-03-10", exp.Date)

	assert.Contains(t, gen.prompt, "I spent fifteen dollars on lunch at McDonald's today")
	assert.Contains(t, gen.prompt, "Today's date: 2024-03-10")
	assert.True(t, gen.deadline, "per-call timeout should set a deadline")
}

func TestGeminiClient_NoTimeout(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(`{"description":"Gas","amount":45,"category":"Transportation","date":"2024-03-10"}`)}
	c := newGeminiClient(gen, GeminiOptions{Now: fixedClock}, logging.NewMockLogger())

	_, err := c.ExtractExpense(context.Background(), "Bought gas for forty five dollars", models.CategoryNames())
	require.NoError(t, err)
	assert.False(t, gen.deadline)
}

func TestGeminiClient_Failures(t *testing.T) {
	tests := []struct {
		name        string
		gen         *fakeGenerator
		errContains string
	}{
		{"API error", &fakeGenerator{err: errors.New("quota exceeded")}, "gemini API error"},
		{"nil response", &fakeGenerator{}, "no response"},
		{"no candidates", &fakeGenerator{resp: &genai.GenerateContentResponse{}}, "no response"},
		{"nil content", &fakeGenerator{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}}, "no response"},
		{"explicit error", &fakeGenerator{resp: textResponse(`{"error":"Could not parse expense information"}`)}, "could not parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGeminiClient(tt.gen, GeminiOptions{Now: fixedClock}, logging.NewMockLogger())
			_, err := c.ExtractExpense(context.Background(), "coffee", models.CategoryNames())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), GeminiOptions{}, logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGeminiClient_CloseWithoutConnection(t *testing.T) {
	c := newGeminiClient(&fakeGenerator{}, GeminiOptions{}, nil)
	assert.NoError(t, c.Close())
}
