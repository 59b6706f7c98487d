package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// contentGenerator is the part of *genai.GenerativeModel the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements the AIClient interface for the Google Gemini API.
type GeminiClient struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
	timeout   time.Duration
	now       Clock
	logger    logging.Logger
}

// GeminiOptions configures a GeminiClient.
type GeminiOptions struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Now     Clock
}

// NewGeminiClient creates a GeminiClient authenticated with opts.APIKey.
func NewGeminiClient(ctx context.Context, opts GeminiOptions, logger logging.Logger) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if opts.Model == "" {
		opts.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := newGeminiClient(client.GenerativeModel(opts.Model), opts, logger)
	c.client = client
	return c, nil
}

func newGeminiClient(model contentGenerator, opts GeminiOptions, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &GeminiClient{
		model:     model,
		modelName: opts.Model,
		timeout:   opts.Timeout,
		now:       opts.Now,
		logger:    logger,
	}
}

// ExtractExpense sends the transcript to Gemini and decodes the JSON answer.
func (c *GeminiClient) ExtractExpense(ctx context.Context, transcript string, categories []string) (models.ExtractedExpense, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	prompt := BuildPrompt(transcript, categories, c.now())

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.ExtractedExpense{}, fmt.Errorf("gemini API error: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return models.ExtractedExpense{}, fmt.Errorf("no response from Gemini API")
	}

	exp, err := ParseExpenseResponse(text)
	if err != nil {
		return models.ExtractedExpense{}, err
	}

	c.logger.Debug("Gemini extracted expense",
		logging.Field{Key: logging.FieldModel, Value: c.modelName},
		logging.Field{Key: logging.FieldCategory, Value: exp.Category},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return exp, nil
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}
