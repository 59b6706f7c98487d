package extraction

import (
	"context"
	"sync"
	"time"

	"fjacquet/voice-expense/internal/models"
)

// MockAIClient is a mock implementation of AIClient with call tracking.
type MockAIClient struct {
	ExtractFunc func(ctx context.Context, transcript string, categories []string) (models.ExtractedExpense, error)

	mu             sync.Mutex
	CallCount      int
	LastTranscript string
	LastCategories []string
}

func (m *MockAIClient) ExtractExpense(ctx context.Context, transcript string, categories []string) (models.ExtractedExpense, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastTranscript = transcript
	m.LastCategories = categories
	m.mu.Unlock()

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, transcript, categories)
	}
	return models.ExtractedExpense{}, context.DeadlineExceeded
}

func (m *MockAIClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// countingStrategy records how often it ran and delegates to a function.
type countingStrategy struct {
	name  string
	fn    func(ctx context.Context, transcript string) (models.ExtractedExpense, error)
	mu    sync.Mutex
	calls int
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Extract(ctx context.Context, transcript string) (models.ExtractedExpense, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.fn(ctx, transcript)
}

func (s *countingStrategy) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var referenceDay = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return referenceDay }
