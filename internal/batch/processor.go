package batch

import (
	"context"
	"sync"
	"time"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
)

// Record statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
	StatusError  = "error"
)

// DefaultWorkers is used when a non-positive worker count is requested.
const DefaultWorkers = 4

// Extractor turns one transcript into an extraction result.
// *extraction.Pipeline satisfies it.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (models.ExtractionResult, error)
}

// Record is one row of the batch output.
type Record struct {
	ID          string `csv:"id"`
	Transcript  string `csv:"transcript"`
	Status      string `csv:"status"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Date        string `csv:"date"`
	Source      string `csv:"source"`
	Reason      string `csv:"reason"`
}

// Processor runs an Extractor over many transcripts with a bounded pool of workers.
type Processor struct {
	extractor   Extractor
	workerCount int
	logger      logging.Logger
}

// NewProcessor creates a processor using at most workers goroutines.
func NewProcessor(extractor Extractor, workers int, logger logging.Logger) *Processor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{
		extractor:   extractor,
		workerCount: workers,
		logger:      logger,
	}
}

// indexedInput keeps the position of an input so results can be put back in order.
type indexedInput struct {
	index int
	input Input
}

// Process extracts every input and returns one record per input, in input order.
// A canceled ctx stops the run and its error is returned.
func (p *Processor) Process(ctx context.Context, inputs []Input) ([]Record, error) {
	start := time.Now()
	records := make([]Record, len(inputs))
	if len(inputs) == 0 {
		return records, nil
	}

	workers := p.workerCount
	if workers > len(inputs) {
		workers = len(inputs)
	}

	inputChan := make(chan indexedInput)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range inputChan {
				if ctx.Err() != nil {
					continue
				}
				// each worker owns distinct indexes
				records[item.index] = p.processOne(ctx, item.input)
			}
		}()
	}

	go func() {
		defer close(inputChan)
		for i, in := range inputs {
			if ctx.Err() != nil {
				return
			}
			select {
			case inputChan <- indexedInput{index: i, input: in}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		p.logger.WithError(err).Warn("Batch extraction canceled",
			logging.Field{Key: logging.FieldCount, Value: len(inputs)})
		return nil, err
	}

	p.logger.Debug("Batch extraction completed",
		logging.Field{Key: logging.FieldCount, Value: len(inputs)},
		logging.Field{Key: "workers", Value: workers},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return records, nil
}

func (p *Processor) processOne(ctx context.Context, in Input) Record {
	record := Record{ID: in.ID, Transcript: in.Transcript}

	result, err := p.extractor.Extract(ctx, in.Transcript)
	if err != nil {
		p.logger.WithError(err).Debug("Transcript extraction error",
			logging.Field{Key: "id", Value: in.ID})
		record.Status = StatusError
		record.Reason = err.Error()
		return record
	}

	if !result.Success || result.Expense == nil {
		record.Status = StatusFailed
		record.Reason = result.Reason
		return record
	}

	record.Status = StatusOK
	record.Description = result.Expense.Description
	record.Amount = result.Expense.Amount.StringFixed(2)
	record.Category = result.Expense.Category
	record.Date = result.Expense.Date
	record.Source = result.Source
	return record
}
