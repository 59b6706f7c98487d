// Package batch handles batch extraction of transcript files
package batch

import (
	"context"
	"fmt"

	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/internal/batch"
	"fjacquet/voice-expense/internal/fileutils"
	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the batch command flags.
type Options struct {
	Input       string
	Output      string
	InputFormat string
	Summary     bool
	Workers     int
	Delimiter   rune
}

var flags = Options{}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch extract expenses from a file of transcripts",
	Long: `Batch extract expenses from a file of transcripts and write one CSV row
per transcript.

The input is either plain text with one transcript per line or a CSV file
with a "transcript" column. Rows keep the input order and carry the columns
id, transcript, status, description, amount, category, date, source and reason.
A per-category total is printed to stderr when the run completes.

Example:
  voice-expense batch -i transcripts.txt -o expenses.csv
  voice-expense batch -i notes.csv --input-format csv`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Input file (\"-\" for stdin)")
	Cmd.Flags().StringVarP(&flags.Output, "output", "o", fileutils.StdStream, "Output CSV file (\"-\" for stdout)")
	Cmd.Flags().StringVar(&flags.InputFormat, "input-format", batch.FormatText, "Input format (text or csv)")
	Cmd.Flags().BoolVar(&flags.Summary, "summary", true, "Print per-category totals to stderr")
	_ = Cmd.MarkFlagRequired("input")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	cfg := appContainer.GetConfig()
	opts := flags
	opts.Workers = cfg.Batch.Workers
	opts.Delimiter = cfg.DelimiterRune()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := Run(ctx, appContainer.GetPipeline(), opts, appContainer.GetLogger())
	if err != nil {
		return err
	}

	if opts.Summary {
		return batch.WriteSummary(cmd.ErrOrStderr(), summary)
	}
	return nil
}

// Run reads the transcripts named by opts, extracts them and writes the CSV report.
func Run(ctx context.Context, extractor batch.Extractor, opts Options, logger logging.Logger) (batch.Summary, error) {
	if err := validation.IsValidInputFormat(opts.InputFormat); err != nil {
		return batch.Summary{}, err
	}
	if opts.Input != "" && opts.Input != fileutils.StdStream {
		if err := validation.IsValidInputFile(opts.Input); err != nil {
			return batch.Summary{}, err
		}
	}

	inputs, err := readInputs(opts, logger)
	if err != nil {
		return batch.Summary{}, err
	}
	logger.Info("Read transcripts",
		logging.Field{Key: logging.FieldInputFile, Value: opts.Input},
		logging.Field{Key: logging.FieldCount, Value: len(inputs)})

	processor := batch.NewProcessor(extractor, opts.Workers, logger)
	records, err := processor.Process(ctx, inputs)
	if err != nil {
		return batch.Summary{}, fmt.Errorf("batch extraction failed: %w", err)
	}

	out, err := fileutils.CreateOutput(opts.Output)
	if err != nil {
		return batch.Summary{}, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	if err := batch.WriteRecords(out, records, opts.Delimiter); err != nil {
		return batch.Summary{}, err
	}

	summary := batch.Summarize(records)
	logger.Info("Batch extraction completed",
		logging.Field{Key: logging.FieldOutputFile, Value: opts.Output},
		logging.Field{Key: logging.FieldCount, Value: summary.Records},
		logging.Field{Key: logging.FieldStatus, Value: fmt.Sprintf("ok=%d failed=%d errors=%d", summary.Succeeded, summary.Failed, summary.Errors)})

	return summary, nil
}

func readInputs(opts Options, logger logging.Logger) ([]batch.Input, error) {
	in, err := fileutils.OpenInput(opts.Input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	return batch.ReadTranscripts(in, opts.InputFormat, opts.Delimiter)
}
