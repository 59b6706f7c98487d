// Package extract handles the extract command
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/internal/batch"
	"fjacquet/voice-expense/internal/currencyutils"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/validation"

	"github.com/spf13/cobra"
)

// OutputFormat selects text or json output.
var OutputFormat string

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract [transcript...]",
	Short: "Extract a structured expense from a transcript",
	Long: `Extract the description, amount, category and date of an expense
from a speech-to-text transcript.

The transcript is taken from the arguments. Without arguments every
non-blank line read from stdin is extracted on its own.

Example:
  voice-expense extract "I spent $15 at McDonald's"
  echo "Uber to the airport 20 bucks" | voice-expense extract --format json`,
	RunE: extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&OutputFormat, "format", "f", "text", "Output format (text or json)")
}

func extractFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidOutputFormat(OutputFormat); err != nil {
		return err
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	transcripts, err := collectTranscripts(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return Run(ctx, appContainer.GetPipeline(), transcripts, cmd.OutOrStdout(), OutputFormat)
}

// collectTranscripts joins the arguments into one transcript, or reads one
// transcript per line from in when there are none.
func collectTranscripts(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	inputs, err := batch.ReadTranscripts(in, batch.FormatText, ',')
	if err != nil {
		return nil, err
	}
	transcripts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		transcripts = append(transcripts, input.Transcript)
	}
	if len(transcripts) == 0 {
		// let the pipeline report the empty input
		transcripts = append(transcripts, "")
	}
	return transcripts, nil
}

// Run extracts every transcript in turn and writes one result per transcript.
func Run(ctx context.Context, extractor batch.Extractor, transcripts []string, w io.Writer, format string) error {
	encoder := json.NewEncoder(w)
	for _, transcript := range transcripts {
		result, err := extractor.Extract(ctx, transcript)
		if err != nil {
			return err
		}

		if format == "json" {
			if err := encoder.Encode(result); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			continue
		}
		if err := writeText(w, result); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, result models.ExtractionResult) error {
	if !result.Success || result.Expense == nil {
		_, err := fmt.Fprintf(w, "Error: %s\n", result.Reason)
		return err
	}

	exp := result.Expense
	_, err := fmt.Fprintf(w, "Description: %s\nAmount:      %s\nCategory:    %s\nDate:        %s\nSource:      %s\n\n",
		exp.Description,
		currencyutils.FormatAmount(exp.Amount, "USD"),
		exp.Category,
		exp.Date,
		result.Source)
	return err
}
