// Package categorize handles the categorize command
package categorize

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/internal/categorizer"

	"github.com/spf13/cobra"
)

// ShowAll also lists categories that scored zero.
var ShowAll bool

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize <transcript...>",
	Short: "Categorize a transcript with the keyword classifier",
	Long: `Categorize a transcript with the local keyword classifier and show
the score of every category, which helps tune a taxonomy file.

Example:
  voice-expense categorize "doctor visit copay 30 dollars"`,
	Args: cobra.MinimumNArgs(1),
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&ShowAll, "all", "a", false, "Show categories with a zero score")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	return Run(appContainer.GetClassifier(), strings.Join(args, " "), cmd.OutOrStdout(), ShowAll)
}

// Run classifies transcript and writes the winning category followed by the
// per-category scores.
func Run(classifier *categorizer.Classifier, transcript string, w io.Writer, all bool) error {
	lower := strings.ToLower(transcript)
	category := classifier.Classify(lower)

	if _, err := fmt.Fprintf(w, "Category: %s (score %d)\n\n", category.Name, category.Score); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSCORE")
	for _, s := range classifier.Scores(lower) {
		if s.Value == 0 && !all {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", s.Category, s.Value)
	}
	return tw.Flush()
}
