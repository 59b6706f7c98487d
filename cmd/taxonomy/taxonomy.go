// Package taxonomy handles the taxonomy command
package taxonomy

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/internal/categorizer"
	"fjacquet/voice-expense/internal/store"

	"github.com/spf13/cobra"
)

// ExportPath is where the taxonomy is written as YAML, if set.
var ExportPath string

// Cmd represents the taxonomy command
var Cmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show or export the category taxonomy",
	Long: `Show the categories and keywords used by the local classifier.

With --export the active taxonomy is written as YAML, ready to be edited
and loaded back through the taxonomy.file setting or the --taxonomy flag.

Example:
  voice-expense taxonomy
  voice-expense taxonomy --export config/taxonomy.yaml`,
	RunE: taxonomyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&ExportPath, "export", "e", "", "Write the taxonomy to this YAML file")
}

func taxonomyFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	if ExportPath != "" {
		return Export(appContainer.GetStore(), appContainer.GetTaxonomy(), ExportPath, cmd.OutOrStdout())
	}
	return Show(appContainer.GetTaxonomy(), cmd.OutOrStdout())
}

// Show lists every category with its keywords in classifier order.
func Show(taxonomy *categorizer.Taxonomy, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tKEYWORDS")
	for _, c := range taxonomy.Categories() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Name, len(c.Keywords), strings.Join(c.Keywords, ", "))
	}
	return tw.Flush()
}

// Export writes the taxonomy to path through the taxonomy store.
func Export(s *store.TaxonomyStore, taxonomy *categorizer.Taxonomy, path string, w io.Writer) error {
	if err := s.SaveCategories(path, taxonomy.Categories()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Taxonomy with %d categories written to %s\n", taxonomy.Len(), path)
	return err
}
