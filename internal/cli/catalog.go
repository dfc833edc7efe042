package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grupoom/checking-central/internal/catalog"
)

var catalogYAML bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the media-type reference table",
	Long: `Catalog prints every canonical media type the resolver knows about,
including synonym codes and the evidence each type demands. Useful when
checking why an order code landed on a particular entry.`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogYAML, "yaml", false, "print entries as YAML")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	entries := catalog.Entries()

	if catalogYAML {
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		fmt.Fprint(os.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-8s %-28s %-6s %-12s %s\n", "CODE", "LABEL", "SLOTS", "PER-LOCATION", "SYNONYMS")
	for _, e := range entries {
		perLoc := "-"
		if e.PerLocationEvidence {
			perLoc = "yes"
		}
		syn := strings.Join(e.Synonyms, ",")
		if syn == "" {
			syn = "-"
		}
		fmt.Fprintf(os.Stdout, "%-8s %-28s %-6d %-12s %s\n", e.Code, e.Label, e.DefaultSlots, perLoc, syn)
	}
	return nil
}
