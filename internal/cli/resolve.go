package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grupoom/checking-central/internal/model"
	"github.com/grupoom/checking-central/internal/pipeline"
)

var (
	outJSON string
	outMD   string
	noCache bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <order.json>",
	Short: "Resolve the requirement manifest for one order record",
	Long: `Resolve reads an order record (the JSON the external catalog returns
for a PI) and computes its requirement manifest:
- canonical media type, via the synonym table
- submission gate decision, fail-closed on unknown statuses
- per-location evidence slots for outdoor media with parseable listings

Example:
  checking-central resolve order.json
  checking-central resolve order.json --json manifest.json --md manifest.md`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	resolveCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	resolveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}

	order, err := readOrder(args[0])
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Resolving PI %s (meio %q, status %q)\n",
			order.Number, order.MediaCode, order.CheckingStatus)
	}

	resolver := pipeline.NewResolver(cfg)
	m := resolver.Resolve(order)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(m, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(m, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(m)
	return nil
}

// readOrder loads one order record from a JSON file.
func readOrder(path string) (model.OrderRecord, error) {
	var order model.OrderRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return order, fmt.Errorf("read order: %w", err)
	}
	if err := json.Unmarshal(data, &order); err != nil {
		return order, fmt.Errorf("decode order %s: %w", path, err)
	}
	if order.Number == "" {
		return order, fmt.Errorf("order %s has no n_pi", path)
	}
	return order, nil
}
