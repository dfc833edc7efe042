package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grupoom/checking-central/internal/pipeline"
	"github.com/grupoom/checking-central/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Resolve manifests for a directory of order records in parallel",
	Long: `Batch resolves every *.json order record in a directory:
- each file is one order record as returned by the external catalog
- records are resolved concurrently with a bounded worker pool
- one manifest JSON is written per order into the output directory

Example:
  checking-central batch ./orders
  checking-central batch ./orders --concurrency 8 --output-dir ./manifests`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./manifests", "output directory for manifests")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "total timeout (default: config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if concurrency > 0 {
		cfg.Batch.Concurrency = concurrency
	}
	if batchTimeout > 0 {
		cfg.Batch.Timeout = batchTimeout
	}

	paths, err := filepath.Glob(filepath.Join(args[0], "*.json"))
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.json order records in %s", args[0])
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Batch.Timeout)
	defer cancel()

	resolver := pipeline.NewResolver(cfg)
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	tasks := make([]worker.Task, len(paths))
	for i, path := range paths {
		tasks[i] = func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			order, err := readOrder(path)
			if err != nil {
				return err
			}

			m := resolver.Resolve(order)

			name := strings.TrimSuffix(filepath.Base(path), ".json") + ".manifest.json"
			if err := renderer.RenderJSON(m, filepath.Join(outputDir, name)); err != nil {
				return err
			}

			if cfg.Output.Verbose {
				fmt.Fprintf(os.Stderr, "✓ %s: %s, %d slot(s)\n", order.Number, m.MediaCode, len(m.Slots))
			}
			return nil
		}
	}

	errs := worker.NewPool(cfg.Batch.Concurrency).Run(ctx, tasks)

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", paths[i], err)
		}
	}

	fmt.Printf("Resolved %d/%d order(s) into %s\n", len(paths)-failed, len(paths), outputDir)
	if failed > 0 {
		return fmt.Errorf("%d order(s) failed", failed)
	}
	return nil
}
