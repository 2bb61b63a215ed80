package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ndemidov/claimsift/internal/pipeline"
	"github.com/ndemidov/claimsift/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	llmRate      float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract claims from multiple sources in parallel",
	Long: `Batch processes multiple sources concurrently:
- Read sources from input file (one file path or URL per line)
- Extract claims in parallel with configurable worker count
- Each extraction is an isolated invocation with its own claim batch
- Generate individual reports per source

Example:
  claimsift batch sources.txt
  claimsift batch sources.txt --concurrency 8 --output-dir ./reports
  claimsift batch sources.txt --llm-rate 2 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimsift-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&llmRate, "llm-rate", 0, "max LLM calls per second across all workers (0 = unlimited)")

	// Shared extraction/HTTP/LLM flags
	batchCmd.Flags().StringVar(&topicHint, "topic", "general", "content vertical hint")
	batchCmd.Flags().IntVar(&maxClaims, "max-claims", 10, "number of claims to ask the model for")
	batchCmd.Flags().IntVar(&spanOffset, "offset-correction", -1, "calibration added to model-reported span offsets")
	batchCmd.Flags().DurationVar(&timeout, "source-timeout", 2*time.Minute, "timeout for individual sources")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Claimsift/0.1 (+https://github.com/ndemidov/claimsift)", "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh extraction)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL sources")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	batchCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.Timeout = timeout
	cfg.Concurrency.Workers = concurrency
	cfg.LLM.RequestsPerSecond = llmRate

	fmt.Fprintf(os.Stderr, "Batch input:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	fmt.Fprintln(os.Stderr)

	// Create output directory
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0
	totalClaims := 0

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Source, result.Error)
			continue
		}

		successCount++
		totalClaims += result.Report.Stats.Total

		slug := sanitizeFilename(result.Report.Subject)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Source, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Source, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "OK   %s (%d claims)\n", result.Report.Subject, result.Report.Stats.Total)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Batch complete: %d sources, %d ok, %d failed, %d claims total\n",
		len(results), successCount, failureCount, totalClaims)
	fmt.Fprintf(os.Stderr, "Reports in %s\n", outputDir)

	return nil
}

// sanitizeFilename sanitizes a subject string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}

	return s
}
