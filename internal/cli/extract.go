package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ndemidov/claimsift/internal/model"
	"github.com/ndemidov/claimsift/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noRobots    bool
	httpProxy   string
	httpsProxy  string
	topicHint   string
	maxClaims   int
	spanOffset  int
	llmProvider string
	llmModel    string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file|url|->",
	Short: "Extract factual claims from a document",
	Long: `Extract analyzes one document to:
- Build a deterministic extraction prompt (first 12k characters, topic hint, claim limit)
- Ask the configured LLM for candidate claims with character spans
- Normalize the candidates: assign ids, calibrate offsets, drop invalid and
  overlapping spans
- Generate a report with the final ordered, non-overlapping claim sequence

The source may be a local file, an http(s) URL, or "-" for stdin.
A failed model call yields a report with zero claims, not an error.

Example:
  claimsift extract article.txt
  claimsift extract https://example.com/pricing --topic saas
  cat notes.md | claimsift extract - --json claims.json --md claims.md
  claimsift extract report.html --provider anthropic --model claude-3-5-sonnet-20241022`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Output flags
	extractCmd.Flags().StringVar(&outJSON, "json", "claims.json", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Extraction flags
	extractCmd.Flags().StringVar(&topicHint, "topic", "general", "content vertical hint (ecommerce, saas, tech, finance, health, education, professional, general)")
	extractCmd.Flags().IntVar(&maxClaims, "max-claims", 10, "number of claims to ask the model for")
	extractCmd.Flags().IntVar(&spanOffset, "offset-correction", -1, "calibration added to model-reported span offsets")

	// HTTP flags
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().StringVar(&userAgent, "ua", "Claimsift/0.1 (+https://github.com/ndemidov/claimsift)", "HTTP User-Agent")
	extractCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh extraction)")
	extractCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	extractCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL sources")
	extractCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	extractCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	extractCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, anthropic, ollama)")
	extractCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles configuration from defaults and flags; shared by
// extract and batch
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Extract.TopicHint = topicHint
	cfg.Extract.MaxClaims = maxClaims
	cfg.Extract.OffsetCorrection = spanOffset
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", source)
		fmt.Fprintf(os.Stderr, "Topic hint: %s\n", topicHint)
		fmt.Fprintf(os.Stderr, "Max claims: %d\n", maxClaims)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.ExtractSource(ctx, source)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Text length: %d characters\n", report.TextLength)
		fmt.Fprintf(os.Stderr, "Extracted %d claims\n", report.Stats.Total)
		if report.Model != "" {
			fmt.Fprintf(os.Stderr, "Model: %s/%s (%d tokens)\n", report.Provider, report.Model, report.TokensUsed)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
