package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ndemidov/claimsift/internal/cache"
	"github.com/ndemidov/claimsift/internal/extract"
	"github.com/ndemidov/claimsift/internal/llm"
	"github.com/ndemidov/claimsift/internal/model"
	"github.com/ndemidov/claimsift/internal/util"
	"github.com/ndemidov/claimsift/internal/worker"
)

// Pipeline orchestrates document loading, claim extraction and reporting
type Pipeline struct {
	fetcher      *Fetcher
	extractor    *extract.ClaimExtractor
	robots       *util.RobotsChecker
	fetchLimiter *worker.Limiter
	callLimiter  *worker.CallLimiter
	resultCache  cache.Cache // nil when caching is disabled
	renderer     *Renderer
	config       *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".claimsift", "cache")
			}
		}
		if dir != "" {
			resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	var robots *util.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), 10*time.Second)
	}

	return &Pipeline{
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, ""),
		extractor:    extract.NewClaimExtractor(provider, cfg.Extract, cfg.LLM, cfg.Output.Verbose),
		robots:       robots,
		fetchLimiter: worker.NewLimiter(cfg.Concurrency.FetchesPerSecond, 2),
		callLimiter:  worker.NewCallLimiter(cfg.LLM.RequestsPerSecond),
		resultCache:  resultCache,
		renderer:     NewRenderer(cfg.Output.IncludeFooter),
		config:       cfg,
	}, nil
}

// cachedExtraction is the serialized form of a cache entry
type cachedExtraction struct {
	Claims     []model.Claim `json:"claims"`
	Model      string        `json:"model"`
	TokensUsed int           `json:"tokens_used"`
}

// ExtractSource extracts claims from one source: an http(s) URL, a file
// path, or "-" for stdin. Document loading failures are errors; claim
// extraction failures are not - they yield a report with zero claims.
func (p *Pipeline) ExtractSource(ctx context.Context, source string) (*model.Report, error) {
	text, subject, meta, err := p.loadSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	report := &model.Report{
		Subject:     subject,
		Source:      source,
		ExtractedAt: time.Now().UTC(),
		FetchMeta:   meta,
		TextLength:  len(text),
		Provider:    p.config.LLM.Provider,
	}

	key := cache.ExtractionKey(text, p.config.Extract.TopicHint, p.config.Extract.MaxClaims, p.config.LLM.Model)
	if p.resultCache != nil {
		if data, found := p.resultCache.Get(key); found {
			var entry cachedExtraction
			if err := json.Unmarshal(data, &entry); err == nil {
				report.Claims = entry.Claims
				report.Model = entry.Model
				report.TokensUsed = entry.TokensUsed
				report.Stats = model.BuildStats(entry.Claims)
				return report, nil
			}
		}
	}

	if err := p.callLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	result := p.extractor.Extract(ctx, text, p.config.Extract.TopicHint, p.config.Extract.MaxClaims)

	report.Claims = result.Claims
	report.Model = result.Model
	report.TokensUsed = result.TokensUsed
	report.Stats = model.BuildStats(result.Claims)

	// Only cache batches that came from an actual model reply; a failed
	// call leaves Model empty and should be retried on the next run.
	if p.resultCache != nil && result.Model != "" {
		entry := cachedExtraction{
			Claims:     result.Claims,
			Model:      result.Model,
			TokensUsed: result.TokensUsed,
		}
		if data, err := json.Marshal(entry); err == nil {
			_ = p.resultCache.Set(key, data, 0)
		}
	}

	return report, nil
}

// loadSource resolves a source argument into plain text ready for extraction
func (p *Pipeline) loadSource(ctx context.Context, source string) (string, string, model.FetchMeta, error) {
	var meta model.FetchMeta

	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		if p.robots != nil {
			allowed, crawlDelay, _ := p.robots.CanFetch(ctx, source)
			if !allowed {
				return "", "", meta, fmt.Errorf("robots.txt disallows fetching %s", source)
			}
			if err := p.fetchLimiter.WaitWithDelay(ctx, source, crawlDelay); err != nil {
				return "", "", meta, err
			}
		} else if err := p.fetchLimiter.Wait(ctx, source); err != nil {
			return "", "", meta, err
		}

		result, err := p.fetcher.Fetch(ctx, source)
		if err != nil {
			return "", "", meta, err
		}

		text := result.Body
		if result.IsHTML || extract.LooksLikeHTML(text) {
			if visible, err := extract.VisibleText(text); err == nil {
				text = visible
			}
		}
		return text, result.Subject, result.Meta, nil

	case source == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", meta, fmt.Errorf("read stdin: %w", err)
		}
		return textFromRaw(string(data)), "stdin", meta, nil

	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", "", meta, fmt.Errorf("read file: %w", err)
		}
		subject := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		return textFromRaw(string(data)), subject, meta, nil
	}
}

// textFromRaw strips HTML when the content looks like markup
func textFromRaw(content string) string {
	if extract.LooksLikeHTML(content) {
		if visible, err := extract.VisibleText(content); err == nil {
			return visible
		}
	}
	return content
}

// RenderReport renders the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}
