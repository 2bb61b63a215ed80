package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ndemidov/claimsift/internal/model"
)

// Extractor defines the interface for extracting claims from one source.
// Each invocation is independent: no shared mutable state, so extraction
// jobs can run concurrently without coordination.
type Extractor interface {
	ExtractSource(ctx context.Context, source string) (*model.Report, error)
}

// ExtractJob represents one source extraction job
type ExtractJob struct {
	Source    string
	Extractor Extractor
}

// Execute runs the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	report, err := j.Extractor.ExtractSource(ctx, j.Source)
	return &ExtractResult{
		Source: j.Source,
		Report: report,
		Error:  err,
	}
}

// ExtractResult represents the result of an extraction job
type ExtractResult struct {
	Source string
	Report *model.Report
	Error  error
}

// GetError returns the error from the extraction result
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts claims from multiple sources concurrently
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessSources extracts claims from multiple sources concurrently
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*ExtractResult {
	if len(sources) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, source := range sources {
		pool.Submit(&ExtractJob{
			Source:    source,
			Extractor: b.extractor,
		})
	}

	results := pool.Wait()

	extractResults := make([]*ExtractResult, len(results))
	for i, result := range results {
		extractResults[i] = result.(*ExtractResult)
	}

	return extractResults
}

// ProcessFile reads sources from a list file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ExtractResult, error) {
	sources, err := ReadSourcesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads source paths/URLs from a file (one per line)
func ReadSourcesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate sources
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sources, nil
}
