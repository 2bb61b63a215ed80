package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ndemidov/claimsift/internal/llm"
	"github.com/ndemidov/claimsift/internal/model"
)

// ErrNoJSONPayload is returned when the model reply contains no bracketed
// JSON region at all.
var ErrNoJSONPayload = errors.New("no JSON object found in model reply")

// ClaimExtractor extracts factual claims from text by delegating semantic
// understanding to an LLM and normalizing whatever the model proposes.
// One Extract call makes exactly one provider call; no retries.
type ClaimExtractor struct {
	provider   llm.Provider
	normalizer *Normalizer
	cfg        model.ExtractConfig
	llmCfg     model.LLMConfig
	verbose    bool
}

// NewClaimExtractor creates a new claim extractor backed by the given provider
func NewClaimExtractor(provider llm.Provider, cfg model.ExtractConfig, llmCfg model.LLMConfig, verbose bool) *ClaimExtractor {
	if cfg.MaxClaims <= 0 {
		cfg.MaxClaims = model.DefaultConfig().Extract.MaxClaims
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = model.DefaultConfig().Extract.MaxPromptChars
	}

	normalizer := NewNormalizer(cfg.OffsetCorrection)
	normalizer.Verbose = verbose

	return &ClaimExtractor{
		provider:   provider,
		normalizer: normalizer,
		cfg:        cfg,
		llmCfg:     llmCfg,
		verbose:    verbose,
	}
}

// ExtractResult carries the claims plus provider metadata for reporting
type ExtractResult struct {
	Claims     []model.Claim
	Model      string
	TokensUsed int
}

// Extract extracts claims from text. Operational failures (provider errors,
// unparseable replies) never propagate: the result is an empty claim
// sequence and the failure is reported to stderr. The caller's larger
// workflow must not abort because claim extraction came up empty.
func (e *ClaimExtractor) Extract(ctx context.Context, text, topicHint string, maxClaims int) *ExtractResult {
	if topicHint == "" {
		topicHint = e.cfg.TopicHint
	}
	if topicHint == "" {
		topicHint = string(model.TopicGeneral)
	}
	if maxClaims <= 0 {
		maxClaims = e.cfg.MaxClaims
	}

	candidates, resp, err := e.extractCandidates(ctx, text, topicHint, maxClaims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: claim extraction failed: %v\n", err)
		return &ExtractResult{}
	}

	result := &ExtractResult{
		Claims: e.normalizer.Normalize(candidates),
	}
	if resp != nil {
		result.Model = resp.Model
		result.TokensUsed = resp.TokensUsed
	}
	return result
}

// extractCandidates makes the single provider call and decodes the reply
// into raw candidates. Everything it returns is untrusted until normalized.
func (e *ClaimExtractor) extractCandidates(ctx context.Context, text, topicHint string, maxClaims int) ([]model.RawCandidate, *llm.CompletionResponse, error) {
	if e.provider == nil {
		return nil, nil, fmt.Errorf("no LLM provider configured")
	}

	prompt := BuildPrompt(text, topicHint, maxClaims, e.cfg.MaxPromptChars)

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System:      extractionSystemPrompt,
		Prompt:      prompt,
		Model:       e.llmCfg.Model,
		MaxTokens:   e.llmCfg.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("model call: %w", err)
	}

	candidates, err := decodeClaimsPayload(resp.Text)
	if err != nil {
		return nil, resp, fmt.Errorf("parse model reply: %w", err)
	}

	return candidates, resp, nil
}

// claimsEnvelope is the expected top-level reply shape
type claimsEnvelope struct {
	Claims []map[string]interface{} `json:"claims"`
}

// decodeClaimsPayload recovers the JSON payload from a reply that may wrap
// it in prose: everything from the first '{' to the last '}' (inclusive) is
// treated as the payload. Individual claims with odd field types are
// coerced rather than rejected - one bad candidate never fails the batch.
func decodeClaimsPayload(reply string) ([]model.RawCandidate, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSONPayload
	}

	var envelope claimsEnvelope
	if err := json.Unmarshal([]byte(reply[start:end+1]), &envelope); err != nil {
		return nil, fmt.Errorf("decode claims JSON: %w", err)
	}

	candidates := make([]model.RawCandidate, 0, len(envelope.Claims))
	for _, raw := range envelope.Claims {
		candidates = append(candidates, model.RawCandidate{
			Text:            asString(raw["text"]),
			SpanStart:       asInt(raw["span_start"]),
			SpanEnd:         asInt(raw["span_end"]),
			ClaimType:       model.ClaimType(asString(raw["claim_type"])),
			Topic:           model.Topic(asString(raw["topic"])),
			TimeSensitivity: model.TimeSensitivity(asString(raw["time_sensitivity"])),
		})
	}

	return candidates, nil
}

// asString coerces a JSON value to string, defaulting to ""
func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// asInt coerces a JSON value to int, defaulting to 0 (models occasionally
// emit offsets as floats or quoted numbers)
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
		return 0
	default:
		return 0
	}
}
