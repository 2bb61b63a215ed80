package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Extract     ExtractConfig     `yaml:"extract"`
	LLM         LLMConfig         `yaml:"llm"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// ExtractConfig controls claim extraction and span normalization
type ExtractConfig struct {
	// MaxClaims is the number of claims the model is asked for. It is a
	// request embedded in the prompt, not an output cap.
	MaxClaims int `yaml:"max_claims"`

	// TopicHint biases extraction toward a content vertical
	TopicHint string `yaml:"topic_hint"`

	// MaxPromptChars caps how much of the document is shown to the model
	MaxPromptChars int `yaml:"max_prompt_chars"`

	// OffsetCorrection is added to both span offsets of every candidate
	// (clamped at 0). Compensates for a systematic bias in the upstream
	// model's position estimates; re-measure when changing models.
	OffsetCorrection int `yaml:"offset_correction"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for OpenAI/Anthropic (prefer env vars)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens bounds the completion length
	MaxTokens int `yaml:"max_tokens"`

	// RequestsPerSecond throttles calls to the provider (0 = unlimited)
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// HTTPConfig controls document fetching
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty"`
}

// CacheConfig controls the extraction result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir,omitempty"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers          int     `yaml:"workers"`
	FetchesPerSecond float64 `yaml:"fetches_per_second"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxClaims:        10,
			TopicHint:        string(TopicGeneral),
			MaxPromptChars:   12000,
			OffsetCorrection: -1,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 4000,
		},
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "Claimsift/0.1 (+https://github.com/ndemidov/claimsift)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:          4,
			FetchesPerSecond: 2,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
