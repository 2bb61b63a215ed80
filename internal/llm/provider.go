package llm

import "context"

// Provider defines the interface for LLM providers.
// A provider exposes exactly one completion operation: given a system
// instruction, a user prompt and decoding parameters, return a single
// text completion. Everything upstream treats the model as a black box.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one chat completion request and returns the reply
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one model call
type CompletionRequest struct {
	// System is the system instruction
	System string

	// Prompt is the filled user instruction
	Prompt string

	// Model is the specific model to use (provider-specific, optional)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls decoding randomness. Claim extraction runs at 0
	// so identical inputs produce identical candidate lists.
	Temperature float32
}

// CompletionResponse contains the model's reply
type CompletionResponse struct {
	// Text is the raw completion text (may wrap JSON in prose)
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption (0 when the provider omits it)
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   30,
		MaxTokens: 4000,
	}
}
