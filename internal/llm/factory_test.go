package llm

import (
	"strings"
	"testing"

	"github.com/ndemidov/claimsift/internal/model"
)

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := NewProvider(Config{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected provider openai, got %s", p.Name())
	}
}

func TestNewProvider_Anthropic(t *testing.T) {
	for _, name := range []string{"anthropic", "claude", "ANTHROPIC"} {
		p, err := NewProvider(Config{Provider: name, APIKey: "test-key"})
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", name, err)
		}
		if p.Name() != "anthropic" {
			t.Errorf("Expected provider anthropic for %s, got %s", name, p.Name())
		}
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama", Model: "llama3.1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected provider ollama, got %s", p.Name())
	}
}

func TestNewProvider_MissingAPIKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai without API key")
	}
	if _, err := NewProvider(Config{Provider: "anthropic"}); err == nil {
		t.Error("Expected error for anthropic without API key")
	}
}

func TestNewProvider_Empty(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when none configured")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "gemini"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "gemini") {
		t.Errorf("Expected error to name the provider, got %v", err)
	}
}

func TestConfigFromModel(t *testing.T) {
	mc := model.LLMConfig{
		Provider:  "anthropic",
		Model:     "claude-3-5-sonnet-20241022",
		APIKey:    "test-key",
		BaseURL:   "http://localhost:9999",
		Timeout:   15,
		MaxTokens: 2000,
	}

	cfg := ConfigFromModel(mc)

	if cfg.Provider != mc.Provider || cfg.Model != mc.Model || cfg.APIKey != mc.APIKey {
		t.Errorf("Config fields not carried over: %+v", cfg)
	}
	if cfg.BaseURL != mc.BaseURL || cfg.Timeout != mc.Timeout || cfg.MaxTokens != mc.MaxTokens {
		t.Errorf("Config fields not carried over: %+v", cfg)
	}
}
