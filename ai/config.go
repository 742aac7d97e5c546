// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Provider identifiers accepted by Config.Provider.
const (
	// ProviderLocal is a local OpenAI-compatible inference server
	// (Ollama, LocalAI, vLLM, etc).
	ProviderLocal = "local"
	// ProviderOpenAI is the hosted OpenAI API.
	ProviderOpenAI = "openai"
	// ProviderGoogleAI is the hosted Gemini API.
	ProviderGoogleAI = "googleai"
)

// Config holds configuration for summarization providers.
type Config struct {
	// Provider selects the backend: "local", "openai" or "googleai".
	Provider string

	// Host is the base URL for local OpenAI-compatible servers.
	// Example: "http://localhost:11434/v1"
	Host string

	// Model is the model identifier to use for summarization.
	// Example: "qwen2.5:3b", "gpt-4o-mini", "gemini-1.5-flash"
	Model string

	// APIKey is the credential for hosted providers. Local servers
	// that require no authentication may leave it empty.
	APIKey string

	// MaxTokens bounds the completion length of a single call.
	// Default: 1000
	MaxTokens int

	// Temperature is the sampling temperature for summarization.
	// Default: 0.7
	Temperature float64

	// MaxLength is the approximate summary word budget passed into
	// the prompt. Default: 1000
	MaxLength int

	// RequestTimeout bounds every provider network call. Expired
	// timeouts count as retryable transient failures. Default: 60s
	RequestTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider sets the provider identifier.
func WithProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithHost sets the local inference server base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the hosted provider credential.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxLength sets the approximate summary word budget.
func WithMaxLength(n int) ConfigOption {
	return func(c *Config) {
		c.MaxLength = n
	}
}

// WithRequestTimeout sets the per-call network timeout.
func WithRequestTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible server.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderLocal,
		Host:           "http://localhost:11434/v1",
		Model:          "qwen2.5:3b",
		MaxTokens:      1000,
		Temperature:    0.7,
		MaxLength:      1000,
		RequestTimeout: 60 * time.Second,
	}
}

// NewConfig creates a Config with default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithProvider(ai.ProviderOpenAI),
//	    ai.WithModel("gpt-4o-mini"),
//	    ai.WithAPIKey(key),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in canonical form. It adds
// the /v1 suffix to the local host if missing, which is required by
// most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete for
// the selected provider. It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Provider {
	case ProviderLocal:
		if c.Host == "" {
			return errors.New("ai config: Host is required for local provider")
		}
	case ProviderOpenAI, ProviderGoogleAI:
		if c.APIKey == "" {
			return errors.New("ai config: APIKey is required for hosted provider " + c.Provider)
		}
	default:
		return errors.New("ai config: unknown provider " + c.Provider)
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.MaxTokens <= 0 {
		return errors.New("ai config: MaxTokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	if c.MaxLength <= 0 {
		return errors.New("ai config: MaxLength must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("ai config: RequestTimeout must be positive")
	}
	return nil
}
