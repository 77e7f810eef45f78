// Package llm provides model configuration and a provider-neutral client used for optional scoring enhancements.
package llm

import (
	"fmt"
	"strings"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short structured answers such as a single match assessment
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning over a resume or posting
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for longer multi-step prompts
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// ParseProvider maps a configuration string to a Provider.
// An empty string selects Gemini.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gemini", "google":
		return ProviderGemini, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("unsupported llm provider %q", name)
	}
}

// Config holds the model configuration for a provider
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultClaudeConfig returns the default Anthropic configuration
func DefaultClaudeConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Models: map[ModelTier]string{
			TierLite:     "claude-3-5-haiku-latest",
			TierStandard: "claude-3-7-sonnet-latest",
			TierAdvanced: "claude-3-7-sonnet-latest",
		},
	}
}

// ConfigFor returns the default configuration for a provider.
func ConfigFor(provider Provider) *Config {
	if provider == ProviderAnthropic {
		return DefaultClaudeConfig()
	}
	return DefaultGeminiConfig()
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fall back to standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config using model for every tier
func (c *Config) WithModel(model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)),
	}
	for tier := range c.Models {
		newConfig.Models[tier] = model
	}
	if len(newConfig.Models) == 0 {
		newConfig.Models[TierStandard] = model
	}
	return newConfig
}
