package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestConfigFor(t *testing.T) {
	assert.Equal(t, ProviderAnthropic, ConfigFor(ProviderAnthropic).Provider)
	assert.NotEmpty(t, ConfigFor(ProviderAnthropic).GetModel(TierLite))
	assert.Equal(t, ProviderGemini, ConfigFor(ProviderGemini).Provider)
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input    string
		expected Provider
		wantErr  bool
	}{
		{"", ProviderGemini, false},
		{"Gemini", ProviderGemini, false},
		{"claude", ProviderAnthropic, false},
		{"anthropic", ProviderAnthropic, false},
		{"openai", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProvider(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "fallback-model"},
	}
	assert.Equal(t, "fallback-model", config.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel("custom-model")

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "custom-model", custom.GetModel(TierLite))
	assert.Equal(t, "custom-model", custom.GetModel(TierAdvanced))

	bare := (&Config{Provider: ProviderAnthropic}).WithModel("m")
	assert.Equal(t, "m", bare.GetModel(TierLite))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClaudeClient(DefaultClaudeConfig(), "")
	assert.Error(t, err)

	_, err = NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	assert.Error(t, err)
}

func TestNewClaudeClient(t *testing.T) {
	client, err := NewClaudeClient(nil, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", client.GetModel(TierLite))
	assert.NoError(t, client.Close())
}
