package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const defaultClaudeMaxTokens = 1024

// ClaudeClient implements Client for Anthropic Claude
type ClaudeClient struct {
	client    anthropic.Client
	config    *Config
	maxTokens int64
}

// NewClaudeClient creates a new Claude client
func NewClaudeClient(config *Config, apiKey string) (*ClaudeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultClaudeConfig()
	}

	return &ClaudeClient{
		client:    anthropic.NewClient(anthropicoption.WithAPIKey(apiKey)),
		config:    config,
		maxTokens: defaultClaudeMaxTokens,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *ClaudeClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(modelName),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(0.1),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	var parts []string
	for _, block := range response.Content {
		if text := block.AsText().Text; text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text content in Claude response")
	}
	return strings.Join(parts, ""), nil
}

// GenerateJSON generates JSON content using the specified model tier.
// Claude has no JSON response mode, so the prompt is suffixed with an instruction instead.
func (c *ClaudeClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt+"\n\nReturn ONLY valid JSON, no additional text.", tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *ClaudeClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the Anthropic client holds no long-lived resources.
func (c *ClaudeClient) Close() error {
	return nil
}
