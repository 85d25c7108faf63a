package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"scholarlens-backend/internal/llm"
)

// Provider implements llm.Completer using Anthropic's Messages API.
type Provider struct {
	client anthropic.Client
	model  string
}

// New constructs an Anthropic provider. Returns an error when apiKey is empty
// so callers can decide to run without a provider instead.
func New(apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		model = string(anthropic.ModelClaude3_7SonnetLatest)
	}
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &Provider{client: client, model: model}, nil
}

// Model returns the configured model identifier.
func (p *Provider) Model() string {
	return p.model
}

// Complete sends a single-turn user message and returns the response text.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, llm.Usage, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", llm.Usage{}, fmt.Errorf("anthropic messages: %w", err)
	}

	if len(message.Content) == 0 {
		return "", llm.Usage{}, fmt.Errorf("empty response from model")
	}

	var text string
	for _, block := range message.Content {
		textBlock := block.AsText()
		if textBlock.Text != "" {
			text = textBlock.Text
			break
		}
	}
	if text == "" {
		return "", llm.Usage{}, fmt.Errorf("no text content in model response")
	}

	usage := llm.Usage{
		InputTokens:  int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}
	return text, usage, nil
}

var _ llm.Completer = (*Provider)(nil)
