// Package enhance rewrites rough ticket notes into well-structured
// Markdown using the Anthropic API before they are converted and filed.
package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = `You rewrite rough engineering notes into a clear ticket description.
Output Markdown only. Keep the author's facts and intent; do not invent details.
Use short paragraphs, bullet lists for steps, and fenced code blocks for code or logs.
Do not add a title heading; the ticket summary carries the title.`

const defaultMaxTokens = 4096

// Enhancer rewrites Markdown via the Anthropic Messages API.
type Enhancer struct {
	client anthropic.Client
	model  string
}

// New creates an Enhancer. apiKey must already be resolved (config
// value or ANTHROPIC_API_KEY).
func New(apiKey, model string) (*Enhancer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no Anthropic API key configured (set enhance.api_key or ANTHROPIC_API_KEY)")
	}
	if model == "" {
		return nil, fmt.Errorf("no model configured")
	}
	return &Enhancer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Rewrite returns an improved Markdown version of the given notes.
// The model's output is returned as-is apart from whitespace trimming.
func (e *Enhancer) Rewrite(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("nothing to rewrite")
	}

	msg, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: defaultMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(markdown)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return out, nil
}
