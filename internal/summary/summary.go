// Package summary turns aggregated site text into a structured
// natural-language company profile via the Anthropic API, degrading to a
// fixed notice when the provider is unavailable.
package summary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/pkg/anthropic"
)

// Fallback strings. Always non-empty: a record's summary field is populated
// even when generation is impossible.
const (
	FallbackNoCredentials = "Summary unavailable: no Anthropic API key configured."
	FallbackProviderError = "Summary unavailable: the summarization provider returned an error."
)

const promptTemplate = `You are a business research assistant. Based on the following extracted website content from '%s', generate a detailed summary that includes:

- Company Size
- Years in Business
- Types of Products
- Client Portfolio
- Industry Certifications
- Product Catalogues
- Manufacturing Capabilities
- Quality Standards
- Export Information
- Contact Details (include email addresses, phone numbers, and physical addresses if available)

Use only the information provided in the text below and do not add any invented details.

Extracted Content:
%s

Output the final summary in a clear, professional, and structured manner.`

// maxContentChars bounds the scraped text sent per request. Site aggregates
// can run far past any useful context size.
const maxContentChars = 60000

// Generator produces company summaries.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewGenerator creates a Generator. A nil client means no credentials are
// configured; Summarize then always returns the no-credentials fallback.
func NewGenerator(client anthropic.Client, model string, maxTokens int64) *Generator {
	if maxTokens <= 0 {
		maxTokens = 750
	}
	return &Generator{client: client, model: model, maxTokens: maxTokens}
}

// Summarize generates a structured summary of the extracted content. It
// never fails: provider errors yield a labeled fallback string and the
// pipeline continues.
func (g *Generator) Summarize(ctx context.Context, companyName, content string) string {
	if g.client == nil {
		return FallbackNoCredentials
	}

	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	temp := 0.7
	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, companyName, content)},
		},
		Temperature: &temp,
	})
	if err != nil {
		zap.L().Warn("summary: generation failed",
			zap.String("company", companyName),
			zap.Error(err),
		)
		return FallbackProviderError
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackProviderError
	}
	return text
}
