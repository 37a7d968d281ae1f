// Package llm wraps the language-model provider used by the intent and
// roster agents behind a small JSON-in, JSON-out interface.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by every call when no API key was provided.
var ErrNotConfigured = errors.New("llm client not configured")

// Client defines the interface for LLM providers.
type Client interface {
	// CompleteJSON sends a system prompt and a user message and returns the
	// model's raw JSON reply.
	CompleteJSON(ctx context.Context, req Request) (string, error)
}

// Request is a single-turn chat completion.
type Request struct {
	System      string
	User        string
	Temperature *float32
}

// Config holds provider settings.
type Config struct {
	APIKey string
	Model  string
}

// DecodeJSON strips any markdown fence around content and decodes it into v.
func DecodeJSON(content string, v any) error {
	content = cleanMarkdownWrapper(content)
	if content == "" {
		return fmt.Errorf("empty model response")
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

type unconfiguredClient struct{}

func (unconfiguredClient) CompleteJSON(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}
