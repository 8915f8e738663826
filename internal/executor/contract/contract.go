// Package contract holds the provider-neutral completion types shared by the
// model-backed executor and its providers.
package contract

import "context"

// CompletionRequest carries the skill descriptor as the system prompt and a
// test case input as the user prompt.
type CompletionRequest struct {
	Model     string `json:"model"`
	System    string `json:"system"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type CompletionResponse struct {
	Content string `json:"content"`
}

type Provider interface {
	Name() string
	Generate(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
