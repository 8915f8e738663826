package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harunnryd/skillref/internal/executor/contract"
	"github.com/harunnryd/skillref/internal/pathutil"
)

// ModelExecutor sends the skill's SKILL.md as the system prompt and the case
// input as the user message. It does not judge semantic_match criteria.
type ModelExecutor struct {
	provider  contract.Provider
	model     string
	maxTokens int
	timeout   time.Duration
}

func NewModelExecutor(provider contract.Provider, model string, maxTokens int, timeout time.Duration) *ModelExecutor {
	return &ModelExecutor{
		provider:  provider,
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (me *ModelExecutor) Execute(ctx context.Context, skillDir, input string) (string, error) {
	system, err := os.ReadFile(filepath.Join(skillDir, pathutil.DescriptorFile))
	if err != nil {
		return "", fmt.Errorf("read skill instructions: %w", err)
	}

	ctx, cancel := withDeadline(ctx, me.timeout)
	defer cancel()

	resp, err := me.provider.Generate(ctx, contract.CompletionRequest{
		Model:     me.model,
		System:    string(system),
		Prompt:    input,
		MaxTokens: me.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", me.provider.Name(), err)
	}
	if resp == nil || resp.Content == "" {
		return "", fmt.Errorf("%s: %w", me.provider.Name(), ErrEmptyResponse)
	}
	return resp.Content, nil
}
