package executor

import (
	"fmt"

	"github.com/harunnryd/skillref/internal/config"
	"github.com/harunnryd/skillref/internal/executor/contract"
	"github.com/harunnryd/skillref/internal/executor/providers/anthropic"
	"github.com/harunnryd/skillref/internal/executor/providers/gemini"
	"github.com/harunnryd/skillref/internal/executor/providers/openai"
)

// FromConfig builds the executor selected by runner.kind.
func FromConfig(cfg config.RunnerConfig) (Executor, error) {
	timeout, err := config.DurationOrDefault(cfg.Timeout, 0)
	if err != nil {
		return nil, fmt.Errorf("runner.timeout: %w", err)
	}

	switch cfg.Kind {
	case "", config.RunnerNone:
		return Skip{}, nil
	case config.RunnerCommand:
		return NewCommandExecutor(cfg.Command, timeout)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s runner: %w", cfg.Kind, ErrMissingAPIKey)
	}

	var provider contract.Provider
	switch cfg.Kind {
	case config.RunnerAnthropic:
		provider = anthropic.New(cfg.APIKey, cfg.BaseURL)
	case config.RunnerOpenAI:
		provider = openai.New(cfg.APIKey, cfg.BaseURL)
	case config.RunnerGemini:
		p, err := gemini.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("gemini runner: %w", err)
		}
		provider = p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRunner, cfg.Kind)
	}

	return NewModelExecutor(provider, cfg.Model, cfg.MaxTokens, timeout), nil
}
