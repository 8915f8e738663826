package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/skillref/internal/pathutil"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Skills SkillsConfig `koanf:"skills"`
	Runner RunnerConfig `koanf:"runner"`
	Output OutputConfig `koanf:"output"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type SkillsConfig struct {
	Root string `koanf:"root"`
}

// RunnerConfig selects the execution callback used by `test`.
type RunnerConfig struct {
	Kind      string `koanf:"kind"`
	Command   string `koanf:"command"`
	Model     string `koanf:"model"`
	BaseURL   string `koanf:"base_url"`
	APIKey    string `koanf:"api_key"`
	Timeout   string `koanf:"timeout"`
	MaxTokens int    `koanf:"max_tokens"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

const (
	EnvPrefix             = "SKILLREF_"
	DefaultLogLevel       = "warn"
	DefaultSkillsRoot     = "."
	DefaultRunnerKind     = RunnerNone
	DefaultRunnerCommand  = ""
	DefaultRunnerModel    = ""
	DefaultRunnerTimeout  = ""
	DefaultRunnerMaxToken = 1024
	DefaultOutputFormat   = "text"
	DefaultLockTimeout    = "2s"
	DefaultLockRetry      = "100ms"
	DefaultLockMaxRetry   = 20
)

const (
	RunnerNone      = "none"
	RunnerCommand   = "command"
	RunnerAnthropic = "anthropic"
	RunnerOpenAI    = "openai"
	RunnerGemini    = "gemini"
)

// flagKeys maps CLI flag names onto config keys. Flags not listed here are
// command-local and never reach the config tree.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"skills-root":    "skills.root",
	"runner":         "runner.kind",
	"runner-command": "runner.command",
	"model":          "runner.model",
	"base-url":       "runner.base_url",
	"timeout":        "runner.timeout",
	"output":         "output.format",
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"log.level":         DefaultLogLevel,
		"skills.root":       DefaultSkillsRoot,
		"runner.kind":       DefaultRunnerKind,
		"runner.command":    DefaultRunnerCommand,
		"runner.model":      DefaultRunnerModel,
		"runner.base_url":   "",
		"runner.api_key":    "",
		"runner.timeout":    DefaultRunnerTimeout,
		"runner.max_tokens": DefaultRunnerMaxToken,
		"output.format":     DefaultOutputFormat,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Config file loading
	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		expanded, err := pathutil.Expand(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(expanded), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".skills-ref", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	// Environment Variables: SKILLREF_RUNNER_BASE_URL -> runner.base_url
	k.Load(env.Provider(EnvPrefix, ".", envKey), nil)

	// CLI Flags
	if cmd != nil {
		k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, flagKey), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	root, err := pathutil.Expand(cfg.Skills.Root)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = DefaultSkillsRoot
	}
	cfg.Skills.Root = root

	cfg.Runner.Kind = strings.ToLower(strings.TrimSpace(cfg.Runner.Kind))
	if cfg.Runner.Kind == "" {
		cfg.Runner.Kind = RunnerNone
	}

	// Post-Process: Inject standard provider keys if missing
	if cfg.Runner.APIKey == "" {
		switch cfg.Runner.Kind {
		case RunnerAnthropic:
			cfg.Runner.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case RunnerOpenAI:
			cfg.Runner.APIKey = os.Getenv("OPENAI_API_KEY")
		case RunnerGemini:
			cfg.Runner.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	return &cfg, nil
}

func envKey(s string) string {
	trimmed := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(trimmed, "_")
	if !found {
		return section
	}
	return section + "." + rest
}

func flagKey(f *pflag.Flag) (string, interface{}) {
	key, ok := flagKeys[f.Name]
	if !ok {
		return "", nil
	}
	return key, f.Value.String()
}
