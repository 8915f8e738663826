package main

import (
	"context"
	"fmt"

	"github.com/harunnryd/skillref/internal/config"
	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/pathutil"
	"github.com/harunnryd/skillref/internal/skill/formatter"

	"github.com/spf13/cobra"
)

type configKey struct{}

func setConfig(cmd *cobra.Command, cfg *config.Config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
}

// loadedConfig returns the config resolved by the root pre-run hook.
func loadedConfig(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	return nil, apperrors.Internal("config not loaded")
}

func resolveSkillDir(arg string) (string, error) {
	dir, err := pathutil.SkillDir(arg)
	if err != nil {
		return "", err
	}
	return dir, nil
}

func newFormatter(cfg *config.Config) (formatter.Formatter, error) {
	format, err := formatter.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return formatter.NewFormatterFactory().Create(format)
}

func printOut(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func addSkillsRootFlag(cmd *cobra.Command) {
	cmd.Flags().String("skills-root", config.DefaultSkillsRoot, "Root directory containing all skills")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", config.DefaultOutputFormat, "Output format (text, table, json, yaml)")
}
