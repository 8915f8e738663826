package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/harunnryd/skillref/internal/config"
	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/logger"

	"github.com/spf13/cobra"
)

// errFailed signals a failing result that has already been printed.
var errFailed = errors.New("command failed")

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "skills-ref",
		Short: "Agent Skills validation and testing tool",
		Long:  `skills-ref validates skill descriptors, resolves their dependencies and runs their test cases.`,
		Example: `  skills-ref validate ./my-skill
  skills-ref init ./new-skill --skills-root ./skills
  skills-ref test ./my-skill
  skills-ref deps --graph
  skills-ref deps --check-circular`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.Setup(cfg.Log.Level)
			setConfig(cmd, cfg)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.skills-ref/config.yaml)")
	cmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newValidateCmd(),
		newInitCmd(),
		newTestCmd(),
		newDepsCmd(),
		newVersionCmd(),
	)
	return cmd
}

func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			slog.Debug("Command failed", "category", apperrors.Category(err), "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if hint := usageHint(err); hint != "" {
				fmt.Fprintln(os.Stderr, hint)
			}
		}
		return 1
	}
	return 0
}

// usageHint returns the line printed after an error caused by bad input.
func usageHint(err error) string {
	if apperrors.IsCategory(err, apperrors.ErrInvalidInput) {
		return "Run 'skills-ref --help' for usage."
	}
	return ""
}
