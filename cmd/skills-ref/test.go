package main

import (
	"github.com/harunnryd/skillref/internal/config"
	"github.com/harunnryd/skillref/internal/executor"
	"github.com/harunnryd/skillref/internal/skill/testrunner"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <skill-path>",
		Short: "Run tests for a skill",
		Long: `Run each test case of a skill through the configured runner and check its assertions.
Without a runner every case is skipped and counted as passed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			skillDir, err := resolveSkillDir(args[0])
			if err != nil {
				return err
			}
			f, err := newFormatter(cfg)
			if err != nil {
				return err
			}
			exec, err := executor.FromConfig(cfg.Runner)
			if err != nil {
				return err
			}

			sig := NewSignalHandler(cmd.Context(), cmd.ErrOrStderr())
			sig.Start()
			defer sig.Stop()

			report, err := testrunner.NewRunner(exec).Run(sig.Context(), skillDir)
			if err != nil {
				return err
			}

			out, err := f.FormatTestReport(report)
			if err != nil {
				return err
			}
			printOut(cmd, out)

			if !report.Success() {
				return errFailed
			}
			return nil
		},
	}

	addSkillsRootFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().String("runner", config.DefaultRunnerKind, "Execution runner (none, command, anthropic, openai, gemini)")
	cmd.Flags().String("runner-command", "", `Command for the command runner; "{input}" is replaced by the test input, otherwise it is sent on stdin`)
	cmd.Flags().String("model", "", "Model name for model-backed runners")
	cmd.Flags().String("base-url", "", "API base URL override for model-backed runners")
	cmd.Flags().String("timeout", "", "Per-case timeout overriding test.config.timeout (e.g. 30s, 2m, or seconds)")
	return cmd
}
