package main

import (
	"context"

	"github.com/harunnryd/skillref/internal/config"
	"github.com/harunnryd/skillref/internal/skill/formatter"
	"github.com/harunnryd/skillref/internal/skill/validator"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <skill-path>",
		Short: "Validate a skill",
		Long:  `Check a skill's descriptor, name, dependencies, circular dependencies and test case file.`,
		Args:  cobra.ExactArgs(1),
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
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			check := func(ctx context.Context) (bool, error) {
				return validateOnce(ctx, cmd, cfg, f, args[0], skillDir, force)
			}

			if watch {
				sig := NewSignalHandler(cmd.Context(), cmd.ErrOrStderr())
				sig.Start()
				defer sig.Stop()
				return watchSkill(sig.Context(), cmd, skillDir, cfg.Skills.Root, check)
			}

			valid, err := check(cmd.Context())
			if err != nil {
				return err
			}
			if !valid {
				return errFailed
			}
			return nil
		},
	}

	addSkillsRootFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().Bool("force", false, "Continue despite missing dependencies")
	cmd.Flags().BoolP("watch", "w", false, "Re-validate whenever the skill or skills root changes")
	return cmd
}

func validateOnce(ctx context.Context, cmd *cobra.Command, cfg *config.Config, f formatter.Formatter, label, skillDir string, force bool) (bool, error) {
	v := validator.NewSkillValidator(cfg.Skills.Root, force)
	result := v.Validate(ctx, skillDir)

	out, err := f.FormatValidation(formatter.NewValidationView(label, result))
	if err != nil {
		return false, err
	}
	printOut(cmd, out)
	return result.Valid(), nil
}
