package main

import (
	"fmt"

	"github.com/harunnryd/skillref/internal/skill/scaffold"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <skill-path>",
		Short: "Initialize a new skill",
		Long:  `Create SKILL.md and test/cases.yaml templates. requires is pre-filled with every other skill found under the skills root.`,
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
			force, _ := cmd.Flags().GetBool("force")

			res, err := scaffold.Init(cmd.Context(), skillDir, cfg.Skills.Root, scaffold.Options{Overwrite: force})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", res.SkillFile)
			fmt.Fprintf(out, "Created %s\n", res.CasesFile)
			if n := len(res.Populated); n > 0 {
				fmt.Fprintf(out, "\nAuto-populated requires with %d skill(s) found in %s\n", n, cfg.Skills.Root)
				fmt.Fprintln(out, "Edit SKILL.md to keep only the dependencies you actually need.")
			}
			return nil
		},
	}

	addSkillsRootFlag(cmd)
	cmd.Flags().Bool("force", false, "Overwrite an existing SKILL.md")
	return cmd
}
