package main

import (
	"github.com/harunnryd/skillref/internal/skill/formatter"
	"github.com/harunnryd/skillref/internal/skill/graph"
	"github.com/harunnryd/skillref/internal/skill/registry"

	"github.com/spf13/cobra"
)

func newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show dependency information",
		Long:  `List the skills under the skills root, draw their dependency graph, or check for circular dependencies.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			f, err := newFormatter(cfg)
			if err != nil {
				return err
			}
			checkCircular, _ := cmd.Flags().GetBool("check-circular")
			showGraph, _ := cmd.Flags().GetBool("graph")
			unique, _ := cmd.Flags().GetBool("unique-cycles")

			idx, err := registry.Scan(cfg.Skills.Root)
			if err != nil {
				return err
			}
			listing := formatter.NewListing(idx)

			var out string
			switch {
			case checkCircular:
				cycles := graph.FromIndex(idx).CyclesFromAnyRoot()
				if unique {
					cycles = graph.Deduplicate(cycles)
				}
				out, err = f.FormatCycles(formatter.CycleView{
					Root:     idx.Root(),
					Unique:   unique,
					Cycles:   cycles,
					Warnings: listing.Warnings,
				})
				if err != nil {
					return err
				}
				printOut(cmd, out)
				if len(cycles) > 0 {
					return errFailed
				}
				return nil
			case showGraph:
				out, err = f.FormatGraph(listing)
			default:
				out, err = f.FormatSkills(listing)
			}
			if err != nil {
				return err
			}
			printOut(cmd, out)
			return nil
		},
	}

	addSkillsRootFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().Bool("check-circular", false, "Check for circular dependencies")
	cmd.Flags().Bool("graph", false, "Show dependency graph")
	cmd.Flags().Bool("unique-cycles", false, "Report each circular dependency once, rotated to its smallest member")
	return cmd
}
