package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/spf13/cobra"
)

func newWeakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weak <pokemon>",
		Short: "Show the defensive type chart and attack coverage of a pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read(configPath)
			if err != nil {
				return err
			}
			mdl, err := openModel(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer mdl.Close()

			chart, err := mdl.TypeChart(ctx)
			if err != nil {
				return fmt.Errorf("error while loading type chart: %w", err)
			}
			creature, err := loadCreature(cmd, mdl, args[0])
			if err != nil {
				return err
			}

			defenders := creature.TypeSet()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n", mdl.Language.Title(creature.Name), joinOrDash(defenders.Names()))
			fmt.Fprintf(tw, "Weaknesses\t%s\n", joinOrDash(chart.Weaknesses(defenders).Names()))
			fmt.Fprintf(tw, "Resistances\t%s\n", joinOrDash(chart.Resistances(defenders).Names()))
			fmt.Fprintf(tw, "Coverage\t%s\n", joinOrDash(chart.Coverage(creature.AttackTypes()).Names()))

			return tw.Flush()
		},
	}
}
