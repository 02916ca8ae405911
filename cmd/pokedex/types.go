package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Print the type effectiveness chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			types, err := mdl.AllTypes(ctx)
			if err != nil {
				return err
			}
			chart, err := mdl.TypeChart(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tSTRONG AGAINST\tWEAK AGAINST")
			for _, typ := range types {
				fmt.Fprintf(
					tw,
					"%s\t%s\t%s\n",
					typ.LocalizedName(),
					joinOrDash(chart.StrongAgainst(typ.Value()).Names()),
					joinOrDash(chart.WeakAgainst(typ.Value()).Names()),
				)
			}

			return tw.Flush()
		},
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ", ")
}
