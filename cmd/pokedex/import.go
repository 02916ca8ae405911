package main

import (
	"fmt"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/notjagan/movedex/pkg/importer"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [dir]",
		Short: "Import table_<name>.csv files into the database",
		Long: `Reads one CSV file per table from dir (or the configured import directory)
and inserts every row in a single transaction. Tables without a file are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read(configPath)
			if err != nil {
				return err
			}
			dir := cfg.Import.Dir
			if len(args) > 0 {
				dir = args[0]
			}

			mdl, err := openModel(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer mdl.Close()

			summary, err := importer.New(mdl).ImportDir(ctx, dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, table := range importer.Tables {
				if n, ok := summary[table.Name]; ok {
					fmt.Fprintf(out, "%-20s %d\n", table.Name, n)
				}
			}

			return nil
		},
	}
}
