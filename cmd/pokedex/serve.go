package main

import (
	"fmt"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/notjagan/movedex/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pokedex HTTP and websocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			mdl, err := openModel(ctx, cfg, cfg.DB.ReadOnly)
			if err != nil {
				return err
			}
			defer mdl.Close()

			resolver, err := mdl.Resolver(ctx)
			if err != nil {
				return fmt.Errorf("error while loading type chart: %w", err)
			}

			return server.New(cfg.Server, mdl, resolver).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overriding the config")

	return cmd
}
