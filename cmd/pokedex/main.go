// Command pokedex imports the reference tables, serves the pokedex API and
// recommends movesets from the command line.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokedex and moveset recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to a TOML or YAML config file")

	root.AddCommand(
		newServeCmd(),
		newImportCmd(),
		newMovesetCmd(),
		newTypesCmd(),
		newWeakCmd(),
	)

	return root
}

// openModel opens the database named by cfg with its display language.
func openModel(ctx context.Context, cfg *config.Config, readOnly bool) (*model.Model, error) {
	mdl, err := model.New(ctx, cfg.DB.Path, readOnly)
	if err != nil {
		return nil, fmt.Errorf("error while opening %q: %w", cfg.DB.Path, err)
	}

	err = mdl.SetLanguageByLocalizationCode(model.LocalizationCode(cfg.Display.Language))
	if err != nil {
		mdl.Close()
		return nil, fmt.Errorf("error while setting language: %w", err)
	}

	return mdl, nil
}
