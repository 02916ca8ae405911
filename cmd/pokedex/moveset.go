package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/moveset"
	"github.com/spf13/cobra"
)

func newMovesetCmd() *cobra.Command {
	var (
		opponentName string
		showAll      bool
	)

	cmd := &cobra.Command{
		Use:   "moveset <pokemon>",
		Short: "Recommend the best fast and charge attack for a pokemon",
		Long: `Scores every learnable attack by power per second of cooldown, boosted for
same-type attacks and for attacks the opponent is weak to.

Examples:
  pokedex moveset charizard
  pokedex moveset charizard --opponent venusaur --all`,
		Args: cobra.ExactArgs(1),
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

			resolver, err := mdl.Resolver(ctx)
			if err != nil {
				return fmt.Errorf("error while loading type chart: %w", err)
			}

			creature, err := loadCreature(cmd, mdl, args[0])
			if err != nil {
				return err
			}
			var opponent *moveset.Creature
			if opponentName != "" {
				opponent, err = loadCreature(cmd, mdl, opponentName)
				if err != nil {
					return err
				}
			}

			ms, err := resolver.BestMoveset(creature, opponent)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lang := mdl.Language
			if opponent != nil {
				fmt.Fprintf(out, "%s vs %s\n", lang.Title(creature.Name), lang.Title(opponent.Name))
			} else {
				fmt.Fprintf(out, "%s\n", lang.Title(creature.Name))
			}
			fmt.Fprintf(out, "Fast:   %s\n", lang.Title(ms.Fast.Name))
			fmt.Fprintf(out, "Charge: %s\n", lang.Title(ms.Charge.Name))

			if !showAll {
				return nil
			}

			m := moveset.NewMatchup(creature, opponent)
			for _, attacks := range [][]moveset.Attack{creature.FastAttacks(), creature.ChargeAttacks()} {
				ranked, err := resolver.Rank(attacks, m)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				err = writeRanking(out, lang, ranked)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opponentName, "opponent", "o", "", "Opponent pokemon to score attacks against")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show every attack with its score")

	return cmd
}

func loadCreature(cmd *cobra.Command, mdl *model.Model, key string) (*moveset.Creature, error) {
	pokemon, err := mdl.PokemonByKey(cmd.Context(), key)
	if err != nil {
		return nil, fmt.Errorf("error while looking up %q: %w", key, err)
	}

	return pokemon.Creature(cmd.Context())
}

func writeRanking(w io.Writer, lang *model.Language, ranked []moveset.ScoredAttack) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ATTACK\tTYPE\tSPEED\tPOWER\tCOOLDOWN\tSCORE")
	for _, sa := range ranked {
		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			lang.Title(sa.Attack.Name),
			lang.Title(sa.Attack.Type.Name),
			sa.Attack.Speed,
			sa.Attack.Power,
			sa.Attack.CooldownTime,
			sa.Score.StringFixed(2),
		)
	}

	return tw.Flush()
}
