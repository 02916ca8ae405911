package model

import (
	"context"
	"fmt"
)

type Evolution struct {
	model *Model

	FromPokemonID int `db:"from_pokemon_id"`
	ToPokemonID   int `db:"to_pokemon_id"`
	Candy         int `db:"candy"`

	from *Pokemon
	to   *Pokemon
}

func (evo *Evolution) From(ctx context.Context) (*Pokemon, error) {
	if evo.from == nil {
		pokemon, err := evo.model.PokemonByID(ctx, evo.FromPokemonID)
		if err != nil {
			return nil, fmt.Errorf("error while getting evolution source: %w", err)
		}
		evo.from = pokemon
	}

	return evo.from, nil
}

func (evo *Evolution) To(ctx context.Context) (*Pokemon, error) {
	if evo.to == nil {
		pokemon, err := evo.model.PokemonByID(ctx, evo.ToPokemonID)
		if err != nil {
			return nil, fmt.Errorf("error while getting evolution target: %w", err)
		}
		evo.to = pokemon
	}

	return evo.to, nil
}
