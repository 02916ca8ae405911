package model

import (
	"context"
	"fmt"
)

type PokemonAttack struct {
	model *Model

	PokemonID int `db:"pokemon_id"`
	AttackID  int `db:"attack_id"`
	Slot      int `db:"slot"`

	attack *Attack
}

func (pa *PokemonAttack) Attack(ctx context.Context) (*Attack, error) {
	if pa.attack == nil {
		attack, err := pa.model.attackByID(ctx, pa.AttackID)
		if err != nil {
			return nil, fmt.Errorf("error while getting attack: %w", err)
		}
		pa.attack = attack
	}

	return pa.attack, nil
}
