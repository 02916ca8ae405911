package model

import (
	"context"
	"fmt"

	"github.com/notjagan/movedex/pkg/moveset"
	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/shopspring/decimal"
)

const pokemonColumns = "id, name, description, height, weight, category_id, stamina, attack, defense, " +
	"cp_gain, cp_max, buddy_distance"

type Pokemon struct {
	model *Model

	ID            int                 `db:"id"`
	Name          string              `db:"name"`
	Description   string              `db:"description"`
	Height        decimal.NullDecimal `db:"height"`
	Weight        decimal.NullDecimal `db:"weight"`
	CategoryID    int                 `db:"category_id"`
	Stamina       int                 `db:"stamina"`
	AttackStat    int                 `db:"attack"`
	Defense       int                 `db:"defense"`
	CPGain        decimal.Decimal     `db:"cp_gain"`
	CPMax         int                 `db:"cp_max"`
	BuddyDistance decimal.Decimal     `db:"buddy_distance"`

	types    []Type
	attacks  []PokemonAttack
	category *Category
	eggs     []Egg
}

func (pokemon *Pokemon) LocalizedName() string {
	return pokemon.model.localizedName(pokemon.Name)
}

func (pokemon *Pokemon) Types(ctx context.Context) ([]Type, error) {
	if pokemon.types == nil {
		types, err := pokemon.model.pokemonTypes(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting types for pokemon: %w", err)
		}
		pokemon.types = types
	}

	return pokemon.types, nil
}

// Attacks lists the learnable attacks in slot order.
func (pokemon *Pokemon) Attacks(ctx context.Context) ([]PokemonAttack, error) {
	if pokemon.attacks == nil {
		attacks, err := pokemon.model.pokemonAttacks(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting attacks for pokemon: %w", err)
		}
		pokemon.attacks = attacks
	}

	return pokemon.attacks, nil
}

func (pokemon *Pokemon) Category(ctx context.Context) (*Category, error) {
	if pokemon.category == nil {
		category, err := pokemon.model.categoryByID(ctx, pokemon.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("error while getting category for pokemon: %w", err)
		}
		pokemon.category = category
	}

	return pokemon.category, nil
}

// Eggs lists the egg groups the pokemon hatches from, if any.
func (pokemon *Pokemon) Eggs(ctx context.Context) ([]Egg, error) {
	if pokemon.eggs == nil {
		eggs, err := pokemon.model.pokemonEggs(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting eggs for pokemon: %w", err)
		}
		pokemon.eggs = eggs
	}

	return pokemon.eggs, nil
}

func (pokemon *Pokemon) EvolvesTo(ctx context.Context) ([]Evolution, error) {
	return pokemon.model.evolvesTo(ctx, pokemon)
}

func (pokemon *Pokemon) EvolvesFrom(ctx context.Context) ([]Evolution, error) {
	return pokemon.model.evolvesFrom(ctx, pokemon)
}

// Creature loads the types and attacks of the pokemon and returns them as
// plain values that no longer reference the database.
func (pokemon *Pokemon) Creature(ctx context.Context) (*moveset.Creature, error) {
	types, err := pokemon.Types(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get types for pokemon %q: %w", pokemon.Name, err)
	}

	pas, err := pokemon.Attacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get attacks for pokemon %q: %w", pokemon.Name, err)
	}

	creature := &moveset.Creature{
		ID:      pokemon.ID,
		Name:    pokemon.Name,
		Types:   make([]typechart.Type, len(types)),
		Attacks: make([]moveset.Attack, len(pas)),
	}
	for i := range types {
		creature.Types[i] = types[i].Value()
	}
	for i := range pas {
		attack, err := pas[i].Attack(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get attack %d for pokemon %q: %w", pas[i].AttackID, pokemon.Name, err)
		}
		creature.Attacks[i], err = attack.Value(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not convert attack for pokemon %q: %w", pokemon.Name, err)
		}
	}

	return creature, nil
}
