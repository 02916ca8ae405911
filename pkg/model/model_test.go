package model_test

import (
	"context"
	"testing"

	"github.com/notjagan/movedex/pkg/dextest"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/moveset"
	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonLookup(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	t.Run("by name", func(t *testing.T) {
		pokemon, err := mdl.PokemonByName(ctx, "charmander")
		require.NoError(t, err)
		assert.Equal(t, 4, pokemon.ID)
		assert.Equal(t, 116, pokemon.AttackStat)
		assert.Equal(t, "14.54", pokemon.CPGain.String())
		assert.True(t, pokemon.Height.Valid)
	})

	t.Run("by id", func(t *testing.T) {
		pokemon, err := mdl.PokemonByID(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, "pikachu", pokemon.Name)
		assert.False(t, pokemon.Height.Valid)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := mdl.PokemonByName(ctx, "missingno")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := mdl.PokemonByID(ctx, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestPokemonByKey(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	tests := []struct {
		key string
		id  int
	}{
		{key: "charmander", id: 4},
		{key: "Charmander", id: 4},
		{key: "  CHARMANDER\t", id: 4},
		{key: "4", id: 4},
		{key: " 25 ", id: 25},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			pokemon, err := mdl.PokemonByKey(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.id, pokemon.ID)
		})
	}

	_, err := mdl.PokemonByKey(ctx, "MissingNo")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPokemonRelations(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	charizard, err := mdl.PokemonByName(ctx, "charizard")
	require.NoError(t, err)

	types, err := charizard.Types(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "fire", types[0].Name)
	assert.Equal(t, "flying", types[1].Name)

	category, err := charizard.Category(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Flame", category.LocalizedName())

	from, err := charizard.EvolvesFrom(ctx)
	require.NoError(t, err)
	require.Len(t, from, 1)
	pre, err := from[0].From(ctx)
	require.NoError(t, err)
	assert.Equal(t, "charmeleon", pre.Name)
	assert.Equal(t, 100, from[0].Candy)

	to, err := charizard.EvolvesTo(ctx)
	require.NoError(t, err)
	assert.Empty(t, to)

	eggs, err := charizard.Eggs(ctx)
	require.NoError(t, err)
	assert.Empty(t, eggs)
}

func TestPokemonEggs(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	charmander, err := mdl.PokemonByName(ctx, "charmander")
	require.NoError(t, err)
	eggs, err := charmander.Eggs(ctx)
	require.NoError(t, err)
	require.Len(t, eggs, 1)
	assert.Equal(t, "2km", eggs[0].Name)
	assert.Equal(t, "Hatches after walking 2 km.", eggs[0].Description)

	lotad, err := mdl.PokemonByName(ctx, "lotad")
	require.NoError(t, err)
	eggs, err = lotad.Eggs(ctx)
	require.NoError(t, err)
	require.Len(t, eggs, 1)
	assert.Equal(t, "5km", eggs[0].Name)
}

func TestItems(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	items, err := mdl.AllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "poke-ball", items[0].Name)
	assert.Equal(t, "Poke Ball", items[0].LocalizedName())

	berry, err := mdl.ItemByName(ctx, "razz-berry")
	require.NoError(t, err)
	assert.Equal(t, 3, berry.ID)

	_, err = mdl.ItemByName(ctx, "master-ball")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPokemonCreature(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	charmander, err := mdl.PokemonByName(ctx, "charmander")
	require.NoError(t, err)

	creature, err := charmander.Creature(ctx)
	require.NoError(t, err)

	assert.Equal(t, "charmander", creature.Name)
	assert.Equal(t, []typechart.Type{{ID: 2, Name: "fire"}}, creature.Types)

	names := make([]string, len(creature.Attacks))
	for i, attack := range creature.Attacks {
		names[i] = attack.Name
	}
	assert.Equal(t, []string{"scratch", "ember", "flame-burst", "flamethrower", "body-slam"}, names)

	ember := creature.Attacks[1]
	assert.Equal(t, moveset.Fast, ember.Speed)
	assert.Equal(t, "10", ember.Power.String())
	assert.Equal(t, "1.05", ember.CooldownTime.String())
	assert.Equal(t, typechart.Type{ID: 2, Name: "fire"}, ember.Type)

	assert.Len(t, creature.FastAttacks(), 2)
	assert.Len(t, creature.ChargeAttacks(), 3)
}

func TestTypeChart(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	g, err := mdl.TypeChart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, g.Len())

	fire, err := mdl.TypeByName(ctx, "fire")
	require.NoError(t, err)
	assert.Equal(t, []string{"grass"}, g.StrongAgainst(fire.Value()).Names())
	assert.Equal(t, []string{"fire", "water", "rock"}, g.WeakAgainst(fire.Value()).Names())

	_, err = mdl.TypeByName(ctx, "shadow")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSearchPokemon(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	ps, hasNext, err := mdl.SearchPokemon(ctx, "char", 2, 0)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.True(t, hasNext)
	assert.Equal(t, "charmander", ps[0].Name)
	assert.Equal(t, "charmeleon", ps[1].Name)

	ps, hasNext, err = mdl.SearchPokemon(ctx, "char", 2, 2)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.False(t, hasNext)
	assert.Equal(t, "charizard", ps[0].Name)

	ps, _, err = mdl.SearchPokemon(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Len(t, ps, 9)

	for _, prefix := range []string{"%", "_har", "\\", "char%"} {
		ps, hasNext, err = mdl.SearchPokemon(ctx, prefix, 100, 0)
		require.NoError(t, err)
		assert.Emptyf(t, ps, "prefix %q should match literally", prefix)
		assert.False(t, hasNext)
	}
}

func TestResolverFromModel(t *testing.T) {
	mdl := dextest.NewModel(t)
	ctx := context.Background()

	r, err := mdl.Resolver(ctx)
	require.NoError(t, err)

	load := func(name string) *moveset.Creature {
		pokemon, err := mdl.PokemonByName(ctx, name)
		require.NoError(t, err)
		creature, err := pokemon.Creature(ctx)
		require.NoError(t, err)
		return creature
	}

	charmander := load("charmander")
	bulbasaur := load("bulbasaur")

	ms, err := r.BestMoveset(charmander, nil)
	require.NoError(t, err)
	assert.Equal(t, "scratch", ms.Fast.Name)
	assert.Equal(t, "body-slam", ms.Charge.Name)

	ms, err = r.BestMoveset(charmander, bulbasaur)
	require.NoError(t, err)
	assert.Equal(t, "ember", ms.Fast.Name)
	assert.Equal(t, "flamethrower", ms.Charge.Name)

	_, err = r.BestMoveset(load("magikarp"), nil)
	assert.ErrorIs(t, err, moveset.ErrNoAttacksAvailable)
}

func TestReadOnly(t *testing.T) {
	mdl := dextest.NewModel(t)

	assert.True(t, mdl.ReadOnly())
	assert.ErrorIs(t, mdl.EnsureSchema(context.Background()), model.ErrReadOnly)
}

func TestLanguageTitle(t *testing.T) {
	mdl := dextest.NewWritableModel(t)

	tests := []struct {
		slug     string
		expected string
	}{
		{slug: "fire-punch", expected: "Fire Punch"},
		{slug: "tiny_turtle", expected: "Tiny Turtle"},
		{slug: "charmander", expected: "Charmander"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.expected, mdl.Language.Title(tt.slug))
		})
	}

	require.Error(t, mdl.SetLanguageByLocalizationCode("not a tag!"))
}
