package typechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fire  = Type{ID: 10, Name: "fire"}
	water = Type{ID: 11, Name: "water"}
	grass = Type{ID: 12, Name: "grass"}
	rock  = Type{ID: 6, Name: "rock"}
)

func TestBuild(t *testing.T) {
	g, err := Build([]Edge{
		{From: fire, To: grass, Effectiveness: Strong},
		{From: fire, To: water, Effectiveness: Weak},
		{From: fire, To: rock, Effectiveness: Weak},
		{From: water, To: fire, Effectiveness: Strong},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []Type{rock, fire, water, grass}, g.Types())

	t.Run("strong against", func(t *testing.T) {
		assert.Equal(t, NewTypeSet(grass), g.StrongAgainst(fire))
		assert.Equal(t, NewTypeSet(fire), g.StrongAgainst(water))
	})

	t.Run("weak against", func(t *testing.T) {
		assert.Equal(t, NewTypeSet(water, rock), g.WeakAgainst(fire))
	})

	t.Run("missing type yields empty set", func(t *testing.T) {
		assert.Empty(t, g.StrongAgainst(grass))
		assert.Empty(t, g.WeakAgainst(grass))
		assert.NotNil(t, g.StrongAgainst(grass))
	})

	t.Run("reverse relation is not synthesised", func(t *testing.T) {
		// fire is strong against grass, but grass has no edges of its own.
		assert.False(t, g.WeakAgainst(grass).Contains(fire))
		_, ok := g.Effectiveness(grass, fire)
		assert.False(t, ok)
	})

	t.Run("effectiveness lookup", func(t *testing.T) {
		eff, ok := g.Effectiveness(fire, grass)
		require.True(t, ok)
		assert.Equal(t, Strong, eff)

		eff, ok = g.Effectiveness(fire, water)
		require.True(t, ok)
		assert.Equal(t, Weak, eff)
	})

	t.Run("returned sets are copies", func(t *testing.T) {
		set := g.StrongAgainst(fire)
		set[water.ID] = water
		assert.False(t, g.StrongAgainst(fire).Contains(water))
	})

	t.Run("any helpers", func(t *testing.T) {
		assert.True(t, g.IsStrongAgainstAny(fire, NewTypeSet(water, grass)))
		assert.False(t, g.IsStrongAgainstAny(fire, NewTypeSet(water)))
		assert.True(t, g.IsWeakAgainstAny(fire, NewTypeSet(rock)))
		assert.False(t, g.IsWeakAgainstAny(grass, NewTypeSet(rock)))
	})
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Types())
	assert.Empty(t, g.StrongAgainst(fire))
}

func TestBuild_DataIntegrity(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
	}{
		{
			name: "duplicate label",
			edges: []Edge{
				{From: fire, To: grass, Effectiveness: Strong},
				{From: fire, To: grass, Effectiveness: Strong},
			},
		},
		{
			name: "conflicting labels",
			edges: []Edge{
				{From: fire, To: water, Effectiveness: Weak},
				{From: fire, To: water, Effectiveness: Strong},
			},
		},
		{
			name: "unknown label",
			edges: []Edge{
				{From: fire, To: water, Effectiveness: Effectiveness(7)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.edges)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDataIntegrity)
		})
	}
}

func TestBuild_AsymmetricPairAllowed(t *testing.T) {
	// A strong against B and B strong against A are independent rows.
	_, err := Build([]Edge{
		{From: fire, To: water, Effectiveness: Strong},
		{From: water, To: fire, Effectiveness: Strong},
	})
	require.NoError(t, err)
}

func TestTypeSet(t *testing.T) {
	set := NewTypeSet(grass, fire, fire)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains(Type{ID: fire.ID}))
	assert.Equal(t, []string{"fire", "grass"}, set.Names())
	assert.True(t, set.Intersects(NewTypeSet(water, grass)))
	assert.False(t, set.Intersects(NewTypeSet(water)))
	assert.False(t, set.Intersects(nil))
}

func TestEffectivenessText(t *testing.T) {
	eff, err := EffectivenessString("Strong")
	require.NoError(t, err)
	assert.Equal(t, Strong, eff)
	assert.Equal(t, "weak", Weak.String())

	_, err = EffectivenessString("immune")
	assert.Error(t, err)
}

func TestMatchups(t *testing.T) {
	flying := Type{ID: 13, Name: "flying"}
	g, err := Build([]Edge{
		{From: fire, To: grass, Effectiveness: Strong},
		{From: fire, To: water, Effectiveness: Weak},
		{From: water, To: fire, Effectiveness: Strong},
		{From: water, To: grass, Effectiveness: Weak},
		{From: rock, To: fire, Effectiveness: Strong},
		{From: rock, To: flying, Effectiveness: Strong},
		{From: grass, To: water, Effectiveness: Strong},
		{From: grass, To: fire, Effectiveness: Weak},
	})
	require.NoError(t, err)

	tests := []struct {
		name        string
		defenders   TypeSet
		weaknesses  []string
		resistances []string
	}{
		{
			name:        "single type",
			defenders:   NewTypeSet(fire),
			weaknesses:  []string{"rock", "water"},
			resistances: []string{"grass"},
		},
		{
			name:        "dual type can resist and be weak",
			defenders:   NewTypeSet(water, grass),
			weaknesses:  []string{"fire", "grass"},
			resistances: []string{"fire", "water"},
		},
		{
			name:        "untabulated",
			defenders:   NewTypeSet(Type{ID: 99, Name: "ghost"}),
			weaknesses:  []string{},
			resistances: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weaknesses, g.Weaknesses(tt.defenders).Names())
			assert.Equal(t, tt.resistances, g.Resistances(tt.defenders).Names())
		})
	}

	t.Run("coverage", func(t *testing.T) {
		assert.Equal(t, []string{"fire", "grass", "flying"}, g.Coverage(NewTypeSet(water, fire, rock)).Names())
		assert.Empty(t, g.Coverage(NewTypeSet()))
	})
}
