// Package typechart holds the directed type effectiveness graph. A Graph is
// built once from reference edges and is read-only afterwards, so it can be
// shared between goroutines without locking.
package typechart

import (
	"errors"
	"fmt"
)

var ErrDataIntegrity = errors.New("reference data integrity violation")

type Edge struct {
	From          Type
	To            Type
	Effectiveness Effectiveness
}

type Graph struct {
	strong map[int]TypeSet
	weak   map[int]TypeSet
	types  TypeSet
	edges  int
}

// Build partitions the outgoing edges of every type into its strong and weak
// sets. The relation is taken as tabulated: an edge A->B says nothing about
// B->A.
func Build(edges []Edge) (*Graph, error) {
	g := &Graph{
		strong: make(map[int]TypeSet),
		weak:   make(map[int]TypeSet),
		types:  make(TypeSet),
	}

	for _, edge := range edges {
		if !edge.Effectiveness.IsAEffectiveness() {
			return nil, fmt.Errorf(
				"edge %q -> %q has unknown effectiveness %d: %w",
				edge.From.Name,
				edge.To.Name,
				int(edge.Effectiveness),
				ErrDataIntegrity,
			)
		}

		if existing, ok := g.Effectiveness(edge.From, edge.To); ok {
			if existing == edge.Effectiveness {
				return nil, fmt.Errorf(
					"duplicate %s edge %q -> %q: %w",
					edge.Effectiveness,
					edge.From.Name,
					edge.To.Name,
					ErrDataIntegrity,
				)
			}
			return nil, fmt.Errorf(
				"conflicting edges %q -> %q labelled both %s and %s: %w",
				edge.From.Name,
				edge.To.Name,
				existing,
				edge.Effectiveness,
				ErrDataIntegrity,
			)
		}

		adj := g.strong
		if edge.Effectiveness == Weak {
			adj = g.weak
		}
		set, ok := adj[edge.From.ID]
		if !ok {
			set = make(TypeSet)
			adj[edge.From.ID] = set
		}
		set[edge.To.ID] = edge.To

		g.types[edge.From.ID] = edge.From
		g.types[edge.To.ID] = edge.To
		g.edges++
	}

	return g, nil
}

// StrongAgainst returns the types that typ deals bonus damage to. The result
// is a copy and is empty when typ has no outgoing strong edges.
func (g *Graph) StrongAgainst(typ Type) TypeSet {
	return g.strong[typ.ID].Clone()
}

// WeakAgainst returns the types that resist typ.
func (g *Graph) WeakAgainst(typ Type) TypeSet {
	return g.weak[typ.ID].Clone()
}

// IsStrongAgainstAny reports whether typ is strong against a member of
// defenders without copying the adjacency set.
func (g *Graph) IsStrongAgainstAny(typ Type, defenders TypeSet) bool {
	return g.strong[typ.ID].Intersects(defenders)
}

func (g *Graph) IsWeakAgainstAny(typ Type, defenders TypeSet) bool {
	return g.weak[typ.ID].Intersects(defenders)
}

func (g *Graph) Effectiveness(from, to Type) (Effectiveness, bool) {
	if g.strong[from.ID].Contains(to) {
		return Strong, true
	}
	if g.weak[from.ID].Contains(to) {
		return Weak, true
	}

	return 0, false
}

// Types lists every type that appears on either end of an edge, ordered by ID.
func (g *Graph) Types() []Type {
	return g.types.Slice()
}

func (g *Graph) Len() int {
	return g.edges
}

// Weaknesses returns the attacking types that are strong against at least
// one of defenders.
func (g *Graph) Weaknesses(defenders TypeSet) TypeSet {
	return g.attackersOf(g.strong, defenders)
}

// Resistances returns the attacking types that at least one of defenders
// resists. A dual-typed defender can both resist and be weak to a type.
func (g *Graph) Resistances(defenders TypeSet) TypeSet {
	return g.attackersOf(g.weak, defenders)
}

func (g *Graph) attackersOf(adj map[int]TypeSet, defenders TypeSet) TypeSet {
	attackers := make(TypeSet)
	for from, targets := range adj {
		if targets.Intersects(defenders) {
			attackers[from] = g.types[from]
		}
	}

	return attackers
}

// Coverage returns every type that some member of attackers is strong
// against.
func (g *Graph) Coverage(attackers TypeSet) TypeSet {
	covered := make(TypeSet)
	for id := range attackers {
		for to, typ := range g.strong[id] {
			covered[to] = typ
		}
	}

	return covered
}
