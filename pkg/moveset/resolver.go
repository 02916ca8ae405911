// Package moveset picks the highest damage-per-second attack of each speed
// class for a pokemon, optionally against a specific opponent.
package moveset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/shopspring/decimal"
)

var (
	ErrDataIntegrity      = typechart.ErrDataIntegrity
	ErrNoAttacksAvailable = errors.New("no attacks available")
	ErrInvalidMatchup     = errors.New("invalid matchup")
)

var (
	stabBonus      = decimal.RequireFromString("1.25")
	superEffective = decimal.RequireFromString("1.25")
	resisted       = decimal.RequireFromString("0.8")
)

const maxTypes = 2

// Matchup is built per request. A nil Defender means no opponent was given.
type Matchup struct {
	Attacker typechart.TypeSet
	Defender typechart.TypeSet
}

func NewMatchup(attacker *Creature, defender *Creature) Matchup {
	m := Matchup{Attacker: attacker.TypeSet()}
	if defender != nil {
		m.Defender = defender.TypeSet()
	}

	return m
}

func (m Matchup) validate() error {
	if len(m.Attacker) == 0 || len(m.Attacker) > maxTypes {
		return fmt.Errorf("attacker must have 1 to %d types, got %d: %w", maxTypes, len(m.Attacker), ErrInvalidMatchup)
	}
	if m.Defender != nil && (len(m.Defender) == 0 || len(m.Defender) > maxTypes) {
		return fmt.Errorf("defender must have 1 to %d types, got %d: %w", maxTypes, len(m.Defender), ErrInvalidMatchup)
	}

	return nil
}

// Resolver only reads its graph, so one instance serves concurrent callers.
type Resolver struct {
	graph *typechart.Graph
}

func NewResolver(graph *typechart.Graph) *Resolver {
	return &Resolver{graph: graph}
}

func (r *Resolver) Graph() *typechart.Graph {
	return r.graph
}

// Score returns power per second of cooldown with the STAB, super effective
// and resisted multipliers applied. Super effective and resisted are checked
// independently, so a dual-typed defender can trigger both.
func (r *Resolver) Score(attack Attack, m Matchup) (decimal.Decimal, error) {
	err := attack.validate()
	if err != nil {
		return decimal.Zero, err
	}
	err = m.validate()
	if err != nil {
		return decimal.Zero, err
	}

	// Div rounds to decimal.DivisionPrecision digits before the multipliers
	// apply, so ties are detected at that precision.
	score := attack.Power.Div(attack.CooldownTime)

	if m.Attacker.Contains(attack.Type) {
		score = score.Mul(stabBonus)
	}

	if m.Defender != nil {
		if r.graph.IsStrongAgainstAny(attack.Type, m.Defender) {
			score = score.Mul(superEffective)
		}
		if r.graph.IsWeakAgainstAny(attack.Type, m.Defender) {
			score = score.Mul(resisted)
		}
	}

	return score, nil
}

// best scans left to right and only replaces the current pick on a strictly
// greater score, so the earliest attack wins a tie.
func (r *Resolver) best(attacks []Attack, m Matchup) (Attack, error) {
	if len(attacks) == 0 {
		return Attack{}, ErrNoAttacksAvailable
	}

	var (
		pick      Attack
		bestScore decimal.Decimal
	)
	for i, attack := range attacks {
		score, err := r.Score(attack, m)
		if err != nil {
			return Attack{}, fmt.Errorf("error while scoring attack %q: %w", attack.Name, err)
		}
		if i == 0 || score.GreaterThan(bestScore) {
			pick, bestScore = attack, score
		}
	}

	return pick, nil
}

func (r *Resolver) BestFastAttack(creature *Creature, opponent *Creature) (Attack, error) {
	attack, err := r.best(creature.FastAttacks(), NewMatchup(creature, opponent))
	if err != nil {
		return Attack{}, fmt.Errorf("failed to pick fast attack for %q: %w", creature.Name, err)
	}

	return attack, nil
}

func (r *Resolver) BestChargeAttack(creature *Creature, opponent *Creature) (Attack, error) {
	attack, err := r.best(creature.ChargeAttacks(), NewMatchup(creature, opponent))
	if err != nil {
		return Attack{}, fmt.Errorf("failed to pick charge attack for %q: %w", creature.Name, err)
	}

	return attack, nil
}

// BestMoveset fails as a whole if either speed class has no attacks.
func (r *Resolver) BestMoveset(creature *Creature, opponent *Creature) (Moveset, error) {
	fast, err := r.BestFastAttack(creature, opponent)
	if err != nil {
		return Moveset{}, err
	}

	charge, err := r.BestChargeAttack(creature, opponent)
	if err != nil {
		return Moveset{}, err
	}

	return Moveset{Fast: fast, Charge: charge}, nil
}

// Rank scores every attack and orders them by descending score. Equal scores
// keep their input order.
func (r *Resolver) Rank(attacks []Attack, m Matchup) ([]ScoredAttack, error) {
	scored := make([]ScoredAttack, len(attacks))
	for i, attack := range attacks {
		score, err := r.Score(attack, m)
		if err != nil {
			return nil, fmt.Errorf("error while scoring attack %q: %w", attack.Name, err)
		}
		scored[i] = ScoredAttack{Attack: attack, Score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.GreaterThan(scored[j].Score)
	})

	return scored, nil
}
