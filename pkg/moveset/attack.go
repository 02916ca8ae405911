package moveset

import (
	"fmt"

	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/shopspring/decimal"
)

type Attack struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Type         typechart.Type  `json:"type"`
	Power        decimal.Decimal `json:"power"`
	Energy       int             `json:"energy"`
	CooldownTime decimal.Decimal `json:"cooldownTime"`
	Speed        SpeedClass      `json:"speed"`
}

func (attack Attack) validate() error {
	if !attack.Power.IsPositive() {
		return fmt.Errorf("attack %q has non-positive power %s: %w", attack.Name, attack.Power, ErrDataIntegrity)
	}
	if !attack.CooldownTime.IsPositive() {
		return fmt.Errorf(
			"attack %q has non-positive cooldown time %s: %w",
			attack.Name,
			attack.CooldownTime,
			ErrDataIntegrity,
		)
	}

	return nil
}

type Creature struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Types   []typechart.Type `json:"types"`
	Attacks []Attack         `json:"attacks"`
}

func (c *Creature) TypeSet() typechart.TypeSet {
	return typechart.NewTypeSet(c.Types...)
}

// AttackTypes is the set of types among the creature's attacks.
func (c *Creature) AttackTypes() typechart.TypeSet {
	types := make(typechart.TypeSet)
	for _, attack := range c.Attacks {
		types[attack.Type.ID] = attack.Type
	}

	return types
}

// FastAttacks keeps the order of Attacks.
func (c *Creature) FastAttacks() []Attack {
	return c.attacksBySpeed(Fast)
}

func (c *Creature) ChargeAttacks() []Attack {
	return c.attacksBySpeed(Charge)
}

func (c *Creature) attacksBySpeed(speed SpeedClass) []Attack {
	attacks := make([]Attack, 0, len(c.Attacks))
	for _, attack := range c.Attacks {
		if attack.Speed == speed {
			attacks = append(attacks, attack)
		}
	}

	return attacks
}

type Moveset struct {
	Fast   Attack `json:"fastAttack"`
	Charge Attack `json:"chargeAttack"`
}

type ScoredAttack struct {
	Attack Attack          `json:"attack"`
	Score  decimal.Decimal `json:"score"`
}
