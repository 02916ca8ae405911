package model

import (
	"context"
	"fmt"

	"github.com/notjagan/movedex/pkg/moveset"
	"github.com/shopspring/decimal"
)

const attackColumns = "id, name, description, type_id, power, energy, cooldown_time, attack_speed_id"

type Attack struct {
	model *Model

	ID            int             `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	TypeID        int             `db:"type_id"`
	Power         int             `db:"power"`
	Energy        int             `db:"energy"`
	CooldownTime  decimal.Decimal `db:"cooldown_time"`
	AttackSpeedID int             `db:"attack_speed_id"`

	typ   *Type
	speed *AttackSpeed
}

func (attack *Attack) Type(ctx context.Context) (*Type, error) {
	if attack.typ == nil {
		typ, err := attack.model.typeByID(ctx, attack.TypeID)
		if err != nil {
			return nil, fmt.Errorf("error while getting type: %w", err)
		}
		attack.typ = typ
	}

	return attack.typ, nil
}

func (attack *Attack) Speed(ctx context.Context) (*AttackSpeed, error) {
	if attack.speed == nil {
		speed, err := attack.model.attackSpeedByID(ctx, attack.AttackSpeedID)
		if err != nil {
			return nil, fmt.Errorf("error while getting attack speed: %w", err)
		}
		attack.speed = speed
	}

	return attack.speed, nil
}

func (attack *Attack) SpeedClass() moveset.SpeedClass {
	return moveset.SpeedClass(attack.AttackSpeedID)
}

func (attack *Attack) LocalizedName() string {
	return attack.model.localizedName(attack.Name)
}

// Value detaches the attack from the database.
func (attack *Attack) Value(ctx context.Context) (moveset.Attack, error) {
	typ, err := attack.Type(ctx)
	if err != nil {
		return moveset.Attack{}, fmt.Errorf("could not get type for attack %q: %w", attack.Name, err)
	}

	return moveset.Attack{
		ID:           attack.ID,
		Name:         attack.Name,
		Type:         typ.Value(),
		Power:        decimal.NewFromInt(int64(attack.Power)),
		Energy:       attack.Energy,
		CooldownTime: attack.CooldownTime,
		Speed:        attack.SpeedClass(),
	}, nil
}

type AttackSpeed struct {
	model *Model

	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (speed *AttackSpeed) LocalizedName() string {
	return speed.model.localizedName(speed.Name)
}
