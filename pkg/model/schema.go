package model

import (
	"context"
	"fmt"
)

const schema = /* sql */ `
CREATE TABLE IF NOT EXISTS category (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS type (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS effectiveness (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS type_effectiveness (
	from_type_id INTEGER NOT NULL REFERENCES type(id),
	to_type_id INTEGER NOT NULL REFERENCES type(id),
	effectiveness_id INTEGER NOT NULL REFERENCES effectiveness(id),
	PRIMARY KEY (from_type_id, to_type_id, effectiveness_id)
);

CREATE TABLE IF NOT EXISTS attack_speed (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attack (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL,
	type_id INTEGER NOT NULL REFERENCES type(id),
	power INTEGER NOT NULL,
	energy INTEGER NOT NULL,
	cooldown_time NUMERIC(5, 2) NOT NULL,
	attack_speed_id INTEGER NOT NULL REFERENCES attack_speed(id)
);

CREATE TABLE IF NOT EXISTS pokemon (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL,
	height NUMERIC(5, 2),
	weight NUMERIC(5, 2),
	category_id INTEGER NOT NULL REFERENCES category(id),
	stamina INTEGER NOT NULL,
	attack INTEGER NOT NULL,
	defense INTEGER NOT NULL,
	cp_gain NUMERIC(5, 2) NOT NULL,
	cp_max INTEGER NOT NULL,
	buddy_distance NUMERIC(5, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS pokemon_evolution (
	from_pokemon_id INTEGER NOT NULL REFERENCES pokemon(id),
	to_pokemon_id INTEGER NOT NULL REFERENCES pokemon(id),
	candy INTEGER NOT NULL,
	PRIMARY KEY (from_pokemon_id, to_pokemon_id)
);

CREATE TABLE IF NOT EXISTS pokemon_type (
	pokemon_id INTEGER NOT NULL REFERENCES pokemon(id),
	type_id INTEGER NOT NULL REFERENCES type(id),
	PRIMARY KEY (pokemon_id, type_id)
);

CREATE TABLE IF NOT EXISTS pokemon_attack (
	pokemon_id INTEGER NOT NULL REFERENCES pokemon(id),
	attack_id INTEGER NOT NULL REFERENCES attack(id),
	slot INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (pokemon_id, attack_id)
);
CREATE INDEX IF NOT EXISTS idx_pokemon_attack_slot ON pokemon_attack(pokemon_id, slot);

CREATE TABLE IF NOT EXISTS egg (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pokemon_egg (
	pokemon_id INTEGER NOT NULL REFERENCES pokemon(id),
	egg_id INTEGER NOT NULL REFERENCES egg(id),
	PRIMARY KEY (pokemon_id, egg_id)
);

CREATE TABLE IF NOT EXISTS item (
	id INTEGER PRIMARY KEY,
	name VARCHAR(24) NOT NULL UNIQUE,
	description TEXT NOT NULL
);
`

func (m *Model) EnsureSchema(ctx context.Context) error {
	if m.readOnly {
		return ErrReadOnly
	}

	_, err := m.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
