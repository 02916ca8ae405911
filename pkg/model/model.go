package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/notjagan/movedex/pkg/moveset"
	"github.com/notjagan/movedex/pkg/typechart"
	"golang.org/x/text/language"
)

type Model struct {
	db       *sqlx.DB
	readOnly bool

	Language *Language
}

var (
	ErrNotFound = errors.New("resource not found")
	ErrReadOnly = errors.New("model is opened read-only")
)

func New(ctx context.Context, dbPath string, readOnly bool) (*Model, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", dbPath)
	if readOnly {
		dsn = fmt.Sprintf("file:%s?mode=ro", dbPath)
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}

	m := &Model{db: db, readOnly: readOnly}
	err = m.SetLanguageByLocalizationCode(LocalizationCodeEnglish)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set default language: %w", err)
	}

	return m, nil
}

func (m *Model) Close() error {
	return m.db.Close()
}

func (m *Model) ReadOnly() bool {
	return m.readOnly
}

// Tx runs fn inside a transaction and rolls back if fn fails.
func (m *Model) Tx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if m.readOnly {
		return ErrReadOnly
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(tx)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error while rolling back (%v): %w", rbErr, err)
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return err
}

func (m *Model) SetLanguageByLocalizationCode(code LocalizationCode) error {
	tag, err := language.Parse(string(code))
	if err != nil {
		return fmt.Errorf("localization code %q not recognized: %w", code, err)
	}

	m.Language = &Language{
		ISO639: code,
		tag:    tag,
	}

	return nil
}

func (m *Model) typeByID(ctx context.Context, ID int) (*Type, error) {
	typ := Type{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, description
		FROM type
		WHERE id = ?
	`, ID).StructScan(&typ)
	if err != nil {
		return nil, fmt.Errorf("no matching type found for id %d: %w", ID, notFound(err))
	}

	return &typ, nil
}

func (m *Model) TypeByName(ctx context.Context, name string) (*Type, error) {
	typ := Type{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, description
		FROM type
		WHERE name = ?
	`, name).StructScan(&typ)
	if err != nil {
		return nil, fmt.Errorf("no matching type found for name %q: %w", name, notFound(err))
	}

	return &typ, nil
}

func (m *Model) AllTypes(ctx context.Context) ([]Type, error) {
	var types []Type
	err := m.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT id, name, description
		FROM type
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting all types: %w", err)
	}

	for i := range types {
		types[i].model = m
	}

	return types, nil
}

func (m *Model) allTypeEffectiveness(ctx context.Context) ([]TypeEffectiveness, error) {
	var rows []TypeEffectiveness
	err := m.db.SelectContext(ctx, &rows,
		/* sql */ `
		SELECT
			te.from_type_id,
			te.to_type_id,
			te.effectiveness_id,
			f.name AS from_type_name,
			t.name AS to_type_name
		FROM type_effectiveness te
		JOIN type f
			ON te.from_type_id = f.id
		JOIN type t
			ON te.to_type_id = t.id
		ORDER BY te.from_type_id, te.to_type_id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting type effectiveness rows: %w", err)
	}

	for i := range rows {
		rows[i].model = m
	}

	return rows, nil
}

// TypeChart loads every effectiveness row and builds the graph once. The
// returned graph holds no reference to the database.
func (m *Model) TypeChart(ctx context.Context) (*typechart.Graph, error) {
	rows, err := m.allTypeEffectiveness(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load type chart: %w", err)
	}

	edges := make([]typechart.Edge, len(rows))
	for i, row := range rows {
		edges[i] = row.Edge()
	}

	g, err := typechart.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("failed to build type chart: %w", err)
	}

	return g, nil
}

// Resolver builds the type chart and wraps it in a resolver that can be shared
// for the lifetime of the process.
func (m *Model) Resolver(ctx context.Context) (*moveset.Resolver, error) {
	g, err := m.TypeChart(ctx)
	if err != nil {
		return nil, err
	}

	return moveset.NewResolver(g), nil
}

func (m *Model) PokemonByID(ctx context.Context, ID int) (*Pokemon, error) {
	pokemon := Pokemon{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT `+pokemonColumns+`
		FROM pokemon
		WHERE id = ?
	`, ID).StructScan(&pokemon)
	if err != nil {
		return nil, fmt.Errorf("no matching pokemon found for id %d: %w", ID, notFound(err))
	}

	return &pokemon, nil
}

func (m *Model) PokemonByName(ctx context.Context, name string) (*Pokemon, error) {
	pokemon := Pokemon{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT `+pokemonColumns+`
		FROM pokemon
		WHERE name = ?
	`, name).StructScan(&pokemon)
	if err != nil {
		return nil, fmt.Errorf("no matching pokemon found for name %q: %w", name, notFound(err))
	}

	return &pokemon, nil
}

// PokemonByKey resolves a user supplied key: a number is an id, anything else
// is a name matched case-insensitively.
func (m *Model) PokemonByKey(ctx context.Context, key string) (*Pokemon, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		return m.PokemonByID(ctx, id)
	}

	return m.PokemonByName(ctx, strings.ToLower(key))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPokemon pages through pokemon whose name starts with prefix. The
// prefix is matched literally. The second return value reports whether
// another page exists.
func (m *Model) SearchPokemon(ctx context.Context, prefix string, limit int, offset int) ([]Pokemon, bool, error) {
	pattern := likeEscaper.Replace(prefix) + "%"
	var ps []Pokemon
	err := m.db.SelectContext(ctx, &ps,
		/* sql */ `
		SELECT `+pokemonColumns+`
		FROM pokemon
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`, pattern, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("error while getting pokemon with prefix %q: %w", prefix, err)
	}

	for i := range ps {
		ps[i].model = m
	}

	var hasNext bool
	if len(ps) == limit+1 {
		ps = ps[:limit]
		hasNext = true
	}

	return ps, hasNext, nil
}

func (m *Model) pokemonTypes(ctx context.Context, pokemon *Pokemon) ([]Type, error) {
	var types []Type
	err := m.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT t.id, t.name, t.description
		FROM pokemon_type pt
		JOIN type t
			ON pt.type_id = t.id
		WHERE pt.pokemon_id = ?
		ORDER BY t.id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for pokemon %q: %w", pokemon.Name, err)
	}

	for i := range types {
		types[i].model = m
	}

	return types, nil
}

func (m *Model) pokemonAttacks(ctx context.Context, pokemon *Pokemon) ([]PokemonAttack, error) {
	var pas []PokemonAttack
	err := m.db.SelectContext(ctx, &pas,
		/* sql */ `
		SELECT pokemon_id, attack_id, slot
		FROM pokemon_attack
		WHERE pokemon_id = ?
		ORDER BY slot, attack_id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting attacks for pokemon %q: %w", pokemon.Name, err)
	}

	for i := range pas {
		pas[i].model = m
	}

	return pas, nil
}

func (m *Model) pokemonEggs(ctx context.Context, pokemon *Pokemon) ([]Egg, error) {
	var eggs []Egg
	err := m.db.SelectContext(ctx, &eggs,
		/* sql */ `
		SELECT e.id, e.name, e.description
		FROM pokemon_egg pe
		JOIN egg e
			ON pe.egg_id = e.id
		WHERE pe.pokemon_id = ?
		ORDER BY e.id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting eggs for pokemon %q: %w", pokemon.Name, err)
	}

	for i := range eggs {
		eggs[i].model = m
	}

	return eggs, nil
}

func (m *Model) attackByID(ctx context.Context, ID int) (*Attack, error) {
	attack := Attack{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT `+attackColumns+`
		FROM attack
		WHERE id = ?
	`, ID).StructScan(&attack)
	if err != nil {
		return nil, fmt.Errorf("no matching attack found for id %d: %w", ID, notFound(err))
	}

	return &attack, nil
}

func (m *Model) AttackByName(ctx context.Context, name string) (*Attack, error) {
	attack := Attack{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT `+attackColumns+`
		FROM attack
		WHERE name = ?
	`, name).StructScan(&attack)
	if err != nil {
		return nil, fmt.Errorf("no matching attack found for name %q: %w", name, notFound(err))
	}

	return &attack, nil
}

func (m *Model) attackSpeedByID(ctx context.Context, ID int) (*AttackSpeed, error) {
	speed := AttackSpeed{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, description
		FROM attack_speed
		WHERE id = ?
	`, ID).StructScan(&speed)
	if err != nil {
		return nil, fmt.Errorf("no matching attack speed found for id %d: %w", ID, notFound(err))
	}

	return &speed, nil
}

func (m *Model) categoryByID(ctx context.Context, ID int) (*Category, error) {
	category := Category{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, description
		FROM category
		WHERE id = ?
	`, ID).StructScan(&category)
	if err != nil {
		return nil, fmt.Errorf("no matching category found for id %d: %w", ID, notFound(err))
	}

	return &category, nil
}

func (m *Model) evolvesTo(ctx context.Context, pokemon *Pokemon) ([]Evolution, error) {
	var evos []Evolution
	err := m.db.SelectContext(ctx, &evos,
		/* sql */ `
		SELECT from_pokemon_id, to_pokemon_id, candy
		FROM pokemon_evolution
		WHERE from_pokemon_id = ?
		ORDER BY to_pokemon_id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting evolutions of pokemon %q: %w", pokemon.Name, err)
	}

	for i := range evos {
		evos[i].model = m
	}

	return evos, nil
}

func (m *Model) evolvesFrom(ctx context.Context, pokemon *Pokemon) ([]Evolution, error) {
	var evos []Evolution
	err := m.db.SelectContext(ctx, &evos,
		/* sql */ `
		SELECT from_pokemon_id, to_pokemon_id, candy
		FROM pokemon_evolution
		WHERE to_pokemon_id = ?
		ORDER BY from_pokemon_id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting pre-evolutions of pokemon %q: %w", pokemon.Name, err)
	}

	for i := range evos {
		evos[i].model = m
	}

	return evos, nil
}

func (m *Model) ItemByName(ctx context.Context, name string) (*Item, error) {
	item := Item{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, description
		FROM item
		WHERE name = ?
	`, name).StructScan(&item)
	if err != nil {
		return nil, fmt.Errorf("no matching item found for name %q: %w", name, notFound(err))
	}

	return &item, nil
}

func (m *Model) AllItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := m.db.SelectContext(ctx, &items,
		/* sql */ `
		SELECT id, name, description
		FROM item
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting all items: %w", err)
	}

	for i := range items {
		items[i].model = m
	}

	return items, nil
}
