package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type kind int

const (
	text kind = iota
	integer
	numeric
)

type Column struct {
	Name     string
	Kind     kind
	Optional bool
	// Default fills an empty optional column instead of NULL.
	Default func(rec record) any
}

type Table struct {
	Name    string
	Columns []Column
}

// FileName is the CSV file a table is read from.
func (table Table) FileName() string {
	return fmt.Sprintf("table_%s.csv", table.Name)
}

func (table Table) required() []string {
	cols := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		if !col.Optional {
			cols = append(cols, col.Name)
		}
	}

	return cols
}

func (table Table) insertQuery() string {
	names := make([]string, len(table.Columns))
	marks := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		names[i] = col.Name
		marks[i] = "?"
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table.Name,
		strings.Join(names, ", "),
		strings.Join(marks, ", "),
	)
}

// args converts a record into typed insert arguments. Empty optional
// columns become NULL unless the column has a Default.
func (table Table) args(rec record) ([]any, error) {
	args := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		raw := rec.get(col.Name)
		if raw == "" {
			switch {
			case !col.Optional:
				return nil, fmt.Errorf("line %d: column %s is empty", rec.line, col.Name)
			case col.Default != nil:
				args[i] = col.Default(rec)
			default:
				args[i] = nil
			}
			continue
		}

		switch col.Kind {
		case integer:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid integer %q in column %s: %w", rec.line, raw, col.Name, err)
			}
			args[i] = n
		case numeric:
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q in column %s: %w", rec.line, raw, col.Name, err)
			}
			args[i] = d
		default:
			args[i] = raw
		}
	}

	return args, nil
}

// lineSlot keeps the file order of learnable attacks when no slot is given.
func lineSlot(rec record) any {
	return rec.line
}

func named(name string) []Column {
	return []Column{
		{Name: "id", Kind: integer},
		{Name: name, Kind: text},
		{Name: "description", Kind: text},
	}
}

// Tables lists every importable table in foreign key order.
var Tables = []Table{
	{Name: "category", Columns: named("name")},
	{Name: "pokemon", Columns: []Column{
		{Name: "id", Kind: integer},
		{Name: "name", Kind: text},
		{Name: "description", Kind: text},
		{Name: "height", Kind: numeric, Optional: true},
		{Name: "weight", Kind: numeric, Optional: true},
		{Name: "category_id", Kind: integer},
		{Name: "stamina", Kind: integer},
		{Name: "attack", Kind: integer},
		{Name: "defense", Kind: integer},
		{Name: "cp_gain", Kind: numeric},
		{Name: "cp_max", Kind: integer},
		{Name: "buddy_distance", Kind: numeric},
	}},
	{Name: "pokemon_evolution", Columns: []Column{
		{Name: "from_pokemon_id", Kind: integer},
		{Name: "to_pokemon_id", Kind: integer},
		{Name: "candy", Kind: integer},
	}},
	{Name: "type", Columns: named("name")},
	{Name: "effectiveness", Columns: named("name")},
	{Name: "type_effectiveness", Columns: []Column{
		{Name: "from_type_id", Kind: integer},
		{Name: "to_type_id", Kind: integer},
		{Name: "effectiveness_id", Kind: integer},
	}},
	{Name: "pokemon_type", Columns: []Column{
		{Name: "pokemon_id", Kind: integer},
		{Name: "type_id", Kind: integer},
	}},
	{Name: "attack_speed", Columns: named("name")},
	{Name: "attack", Columns: []Column{
		{Name: "id", Kind: integer},
		{Name: "name", Kind: text},
		{Name: "description", Kind: text},
		{Name: "type_id", Kind: integer},
		{Name: "power", Kind: integer},
		{Name: "energy", Kind: integer},
		{Name: "cooldown_time", Kind: numeric},
		{Name: "attack_speed_id", Kind: integer},
	}},
	{Name: "pokemon_attack", Columns: []Column{
		{Name: "pokemon_id", Kind: integer},
		{Name: "attack_id", Kind: integer},
		{Name: "slot", Kind: integer, Optional: true, Default: lineSlot},
	}},
	{Name: "egg", Columns: named("name")},
	{Name: "pokemon_egg", Columns: []Column{
		{Name: "pokemon_id", Kind: integer},
		{Name: "egg_id", Kind: integer},
	}},
	{Name: "item", Columns: named("name")},
}

func TableByName(name string) (Table, bool) {
	for _, table := range Tables {
		if table.Name == name {
			return table, true
		}
	}

	return Table{}, false
}
