// Package importer bulk loads the reference CSV tables into the database.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/shopspring/decimal"
)

var ErrUnknownTable = errors.New("unknown table")

type Importer struct {
	model *model.Model
}

func New(mdl *model.Model) *Importer {
	return &Importer{model: mdl}
}

// Summary counts inserted rows per table.
type Summary map[string]int

type batch struct {
	table   Table
	records []record
}

// ImportDir reads table_<name>.csv for every known table in dir and inserts
// them in a single transaction. Tables without a file are skipped.
func (imp *Importer) ImportDir(ctx context.Context, dir string) (Summary, error) {
	return imp.ImportFS(ctx, os.DirFS(dir))
}

func (imp *Importer) ImportFS(ctx context.Context, fsys fs.FS) (Summary, error) {
	var batches []batch
	for _, table := range Tables {
		records, err := readFile(fsys, table)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("skipping table %s: %s not found", table.Name, table.FileName())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table.FileName(), err)
		}
		batches = append(batches, batch{table: table, records: records})
	}

	return imp.load(ctx, batches)
}

// ImportTable inserts the CSV rows read from r into the named table.
func (imp *Importer) ImportTable(ctx context.Context, name string, r io.Reader) (int, error) {
	table, ok := TableByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	records, err := readRecords(r, table)
	if err != nil {
		return 0, fmt.Errorf("failed to read table %s: %w", name, err)
	}

	summary, err := imp.load(ctx, []batch{{table: table, records: records}})
	if err != nil {
		return 0, err
	}

	return summary[name], nil
}

func readFile(fsys fs.FS, table Table) ([]record, error) {
	f, err := fsys.Open(table.FileName())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readRecords(f, table)
}

func (imp *Importer) load(ctx context.Context, batches []batch) (Summary, error) {
	for _, b := range batches {
		err := validate(b.table, b.records)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", b.table.Name, err)
		}
	}
	err := validateChart(batches)
	if err != nil {
		return nil, err
	}

	err = imp.model.EnsureSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare database: %w", err)
	}

	summary := make(Summary, len(batches))
	err = imp.model.Tx(ctx, func(tx *sqlx.Tx) error {
		for _, b := range batches {
			n, err := insert(ctx, tx, b.table, b.records)
			if err != nil {
				return fmt.Errorf("table %s: %w", b.table.Name, err)
			}
			summary[b.table.Name] = n
			log.Printf("imported %d rows into %s", n, b.table.Name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}

	return summary, nil
}

func insert(ctx context.Context, tx *sqlx.Tx, table Table, records []record) (int, error) {
	stmt, err := tx.PreparexContext(ctx, table.insertQuery())
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		args, err := table.args(rec)
		if err != nil {
			return 0, err
		}
		_, err = stmt.ExecContext(ctx, args...)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return len(records), nil
}

// validate rejects attacks that could not be scored later.
func validate(table Table, records []record) error {
	if table.Name != "attack" {
		return nil
	}

	for _, rec := range records {
		for _, col := range []string{"power", "cooldown_time"} {
			d, err := decimal.NewFromString(rec.get(col))
			if err != nil {
				return fmt.Errorf("line %d: invalid %s %q: %w", rec.line, col, rec.get(col), err)
			}
			if !d.IsPositive() {
				return fmt.Errorf(
					"line %d: attack %q has non-positive %s: %w",
					rec.line,
					rec.get("name"),
					col,
					typechart.ErrDataIntegrity,
				)
			}
		}
	}

	return nil
}

// validateChart builds the type chart from the imported edges so that
// duplicate or conflicting rows fail the import instead of the first query.
func validateChart(batches []batch) error {
	names := make(map[int]string)
	var edgeRecords []record
	for _, b := range batches {
		switch b.table.Name {
		case "type":
			for _, rec := range b.records {
				id, err := strconv.Atoi(rec.get("id"))
				if err == nil {
					names[id] = rec.get("name")
				}
			}
		case "type_effectiveness":
			edgeRecords = b.records
		}
	}

	edges := make([]typechart.Edge, 0, len(edgeRecords))
	for _, rec := range edgeRecords {
		from, err := strconv.Atoi(rec.get("from_type_id"))
		if err != nil {
			return fmt.Errorf("line %d: invalid from_type_id: %w", rec.line, err)
		}
		to, err := strconv.Atoi(rec.get("to_type_id"))
		if err != nil {
			return fmt.Errorf("line %d: invalid to_type_id: %w", rec.line, err)
		}
		eff, err := strconv.Atoi(rec.get("effectiveness_id"))
		if err != nil {
			return fmt.Errorf("line %d: invalid effectiveness_id: %w", rec.line, err)
		}

		edges = append(edges, typechart.Edge{
			From:          typechart.Type{ID: from, Name: typeName(names, from)},
			To:            typechart.Type{ID: to, Name: typeName(names, to)},
			Effectiveness: typechart.Effectiveness(eff),
		})
	}

	_, err := typechart.Build(edges)
	if err != nil {
		return fmt.Errorf("table type_effectiveness: %w", err)
	}

	return nil
}

func typeName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}

	return strconv.Itoa(id)
}
