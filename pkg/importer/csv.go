package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMissingColumn = errors.New("missing required column")

// record is one CSV row keyed by header name.
type record struct {
	line   int
	values map[string]string
}

func (rec record) get(col string) string {
	return strings.TrimSpace(rec.values[col])
}

func readRecords(r io.Reader, table Table) ([]record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for _, col := range table.required() {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("table %s: %w: %s", table.Name, ErrMissingColumn, col)
		}
	}

	var records []record
	lineNum := 1
	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rec := record{line: lineNum, values: make(map[string]string, len(table.Columns))}
		for _, col := range table.Columns {
			if idx, ok := colIndex[col.Name]; ok && idx < len(row) {
				rec.values[col.Name] = row[idx]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
