package table

import (
	"math"
	"strings"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Table is an immutable set of named numeric columns.
// The zero value is an empty table with no columns.
type Table struct {
	names []string
	rows  [][]float64
	index map[string]int
}

// New builds a table from column names and row values.
//
// Names must be non-empty and unique after trimming surrounding whitespace.
// Every row must have exactly len(names) values. The inputs are copied, so
// the caller may reuse them afterwards.
func New(names []string, rows [][]float64) (*Table, error) {
	t, err := newHeader(names)
	if err != nil {
		return nil, err
	}
	t.rows = make([][]float64, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(t.names) {
			return nil, errs.New(errs.ErrCodeSchema, "row %d: expected %d fields, got %d", i+1, len(t.names), len(row))
		}
		for col, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errs.New(errs.ErrCodeSchema, "row %d, column %q: %v is not a finite number", i+1, t.names[col], v)
			}
		}
		t.rows = append(t.rows, append([]float64(nil), row...))
	}
	return t, nil
}

// newHeader validates the column names and builds the name index.
func newHeader(names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, errs.New(errs.ErrCodeSchema, "table has no columns")
	}
	t := &Table{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, errs.New(errs.ErrCodeSchema, "column %d has an empty name", i)
		}
		if prev, dup := t.index[name]; dup {
			return nil, errs.New(errs.ErrCodeSchema, "duplicate column name %q (columns %d and %d)", name, prev, i)
		}
		t.names[i] = name
		t.index[name] = i
	}
	return t, nil
}

// ColumnNames returns a copy of the column names in order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// ColumnName returns the name of column i, or "" if i is out of range.
func (t *Table) ColumnName(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// ColumnCount returns the row arity.
func (t *Table) ColumnCount() int { return len(t.names) }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Index returns the position of the named column.
func (t *Table) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// HasColumn reports whether i is a valid column index.
func (t *Table) HasColumn(i int) bool {
	return i >= 0 && i < len(t.names)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	return append([]float64(nil), t.rows[i]...)
}

// Value returns the value at the given row and column.
func (t *Table) Value(row, col int) float64 {
	return t.rows[row][col]
}

// Column returns the values of column col in row order.
// It panics if col is out of range; use [Table.HasColumn] first.
func (t *Table) Column(col int) []float64 {
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[col]
	}
	return out
}
