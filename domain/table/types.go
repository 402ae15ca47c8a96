package table

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the explicit per-column type tag. Every column is exactly one of the
// two variants; there is no dynamic fallback at read time.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Column holds one named column of uniform kind. Numeric columns store values
// as float64 with NaN marking a missing cell; categorical columns store raw
// strings with "" marking a missing cell.
type Column struct {
	Name   string
	Kind   Kind
	Floats []float64
	Labels []string
}

// Len returns the number of cells in the column
func (c Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// IsNumeric reports whether the column carries float values
func (c Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// NonMissing returns the count of cells that carry a value
func (c Column) NonMissing() int {
	n := 0
	if c.Kind == KindNumeric {
		for _, v := range c.Floats {
			if !math.IsNaN(v) {
				n++
			}
		}
		return n
	}
	for _, v := range c.Labels {
		if v != "" {
			n++
		}
	}
	return n
}

// Table is an ordered, column-oriented view of tabular data. All columns have
// identical length and unique whitespace-trimmed names.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a Table from columns, enforcing the structural invariants:
// equal column lengths and unique trimmed names.
func New(columns []Column) (*Table, error) {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i := range columns {
		columns[i].Name = strings.TrimSpace(columns[i].Name)
		name := columns[i].Name
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		t.index[name] = i
		if i == 0 {
			t.rows = columns[i].Len()
		} else if columns[i].Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, columns[i].Len(), t.rows)
		}
	}
	return t, nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Columns returns all columns in table order
func (t *Table) Columns() []Column {
	return t.columns
}

// HasColumn reports whether the table contains the named column
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// SelectRows derives a new Table containing the given row indices, in the
// order given. Indices must be in range; this is an internal invariant of
// the sampling paths that produce them.
func (t *Table) SelectRows(indices []int) *Table {
	columns := make([]Column, len(t.columns))
	for i, c := range t.columns {
		out := Column{Name: c.Name, Kind: c.Kind}
		if c.Kind == KindNumeric {
			out.Floats = make([]float64, len(indices))
			for j, idx := range indices {
				out.Floats[j] = c.Floats[idx]
			}
		} else {
			out.Labels = make([]string, len(indices))
			for j, idx := range indices {
				out.Labels[j] = c.Labels[idx]
			}
		}
		columns[i] = out
	}
	derived, _ := New(columns)
	return derived
}

// CellString renders the cell at (column, row) as a string, with "" for a
// missing cell. Used by row previews and frequency stringification.
func (c Column) CellString(row int) string {
	if c.Kind == KindCategorical {
		return c.Labels[row]
	}
	v := c.Floats[row]
	if math.IsNaN(v) {
		return ""
	}
	return formatFloat(v)
}
