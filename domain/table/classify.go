package table

import (
	"math"
	"strconv"
	"strings"
)

// Classification partitions the table's column names into numeric and
// categorical sets. The partition is exhaustive and disjoint: every column
// lands in exactly one set.
type Classification struct {
	Numeric     []string `json:"numeric"`
	Categorical []string `json:"categorical"`
}

// Classify partitions columns by their declared kind. Kinds are assigned once
// at build time by BuildColumn, so this is a pure read.
func (t *Table) Classify() Classification {
	cls := Classification{}
	for _, c := range t.columns {
		if c.Kind == KindNumeric {
			cls.Numeric = append(cls.Numeric, c.Name)
		} else {
			cls.Categorical = append(cls.Categorical, c.Name)
		}
	}
	return cls
}

// BuildColumn runs the explicit typing pass over raw cell strings: the column
// is numeric iff every non-missing value parses as a float, otherwise it is
// categorical. Missing cells (empty after trimming) stay missing under either
// variant.
func BuildColumn(name string, raw []string) Column {
	floats := make([]float64, len(raw))
	numeric := true
	for i, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
	}
	if numeric {
		return Column{Name: name, Kind: KindNumeric, Floats: floats}
	}

	labels := make([]string, len(raw))
	for i, cell := range raw {
		labels[i] = strings.TrimSpace(cell)
	}
	return Column{Name: name, Kind: KindCategorical, Labels: labels}
}

// formatFloat renders a float the shortest way that round-trips, matching how
// integer-valued cells read back out of a numeric column.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
