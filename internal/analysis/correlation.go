package analysis

import (
	"math"

	"datalens/domain/table"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix is the pairwise Pearson matrix over a set of numeric
// columns. Values[i][j] is NaN when the pair has fewer than two complete
// observations or a degenerate variance.
type CorrelationMatrix struct {
	Columns []string          `json:"columns"`
	Values  [][]NullableFloat `json:"values"`
}

// Empty reports whether the matrix carries no columns
func (m CorrelationMatrix) Empty() bool {
	return len(m.Columns) == 0
}

// Correlation computes the pairwise Pearson correlation matrix over the named
// numeric columns of t. Rows where either value is missing are dropped per
// pair (pairwise deletion). Fewer than two numeric columns is a no-op
// returning an empty matrix — the heatmap simply has nothing to show.
func Correlation(t *table.Table, numericCols []string) CorrelationMatrix {
	if len(numericCols) < 2 {
		return CorrelationMatrix{}
	}

	columns := make([]table.Column, 0, len(numericCols))
	names := make([]string, 0, len(numericCols))
	for _, name := range numericCols {
		col, ok := t.Column(name)
		if !ok || !col.IsNumeric() {
			continue
		}
		columns = append(columns, col)
		names = append(names, name)
	}
	if len(columns) < 2 {
		return CorrelationMatrix{}
	}

	values := make([][]NullableFloat, len(columns))
	for i := range values {
		values[i] = make([]NullableFloat, len(columns))
	}

	for i := range columns {
		for j := i; j < len(columns); j++ {
			r := NullableFloat(pairwisePearson(columns[i].Floats, columns[j].Floats, i == j))
			values[i][j] = r
			values[j][i] = r
		}
	}

	return CorrelationMatrix{Columns: names, Values: values}
}

// pairwisePearson drops incomplete pairs and hands the rest to gonum. The
// diagonal is pinned to exactly 1.0 when defined, rather than trusting
// floating-point to land there.
func pairwisePearson(x, y []float64, diagonal bool) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if diagonal {
		if stat.Variance(xs, nil) == 0 {
			return math.NaN()
		}
		return 1.0
	}
	return stat.Correlation(xs, ys, nil)
}
