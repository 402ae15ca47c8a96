package analysis

import (
	"math"
	"testing"

	"datalens/domain/table"
)

func numericTable(t *testing.T, cols map[string][]float64, order []string) *table.Table {
	t.Helper()
	columns := make([]table.Column, 0, len(order))
	for _, name := range order {
		columns = append(columns, table.Column{Name: name, Kind: table.KindNumeric, Floats: cols[name]})
	}
	tbl, err := table.New(columns)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

func TestCorrelation_DiagonalSymmetryAndRange(t *testing.T) {
	tbl := numericTable(t, map[string][]float64{
		"a": {1, 2, 3, 4, 5, 6},
		"b": {2.1, 3.9, 6.2, 8.1, 9.9, 12.2},
		"c": {5, 1, 4, 2, 6, 3},
	}, []string{"a", "b", "c"})

	m := Correlation(tbl, []string{"a", "b", "c"})

	if len(m.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(m.Columns))
	}
	for i := range m.Values {
		if float64(m.Values[i][i]) != 1.0 {
			t.Errorf("diagonal (%d,%d) = %v, want exactly 1.0", i, i, m.Values[i][i])
		}
		for j := range m.Values[i] {
			v := float64(m.Values[i][j])
			if v != float64(m.Values[j][i]) {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
			if v < -1.0000001 || v > 1.0000001 {
				t.Errorf("entry (%d,%d) = %v outside [-1,1]", i, j, v)
			}
		}
	}
}

func TestCorrelation_PerfectLinearRelationships(t *testing.T) {
	tbl := numericTable(t, map[string][]float64{
		"x":    {1, 2, 3, 4, 5},
		"up":   {2, 4, 6, 8, 10},
		"down": {10, 8, 6, 4, 2},
	}, []string{"x", "up", "down"})

	m := Correlation(tbl, []string{"x", "up", "down"})

	if r := float64(m.Values[0][1]); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("corr(x, 2x) = %v, want 1", r)
	}
	if r := float64(m.Values[0][2]); math.Abs(r+1.0) > 1e-9 {
		t.Errorf("corr(x, -x) = %v, want -1", r)
	}
}

func TestCorrelation_FewerThanTwoColumnsIsEmpty(t *testing.T) {
	tbl := numericTable(t, map[string][]float64{"only": {1, 2, 3}}, []string{"only"})

	m := Correlation(tbl, []string{"only"})
	if !m.Empty() {
		t.Error("single numeric column should produce an empty matrix")
	}

	m = Correlation(tbl, nil)
	if !m.Empty() {
		t.Error("no numeric columns should produce an empty matrix")
	}
}

func TestCorrelation_PairwiseDeletion(t *testing.T) {
	nan := math.NaN()
	tbl := numericTable(t, map[string][]float64{
		"a": {1, 2, 3, 4, nan},
		"b": {2, 4, 6, 8, 100}, // the 100 pairs with a missing cell and must be ignored
	}, []string{"a", "b"})

	m := Correlation(tbl, []string{"a", "b"})
	if r := float64(m.Values[0][1]); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("pairwise-complete corr = %v, want 1", r)
	}
}

func TestCorrelation_UnderdeterminedPairIsNaN(t *testing.T) {
	nan := math.NaN()
	tbl := numericTable(t, map[string][]float64{
		"a": {1, nan, nan, 4},
		"b": {nan, 2, 3, nan}, // zero complete pairs with a
		"c": {1, 2, 3, 4},
	}, []string{"a", "b", "c"})

	m := Correlation(tbl, []string{"a", "b", "c"})

	if !m.Values[0][1].IsNaN() {
		t.Errorf("expected NaN for pair with no complete observations, got %v", m.Values[0][1])
	}
	// The healthy pair is unaffected
	if m.Values[0][2].IsNaN() {
		t.Error("pair (a,c) has two complete observations and should be defined")
	}
}

func TestCorrelation_ConstantColumnDiagonalIsNaN(t *testing.T) {
	tbl := numericTable(t, map[string][]float64{
		"const": {7, 7, 7, 7},
		"x":     {1, 2, 3, 4},
	}, []string{"const", "x"})

	m := Correlation(tbl, []string{"const", "x"})
	if !m.Values[0][0].IsNaN() {
		t.Errorf("zero-variance diagonal should be NaN, got %v", m.Values[0][0])
	}
	if float64(m.Values[1][1]) != 1.0 {
		t.Errorf("healthy diagonal should stay 1.0, got %v", m.Values[1][1])
	}
}

func TestCorrelation_SkipsNonNumericNames(t *testing.T) {
	columns := []table.Column{
		{Name: "x", Kind: table.KindNumeric, Floats: []float64{1, 2, 3}},
		{Name: "label", Kind: table.KindCategorical, Labels: []string{"a", "b", "c"}},
	}
	tbl, err := table.New(columns)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	m := Correlation(tbl, []string{"x", "label"})
	if !m.Empty() {
		t.Error("a categorical name in the numeric set must not survive filtering")
	}
}
