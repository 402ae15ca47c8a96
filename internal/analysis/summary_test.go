package analysis

import (
	"math"
	"testing"

	"datalens/domain/table"
)

func TestSummarize_NumericColumn(t *testing.T) {
	nan := math.NaN()
	tbl, err := table.New([]table.Column{
		{Name: "v", Kind: table.KindNumeric, Floats: []float64{1, 2, 3, 4, nan}},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	summaries := Summarize(tbl)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.Count != 4 {
		t.Errorf("count = %d, want 4 (missing excluded)", s.Count)
	}
	if float64(s.Mean) != 2.5 {
		t.Errorf("mean = %v, want 2.5", s.Mean)
	}
	if float64(s.Min) != 1 || float64(s.Max) != 4 {
		t.Errorf("min/max = %v/%v, want 1/4", s.Min, s.Max)
	}
	if float64(s.Median) != 2.5 {
		t.Errorf("median = %v, want 2.5", s.Median)
	}
	if s.Std.IsNaN() {
		t.Error("std should be defined for 4 observations")
	}
}

func TestSummarize_CategoricalColumn(t *testing.T) {
	tbl, err := table.New([]table.Column{
		{Name: "region", Kind: table.KindCategorical,
			Labels: []string{"north", "south", "north", "", "east"}},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	s := Summarize(tbl)[0]
	if s.Count != 4 {
		t.Errorf("count = %d, want 4 (missing excluded)", s.Count)
	}
	if s.Unique != 3 {
		t.Errorf("unique = %d, want 3", s.Unique)
	}
	if s.Top != "north" || s.TopFreq != 2 {
		t.Errorf("top = (%s,%d), want (north,2)", s.Top, s.TopFreq)
	}
	if !s.Mean.IsNaN() {
		t.Error("numeric fields should be NaN for categorical columns")
	}
}

func TestSummarize_SingleObservation(t *testing.T) {
	tbl, err := table.New([]table.Column{
		{Name: "v", Kind: table.KindNumeric, Floats: []float64{5}},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	s := Summarize(tbl)[0]
	if float64(s.Mean) != 5 || float64(s.Median) != 5 {
		t.Errorf("mean/median = %v/%v, want 5/5", s.Mean, s.Median)
	}
	if !s.Std.IsNaN() {
		t.Error("sample std of one observation is undefined")
	}
	if float64(s.Q25) != 5 || float64(s.Q75) != 5 {
		t.Errorf("quartiles of one observation collapse to it, got %v/%v", s.Q25, s.Q75)
	}
}
