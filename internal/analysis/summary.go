package analysis

import (
	"math"

	"datalens/domain/table"

	"github.com/montanaflynn/stats"
)

// ColumnSummary is one row of the describe table. Numeric fields are NaN
// (null in JSON) for categorical columns; Unique/Top are zero-valued for
// numeric columns.
type ColumnSummary struct {
	Name   string        `json:"name"`
	Kind   table.Kind    `json:"kind"`
	Count  int           `json:"count"`
	Mean   NullableFloat `json:"mean"`
	Std    NullableFloat `json:"std"`
	Min    NullableFloat `json:"min"`
	Q25    NullableFloat `json:"q25"`
	Median NullableFloat `json:"median"`
	Q75    NullableFloat `json:"q75"`
	Max    NullableFloat `json:"max"`

	Unique  int    `json:"unique"`
	Top     string `json:"top"`
	TopFreq int    `json:"top_freq"`
}

// Summarize computes per-column descriptive statistics over every column of
// the table: the usual eight-number summary for numeric columns, and
// count/unique/top/frequency for categorical ones.
func Summarize(t *table.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, t.ColumnCount())
	for _, col := range t.Columns() {
		if col.IsNumeric() {
			summaries = append(summaries, summarizeNumeric(col))
		} else {
			summaries = append(summaries, summarizeCategorical(col))
		}
	}
	return summaries
}

func summarizeNumeric(col table.Column) ColumnSummary {
	values := make([]float64, 0, len(col.Floats))
	for _, v := range col.Floats {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}

	s := blankSummary(col)
	s.Count = len(values)
	if len(values) == 0 {
		return s
	}

	// montanaflynn/stats errors only on degenerate input, handled around it
	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	s.Mean = NullableFloat(mean)
	s.Min = NullableFloat(min)
	s.Max = NullableFloat(max)
	s.Median = NullableFloat(median)

	if len(values) > 1 {
		std, _ := stats.StandardDeviationSample(values)
		q25, _ := stats.Percentile(values, 25)
		q75, _ := stats.Percentile(values, 75)
		s.Std = NullableFloat(std)
		s.Q25 = NullableFloat(q25)
		s.Q75 = NullableFloat(q75)
	} else {
		s.Q25 = NullableFloat(values[0])
		s.Q75 = NullableFloat(values[0])
	}
	return s
}

func summarizeCategorical(col table.Column) ColumnSummary {
	s := blankSummary(col)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range col.Labels {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
		s.Count++
	}
	s.Unique = len(counts)

	// First-encountered wins ties, matching the frequency table ordering
	for _, v := range order {
		if counts[v] > s.TopFreq {
			s.Top = v
			s.TopFreq = counts[v]
		}
	}
	return s
}

func blankSummary(col table.Column) ColumnSummary {
	nan := NullableFloat(math.NaN())
	return ColumnSummary{
		Name: col.Name,
		Kind: col.Kind,
		Mean: nan, Std: nan,
		Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan,
	}
}
