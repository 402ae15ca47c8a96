package app

import (
	"datalens/domain/table"
)

// ChartMode selects how the categorical distribution is rendered
type ChartMode string

const (
	ChartBar   ChartMode = "bar"
	ChartPie   ChartMode = "pie"
	ChartDonut ChartMode = "donut"
)

// Top-N bounds for the categorical frequency control
const (
	MinTopN     = 5
	MaxTopN     = 30
	DefaultTopN = 10
)

// ViewParams is the control surface of one dashboard interaction. Zero
// values mean "use the default"; Normalize resolves them against the loaded
// table before the pipeline runs.
type ViewParams struct {
	SampleN           int                `json:"sample_n"`
	SampleMethod      table.SampleMethod `json:"sample_method"`
	UseFullForSummary bool               `json:"use_full_for_summary"`

	ShowSummary bool `json:"show_summary"`
	ShowVisuals bool `json:"show_visuals"`
	ShowCorr    bool `json:"show_corr"`

	XCol    string `json:"x_col"`
	YCol    string `json:"y_col"`
	ColorBy string `json:"color_by"`

	CategoricalCol string    `json:"categorical_col"`
	TopN           int       `json:"top_n"`
	ChartMode      ChartMode `json:"chart_mode"`
}

// DefaultViewParams mirrors the dashboard's initial control state
func DefaultViewParams(defaultN int) ViewParams {
	return ViewParams{
		SampleN:      defaultN,
		SampleMethod: table.SampleHead,
		ShowSummary:  true,
		ShowVisuals:  true,
		ShowCorr:     false,
		TopN:         DefaultTopN,
		ChartMode:    ChartBar,
	}
}

// Normalize clamps every control into its valid range against the loaded
// table, so the pipeline below never sees an out-of-range parameter. The
// sampler in particular is fed only pre-clamped sizes.
func (p *ViewParams) Normalize(t *table.Table, cls table.Classification, minN int) {
	p.SampleN = table.ClampSampleN(p.SampleN, minN, t.RowCount())

	if p.SampleMethod != table.SampleRandom {
		p.SampleMethod = table.SampleHead
	}

	if p.TopN < MinTopN {
		p.TopN = DefaultTopN
	}
	if p.TopN > MaxTopN {
		p.TopN = MaxTopN
	}

	switch p.ChartMode {
	case ChartBar, ChartPie, ChartDonut:
	default:
		p.ChartMode = ChartBar
	}

	p.XCol = pickColumn(p.XCol, cls.Numeric, 0)
	p.YCol = pickColumn(p.YCol, cls.Numeric, 1)
	p.CategoricalCol = pickColumn(p.CategoricalCol, cls.Categorical, 0)

	// Color can be any column or absent
	if p.ColorBy != "" && !t.HasColumn(p.ColorBy) {
		p.ColorBy = ""
	}
}

// pickColumn keeps a valid choice, otherwise falls back to the candidate at
// the preferred index (or the first, or empty when none exist).
func pickColumn(choice string, candidates []string, preferred int) string {
	for _, c := range candidates {
		if c == choice {
			return choice
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	if preferred >= len(candidates) {
		preferred = 0
	}
	return candidates[preferred]
}
