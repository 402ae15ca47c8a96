package ui

import (
	"fmt"
	"math"

	"datalens/domain/table"
	"datalens/internal/analysis"
)

// ChartSpec is the wire format the dashboard's plotting frontend consumes:
// one traces array plus a layout, mirroring a plotly figure.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single data series. Fields are a union across the chart types;
// unused ones stay omitted.
type Trace struct {
	Type          string          `json:"type"`
	Name          string          `json:"name,omitempty"`
	Mode          string          `json:"mode,omitempty"`
	X             []interface{}   `json:"x,omitempty"`
	Y             []interface{}   `json:"y,omitempty"`
	Z             [][]interface{} `json:"z,omitempty"`
	Labels        []string        `json:"labels,omitempty"`
	Values        []int           `json:"values,omitempty"`
	Text          []string        `json:"text,omitempty"`
	CustomData    []string        `json:"customdata,omitempty"`
	HoverTemplate string          `json:"hovertemplate,omitempty"`
	TextPosition  string          `json:"textposition,omitempty"`
	TextInfo      string          `json:"textinfo,omitempty"`
	Orientation   string          `json:"orientation,omitempty"`
	Hole          float64         `json:"hole,omitempty"`
	Opacity       float64         `json:"opacity,omitempty"`
	Marker        *Marker         `json:"marker,omitempty"`
	ColorScale    string          `json:"colorscale,omitempty"`
	ZMin          *float64        `json:"zmin,omitempty"`
	ZMax          *float64        `json:"zmax,omitempty"`
}

// Marker controls point styling
type Marker struct {
	Size       int           `json:"size,omitempty"`
	Color      []interface{} `json:"color,omitempty"`
	ColorScale string        `json:"colorscale,omitempty"`
	ShowScale  bool          `json:"showscale,omitempty"`
}

// Layout mirrors the subset of plotly layout the dashboard uses
type Layout struct {
	Title  string `json:"title,omitempty"`
	Height int    `json:"height,omitempty"`
	XAxis  *Axis  `json:"xaxis,omitempty"`
	YAxis  *Axis  `json:"yaxis,omitempty"`
}

// Axis holds per-axis layout settings
type Axis struct {
	Title         string `json:"title,omitempty"`
	CategoryOrder string `json:"categoryorder,omitempty"`
}

// maxColorGroups caps how many categorical color groups a scatter splits
// into before the remainder collapses into one group.
const maxColorGroups = 20

// ScatterSpec builds the numeric scatter for x vs y over the sample, with an
// optional color dimension: numeric colors become a continuous scale on the
// marker, categorical colors split the points into one trace per value.
func ScatterSpec(sample *table.Table, xName, yName, colorBy string) (ChartSpec, error) {
	xCol, ok := sample.Column(xName)
	if !ok || !xCol.IsNumeric() {
		return ChartSpec{}, fmt.Errorf("scatter x column %q is not numeric", xName)
	}
	yCol, ok := sample.Column(yName)
	if !ok || !yCol.IsNumeric() {
		return ChartSpec{}, fmt.Errorf("scatter y column %q is not numeric", yName)
	}

	layout := Layout{
		Title:  fmt.Sprintf("%s vs %s", xName, yName),
		Height: 420,
		XAxis:  &Axis{Title: xName},
		YAxis:  &Axis{Title: yName},
	}

	colorCol, hasColor := sample.Column(colorBy)
	if hasColor && !colorCol.IsNumeric() {
		return ChartSpec{Data: groupedScatter(xCol, yCol, colorCol), Layout: layout}, nil
	}

	trace := Trace{
		Type:    "scatter",
		Mode:    "markers",
		X:       floatCells(xCol.Floats),
		Y:       floatCells(yCol.Floats),
		Opacity: 0.75,
		Marker:  &Marker{Size: 6},
	}
	if hasColor {
		trace.Marker.Color = floatCells(colorCol.Floats)
		trace.Marker.ColorScale = "Viridis"
		trace.Marker.ShowScale = true
	}
	return ChartSpec{Data: []Trace{trace}, Layout: layout}, nil
}

// groupedScatter emits one trace per categorical color value, in
// first-encountered order, folding overflow groups into "(other)".
func groupedScatter(xCol, yCol, colorCol table.Column) []Trace {
	groupIndex := make(map[string]int)
	var traces []Trace

	for i := 0; i < colorCol.Len(); i++ {
		label := colorCol.Labels[i]
		if label == "" {
			label = analysis.MissingLabel
		}
		idx, ok := groupIndex[label]
		if !ok {
			if len(traces) >= maxColorGroups {
				label = "(other)"
				if idx, ok = groupIndex[label]; !ok {
					idx = len(traces)
					groupIndex[label] = idx
					traces = append(traces, newScatterGroup(label))
				}
			} else {
				idx = len(traces)
				groupIndex[label] = idx
				traces = append(traces, newScatterGroup(label))
			}
		}
		traces[idx].X = append(traces[idx].X, floatCell(xCol.Floats[i]))
		traces[idx].Y = append(traces[idx].Y, floatCell(yCol.Floats[i]))
	}
	return traces
}

func newScatterGroup(name string) Trace {
	return Trace{
		Type:    "scatter",
		Mode:    "markers",
		Name:    name,
		Opacity: 0.75,
		Marker:  &Marker{Size: 6},
	}
}

// FrequencySpec builds the categorical distribution chart from a frequency
// table: a horizontal bar with counts outside the bars, or a pie/donut.
// Short labels drive the axis/legend; full labels survive in hover text.
func FrequencySpec(entries []analysis.FrequencyEntry, mode string, columnName string, topN int) ChartSpec {
	counts := make([]int, len(entries))
	shortLabels := make([]string, len(entries))
	fullLabels := make([]string, len(entries))
	countText := make([]string, len(entries))
	for i, e := range entries {
		counts[i] = e.Count
		shortLabels[i] = e.ShortLabel
		fullLabels[i] = e.Label
		countText[i] = fmt.Sprintf("%d", e.Count)
	}

	if mode == "pie" || mode == "donut" {
		hole := 0.0
		if mode == "donut" {
			hole = 0.5
		}
		return ChartSpec{
			Data: []Trace{{
				Type:          "pie",
				Labels:        shortLabels,
				Values:        counts,
				Hole:          hole,
				CustomData:    fullLabels,
				HoverTemplate: "<b>%{customdata}</b><br>Count: %{value} (%{percent})",
				TextInfo:      "percent+label",
			}},
			Layout: Layout{
				Title:  fmt.Sprintf("Top %d %s", topN, columnName),
				Height: 450,
			},
		}
	}

	x := make([]interface{}, len(counts))
	y := make([]interface{}, len(shortLabels))
	for i := range counts {
		x[i] = counts[i]
		y[i] = shortLabels[i]
	}
	return ChartSpec{
		Data: []Trace{{
			Type:          "bar",
			Orientation:   "h",
			X:             x,
			Y:             y,
			Text:          countText,
			TextPosition:  "outside",
			CustomData:    fullLabels,
			HoverTemplate: "<b>%{customdata}</b><br>Count: %{x}",
		}},
		Layout: Layout{
			Height: 450,
			XAxis:  &Axis{Title: "Count"},
			YAxis:  &Axis{Title: columnName, CategoryOrder: "total ascending"},
		},
	}
}

// HeatmapSpec builds the correlation heatmap: RdBu scale pinned to [-1, 1]
// so the midpoint stays at zero regardless of the data.
func HeatmapSpec(matrix analysis.CorrelationMatrix) ChartSpec {
	z := make([][]interface{}, len(matrix.Values))
	for i, row := range matrix.Values {
		z[i] = make([]interface{}, len(row))
		for j, v := range row {
			z[i][j] = floatCell(float64(v))
		}
	}

	zmin, zmax := -1.0, 1.0
	labels := make([]interface{}, len(matrix.Columns))
	for i, c := range matrix.Columns {
		labels[i] = c
	}
	return ChartSpec{
		Data: []Trace{{
			Type:       "heatmap",
			X:          labels,
			Y:          labels,
			Z:          z,
			ColorScale: "RdBu",
			ZMin:       &zmin,
			ZMax:       &zmax,
		}},
		Layout: Layout{Height: 500},
	}
}

// floatCells converts a float column to JSON-safe cells, NaN becoming null
func floatCells(values []float64) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = floatCell(v)
	}
	return cells
}

func floatCell(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
