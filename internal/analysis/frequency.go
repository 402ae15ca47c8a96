package analysis

import (
	"sort"

	"datalens/domain/table"
)

// MissingLabel is the sentinel under which missing cells are counted. It is
// distinct from any real value because real cells are trimmed and non-empty.
const MissingLabel = "(missing)"

// shortLabelLen bounds display labels for axis and legend compactness; the
// full label survives for hover text.
const shortLabelLen = 5

// FrequencyEntry is one row of a top-N frequency table
type FrequencyEntry struct {
	Label      string `json:"label"`
	ShortLabel string `json:"short_label"`
	Count      int    `json:"count"`
}

// Frequency computes the top-N value counts for one column of the sample.
// Every cell is stringified (missing cells under MissingLabel), counted, and
// ordered by descending count with ties held in first-encountered order.
// A non-positive topN disables truncation.
func Frequency(col table.Column, topN int) []FrequencyEntry {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < col.Len(); i++ {
		label := col.CellString(i)
		if label == "" {
			label = MissingLabel
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	// Stable sort keeps first-encountered order for equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}

	entries := make([]FrequencyEntry, len(order))
	for i, label := range order {
		entries[i] = FrequencyEntry{
			Label:      label,
			ShortLabel: truncateLabel(label, shortLabelLen),
			Count:      counts[label],
		}
	}
	return entries
}

func truncateLabel(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
