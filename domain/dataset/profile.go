package dataset

import (
	"datalens/domain/core"
	"datalens/domain/table"
)

// Profile is a load-time snapshot of a dataset's shape, recorded by the
// optional registry on first load of a given file version.
type Profile struct {
	ID          core.ID         `json:"id"`
	Path        string          `json:"path"`
	RowCount    int             `json:"record_count"`
	ColumnCount int             `json:"field_count"`
	Columns     []ColumnProfile `json:"columns"`
	LoadedAt    core.Timestamp  `json:"loaded_at"`
}

// ColumnProfile describes a single column in the snapshot
type ColumnProfile struct {
	Name        string     `json:"name"`
	Kind        table.Kind `json:"kind"`
	MissingRate float64    `json:"missing_rate"`
}

// NewProfile builds a Profile from a loaded table
func NewProfile(path string, t *table.Table) *Profile {
	columns := make([]ColumnProfile, 0, t.ColumnCount())
	rows := t.RowCount()
	for _, c := range t.Columns() {
		missing := 0.0
		if rows > 0 {
			missing = 1.0 - float64(c.NonMissing())/float64(rows)
		}
		columns = append(columns, ColumnProfile{
			Name:        c.Name,
			Kind:        c.Kind,
			MissingRate: missing,
		})
	}
	return &Profile{
		ID:          core.NewID(),
		Path:        path,
		RowCount:    rows,
		ColumnCount: t.ColumnCount(),
		Columns:     columns,
		LoadedAt:    core.Now(),
	}
}
