package table

// RawData is the untyped intake format produced by file readers: trimmed
// headers plus rows of header-keyed cell strings. The typing pass in
// BuildColumn turns it into a Table.
type RawData struct {
	Headers []string
	Rows    []map[string]string
}

// FromRaw runs the typing pass over every column of the raw intake and
// assembles the Table. Cells absent from a row are treated as missing.
func FromRaw(raw *RawData) (*Table, error) {
	columns := make([]Column, 0, len(raw.Headers))
	for _, header := range raw.Headers {
		cells := make([]string, len(raw.Rows))
		for i, row := range raw.Rows {
			cells[i] = row[header]
		}
		columns = append(columns, BuildColumn(header, cells))
	}
	return New(columns)
}
