package tabular

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datalens/domain/table"
	"datalens/internal"
	"datalens/internal/errors"

	"github.com/xuri/excelize/v2"
)

// FileReader reads delimited and spreadsheet files into the intake format.
// Supported extensions: .csv (anything else is opened as a workbook).
type FileReader struct {
	log *internal.Logger
}

// NewFileReader creates a reader
func NewFileReader() *FileReader {
	return &FileReader{log: internal.DefaultLogger}
}

// Read loads the file at path into RawData. Headers and cells are trimmed of
// surrounding whitespace. A missing path yields a NOT_FOUND error; a file
// without a header row yields EMPTY_DATA.
func (r *FileReader) Read(ctx context.Context, path string) (*table.RawData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFound("data file " + path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	start := time.Now()

	var rows [][]string
	var err error
	if ext == ".csv" {
		rows, err = r.readCSV(path)
	} else {
		rows, err = r.readWorkbook(path)
	}
	if err != nil {
		return nil, err
	}

	r.log.Debug("read %s (%d raw rows) in %.2fms", path, len(rows), float64(time.Since(start).Nanoseconds())/1e6)
	return r.processRows(rows)
}

func (r *FileReader) readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", path)
	}
	return rows, nil
}

func (r *FileReader) readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	// First sheet, whatever its name
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.EmptyData("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	return rows, nil
}

// processRows converts raw string rows into the intake format
func (r *FileReader) processRows(rows [][]string) (*table.RawData, error) {
	if len(rows) == 0 {
		return nil, errors.EmptyData("file has no header row")
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]map[string]string, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(map[string]string, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &table.RawData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
