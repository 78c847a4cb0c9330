// Package spreadsheet reads header-keyed rows out of xlsx workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
)

var ErrEmptyWorkbook = errors.New("workbook has no header row")

// Row is one data row keyed by lower-cased header name. Line is the 1-based
// sheet row number, header included.
type Row struct {
	Line   int
	Values map[string]string
}

func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// Optional returns nil for a blank cell.
func (r Row) Optional(column string) *string {
	value := r.Get(column)
	if value == "" {
		return nil
	}
	return &value
}

// ReadRows reads the first sheet. The header row must contain every required
// column; fully blank rows are skipped.
func ReadRows(r io.Reader, required ...string) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := file.GetSheetName(1)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}

	rows := file.GetRows(sheet)
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	header := make([]string, len(rows[0]))
	present := make(map[string]bool, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
		present[header[i]] = true
	}

	var missing []string
	for _, column := range required {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	result := make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		values := make(map[string]string, len(header))
		blank := true
		for j, cell := range cells {
			if j >= len(header) || header[j] == "" {
				continue
			}
			values[header[j]] = cell
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		result = append(result, Row{Line: i + 2, Values: values})
	}

	return result, nil
}
