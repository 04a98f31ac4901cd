package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/piresc/locations/internal/pkg/models"
)

// ParseXLSX reads rows from the first worksheet of a spreadsheet upload
func ParseXLSX(r io.Reader, hasHeader bool) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no worksheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	var rows []models.ImportRow
	width := 0
	for i, fields := range records {
		record := i + 1
		if record == 1 && hasHeader {
			width = len(fields)
			continue
		}
		if isBlank(fields) {
			continue
		}

		row, err := rowFromFields(padRow(fields, width), record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// padRow restores the trailing empty cells GetRows drops, up to the header
// width, or up to the state column once a city is present.
func padRow(fields []string, width int) []string {
	if len(fields) >= minColumns-1 && width < minColumns {
		width = minColumns
	}
	if len(fields) >= width {
		return fields
	}
	padded := make([]string, width)
	copy(padded, fields)
	return padded
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
