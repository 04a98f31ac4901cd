package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

// DefaultSampleSize is how many leading bytes are inspected to detect the delimiter
const DefaultSampleSize = 1024

const minColumns = 4

// Options configures how an upload is parsed
type Options struct {
	Format     string
	HasHeader  bool
	SampleSize int
}

// Parse reads every row of the upload. Parsing is all or nothing: the first
// structurally invalid row aborts with a *locations.CsvParseError.
func Parse(r io.Reader, opts Options) ([]models.ImportRow, error) {
	switch strings.ToLower(opts.Format) {
	case "", models.ImportFormatCSV:
		return ParseCSV(r, opts.HasHeader, opts.SampleSize)
	case models.ImportFormatXLSX:
		return ParseXLSX(r, opts.HasHeader)
	default:
		return nil, fmt.Errorf("unsupported import format %q", opts.Format)
	}
}

// DetectFormat guesses the import format from a file name
func DetectFormat(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return models.ImportFormatXLSX
	}
	return models.ImportFormatCSV
}

// ParseCSV sniffs the delimiter, re-encodes legacy lines and parses the records
func ParseCSV(r io.Reader, hasHeader bool, sampleSize int) ([]models.ImportRow, error) {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	size := sampleSize
	if size < 4096 {
		size = 4096
	}
	br := bufio.NewReaderSize(r, size)

	sample, err := br.Peek(sampleSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}
	delimiter := SniffDelimiter(sample, len(sample) == sampleSize)

	reader := newRecordReader(newLegacyDecoder(br), delimiter)

	var rows []models.ImportRow
	for record := 1; ; record++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &locations.CsvParseError{Row: record, Msg: err.Error()}
		}
		if record == 1 && hasHeader {
			continue
		}

		row, err := rowFromFields(fields, record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// rowFromFields maps name, address, city, state[, postal_code]; extra columns are ignored
func rowFromFields(fields []string, record int) (models.ImportRow, error) {
	if len(fields) < minColumns {
		return models.ImportRow{}, &locations.CsvParseError{Row: record, Msg: "Missing a column"}
	}

	row := models.ImportRow{
		Line:    record,
		Name:    strings.TrimSpace(fields[0]),
		Address: strings.TrimSpace(fields[1]),
		City:    strings.TrimSpace(fields[2]),
		State:   strings.TrimSpace(fields[3]),
	}
	if len(fields) > minColumns {
		row.PostalCode = strings.TrimSpace(fields[4])
	}
	return row, nil
}
