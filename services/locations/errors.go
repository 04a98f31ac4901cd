package locations

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuery           = errors.New("invalid query")
	ErrLocationNotFound       = errors.New("location not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrPostalCodeNotFound     = errors.New("postal code not found")
	ErrInvalidDuplicatesField = errors.New("invalid duplicates field")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrDuplicateCategory      = errors.New("category slug already exists")
)

// CsvParseError aborts an import; Row is the 1-based record number
type CsvParseError struct {
	Row int
	Msg string
}

func (e *CsvParseError) Error() string {
	return fmt.Sprintf("%s in row %d", e.Msg, e.Row)
}

// LocationEncodingError wraps any failure of the geocoding service
type LocationEncodingError struct {
	Address string
	Err     error
}

func (e *LocationEncodingError) Error() string {
	return fmt.Sprintf("failed to geocode %q: %v", e.Address, e.Err)
}

func (e *LocationEncodingError) Unwrap() error {
	return e.Err
}

// InvalidQueryf wraps ErrInvalidQuery with details
func InvalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
