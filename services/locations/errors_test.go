package locations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCsvParseError(t *testing.T) {
	var err error = &CsvParseError{Row: 3, Msg: "Missing a column"}

	var parseErr *CsvParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Row)
	assert.Equal(t, "Missing a column in row 3", err.Error())
}

func TestLocationEncodingError(t *testing.T) {
	cause := errors.New("ZERO_RESULTS")
	var err error = &LocationEncodingError{Address: "1 Main St, Chicago, IL 60601", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
	assert.Contains(t, err.Error(), "1 Main St")
}

func TestInvalidQueryf(t *testing.T) {
	err := InvalidQueryf("latitude %v out of range", 95.0)

	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Equal(t, "invalid query: latitude 95 out of range", err.Error())
}
