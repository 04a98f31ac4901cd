package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var candidateDelimiters = []byte{',', ';', '\t', '|'}

// SniffDelimiter picks the candidate that occurs the same number of times on
// every sampled line, preferring the highest count. truncated drops the last
// line of the sample since it may be cut short. Defaults to a comma.
func SniffDelimiter(sample []byte, truncated bool) rune {
	lines := bytes.Split(sample, []byte{'\n'})
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}

	best := byte(',')
	bestConsistent := false
	bestCount := 0

	for _, candidate := range candidateDelimiters {
		count, consistent, ok := delimiterStats(lines, candidate)
		if !ok {
			continue
		}
		if (consistent && !bestConsistent) || (consistent == bestConsistent && count > bestCount) {
			best, bestConsistent, bestCount = candidate, consistent, count
		}
	}

	return rune(best)
}

// delimiterStats counts unquoted occurrences per non-empty line. ok is false
// when some line does not contain the candidate at all.
func delimiterStats(lines [][]byte, candidate byte) (count int, consistent bool, ok bool) {
	consistent = true
	seen := false

	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		n := 0
		quoted := false
		for _, b := range line {
			switch {
			case b == '"':
				quoted = !quoted
			case b == candidate && !quoted:
				n++
			}
		}
		if n == 0 {
			return 0, false, false
		}

		if !seen {
			count, seen = n, true
		} else if n != count {
			consistent = false
			if n > count {
				count = n
			}
		}
	}

	return count, consistent, seen
}

func newRecordReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader
}

// legacyDecoder passes valid UTF-8 lines through and decodes every other
// line as Windows-1252, so mixed-encoding uploads still parse.
type legacyDecoder struct {
	src     *bufio.Reader
	pending []byte
	err     error
}

func newLegacyDecoder(src *bufio.Reader) *legacyDecoder {
	return &legacyDecoder{src: src}
}

func (d *legacyDecoder) Read(p []byte) (int, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return 0, d.err
		}

		line, err := d.src.ReadBytes('\n')
		if len(line) > 0 {
			d.pending = decodeLine(line)
		}
		if err != nil {
			d.err = err
		}
	}

	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

func decodeLine(line []byte) []byte {
	if utf8.Valid(line) {
		return line
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(line)
	if err != nil {
		return bytes.ToValidUTF8(line, []byte("�"))
	}
	return decoded
}
