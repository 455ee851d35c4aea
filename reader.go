package csvfixture

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/csvfixture/domain/model"
)

const (
	quoteChar  = '"'
	escapeChar = '\\'
)

// recordReader yields raw records until io.EOF
type recordReader interface {
	Read() ([]string, error)
}

// delimitedReader reads the fixture dialect: configurable delimiter,
// double-quote quoting, backslash escapes, blank lines skipped.
type delimitedReader struct {
	r         *bufio.Reader
	delimiter rune
	line      int
}

// newDelimitedReader creates a reader for the fixture dialect
func newDelimitedReader(r io.Reader, delimiter rune) *delimitedReader {
	return &delimitedReader{
		r:         bufio.NewReader(r),
		delimiter: delimiter,
		line:      1,
	}
}

// Read returns the next non-blank record
func (d *delimitedReader) Read() ([]string, error) {
	for {
		record, blank, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if !blank {
			return record, nil
		}
	}
}

func (d *delimitedReader) readRecord() ([]string, bool, error) {
	var (
		fields       []string
		field        strings.Builder
		inQuotes     bool
		atFieldStart = true
		sawAny       bool
		startLine    = d.line
	)

	for {
		r, _, err := d.r.ReadRune()
		if errors.Is(err, io.EOF) {
			if inQuotes {
				return nil, false, fmt.Errorf("%w: unterminated quoted field starting on line %d", model.ErrMalformedCell, startLine)
			}
			if !sawAny {
				return nil, false, io.EOF
			}
			return append(fields, field.String()), false, nil
		}
		if err != nil {
			return nil, false, err
		}
		sawAny = true

		switch {
		case r == escapeChar:
			next, _, err := d.r.ReadRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, false, fmt.Errorf("%w: dangling escape on line %d", model.ErrMalformedCell, d.line)
				}
				return nil, false, err
			}
			if next == '\n' {
				d.line++
			}
			field.WriteString(d.unescape(next))
			atFieldStart = false

		case inQuotes:
			if r == quoteChar {
				next, _, err := d.r.ReadRune()
				if err == nil && next == quoteChar {
					field.WriteRune(quoteChar)
					continue
				}
				if err == nil {
					_ = d.r.UnreadRune() // cannot fail right after ReadRune
				}
				inQuotes = false
				continue
			}
			if r == '\n' {
				d.line++
			}
			field.WriteRune(r)

		case r == quoteChar && atFieldStart:
			inQuotes = true
			atFieldStart = false

		case r == d.delimiter:
			fields = append(fields, field.String())
			field.Reset()
			atFieldStart = true

		case r == '\r' || r == '\n':
			if r == '\r' {
				next, _, err := d.r.ReadRune()
				if err == nil && next != '\n' {
					_ = d.r.UnreadRune()
				}
			}
			d.line++
			if len(fields) == 0 && field.Len() == 0 && atFieldStart {
				return nil, true, nil
			}
			return append(fields, field.String()), false, nil

		default:
			field.WriteRune(r)
			atFieldStart = false
		}
	}
}

// unescape resolves the character following a backslash. Escaped meta
// characters and the control letters n, t, r, b and f are resolved;
// anything else keeps the backslash.
func (d *delimitedReader) unescape(r rune) string {
	switch r {
	case d.delimiter, quoteChar, escapeChar:
		return string(r)
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	default:
		return string([]rune{escapeChar, r})
	}
}

// newTableFormatReader reads the RFC 4180 dialect used by table-format fixtures
func newTableFormatReader(r io.Reader) recordReader {
	csvReader := csv.NewReader(r)
	csvReader.Comma = csvDelimiter
	csvReader.FieldsPerRecord = -1
	return csvReader
}

// sliceReader replays rows that were materialized up front
type sliceReader struct {
	rows [][]string
	next int
}

// Read returns the next non-blank row
func (s *sliceReader) Read() ([]string, error) {
	for s.next < len(s.rows) {
		row := s.rows[s.next]
		s.next++
		if len(row) > 0 {
			return row, nil
		}
	}
	return nil, io.EOF
}
