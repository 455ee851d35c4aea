package csvfixture

import (
	"errors"
	"io"

	"github.com/nao1215/csvfixture/domain/model"
)

// dialect selects how delimited text is split into cells
type dialect int

const (
	// dialectFixture is the escape-aware fixture dialect
	dialectFixture dialect = iota
	// dialectTable is RFC 4180 as implemented by encoding/csv
	dialectTable
)

// rowSource drops the header row and comment rows of one opened fixture.
// It owns the fixture's file handle until close is called.
type rowSource struct {
	operation     string
	path          string
	reader        recordReader
	closer        func() error
	row           int
	headerSkipped bool
	closed        bool
}

// next returns the next data row, or io.EOF when the fixture is exhausted
func (s *rowSource) next() ([]string, error) {
	if !s.headerSkipped {
		if _, err := s.reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyFixture
			}
			return nil, err
		}
		s.headerSkipped = true
	}

	for {
		record, err := s.reader.Read()
		if err != nil {
			return nil, err
		}
		s.row++
		if model.IsCommentRow(record) {
			continue
		}
		return record, nil
	}
}

// readAll drains the source and closes it
func (s *rowSource) readAll() ([][]string, error) {
	defer s.close() //nolint:errcheck // read-only handle

	var rows [][]string
	for {
		record, err := s.next()
		if isEOF(err) {
			return rows, nil
		}
		if err != nil {
			return nil, newErrorContext(s.operation, s.path).WithRow(s.row + 1).Error(err)
		}
		rows = append(rows, record)
	}
}

// close releases the file handle once
func (s *rowSource) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.closer()
}

// isEOF reports the normal end of a fixture
func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
