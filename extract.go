package csvfixture

import (
	"fmt"
	"strings"

	"github.com/nao1215/csvfixture/domain/model"
)

// LoadStrings reads a fixture without any sigil interpretation. Header and
// comment rows are skipped as in Load, and the file is closed before
// returning.
func (l *Loader) LoadStrings(path string, delimiter rune) ([][]string, error) {
	source, err := l.open("load strings", path, delimiter, dialectFixture)
	if err != nil {
		return nil, err
	}
	rows, err := source.readAll()
	if err != nil {
		return nil, err
	}
	l.logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("loaded fixture strings")
	return rows, nil
}

// FirstColumn returns column 1 of every data row.
func (l *Loader) FirstColumn(path string, delimiter rune) ([]string, error) {
	return l.columns("first column", path, delimiter, 1, func(row []string) string {
		return row[0]
	})
}

// FirstAndSecondJoined returns "col1.col2" for every data row of a comma
// delimited fixture, e.g. a database and a table forming a dotted path.
func (l *Loader) FirstAndSecondJoined(path string) ([]string, error) {
	return l.columns("first and second joined", path, csvDelimiter, 2, func(row []string) string {
		return row[0] + "." + row[1]
	})
}

// LoadKeyedAttributes decodes the first cell of every data row as a map
// body, with or without the "m:" sigil. A null body yields a nil map.
func (l *Loader) LoadKeyedAttributes(path string) ([]map[string]string, error) {
	source, err := l.open("load keyed attributes", path, csvDelimiter, dialectFixture)
	if err != nil {
		return nil, err
	}
	rows, err := source.readAll()
	if err != nil {
		return nil, err
	}

	attributes := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		// the reader never yields zero-cell rows
		body := strings.TrimPrefix(row[0], model.MapPrefix)
		attributes = append(attributes, model.DecodeMapBody(body))
	}
	return attributes, nil
}

// LoadTypeStructures decodes a five-column schema fixture:
// data type, encoding, compression, alias, extra.
func (l *Loader) LoadTypeStructures(path string) ([]model.TypeStructure, error) {
	source, err := l.open("load type structures", path, csvDelimiter, dialectFixture)
	if err != nil {
		return nil, err
	}
	defer source.close() //nolint:errcheck // read-only handle

	var structures []model.TypeStructure
	for {
		row, err := source.next()
		if err != nil {
			if isEOF(err) {
				return structures, nil
			}
			return nil, newErrorContext("load type structures", path).WithRow(source.row + 1).Error(err)
		}
		structure, err := model.ParseTypeStructure(row)
		if err != nil {
			return nil, newErrorContext("load type structures", path).WithRow(source.row).Error(err)
		}
		structures = append(structures, structure)
	}
}

// columns projects every data row through pick after checking its width
func (l *Loader) columns(operation, path string, delimiter rune, width int, pick func([]string) string) ([]string, error) {
	source, err := l.open(operation, path, delimiter, dialectFixture)
	if err != nil {
		return nil, err
	}
	rows, err := source.readAll()
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < width {
			return nil, newErrorContext(operation, path).
				WithDetails(fmt.Sprintf("data row %d", i+1)).
				Error(fmt.Errorf("%w: need %d columns, got %d", model.ErrMissingColumn, width, len(row)))
		}
		values = append(values, pick(row))
	}
	return values, nil
}
