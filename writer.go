package csvfixture

import (
	"bufio"
	"os"
	"strings"

	"github.com/nao1215/csvfixture/domain/model"
)

// WriteFixture writes header and tuples as a delimited fixture that Load
// reads back into the same tuples. Cells are encoded with the sigil grammar
// and quoted when they contain the delimiter, a quote, a backslash or a line
// break. A tuple without cells, or whose first cell starts with "#", would be
// skipped on load and is rejected with ErrUnwritableTuple before anything is
// written. The compression extension from opts is appended to path when
// missing; the final path is returned.
func WriteFixture(path string, header []string, tuples []Tuple, opts WriteOptions) (string, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = csvDelimiter
	}
	if ext := opts.Compression.Extension(); ext != "" && !strings.HasSuffix(strings.ToLower(path), ext) {
		path += ext
	}
	errCtx := newErrorContext("write fixture", path)

	records := make([][]string, 0, len(tuples))
	for i, tuple := range tuples {
		raw := tuple.Raw()
		if len(raw) == 0 || model.IsCommentRow(raw) {
			return "", errCtx.WithRow(i + 1).Error(ErrUnwritableTuple)
		}
		records = append(records, raw)
	}

	file, err := os.Create(path) //nolint:gosec // Output path is chosen by the caller
	if err != nil {
		return "", errCtx.Error(err)
	}
	writer, finish, err := compress(file, opts.Compression)
	if err != nil {
		_ = os.Remove(path)
		return "", errCtx.Error(err)
	}

	buffered := bufio.NewWriter(writer)
	writeErr := writeRecord(buffered, header, opts.Delimiter)
	for i := 0; writeErr == nil && i < len(records); i++ {
		writeErr = writeRecord(buffered, records[i], opts.Delimiter)
	}
	if writeErr == nil {
		writeErr = buffered.Flush()
	}
	if finishErr := finish(); writeErr == nil {
		writeErr = finishErr
	}
	if writeErr != nil {
		_ = os.Remove(path)
		return "", errCtx.Error(writeErr)
	}
	return path, nil
}

// writeRecord writes one line of the fixture dialect
func writeRecord(w *bufio.Writer, cells []string, delimiter rune) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := w.WriteRune(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quoteCell(cell, delimiter)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

// quoteCell quotes a cell when the reader would otherwise split or alter it.
// A cell whose text is empty is quoted too, so a row of one empty cell is
// not mistaken for a blank line.
func quoteCell(cell string, delimiter rune) string {
	if cell != "" && !strings.ContainsAny(cell, string([]rune{delimiter, quoteChar, escapeChar, '\n', '\r'})) {
		return cell
	}

	var b strings.Builder
	b.WriteRune(quoteChar)
	for _, r := range cell {
		if r == quoteChar || r == escapeChar {
			b.WriteRune(escapeChar)
		}
		b.WriteRune(r)
	}
	b.WriteRune(quoteChar)
	return b.String()
}
