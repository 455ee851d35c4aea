package csvfixture

import (
	"iter"

	"github.com/nao1215/csvfixture/domain/model"
)

// Tuple is one decoded fixture row in column order
type Tuple []model.Cell

// Values returns the cells as plain Go values (see model.Cell.Value),
// ready to be spread into a table-driven test case.
func (t Tuple) Values() []any {
	values := make([]any, len(t))
	for i, cell := range t {
		values[i] = cell.Value()
	}
	return values
}

// Raw returns every cell in fixture encoding
func (t Tuple) Raw() []string {
	raw := make([]string, len(t))
	for i, cell := range t {
		raw[i] = model.EncodeCell(cell)
	}
	return raw
}

// rowDecoder turns one raw row into a tuple
type rowDecoder func(raw []string) (Tuple, error)

// decodeSigils applies the cell grammar to every cell
func decodeSigils(raw []string) (Tuple, error) {
	cells, err := model.DecodeRow(raw)
	if err != nil {
		return nil, err
	}
	return Tuple(cells), nil
}

// keepText keeps every cell as scalar text
func keepText(raw []string) (Tuple, error) {
	tuple := make(Tuple, len(raw))
	for i, value := range raw {
		tuple[i] = model.ScalarCell(value)
	}
	return tuple, nil
}

// Tuples is a single forward pass over a fixture's parameter tuples. It
// holds the fixture's file handle: call Close when done, including on early
// abandonment. Collect and a fully drained All close it themselves.
//
//	tuples, err := loader.Load("insert.csv", ',')
//	if err != nil {
//		t.Fatal(err)
//	}
//	defer tuples.Close()
//	for tuples.Next() {
//		tc := tuples.Tuple()
//		...
//	}
//	if err := tuples.Err(); err != nil {
//		t.Fatal(err)
//	}
type Tuples struct {
	source  *rowSource
	decode  rowDecoder
	current Tuple
	err     error
}

// newTuples creates an iterator over source
func newTuples(source *rowSource, decode rowDecoder) *Tuples {
	return &Tuples{
		source: source,
		decode: decode,
	}
}

// Next advances to the next tuple. It returns false at the end of the
// fixture or on the first error; check Err afterwards.
func (t *Tuples) Next() bool {
	if t.err != nil {
		return false
	}
	if t.source.closed {
		t.err = ErrIteratorClosed
		return false
	}

	record, err := t.source.next()
	if isEOF(err) {
		t.current = nil
		return false
	}
	if err != nil {
		t.err = newErrorContext(t.source.operation, t.source.path).WithRow(t.source.row + 1).Error(err)
		return false
	}

	tuple, err := t.decode(record)
	if err != nil {
		t.err = newErrorContext(t.source.operation, t.source.path).WithRow(t.source.row).Error(err)
		return false
	}
	t.current = tuple
	return true
}

// Tuple returns the tuple Next advanced to
func (t *Tuples) Tuple() Tuple {
	return t.current
}

// Err returns the error that stopped iteration, if any. Reaching the end of
// the fixture is not an error; advancing after Close is.
func (t *Tuples) Err() error {
	return t.err
}

// Close releases the fixture's file handle. It is safe to call twice.
func (t *Tuples) Close() error {
	return t.source.close()
}

// All returns the remaining tuples as a range-over-func sequence. The
// iterator is closed when the sequence ends or the loop breaks.
func (t *Tuples) All() iter.Seq2[Tuple, error] {
	return func(yield func(Tuple, error) bool) {
		defer t.Close() //nolint:errcheck // read-only handle

		for t.Next() {
			if !yield(t.current, nil) {
				return
			}
		}
		if err := t.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect drains the iterator into a slice and closes it. Any error
// discards the partial result.
func (t *Tuples) Collect() ([]Tuple, error) {
	defer t.Close() //nolint:errcheck // read-only handle

	var tuples []Tuple
	for t.Next() {
		tuples = append(tuples, t.current)
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	return tuples, nil
}
