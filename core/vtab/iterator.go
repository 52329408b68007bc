package vtab

import "io"

// RowIterator is a finite, forward-only sequence of rows.
//
// Next returns the next row, or io.EOF once the sequence is exhausted. Any
// other error aborts the scan and is surfaced to SQLite unchanged. Rows are
// produced one at a time, on demand; nothing is buffered ahead of the
// caller.
//
// An iterator that holds resources (an open file, a network stream) should
// also implement io.Closer. Cursor closes the active iterator when it is
// replaced by a new Filter call and again on cursor teardown.
type RowIterator interface {
	Next() (Row, error)
}

// RowFunc adapts a pull function to a RowIterator.
type RowFunc func() (Row, error)

// Next calls f.
func (f RowFunc) Next() (Row, error) { return f() }

// SliceIterator returns a RowIterator that yields rows in order.
func SliceIterator(rows []Row) RowIterator {
	i := 0
	return RowFunc(func() (Row, error) {
		if i >= len(rows) {
			return Row{}, io.EOF
		}
		row := rows[i]
		i++
		return row, nil
	})
}
