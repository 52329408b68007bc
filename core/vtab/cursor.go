package vtab

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for cursor protocol violations. These indicate a bug in
// the caller, not a recoverable condition; they are surfaced to SQLite
// unchanged.
var (
	// ErrNotFiltered is returned when a cursor is read or advanced before
	// Filter has established a row sequence.
	ErrNotFiltered = errors.New("cursor used before Filter")
	// ErrNotPositioned is returned when Column or Rowid is called while the
	// cursor is not positioned on a row.
	ErrNotPositioned = errors.New("cursor not positioned on a row")
)

// Cursor drives one open scan over a Table. It keeps the positioning state
// SQLite's callback protocol expects, a current row plus an end-of-data
// flag, so table implementations only supply the row sequence.
//
// A cursor starts unfiltered; SQLite always calls Filter before reading.
// Filter may be called again at any time to restart the scan, for example on
// each outer-loop iteration of a nested scan. SQLite never invokes two
// methods on the same cursor concurrently, so Cursor does no locking.
//
// The table reference is borrowed: the table outlives every cursor opened
// on it, and a cursor never extends the table's lifetime.
type Cursor struct {
	table Table
	iter  RowIterator
	row   Row
	eof   bool
}

// Open returns a new, unfiltered cursor over t.
func Open(t Table) *Cursor {
	return &Cursor{table: t}
}

// Filter positions the cursor for a new scan. Any previous iterator is
// discarded (and closed, if it implements io.Closer), a fresh sequence is
// obtained from the table, and the first row is loaded so EOF answers
// correctly as soon as Filter returns.
func (c *Cursor) Filter(idxNum int, idxStr string, args []any) error {
	if err := c.closeIter(); err != nil {
		return fmt.Errorf("discard previous iterator: %w", err)
	}
	iter, err := c.table.Rows(idxNum, idxStr, args)
	if err != nil {
		return fmt.Errorf("open row iterator: %w", err)
	}
	c.iter = iter
	c.row = Row{}
	c.eof = false
	return c.Next()
}

// Next advances the cursor to the next row. Exhaustion is not an error: it
// sets the end-of-data flag reported by EOF and leaves the cursor with no
// current row. A failure while producing the row aborts the scan and is
// returned unchanged.
func (c *Cursor) Next() error {
	if c.iter == nil {
		return ErrNotFiltered
	}
	if c.eof {
		return nil
	}
	row, err := c.iter.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.eof = true
			c.row = Row{}
			return nil
		}
		return err
	}
	c.row = row
	return nil
}

// EOF reports whether the scan is exhausted. Valid in any state.
func (c *Cursor) EOF() bool {
	return c.eof
}

// Column returns the current row's value for column i. The cursor must be
// positioned on a row and i must be a valid index into the table's columns.
func (c *Cursor) Column(i int) (any, error) {
	if c.iter == nil {
		return nil, ErrNotFiltered
	}
	if c.eof {
		return nil, ErrNotPositioned
	}
	if i < 0 || i >= len(c.row.Values) {
		return nil, fmt.Errorf("column index %d out of range [0, %d)", i, len(c.row.Values))
	}
	return c.row.Values[i], nil
}

// Rowid returns the current row's id. The cursor must be positioned on a
// row.
func (c *Cursor) Rowid() (int64, error) {
	if c.iter == nil {
		return 0, ErrNotFiltered
	}
	if c.eof {
		return 0, ErrNotPositioned
	}
	return c.row.ID, nil
}

// Close releases the active iterator, if any. SQLite calls it exactly once
// on cursor teardown.
func (c *Cursor) Close() error {
	err := c.closeIter()
	c.row = Row{}
	c.eof = true
	return err
}

func (c *Cursor) closeIter() error {
	iter := c.iter
	c.iter = nil
	if closer, ok := iter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
