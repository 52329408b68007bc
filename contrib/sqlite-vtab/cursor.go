//go:build sqlite_vtable

package sqlitevtab

import (
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// cursor adapts one vtab.Cursor to sqlite3.VTabCursor. The positioning
// state machine lives entirely in vtab.Cursor; this type only translates
// call shapes and marshals column values onto the result context.
type cursor struct {
	cur *vtab.Cursor
}

func (c *cursor) Filter(idxNum int, idxStr string, vals []interface{}) error {
	return c.cur.Filter(idxNum, idxStr, vals)
}

func (c *cursor) Next() error {
	return c.cur.Next()
}

func (c *cursor) EOF() bool {
	return c.cur.EOF()
}

func (c *cursor) Column(ctx *sqlite3.SQLiteContext, col int) error {
	v, err := c.cur.Column(col)
	if err != nil {
		return err
	}
	return bindValue(ctx, v)
}

func (c *cursor) Rowid() (int64, error) {
	return c.cur.Rowid()
}

func (c *cursor) Close() error {
	return c.cur.Close()
}
