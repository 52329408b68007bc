//go:build sqlite_vtable

package sqlitevtab

import (
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// table adapts one vtab.Table to sqlite3.VTab.
type table struct {
	tab vtab.Table
}

// BestIndex always declines to suggest an index, forcing a full scan.
// SQLite then re-checks every constraint itself, so the answer is correct,
// just unoptimized.
func (t *table) BestIndex(csts []sqlite3.InfoConstraint, ob []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	return &sqlite3.IndexResult{Used: make([]bool, len(csts))}, nil
}

// Open creates a new, unfiltered cursor over the table. SQLite may hold an
// arbitrary number of cursors open at once; each gets independent state.
func (t *table) Open() (sqlite3.VTabCursor, error) {
	return &cursor{cur: vtab.Open(t.tab)}, nil
}

// Disconnect runs when a connection lets go of the table instance without
// destroying its data.
func (t *table) Disconnect() error {
	return vtab.Disconnect(t.tab)
}

// Destroy runs on DROP TABLE, after which the table's backing resources are
// gone for good.
func (t *table) Destroy() error {
	return vtab.Drop(t.tab)
}
