package vtab

// Table describes one virtual table: its column layout plus the single
// abstract capability every implementation must supply, producing row
// sequences for scans.
//
// A Table must be safe to treat as read-only once constructed. Several
// cursors may be open against the same Table at once; all per-scan state
// lives in the Cursor and the RowIterator it holds, never in the Table.
type Table interface {
	// ColumnNames returns the table's column names. The order is
	// significant: it defines both the declared schema and the index every
	// Row's Values slice is read with. The list is non-empty and fixed for
	// the table's lifetime.
	ColumnNames() []string

	// Rows opens a fresh, independent row sequence for one scan. Each call
	// must return a new iterator positioned at the start; nothing may be
	// resumed from a previous call. idxNum and idxStr echo the index chosen
	// by BestIndex (always the no-index default here) and args carries the
	// constraint values SQLite passes to Filter.
	Rows(idxNum int, idxStr string, args []any) (RowIterator, error)
}

// DefaultTableName appears in the declared schema when a Table does not
// implement Namer. SQLite ignores the name in a virtual table declaration,
// so the placeholder is cosmetic.
const DefaultTableName = "<unnamed>"

// Namer is an optional Table capability supplying a display name for the
// declared schema.
type Namer interface {
	TableName() string
}

// Disconnecter is an optional Table capability invoked when a connection
// lets go of the table instance without destroying its backing data, for
// example on connection close or schema cache eviction.
type Disconnecter interface {
	Disconnect() error
}

// Dropper is an optional Table capability invoked when the virtual table is
// removed with DROP TABLE. Implementations that allocated persistent
// resources at create time release them here.
type Dropper interface {
	Drop() error
}

// TableName returns the table's display name, or DefaultTableName when the
// table does not implement Namer.
func TableName(t Table) string {
	if n, ok := t.(Namer); ok {
		return n.TableName()
	}
	return DefaultTableName
}

// Disconnect runs the table's disconnect hook, if it has one.
func Disconnect(t Table) error {
	if d, ok := t.(Disconnecter); ok {
		return d.Disconnect()
	}
	return nil
}

// Drop runs the table's drop hook, if it has one.
func Drop(t Table) error {
	if d, ok := t.(Dropper); ok {
		return d.Drop()
	}
	return nil
}
