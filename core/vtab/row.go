package vtab

// Row is one result row produced by a table's row iterator.
//
// ID is the rowid SQLite reports for the row. It only has to be stable for
// the duration of one cursor's scan; no cross-cursor identity is implied.
// Values must line up, index for index, with the producing table's
// ColumnNames.
type Row struct {
	ID     int64
	Values []any
}
