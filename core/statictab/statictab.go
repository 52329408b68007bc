// Package statictab provides a declarative, in-memory table source.
//
// A Source is built from a static mapping of table name to definition: a
// column list plus a producer of key/value records. All declared tables are
// served under a single registered module name; the binding's RegisterStatic
// helper additionally issues one CREATE VIRTUAL TABLE statement per declared
// table so the tables are queryable immediately after registration.
package statictab

import (
	"fmt"
	"io"
	"sort"

	"github.com/FocuswithJustin/sqlitevtab/core/errors"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// Def declares one table: its columns and a producer called once per scan.
// Record keys are matched against Columns; a record missing a column yields
// NULL for it. A nil Rows producer declares an empty table.
type Def struct {
	Columns []string
	Rows    func() []map[string]any
}

// Source serves a fixed set of declaratively defined tables.
type Source struct {
	tables map[string]*Table
}

// New builds a Source from table definitions keyed by table name.
func New(defs map[string]Def) *Source {
	tables := make(map[string]*Table, len(defs))
	for name, def := range defs {
		tables[name] = &Table{name: name, def: def}
	}
	return &Source{tables: tables}
}

// ConnectTable looks up the declared table. Unknown names fail with a
// not-found error that SQLite surfaces to the declaring statement.
func (s *Source) ConnectTable(args vtab.ModuleArgs) (vtab.Table, error) {
	t, ok := s.tables[args.Table]
	if !ok {
		return nil, errors.NewNotFound("table", args.Table)
	}
	return t, nil
}

// Names returns the declared table names in sorted order.
func (s *Source) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateTableStatements returns one CREATE VIRTUAL TABLE statement per
// declared table, for issuing when the source is registered under module.
// A source with no tables returns none.
func (s *Source) CreateTableStatements(module string) []string {
	var stmts []string
	for _, name := range s.Names() {
		stmts = append(stmts, fmt.Sprintf("CREATE VIRTUAL TABLE %s USING %s",
			vtab.QuoteIdentifier(name), module))
	}
	return stmts
}

// Table is one declared in-memory table.
type Table struct {
	name string
	def  Def
}

// ColumnNames returns the declared column list.
func (t *Table) ColumnNames() []string {
	return t.def.Columns
}

// TableName returns the name the table was declared under.
func (t *Table) TableName() string {
	return t.name
}

// Rows invokes the producer for a fresh record set and serves it with
// sequential row ids from zero. Column values are projected from each
// record at read time; absent keys become NULL.
func (t *Table) Rows(idxNum int, idxStr string, args []any) (vtab.RowIterator, error) {
	var records []map[string]any
	if t.def.Rows != nil {
		records = t.def.Rows()
	}
	i := 0
	return vtab.RowFunc(func() (vtab.Row, error) {
		if i >= len(records) {
			return vtab.Row{}, io.EOF
		}
		record := records[i]
		values := make([]any, len(t.def.Columns))
		for j, col := range t.def.Columns {
			values[j] = record[col]
		}
		row := vtab.Row{ID: int64(i), Values: values}
		i++
		return row, nil
	}), nil
}
