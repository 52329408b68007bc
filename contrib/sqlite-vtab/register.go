//go:build sqlite_vtable

package sqlitevtab

import (
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sqlitevtab/core/statictab"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// Driver returns a database/sql driver that registers each table source on
// every new connection. Register the result once with sql.Register, then
// open databases through that driver name as usual.
func Driver(modules map[string]vtab.TableSource) *sqlite3.SQLiteDriver {
	return &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for name, src := range modules {
				if err := Register(conn, name, src); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// RegisterStatic registers a declarative source under module and issues one
// CREATE VIRTUAL TABLE statement per declared table, so the tables are
// queryable as soon as registration returns. A source with no tables
// registers cleanly and issues nothing.
func RegisterStatic(conn *sqlite3.SQLiteConn, module string, src *statictab.Source) error {
	if err := Register(conn, module, src); err != nil {
		return err
	}
	for _, stmt := range src.CreateTableStatements(module) {
		if _, err := conn.Exec(stmt, nil); err != nil {
			return fmt.Errorf("declare table: %w", err)
		}
	}
	return nil
}
