//go:build sqlite_vtable

package main

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/FocuswithJustin/sqlitevtab/core/csvtab"
	"github.com/FocuswithJustin/sqlitevtab/core/dirtab"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
	"github.com/FocuswithJustin/sqlitevtab/core/xmltab"
	"github.com/FocuswithJustin/sqlitevtab/internal/logging"

	sqlitevtab "github.com/FocuswithJustin/sqlitevtab/contrib/sqlite-vtab"
)

const driverName = "sqlite3_vtabsql"

var registerDriver sync.Once

// runQuery opens the database with the csv, xml and dir modules registered
// and executes each statement in order. Statements that return rows are
// printed tab-separated with a header line.
func runQuery(c *QueryCmd) error {
	registerDriver.Do(func() {
		sql.Register(driverName, sqlitevtab.Driver(map[string]vtab.TableSource{
			"csv": csvtab.NewSource(),
			"xml": xmltab.NewSource(),
			"dir": dirtab.NewSource(),
		}))
	})

	db, err := sql.Open(driverName, c.Database)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.Database, err)
	}
	defer db.Close()
	// Virtual table registrations are per connection; an in-memory database
	// also vanishes with its connection. Pin a single one.
	db.SetMaxOpenConns(1)

	for _, stmt := range c.SQL {
		if err := runStatement(db, stmt); err != nil {
			return err
		}
	}
	return nil
}

func runStatement(db *sql.DB, stmt string) error {
	logging.Debug("execute", "sql", stmt)

	trimmed := strings.TrimSpace(strings.ToUpper(stmt))
	if !strings.HasPrefix(trimmed, "SELECT") && !strings.HasPrefix(trimmed, "WITH") {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("execute %q: %w", stmt, err)
		}
		return nil
	}

	rows, err := db.Query(stmt)
	if err != nil {
		return fmt.Errorf("query %q: %w", stmt, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	fmt.Println(strings.Join(columns, "\t"))

	values := make([]any, len(columns))
	scan := make([]any, len(columns))
	for i := range values {
		scan[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = formatValue(v)
		}
		fmt.Println(strings.Join(fields, "\t"))
	}
	return rows.Err()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
