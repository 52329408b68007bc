//go:build sqlite_vtable

package sqlitevtab

import (
	"fmt"
	"log/slog"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
	"github.com/FocuswithJustin/sqlitevtab/internal/logging"
)

// Module adapts one vtab.TableSource to sqlite3.Module. SQLite routes the
// Create and Connect halves of the table lifecycle here; everything past
// that point flows through the table and cursor adapters.
type Module struct {
	source vtab.TableSource
	log    *slog.Logger
}

// NewModule wraps src for registration with a connection.
func NewModule(src vtab.TableSource) *Module {
	return &Module{source: src, log: logging.GetLogger()}
}

// Register binds src to the module name on conn. The registration lives
// exactly as long as the connection; no state is kept in this package.
func Register(conn *sqlite3.SQLiteConn, name string, src vtab.TableSource) error {
	if err := conn.CreateModule(name, NewModule(src)); err != nil {
		return fmt.Errorf("register module %s: %w", name, err)
	}
	return nil
}

// splitArgs separates the argument vector SQLite passes to Create and
// Connect: module name, database name and table name come first, followed
// by the literal CREATE VIRTUAL TABLE arguments.
func splitArgs(raw []string) vtab.ModuleArgs {
	var args vtab.ModuleArgs
	if len(raw) > 0 {
		args.Module = raw[0]
	}
	if len(raw) > 1 {
		args.Database = raw[1]
	}
	if len(raw) > 2 {
		args.Table = raw[2]
	}
	if len(raw) > 3 {
		args.Args = raw[3:]
	}
	return args
}

// Create provisions a new virtual table in response to CREATE VIRTUAL
// TABLE. Sources without create-time provisioning are connected instead.
func (m *Module) Create(c *sqlite3.SQLiteConn, raw []string) (sqlite3.VTab, error) {
	args := splitArgs(raw)
	m.log.Debug("create virtual table", "module", args.Module, "table", args.Table)
	t, err := vtab.CreateTable(m.source, args)
	if err != nil {
		return nil, err
	}
	return declare(c, t)
}

// Connect reattaches to a virtual table already recorded in the schema,
// for example when a database file is reopened.
func (m *Module) Connect(c *sqlite3.SQLiteConn, raw []string) (sqlite3.VTab, error) {
	args := splitArgs(raw)
	m.log.Debug("connect virtual table", "module", args.Module, "table", args.Table)
	t, err := m.source.ConnectTable(args)
	if err != nil {
		return nil, err
	}
	return declare(c, t)
}

// DestroyModule is part of sqlite3.Module. Registrations hold no state of
// their own, so there is nothing to release.
func (m *Module) DestroyModule() {}

// declare hands the generated schema to SQLite and wraps the table for the
// per-table callbacks.
func declare(c *sqlite3.SQLiteConn, t vtab.Table) (sqlite3.VTab, error) {
	schema := vtab.SchemaSQL(t)
	if err := c.DeclareVTab(schema); err != nil {
		return nil, fmt.Errorf("declare schema %q: %w", schema, err)
	}
	return &table{tab: t}, nil
}
