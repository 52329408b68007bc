// Package sqlitevtab binds the engine-neutral adapter in core/vtab onto the
// virtual-table callback protocol of github.com/mattn/go-sqlite3.
//
// This package is part of the main github.com/FocuswithJustin/sqlitevtab
// module and carries its only CGO dependency; everything under core/ is pure
// Go and testable without it.
//
// # Building
//
// The virtual-table surface of mattn/go-sqlite3 is gated behind its own
// build tag, so binaries using this package are built with:
//
//	CGO_ENABLED=1 go build -tags sqlite_vtable
//
// # Usage
//
// Register a table source on a raw connection:
//
//	err := sqlitevtab.Register(conn, "csv", csvtab.NewSource())
//
// or let every database/sql connection pick the modules up via a hook:
//
//	sql.Register("sqlite3_vtab", sqlitevtab.Driver(map[string]vtab.TableSource{
//		"csv": csvtab.NewSource(),
//	}))
//
// after which ordinary SQL drives the whole lifecycle:
//
//	CREATE VIRTUAL TABLE people USING csv('people.csv');
//	SELECT name, age FROM people;
package sqlitevtab
