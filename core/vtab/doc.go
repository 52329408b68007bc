// Package vtab adapts object-style table and cursor implementations to the
// raw callback protocol SQLite expects from virtual-table modules.
//
// SQLite drives virtual tables through a fixed sequence of lifecycle calls:
// create or connect a table, open a cursor, position it with Filter, read
// columns and rowids, advance with Next, close, disconnect, destroy. The
// engine tracks nothing for you; each cursor must maintain its own
// end-of-data flag and current row. This package absorbs that bookkeeping so
// a table implementation only has to describe its columns and produce a
// fresh row sequence per scan.
//
// The three roles mirror the engine's protocol:
//
//   - TableSource answers table-provisioning requests for one registered
//     module name and hands back Table instances.
//   - Table declares column names and produces RowIterator sequences.
//   - Cursor is the concrete positioning state machine shared by every
//     table implementation.
//
// Optional behavior (a display name for the declared schema, disconnect and
// drop hooks, create-time provisioning) is expressed as small optional
// interfaces with no-op defaults, so the required surface stays minimal.
//
// This package is engine-neutral and free of cgo. The binding onto
// github.com/mattn/go-sqlite3 lives in contrib/sqlite-vtab.
package vtab
