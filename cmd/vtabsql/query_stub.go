//go:build !sqlite_vtable

package main

import "fmt"

// runQuery is stubbed out when the binary is built without the CGO SQLite
// virtual-table surface.
func runQuery(c *QueryCmd) error {
	return fmt.Errorf("this build has no virtual-table support; rebuild with CGO_ENABLED=1 go build -tags sqlite_vtable")
}
