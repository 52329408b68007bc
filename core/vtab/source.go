package vtab

// ModuleArgs carries one table-provisioning request from SQLite: the
// registered module name, the database the table lives in, the table's name,
// and the literal arguments from the CREATE VIRTUAL TABLE statement, passed
// through verbatim and positionally.
type ModuleArgs struct {
	Module   string
	Database string
	Table    string
	Args     []string
}

// TableSource answers the engine's table-provisioning requests for one
// registered module name.
//
// ConnectTable reconstructs or looks up the Table behind an already-declared
// virtual table, for example when a database whose schema records the table
// is reopened. It fails if the arguments are malformed or the named table is
// unknown; the error is surfaced to the statement that triggered the
// request.
type TableSource interface {
	ConnectTable(args ModuleArgs) (Table, error)
}

// TableCreator is an optional TableSource capability for sources that must
// provision per-table resources when the table is first created. Sources
// that are read-only and stateless at creation time omit it, and creation
// simply delegates to ConnectTable.
type TableCreator interface {
	TableSource
	CreateTable(args ModuleArgs) (Table, error)
}

// CreateTable provisions a new table from src. It dispatches to the source's
// CreateTable when implemented and falls back to ConnectTable otherwise.
func CreateTable(src TableSource, args ModuleArgs) (Table, error) {
	if c, ok := src.(TableCreator); ok {
		return c.CreateTable(args)
	}
	return src.ConnectTable(args)
}
