// Command vtabsql runs SQL against virtual tables backed by CSV files, XML
// documents, and directory listings.
//
// The query command needs the virtual-table surface of the CGO SQLite
// driver; build with:
//
//	CGO_ENABLED=1 go build -tags sqlite_vtable ./cmd/vtabsql
//
// The schema and version commands work in any build.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/sqlitevtab/core/csvtab"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
	"github.com/FocuswithJustin/sqlitevtab/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for vtabsql.
var CLI struct {
	LogLevel string `name:"log-level" default:"info" help:"Log level (debug, info, warn, error)"`
	JSONLogs bool   `name:"json-logs" help:"Emit logs as JSON"`

	Query   QueryCmd   `cmd:"" help:"Run SQL with the csv, xml and dir modules registered"`
	Schema  SchemaCmd  `cmd:"" help:"Print the schema a CSV file would be declared with"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// QueryCmd executes SQL statements against a database with the virtual
// table modules registered.
type QueryCmd struct {
	Database string   `short:"d" default:":memory:" help:"Database to open"`
	SQL      []string `arg:"" help:"SQL statements to execute, in order"`
}

func (c *QueryCmd) Run() error {
	return runQuery(c)
}

// SchemaCmd prints the declared schema for a CSV file without touching a
// database. Useful for checking header parsing.
type SchemaCmd struct {
	File  string `arg:"" type:"path" help:"CSV file (optionally .xz compressed)"`
	Table string `help:"Table name to use in the declaration (default: file name)"`
}

func (c *SchemaCmd) Run() error {
	name := c.Table
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	}
	table, err := csvtab.NewTable(name, c.File)
	if err != nil {
		return err
	}
	fmt.Println(vtab.SchemaSQL(table))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("vtabsql %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vtabsql"),
		kong.Description("SQL over CSV files, XML documents and directory trees via SQLite virtual tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		ctx.FatalIfErrorf(err)
	}
	format := logging.FormatText
	if CLI.JSONLogs {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err = ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
