// Package csvtab exposes CSV files as read-only SQLite virtual tables.
//
// The first record of the file is the header and supplies the column names.
// Every scan re-opens the file and reads it from the start, assigning row
// ids sequentially from zero, so independent cursors always see the same
// ids. Files ending in ".xz" are decompressed transparently.
//
// Usage, once the source is registered under the "csv" module name:
//
//	CREATE VIRTUAL TABLE people USING csv('people.csv')
package csvtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/sqlitevtab/core/errors"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// Source provides one CSV-backed table per virtual table declaration. It is
// stateless; the file path arrives as the module argument.
type Source struct{}

// NewSource returns a CSV table source.
func NewSource() *Source {
	return &Source{}
}

// ConnectTable builds a Table for the declared virtual table. It expects
// exactly one argument, the CSV file path.
func (s *Source) ConnectTable(args vtab.ModuleArgs) (vtab.Table, error) {
	if len(args.Args) != 1 {
		return nil, errors.NewValidation("args", "csv module expects exactly one argument: the file path")
	}
	return NewTable(args.Table, unquoteArg(args.Args[0]))
}

// unquoteArg strips the quoting users commonly put around module arguments
// in CREATE VIRTUAL TABLE statements; SQLite passes the argument text
// through verbatim.
func unquoteArg(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`'`, `"`} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Table is one CSV-backed virtual table. The header is read once at
// construction; row data is read fresh on every scan.
type Table struct {
	name    string
	path    string
	columns []string
}

// NewTable reads the header row of the file at path and returns a table
// named name with those columns.
func NewTable(name, path string) (*Table, error) {
	r, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	header, err := csv.NewReader(r).Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewParse("CSV", path, "file is empty, expected a header row")
		}
		return nil, &errors.ParseError{Format: "CSV", Path: path, Message: "reading header row", Err: err}
	}
	return &Table{name: name, path: path, columns: header}, nil
}

// ColumnNames returns the header fields, in file order.
func (t *Table) ColumnNames() []string {
	return t.columns
}

// TableName returns the name the virtual table was declared with.
func (t *Table) TableName() string {
	return t.name
}

// Rows re-opens the file and streams its data records. The index parameters
// are ignored; the source never suggests an index.
func (t *Table) Rows(idxNum int, idxStr string, args []any) (vtab.RowIterator, error) {
	r, err := openFile(t.path)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(r)
	if _, err := cr.Read(); err != nil {
		r.Close()
		if err == io.EOF {
			return nil, errors.NewParse("CSV", t.path, "file is empty, expected a header row")
		}
		return nil, &errors.ParseError{Format: "CSV", Path: t.path, Message: "skipping header row", Err: err}
	}
	return &rowIterator{src: r, reader: cr}, nil
}

// rowIterator streams data records, assigning sequential row ids from zero
// for each independent scan.
type rowIterator struct {
	src    io.ReadCloser
	reader *csv.Reader
	next   int64
}

func (it *rowIterator) Next() (vtab.Row, error) {
	record, err := it.reader.Read()
	if err != nil {
		if err == io.EOF {
			return vtab.Row{}, io.EOF
		}
		// Malformed record: abort the scan, no suppression.
		return vtab.Row{}, fmt.Errorf("read csv record: %w", err)
	}
	values := make([]any, len(record))
	for i, field := range record {
		values[i] = field
	}
	row := vtab.Row{ID: it.next, Values: values}
	it.next++
	return row, nil
}

func (it *rowIterator) Close() error {
	return it.src.Close()
}

// openFile opens path for reading, layering xz decompression over files
// with an ".xz" suffix.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, &errors.ParseError{Format: "xz", Path: path, Message: "opening compressed stream", Err: err}
	}
	return &xzFile{Reader: xr, file: f}, nil
}

// xzFile couples an xz stream with the file that backs it so Close releases
// the descriptor.
type xzFile struct {
	*xz.Reader
	file *os.File
}

func (x *xzFile) Close() error {
	return x.file.Close()
}
