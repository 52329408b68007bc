// Package xmltab exposes XML documents as read-only SQLite virtual tables.
//
// A table is declared with the document path, an XPath expression selecting
// the row nodes, and one "name=xpath" specification per column, evaluated
// relative to each row node. Column values are the inner text of the first
// match, or NULL when nothing matches. The document is re-read and re-parsed
// on every scan.
//
// Usage, once registered under the "xml" module name:
//
//	CREATE VIRTUAL TABLE books USING xml('catalog.xml', '//book',
//	    'title=title', 'author=author', 'id=@id')
package xmltab

import (
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/sqlitevtab/core/errors"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// Source provides one XML-backed table per virtual table declaration.
type Source struct{}

// NewSource returns an XML table source.
func NewSource() *Source {
	return &Source{}
}

// ConnectTable builds a Table for the declared virtual table. The arguments
// are the document path, the row XPath, and at least one column
// specification of the form "name=xpath".
func (s *Source) ConnectTable(args vtab.ModuleArgs) (vtab.Table, error) {
	if len(args.Args) < 3 {
		return nil, errors.NewValidation("args",
			"xml module expects a file path, a row xpath, and at least one name=xpath column")
	}
	path := trimQuotes(args.Args[0])
	rowQuery := trimQuotes(args.Args[1])
	specs := make([]string, 0, len(args.Args)-2)
	for _, a := range args.Args[2:] {
		specs = append(specs, trimQuotes(a))
	}
	return NewTable(args.Table, path, rowQuery, specs)
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// column pairs a declared column name with its compiled expression.
type column struct {
	name string
	expr *xpath.Expr
}

// Table is one XML-backed virtual table. Expressions are compiled once at
// construction; the document itself is parsed per scan.
type Table struct {
	name    string
	path    string
	rowExpr *xpath.Expr
	columns []column
}

// NewTable compiles the row and column expressions and returns a table over
// the document at path. Column specs have the form "name=xpath".
func NewTable(name, path, rowQuery string, specs []string) (*Table, error) {
	rowExpr, err := xpath.Compile(rowQuery)
	if err != nil {
		return nil, &errors.ParseError{Format: "xpath", Message: "row expression " + rowQuery, Err: err}
	}
	columns := make([]column, 0, len(specs))
	for _, spec := range specs {
		colName, query, ok := strings.Cut(spec, "=")
		if !ok || colName == "" || query == "" {
			return nil, errors.NewValidation("column", "specification "+spec+" is not of the form name=xpath")
		}
		expr, err := xpath.Compile(query)
		if err != nil {
			return nil, &errors.ParseError{Format: "xpath", Message: "column expression " + query, Err: err}
		}
		columns = append(columns, column{name: colName, expr: expr})
	}
	return &Table{name: name, path: path, rowExpr: rowExpr, columns: columns}, nil
}

// ColumnNames returns the declared column names, in specification order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// TableName returns the name the virtual table was declared with.
func (t *Table) TableName() string {
	return t.name
}

// Rows parses the document and selects the row nodes for one scan. Column
// values are extracted lazily as rows are pulled.
func (t *Table) Rows(idxNum int, idxStr string, args []any) (vtab.RowIterator, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, errors.NewIO("open", t.path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Path: t.path, Message: "parsing document", Err: err}
	}
	nodes := xmlquery.QuerySelectorAll(doc, t.rowExpr)

	i := 0
	return vtab.RowFunc(func() (vtab.Row, error) {
		if i >= len(nodes) {
			return vtab.Row{}, io.EOF
		}
		node := nodes[i]
		values := make([]any, len(t.columns))
		for j, col := range t.columns {
			if match := xmlquery.QuerySelector(node, col.expr); match != nil {
				values[j] = match.InnerText()
			}
		}
		row := vtab.Row{ID: int64(i), Values: values}
		i++
		return row, nil
	}), nil
}
