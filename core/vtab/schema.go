package vtab

import (
	"fmt"
	"strings"
)

// QuoteIdentifier wraps name in double quotes, doubling any embedded quote
// characters so the result is always a single valid SQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// SchemaSQL returns the CREATE TABLE declaration for t, of the form
//
//	CREATE TABLE "name" ("col1", "col2", ...)
//
// with columns in declared order. The declaration is computed on every call,
// never cached, so it always reflects the table's current ColumnNames.
func SchemaSQL(t Table) string {
	cols := t.ColumnNames()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = QuoteIdentifier(c)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdentifier(TableName(t)), strings.Join(quoted, ", "))
}
