//go:build sqlite_vtable

package sqlitevtab

import (
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sqlitevtab/core/errors"
)

// bindValue marshals one Go column value onto the SQLite result context.
// nil becomes NULL; types without a SQLite representation are rejected
// rather than coerced.
func bindValue(ctx *sqlite3.SQLiteContext, v any) error {
	switch v := v.(type) {
	case nil:
		ctx.ResultNull()
	case bool:
		ctx.ResultBool(v)
	case int:
		ctx.ResultInt(v)
	case int32:
		ctx.ResultInt(int(v))
	case int64:
		ctx.ResultInt64(v)
	case float32:
		ctx.ResultDouble(float64(v))
	case float64:
		ctx.ResultDouble(v)
	case string:
		ctx.ResultText(v)
	case []byte:
		ctx.ResultBlob(v)
	case time.Time:
		ctx.ResultText(v.Format(time.RFC3339))
	default:
		return errors.NewUnsupported(fmt.Sprintf("column value type %T", v), "no SQLite representation")
	}
	return nil
}
