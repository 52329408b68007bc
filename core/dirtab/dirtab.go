// Package dirtab exposes a directory tree as a read-only SQLite virtual
// table.
//
// Each regular file under the root becomes one row with columns name, path,
// size, mtime and blake3 (the hex BLAKE3 digest of the file contents).
// The tree is re-walked on every scan, and digests are computed lazily as
// rows are pulled, so scanning a large tree with a LIMIT only hashes the
// files actually read.
//
// Usage, once registered under the "dir" module name:
//
//	CREATE VIRTUAL TABLE tree USING dir('/some/root')
package dirtab

import (
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/sqlitevtab/core/errors"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

// Columns is the fixed column list every dirtab table declares.
var Columns = []string{"name", "path", "size", "mtime", "blake3"}

// Source provides one directory-backed table per virtual table declaration.
type Source struct{}

// NewSource returns a directory table source.
func NewSource() *Source {
	return &Source{}
}

// ConnectTable builds a Table for the declared virtual table. It expects
// exactly one argument, the root directory.
func (s *Source) ConnectTable(args vtab.ModuleArgs) (vtab.Table, error) {
	if len(args.Args) != 1 {
		return nil, errors.NewValidation("args", "dir module expects exactly one argument: the root directory")
	}
	return NewTable(args.Table, trimQuotes(args.Args[0]))
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Table is one directory-backed virtual table.
type Table struct {
	name string
	root string
}

// NewTable verifies root is a directory and returns a table over it.
func NewTable(name, root string) (*Table, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NewIO("stat", root, err)
	}
	if !info.IsDir() {
		return nil, errors.NewValidation("root", root+" is not a directory")
	}
	return &Table{name: name, root: root}, nil
}

// ColumnNames returns the fixed dirtab column list.
func (t *Table) ColumnNames() []string {
	return Columns
}

// TableName returns the name the virtual table was declared with.
func (t *Table) TableName() string {
	return t.name
}

// Rows walks the tree and returns an iterator over its regular files in
// walk order. File contents are only read (for the digest column) when the
// corresponding row is produced.
func (t *Table) Rows(idxNum int, idxStr string, args []any) (vtab.RowIterator, error) {
	var paths []string
	err := filepath.WalkDir(t.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewIO("walk", t.root, err)
	}
	return &rowIterator{paths: paths}, nil
}

type rowIterator struct {
	paths []string
	next  int
}

func (it *rowIterator) Next() (vtab.Row, error) {
	if it.next >= len(it.paths) {
		return vtab.Row{}, io.EOF
	}
	path := it.paths[it.next]
	id := int64(it.next)
	it.next++

	info, err := os.Stat(path)
	if err != nil {
		return vtab.Row{}, errors.NewIO("stat", path, err)
	}
	digest, err := hashFile(path)
	if err != nil {
		return vtab.Row{}, err
	}
	return vtab.Row{
		ID: id,
		Values: []any{
			filepath.Base(path),
			path,
			info.Size(),
			info.ModTime().UTC().Format(time.RFC3339),
			digest,
		},
	}, nil
}

// hashFile streams the file through BLAKE3 and returns the hex digest.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
