package dirtab

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/blake3"

	vterrors "github.com/FocuswithJustin/sqlitevtab/core/errors"
	"github.com/FocuswithJustin/sqlitevtab/core/vtab"
)

func populate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"a.txt":     "hello",
		"sub/b.txt": "world",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func scanAll(t *testing.T, table vtab.Table) []vtab.Row {
	t.Helper()
	c := vtab.Open(table)
	defer c.Close()
	if err := c.Filter(0, "", nil); err != nil {
		t.Fatalf("Filter: %v", err)
	}
	var rows []vtab.Row
	for !c.EOF() {
		id, err := c.Rowid()
		if err != nil {
			t.Fatalf("Rowid: %v", err)
		}
		values := make([]any, len(Columns))
		for i := range values {
			v, err := c.Column(i)
			if err != nil {
				t.Fatalf("Column(%d): %v", i, err)
			}
			values[i] = v
		}
		rows = append(rows, vtab.Row{ID: id, Values: values})
		if err := c.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	return rows
}

func TestScanTree(t *testing.T) {
	root := populate(t)
	table, err := NewTable("tree", root)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	rows := scanAll(t, table)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// WalkDir visits in lexical order: a.txt before sub/b.txt.
	if rows[0].Values[0] != "a.txt" || rows[1].Values[0] != "b.txt" {
		t.Errorf("names = %v, %v", rows[0].Values[0], rows[1].Values[0])
	}
	if rows[0].Values[2] != int64(len("hello")) {
		t.Errorf("size = %v, want %d", rows[0].Values[2], len("hello"))
	}

	sum := blake3.Sum256([]byte("hello"))
	if rows[0].Values[4] != hex.EncodeToString(sum[:]) {
		t.Errorf("blake3 = %v, want digest of %q", rows[0].Values[4], "hello")
	}

	for i, row := range rows {
		if row.ID != int64(i) {
			t.Errorf("row %d: id = %d", i, row.ID)
		}
	}
}

func TestEmptyDirectory(t *testing.T) {
	table, err := NewTable("tree", t.TempDir())
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if rows := scanAll(t, table); len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewTable("tree", file); !errors.Is(err, vterrors.ErrInvalidInput) {
		t.Errorf("NewTable on a file: err = %v, want ErrInvalidInput", err)
	}
}

func TestMissingRoot(t *testing.T) {
	if _, err := NewTable("tree", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewTable on a missing root should fail")
	}
}

func TestConnectTableArgs(t *testing.T) {
	src := NewSource()

	root := populate(t)
	table, err := src.ConnectTable(vtab.ModuleArgs{Table: "tree", Args: []string{"'" + root + "'"}})
	if err != nil {
		t.Fatalf("ConnectTable: %v", err)
	}
	if got := table.ColumnNames(); len(got) != len(Columns) {
		t.Errorf("ColumnNames = %v", got)
	}

	if _, err := src.ConnectTable(vtab.ModuleArgs{Table: "tree"}); !errors.Is(err, vterrors.ErrInvalidInput) {
		t.Errorf("ConnectTable without args: err = %v, want ErrInvalidInput", err)
	}
}
