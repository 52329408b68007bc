package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSchemaCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(path, []byte("name,age\nalice,30\n"), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	cmd := &SchemaCmd{File: path, Table: "people"}
	if err := cmd.Run(); err != nil {
		t.Errorf("Run: %v", err)
	}

	// Derived table name path.
	cmd = &SchemaCmd{File: path}
	if err := cmd.Run(); err != nil {
		t.Errorf("Run with derived name: %v", err)
	}
}

func TestSchemaCmdMissingFile(t *testing.T) {
	cmd := &SchemaCmd{File: filepath.Join(t.TempDir(), "gone.csv")}
	if err := cmd.Run(); err == nil {
		t.Error("Run on a missing file should fail")
	}
}

func TestVersionCmd(t *testing.T) {
	if err := (&VersionCmd{}).Run(); err != nil {
		t.Errorf("Run: %v", err)
	}
}
