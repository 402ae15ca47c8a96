package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"datalens/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRead_CSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sales.csv", "region,amount\nnorth,10\nsouth,20\n")

	raw, err := NewFileReader().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(raw.Headers) != 2 || raw.Headers[0] != "region" || raw.Headers[1] != "amount" {
		t.Errorf("headers = %v", raw.Headers)
	}
	if len(raw.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(raw.Rows))
	}
	if raw.Rows[1]["amount"] != "20" {
		t.Errorf("rows[1][amount] = %q, want 20", raw.Rows[1]["amount"])
	}
}

func TestRead_TrimsHeadersAndCells(t *testing.T) {
	path := writeFile(t, t.TempDir(), "messy.csv", " region , amount \n north ,  10 \n")

	raw, err := NewFileReader().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if raw.Headers[0] != "region" || raw.Headers[1] != "amount" {
		t.Errorf("headers not trimmed: %v", raw.Headers)
	}
	if raw.Rows[0]["region"] != "north" || raw.Rows[0]["amount"] != "10" {
		t.Errorf("cells not trimmed: %v", raw.Rows[0])
	}
}

func TestRead_ShortRow(t *testing.T) {
	// A row with fewer cells than headers leaves the trailing columns unset;
	// the table layer treats those as missing values.
	path := writeFile(t, t.TempDir(), "ragged.csv", "a,b\n1\n2,3\n")

	raw, err := NewFileReader().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if _, ok := raw.Rows[0]["b"]; ok {
		t.Error("short row should not carry a value for the missing column")
	}
	if raw.Rows[1]["b"] != "3" {
		t.Errorf("rows[1][b] = %q, want 3", raw.Rows[1]["b"])
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := NewFileReader().Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.HasCode(err, errors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %s", errors.GetCode(err))
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")

	_, err := NewFileReader().Read(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	if !errors.HasCode(err, errors.CodeEmptyData) {
		t.Errorf("expected EMPTY_DATA, got %s", errors.GetCode(err))
	}
}
