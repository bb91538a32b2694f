package dataset

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "people.csv", strings.Join([]string{
		"name,age,city",
		"alice,34,leeds",
		"bob,,york",
		"carol,41",
	}, "\n"))
	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ds.Name != "people" {
		t.Fatalf("name = %q", ds.Name)
	}
	if len(ds.Columns) != 3 {
		t.Fatalf("columns = %d", len(ds.Columns))
	}
	if ds.Columns[0].Name != "name" || ds.Columns[2].Name != "city" {
		t.Fatalf("headers = %#v", ds.Columns)
	}
	if ds.NumRows() != 3 {
		t.Fatalf("rows = %d", ds.NumRows())
	}
	// Short row is padded with a missing value.
	if got := ds.Columns[2].Values[2]; got != "" {
		t.Fatalf("padded cell = %q", got)
	}
	if ds.Columns[1].Values[1] != "" {
		t.Fatalf("missing cell = %q", ds.Columns[1].Values[1])
	}
}

func TestReadTSV(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\tb\n1\t2\n3\t4\n")
	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(ds.Columns) != 2 || ds.NumRows() != 2 {
		t.Fatalf("shape = %d cols, %d rows", len(ds.Columns), ds.NumRows())
	}
	if ds.Columns[1].Values[0] != "2" {
		t.Fatalf("cell = %q", ds.Columns[1].Values[0])
	}
}

func TestReadGzipCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("x,y\n1,2\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ds.Name != "input" {
		t.Fatalf("name = %q", ds.Name)
	}
	if len(ds.Columns) != 2 || ds.NumRows() != 1 {
		t.Fatalf("shape = %d cols, %d rows", len(ds.Columns), ds.NumRows())
	}
}

func TestReadHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "only_col\n")
	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(ds.Columns) != 1 || ds.NumRows() != 0 {
		t.Fatalf("shape = %d cols, %d rows", len(ds.Columns), ds.NumRows())
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, "nothing.csv", "")
	if _, err := ReadFile(path); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err = %v, want ErrNoHeader", err)
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.feather", "whatever")
	if _, err := ReadFile(path); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("err = %v", err)
	}
}

func TestStem(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"output/input.csv", "input"},
		{"output/input.csv.gz", "input"},
		{"output/input.feather", "input"},
		{"output/input.dta.gz", "input"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := Stem(tc.path); got != tc.want {
			t.Fatalf("Stem(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
