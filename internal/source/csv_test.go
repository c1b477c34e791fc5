package source

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

func TestReadCSVKindInference(t *testing.T) {
	doc := strings.Join([]string{
		"pid,name,age,salary,doj,notes",
		"10000,Asha Rao,25,52000.50,2021-03-15,fine",
		"10001,Vikram Singh,35,,2022-07-01,",
		"10002,Meera Iyer,45,61000.25,2020-11-30,1 remark",
	}, "\n")

	ds, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	tests := []struct {
		column string
		kind   dataset.Kind
	}{
		{"pid", dataset.Int},
		{"name", dataset.String},
		{"age", dataset.Int},
		{"salary", dataset.Float},
		{"doj", dataset.Date},
		{"notes", dataset.String},
	}
	for _, tt := range tests {
		col := ds.Column(tt.column)
		if col == nil {
			t.Fatalf("column %q missing", tt.column)
		}
		if col.Kind != tt.kind {
			t.Errorf("column %q kind = %v, want %v", tt.column, col.Kind, tt.kind)
		}
		if col.Len() != 3 {
			t.Errorf("column %q has %d values, want 3", tt.column, col.Len())
		}
	}

	// Missing numeric cell carried as NaN.
	if v := ds.Column("salary").Floats[1]; !math.IsNaN(v) {
		t.Errorf("salary[1] = %v, want NaN", v)
	}
	if got := ds.Column("pid").Ints[2]; got != 10002 {
		t.Errorf("pid[2] = %d, want 10002", got)
	}
	if got := ds.Column("doj").Strings[0]; got != "2021-03-15" {
		t.Errorf("doj[0] = %q", got)
	}
}

func TestReadCSVIntDemotedByMissingCell(t *testing.T) {
	doc := "count\n1\n\n3\n"

	ds, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	col := ds.Column("count")
	if col.Kind != dataset.Float {
		t.Fatalf("kind = %v, want Float (missing cell demotes int)", col.Kind)
	}
	if !math.IsNaN(col.Floats[1]) {
		t.Errorf("Floats[1] = %v, want NaN", col.Floats[1])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !tserr.Is(err, tserr.ErrSourceRead) {
		t.Errorf("error = %v, want ErrSourceRead", err)
	}
}

func TestReadCSVDuplicateHeader(t *testing.T) {
	doc := "tag,age,TAG\na,20,b\n"

	_, err := ReadCSV(strings.NewReader(doc))
	if !tserr.Is(err, tserr.ErrSourceRead) {
		t.Errorf("error = %v, want ErrSourceRead for duplicate header", err)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if ds.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", ds.Rows())
	}
	if got := len(ds.Columns); got != 2 {
		t.Errorf("columns = %d, want 2", got)
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(path, []byte("age\n20\n30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if ds.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", ds.Rows())
	}

	_, err = LoadCSV(filepath.Join(dir, "missing.csv"))
	if !tserr.Is(err, tserr.ErrSourceRead) {
		t.Errorf("error = %v, want ErrSourceRead", err)
	}
}
