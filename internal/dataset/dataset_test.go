package dataset

import (
	"math"
	"testing"
)

func sample() *Dataset {
	ds, err := New([]*Column{
		NewInt("pid", []int64{10000, 10001, 10002}),
		NewString("name", []string{"Asha Rao", "Vikram Singh", "Meera Iyer"}),
		NewFloat("salary", []float64{1500.5, 2200, 3100.25}),
		NewDate("doj", []string{"2020-01-15", "2021-06-30", "2022-11-02"}),
	})
	if err != nil {
		panic(err)
	}
	return ds
}

// -----------------------------------------------------------------------------
// Column Tests
// -----------------------------------------------------------------------------

func TestColumnLenAndKind(t *testing.T) {
	tests := []struct {
		name string
		col  *Column
		kind Kind
		len  int
	}{
		{"int", NewInt("a", []int64{1, 2}), Int, 2},
		{"float", NewFloat("b", []float64{1.5}), Float, 1},
		{"string", NewString("c", []string{"x", "y", "z"}), String, 3},
		{"date", NewDate("d", []string{"2020-01-01"}), Date, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.col.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.col.Kind, tt.kind)
			}
			if tt.col.Len() != tt.len {
				t.Errorf("Len() = %d, want %d", tt.col.Len(), tt.len)
			}
		})
	}
}

func TestColumnValue(t *testing.T) {
	tests := []struct {
		name string
		col  *Column
		i    int
		want string
	}{
		{"int", NewInt("a", []int64{42}), 0, "42"},
		{"negative int", NewInt("a", []int64{-7}), 0, "-7"},
		{"float", NewFloat("b", []float64{3.25}), 0, "3.25"},
		{"float missing", NewFloat("b", []float64{math.NaN()}), 0, ""},
		{"string", NewString("c", []string{"hello"}), 0, "hello"},
		{"date", NewDate("d", []string{"2021-02-03"}), 0, "2021-02-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.Value(tt.i); got != tt.want {
				t.Errorf("Value(%d) = %q, want %q", tt.i, got, tt.want)
			}
		})
	}
}

func TestColumnDistinct(t *testing.T) {
	col := NewString("gender", []string{"M", "F", "M", "", "F", "X"})
	got := col.Distinct()
	want := []string{"M", "F", "X"}
	if len(got) != len(want) {
		t.Fatalf("Distinct() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Distinct()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumnAppend(t *testing.T) {
	col := NewInt("a", []int64{1})
	col.Append(int64(2))
	if col.Len() != 2 || col.Ints[1] != 2 {
		t.Errorf("Append failed: %v", col.Ints)
	}

	fcol := NewFloat("b", nil)
	fcol.Append(1.5)
	if fcol.Len() != 1 || fcol.Floats[0] != 1.5 {
		t.Errorf("Append failed: %v", fcol.Floats)
	}

	scol := NewDate("d", nil)
	scol.Append("2020-01-01")
	if scol.Len() != 1 || scol.Strings[0] != "2020-01-01" {
		t.Errorf("Append failed: %v", scol.Strings)
	}
}

// -----------------------------------------------------------------------------
// Dataset Tests
// -----------------------------------------------------------------------------

func TestNewRejectsUnequalLengths(t *testing.T) {
	_, err := New([]*Column{
		NewInt("a", []int64{1, 2}),
		NewInt("b", []int64{1}),
	})
	if err == nil {
		t.Fatal("expected error for unequal column lengths")
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds := sample()

	if ds.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", ds.Rows())
	}

	names := ds.Names()
	want := []string{"pid", "name", "salary", "doj"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if col := ds.Column("SALARY"); col == nil || col.Name != "salary" {
		t.Error("Column lookup should be case-insensitive")
	}
	if ds.Column("missing") != nil {
		t.Error("Column lookup should return nil for unknown names")
	}

	if col := ds.IdentifierColumn(); col == nil || col.Name != "pid" {
		t.Error("IdentifierColumn should find pid")
	}
	if col := ds.NameColumn(); col == nil || col.Name != "name" {
		t.Error("NameColumn should find name")
	}
	if ds.EmailColumn() != nil {
		t.Error("EmailColumn should be nil without an email column")
	}
}

func TestDatasetCloneIsDeep(t *testing.T) {
	ds := sample()
	clone := ds.Clone()

	clone.Columns[0].Ints[0] = 99999
	clone.Columns[1].Strings[0] = "changed"

	if ds.Columns[0].Ints[0] == 99999 {
		t.Error("Clone shares int backing with original")
	}
	if ds.Columns[1].Strings[0] == "changed" {
		t.Error("Clone shares string backing with original")
	}
}

func TestDatasetHead(t *testing.T) {
	ds := sample()
	head := ds.Head(2)

	if head.Rows() != 2 {
		t.Errorf("Head(2).Rows() = %d, want 2", head.Rows())
	}
	if ds.Rows() != 3 {
		t.Error("Head should not modify the original")
	}
	// Head beyond length truncates to the full dataset
	if ds.Head(10).Rows() != 3 {
		t.Error("Head(10) should truncate to full length")
	}
}

func TestDatasetDrop(t *testing.T) {
	ds := sample()
	dropped := ds.Drop("pid", "DOJ")

	names := dropped.Names()
	want := []string{"name", "salary"}
	if len(names) != len(want) {
		t.Fatalf("Drop names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Drop names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

// -----------------------------------------------------------------------------
// Fingerprint Tests
// -----------------------------------------------------------------------------

func TestFingerprintDeterministic(t *testing.T) {
	a, err := ComputeFingerprint(sample())
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}
	b, err := ComputeFingerprint(sample())
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	if a.Root == "" {
		t.Fatal("fingerprint root should not be empty")
	}
	if a.Root != b.Root {
		t.Errorf("fingerprints differ for identical datasets: %s vs %s", a.Root, b.Root)
	}
}

func TestFingerprintDetectsChange(t *testing.T) {
	original := sample()
	before, err := ComputeFingerprint(original)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	changed := original.Clone()
	changed.Column("salary").Floats[1] = 9999

	after, err := ComputeFingerprint(changed)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	if before.Root == after.Root {
		t.Error("changed dataset should have a different root")
	}

	diff := before.ChangedColumns(after)
	if len(diff) != 1 || diff[0] != "salary" {
		t.Errorf("ChangedColumns = %v, want [salary]", diff)
	}
}

func TestFingerprintEmptyDataset(t *testing.T) {
	fp, err := ComputeFingerprint(&Dataset{})
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}
	if fp.Root == "" {
		t.Error("empty dataset should still have a root hash")
	}
}

func TestFingerprintPrefixStableUnderAppend(t *testing.T) {
	ds := sample()
	before, err := ComputeFingerprint(ds)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	grown := ds.Clone()
	grown.Column("pid").Append(int64(10003))
	grown.Column("name").Append("Ravi Kumar")
	grown.Column("salary").Append(2000.0)
	grown.Column("doj").Append("2023-01-01")

	prefix, err := ComputeFingerprint(grown.Head(3))
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	if prefix.Root != before.Root {
		t.Error("prefix fingerprint should match the original dataset")
	}
}
