// Package dataset defines the realized tabular data produced by tabsynth:
// named, equal-length columns of a single value-kind each. Rows are
// positionally correlated across columns.
package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/synthlab/tabsynth/internal/tserr"
)

// Kind identifies the value-kind stored in a column.
type Kind int

const (
	Int Kind = iota
	Float
	String
	// Date values are stored as YYYY-MM-DD strings but keep their own
	// kind so sinks and augmentation can treat them as calendar dates.
	Date
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Column
// -----------------------------------------------------------------------------

// Column is an ordered sequence of values of one kind. Exactly one of the
// backing slices is populated, matching Kind; Date columns share the
// Strings backing. Missing float values are NaN, missing strings are "".
type Column struct {
	Name    string
	Kind    Kind
	Ints    []int64
	Floats  []float64
	Strings []string
}

// NewInt creates an int64 column.
func NewInt(name string, values []int64) *Column {
	return &Column{Name: name, Kind: Int, Ints: values}
}

// NewFloat creates a float64 column.
func NewFloat(name string, values []float64) *Column {
	return &Column{Name: name, Kind: Float, Floats: values}
}

// NewString creates a string column.
func NewString(name string, values []string) *Column {
	return &Column{Name: name, Kind: String, Strings: values}
}

// NewDate creates a date column from formatted YYYY-MM-DD values.
func NewDate(name string, values []string) *Column {
	return &Column{Name: name, Kind: Date, Strings: values}
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case Int:
		return len(c.Ints)
	case Float:
		return len(c.Floats)
	default:
		return len(c.Strings)
	}
}

// IsNumeric reports whether the column holds int64 or float64 values.
func (c *Column) IsNumeric() bool {
	return c.Kind == Int || c.Kind == Float
}

// Value returns the value at row i as a formatted string, the common
// currency of sinks and derivations. Missing values render as "".
func (c *Column) Value(i int) string {
	switch c.Kind {
	case Int:
		return strconv.FormatInt(c.Ints[i], 10)
	case Float:
		if math.IsNaN(c.Floats[i]) {
			return ""
		}
		return strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	default:
		return c.Strings[i]
	}
}

// Append adds one value of the column's kind. The any value must be
// int64, float64, or string matching Kind; it is the caller's job to
// respect the kind (planner and engine always do).
func (c *Column) Append(v any) {
	switch c.Kind {
	case Int:
		c.Ints = append(c.Ints, v.(int64))
	case Float:
		c.Floats = append(c.Floats, v.(float64))
	default:
		c.Strings = append(c.Strings, v.(string))
	}
}

// Distinct returns the distinct non-missing string values in first-seen
// order. Only meaningful for String and Date columns.
func (c *Column) Distinct() []string {
	seen := make(map[string]bool, len(c.Strings))
	var out []string
	for _, v := range c.Strings {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Ints != nil {
		out.Ints = append([]int64(nil), c.Ints...)
	}
	if c.Floats != nil {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Strings != nil {
		out.Strings = append([]string(nil), c.Strings...)
	}
	return out
}

// head returns a copy of the column truncated to the first n values.
func (c *Column) head(n int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case Int:
		out.Ints = append([]int64(nil), c.Ints[:n]...)
	case Float:
		out.Floats = append([]float64(nil), c.Floats[:n]...)
	default:
		out.Strings = append([]string(nil), c.Strings[:n]...)
	}
	return out
}

// -----------------------------------------------------------------------------
// Dataset
// -----------------------------------------------------------------------------

// Dataset is an ordered sequence of named, equal-length columns.
type Dataset struct {
	Columns []*Column
}

// New builds a Dataset and checks the equal-length invariant.
func New(columns []*Column) (*Dataset, error) {
	ds := &Dataset{Columns: columns}
	if len(columns) == 0 {
		return ds, nil
	}
	rows := columns[0].Len()
	for _, c := range columns[1:] {
		if c.Len() != rows {
			return nil, tserr.New(tserr.ErrInternal, "columns have unequal lengths").
				WithColumn(c.Name).
				With("rows", rows).
				With("got", c.Len())
		}
	}
	return ds, nil
}

// Rows returns the shared row count (0 for an empty dataset).
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name (case-insensitive), or nil.
func (d *Dataset) Column(name string) *Column {
	for _, c := range d.Columns {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// IdentifierColumn returns the column named pid or id (case-insensitive),
// or nil if the dataset has no identifier column.
func (d *Dataset) IdentifierColumn() *Column {
	for _, c := range d.Columns {
		lower := strings.ToLower(c.Name)
		if lower == "pid" || lower == "id" {
			return c
		}
	}
	return nil
}

// NameColumn returns the first column whose name contains "name"
// (case-insensitive), or nil.
func (d *Dataset) NameColumn() *Column {
	for _, c := range d.Columns {
		if strings.Contains(strings.ToLower(c.Name), "name") {
			return c
		}
	}
	return nil
}

// EmailColumn returns the first column whose name contains "email"
// (case-insensitive), or nil.
func (d *Dataset) EmailColumn() *Column {
	for _, c := range d.Columns {
		if strings.Contains(strings.ToLower(c.Name), "email") {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	cols := make([]*Column, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = c.Clone()
	}
	return &Dataset{Columns: cols}
}

// Head returns a copy of the dataset truncated to the first n rows.
func (d *Dataset) Head(n int) *Dataset {
	if n > d.Rows() {
		n = d.Rows()
	}
	cols := make([]*Column, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = c.head(n)
	}
	return &Dataset{Columns: cols}
}

// Drop returns a copy of the dataset without the named columns
// (case-insensitive). Unknown names are ignored.
func (d *Dataset) Drop(names ...string) *Dataset {
	dropped := func(name string) bool {
		for _, n := range names {
			if strings.EqualFold(n, name) {
				return true
			}
		}
		return false
	}
	var cols []*Column
	for _, c := range d.Columns {
		if !dropped(c.Name) {
			cols = append(cols, c.Clone())
		}
	}
	return &Dataset{Columns: cols}
}
