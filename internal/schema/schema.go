// Package schema defines the declarative column schema for tabsynth.
// A Schema is an ordered list of ColumnSpec values describing the dataset
// to generate. Specs are validated once, at construction; generators may
// assume a validated schema and never re-check invariants per row.
package schema

import (
	"strings"
	"time"

	"github.com/synthlab/tabsynth/internal/tserr"
)

// DateFormat is the calendar date layout used throughout tabsynth.
const DateFormat = "2006-01-02"

// DefaultStringLength is the generated length for string columns that do
// not declare one (prompt-mode columns never do).
const DefaultStringLength = 8

// -----------------------------------------------------------------------------
// Kind - column type tag
// -----------------------------------------------------------------------------

// Kind identifies the declared type of a column.
type Kind int

const (
	Integer Kind = iota
	Float
	Category
	String
	Date
	Identifier
	Computed
)

// String returns the lowercase name of the kind as used in prompts and
// schema files.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "int"
	case Float:
		return "float"
	case Category:
		return "category"
	case String:
		return "string"
	case Date:
		return "date"
	case Identifier:
		return "id"
	case Computed:
		return "computed"
	default:
		return "unknown"
	}
}

// KindNames lists the type names accepted by the prompt grammar.
// Computed columns are only reachable through schema files.
var KindNames = []string{"int", "float", "category", "string", "date"}

// KindFromName returns the Kind for a type name, or false if unknown.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "int":
		return Integer, true
	case "float":
		return Float, true
	case "category":
		return Category, true
	case "string":
		return String, true
	case "date":
		return Date, true
	case "id":
		return Identifier, true
	case "computed":
		return Computed, true
	default:
		return 0, false
	}
}

// -----------------------------------------------------------------------------
// ColumnSpec - one column's declared type and parameters
// -----------------------------------------------------------------------------

// ColumnSpec describes a single column to generate.
// Only the params matching the Kind are meaningful: MinInt/MaxInt for
// Integer, MinFloat/MaxFloat for Float, Labels for Category, Length for
// String, Start/End for Date, Expr for Computed.
type ColumnSpec struct {
	Name string
	Kind Kind

	// Integer params
	MinInt int64
	MaxInt int64

	// Float params
	MinFloat float64
	MaxFloat float64

	// Category params (order-preserving, duplicates removed at validation)
	Labels []string

	// String params
	Length int

	// Date params
	Start time.Time
	End   time.Time

	// Computed params: expression over sibling columns
	Expr string
}

// Validate checks the structural invariants for this column spec.
func (c *ColumnSpec) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return tserr.New(tserr.ErrSchemaInvalid, "column name is required")
	}

	switch c.Kind {
	case Integer:
		if c.MinInt > c.MaxInt {
			return tserr.New(tserr.ErrSchemaInvalid, "min cannot be greater than max").
				WithColumn(c.Name).
				With("min", c.MinInt).
				With("max", c.MaxInt)
		}
	case Float:
		if c.MinFloat > c.MaxFloat {
			return tserr.New(tserr.ErrSchemaInvalid, "min cannot be greater than max").
				WithColumn(c.Name).
				With("min", c.MinFloat).
				With("max", c.MaxFloat)
		}
	case Category:
		if len(c.Labels) == 0 {
			return tserr.New(tserr.ErrSchemaInvalid, "category column requires at least one label").
				WithColumn(c.Name)
		}
	case String:
		if c.Length <= 0 {
			return tserr.New(tserr.ErrSchemaInvalid, "string column requires a positive length").
				WithColumn(c.Name).
				With("length", c.Length)
		}
	case Date:
		if c.Start.IsZero() || c.End.IsZero() {
			return tserr.New(tserr.ErrSchemaInvalid, "date column requires start and end dates").
				WithColumn(c.Name)
		}
		if c.End.Before(c.Start) {
			return tserr.New(tserr.ErrSchemaInvalid, "start date cannot be after end date").
				WithColumn(c.Name).
				With("start", c.Start.Format(DateFormat)).
				With("end", c.End.Format(DateFormat))
		}
	case Computed:
		if strings.TrimSpace(c.Expr) == "" {
			return tserr.New(tserr.ErrSchemaInvalid, "computed column requires an expression").
				WithColumn(c.Name)
		}
	case Identifier:
		// No params; any declared range is ignored.
	default:
		return tserr.New(tserr.ErrSchemaInvalid, "unknown column kind").
			WithColumn(c.Name).
			With("kind", int(c.Kind))
	}

	return nil
}

// -----------------------------------------------------------------------------
// Schema - ordered sequence of column specs
// -----------------------------------------------------------------------------

// Schema is an ordered, validated sequence of column specs.
// Construct with New; a zero Schema is not valid.
type Schema struct {
	Columns []ColumnSpec
}

// New validates the given specs and returns a Schema.
// Identifier override: a column named pid or id (case-insensitive) is
// always treated as an Identifier regardless of its declared kind.
func New(specs []ColumnSpec) (*Schema, error) {
	if len(specs) == 0 {
		return nil, tserr.New(tserr.ErrSchemaEmpty, "schema must have at least one column")
	}

	cols := make([]ColumnSpec, len(specs))
	copy(cols, specs)

	seen := make(map[string]bool, len(cols))
	for i := range cols {
		col := &cols[i]

		lower := strings.ToLower(col.Name)
		if lower == "pid" || lower == "id" {
			col.Kind = Identifier
		}
		if col.Kind == Category {
			col.Labels = dedupe(col.Labels)
		}

		if err := col.Validate(); err != nil {
			return nil, err
		}

		if seen[lower] {
			return nil, tserr.New(tserr.ErrSchemaDuplicate, "duplicate column name").
				WithColumn(col.Name)
		}
		seen[lower] = true
	}

	return &Schema{Columns: cols}, nil
}

// dedupe removes duplicate labels while preserving first-seen order.
func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := labels[:0:0]
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Names returns the column names in schema order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the spec with the given name (case-insensitive), or nil.
func (s *Schema) Column(name string) *ColumnSpec {
	for i := range s.Columns {
		if strings.EqualFold(s.Columns[i].Name, name) {
			return &s.Columns[i]
		}
	}
	return nil
}

// NameColumn returns the name of the first column whose name contains
// "name" (case-insensitive), or empty string if there is none. This is
// the column the email derivation reads from.
func (s *Schema) NameColumn() string {
	for _, c := range s.Columns {
		if strings.Contains(strings.ToLower(c.Name), "name") {
			return c.Name
		}
	}
	return ""
}

// EmailColumn returns the name of the first column whose name contains
// "email" (case-insensitive), or empty string if there is none.
func (s *Schema) EmailColumn() string {
	for _, c := range s.Columns {
		if strings.Contains(strings.ToLower(c.Name), "email") {
			return c.Name
		}
	}
	return ""
}
