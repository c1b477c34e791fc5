package generate

import (
	"math/rand/v2"
	"strings"

	"github.com/synthlab/tabsynth/internal/compute"
	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/schema"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// Engine materializes datasets from a validated schema. It holds the
// shared random source and the realistic-value provider; a single engine
// serves one generation call at a time.
type Engine struct {
	provider Provider
	rng      *rand.Rand
	eval     *compute.Evaluator
}

// NewEngine creates an engine. The provider must be non-nil whenever the
// schema contains semantic-role or email columns.
func NewEngine(provider Provider, rng *rand.Rand) *Engine {
	return &Engine{
		provider: provider,
		rng:      rng,
		eval:     compute.NewEvaluator(),
	}
}

// Generate produces a dataset with exactly rows values per column, in
// schema order. Independent columns are generated first; identifier,
// email, and computed columns are filled in later passes because they
// depend on the rest of the row (or on nothing random at all).
func (e *Engine) Generate(s *schema.Schema, rows int) (*dataset.Dataset, error) {
	if rows < 1 {
		return nil, tserr.New(tserr.ErrRowCount, "row count must be at least 1").
			With("rows", rows)
	}

	cols := make([]*dataset.Column, len(s.Columns))

	// Pass 1: independent columns.
	for i := range s.Columns {
		spec := &s.Columns[i]
		if spec.Kind == schema.Identifier || spec.Kind == schema.Computed || isEmailName(spec.Name) {
			continue
		}
		cols[i] = e.column(spec, rows)
	}

	// Pass 2: identifier columns, allocated fresh from the base.
	for i := range s.Columns {
		spec := &s.Columns[i]
		if spec.Kind == schema.Identifier {
			cols[i] = identifierColumn(spec, rows)
		}
	}

	// Pass 3: email columns, derived from the name column when one
	// exists, otherwise independent provider emails.
	nameCol := s.NameColumn()
	if isEmailName(nameCol) {
		nameCol = ""
	}
	for i := range s.Columns {
		spec := &s.Columns[i]
		if spec.Kind == schema.Computed || !isEmailName(spec.Name) {
			continue
		}
		if source := columnByName(cols, s, nameCol); source != nil {
			cols[i] = dataset.NewString(spec.Name, DeriveEmails(columnStrings(source)))
			continue
		}
		values := make([]string, rows)
		for j := range values {
			values[j] = e.provider.Email()
		}
		cols[i] = dataset.NewString(spec.Name, values)
	}

	// Pass 4: computed columns, in schema order, each seeing every
	// column materialized so far.
	for i := range s.Columns {
		spec := &s.Columns[i]
		if spec.Kind != schema.Computed {
			continue
		}
		partial := &dataset.Dataset{Columns: materialized(cols)}
		col, err := e.eval.Column(spec.Name, spec.Expr, partial)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return dataset.New(cols)
}

// column generates one independent column for the given spec.
func (e *Engine) column(spec *schema.ColumnSpec, rows int) *dataset.Column {
	switch spec.Kind {
	case schema.Integer:
		return intColumn(spec, rows, e.rng)
	case schema.Float:
		return floatColumn(spec, rows, e.rng)
	case schema.Category:
		return categoryColumn(spec, rows, e.rng)
	case schema.Date:
		return dateColumn(spec, rows, e.rng)
	default:
		return stringColumn(spec, rows, e.rng, e.provider)
	}
}

// isEmailName reports whether a column name marks an email column.
func isEmailName(name string) bool {
	return strings.Contains(strings.ToLower(name), "email")
}

// columnByName finds the generated column for a schema column name.
func columnByName(cols []*dataset.Column, s *schema.Schema, name string) *dataset.Column {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return cols[i]
		}
	}
	return nil
}

// columnStrings renders every value of a column as a string.
func columnStrings(c *dataset.Column) []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}
	return out
}

// materialized filters out columns not yet generated.
func materialized(cols []*dataset.Column) []*dataset.Column {
	out := make([]*dataset.Column, 0, len(cols))
	for _, c := range cols {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
