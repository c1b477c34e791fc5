package augment

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/generate"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// novelProbability is the chance per draw that a novel-strategy column
// receives a brand-new label instead of an observed one.
const novelProbability = 0.1

// Planner grows datasets. It shares the generation primitives: the same
// identifier allocator, email derivation, and realistic-value provider.
type Planner struct {
	provider generate.Provider
	rng      *rand.Rand
}

// NewPlanner creates a planner backed by the given provider and random
// source.
func NewPlanner(provider generate.Provider, rng *rand.Rand) *Planner {
	return &Planner{provider: provider, rng: rng}
}

// columnPlan is the per-column state bound once per augmentation run and
// reused for every new row; strategies are never re-resolved mid-run.
type columnPlan struct {
	col      *dataset.Column // original column (sampling source)
	idx      int             // position in the dataset; appends are positional
	strategy Strategy
	stats    Stats
	distinct []string
	observed map[string]bool // novel labels must not collide with these
	integral bool            // round fitted/perturbed values to integers
	values   []any           // buffered new values, appended after the row loop
}

// Augment returns a new dataset holding the original rows (unchanged,
// except identifier and derived email columns) followed by additional
// synthesized rows. Strategy choices for columns absent from strategies
// follow the default policy.
func (p *Planner) Augment(ds *dataset.Dataset, additional int, strategies map[string]Strategy) (*dataset.Dataset, error) {
	if additional < 1 {
		return nil, tserr.New(tserr.ErrAugmentInvalid, "additional rows must be at least 1").
			With("rows", additional)
	}
	if len(ds.Columns) == 0 {
		return nil, tserr.New(tserr.ErrAugmentEmpty, "dataset has no columns")
	}

	requested, err := normalizeStrategies(ds, strategies)
	if err != nil {
		return nil, err
	}

	idCol := ds.IdentifierColumn()
	idIdx := -1

	// Bind a plan per column, resolving each strategy exactly once.
	// Plans address columns by position so same-named columns each
	// receive their own values.
	plans := make([]*columnPlan, 0, len(ds.Columns))
	for i, col := range ds.Columns {
		if col == idCol {
			idIdx = i
			continue
		}

		strategy, err := resolve(col, requested[strings.ToLower(col.Name)])
		if err != nil {
			return nil, err
		}

		plan := &columnPlan{
			col:      col,
			idx:      i,
			strategy: strategy,
			integral: col.Kind == dataset.Int || strings.ToLower(col.Name) == "age",
		}

		switch strategy {
		case StrategyFitted:
			stats, err := Fit(ds, []string{col.Name})
			if err != nil {
				return nil, err
			}
			plan.stats = stats[col.Name]
		case StrategyExisting, StrategyNovel:
			plan.distinct = col.Distinct()
			if len(plan.distinct) == 0 {
				return nil, tserr.New(tserr.ErrAugmentUnfit, "column has no observed values").
					WithColumn(col.Name)
			}
			plan.observed = make(map[string]bool, len(plan.distinct))
			for _, v := range plan.distinct {
				plan.observed[v] = true
			}
		}

		plans = append(plans, plan)
	}

	// Row loop: every new row draws one value per planned column.
	// Sampling always reads the original rows, never earlier new rows.
	for row := 0; row < additional; row++ {
		for _, plan := range plans {
			plan.values = append(plan.values, p.value(plan))
		}
	}

	out := ds.Clone()
	for _, plan := range plans {
		appendValues(out.Columns[plan.idx], plan.values)
	}

	// Identifier values are recomputed for exactly the new rows, seeded
	// with every identifier already present in the original dataset.
	if idIdx >= 0 {
		appendIdentifiers(out.Columns[idIdx], additional, identifierSet(idCol))
	}

	// When both a name and an email column exist the whole email column
	// is rederived so emails never desynchronize from names.
	if nameCol, emailCol := out.NameColumn(), out.EmailColumn(); nameCol != nil && emailCol != nil && nameCol != emailCol {
		names := make([]string, nameCol.Len())
		for i := range names {
			names[i] = nameCol.Value(i)
		}
		emailCol.Kind = dataset.String
		emailCol.Strings = generate.DeriveEmails(names)
		emailCol.Ints = nil
		emailCol.Floats = nil
	}

	return out, nil
}

// value draws one new value for a planned column.
func (p *Planner) value(plan *columnPlan) any {
	col := plan.col

	switch plan.strategy {
	case StrategyFitted:
		v := p.rng.NormFloat64()*plan.stats.StdDev + plan.stats.Mean
		return numericValue(col, v, plan.integral)

	case StrategyPerturb:
		i := p.rng.IntN(col.Len())
		if plan.integral {
			jitter := float64(p.rng.IntN(5) - 2) // -2..2
			return numericValue(col, sampleNumeric(col, i)+jitter, true)
		}
		return numericValue(col, sampleNumeric(col, i)+p.rng.NormFloat64(), false)

	case StrategyExisting:
		return plan.distinct[p.rng.IntN(len(plan.distinct))]

	case StrategyNovel:
		if p.rng.Float64() < novelProbability {
			if word := capitalize(p.provider.Word()); !plan.observed[word] {
				return word
			}
		}
		return plan.distinct[p.rng.IntN(len(plan.distinct))]

	default: // StrategyBootstrap
		i := p.rng.IntN(col.Len())
		switch col.Kind {
		case dataset.Int:
			return col.Ints[i]
		case dataset.Float:
			return col.Floats[i]
		default:
			return col.Strings[i]
		}
	}
}

// sampleNumeric reads row i of a numeric column as float64.
func sampleNumeric(col *dataset.Column, i int) float64 {
	if col.Kind == dataset.Int {
		return float64(col.Ints[i])
	}
	return col.Floats[i]
}

// numericValue rounds and casts a drawn value to the column's value-kind.
// Integral overrides (int columns, and any column named age) round to
// whole numbers even when stored as floats.
func numericValue(col *dataset.Column, v float64, integral bool) any {
	if integral {
		v = math.Round(v)
	}
	if col.Kind == dataset.Int {
		return int64(v)
	}
	return v
}

// appendValues appends buffered new values to a cloned column.
func appendValues(col *dataset.Column, values []any) {
	for _, v := range values {
		col.Append(v)
	}
}

// appendIdentifiers allocates and appends fresh identifiers matching the
// identifier column's value-kind.
func appendIdentifiers(col *dataset.Column, n int, existing map[int64]bool) {
	for _, id := range generate.AllocateIDs(n, existing) {
		switch col.Kind {
		case dataset.Int:
			col.Append(id)
		case dataset.Float:
			col.Append(float64(id))
		default:
			col.Append(strconv.FormatInt(id, 10))
		}
	}
}

// identifierSet collects the identifiers already present in a column.
// Non-integer identifier columns contribute their parseable values;
// missing values are skipped.
func identifierSet(col *dataset.Column) map[int64]bool {
	set := make(map[int64]bool, col.Len())
	switch col.Kind {
	case dataset.Int:
		for _, v := range col.Ints {
			set[v] = true
		}
	case dataset.Float:
		for _, v := range col.Floats {
			if !math.IsNaN(v) {
				set[int64(v)] = true
			}
		}
	}
	return set
}

// normalizeStrategies lowercases strategy keys and rejects entries
// naming unknown columns.
func normalizeStrategies(ds *dataset.Dataset, strategies map[string]Strategy) (map[string]Strategy, error) {
	out := make(map[string]Strategy, len(strategies))
	for name, strategy := range strategies {
		if ds.Column(name) == nil {
			err := tserr.New(tserr.ErrStrategy, "strategy names an unknown column").
				WithColumn(name)
			if hint := tserr.SuggestSimilar(name, ds.Names()); hint != "" {
				err = err.WithHelp(hint)
			}
			return nil, err
		}
		out[strings.ToLower(name)] = strategy
	}
	return out, nil
}

// capitalize uppercases the first rune of a word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
