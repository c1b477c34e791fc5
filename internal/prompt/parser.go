// Package prompt parses one-line textual dataset descriptions into a
// schema plus a row count.
//
// Grammar (informal):
//
//	prompt    := rowcount "columns:" columndef {"," columndef}
//	columndef := name type [args]
//	type      := int | float | category | string | date
//
// int/float take a "min-max" range, category takes "A/B/C" labels
// (uppercased), date takes a "start:end" pair. The whole prompt is
// lowercased before tokenizing; digits in the rowcount section are
// extracted and concatenated, so "give me 25 rows" reads as 25.
// Any malformed column definition aborts the whole parse; a partial
// schema is never returned.
package prompt

import (
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/synthlab/tabsynth/internal/schema"
	"github.com/synthlab/tabsynth/internal/tserr"
)

const separator = "columns:"

// Parse parses a prompt into a schema and a row count.
func Parse(text string) (*schema.Schema, int, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	parts := strings.Split(lowered, separator)
	if len(parts) != 2 {
		return nil, 0, tserr.New(tserr.ErrPromptSeparator, "prompt must contain exactly one 'columns:' section").
			WithFragment(text).
			WithHelp("example: 5 rows, columns: age int 20-50, gender category M/F")
	}

	rows, err := parseRowCount(parts[0])
	if err != nil {
		return nil, 0, err
	}

	defs := strings.Split(strings.TrimSpace(parts[1]), ",")
	specs := make([]schema.ColumnSpec, 0, len(defs))
	for _, def := range defs {
		spec, err := parseColumnDef(strings.TrimSpace(def))
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, spec)
	}

	s, err := schema.New(specs)
	if err != nil {
		return nil, 0, err
	}
	return s, rows, nil
}

// parseRowCount extracts and concatenates every digit in the section
// before "columns:". "5 rows" and "generate 5" both yield 5.
func parseRowCount(section string) (int, error) {
	var digits strings.Builder
	for _, r := range section {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, tserr.New(tserr.ErrPromptRowCount, "prompt does not specify a row count").
			WithFragment(strings.TrimSpace(section))
	}

	rows, err := strconv.Atoi(digits.String())
	if err != nil || rows < 1 {
		return 0, tserr.New(tserr.ErrPromptRowCount, "row count must be a positive integer").
			WithFragment(strings.TrimSpace(section))
	}
	return rows, nil
}

func parseColumnDef(def string) (schema.ColumnSpec, error) {
	tokens := strings.Fields(def)
	if len(tokens) < 2 {
		return schema.ColumnSpec{}, tserr.New(tserr.ErrPromptColumn, "column definition needs a name and a type").
			WithFragment(def)
	}

	name, typeName := tokens[0], tokens[1]
	kind, ok := schema.KindFromName(typeName)
	if !ok {
		err := tserr.New(tserr.ErrPromptType, "unsupported column type").
			WithFragment(def).
			With("type", typeName)
		if hint := tserr.SuggestSimilar(typeName, schema.KindNames); hint != "" {
			err = err.WithHelp(hint)
		}
		return schema.ColumnSpec{}, err
	}

	spec := schema.ColumnSpec{Name: name, Kind: kind}

	switch kind {
	case schema.Integer, schema.Float:
		if len(tokens) < 3 {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrPromptColumn, "numeric column is missing its min-max range").
				WithColumn(name).
				WithFragment(def)
		}
		if err := parseRange(&spec, tokens[2], def); err != nil {
			return schema.ColumnSpec{}, err
		}

	case schema.Category:
		if len(tokens) < 3 {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrPromptColumn, "category column is missing its label list").
				WithColumn(name).
				WithFragment(def)
		}
		for _, label := range strings.Split(tokens[2], "/") {
			label = strings.ToUpper(strings.TrimSpace(label))
			if label != "" {
				spec.Labels = append(spec.Labels, label)
			}
		}

	case schema.Date:
		if len(tokens) < 3 {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrPromptColumn, "date column is missing its start:end range").
				WithColumn(name).
				WithFragment(def)
		}
		if err := parseDateRange(&spec, tokens[2], def); err != nil {
			return schema.ColumnSpec{}, err
		}

	case schema.String:
		spec.Length = schema.DefaultStringLength

	case schema.Identifier:
		// 'id' parses as a type name but only pid/id column names
		// trigger identifier behavior; no args either way.
	}

	return spec, nil
}

// parseRange fills the numeric bounds from a "min-max" token. The split
// is on the first '-' after a leading sign, so "-5-5" reads as -5..5.
func parseRange(spec *schema.ColumnSpec, token, def string) error {
	sep := strings.Index(token[1:], "-")
	if sep < 0 {
		return tserr.New(tserr.ErrPromptColumn, "numeric range must look like min-max").
			WithColumn(spec.Name).
			WithFragment(def)
	}
	sep++ // offset for the skipped leading rune

	minVal, errMin := strconv.ParseFloat(token[:sep], 64)
	maxVal, errMax := strconv.ParseFloat(token[sep+1:], 64)
	if errMin != nil || errMax != nil {
		return tserr.New(tserr.ErrPromptColumn, "numeric range bounds must be numbers").
			WithColumn(spec.Name).
			WithFragment(def)
	}

	if spec.Kind == schema.Integer {
		spec.MinInt = int64(minVal)
		spec.MaxInt = int64(maxVal)
	} else {
		spec.MinFloat = minVal
		spec.MaxFloat = maxVal
	}
	return nil
}

func parseDateRange(spec *schema.ColumnSpec, token, def string) error {
	first, second, ok := strings.Cut(token, ":")
	if !ok {
		return tserr.New(tserr.ErrPromptColumn, "date range must look like start:end").
			WithColumn(spec.Name).
			WithFragment(def).
			WithHelp("example: doj date 2020-01-01:2023-12-31")
	}

	start, err := dateparse.ParseStrict(first)
	if err != nil {
		return tserr.New(tserr.ErrPromptColumn, "unparsable start date").
			WithColumn(spec.Name).
			WithFragment(def).
			With("start", first)
	}
	end, err := dateparse.ParseStrict(second)
	if err != nil {
		return tserr.New(tserr.ErrPromptColumn, "unparsable end date").
			WithColumn(spec.Name).
			WithFragment(def).
			With("end", second)
	}

	spec.Start = start
	spec.End = end
	return nil
}
