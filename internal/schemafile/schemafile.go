// Package schemafile loads column schemas from YAML documents.
//
// A schema file looks like:
//
//	columns:
//	  - name: pid
//	    type: id
//	  - name: age
//	    type: int
//	    min: 18
//	    max: 65
//	  - name: gender
//	    type: category
//	    labels: [M, F]
//	  - name: doj
//	    type: date
//	    start: 2020-01-01
//	    end: 2023-12-31
//	  - name: bonus
//	    type: computed
//	    expr: salary * 0.1
package schemafile

import (
	"os"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/synthlab/tabsynth/internal/schema"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// File is the YAML document shape.
type File struct {
	Columns []Column `yaml:"columns"`
}

// Column is one column entry in a schema file. Min/Max cover both the
// integer and float types; the declared type decides which bound fields
// of the spec they land in.
type Column struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Labels []string `yaml:"labels"`
	Length int      `yaml:"length"`
	Start  string   `yaml:"start"`
	End    string   `yaml:"end"`
	Expr   string   `yaml:"expr"`
}

// Load reads and parses a schema file from disk.
func Load(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tserr.Wrap(tserr.ErrSourceRead, err, "cannot read schema file").
			With("path", path)
	}
	return Parse(data)
}

// Parse parses YAML schema document bytes.
func Parse(data []byte) (*schema.Schema, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, tserr.Wrap(tserr.ErrSchemaInvalid, err, "schema file is not valid YAML")
	}
	if len(f.Columns) == 0 {
		return nil, tserr.New(tserr.ErrSchemaEmpty, "schema file declares no columns")
	}

	specs := make([]schema.ColumnSpec, 0, len(f.Columns))
	for _, col := range f.Columns {
		spec, err := col.toSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return schema.New(specs)
}

func (c Column) toSpec() (schema.ColumnSpec, error) {
	kind, ok := schema.KindFromName(c.Type)
	if !ok {
		err := tserr.New(tserr.ErrSchemaInvalid, "unsupported column type").
			WithColumn(c.Name).
			With("type", c.Type)
		names := append([]string{"id", "computed"}, schema.KindNames...)
		if hint := tserr.SuggestSimilar(c.Type, names); hint != "" {
			err = err.WithHelp(hint)
		}
		return schema.ColumnSpec{}, err
	}

	spec := schema.ColumnSpec{
		Name:   c.Name,
		Kind:   kind,
		Labels: c.Labels,
		Length: c.Length,
		Expr:   c.Expr,
	}

	switch kind {
	case schema.Integer:
		if c.Min == nil || c.Max == nil {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrSchemaInvalid, "numeric column requires min and max").
				WithColumn(c.Name)
		}
		spec.MinInt = int64(*c.Min)
		spec.MaxInt = int64(*c.Max)

	case schema.Float:
		if c.Min == nil || c.Max == nil {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrSchemaInvalid, "numeric column requires min and max").
				WithColumn(c.Name)
		}
		spec.MinFloat = *c.Min
		spec.MaxFloat = *c.Max

	case schema.String:
		if spec.Length == 0 {
			spec.Length = schema.DefaultStringLength
		}

	case schema.Date:
		if c.Start == "" || c.End == "" {
			return schema.ColumnSpec{}, tserr.New(tserr.ErrSchemaInvalid, "date column requires start and end").
				WithColumn(c.Name)
		}
		start, err := dateparse.ParseStrict(c.Start)
		if err != nil {
			return schema.ColumnSpec{}, tserr.Wrap(tserr.ErrSchemaInvalid, err, "unparsable start date").
				WithColumn(c.Name).
				With("start", c.Start)
		}
		end, err := dateparse.ParseStrict(c.End)
		if err != nil {
			return schema.ColumnSpec{}, tserr.Wrap(tserr.ErrSchemaInvalid, err, "unparsable end date").
				WithColumn(c.Name).
				With("end", c.End)
		}
		spec.Start = start
		spec.End = end
	}

	return spec, nil
}
