// Package compute evaluates computed-column expressions. An expression
// is a small JavaScript snippet evaluated once per row with the row's
// sibling column values bound as globals, e.g. "salary * 0.1" or
// "grade == 'A' ? 1 : 0". Expressions are pure value computations; the
// runtime exposes no host functions and no I/O.
package compute

import (
	"github.com/dop251/goja"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// Evaluator evaluates expressions against dataset rows. Not safe for
// concurrent use; generation is synchronous so a single evaluator per
// engine suffices.
type Evaluator struct {
	vm *goja.Runtime
}

// NewEvaluator creates an expression evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{vm: goja.New()}
}

// Column evaluates expr once per row of ds and returns the resulting
// column. Rows see sibling columns by name: ints and floats as numbers,
// strings and dates as strings. The column kind is Float when every row
// evaluates to a number, String otherwise.
func (e *Evaluator) Column(name, expr string, ds *dataset.Dataset) (*dataset.Column, error) {
	program, err := goja.Compile(name, expr, true)
	if err != nil {
		return nil, tserr.Wrap(tserr.ErrComputeEval, err, "failed to compile expression").
			WithColumn(name).
			With("expr", expr)
	}

	rows := ds.Rows()
	floats := make([]float64, 0, rows)
	strings := make([]string, 0, rows)
	numeric := true

	for i := 0; i < rows; i++ {
		e.bindRow(ds, i)

		value, err := e.vm.RunProgram(program)
		if err != nil {
			return nil, tserr.Wrap(tserr.ErrComputeEval, err, "expression evaluation failed").
				WithColumn(name).
				With("row", i)
		}

		switch v := value.Export().(type) {
		case int64:
			floats = append(floats, float64(v))
			strings = append(strings, value.String())
		case float64:
			floats = append(floats, v)
			strings = append(strings, value.String())
		case string:
			numeric = false
			strings = append(strings, v)
		case bool:
			numeric = false
			strings = append(strings, value.String())
		default:
			return nil, tserr.New(tserr.ErrComputeKind, "expression result must be a number, string, or boolean").
				WithColumn(name).
				With("row", i).
				With("got", value.ExportType().String())
		}
	}

	if numeric {
		return dataset.NewFloat(name, floats[:rows]), nil
	}
	return dataset.NewString(name, strings[:rows]), nil
}

// bindRow sets each column's row-i value as a global in the VM.
func (e *Evaluator) bindRow(ds *dataset.Dataset, i int) {
	for _, col := range ds.Columns {
		switch col.Kind {
		case dataset.Int:
			e.vm.Set(col.Name, col.Ints[i])
		case dataset.Float:
			e.vm.Set(col.Name, col.Floats[i])
		default:
			e.vm.Set(col.Name, col.Strings[i])
		}
	}
}
