package cli

import (
	"fmt"
	"strings"

	"github.com/synthlab/tabsynth/internal/dataset"
)

const columnGap = "  "

// Table renders left-aligned columnar output with a header rule.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Short rows are padded, extra cells dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// String renders the table. Column widths fit the widest cell.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.columnWidths()

	var b strings.Builder
	t.writeLine(&b, t.headers, widths, Header)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	t.writeLine(&b, rule, widths, Dim)

	for _, row := range t.rows {
		t.writeLine(&b, row, widths, func(s string) string { return s })
	}
	return b.String()
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func (t *Table) writeLine(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		if pad := widths[i] - len(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		b.WriteString(style(cell))
	}
	b.WriteString("\n")
}

// Preview renders the first n rows of a dataset as a table, with a
// trailing note when more rows exist.
func Preview(ds *dataset.Dataset, n int) string {
	if ds == nil || len(ds.Columns) == 0 {
		return Dim("(empty dataset)") + "\n"
	}

	headers := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		headers[i] = fmt.Sprintf("%s (%s)", col.Name, col.Kind)
	}
	t := NewTable(headers...)

	shown := ds.Rows()
	if shown > n {
		shown = n
	}
	record := make([]string, len(ds.Columns))
	for row := 0; row < shown; row++ {
		for i, col := range ds.Columns {
			record[i] = col.Value(row)
		}
		t.AddRow(record...)
	}

	out := t.String()
	if ds.Rows() > shown {
		out += Dim(fmt.Sprintf("… %d more rows", ds.Rows()-shown)) + "\n"
	}
	return out
}
