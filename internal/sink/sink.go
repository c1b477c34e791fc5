// Package sink writes generated datasets out: delimited text files or a
// SQL database table (SQLite or PostgreSQL). Database drivers are not
// imported here; callers register the driver and hand over an open
// *sql.DB, so tests can substitute an in-memory database.
package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// -----------------------------------------------------------------------------
// Dialect - SQL flavor differences
// -----------------------------------------------------------------------------

// Dialect captures the SQL differences between supported databases.
type Dialect struct {
	// Name as accepted on the command line and in config.
	Name string
	// Driver is the database/sql driver name to open connections with.
	Driver string
	// placeholder returns the bind marker for 1-based position i.
	placeholder func(i int) string
}

var dialects = map[string]*Dialect{
	"sqlite": {
		Name:        "sqlite",
		Driver:      "sqlite",
		placeholder: func(int) string { return "?" },
	},
	"postgres": {
		Name:        "postgres",
		Driver:      "postgres",
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
	},
}

// DialectNames lists the supported dialect names.
var DialectNames = []string{"postgres", "sqlite"}

// GetDialect returns the dialect with the given name.
func GetDialect(name string) (*Dialect, error) {
	if d, ok := dialects[strings.ToLower(name)]; ok {
		return d, nil
	}
	err := tserr.New(tserr.ErrSinkDialect, "unsupported database dialect").
		With("dialect", name)
	if hint := tserr.SuggestSimilar(name, DialectNames); hint != "" {
		err = err.WithHelp(hint)
	}
	return nil, err
}

// QuoteIdent quotes an identifier for use in DDL and DML.
func (d *Dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnType maps a dataset value kind to a SQL column type.
func (d *Dialect) columnType(k dataset.Kind) string {
	switch k {
	case dataset.Int:
		return "BIGINT"
	case dataset.Float:
		return "DOUBLE PRECISION"
	case dataset.Date:
		return "DATE"
	default:
		return "TEXT"
	}
}

// -----------------------------------------------------------------------------
// Table writer
// -----------------------------------------------------------------------------

// WriteTable creates the table (dropping any previous one with the same
// name) and inserts every row of the dataset in a single transaction.
func WriteTable(ctx context.Context, db *sql.DB, d *Dialect, table string, ds *dataset.Dataset) error {
	if len(ds.Columns) == 0 {
		return tserr.New(tserr.ErrSinkWrite, "dataset has no columns").
			With("table", table)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot begin transaction").
			With("table", table)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+d.QuoteIdent(table)); err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot drop previous table").
			With("table", table)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL(d, table, ds)); err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot create table").
			With("table", table)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(d, table, ds))
	if err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot prepare insert").
			With("table", table)
	}
	defer stmt.Close()

	args := make([]any, len(ds.Columns))
	for row := 0; row < ds.Rows(); row++ {
		for i, col := range ds.Columns {
			args[i] = cellValue(col, row)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return tserr.Wrap(tserr.ErrSinkWrite, err, "insert failed").
				With("table", table).
				With("row", row)
		}
	}

	if err := tx.Commit(); err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot commit").
			With("table", table)
	}
	return nil
}

func createTableSQL(d *Dialect, table string, ds *dataset.Dataset) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(d.QuoteIdent(table))
	b.WriteString(" (\n")
	for i, col := range ds.Columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  ")
		b.WriteString(d.QuoteIdent(col.Name))
		b.WriteString(" ")
		b.WriteString(d.columnType(col.Kind))
	}
	b.WriteString("\n)")
	return b.String()
}

func insertSQL(d *Dialect, table string, ds *dataset.Dataset) string {
	names := make([]string, len(ds.Columns))
	marks := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		names[i] = d.QuoteIdent(col.Name)
		marks[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table),
		strings.Join(names, ", "),
		strings.Join(marks, ", "),
	)
}

// cellValue returns the driver-facing value for one cell. Missing cells
// (NaN floats, empty strings in date columns) become NULL.
func cellValue(col *dataset.Column, row int) any {
	switch col.Kind {
	case dataset.Int:
		return col.Ints[row]
	case dataset.Float:
		v := col.Floats[row]
		if v != v { // NaN
			return nil
		}
		return v
	case dataset.Date:
		if col.Strings[row] == "" {
			return nil
		}
		return col.Strings[row]
	default:
		return col.Strings[row]
	}
}
