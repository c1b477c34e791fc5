// Package source reads existing datasets from delimited files, inferring
// a value kind per column. Inference tries, in order: integer, float
// (missing cells become NaN), calendar date, and finally plain string.
// A single non-conforming cell demotes the whole column to the next kind.
package source

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/schema"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// LoadCSV reads a headed CSV file into a dataset.
func LoadCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tserr.Wrap(tserr.ErrSourceRead, err, "cannot open dataset file").
			With("path", path)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, tserr.Wrap(tserr.ErrSourceRead, err, "cannot read dataset file").
			With("path", path)
	}
	return ds, nil
}

// ReadCSV reads headed CSV data into a dataset.
func ReadCSV(r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, tserr.New(tserr.ErrSourceRead, "dataset file is empty")
	}
	if err != nil {
		return nil, err
	}

	// Column lookups downstream are by name, so duplicate headers would
	// make two columns aliases of one another.
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		lower := strings.ToLower(name)
		if seen[lower] {
			return nil, tserr.New(tserr.ErrSourceRead, "duplicate column header").
				WithColumn(name)
		}
		seen[lower] = true
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range header {
			cells[i] = append(cells[i], record[i])
		}
	}

	columns := make([]*dataset.Column, len(header))
	for i, name := range header {
		columns[i] = inferColumn(name, cells[i])
	}
	return dataset.New(columns)
}

// inferColumn picks the narrowest kind that fits every cell.
func inferColumn(name string, cells []string) *dataset.Column {
	if ints, ok := tryInts(cells); ok {
		return dataset.NewInt(name, ints)
	}
	if floats, ok := tryFloats(cells); ok {
		return dataset.NewFloat(name, floats)
	}
	if ok := tryDates(cells); ok {
		return dataset.NewDate(name, canonicalDates(cells))
	}
	return dataset.NewString(name, cells)
}

// tryInts succeeds only when every cell is a whole number; a missing
// cell forces promotion to float so it can be carried as NaN.
func tryInts(cells []string) ([]int64, bool) {
	out := make([]int64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func tryFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		if c == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func tryDates(cells []string) bool {
	sawValue := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if _, err := time.Parse(schema.DateFormat, c); err != nil {
			return false
		}
		sawValue = true
	}
	return sawValue
}

// canonicalDates keeps missing cells as empty strings.
func canonicalDates(cells []string) []string {
	out := make([]string, len(cells))
	copy(out, cells)
	return out
}
