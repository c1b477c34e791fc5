package sink

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// WriteCSV writes the dataset as headed CSV. Missing cells are written
// as empty fields.
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ds.Names()); err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot write header")
	}

	record := make([]string, len(ds.Columns))
	for row := 0; row < ds.Rows(); row++ {
		for i, col := range ds.Columns {
			record[i] = col.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot write row").
				With("row", row)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot flush output")
	}
	return nil
}

// SaveCSV writes the dataset to a CSV file, replacing any existing file.
func SaveCSV(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return tserr.Wrap(tserr.ErrSinkWrite, err, "cannot create output file").
			With("path", path)
	}

	if err := WriteCSV(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
