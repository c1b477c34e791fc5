package augment

import (
	"math"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// Stats holds the fitted summary statistics for one numeric column.
// StdDev is floored at 1 when the sample is degenerate, so the
// downstream sampling distribution never collapses to zero width.
type Stats struct {
	Mean   float64
	StdDev float64
	Count  int
}

// Fit computes per-column statistics for the given numeric columns.
// Missing values (NaN) are excluded before fitting. A column with no
// observed values cannot be fit and fails with an augmentation error.
func Fit(ds *dataset.Dataset, numericColumns []string) (map[string]Stats, error) {
	stats := make(map[string]Stats, len(numericColumns))

	for _, name := range numericColumns {
		col := ds.Column(name)
		if col == nil || !col.IsNumeric() {
			return nil, tserr.New(tserr.ErrAugmentUnfit, "cannot fit non-numeric column").
				WithColumn(name)
		}

		observed := observedValues(col)
		if len(observed) == 0 {
			return nil, tserr.New(tserr.ErrAugmentUnfit, "column has no observed values").
				WithColumn(name)
		}

		stats[name] = fitValues(observed)
	}

	return stats, nil
}

// observedValues extracts the non-missing values of a numeric column.
func observedValues(col *dataset.Column) []float64 {
	if col.Kind == dataset.Int {
		out := make([]float64, len(col.Ints))
		for i, v := range col.Ints {
			out[i] = float64(v)
		}
		return out
	}

	out := make([]float64, 0, len(col.Floats))
	for _, v := range col.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// fitValues computes mean and sample standard deviation, flooring the
// deviation at 1 for degenerate samples.
func fitValues(values []float64) Stats {
	n := len(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	std := 1.0
	if n > 1 {
		var sq float64
		for _, v := range values {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(n-1))
		if std <= 0 {
			std = 1
		}
	}

	return Stats{Mean: mean, StdDev: std, Count: n}
}
