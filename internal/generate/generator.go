package generate

import (
	"math"
	"math/rand/v2"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/schema"
)

// alphanumeric is the charset for random fixed-length strings.
const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// intColumn produces n uniform random integers in [min, max] inclusive.
func intColumn(spec *schema.ColumnSpec, n int, rng *rand.Rand) *dataset.Column {
	values := make([]int64, n)
	span := spec.MaxInt - spec.MinInt + 1
	for i := range values {
		values[i] = spec.MinInt + rng.Int64N(span)
	}
	return dataset.NewInt(spec.Name, values)
}

// floatColumn produces n uniform random floats in [min, max], rounded to
// 2 decimal places.
func floatColumn(spec *schema.ColumnSpec, n int, rng *rand.Rand) *dataset.Column {
	values := make([]float64, n)
	span := spec.MaxFloat - spec.MinFloat
	for i := range values {
		v := spec.MinFloat + rng.Float64()*span
		values[i] = math.Round(v*100) / 100
	}
	return dataset.NewFloat(spec.Name, values)
}

// categoryColumn draws n labels uniformly with replacement.
func categoryColumn(spec *schema.ColumnSpec, n int, rng *rand.Rand) *dataset.Column {
	values := make([]string, n)
	for i := range values {
		values[i] = spec.Labels[rng.IntN(len(spec.Labels))]
	}
	return dataset.NewString(spec.Name, values)
}

// stringColumn produces n values for a string column. Columns whose name
// signals a semantic role (name, city, phone) delegate to the provider
// and ignore the declared length; everything else gets fixed-length
// random alphanumerics.
func stringColumn(spec *schema.ColumnSpec, n int, rng *rand.Rand, provider Provider) *dataset.Column {
	values := make([]string, n)
	switch schema.RoleOf(spec.Name) {
	case schema.RoleName:
		for i := range values {
			values[i] = provider.Name()
		}
	case schema.RoleCity:
		for i := range values {
			values[i] = provider.City()
		}
	case schema.RolePhone:
		for i := range values {
			values[i] = provider.Phone()
		}
	default:
		for i := range values {
			values[i] = randomString(spec.Length, rng)
		}
	}
	return dataset.NewString(spec.Name, values)
}

// randomString returns a random alphanumeric string of the given length.
func randomString(length int, rng *rand.Rand) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[rng.IntN(len(alphanumeric))]
	}
	return string(b)
}

// dateColumn produces n uniform random dates in [start, end] inclusive,
// formatted as YYYY-MM-DD.
func dateColumn(spec *schema.ColumnSpec, n int, rng *rand.Rand) *dataset.Column {
	days := int(spec.End.Sub(spec.Start).Hours() / 24)
	values := make([]string, n)
	for i := range values {
		d := spec.Start.AddDate(0, 0, rng.IntN(days+1))
		values[i] = d.Format(schema.DateFormat)
	}
	return dataset.NewDate(spec.Name, values)
}

// identifierColumn allocates n fresh identifiers starting at the base.
func identifierColumn(spec *schema.ColumnSpec, n int) *dataset.Column {
	return dataset.NewInt(spec.Name, AllocateIDs(n, nil))
}
