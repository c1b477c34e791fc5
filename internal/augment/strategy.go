// Package augment grows an existing dataset by statistically consistent
// new rows. Each column gets a per-run strategy, resolved once and
// reused for every new row; identifier and derived email columns are
// recomputed after the row loop so they stay consistent with the whole
// enlarged dataset.
package augment

import (
	"strings"

	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/tserr"
)

// Strategy is the per-column method used to synthesize augmented values.
type Strategy int

const (
	// StrategyDefault resolves to the column kind's default policy:
	// fitted for numeric, novel for string, bootstrap for everything else.
	StrategyDefault Strategy = iota
	// StrategyFitted draws from a Normal distribution fitted to the column.
	StrategyFitted
	// StrategyPerturb samples an existing value and adds small noise.
	StrategyPerturb
	// StrategyExisting samples uniformly from the distinct observed values.
	StrategyExisting
	// StrategyNovel samples from the distinct observed values but injects
	// a brand-new label with 10% probability, widening the category
	// domain over time. This deliberately simulates concept drift.
	StrategyNovel
	// StrategyBootstrap samples an existing value uniformly at random.
	StrategyBootstrap
)

// StrategyNames lists the parseable strategy names.
var StrategyNames = []string{"fitted", "perturb", "existing", "novel", "bootstrap"}

// String returns the strategy's parseable name.
func (s Strategy) String() string {
	switch s {
	case StrategyFitted:
		return "fitted"
	case StrategyPerturb:
		return "perturb"
	case StrategyExisting:
		return "existing"
	case StrategyNovel:
		return "novel"
	case StrategyBootstrap:
		return "bootstrap"
	default:
		return "default"
	}
}

// ParseStrategy parses a strategy name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "fitted":
		return StrategyFitted, nil
	case "perturb":
		return StrategyPerturb, nil
	case "existing":
		return StrategyExisting, nil
	case "novel":
		return StrategyNovel, nil
	case "bootstrap":
		return StrategyBootstrap, nil
	default:
		err := tserr.New(tserr.ErrStrategy, "unknown strategy").
			With("strategy", name)
		if hint := tserr.SuggestSimilar(name, StrategyNames); hint != "" {
			err = err.WithHelp(hint)
		}
		return 0, err
	}
}

// ValidStrategies returns the strategies that apply to a value kind, in
// display order.
func ValidStrategies(k dataset.Kind) []Strategy {
	switch k {
	case dataset.Int, dataset.Float:
		return []Strategy{StrategyFitted, StrategyPerturb, StrategyBootstrap}
	case dataset.String:
		return []Strategy{StrategyExisting, StrategyNovel, StrategyBootstrap}
	case dataset.Date:
		return []Strategy{StrategyExisting, StrategyBootstrap}
	default:
		return nil
	}
}

// DefaultStrategy returns the default policy for a value kind: fitted
// for numeric columns, novel for strings, bootstrap for everything else.
func DefaultStrategy(k dataset.Kind) Strategy {
	switch k {
	case dataset.Int, dataset.Float:
		return StrategyFitted
	case dataset.String:
		return StrategyNovel
	default:
		return StrategyBootstrap
	}
}

// resolve turns a requested strategy into the concrete strategy for a
// column, applying the default policy and rejecting strategies that do
// not apply to the column's kind.
func resolve(col *dataset.Column, requested Strategy) (Strategy, error) {
	if requested == StrategyDefault {
		return DefaultStrategy(col.Kind), nil
	}

	for _, s := range ValidStrategies(col.Kind) {
		if s == requested {
			return requested, nil
		}
	}

	return 0, tserr.New(tserr.ErrStrategy, "strategy does not apply to column kind").
		WithColumn(col.Name).
		With("strategy", requested.String()).
		With("kind", col.Kind.String())
}
