package tabsynth

import "github.com/synthlab/tabsynth/internal/generate"

// Config holds all configuration options for the Client.
type Config struct {
	// Seed fixes the random sources for reproducible output. 0 (the
	// default) seeds both the provider and the numeric source randomly,
	// so unseeded runs differ.
	Seed uint64

	// Provider overrides the realistic value provider. If nil, a
	// gofakeit-backed provider seeded with Seed is used.
	Provider generate.Provider
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithSeed fixes the random seed for reproducible datasets.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithProvider substitutes the realistic value provider, e.g. a
// deterministic stub in tests or a locale-specific faker.
func WithProvider(p Provider) Option {
	return func(c *Config) {
		c.Provider = p
	}
}
