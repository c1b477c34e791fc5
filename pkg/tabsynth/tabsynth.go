// Package tabsynth is the public entry point for the tabsynth synthetic
// data engine. It wraps schema-driven generation, prompt parsing, and
// dataset augmentation behind one client.
//
// Example:
//
//	client := tabsynth.New(tabsynth.WithSeed(42))
//
//	ds, err := client.GenerateFromPrompt(
//	    "100 rows, columns: name string, age int 20-50, gender category M/F")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	more, err := client.Augment(ds, 50, map[string]string{"age": "perturb"})
package tabsynth

import (
	"math/rand/v2"

	"github.com/synthlab/tabsynth/internal/augment"
	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/generate"
	"github.com/synthlab/tabsynth/internal/prompt"
	"github.com/synthlab/tabsynth/internal/provider"
	"github.com/synthlab/tabsynth/internal/schema"
	"github.com/synthlab/tabsynth/internal/schemafile"
	"github.com/synthlab/tabsynth/internal/source"
)

// Re-exported core types; the internal packages hold the behavior.
type (
	// Schema is an ordered, validated sequence of column specs.
	Schema = schema.Schema
	// ColumnSpec describes one column to generate.
	ColumnSpec = schema.ColumnSpec
	// Dataset is an ordered sequence of same-length named columns.
	Dataset = dataset.Dataset
	// Provider supplies realistic person-flavored values.
	Provider = generate.Provider
	// Strategy selects how augmented values are produced per column.
	Strategy = augment.Strategy
)

// Client binds a value provider and a random source to the engine.
// A zero-value Client is not usable; construct with New.
type Client struct {
	engine  *generate.Engine
	planner *augment.Planner
}

// New creates a Client. With no options it uses a gofakeit-backed
// provider and a randomly seeded source.
func New(opts ...Option) *Client {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	p := cfg.Provider
	if p == nil {
		p = provider.New(cfg.Seed)
	}

	// Seed 0 picks random state, matching provider.New.
	s1, s2 := cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15
	if cfg.Seed == 0 {
		s1, s2 = rand.Uint64(), rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s1, s2))

	return &Client{
		engine:  generate.NewEngine(p, rng),
		planner: augment.NewPlanner(p, rng),
	}
}

// Generate produces a dataset with rows values per column, in schema
// order.
func (c *Client) Generate(s *Schema, rows int) (*Dataset, error) {
	return c.engine.Generate(s, rows)
}

// ParsePrompt parses a one-line textual description into a schema and a
// row count without generating anything.
func (c *Client) ParsePrompt(text string) (*Schema, int, error) {
	return prompt.Parse(text)
}

// GenerateFromPrompt parses a prompt and generates the described
// dataset.
func (c *Client) GenerateFromPrompt(text string) (*Dataset, error) {
	s, rows, err := prompt.Parse(text)
	if err != nil {
		return nil, err
	}
	return c.engine.Generate(s, rows)
}

// Augment returns a new dataset holding the original rows plus
// additional synthesized rows. Strategy names are per column; columns
// absent from the map follow the default policy (fitted for numeric
// columns, existing-plus-novel for strings, bootstrap otherwise).
func (c *Client) Augment(ds *Dataset, additional int, strategies map[string]string) (*Dataset, error) {
	parsed := make(map[string]Strategy, len(strategies))
	for col, name := range strategies {
		s, err := augment.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		parsed[col] = s
	}
	return c.planner.Augment(ds, additional, parsed)
}

// LoadSchema reads a YAML schema file.
func (c *Client) LoadSchema(path string) (*Schema, error) {
	return schemafile.Load(path)
}

// LoadDataset reads a headed CSV file, inferring column kinds.
func (c *Client) LoadDataset(path string) (*Dataset, error) {
	return source.LoadCSV(path)
}
