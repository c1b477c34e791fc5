// Package generate materializes datasets from a validated schema: one
// polymorphic generator per column kind, a collision-free identifier
// allocator, and email derivation from name columns. Generators are pure
// functions of (spec, n, random source, provider) and never perform I/O.
package generate

// Provider supplies domain-realistic values (person names, cities, phone
// numbers, free-form words). It is an external capability: the engine
// only consumes it, so tests can inject a deterministic stub and the CLI
// can inject a locale-aware faker.
type Provider interface {
	Name() string
	City() string
	Phone() string
	Word() string
	Email() string
}
