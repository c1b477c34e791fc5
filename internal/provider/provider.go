// Package provider supplies realistic person-flavored values backed by
// gofakeit. The generate and augment packages only see the capability
// interface, so tests swap in deterministic stubs.
package provider

import (
	"github.com/brianvoe/gofakeit/v7"
)

// Faker produces realistic values from a seedable source.
type Faker struct {
	f *gofakeit.Faker
}

// New returns a Faker seeded for reproducible output. Seed 0 picks a
// random seed.
func New(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

func (p *Faker) Name() string  { return p.f.Name() }
func (p *Faker) City() string  { return p.f.City() }
func (p *Faker) Phone() string { return p.f.Phone() }
func (p *Faker) Word() string  { return p.f.Word() }
func (p *Faker) Email() string { return p.f.Email() }
