package generate

import (
	"fmt"
	"math/rand"
)

// Option customizes a Baskets run.
// Option constructors panic on meaningless inputs; Baskets itself only
// returns sentinel errors.
type Option func(*config)

// Affinity is a bundle of items bought together with probability P.
type Affinity struct {
	Items []string
	P     float64
}

type config struct {
	rng        *rand.Rand
	catalog    []string
	p          float64
	affinities []Affinity
	noise      float64
	idFn       func(int) string
}

// Defaults used when no option overrides them.
const (
	DefaultItemProbability = 0.15
	DefaultSeed            = 1
)

func newConfig(opts []Option) config {
	c := config{
		rng:  rand.New(rand.NewSource(DefaultSeed)),
		p:    DefaultItemProbability,
		idFn: func(i int) string { return fmt.Sprintf("T%05d", i+1) },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithCatalog sets the product labels items are drawn from, in draw order.
// The default is the built-in catalog.
func WithCatalog(items ...string) Option {
	cp := make([]string, len(items))
	copy(cp, items)
	return func(c *config) {
		c.catalog = cp
	}
}

// WithItemProbability sets the independent inclusion probability of each
// catalog item.
func WithItemProbability(p float64) Option {
	return func(c *config) {
		c.p = p
	}
}

// WithAffinity adds a bundle that joins a basket with probability p.
// Panics when items is empty.
func WithAffinity(p float64, items ...string) Option {
	if len(items) == 0 {
		panic("generate: WithAffinity without items")
	}
	a := Affinity{Items: append([]string(nil), items...), P: p}
	return func(c *config) {
		c.affinities = append(c.affinities, a)
	}
}

// WithNoise sets the probability that a record receives one defect.
func WithNoise(p float64) Option {
	return func(c *config) {
		c.noise = p
	}
}

// WithIDScheme sets the record ID for index i. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("generate: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}
