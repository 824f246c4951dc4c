package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/preprocess"
)

var (
	// ErrTooFewBaskets is returned when fewer than one basket is requested.
	ErrTooFewBaskets = errors.New("generate: basket count too small")

	// ErrInvalidProbability is returned when a probability lies outside [0,1].
	ErrInvalidProbability = errors.New("generate: probability out of range")

	// ErrEmptyCatalog is returned when there is nothing to draw from.
	ErrEmptyCatalog = errors.New("generate: empty catalog")
)

// UnknownItem is the label noise uses for a product outside any catalog.
const UnknownItem = "unknown item"

// Baskets draws n raw records.
//
// Draw order per record is fixed (catalog items in order, then affinities in
// the order they were added, then noise), so a seed always yields the same
// data.
func Baskets(n int, opts ...Option) ([]preprocess.Record, error) {
	c := newConfig(opts)
	if err := c.validate(n); err != nil {
		return nil, err
	}

	out := make([]preprocess.Record, n)
	for i := range out {
		var items []string
		for _, it := range c.catalog {
			if c.rng.Float64() < c.p {
				items = append(items, it)
			}
		}
		for _, a := range c.affinities {
			if c.rng.Float64() < a.P {
				items = append(items, a.Items...)
			}
		}
		if c.noise > 0 && c.rng.Float64() < c.noise {
			items = c.dirty(items)
		}
		out[i] = preprocess.Record{ID: c.idFn(i), Items: items}
	}

	return out, nil
}

// Transactions draws n records and returns them as transactions, with
// labels normalized and repeats collapsed but no catalog check.
func Transactions(n int, opts ...Option) ([]itemset.Transaction, error) {
	recs, err := Baskets(n, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]itemset.Transaction, len(recs))
	for i, rec := range recs {
		out[i] = itemset.Transaction{ID: rec.ID, Items: itemset.FromStrings(rec.Items...)}
	}

	return out, nil
}

func (c *config) validate(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrTooFewBaskets, n)
	}
	if c.catalog == nil {
		c.catalog = defaultCatalog()
	}
	if len(c.catalog) == 0 {
		return ErrEmptyCatalog
	}
	if !inUnit(c.p) {
		return fmt.Errorf("%w: item probability %.4f", ErrInvalidProbability, c.p)
	}
	if !inUnit(c.noise) {
		return fmt.Errorf("%w: noise %.4f", ErrInvalidProbability, c.noise)
	}
	for _, a := range c.affinities {
		if !inUnit(a.P) {
			return fmt.Errorf("%w: affinity %v %.4f", ErrInvalidProbability, a.Items, a.P)
		}
	}

	return nil
}

// dirty applies one defect: an upper-cased copy of an item, a repeated item,
// or an unknown product. Empty baskets can only gain the unknown product.
func (c *config) dirty(items []string) []string {
	if len(items) == 0 {
		return append(items, UnknownItem)
	}
	switch c.rng.Intn(3) {
	case 0:
		return append(items, strings.ToUpper(items[c.rng.Intn(len(items))]))
	case 1:
		return append(items, items[c.rng.Intn(len(items))])
	default:
		return append(items, UnknownItem)
	}
}

func inUnit(p float64) bool { return p >= 0 && p <= 1 }

func defaultCatalog() []string {
	products := preprocess.DefaultCatalog().Products()
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}

	return out
}
