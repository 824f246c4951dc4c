package eclat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbasket/itemset"
)

// pair is one not-yet-consumed extension candidate of a frame.
type pair struct {
	item itemset.Item
	tids TidSet
}

// frame is one node of the depth-first search: a prefix and the items that
// may still extend it, each with the tid-set of prefix ∪ {item}.
type frame struct {
	prefix    itemset.Itemset
	remaining []pair
}

// searcher holds the state of one run.
type searcher struct {
	total      float64
	minSupport float64
	opts       Options
	found      itemset.SupportMap
}

// Mine computes the frequent itemsets of txs by tid-set intersection.
// Returns Levels grouped by ascending itemset size, or an error for invalid
// options, strict-threshold violations, or a failing OnItemset hook.
func Mine(txs []itemset.Transaction, minSupport float64, opts ...Option) (itemset.Levels, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.StrictThresholds && (math.IsNaN(minSupport) || minSupport <= 0 || minSupport > 1) {
		return nil, fmt.Errorf("%w: got %v", ErrSupportOutOfRange, minSupport)
	}

	idx := BuildIndex(txs)
	s := &searcher{
		total:      float64(len(txs)),
		minSupport: minSupport,
		opts:       o,
		found:      make(itemset.SupportMap),
	}

	roots := make([]pair, 0, len(idx))
	for _, item := range idx.Items() {
		roots = append(roots, pair{item: item, tids: idx[item]})
	}
	if err := s.search(roots); err != nil {
		return nil, err
	}

	return itemset.GroupBySize(s.found), nil
}

// search runs the depth-first walk from the empty prefix until the frame
// stack is exhausted.
func (s *searcher) search(roots []pair) error {
	stack := []*frame{{prefix: itemset.Itemset{}, remaining: roots}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top.remaining) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// 1. Pop the last extension of the current frame.
		last := len(top.remaining) - 1
		p := top.remaining[last]
		top.remaining = top.remaining[:last]

		// 2. Score prefix ∪ {item}.
		candidate := top.prefix.With(p.item)
		support := float64(len(p.tids)) / s.total
		if support < s.minSupport {
			continue
		}

		// 3. Record it.
		s.found.Put(candidate, support)
		if s.opts.OnItemset != nil {
			if err := s.opts.OnItemset(candidate, support); err != nil {
				return fmt.Errorf("eclat: OnItemset hook for %s: %w", candidate, err)
			}
		}
		if s.opts.MaxLength > 0 && candidate.Len() >= s.opts.MaxLength {
			continue
		}

		// 4. Intersect with every sibling still pending; keep non-empty ones.
		var next []pair
		for _, other := range top.remaining {
			if inter := p.tids.Intersect(other.tids); len(inter) > 0 {
				next = append(next, pair{item: other.item, tids: inter})
			}
		}
		if len(next) > 0 {
			stack = append(stack, &frame{prefix: candidate, remaining: next})
		}
	}

	return nil
}
