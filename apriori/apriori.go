package apriori

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbasket/itemset"
)

// miner encapsulates the state of one level-wise run.
type miner struct {
	txs        []itemset.Itemset
	total      float64
	minSupport float64
	opts       Options
}

// Mine computes the frequent itemsets of txs level by level.
// Returns Levels (Levels[0] = frequent 1-itemsets) or an error for invalid
// options, strict-threshold violations, or a failing OnLevel hook.
func Mine(txs []itemset.Itemset, minSupport float64, opts ...Option) (itemset.Levels, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.StrictThresholds && !validSupport(minSupport) {
		return nil, fmt.Errorf("%w: got %v", ErrSupportOutOfRange, minSupport)
	}

	m := &miner{
		txs:        txs,
		total:      float64(len(txs)),
		minSupport: minSupport,
		opts:       o,
	}

	return m.run()
}

// MineTransactions strips transaction IDs and runs Mine.
func MineTransactions(txs []itemset.Transaction, minSupport float64, opts ...Option) (itemset.Levels, error) {
	return Mine(itemset.ItemsOf(txs), minSupport, opts...)
}

func validSupport(s float64) bool {
	return !math.IsNaN(s) && s > 0 && s <= 1
}

// run drives the level loop until a level comes back empty or the length
// cap is reached.
func (m *miner) run() (itemset.Levels, error) {
	levels := itemset.Levels{}

	l1, counted := m.firstLevel()
	if err := m.opts.OnLevel(1, counted, len(l1)); err != nil {
		return nil, fmt.Errorf("apriori: OnLevel hook at k=1: %w", err)
	}
	if len(l1) == 0 {
		return levels, nil
	}
	levels = append(levels, l1)

	for k := 2; m.opts.MaxLength == 0 || k <= m.opts.MaxLength; k++ {
		candidates := m.candidates(levels[k-2], k)
		lk := m.count(candidates)
		if err := m.opts.OnLevel(k, len(candidates), len(lk)); err != nil {
			return nil, fmt.Errorf("apriori: OnLevel hook at k=%d: %w", k, err)
		}
		if len(lk) == 0 {
			break
		}
		levels = append(levels, lk)
	}

	return levels, nil
}

// firstLevel counts single items and keeps the frequent ones. It also
// reports how many distinct items were seen.
func (m *miner) firstLevel() (itemset.SupportMap, int) {
	counts := make(map[itemset.Item]int)
	for _, tx := range m.txs {
		for _, item := range tx.Items() {
			counts[item]++
		}
	}

	l1 := make(itemset.SupportMap)
	for item, c := range counts {
		if s := float64(c) / m.total; s >= m.minSupport {
			l1.Put(itemset.New(item), s)
		}
	}

	return l1, len(counts)
}

// candidates joins every unordered pair of prev and keeps unions of exactly
// k items. Pairs are visited in key order so the output is deterministic.
func (m *miner) candidates(prev itemset.SupportMap, k int) []itemset.Itemset {
	entries := prev.Sorted()
	seen := make(map[string]struct{})
	var out []itemset.Itemset

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			union := entries[i].Set.Union(entries[j].Set)
			if union.Len() != k {
				continue
			}
			key := union.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if m.opts.SubsetPruning && !allSubsetsFrequent(union, prev) {
				continue
			}
			out = append(out, union)
		}
	}

	return out
}

// allSubsetsFrequent reports whether every (k-1)-subset of c is in prev.
func allSubsetsFrequent(c itemset.Itemset, prev itemset.SupportMap) bool {
	for _, sub := range c.Combinations(c.Len() - 1) {
		if _, ok := prev[sub.Key()]; !ok {
			return false
		}
	}

	return true
}

// count scans every transaction for every candidate and keeps those whose
// support reaches minSupport.
func (m *miner) count(candidates []itemset.Itemset) itemset.SupportMap {
	counts := make([]int, len(candidates))
	for _, tx := range m.txs {
		for i, c := range candidates {
			if c.IsSubsetOf(tx) {
				counts[i]++
			}
		}
	}

	lk := make(itemset.SupportMap)
	for i, c := range candidates {
		if s := float64(counts[i]) / m.total; s >= m.minSupport {
			lk.Put(c, s)
		}
	}

	return lk
}
