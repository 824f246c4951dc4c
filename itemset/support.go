package itemset

import (
	"math"
	"sort"
)

// Entry pairs a frequent itemset with its support ratio.
type Entry struct {
	Set     Itemset
	Support float64
}

// SupportMap maps Itemset.Key() to the itemset and its support for a single
// size level. Miners build it once and never mutate it afterwards.
type SupportMap map[string]Entry

// Put records set with support s, replacing any previous entry.
func (m SupportMap) Put(set Itemset, s float64) {
	m[set.Key()] = Entry{Set: set, Support: s}
}

// Get returns the support of set and whether it is present.
func (m SupportMap) Get(set Itemset) (float64, bool) {
	e, ok := m[set.Key()]

	return e.Support, ok
}

// Sorted returns the entries ordered by ascending key.
func (m SupportMap) Sorted() []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}

	return out
}

// Size reports the itemset size shared by every entry of the level,
// or 0 for an empty map.
func (m SupportMap) Size() int {
	for _, e := range m {
		return e.Set.Len()
	}

	return 0
}

// Levels is the ordered sequence of support maps returned by a miner,
// Levels[0] holding the smallest itemsets. Empty levels are never stored.
type Levels []SupportMap

// Count returns the total number of itemsets across all levels.
func (l Levels) Count() int {
	n := 0
	for _, m := range l {
		n += len(m)
	}

	return n
}

// Flatten merges every level into one key → support lookup. Levels are
// merged in order and an existing key is never overwritten.
func (l Levels) Flatten() map[string]float64 {
	out := make(map[string]float64, l.Count())
	for _, m := range l {
		for k, e := range m {
			if _, seen := out[k]; !seen {
				out[k] = e.Support
			}
		}
	}

	return out
}

// Entries returns all itemsets, level by level, each level in key order.
func (l Levels) Entries() []Entry {
	out := make([]Entry, 0, l.Count())
	for _, m := range l {
		out = append(out, m.Sorted()...)
	}

	return out
}

// Equal reports whether l and o hold the same itemsets with supports that
// differ by at most eps. Level positions are ignored.
func (l Levels) Equal(o Levels, eps float64) bool {
	a, b := l.Flatten(), o.Flatten()
	if len(a) != len(b) {
		return false
	}
	for k, sa := range a {
		sb, ok := b[k]
		if !ok || math.Abs(sa-sb) > eps {
			return false
		}
	}

	return true
}

// Diff returns the itemsets present only in l and only in o, each sorted by key.
func (l Levels) Diff(o Levels) (onlyL, onlyO []Itemset) {
	a, b := l.Flatten(), o.Flatten()
	for k := range a {
		if _, ok := b[k]; !ok {
			onlyL = append(onlyL, ParseKey(k))
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			onlyO = append(onlyO, ParseKey(k))
		}
	}
	byKey := func(s []Itemset) {
		sort.Slice(s, func(i, j int) bool { return s[i].Key() < s[j].Key() })
	}
	byKey(onlyL)
	byKey(onlyO)

	return onlyL, onlyO
}

// GroupBySize splits a flat support map into Levels ordered by ascending
// itemset size. Sizes with no itemsets are absent.
func GroupBySize(flat SupportMap) Levels {
	bySize := make(map[int]SupportMap)
	for k, e := range flat {
		n := e.Set.Len()
		if bySize[n] == nil {
			bySize[n] = make(SupportMap)
		}
		bySize[n][k] = e
	}

	sizes := make([]int, 0, len(bySize))
	for n := range bySize {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)

	out := make(Levels, 0, len(sizes))
	for _, n := range sizes {
		out = append(out, bySize[n])
	}

	return out
}
