package itemset

import (
	"sort"
	"strings"
)

// Item is a single product label. Labels are compared by exact string
// equality after Normalize. A label never contains the ASCII unit separator
// (0x1F): New and Normalize strip it.
type Item = string

// keySep joins items inside a canonical key.
const keySep = "\x1f"

// Normalize returns the canonical form of a raw label: trimmed, lowercased
// and without the key separator.
func Normalize(raw string) Item {
	return strings.ToLower(strings.TrimSpace(stripSep(raw)))
}

func stripSep(item string) string {
	if !strings.Contains(item, keySep) {
		return item
	}

	return strings.ReplaceAll(item, keySep, "")
}

// Itemset is an immutable set of Items kept in ascending order without
// duplicates. The zero value is the empty set.
type Itemset struct {
	items []Item
}

// New builds an Itemset from items, sorting and deduplicating them.
// Items are taken as given apart from the key separator, which is removed so
// Key and ParseKey round-trip; callers normalize upstream.
func New(items ...Item) Itemset {
	if len(items) == 0 {
		return Itemset{}
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = stripSep(it)
	}
	sort.Strings(out)

	// compact adjacent duplicates in place
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}

	return Itemset{items: out[:w]}
}

// FromStrings normalizes every raw label and builds an Itemset, dropping
// labels that normalize to the empty string.
func FromStrings(raw ...string) Itemset {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if n := Normalize(r); n != "" {
			items = append(items, n)
		}
	}

	return New(items...)
}

// ParseKey rebuilds an Itemset from a string produced by Key.
func ParseKey(key string) Itemset {
	if key == "" {
		return Itemset{}
	}

	return New(strings.Split(key, keySep)...)
}

// fromSorted wraps an already sorted, duplicate-free slice without copying.
func fromSorted(items []Item) Itemset {
	return Itemset{items: items}
}

// Len reports the number of items.
func (s Itemset) Len() int { return len(s.items) }

// Empty reports whether the set has no items.
func (s Itemset) Empty() bool { return len(s.items) == 0 }

// Items returns a copy of the items in ascending order.
func (s Itemset) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)

	return out
}

// Key returns the canonical, order-independent map key of the set.
func (s Itemset) Key() string {
	return strings.Join(s.items, keySep)
}

// String renders the set as "{a, b, c}".
func (s Itemset) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}

// Contains reports whether item is a member of the set.
func (s Itemset) Contains(item Item) bool {
	i := sort.SearchStrings(s.items, item)

	return i < len(s.items) && s.items[i] == item
}

// Equal reports set equality.
func (s Itemset) Equal(o Itemset) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != o.items[i] {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every item of s is also in o.
// Both slices are sorted, so a single forward merge suffices.
func (s Itemset) IsSubsetOf(o Itemset) bool {
	if len(s.items) > len(o.items) {
		return false
	}
	j := 0
	for _, it := range s.items {
		for j < len(o.items) && o.items[j] < it {
			j++
		}
		if j == len(o.items) || o.items[j] != it {
			return false
		}
		j++
	}

	return true
}

// Union returns s ∪ o.
func (s Itemset) Union(o Itemset) Itemset {
	out := make([]Item, 0, len(s.items)+len(o.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(o.items) {
		switch {
		case s.items[i] < o.items[j]:
			out = append(out, s.items[i])
			i++
		case s.items[i] > o.items[j]:
			out = append(out, o.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, o.items[j:]...)

	return fromSorted(out)
}

// With returns s ∪ {item}.
func (s Itemset) With(item Item) Itemset {
	return s.Union(fromSorted([]Item{item}))
}

// Minus returns s − o.
func (s Itemset) Minus(o Itemset) Itemset {
	out := make([]Item, 0, len(s.items))
	j := 0
	for _, it := range s.items {
		for j < len(o.items) && o.items[j] < it {
			j++
		}
		if j < len(o.items) && o.items[j] == it {
			continue
		}
		out = append(out, it)
	}

	return fromSorted(out)
}

// Combinations returns every r-item subset of s in lexicographic order of
// item positions. It returns nil when r < 1 or r > Len().
func (s Itemset) Combinations(r int) []Itemset {
	n := len(s.items)
	if r < 1 || r > n {
		return nil
	}

	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	var out []Itemset
	for {
		combo := make([]Item, r)
		for i, p := range idx {
			combo[i] = s.items[p]
		}
		out = append(out, fromSorted(combo))

		// advance the rightmost index that still has room
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Transaction is one market basket: an identifier plus the items bought.
type Transaction struct {
	ID    string
	Items Itemset
}

// ItemsOf strips transaction IDs and returns the bare itemsets in order.
func ItemsOf(txs []Transaction) []Itemset {
	out := make([]Itemset, len(txs))
	for i, tx := range txs {
		out[i] = tx.Items
	}

	return out
}
