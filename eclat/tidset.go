package eclat

import (
	"sort"

	"github.com/katalvlaran/lvbasket/itemset"
)

// TidSet is a sorted, duplicate-free list of transaction IDs.
type TidSet []string

// Intersect returns the IDs present in both t and o via a linear merge.
func (t TidSet) Intersect(o TidSet) TidSet {
	out := make(TidSet, 0, min(len(t), len(o)))
	i, j := 0, 0
	for i < len(t) && j < len(o) {
		switch {
		case t[i] < o[j]:
			i++
		case t[i] > o[j]:
			j++
		default:
			out = append(out, t[i])
			i++
			j++
		}
	}

	return out
}

// Index is the vertical representation of a transaction list.
type Index map[itemset.Item]TidSet

// BuildIndex records, for every item, the IDs of the transactions that
// contain it.
func BuildIndex(txs []itemset.Transaction) Index {
	idx := make(Index)
	for _, tx := range txs {
		for _, item := range tx.Items.Items() {
			idx[item] = append(idx[item], tx.ID)
		}
	}
	for item, tids := range idx {
		idx[item] = normalizeTids(tids)
	}

	return idx
}

// normalizeTids sorts tids and drops repeated IDs.
func normalizeTids(tids TidSet) TidSet {
	sort.Strings(tids)
	w := 0
	for r := range tids {
		if w == 0 || tids[r] != tids[w-1] {
			tids[w] = tids[r]
			w++
		}
	}

	return tids[:w]
}

// Items returns the indexed items in ascending order.
func (idx Index) Items() []itemset.Item {
	out := make([]itemset.Item, 0, len(idx))
	for it := range idx {
		out = append(out, it)
	}
	sort.Strings(out)

	return out
}
