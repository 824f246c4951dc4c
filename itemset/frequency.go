package itemset

import "sort"

// ItemCount is the number of transactions that contain Item.
type ItemCount struct {
	Item  Item `json:"item"`
	Count int  `json:"count"`
}

// Summary describes a transaction list as a whole.
type Summary struct {
	Transactions int `json:"transactions"`
	TotalItems   int `json:"total_items"`
	UniqueItems  int `json:"unique_items"`
}

// Summarize counts transactions, item occurrences and distinct items.
func Summarize(txs []Transaction) Summary {
	s := Summary{Transactions: len(txs)}
	seen := make(map[Item]struct{})
	for _, tx := range txs {
		s.TotalItems += tx.Items.Len()
		for _, it := range tx.Items.items {
			seen[it] = struct{}{}
		}
	}
	s.UniqueItems = len(seen)

	return s
}

// ItemFrequencies counts every item over txs, most frequent first and ties
// broken by item name.
func ItemFrequencies(txs []Transaction) []ItemCount {
	counts := make(map[Item]int)
	for _, tx := range txs {
		for _, it := range tx.Items.items {
			counts[it]++
		}
	}

	out := make([]ItemCount, 0, len(counts))
	for it, n := range counts {
		out = append(out, ItemCount{Item: it, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Item < out[j].Item
	})

	return out
}
