// Package itemset defines the shared data model of lvbasket: items, immutable
// itemsets with a canonical map key, transactions, per-level support maps,
// and the ordered Levels sequence produced by every miner.
//
// What:
//
//   - Item:        a normalized (lowercase, trimmed) string label.
//   - Itemset:     an immutable, sorted, duplicate-free set of Items.
//     Key() yields an order-independent string used as a map key.
//   - Transaction: an ID plus the Itemset bought together.
//   - SupportMap:  Itemset (by key) → support ratio in [0,1] for one size level.
//   - Levels:      support maps ordered by ascending itemset size.
//
// Why:
//
//   - Both miners (apriori, eclat) emit Levels with the identical shape, so
//     rule generation and the comparison harness never care which one ran.
//   - Sets as map keys need a canonical representation; sorting the items
//     once at construction makes Key, Equal and subset checks cheap.
//
// Complexity:
//
//   - New / FromStrings: O(n log n) for sorting n items.
//   - Key:               O(total label length).
//   - IsSubsetOf:        O(n + m) linear merge over both sorted slices.
//   - Union / Minus:     O(n + m).
//   - Combinations(r):   O(C(n, r) · r).
//
// Itemsets are values; every operation returns a new Itemset and never
// mutates its receiver, so they are safe to share across goroutines.
package itemset
