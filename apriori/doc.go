// Package apriori implements the horizontal, level-wise (breadth-first)
// frequent-itemset miner over a list of transactions.
//
// What:
//
//   - Level 1 counts every distinct item and keeps those whose support
//     (count / #transactions) reaches minSupport.
//   - Level k ≥ 2 builds candidates by unioning every unordered pair of
//     frequent (k-1)-itemsets and keeping unions of exactly k items, then
//     rescans all transactions to count each candidate.
//   - The run stops at the first empty level; empty levels are never returned.
//
// Why:
//
//   - Simple, predictable and exact; the reference against which the
//     vertical miner (package eclat) is checked.
//
// Options:
//
//   - WithSubsetPruning()      classic Apriori prune before counting.
//   - WithStrictThresholds()   reject minSupport outside (0,1].
//   - WithMaxLength(n)         stop after itemsets of size n.
//   - WithOnLevel(fn)          per-level progress hook; error aborts.
//
// Complexity:
//
//   - Candidate generation at level k: O(|L(k-1)|² · k).
//   - Support counting at level k:     O(T · C(k) · k) for T transactions
//     and C(k) candidates, since every candidate is subset-checked against
//     every transaction.
//
// Errors:
//
//   - ErrSupportOutOfRange   only under WithStrictThresholds.
//   - ErrOptionViolation     invalid option value.
//   - any error returned by the OnLevel hook, wrapped.
//
// Without WithStrictThresholds, degenerate thresholds never fail:
// minSupport > 1 yields empty Levels and minSupport ≤ 0 keeps every
// candidate that can be generated.
package apriori
