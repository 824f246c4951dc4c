// Package rules derives association rules from the frequent itemsets
// produced by package apriori or package eclat.
//
// For every frequent itemset S with |S| ≥ 2 and every non-empty proper
// subset A of S (all sizes 1..|S|-1, every combination), B = S − A and
//
//	confidence(A → B) = sup(S) / sup(A)              (0 when sup(A) = 0)
//	lift(A → B)       = sup(S) / (sup(A) · sup(B))   (0 when either is 0)
//
// A rule is kept when confidence ≥ minConfidence. An itemset of size k
// yields up to 2^k − 2 candidate splits.
//
// Supports come from a single lookup built by flattening the input levels
// in order; an itemset missing from the lookup counts as support 0 and is
// never an error. An empty result is a valid outcome.
//
// Ordering: levels ascending, itemsets by key within a level, subset sizes
// ascending, combinations in lexicographic order. Stable for a fixed input.
//
// Helpers sort (SortByConfidence, SortByLift) and filter (Filter,
// WithAntecedentItem, WithConsequentItem) rule slices without mutating the
// rules themselves.
package rules
