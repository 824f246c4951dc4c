// Package eclat implements the vertical, depth-first frequent-itemset miner.
//
// What:
//
//   - BuildIndex turns the horizontal transaction list into a vertical
//     index: item → sorted set of transaction IDs (tid-set).
//   - Mine walks the itemset lattice depth-first. Extending a prefix with an
//     item intersects tid-sets instead of rescanning transactions; the
//     support of an itemset is |tid-set| / #transactions.
//   - Results are grouped by itemset size into itemset.Levels, ascending.
//     Sizes with no frequent itemsets are simply absent.
//
// Why:
//
//   - Intersections of sorted tid-sets replace the full transaction scans
//     of the level-wise miner, which pays off on sparse, wide data.
//
// The search uses an explicit stack of frames rather than recursion with
// a shared accumulator, so every run owns its state and the traversal can
// be stepped through in tests.
//
// Complexity:
//
//   - BuildIndex: O(Σ|t| · log) for sorting each tid-set.
//   - Mine:       O(F · I · T) worst case, F frequent itemsets, I sibling
//     items per frame, T tid-set length per intersection.
//   - Memory:     O(depth · I · T) for the live frames.
//
// Errors:
//
//   - ErrSupportOutOfRange   only under WithStrictThresholds.
//   - ErrOptionViolation     invalid option value.
//   - any error returned by OnItemset, wrapped.
//
// With minSupport ≤ 0 an extension whose tid-set intersection is empty is
// not reported, even though its support of 0 passes the threshold.
//
// Transaction IDs are treated as a set: two transactions sharing an ID
// count once in every tid-set. Keeping IDs unique is the caller's job.
package eclat
