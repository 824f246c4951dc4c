// Package compare runs the horizontal (apriori) and vertical (eclat) miners
// on the same transactions and thresholds, generates rules from both, and
// reports how they differ.
//
// Measured per miner:
//
//   - wall time of mining plus rule generation;
//   - bytes allocated (runtime.MemStats TotalAlloc delta) and the heap in
//     use right after the run;
//   - the number of frequent itemsets and rules.
//
// The report also states whether both miners found the same itemsets (with
// supports equal within 1e-12) and the same rules. Report.Err turns a
// mismatch into an ErrMinersDisagree error so callers cannot overlook it.
//
// WithParallel runs the two miners on separate goroutines. They only read
// the input, so no copies are made, but memory figures then include both
// runs.
package compare
