// Package generate produces synthetic raw basket data for demos, tests and
// benchmarks.
//
// What:
//
//	Baskets(n, opts...) draws n raw records. Each catalog item joins a
//	basket independently with probability p, every configured affinity
//	bundle joins as a whole with its own probability, and an optional
//	noise rate dirties records the way hand-entered data is dirty (mixed
//	case, repeated labels, unknown products).
//
// Why:
//
//   - Affinities plant known co-occurrences, so mined rules can be checked
//     against what was put in.
//   - Noise exercises preprocess.Clean with realistic defects.
//   - Output is deterministic for a fixed seed.
//
// Complexity:
//
//	Time O(n·(|catalog| + Σ|affinity|)), Space O(output).
package generate
