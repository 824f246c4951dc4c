// Package lvbasket mines market-basket data: frequent itemsets, association
// rules and product recommendations.
//
// What is inside?
//
//	itemset/    - canonical sorted Itemset, Transaction, per-size support levels
//	apriori/    - horizontal, level-wise miner with optional subset pruning
//	eclat/      - vertical miner over transaction-ID sets
//	rules/      - association rules with support, confidence and lift
//	compare/    - runs both miners on the same data and reports time, memory
//	              and agreement
//	recommend/  - ranks rules for one product, bundles and cross-sell hints
//	preprocess/ - label normalization, catalog filtering, cleaning stats
//	generate/   - seeded synthetic baskets with planted bundles
//	store/      - CSV and JSON files, bbolt transaction store and rule snapshots
//	cmd/basket  - CLI; "basket serve" exposes the same operations over HTTP
//
// The mining packages are pure: no I/O, no logging, no shared state, and
// deterministic for a given input. Thresholds are ratios in [0,1]; out-of-
// range values degrade to empty or all-inclusive output unless a package's
// WithStrictThresholds option is given.
//
// Quick example:
//
//	txs := []itemset.Transaction{
//		{ID: "1", Items: itemset.New("milk", "bread")},
//		{ID: "2", Items: itemset.New("milk", "bread")},
//		{ID: "3", Items: itemset.New("milk")},
//		{ID: "4", Items: itemset.New("bread", "eggs")},
//	}
//	levels, _ := eclat.Mine(txs, 0.5)  // {milk} .75, {bread} .75, {bread, milk} .5
//	rs, _ := rules.Generate(levels, 0.5) // milk → bread, bread → milk
//
//	go get github.com/katalvlaran/lvbasket
package lvbasket
