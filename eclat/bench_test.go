package eclat_test

import (
	"testing"

	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/generate"
)

// BenchmarkMine_500Transactions mirrors the apriori benchmark on the same
// shape of data so the two can be compared with benchstat.
func BenchmarkMine_500Transactions(b *testing.B) {
	txs := randomTransactions(42, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eclat.Mine(txs, 0.1)
	}
}

// BenchmarkBuildIndex_500Transactions isolates the vertical index build.
func BenchmarkBuildIndex_500Transactions(b *testing.B) {
	txs := randomTransactions(42, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eclat.BuildIndex(txs)
	}
}

// BenchmarkMine_Generated2000 runs over 2000 synthetic baskets from the
// 30-product catalog with two planted bundles.
func BenchmarkMine_Generated2000(b *testing.B) {
	txs, err := generate.Transactions(2000,
		generate.WithSeed(42),
		generate.WithItemProbability(0.1),
		generate.WithAffinity(0.3, "milk", "bread", "butter"),
		generate.WithAffinity(0.2, "pasta", "tomato", "sauce"),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eclat.Mine(txs, 0.05)
	}
}
