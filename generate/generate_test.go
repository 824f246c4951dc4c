package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/generate"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/preprocess"
	"github.com/katalvlaran/lvbasket/rules"
)

func TestBaskets_Deterministic(t *testing.T) {
	a, err := generate.Baskets(50, generate.WithSeed(7))
	require.NoError(t, err)
	b, err := generate.Baskets(50, generate.WithSeed(7))
	require.NoError(t, err)
	c, err := generate.Baskets(50, generate.WithSeed(8))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "T00001", a[0].ID)
	assert.Equal(t, "T00050", a[49].ID)
}

func TestBaskets_Extremes(t *testing.T) {
	none, err := generate.Baskets(10, generate.WithItemProbability(0))
	require.NoError(t, err)
	for _, rec := range none {
		assert.Empty(t, rec.Items, rec.ID)
	}

	all, err := generate.Baskets(10,
		generate.WithCatalog("tea", "jam"),
		generate.WithItemProbability(1),
	)
	require.NoError(t, err)
	for _, rec := range all {
		assert.Equal(t, []string{"tea", "jam"}, rec.Items, rec.ID)
	}
}

func TestBaskets_AffinityShowsUpAsRule(t *testing.T) {
	txs, err := generate.Transactions(500,
		generate.WithSeed(42),
		generate.WithItemProbability(0.05),
		generate.WithAffinity(0.6, "milk", "bread"),
	)
	require.NoError(t, err)

	levels, err := eclat.Mine(txs, 0.3)
	require.NoError(t, err)
	rs, err := rules.Generate(levels, 0.8)
	require.NoError(t, err)

	want := itemset.New("bread", "milk")
	var found bool
	for _, r := range rs {
		if r.Itemset().Equal(want) {
			found = true
		}
	}
	assert.True(t, found, "planted pair should be mined: %v", rs)
}

func TestBaskets_NoiseIsCleanedAway(t *testing.T) {
	const n = 40
	recs, err := generate.Baskets(n,
		generate.WithRand(rand.New(rand.NewSource(3))),
		generate.WithCatalog("tea", "jam"),
		generate.WithItemProbability(1),
		generate.WithNoise(1),
	)
	require.NoError(t, err)

	catalog, err := preprocess.CatalogFromNames("tea", "jam")
	require.NoError(t, err)
	txs, stats, err := preprocess.Clean(recs, catalog)
	require.NoError(t, err)

	assert.Len(t, txs, n)
	assert.Equal(t, n, stats.Duplicates+stats.Invalid, "one defect per record")
	assert.Equal(t, 2, stats.Uniques)
}

func TestBaskets_EmptyBasketNoise(t *testing.T) {
	recs, err := generate.Baskets(3, generate.WithItemProbability(0), generate.WithNoise(1))
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Equal(t, []string{generate.UnknownItem}, rec.Items)
	}
}

func TestTransactions_Normalized(t *testing.T) {
	txs, err := generate.Transactions(2,
		generate.WithCatalog("Tea", "jam"),
		generate.WithItemProbability(1),
	)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, []string{"jam", "tea"}, txs[0].Items.Items())
}

func TestBaskets_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		opts []generate.Option
		want error
	}{
		{"zero baskets", 0, nil, generate.ErrTooFewBaskets},
		{"item probability", 5, []generate.Option{generate.WithItemProbability(1.5)}, generate.ErrInvalidProbability},
		{"noise", 5, []generate.Option{generate.WithNoise(-0.1)}, generate.ErrInvalidProbability},
		{"affinity", 5, []generate.Option{generate.WithAffinity(2, "tea")}, generate.ErrInvalidProbability},
		{"empty catalog", 5, []generate.Option{generate.WithCatalog()}, generate.ErrEmptyCatalog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generate.Baskets(tc.n, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { generate.WithRand(nil) })
	assert.Panics(t, func() { generate.WithIDScheme(nil) })
	assert.Panics(t, func() { generate.WithAffinity(0.5) })
}
