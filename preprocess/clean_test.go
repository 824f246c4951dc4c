package preprocess_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/preprocess"
)

func TestClean_CountsEveryDrop(t *testing.T) {
	records := []preprocess.Record{
		{ID: "1", Items: []string{" Milk", "bread", "MILK", "caviar"}},
		{ID: "2", Items: []string{"eggs"}},
		{ID: "3", Items: nil},
		{ID: "4", Items: []string{"unicorn", ""}},
		{ID: "5", Items: []string{"tea", "honey", "jam"}},
	}

	txs, stats, err := preprocess.Clean(records, preprocess.DefaultCatalog())
	require.NoError(t, err)

	require.Len(t, txs, 2)
	assert.Equal(t, "1", txs[0].ID)
	assert.Equal(t, "{bread, milk}", txs[0].Items.String())
	assert.Equal(t, "{honey, jam, tea}", txs[1].Items.String())

	assert.Equal(t, preprocess.Stats{
		Total:      5,
		Empty:      2,
		Single:     1,
		Duplicates: 1,
		Invalid:    3,
		TotalItems: 5,
		Uniques:    5,
		Valid:      2,
	}, stats)
}

func TestClean_NilCatalogKeepsEverything(t *testing.T) {
	txs, stats, err := preprocess.Clean([]preprocess.Record{
		{ID: "a", Items: []string{"caviar", "truffle"}},
	}, nil)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Zero(t, stats.Invalid)
}

func TestClean_BlankIDGetsUUID(t *testing.T) {
	txs, _, err := preprocess.Clean([]preprocess.Record{
		{ID: "  ", Items: []string{"milk", "bread"}},
	}, preprocess.DefaultCatalog())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	_, err = uuid.Parse(txs[0].ID)
	assert.NoError(t, err)
}

func TestClean_RejectsInvalidRecord(t *testing.T) {
	_, _, err := preprocess.Clean([]preprocess.Record{
		{ID: "ok", Items: []string{"milk", "bread"}},
		{ID: "bad", Items: []string{"milk\x1fbread"}},
	}, nil)
	assert.ErrorIs(t, err, preprocess.ErrInvalidRecord)

	_, _, err = preprocess.Clean([]preprocess.Record{
		{ID: strings.Repeat("x", 65), Items: []string{"milk"}},
	}, nil)
	assert.ErrorIs(t, err, preprocess.ErrInvalidRecord)
}

func TestStats_Report(t *testing.T) {
	r := preprocess.Stats{Total: 10, Empty: 1, Single: 2, Duplicates: 3, Invalid: 4, TotalItems: 20, Uniques: 6, Valid: 7}.Report()
	assert.Contains(t, r, "- Total transactions: 10")
	assert.Contains(t, r, "- Duplicate items found: 3 instances")
	assert.Contains(t, r, "- Unique products: 6")
}

func TestSplitItems(t *testing.T) {
	assert.Nil(t, preprocess.SplitItems("  "))
	assert.Equal(t, []string{"milk", " bread"}, preprocess.SplitItems("milk, bread"))
}
