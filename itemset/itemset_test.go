package itemset_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/itemset"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "milk", itemset.Normalize("  Milk "))
	assert.Equal(t, "", itemset.Normalize("   "))
}

func TestNew_SortsAndDeduplicates(t *testing.T) {
	s := itemset.New("milk", "bread", "milk", "eggs")
	assert.Equal(t, []string{"bread", "eggs", "milk"}, s.Items())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Empty())
	assert.True(t, itemset.New().Empty())
}

func TestFromStrings_NormalizesAndDropsBlank(t *testing.T) {
	s := itemset.FromStrings(" Bread", "MILK", "", "bread ")
	assert.Equal(t, []string{"bread", "milk"}, s.Items())
}

// TestKey_OrderIndependent locks in the map-key contract: equal sets share a key
// regardless of construction order.
func TestKey_OrderIndependent(t *testing.T) {
	a := itemset.New("milk", "bread")
	b := itemset.New("bread", "milk")
	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Equal(b))
	assert.True(t, itemset.ParseKey(a.Key()).Equal(a))
	assert.True(t, itemset.ParseKey("").Empty())
}

func TestKey_SeparatorInLabelRoundTrips(t *testing.T) {
	s := itemset.FromStrings("a\x1fb", "c")
	assert.Equal(t, []string{"ab", "c"}, s.Items())
	assert.True(t, itemset.ParseKey(s.Key()).Equal(s))

	n := itemset.New("x\x1fy", "xy")
	assert.Equal(t, []string{"xy"}, n.Items())
	assert.Equal(t, 1, itemset.ParseKey(n.Key()).Len())
	assert.Equal(t, "", itemset.Normalize("\x1f"))
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := itemset.New("a", "b")
	items := s.Items()
	items[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Items(), "mutating the copy must not leak into the set")
}

func TestContainsAndSubset(t *testing.T) {
	s := itemset.New("bread", "eggs", "milk")
	assert.True(t, s.Contains("eggs"))
	assert.False(t, s.Contains("jam"))

	assert.True(t, itemset.New("bread", "milk").IsSubsetOf(s))
	assert.True(t, itemset.New().IsSubsetOf(s))
	assert.True(t, s.IsSubsetOf(s))
	assert.False(t, itemset.New("bread", "jam").IsSubsetOf(s))
	assert.False(t, s.IsSubsetOf(itemset.New("bread")))
}

func TestUnionMinusWith(t *testing.T) {
	a := itemset.New("bread", "milk")
	b := itemset.New("eggs", "milk")

	assert.Equal(t, []string{"bread", "eggs", "milk"}, a.Union(b).Items())
	assert.Equal(t, []string{"bread"}, a.Minus(b).Items())
	assert.Equal(t, []string{"bread", "jam", "milk"}, a.With("jam").Items())
	assert.Equal(t, []string{"bread", "milk"}, a.Items(), "receiver must stay unchanged")
}

func TestCombinations(t *testing.T) {
	s := itemset.New("a", "b", "c", "d")

	var got []string
	for _, c := range s.Combinations(2) {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"{a, b}", "{a, c}", "{a, d}", "{b, c}", "{b, d}", "{c, d}"}, got)

	assert.Len(t, s.Combinations(1), 4)
	assert.Len(t, s.Combinations(3), 4)
	assert.Len(t, s.Combinations(4), 1)
	assert.Nil(t, s.Combinations(0))
	assert.Nil(t, s.Combinations(5))
}

func TestItemsOf(t *testing.T) {
	txs := []itemset.Transaction{
		{ID: "T1", Items: itemset.New("milk")},
		{ID: "T2", Items: itemset.New("bread", "eggs")},
	}
	got := itemset.ItemsOf(txs)
	require.Len(t, got, 2)
	assert.True(t, got[1].Equal(itemset.New("eggs", "bread")))
}

func TestItemset_JSON(t *testing.T) {
	data, err := json.Marshal(itemset.New("milk", "bread"))
	require.NoError(t, err)
	assert.JSONEq(t, `["bread","milk"]`, string(data))

	empty, err := json.Marshal(itemset.Itemset{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	var s itemset.Itemset
	require.NoError(t, json.Unmarshal([]byte(`[" Milk","bread","milk"]`), &s))
	assert.Equal(t, []string{"bread", "milk"}, s.Items())
}
