package itemset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/itemset"
)

func sampleLevels() itemset.Levels {
	l1 := make(itemset.SupportMap)
	l1.Put(itemset.New("milk"), 0.75)
	l1.Put(itemset.New("bread"), 0.75)
	l2 := make(itemset.SupportMap)
	l2.Put(itemset.New("milk", "bread"), 0.5)

	return itemset.Levels{l1, l2}
}

func TestSupportMap_PutGetSorted(t *testing.T) {
	m := make(itemset.SupportMap)
	m.Put(itemset.New("milk"), 0.75)
	m.Put(itemset.New("bread"), 0.5)

	s, ok := m.Get(itemset.New("milk"))
	assert.True(t, ok)
	assert.Equal(t, 0.75, s)
	_, ok = m.Get(itemset.New("jam"))
	assert.False(t, ok)

	sorted := m.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "{bread}", sorted[0].Set.String())
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 0, itemset.SupportMap{}.Size())
}

func TestLevels_CountFlattenEntries(t *testing.T) {
	l := sampleLevels()
	assert.Equal(t, 3, l.Count())

	flat := l.Flatten()
	assert.Len(t, flat, 3)
	assert.Equal(t, 0.5, flat[itemset.New("bread", "milk").Key()])

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "{bread}", entries[0].Set.String())
	assert.Equal(t, "{bread, milk}", entries[2].Set.String())
}

// TestLevels_FlattenKeepsEarliest checks that a later level never overwrites an
// earlier entry for the same key.
func TestLevels_FlattenKeepsEarliest(t *testing.T) {
	a := make(itemset.SupportMap)
	a.Put(itemset.New("x"), 0.4)
	b := make(itemset.SupportMap)
	b.Put(itemset.New("x"), 0.9)

	flat := itemset.Levels{a, b}.Flatten()
	assert.Equal(t, 0.4, flat["x"])
}

func TestLevels_EqualAndDiff(t *testing.T) {
	a := sampleLevels()
	b := sampleLevels()
	assert.True(t, a.Equal(b, 1e-12))

	b[1].Put(itemset.New("bread", "eggs"), 0.25)
	assert.False(t, a.Equal(b, 1e-12))

	onlyA, onlyB := a.Diff(b)
	assert.Empty(t, onlyA)
	require.Len(t, onlyB, 1)
	assert.Equal(t, "{bread, eggs}", onlyB[0].String())

	c := sampleLevels()
	c[0].Put(itemset.New("milk"), 0.7)
	assert.False(t, a.Equal(c, 1e-12))
	assert.True(t, a.Equal(c, 0.1))
}

func TestGroupBySize(t *testing.T) {
	flat := make(itemset.SupportMap)
	flat.Put(itemset.New("a", "b", "c"), 0.3)
	flat.Put(itemset.New("a"), 0.6)
	flat.Put(itemset.New("b"), 0.5)

	levels := itemset.GroupBySize(flat)
	require.Len(t, levels, 2, "size 2 has no itemsets and must be absent")
	assert.Equal(t, 1, levels[0].Size())
	assert.Equal(t, 3, levels[1].Size())
	assert.Empty(t, itemset.GroupBySize(itemset.SupportMap{}))
}
