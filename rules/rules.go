package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvbasket/itemset"
)

// Generate derives every rule whose confidence reaches minConfidence.
func Generate(levels itemset.Levels, minConfidence float64, opts ...Option) ([]Rule, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.StrictThresholds && (math.IsNaN(minConfidence) || minConfidence < 0 || minConfidence > 1) {
		return nil, fmt.Errorf("%w: got %v", ErrConfidenceOutOfRange, minConfidence)
	}

	lookup := levels.Flatten()
	out := []Rule{}

	for _, level := range levels {
		for _, e := range level.Sorted() {
			k := e.Set.Len()
			if k < 2 {
				continue
			}
			for r := 1; r < k; r++ {
				for _, a := range e.Set.Combinations(r) {
					b := e.Set.Minus(a)
					conf := confidence(a, b, lookup)
					if conf < minConfidence {
						continue
					}
					out = append(out, Rule{
						Antecedent: a,
						Consequent: b,
						Support:    lookup[e.Set.Key()],
						Confidence: conf,
						Lift:       lift(a, b, lookup),
					})
				}
			}
		}
	}

	return out, nil
}

// confidence returns sup(A∪B)/sup(A), or 0 when sup(A) is 0 or unknown.
func confidence(a, b itemset.Itemset, lookup map[string]float64) float64 {
	supA := lookup[a.Key()]
	if supA == 0 {
		return 0
	}

	return lookup[a.Union(b).Key()] / supA
}

// lift returns sup(A∪B)/(sup(A)·sup(B)), or 0 when either side is 0 or unknown.
func lift(a, b itemset.Itemset, lookup map[string]float64) float64 {
	supA, supB := lookup[a.Key()], lookup[b.Key()]
	if supA == 0 || supB == 0 {
		return 0
	}

	return lookup[a.Union(b).Key()] / (supA * supB)
}

// SortByConfidence orders rules by descending confidence, keeping the
// generation order for ties. The slice is sorted in place.
func SortByConfidence(rs []Rule) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Confidence > rs[j].Confidence })
}

// SortByLift orders rules by descending lift, stable on ties.
func SortByLift(rs []Rule) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Lift > rs[j].Lift })
}

// Filter returns the rules for which keep reports true, in order.
func Filter(rs []Rule, keep func(Rule) bool) []Rule {
	out := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// WithAntecedentItem returns the rules whose antecedent contains item.
func WithAntecedentItem(rs []Rule, item itemset.Item) []Rule {
	return Filter(rs, func(r Rule) bool { return r.Antecedent.Contains(item) })
}

// WithConsequentItem returns the rules whose consequent contains item.
func WithConsequentItem(rs []Rule, item itemset.Item) []Rule {
	return Filter(rs, func(r Rule) bool { return r.Consequent.Contains(item) })
}
