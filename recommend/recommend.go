// Package recommend turns association rules into "customers who bought X
// also bought" suggestions: ranked consequents with a strength label, a
// bundle proposal, and a cross-sell hint.
package recommend

import (
	"sort"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// Strength buckets a rule's confidence.
type Strength string

const (
	Strong   Strength = "strong"   // confidence ≥ 0.7
	Moderate Strength = "moderate" // confidence ≥ 0.5
	Weak     Strength = "weak"
)

const (
	strongConfidence    = 0.7
	moderateConfidence  = 0.5
	crossSellConfidence = 0.6
	bundleRules         = 3
	bundleMaxItems      = 4
)

// StrengthOf classifies a confidence value.
func StrengthOf(confidence float64) Strength {
	switch {
	case confidence >= strongConfidence:
		return Strong
	case confidence >= moderateConfidence:
		return Moderate
	default:
		return Weak
	}
}

// Recommendation is one suggested consequent for a query product.
type Recommendation struct {
	Rule     rules.Rule `json:"rule"`
	Strength Strength   `json:"strength"`
}

// Result gathers every suggestion for one product.
type Result struct {
	Product         itemset.Item     `json:"product"`
	Recommendations []Recommendation `json:"recommendations"`

	// Bundle is the product followed by the consequents of the top rules,
	// at most four distinct items.
	Bundle []itemset.Item `json:"bundle,omitempty"`

	// CrossSell is true when the best rule is confident enough to justify
	// a promotional offer.
	CrossSell bool `json:"cross_sell"`
}

// For returns up to limit recommendations for product, taken from the rules
// whose antecedent contains it, ordered by descending confidence. A
// non-positive limit means no limit. rs is not modified.
func For(rs []rules.Rule, product string, limit int) Result {
	item := itemset.Normalize(product)
	relevant := rules.WithAntecedentItem(rs, item)
	rules.SortByConfidence(relevant)
	if limit > 0 && len(relevant) > limit {
		relevant = relevant[:limit]
	}

	res := Result{Product: item, Recommendations: make([]Recommendation, 0, len(relevant))}
	for _, r := range relevant {
		res.Recommendations = append(res.Recommendations, Recommendation{Rule: r, Strength: StrengthOf(r.Confidence)})
	}
	if len(relevant) == 0 {
		return res
	}

	res.Bundle = bundle(item, relevant)
	res.CrossSell = relevant[0].Confidence >= crossSellConfidence

	return res
}

// bundle collects the product and the consequents of the top rules.
func bundle(product itemset.Item, ranked []rules.Rule) []itemset.Item {
	out := []itemset.Item{product}
	seen := map[itemset.Item]bool{product: true}
	for i, r := range ranked {
		if i == bundleRules {
			break
		}
		for _, it := range r.Consequent.Items() {
			if len(out) == bundleMaxItems {
				return out
			}
			if !seen[it] {
				seen[it] = true
				out = append(out, it)
			}
		}
	}

	return out
}

// Products lists every item seen in txs or in a rule antecedent, with the
// antecedent items first. Each group is alphabetical.
func Products(txs []itemset.Transaction, rs []rules.Rule) []itemset.Item {
	all := make(map[itemset.Item]struct{})
	for _, tx := range txs {
		for _, it := range tx.Items.Items() {
			all[it] = struct{}{}
		}
	}
	inRule := make(map[itemset.Item]bool)
	for _, r := range rs {
		for _, it := range r.Antecedent.Items() {
			inRule[it] = true
			all[it] = struct{}{}
		}
	}

	out := make([]itemset.Item, 0, len(all))
	for it := range all {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if inRule[out[i]] != inRule[out[j]] {
			return inRule[out[i]]
		}
		return out[i] < out[j]
	})

	return out
}
