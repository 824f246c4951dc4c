// Package rules defines the Rule record, options, and error definitions for
// association-rule generation.
package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbasket/itemset"
)

// ErrConfidenceOutOfRange is returned under WithStrictThresholds when
// minConfidence is not in [0, 1].
var ErrConfidenceOutOfRange = errors.New("rules: min confidence out of range [0,1]")

// Rule is an association rule Antecedent → Consequent.
//
// Antecedent and Consequent are disjoint, non-empty, and their union is a
// frequent itemset whose support is Support.
type Rule struct {
	Antecedent itemset.Itemset `json:"antecedent"`
	Consequent itemset.Itemset `json:"consequent"`
	Support    float64         `json:"support"`
	Confidence float64         `json:"confidence"`
	Lift       float64         `json:"lift"`
}

// String renders the rule as "{a} → {b} (sup=0.500, conf=0.667, lift=0.889)".
func (r Rule) String() string {
	return fmt.Sprintf("%s → %s (sup=%.3f, conf=%.3f, lift=%.3f)",
		r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
}

// Itemset returns Antecedent ∪ Consequent.
func (r Rule) Itemset() itemset.Itemset {
	return r.Antecedent.Union(r.Consequent)
}

// Option configures rule generation.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// StrictThresholds rejects minConfidence outside [0, 1].
	StrictThresholds bool
}

// DefaultOptions returns lenient thresholds.
func DefaultOptions() Options {
	return Options{StrictThresholds: false}
}

// WithStrictThresholds makes Generate validate minConfidence.
func WithStrictThresholds() Option {
	return func(o *Options) {
		o.StrictThresholds = true
	}
}
