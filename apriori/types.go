// Package apriori provides tunable options and error definitions
// for the level-wise frequent-itemset miner.
package apriori

import (
	"errors"
	"fmt"
)

// Sentinel errors for Apriori execution.
var (
	// ErrSupportOutOfRange is returned under WithStrictThresholds when
	// minSupport is not in (0, 1].
	ErrSupportOutOfRange = errors.New("apriori: min support out of range (0,1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("apriori: invalid option supplied")
)

// Option configures Apriori behavior via functional arguments.
// If an Option is invalid (e.g. negative length cap), it is recorded
// internally and surfaced as ErrOptionViolation when Mine is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a mining run.
type Options struct {
	// SubsetPruning drops a candidate before support counting when any of
	// its (k-1)-subsets is not frequent. Output is unchanged; only the
	// number of counted candidates shrinks.
	SubsetPruning bool

	// StrictThresholds rejects minSupport outside (0, 1] instead of
	// silently producing an empty or all-inclusive result.
	StrictThresholds bool

	// MaxLength, if > 0, stops the search after itemsets of this size.
	// A value of 0 means no cap.
	MaxLength int

	// OnLevel is called after each level is counted with the level size k,
	// the number of counted candidates, and the number found frequent.
	// Returning an error aborts the run.
	OnLevel func(k, candidates, frequent int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - pairwise-union candidate generation without subset pruning
//   - lenient thresholds
//   - no length cap
//   - a no-op OnLevel hook
func DefaultOptions() Options {
	return Options{
		SubsetPruning:    false,
		StrictThresholds: false,
		MaxLength:        0,
		OnLevel:          func(int, int, int) error { return nil },
	}
}

// WithSubsetPruning enables the classic Apriori prune step.
func WithSubsetPruning() Option {
	return func(o *Options) {
		o.SubsetPruning = true
	}
}

// WithStrictThresholds makes Mine validate minSupport.
func WithStrictThresholds() Option {
	return func(o *Options) {
		o.StrictThresholds = true
	}
}

// WithMaxLength caps the itemset size.
//
//	n > 0: stop after level n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithOnLevel registers a per-level progress callback.
func WithOnLevel(fn func(k, candidates, frequent int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
