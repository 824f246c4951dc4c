// Package eclat defines options and error definitions for the vertical
// (tid-set intersection) frequent-itemset miner.
package eclat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbasket/itemset"
)

var (
	// ErrSupportOutOfRange is returned under WithStrictThresholds when
	// minSupport is not in (0, 1].
	ErrSupportOutOfRange = errors.New("eclat: min support out of range (0,1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("eclat: invalid option supplied")
)

// Option configures Eclat behavior.
type Option func(*Options)

// Options holds parameters and callbacks for a mining run.
type Options struct {
	// StrictThresholds rejects minSupport outside (0, 1].
	StrictThresholds bool

	// MaxLength, if > 0, stops extending prefixes once they reach this size.
	MaxLength int

	// OnItemset, if non-nil, is invoked for every frequent itemset as soon
	// as it is found (depth-first order). Returning an error aborts the run.
	OnItemset func(set itemset.Itemset, support float64) error

	err error
}

// DefaultOptions returns lenient thresholds, no length cap and no hook.
func DefaultOptions() Options {
	return Options{
		StrictThresholds: false,
		MaxLength:        0,
		OnItemset:        nil,
	}
}

// WithStrictThresholds makes Mine validate minSupport.
func WithStrictThresholds() Option {
	return func(o *Options) {
		o.StrictThresholds = true
	}
}

// WithMaxLength caps the itemset size; n < 0 is recorded as ErrOptionViolation.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithOnItemset installs fn as a discovery hook.
func WithOnItemset(fn func(set itemset.Itemset, support float64) error) Option {
	return func(o *Options) {
		o.OnItemset = fn
	}
}
