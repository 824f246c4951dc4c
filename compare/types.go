// Package compare defines the result types, options and errors of the
// side-by-side miner comparison.
package compare

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/lvbasket/apriori"
	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// ErrMinersDisagree is returned by Report.Err when the horizontal and
// vertical runs produced different itemsets or rules.
var ErrMinersDisagree = errors.New("compare: miners disagree")

// Algorithm names one of the compared miners.
type Algorithm string

const (
	Horizontal Algorithm = "apriori"
	Vertical   Algorithm = "eclat"
)

// supportEps is the tolerance used when matching supports of the two miners.
const supportEps = 1e-12

// Result is the measured outcome of one miner followed by rule generation.
type Result struct {
	Algorithm Algorithm     `json:"algorithm"`
	Duration  time.Duration `json:"duration_ns"`

	// AllocBytes is the TotalAlloc delta across the run. In parallel mode
	// it also counts the other miner's allocations.
	AllocBytes uint64 `json:"alloc_bytes"`

	// PeakHeapBytes is the highest HeapAlloc sampled during the run minus
	// the live heap right before it. In parallel mode both runs share the
	// heap, so each peak also holds the other run's live data.
	PeakHeapBytes uint64 `json:"peak_heap_bytes"`

	Itemsets  int            `json:"itemsets"`
	RuleCount int            `json:"rules"`
	Levels    itemset.Levels `json:"-"`
	Rules     []rules.Rule   `json:"-"`
}

// Millis returns the duration in fractional milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Duration) / float64(time.Millisecond)
}

// Report holds both results and how they relate.
type Report struct {
	MinSupport    float64 `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
	Transactions  int     `json:"transactions"`
	Parallel      bool    `json:"parallel"`

	Horizontal Result `json:"horizontal"`
	Vertical   Result `json:"vertical"`

	ItemsetsMatch  bool              `json:"itemsets_match"`
	RulesMatch     bool              `json:"rules_match"`
	OnlyHorizontal []itemset.Itemset `json:"only_horizontal,omitempty"`
	OnlyVertical   []itemset.Itemset `json:"only_vertical,omitempty"`
}

// Option configures a comparison run.
type Option func(*Options)

// Options holds the knobs of Run.
type Options struct {
	// Parallel runs both miners concurrently. Memory figures become
	// approximate since both runs share one heap.
	Parallel bool

	// Ctx lets the caller stop waiting on a run. The miners themselves are
	// not interrupted.
	Ctx context.Context

	AprioriOptions []apriori.Option
	EclatOptions   []eclat.Option
	RuleOptions    []rules.Option
}

// DefaultOptions returns a sequential run with a background context and
// default miner options.
func DefaultOptions() Options {
	return Options{
		Parallel: false,
		Ctx:      context.Background(),
	}
}

// WithParallel runs the two miners concurrently.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithContext sets the context Run waits on. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAprioriOptions forwards options to apriori.Mine.
func WithAprioriOptions(opts ...apriori.Option) Option {
	return func(o *Options) {
		o.AprioriOptions = append(o.AprioriOptions, opts...)
	}
}

// WithEclatOptions forwards options to eclat.Mine.
func WithEclatOptions(opts ...eclat.Option) Option {
	return func(o *Options) {
		o.EclatOptions = append(o.EclatOptions, opts...)
	}
}

// WithRuleOptions forwards options to rules.Generate for both runs.
func WithRuleOptions(opts ...rules.Option) Option {
	return func(o *Options) {
		o.RuleOptions = append(o.RuleOptions, opts...)
	}
}
