package compare

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbasket/apriori"
	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// mineFunc runs one miner over the shared input.
type mineFunc func() (itemset.Levels, error)

// Run mines txs with both miners at the same thresholds, generates rules
// from each result and reports timings, memory and agreement.
//
// A disagreement between the miners is not an error of Run; inspect
// Report.Err for it.
func Run(txs []itemset.Transaction, minSupport, minConfidence float64, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	items := itemset.ItemsOf(txs)
	horizontal := func() (itemset.Levels, error) {
		return apriori.Mine(items, minSupport, o.AprioriOptions...)
	}
	vertical := func() (itemset.Levels, error) {
		return eclat.Mine(txs, minSupport, o.EclatOptions...)
	}

	rep := &Report{
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
		Transactions:  len(txs),
		Parallel:      o.Parallel,
	}

	var err error
	if o.Parallel {
		err = runParallel(o, rep, minConfidence, horizontal, vertical)
	} else {
		err = runSequential(o, rep, minConfidence, horizontal, vertical)
	}
	if err != nil {
		return nil, err
	}

	rep.ItemsetsMatch = rep.Horizontal.Levels.Equal(rep.Vertical.Levels, supportEps)
	rep.OnlyHorizontal, rep.OnlyVertical = rep.Horizontal.Levels.Diff(rep.Vertical.Levels)
	rep.RulesMatch = sameRules(rep.Horizontal.Rules, rep.Vertical.Rules)

	return rep, nil
}

func runSequential(o Options, rep *Report, minConfidence float64, h, v mineFunc) error {
	var err error
	if err = o.Ctx.Err(); err != nil {
		return err
	}
	if rep.Horizontal, err = measure(Horizontal, h, minConfidence, o.RuleOptions); err != nil {
		return err
	}
	if err = o.Ctx.Err(); err != nil {
		return err
	}
	rep.Vertical, err = measure(Vertical, v, minConfidence, o.RuleOptions)

	return err
}

func runParallel(o Options, rep *Report, minConfidence float64, h, v mineFunc) error {
	if err := o.Ctx.Err(); err != nil {
		return err
	}
	var g errgroup.Group
	var hr, vr Result
	g.Go(func() error {
		var err error
		hr, err = measure(Horizontal, h, minConfidence, o.RuleOptions)
		return err
	})
	g.Go(func() error {
		var err error
		vr, err = measure(Vertical, v, minConfidence, o.RuleOptions)
		return err
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-o.Ctx.Done():
		// the miners keep running until they finish; their results are dropped
		return o.Ctx.Err()
	}
	rep.Horizontal, rep.Vertical = hr, vr

	return nil
}

// heapSampleInterval is how often HeapAlloc is read while a run is in
// progress.
const heapSampleInterval = time.Millisecond

// measure runs mine and rule generation and records time and memory.
// The heap is collected first so the baseline only holds live data; the
// peak is the largest HeapAlloc seen during the run above that baseline.
func measure(algo Algorithm, mine mineFunc, minConfidence float64, ropts []rules.Option) (Result, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	stop := sampleHeap(heapSampleInterval)
	start := time.Now()

	levels, err := mine()
	if err != nil {
		stop()
		return Result{}, fmt.Errorf("compare: %s: %w", algo, err)
	}
	rs, err := rules.Generate(levels, minConfidence, ropts...)
	if err != nil {
		stop()
		return Result{}, fmt.Errorf("compare: %s rules: %w", algo, err)
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	peak := max(stop(), after.HeapAlloc)
	var peakDelta uint64
	if peak > before.HeapAlloc {
		peakDelta = peak - before.HeapAlloc
	}

	return Result{
		Algorithm:     algo,
		Duration:      elapsed,
		AllocBytes:    after.TotalAlloc - before.TotalAlloc,
		PeakHeapBytes: peakDelta,
		Itemsets:      levels.Count(),
		RuleCount:     len(rs),
		Levels:        levels,
		Rules:         rs,
	}, nil
}

// sampleHeap reads HeapAlloc every interval in a goroutine. The returned
// func stops the sampling and reports the largest value seen.
func sampleHeap(interval time.Duration) func() uint64 {
	stopc := make(chan struct{})
	peakc := make(chan uint64, 1)
	go func() {
		var ms runtime.MemStats
		var peak uint64
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			runtime.ReadMemStats(&ms)
			peak = max(peak, ms.HeapAlloc)
			select {
			case <-stopc:
				peakc <- peak
				return
			case <-ticker.C:
			}
		}
	}()

	return func() uint64 {
		close(stopc)
		return <-peakc
	}
}

// sameRules reports whether a and b contain the same antecedent/consequent
// pairs, ignoring order.
func sameRules(a, b []rules.Rule) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, r := range a {
		seen[ruleKey(r)]++
	}
	for _, r := range b {
		k := ruleKey(r)
		if seen[k] == 0 {
			return false
		}
		seen[k]--
	}

	return true
}

func ruleKey(r rules.Rule) string {
	return r.Antecedent.Key() + "\x1e" + r.Consequent.Key()
}

// Err returns nil when both miners agree and an ErrMinersDisagree wrap
// with the counts otherwise.
func (r *Report) Err() error {
	if r.ItemsetsMatch && r.RulesMatch {
		return nil
	}

	return fmt.Errorf("%w: itemsets %d vs %d (only %s: %d, only %s: %d), rules %d vs %d",
		ErrMinersDisagree,
		r.Horizontal.Itemsets, r.Vertical.Itemsets,
		Horizontal, len(r.OnlyHorizontal), Vertical, len(r.OnlyVertical),
		r.Horizontal.RuleCount, r.Vertical.RuleCount)
}
