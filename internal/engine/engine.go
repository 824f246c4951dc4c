// Package engine wires the miners, rule generation and the comparison
// harness to configuration, logging and metrics. The CLI and the HTTP
// server both go through it.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvbasket/apriori"
	"github.com/katalvlaran/lvbasket/compare"
	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/internal/config"
	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/internal/metrics"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// Params selects a miner and its thresholds.
type Params struct {
	Algorithm     string
	MinSupport    float64
	MinConfidence float64
	Strict        bool
	SubsetPruning bool
	MaxLength     int
}

// FromConfig copies the mining section.
func FromConfig(m config.MiningConfig) Params {
	return Params{
		Algorithm:     strings.ToLower(m.Algorithm),
		MinSupport:    m.MinSupport,
		MinConfidence: m.MinConfidence,
		Strict:        m.Strict,
		SubsetPruning: m.SubsetPruning,
		MaxLength:     m.MaxLength,
	}
}

func (p Params) aprioriOptions(ctx context.Context) []apriori.Option {
	var opts []apriori.Option
	if ctx.Done() != nil {
		opts = append(opts, apriori.WithOnLevel(func(int, int, int) error { return ctx.Err() }))
	}
	if p.Strict {
		opts = append(opts, apriori.WithStrictThresholds())
	}
	if p.SubsetPruning {
		opts = append(opts, apriori.WithSubsetPruning())
	}
	if p.MaxLength != 0 {
		opts = append(opts, apriori.WithMaxLength(p.MaxLength))
	}

	return opts
}

func (p Params) eclatOptions(ctx context.Context) []eclat.Option {
	var opts []eclat.Option
	if ctx.Done() != nil {
		opts = append(opts, eclat.WithOnItemset(func(itemset.Itemset, float64) error { return ctx.Err() }))
	}
	if p.Strict {
		opts = append(opts, eclat.WithStrictThresholds())
	}
	if p.MaxLength != 0 {
		opts = append(opts, eclat.WithMaxLength(p.MaxLength))
	}

	return opts
}

func (p Params) ruleOptions() []rules.Option {
	if p.Strict {
		return []rules.Option{rules.WithStrictThresholds()}
	}
	return nil
}

// Mine runs the configured miner over txs. Cancelling ctx stops apriori
// between levels and eclat between itemsets; the returned error then wraps
// ctx.Err().
func Mine(ctx context.Context, txs []itemset.Transaction, p Params) (itemset.Levels, time.Duration, error) {
	start := time.Now()
	var (
		levels itemset.Levels
		err    error
	)
	switch p.Algorithm {
	case config.AlgorithmApriori, "":
		p.Algorithm = config.AlgorithmApriori
		levels, err = apriori.MineTransactions(txs, p.MinSupport, p.aprioriOptions(ctx)...)
	case config.AlgorithmEclat:
		levels, err = eclat.Mine(txs, p.MinSupport, p.eclatOptions(ctx)...)
	default:
		err = fmt.Errorf("engine: unknown algorithm %q", p.Algorithm)
	}
	elapsed := time.Since(start)
	metrics.RecordMining(p.Algorithm, elapsed, levels.Count(), err)
	if err != nil {
		return nil, elapsed, err
	}

	logging.Info().
		Str("algorithm", p.Algorithm).
		Float64("min_support", p.MinSupport).
		Int("transactions", len(txs)).
		Int("levels", len(levels)).
		Int("itemsets", levels.Count()).
		Float64("duration_ms", float64(elapsed)/float64(time.Millisecond)).
		Msg("mined frequent itemsets")

	return levels, elapsed, nil
}

// Rules mines txs and derives association rules from the result.
func Rules(ctx context.Context, txs []itemset.Transaction, p Params) (itemset.Levels, []rules.Rule, error) {
	levels, _, err := Mine(ctx, txs, p)
	if err != nil {
		return nil, nil, err
	}
	rs, err := rules.Generate(levels, p.MinConfidence, p.ruleOptions()...)
	if err != nil {
		return nil, nil, err
	}
	metrics.RecordRules(len(rs))
	logging.Info().
		Float64("min_confidence", p.MinConfidence).
		Int("rules", len(rs)).
		Msg("generated association rules")

	return levels, rs, nil
}

// Compare runs both miners through the comparison harness. A disagreement
// is logged and counted but not returned as an error; callers read
// Report.Err.
func Compare(ctx context.Context, txs []itemset.Transaction, p Params, parallel bool) (*compare.Report, error) {
	opts := []compare.Option{
		compare.WithContext(ctx),
		compare.WithAprioriOptions(p.aprioriOptions(ctx)...),
		compare.WithEclatOptions(p.eclatOptions(ctx)...),
		compare.WithRuleOptions(p.ruleOptions()...),
	}
	if parallel {
		opts = append(opts, compare.WithParallel())
	}

	rep, err := compare.Run(txs, p.MinSupport, p.MinConfidence, opts...)
	if err != nil {
		return nil, err
	}
	metrics.RecordComparison(rep)

	var ev *zerolog.Event
	if derr := rep.Err(); derr != nil {
		ev = logging.Warn().Err(derr)
	} else {
		ev = logging.Info()
	}
	w := rep.Winner()
	ev.Str("faster", string(w.Faster)).
		Str("lower_memory", string(w.LowerMemory)).
		Bool("itemsets_match", rep.ItemsetsMatch).
		Bool("rules_match", rep.RulesMatch).
		Bool("parallel", parallel).
		Msg("compared miners")

	return rep, nil
}
