// Package metrics exposes Prometheus instrumentation for mining runs and the
// HTTP API. Collectors register with the default registry on import.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvbasket/compare"
)

var (
	// Mining
	MiningDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_mining_duration_seconds",
			Help:    "Duration of frequent-itemset mining runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms .. ~2min
		},
		[]string{"algorithm"},
	)

	MiningRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_mining_runs_total",
			Help: "Total number of mining runs",
		},
		[]string{"algorithm", "outcome"}, // outcome: ok, error
	)

	FrequentItemsets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "basket_frequent_itemsets",
			Help: "Number of frequent itemsets found by the last run",
		},
		[]string{"algorithm"},
	)

	RulesGenerated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basket_rules_generated",
			Help: "Number of association rules produced by the last generation",
		},
	)

	// Comparison
	MinerDisagreements = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basket_miner_disagreements_total",
			Help: "Comparison runs where apriori and eclat produced different results",
		},
	)

	ComparisonAllocBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "basket_comparison_alloc_bytes",
			Help: "Bytes allocated by each miner in the last comparison run",
		},
		[]string{"algorithm"},
	)

	// API
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordMining records one mining run.
func RecordMining(algorithm string, duration time.Duration, itemsets int, err error) {
	if err != nil {
		MiningRuns.WithLabelValues(algorithm, "error").Inc()
		return
	}
	MiningRuns.WithLabelValues(algorithm, "ok").Inc()
	MiningDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	FrequentItemsets.WithLabelValues(algorithm).Set(float64(itemsets))
}

// RecordRules records the size of a generated rule set.
func RecordRules(n int) {
	RulesGenerated.Set(float64(n))
}

// RecordComparison records both runs of a comparison report.
func RecordComparison(rep *compare.Report) {
	for _, res := range []compare.Result{rep.Horizontal, rep.Vertical} {
		algo := string(res.Algorithm)
		RecordMining(algo, res.Duration, res.Itemsets, nil)
		ComparisonAllocBytes.WithLabelValues(algo).Set(float64(res.AllocBytes))
	}
	if rep.Err() != nil {
		MinerDisagreements.Inc()
	}
}

// RecordAPIRequest records one HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
