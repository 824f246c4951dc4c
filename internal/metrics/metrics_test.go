package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvbasket/compare"
)

func TestRecordMining(t *testing.T) {
	okBefore := testutil.ToFloat64(MiningRuns.WithLabelValues("apriori", "ok"))
	errBefore := testutil.ToFloat64(MiningRuns.WithLabelValues("apriori", "error"))

	RecordMining("apriori", 3*time.Millisecond, 7, nil)
	RecordMining("apriori", 0, 0, errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(MiningRuns.WithLabelValues("apriori", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(MiningRuns.WithLabelValues("apriori", "error")))
	assert.Equal(t, 7.0, testutil.ToFloat64(FrequentItemsets.WithLabelValues("apriori")))
}

func TestRecordRules(t *testing.T) {
	RecordRules(12)
	assert.Equal(t, 12.0, testutil.ToFloat64(RulesGenerated))
}

func TestRecordComparison(t *testing.T) {
	before := testutil.ToFloat64(MinerDisagreements)

	RecordComparison(&compare.Report{
		Horizontal:    compare.Result{Algorithm: compare.Horizontal, Itemsets: 3, AllocBytes: 1024},
		Vertical:      compare.Result{Algorithm: compare.Vertical, Itemsets: 3, AllocBytes: 512},
		ItemsetsMatch: true,
		RulesMatch:    true,
	})
	assert.Equal(t, before, testutil.ToFloat64(MinerDisagreements))
	assert.Equal(t, 512.0, testutil.ToFloat64(ComparisonAllocBytes.WithLabelValues("eclat")))

	RecordComparison(&compare.Report{
		Horizontal: compare.Result{Algorithm: compare.Horizontal, Itemsets: 3},
		Vertical:   compare.Result{Algorithm: compare.Vertical, Itemsets: 1},
	})
	assert.Equal(t, before+1, testutil.ToFloat64(MinerDisagreements))
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("POST", "/api/mine", 200, 5*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(APIRequestDuration), 1)
}
