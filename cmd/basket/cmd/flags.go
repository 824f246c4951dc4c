package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/engine"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/store"
)

// addMiningFlags registers the threshold flags. Unset flags fall back to
// the mining section of the config.
func addMiningFlags(cmd *cobra.Command, withConfidence bool) {
	f := cmd.Flags()
	f.String("algorithm", "", "miner: apriori or eclat")
	f.Float64("min-support", 0, "minimum support in (0,1]")
	f.Int("max-length", 0, "largest itemset size, 0 for no cap")
	f.Bool("strict", false, "reject thresholds outside their range")
	f.Bool("subset-pruning", false, "apriori: prune candidates with an infrequent subset")
	if withConfidence {
		f.Float64("min-confidence", 0, "minimum rule confidence in [0,1]")
	}
}

func miningParams(cmd *cobra.Command) engine.Params {
	p := engine.FromConfig(cfg.Mining)
	f := cmd.Flags()
	if f.Changed("algorithm") {
		p.Algorithm, _ = f.GetString("algorithm")
	}
	if f.Changed("min-support") {
		p.MinSupport, _ = f.GetFloat64("min-support")
	}
	if f.Changed("max-length") {
		p.MaxLength, _ = f.GetInt("max-length")
	}
	if f.Changed("strict") {
		p.Strict, _ = f.GetBool("strict")
	}
	if f.Changed("subset-pruning") {
		p.SubsetPruning, _ = f.GetBool("subset-pruning")
	}
	if f.Lookup("min-confidence") != nil && f.Changed("min-confidence") {
		p.MinConfidence, _ = f.GetFloat64("min-confidence")
	}

	return p
}

// addSourceFlags registers where transactions are read from.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("in", "", "cleaned transactions CSV (default data.cleaned_csv)")
	cmd.Flags().Bool("bolt", false, "read transactions from the bbolt store instead of CSV")
}

func loadTransactions(cmd *cobra.Command) ([]itemset.Transaction, error) {
	if fromBolt, _ := cmd.Flags().GetBool("bolt"); fromBolt {
		s, err := store.OpenBolt(cfg.Data.BoltPath)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.All()
	}

	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		in = cfg.Data.CleanedCSV
	}
	txs, err := store.LoadTransactions(in)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	return txs, nil
}
