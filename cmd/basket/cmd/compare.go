package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/compare"
	"github.com/katalvlaran/lvbasket/internal/engine"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run apriori and eclat side by side",
	Long:  "Mines with both algorithms at the same thresholds, prints timing, memory and result counts, and fails when the results differ.",
	RunE:  runCompare,
}

func init() {
	addMiningFlags(compareCmd, true)
	addSourceFlags(compareCmd)
	compareCmd.Flags().Bool("parallel", false, "run both miners concurrently")
	compareCmd.Flags().Int("sample", 5, "sample rules to print per miner")
}

func runCompare(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd)
	if err != nil {
		return err
	}
	parallel, _ := cmd.Flags().GetBool("parallel")
	p := miningParams(cmd)

	rep, err := engine.Compare(cmd.Context(), txs, p, parallel)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "min_support=%.3f min_confidence=%.3f transactions=%d\n\n", p.MinSupport, p.MinConfidence, len(txs))
	fmt.Fprint(w, rep.Table())
	fmt.Fprintln(w)
	fmt.Fprint(w, rep.Winner())

	sample, _ := cmd.Flags().GetInt("sample")
	printSample(cmd, rep.Horizontal, sample)
	printSample(cmd, rep.Vertical, sample)

	return rep.Err()
}

func printSample(cmd *cobra.Command, res compare.Result, n int) {
	if n <= 0 || len(res.Rules) == 0 {
		return
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nSample rules from %s (%d total):\n", res.Algorithm, res.RuleCount)
	for i, r := range res.Rules {
		if i == n {
			break
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, r)
	}
}
