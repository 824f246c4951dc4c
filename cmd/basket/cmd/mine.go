package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/engine"
	"github.com/katalvlaran/lvbasket/store"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine frequent itemsets",
	RunE:  runMine,
}

func init() {
	addMiningFlags(mineCmd, false)
	addSourceFlags(mineCmd)
	mineCmd.Flags().Bool("json", false, "print itemsets as JSON")
}

func runMine(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd)
	if err != nil {
		return err
	}
	p := miningParams(cmd)
	levels, elapsed, err := engine.Mine(cmd.Context(), txs, p)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return store.WriteLevelsJSON(w, levels)
	}

	fmt.Fprintf(w, "%d frequent itemsets in %d transactions (min support %.3f, %s)\n",
		levels.Count(), len(txs), p.MinSupport, elapsed.Round(time.Microsecond))
	for i, level := range levels {
		if len(level) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nL%d (%d)\n", i+1, len(level))
		for _, e := range level.Sorted() {
			fmt.Fprintf(w, "  %-40s %.3f\n", e.Set, e.Support)
		}
	}

	return nil
}
