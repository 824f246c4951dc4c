package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize transactions and rank items by frequency",
	RunE:  runStats,
}

func init() {
	addSourceFlags(statsCmd)
	f := statsCmd.Flags()
	f.Int("top", 10, "print the N most frequent items, 0 for all")
	f.String("export", "", "write every item frequency as csv or json")
	f.String("out", "", "export file (default stdout)")
}

func runStats(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd)
	if err != nil {
		return err
	}
	counts := itemset.ItemFrequencies(txs)

	if export, _ := cmd.Flags().GetString("export"); export != "" {
		format, err := store.ParseFormat(export)
		if err != nil {
			return err
		}
		return exportFrequencies(cmd, counts, format)
	}

	sum := itemset.Summarize(txs)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "- Total transactions: %d\n", sum.Transactions)
	fmt.Fprintf(w, "- Total items purchased: %d\n", sum.TotalItems)
	fmt.Fprintf(w, "- Unique items: %d\n", sum.UniqueItems)
	if len(counts) == 0 {
		return nil
	}

	top, _ := cmd.Flags().GetInt("top")
	if top <= 0 || top > len(counts) {
		top = len(counts)
	}
	fmt.Fprintf(w, "\nMost popular items\n")
	for i, c := range counts[:top] {
		fmt.Fprintf(w, "%3d. %-20s %d\n", i+1, c.Item, c.Count)
	}

	return nil
}

func exportFrequencies(cmd *cobra.Command, counts []itemset.ItemCount, format store.Format) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return store.WriteItemFrequencies(cmd.OutOrStdout(), counts, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := store.WriteItemFrequencies(f, counts, format); err != nil {
		f.Close()
		return err
	}
	logging.Info().Str("out", out).Str("format", string(format)).Int("items", len(counts)).Msg("exported item frequencies")

	return f.Close()
}
