package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/preprocess"
	"github.com/katalvlaran/lvbasket/store"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Clean raw transactions against the product catalog",
	Long:  "Normalizes labels, removes repeated and unknown items, drops baskets with fewer than two items, and writes the cleaned CSV.",
	RunE:  runPreprocess,
}

func init() {
	preprocessCmd.Flags().String("in", "", "raw transactions CSV (default data.transactions_csv)")
	preprocessCmd.Flags().String("products", "", "products CSV with a product_name column (default data.products_csv, else the built-in catalog)")
	preprocessCmd.Flags().String("out", "", "cleaned output CSV (default data.cleaned_csv)")
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	in := flagOr(cmd, "in", cfg.Data.TransactionsCSV)
	products := flagOr(cmd, "products", cfg.Data.ProductsCSV)
	out := flagOr(cmd, "out", cfg.Data.CleanedCSV)

	records, err := store.LoadRecords(in)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(products)
	if err != nil {
		return err
	}

	txs, stats, err := preprocess.Clean(records, catalog)
	if err != nil {
		return err
	}
	if err := store.SaveTransactions(out, txs); err != nil {
		return err
	}

	logging.Info().Str("in", in).Str("out", out).Int("valid", stats.Valid).Msg("preprocessed transactions")
	fmt.Fprint(cmd.OutOrStdout(), stats.Report())

	return nil
}

func loadCatalog(path string) (*preprocess.Catalog, error) {
	if path == "" {
		return preprocess.DefaultCatalog(), nil
	}

	return store.LoadCatalog(path)
}

// flagOr returns the string flag name, or def when it is empty.
func flagOr(cmd *cobra.Command, name, def string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return def
}
