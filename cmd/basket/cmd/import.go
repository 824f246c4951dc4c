package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load cleaned transactions into the bbolt store",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().String("in", "", "cleaned transactions CSV (default data.cleaned_csv)")
	importCmd.Flags().Bool("clear", false, "remove stored transactions first")
}

func runImport(cmd *cobra.Command, args []string) error {
	in := flagOr(cmd, "in", cfg.Data.CleanedCSV)
	txs, err := store.LoadTransactions(in)
	if err != nil {
		return err
	}

	s, err := store.OpenBolt(cfg.Data.BoltPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
		if err := s.Clear(); err != nil {
			return err
		}
	}
	if err := s.Put(txs...); err != nil {
		return err
	}
	n, err := s.Count()
	if err != nil {
		return err
	}

	logging.Info().Str("in", in).Str("db", cfg.Data.BoltPath).Int("imported", len(txs)).Msg("imported transactions")
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d transactions, %d stored\n", len(txs), n)

	return nil
}
