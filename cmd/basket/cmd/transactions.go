package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/store"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Inspect or edit transactions in the bbolt store",
}

var transactionsShowCmd = &cobra.Command{
	Use:   "show ID...",
	Short: "Print stored transactions by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTransactionsShow,
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Remove stored transactions by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTransactionsDelete,
}

func init() {
	transactionsCmd.AddCommand(transactionsShowCmd, transactionsDeleteCmd)
}

func runTransactionsShow(cmd *cobra.Command, args []string) error {
	s, err := store.OpenBolt(cfg.Data.BoltPath)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()
	for _, id := range args {
		tx, ok, err := s.Get(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("transaction %q: %w", id, store.ErrNotFound)
		}
		fmt.Fprintf(w, "%s: %s\n", tx.ID, strings.Join(tx.Items.Items(), ", "))
	}

	return nil
}

func runTransactionsDelete(cmd *cobra.Command, args []string) error {
	s, err := store.OpenBolt(cfg.Data.BoltPath)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, id := range args {
		if err := s.Delete(id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
	}
	n, err := s.Count()
	if err != nil {
		return err
	}
	logging.Info().Strs("ids", args).Int("remaining", n).Msg("deleted transactions")
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d transactions, %d stored\n", len(args), n)

	return nil
}
