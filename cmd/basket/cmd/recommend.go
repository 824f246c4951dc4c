package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/engine"
	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/recommend"
	"github.com/katalvlaran/lvbasket/rules"
	"github.com/katalvlaran/lvbasket/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [product]",
	Short: "Suggest products bought together with a product",
	Long:  "Ranks the rules whose antecedent contains the product. Without a product, lists the products that have recommendations.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecommend,
}

func init() {
	addMiningFlags(recommendCmd, true)
	addSourceFlags(recommendCmd)
	recommendCmd.Flags().Int("limit", 10, "maximum recommendations, 0 for all")
	recommendCmd.Flags().String("snapshot", "", "use a rule snapshot saved with rules --save instead of mining")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	snapshot, _ := cmd.Flags().GetString("snapshot")

	var (
		txs []itemset.Transaction
		rs  []rules.Rule
		err error
	)
	if snapshot != "" {
		rs, err = loadSnapshot(snapshot)
	} else {
		txs, err = loadTransactions(cmd)
		if err == nil {
			_, rs, err = engine.Rules(cmd.Context(), txs, miningParams(cmd))
		}
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		products := recommend.Products(txs, rs)
		fmt.Fprintf(w, "%d products\n", len(products))
		for _, p := range products {
			fmt.Fprintf(w, "  %s\n", p)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	res := recommend.For(rs, args[0], limit)
	if len(res.Recommendations) == 0 {
		fmt.Fprintf(w, "No recommendations for %q\n", res.Product)
		return nil
	}

	fmt.Fprintf(w, "Customers who buy %s also buy:\n", res.Product)
	for i, rec := range res.Recommendations {
		fmt.Fprintf(w, "%3d. %-24s confidence %.2f  lift %.2f  %s\n",
			i+1, rec.Rule.Consequent, rec.Rule.Confidence, rec.Rule.Lift, rec.Strength)
	}
	if len(res.Bundle) > 1 {
		fmt.Fprintf(w, "\nSuggested bundle: %s\n", strings.Join(res.Bundle, ", "))
	}
	if res.CrossSell {
		fmt.Fprintln(w, "Cross-sell opportunity: yes")
	}

	return nil
}

func loadSnapshot(name string) ([]rules.Rule, error) {
	s, err := store.OpenBolt(cfg.Data.BoltPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	rs, savedAt, err := s.LoadRules(name)
	if err != nil {
		return nil, err
	}
	logging.Debug().Str("name", name).Time("saved_at", savedAt).Int("rules", len(rs)).Msg("loaded rule snapshot")

	return rs, nil
}
