package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/engine"
	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
	"github.com/katalvlaran/lvbasket/store"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Generate association rules",
	Long:  "Mines frequent itemsets and derives every rule meeting the confidence threshold, sorted by confidence or lift.",
	RunE:  runRules,
}

func init() {
	addMiningFlags(rulesCmd, true)
	addSourceFlags(rulesCmd)
	f := rulesCmd.Flags()
	f.String("export", "", "write rules as csv or json")
	f.String("out", "", "export file (default stdout)")
	f.String("save", "", "store the rules in the bbolt file under this name")
	f.Int("top", 0, "print only the first N rules")
	f.String("sort", "confidence", "order rules by confidence or lift")
	f.String("consequent", "", "keep only rules that recommend this item")
}

// sortRules orders rs in place by the named metric.
func sortRules(rs []rules.Rule, by string) error {
	switch strings.ToLower(by) {
	case "", "confidence":
		rules.SortByConfidence(rs)
	case "lift":
		rules.SortByLift(rs)
	default:
		return fmt.Errorf("unknown sort key %q (want confidence or lift)", by)
	}

	return nil
}

func runRules(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd)
	if err != nil {
		return err
	}
	_, rs, err := engine.Rules(cmd.Context(), txs, miningParams(cmd))
	if err != nil {
		return err
	}
	if item, _ := cmd.Flags().GetString("consequent"); item != "" {
		rs = rules.WithConsequentItem(rs, itemset.Normalize(item))
	}
	by, _ := cmd.Flags().GetString("sort")
	if err := sortRules(rs, by); err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("save"); name != "" {
		if err := saveRules(name, rs); err != nil {
			return err
		}
	}

	if export, _ := cmd.Flags().GetString("export"); export != "" {
		format, err := store.ParseFormat(export)
		if err != nil {
			return err
		}
		return exportRules(cmd, rs, format)
	}

	top, _ := cmd.Flags().GetInt("top")
	printRules(cmd, rs, top)

	return nil
}

func saveRules(name string, rs []rules.Rule) error {
	s, err := store.OpenBolt(cfg.Data.BoltPath)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveRules(name, rs); err != nil {
		return err
	}
	logging.Info().Str("name", name).Int("rules", len(rs)).Msg("saved rule snapshot")

	return nil
}

func exportRules(cmd *cobra.Command, rs []rules.Rule, format store.Format) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return store.WriteRules(cmd.OutOrStdout(), rs, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := store.WriteRules(f, rs, format); err != nil {
		f.Close()
		return err
	}
	logging.Info().Str("out", out).Str("format", string(format)).Int("rules", len(rs)).Msg("exported rules")

	return f.Close()
}

func printRules(cmd *cobra.Command, rs []rules.Rule, top int) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d rules\n", len(rs))
	for i, r := range rs {
		if top > 0 && i == top {
			break
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, r)
	}
}
