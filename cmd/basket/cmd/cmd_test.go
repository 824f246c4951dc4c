package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/generate"
	"github.com/katalvlaran/lvbasket/store"
)

const rawCSV = `transaction_id,items
1,"milk,bread"
2,"Milk, bread, milk"
3,milk
4,"bread,eggs,unicorn"
5,
`

// workspace writes a raw transaction file and a config pointing every data
// path into a temp dir. It returns the config path and the dir.
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raw.csv"), []byte(rawCSV), 0o600))

	yaml := strings.Join([]string{
		"mining:",
		"  min_support: 0.5",
		"  min_confidence: 0.5",
		"data:",
		"  transactions_csv: " + filepath.Join(dir, "raw.csv"),
		"  cleaned_csv: " + filepath.Join(dir, "clean.csv"),
		"  bolt_path: " + filepath.Join(dir, "basket.db"),
		"logging:",
		"  level: error",
		"",
	}, "\n")
	path := filepath.Join(dir, "basket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	return path, dir
}

// resetFlags restores every flag to its default so runs do not leak into
// each other through the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", configFile}, args...))
	err := rootCmd.Execute()

	return out.String(), err
}

func preprocessed(t *testing.T) string {
	t.Helper()
	configFile, _ := workspace(t)
	_, err := run(t, configFile, "preprocess")
	require.NoError(t, err)

	return configFile
}

func TestPreprocess(t *testing.T) {
	configFile, dir := workspace(t)

	out, err := run(t, configFile, "preprocess")
	require.NoError(t, err)
	assert.Contains(t, out, "- Total transactions: 5")
	assert.Contains(t, out, "- Empty transactions: 1")
	assert.Contains(t, out, "- Single-item transactions: 1")
	assert.Contains(t, out, "- Valid transactions: 3")

	txs, err := store.LoadTransactions(filepath.Join(dir, "clean.csv"))
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, []string{"bread", "milk"}, txs[1].Items.Items())
	assert.Equal(t, []string{"bread", "eggs"}, txs[2].Items.Items())
}

func TestMine(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "3 frequent itemsets in 3 transactions")
	assert.Contains(t, out, "L2 (1)")

	out, err = run(t, configFile, "mine", "--algorithm", "eclat", "--json")
	require.NoError(t, err)
	var entries []store.LevelEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 3)

	_, err = run(t, configFile, "mine", "--algorithm", "fpgrowth")
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestRules_ExportAndSnapshot(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "rules", "--export", "json", "--save", "weekly")
	require.NoError(t, err)
	rs, err := store.ReadRulesJSON(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, 1.0, rs[0].Confidence, "sorted by confidence")

	out, err = run(t, configFile, "recommend", "bread", "--snapshot", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Customers who buy bread also buy:")
	assert.Contains(t, out, "{milk}")

	out, err = run(t, configFile, "recommend", "--snapshot", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "2 products")

	_, err = run(t, configFile, "recommend", "bread", "--snapshot", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRules_Top(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "rules", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 rules")
	assert.Contains(t, out, "  1. {milk} → {bread}")
	assert.NotContains(t, out, "  2. ")
}

func TestRules_SortAndConsequent(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "rules", "--sort", "lift")
	require.NoError(t, err)
	assert.Contains(t, out, "2 rules")

	out, err = run(t, configFile, "rules", "--consequent", " Milk ")
	require.NoError(t, err)
	assert.Contains(t, out, "1 rules")
	assert.Contains(t, out, "  1. {bread} → {milk}")

	_, err = run(t, configFile, "rules", "--sort", "support")
	assert.ErrorContains(t, err, "unknown sort key")
}

func TestStats(t *testing.T) {
	configFile, dir := workspace(t)
	_, err := run(t, configFile, "preprocess")
	require.NoError(t, err)

	out, err := run(t, configFile, "stats", "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "- Total transactions: 3")
	assert.Contains(t, out, "- Total items purchased: 6")
	assert.Contains(t, out, "- Unique items: 3")
	assert.Contains(t, out, "  1. bread")
	assert.Contains(t, out, "  2. milk")
	assert.NotContains(t, out, "eggs")

	path := filepath.Join(dir, "freq.csv")
	_, err = run(t, configFile, "stats", "--export", "csv", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "item,count\nbread,3\nmilk,2\neggs,1\n", string(data))

	_, err = run(t, configFile, "stats", "--export", "xml")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestTransactions_ShowAndDelete(t *testing.T) {
	configFile := preprocessed(t)
	_, err := run(t, configFile, "import")
	require.NoError(t, err)

	out, err := run(t, configFile, "transactions", "show", "4")
	require.NoError(t, err)
	assert.Equal(t, "4: bread, eggs\n", out)

	out, err = run(t, configFile, "transactions", "delete", "4", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "2 stored")

	_, err = run(t, configFile, "transactions", "show", "4")
	assert.ErrorIs(t, err, store.ErrNotFound)

	out, err = run(t, configFile, "stats", "--bolt")
	require.NoError(t, err)
	assert.Contains(t, out, "- Total transactions: 2")
}

func TestRecommend_NoMatch(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "recommend", "caviar")
	require.NoError(t, err)
	assert.Contains(t, out, `No recommendations for "caviar"`)
}

func TestCompare(t *testing.T) {
	configFile := preprocessed(t)

	for _, args := range [][]string{{"compare"}, {"compare", "--parallel", "--sample", "0"}} {
		out, err := run(t, configFile, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "Rules Generated Match: Yes (apriori: 2, eclat: 2)", args)
		assert.Contains(t, out, "Execution Time (ms)", args)
	}
}

func TestImport_ThenMineFromBolt(t *testing.T) {
	configFile := preprocessed(t)

	out, err := run(t, configFile, "import")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 transactions, 3 stored")

	out, err = run(t, configFile, "import", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "3 stored")

	out, err = run(t, configFile, "mine", "--bolt")
	require.NoError(t, err)
	assert.Contains(t, out, "3 frequent itemsets in 3 transactions")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "nope.yaml"), "mine")
	assert.Error(t, err)
}

func TestGenerate_ThenPreprocess(t *testing.T) {
	configFile, dir := workspace(t)
	raw := filepath.Join(dir, "generated.csv")

	out, err := run(t, configFile, "generate", "--count", "20", "--seed", "3",
		"--affinity", "0.9:milk,bread", "--noise", "0.1", "--out", raw)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 20 baskets")

	out, err = run(t, configFile, "preprocess", "--in", raw)
	require.NoError(t, err)
	assert.Contains(t, out, "- Total transactions: 20")

	_, err = run(t, configFile, "generate", "--affinity", "milk,bread", "--out", raw)
	assert.ErrorContains(t, err, "want P:item,item")

	_, err = run(t, configFile, "generate", "--p", "2", "--out", raw)
	assert.ErrorIs(t, err, generate.ErrInvalidProbability)
}

func TestParseAffinity(t *testing.T) {
	a, err := parseAffinity(" 0.25 : milk, bread ,")
	require.NoError(t, err)
	assert.Equal(t, 0.25, a.P)
	assert.Equal(t, []string{"milk", "bread"}, a.Items)

	_, err = parseAffinity("x:milk")
	assert.Error(t, err)
	_, err = parseAffinity("0.5:")
	assert.ErrorContains(t, err, "no items")
}
