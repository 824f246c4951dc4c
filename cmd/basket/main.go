// basket mines frequent itemsets and association rules from market-basket
// transactions, compares the apriori and eclat miners, and serves the same
// operations over HTTP.
package main

import (
	"os"

	"github.com/katalvlaran/lvbasket/cmd/basket/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
