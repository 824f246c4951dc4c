package eclat_test

import (
	"fmt"

	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/itemset"
)

// ExampleMine runs the vertical miner on the four-basket dataset. The
// vertical index is
//
//	bread → T1 T2 T4
//	eggs  → T4
//	milk  → T1 T2 T3
//
// and {bread, milk} is found by intersecting bread ∩ milk = T1 T2.
func ExampleMine() {
	txs := []itemset.Transaction{
		{ID: "T1", Items: itemset.New("milk", "bread")},
		{ID: "T2", Items: itemset.New("milk", "bread")},
		{ID: "T3", Items: itemset.New("milk")},
		{ID: "T4", Items: itemset.New("bread", "eggs")},
	}

	levels, err := eclat.Mine(txs, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range levels.Entries() {
		fmt.Printf("%s %.2f\n", e.Set, e.Support)
	}

	// Output:
	// {bread} 0.75
	// {milk} 0.75
	// {bread, milk} 0.50
}
