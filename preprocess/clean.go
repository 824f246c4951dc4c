package preprocess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvbasket/itemset"
)

var (
	// ErrInvalidRecord is returned when a raw record fails validation.
	ErrInvalidRecord = errors.New("preprocess: invalid record")

	// ErrInvalidProduct is returned when a catalog entry fails validation.
	ErrInvalidProduct = errors.New("preprocess: invalid product")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = RegisterValidations(validate)
}

// RegisterValidations adds the custom tags used by Record and Product to v,
// so callers validating structs that embed them can share the rules.
func RegisterValidations(v *validator.Validate) error {
	// labels must not carry the itemset key separator
	return v.RegisterValidation("nosep", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), "\x1f")
	})
}

// Record is one raw transaction as read from a file or request body, before
// any cleaning.
type Record struct {
	ID    string   `json:"transaction_id" validate:"max=64"`
	Items []string `json:"items" validate:"max=1024,dive,max=128,nosep"`
}

// Stats summarizes one cleaning run.
type Stats struct {
	Total      int `json:"total"`       // records read
	Empty      int `json:"empty"`       // dropped with no valid item left
	Single     int `json:"single"`      // dropped with exactly one valid item left
	Duplicates int `json:"duplicates"`  // repeated items removed inside a record
	Invalid    int `json:"invalid"`     // items not in the catalog
	TotalItems int `json:"total_items"` // items across kept transactions
	Uniques    int `json:"uniques"`     // distinct items across kept transactions
	Valid      int `json:"valid"`       // transactions kept
}

// Report renders the stats as a human-readable block.
func (s Stats) Report() string {
	var b strings.Builder
	b.WriteString("Preprocessing Report:\n")
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "- Total transactions: %d\n", s.Total)
	fmt.Fprintf(&b, "- Empty transactions: %d\n", s.Empty)
	fmt.Fprintf(&b, "- Single-item transactions: %d\n", s.Single)
	fmt.Fprintf(&b, "- Duplicate items found: %d instances\n", s.Duplicates)
	fmt.Fprintf(&b, "- Invalid items found: %d instances\n", s.Invalid)
	b.WriteString("\nAfter Cleaning:\n")
	fmt.Fprintf(&b, "- Valid transactions: %d\n", s.Valid)
	fmt.Fprintf(&b, "- Total items: %d\n", s.TotalItems)
	fmt.Fprintf(&b, "- Unique products: %d\n", s.Uniques)

	return b.String()
}

// Clean normalizes every record, removes repeated items, drops items not in
// catalog and discards records left with fewer than two items. A nil
// catalog accepts every non-blank item. Records with a blank ID get a fresh
// UUID. The first record failing validation aborts the run.
func Clean(records []Record, catalog *Catalog) ([]itemset.Transaction, Stats, error) {
	stats := Stats{Total: len(records)}
	out := make([]itemset.Transaction, 0, len(records))
	uniques := make(map[itemset.Item]struct{})

	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, Stats{}, fmt.Errorf("%w: record %d (%q): %v", ErrInvalidRecord, i, rec.ID, err)
		}

		items, dups, invalid := cleanItems(rec.Items, catalog)
		stats.Duplicates += dups
		stats.Invalid += invalid

		switch len(items) {
		case 0:
			stats.Empty++
			continue
		case 1:
			stats.Single++
			continue
		}

		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, itemset.Transaction{ID: id, Items: itemset.New(items...)})
		stats.TotalItems += len(items)
		for _, it := range items {
			uniques[it] = struct{}{}
		}
	}
	stats.Uniques = len(uniques)
	stats.Valid = len(out)

	return out, stats, nil
}

// cleanItems normalizes raw labels, then removes repeats, then removes
// unknown products. Blank labels count as invalid.
func cleanItems(raw []string, catalog *Catalog) (items []itemset.Item, dups, invalid int) {
	seen := make(map[itemset.Item]struct{}, len(raw))
	for _, r := range raw {
		it := itemset.Normalize(r)
		if _, ok := seen[it]; ok {
			dups++
			continue
		}
		seen[it] = struct{}{}
		if it == "" || (catalog != nil && !catalog.Contains(it)) {
			invalid++
			continue
		}
		items = append(items, it)
	}

	return items, dups, invalid
}

// SplitItems splits a comma-joined items cell into raw labels. An empty
// cell yields no labels.
func SplitItems(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}

	return strings.Split(cell, ",")
}
