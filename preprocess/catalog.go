package preprocess

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbasket/itemset"
)

// Product is one sellable article of the store.
type Product struct {
	ID       int    `json:"id" validate:"gte=0"`
	Name     string `json:"name" validate:"required,max=128,nosep"`
	Category string `json:"category,omitempty" validate:"max=64"`
}

// Catalog is the set of products an item must belong to in order to
// survive cleaning. Names are stored normalized.
type Catalog struct {
	byName map[itemset.Item]Product
}

// NewCatalog validates and indexes products by normalized name. A later
// product with the same name replaces an earlier one.
func NewCatalog(products ...Product) (*Catalog, error) {
	c := &Catalog{byName: make(map[itemset.Item]Product, len(products))}
	for i, p := range products {
		p.Name = itemset.Normalize(p.Name)
		p.Category = itemset.Normalize(p.Category)
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: product %d: %v", ErrInvalidProduct, i, err)
		}
		c.byName[p.Name] = p
	}

	return c, nil
}

// CatalogFromNames builds a catalog of uncategorized products. Blank names
// are skipped.
func CatalogFromNames(names ...string) (*Catalog, error) {
	products := make([]Product, 0, len(names))
	for _, n := range names {
		if itemset.Normalize(n) == "" {
			continue
		}
		products = append(products, Product{ID: len(products) + 1, Name: n})
	}

	return NewCatalog(products...)
}

// Contains reports whether item is a known product.
func (c *Catalog) Contains(item itemset.Item) bool {
	_, ok := c.byName[item]
	return ok
}

// Product returns the product named item.
func (c *Catalog) Product(item itemset.Item) (Product, bool) {
	p, ok := c.byName[item]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.byName) }

// Products returns every product ordered by ID, then name.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.byName))
	for _, p := range c.byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// Categories returns the distinct non-empty categories in ascending order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, p := range c.byName {
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)

	return out
}

// DefaultCatalog returns the 30-product grocery catalog the sample data is
// drawn from.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultProducts...)
	if err != nil {
		panic(err) // static data
	}

	return c
}

var defaultProducts = []Product{
	{1, "milk", "dairy"},
	{2, "bread", "bakery"},
	{3, "butter", "dairy"},
	{4, "eggs", "dairy"},
	{5, "cheese", "dairy"},
	{6, "yogurt", "dairy"},
	{7, "apple", "produce"},
	{8, "banana", "produce"},
	{9, "orange", "produce"},
	{10, "grape", "produce"},
	{11, "tomato", "produce"},
	{12, "potato", "produce"},
	{13, "onion", "produce"},
	{14, "garlic", "produce"},
	{15, "pepper", "produce"},
	{16, "chicken", "meat"},
	{17, "beef", "meat"},
	{18, "pork", "meat"},
	{19, "rice", "grains"},
	{20, "pasta", "grains"},
	{21, "noodles", "grains"},
	{22, "coffee", "beverages"},
	{23, "tea", "beverages"},
	{24, "juice", "beverages"},
	{25, "soda", "beverages"},
	{26, "water", "beverages"},
	{27, "jam", "condiments"},
	{28, "honey", "condiments"},
	{29, "sauce", "condiments"},
	{30, "vegetables", "produce"},
}
