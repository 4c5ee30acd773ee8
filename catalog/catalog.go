// Package catalog holds the read-only product catalog and order history, and
// the pure filter, sort and totals functions computed over them.
package catalog

import (
	"marketly/domain"
)

// Catalog is an ordered, id-indexed set of products fixed for the process
// lifetime.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New validates products and builds a catalog in the given order.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := domain.ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, domain.NewInvalidProductError("id", "duplicate", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	c, err := New(seedProducts)
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len is the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product.
func (c *Catalog) ByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Get is ByID with a ProductNotFoundError for unknown ids.
func (c *Catalog) Get(id string) (domain.Product, error) {
	p, ok := c.ByID(id)
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return p, nil
}

// ByCategory returns the products of one category; AllCategories returns all.
func (c *Catalog) ByCategory(cat domain.Category) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if MatchCategory(p, cat) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the categories that have at least one product, in
// display order.
func (c *Catalog) Categories() []domain.Category {
	present := make(map[domain.Category]bool)
	for _, p := range c.products {
		present[p.Category] = true
	}
	out := make([]domain.Category, 0, len(present))
	for _, cat := range domain.Categories {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Featured returns the products flagged for the home page.
func (c *Catalog) Featured() []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
