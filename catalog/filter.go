package catalog

import (
	"sort"
	"strings"

	"marketly/domain"
)

// Criteria are the storefront filter settings. All of them must match.
type Criteria struct {
	Search    string
	Category  domain.Category
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

// DefaultCriteria matches the whole catalog: no search, all categories,
// prices 0 to 1000 and any rating.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: domain.AllCategories,
		MinPrice: 0,
		MaxPrice: 1000,
	}
}

// MatchSearch is a case-insensitive substring match on name, description or
// category. An empty query matches everything.
func MatchSearch(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q)
}

// MatchCategory is an exact match; AllCategories matches everything.
func MatchCategory(p domain.Product, cat domain.Category) bool {
	return cat == domain.AllCategories || p.Category == cat
}

// MatchPrice checks lo <= price <= hi.
func MatchPrice(p domain.Product, lo, hi float64) bool {
	return p.Price >= lo && p.Price <= hi
}

// MatchRating checks rating >= min.
func MatchRating(p domain.Product, min float64) bool {
	return p.Rating >= min
}

// Matches evaluates every predicate of c against p.
func (c Criteria) Matches(p domain.Product) bool {
	search := MatchSearch(p, c.Search)
	category := MatchCategory(p, c.Category)
	price := MatchPrice(p, c.MinPrice, c.MaxPrice)
	rating := MatchRating(p, c.MinRating)
	return search && category && price && rating
}

// Filter returns the products matching c, in input order.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortKey orders the inventory table.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByID    SortKey = "id"
	SortByStock SortKey = "stock"
	SortByPrice SortKey = "price"
)

// SortInventory returns a stably sorted copy of products. An unknown key
// keeps the input order.
func SortInventory(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByID:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	case SortByStock:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	}
	return out
}

// StockStatus buckets products on the inventory screen.
type StockStatus string

const (
	StockAll StockStatus = "all"
	StockLow StockStatus = "low"
	StockOut StockStatus = "out"
	StockIn  StockStatus = "in"
)

// LowStockThreshold is the stock below which an in-stock product is "low".
const LowStockThreshold = 20

// StatusOf classifies a product's stock.
func StatusOf(p domain.Product) StockStatus {
	switch {
	case p.Stock == 0:
		return StockOut
	case p.Stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// FilterInventory applies the inventory screen's search (name or id,
// case-insensitive) and stock bucket.
func FilterInventory(products []domain.Product, search string, status StockStatus) []domain.Product {
	q := strings.ToLower(search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) {
			continue
		}
		if status != "" && status != StockAll && StatusOf(p) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}
