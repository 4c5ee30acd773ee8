// Package domain defines core business types and interfaces.
package domain

// Category is one of the fixed catalog categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryAccessories Category = "Accessories"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"

	// AllCategories matches every category in a filter.
	AllCategories Category = "All Categories"
)

// Categories lists the catalog categories in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryAccessories,
	CategoryHome,
	CategorySports,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a catalog product
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// ValidateProduct checks the invariants of a catalog record.
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewInvalidProductError("id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError("name", "cannot be empty", p.Name)
	}
	if !p.Category.Valid() {
		return NewInvalidProductError("category", "unknown category", p.Category)
	}
	if p.Price < 0 {
		return NewInvalidProductError("price", "must be non-negative", p.Price)
	}
	if p.Stock < 0 {
		return NewInvalidProductError("stock", "must be non-negative", p.Stock)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewInvalidProductError("rating", "must be between 0 and 5", p.Rating)
	}
	if p.ReviewCount < 0 {
		return NewInvalidProductError("reviewCount", "must be non-negative", p.ReviewCount)
	}
	return nil
}

// CartLine is a line item: one product and how many of it.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ClampQuantity returns q, or 1 when q is not positive.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
