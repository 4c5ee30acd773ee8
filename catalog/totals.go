package catalog

import "marketly/domain"

const (
	TaxRate               = 0.10
	FreeShippingThreshold = 100.0
	ShippingFee           = 9.99
)

// Summary is the commerce summary shown next to the cart.
type Summary struct {
	Subtotal              float64  `json:"subtotal"`
	Tax                   float64  `json:"tax"`
	Shipping              float64  `json:"shipping"`
	Total                 float64  `json:"total"`
	FreeShippingRemaining float64  `json:"freeShippingRemaining"`
	StaleLines            []string `json:"staleLines,omitempty"`
}

// ComputeTotals prices lines at the catalog's current prices. Lines whose
// product is no longer in the catalog are left out of every amount and listed
// in StaleLines.
func ComputeTotals(lines []domain.CartLine, c *Catalog) Summary {
	var s Summary
	for _, l := range lines {
		p, ok := c.ByID(l.ProductID)
		if !ok {
			s.StaleLines = append(s.StaleLines, l.ProductID)
			continue
		}
		s.Subtotal += float64(l.Quantity) * p.Price
	}
	s.Tax = s.Subtotal * TaxRate
	s.Shipping = ShippingFor(s.Subtotal)
	s.Total = s.Subtotal + s.Tax + s.Shipping
	s.FreeShippingRemaining = FreeShippingRemaining(s.Subtotal)
	return s
}

// ShippingFor is free strictly above the threshold.
func ShippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// FreeShippingRemaining is how much more must be spent to reach the threshold.
func FreeShippingRemaining(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FreeShippingThreshold - subtotal
}
