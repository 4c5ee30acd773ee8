package domain

import "fmt"

// OrderStatus is the fulfilment stage of an order. Stages only move forward.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

var statusSteps = []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered}

// Step returns the zero-based position of s in the fulfilment timeline, or -1.
func (s OrderStatus) Step() int {
	for i, st := range statusSteps {
		if st == s {
			return i
		}
	}
	return -1
}

// Reached reports whether s is at or past other.
func (s OrderStatus) Reached(other OrderStatus) bool {
	return s.Step() >= 0 && other.Step() >= 0 && s.Step() >= other.Step()
}

// ParseOrderStatus converts a display string into an OrderStatus.
func ParseOrderStatus(v string) (OrderStatus, error) {
	s := OrderStatus(v)
	if s.Step() < 0 {
		return "", fmt.Errorf("unknown order status: %q", v)
	}
	return s, nil
}

// OrderLine is a purchased line. Price is the unit price at purchase time.
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a read-only entry of the order history.
type Order struct {
	ID                string      `json:"id"`
	Date              string      `json:"date"`
	Status            OrderStatus `json:"status"`
	Items             []OrderLine `json:"items"`
	Total             float64     `json:"total"`
	TrackingNumber    string      `json:"trackingNumber,omitempty"`
	EstimatedDelivery string      `json:"estimatedDelivery,omitempty"`
}

// ReorderLines copies product ids and quantities of o into cart lines.
// Prices are deliberately dropped; the cart reprices from the live catalog.
func (o Order) ReorderLines() []CartLine {
	out := make([]CartLine, 0, len(o.Items))
	for _, it := range o.Items {
		out = append(out, CartLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}
