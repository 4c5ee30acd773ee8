package catalog

import (
	"fmt"

	"marketly/domain"
)

// Orders returns the order history, newest last.
func Orders() []domain.Order {
	out := make([]domain.Order, len(seedOrders))
	for i, o := range seedOrders {
		o.Items = append([]domain.OrderLine(nil), o.Items...)
		out[i] = o
	}
	return out
}

// OrderByID looks up one order of the history.
func OrderByID(id string) (domain.Order, error) {
	for _, o := range Orders() {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order not found: id=%s", id)
}
