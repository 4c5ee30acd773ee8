// Package shop holds the mutable storefront state: cart, wishlist,
// recently-viewed products and the session. Every store keeps its collection
// in memory and writes the whole collection to storage on each mutation; the
// in-memory value only changes once the write has succeeded.
package shop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"marketly/domain"
	"marketly/store"
)

const (
	CartKey     = "marketly-cart"
	cartVersion = 1
)

// Cart owns the line items.
type Cart struct {
	mu     sync.RWMutex
	lines  []domain.CartLine
	coll   *store.Collection[[]domain.CartLine]
	logger *slog.Logger
}

// NewCart loads the persisted cart.
func NewCart(ctx context.Context, p *store.Persister, logger *slog.Logger) *Cart {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cart{
		coll:   store.NewCollection(p, CartKey, cartVersion, emptyLines, validateLines),
		logger: logger.With("store", "cart"),
	}
	c.lines = c.coll.Load(ctx)
	return c
}

func emptyLines() []domain.CartLine { return []domain.CartLine{} }

func validateLines(lines []domain.CartLine) error {
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			return fmt.Errorf("line without product id")
		}
		if l.Quantity < 1 {
			return fmt.Errorf("line %s has quantity %d", l.ProductID, l.Quantity)
		}
		if seen[l.ProductID] {
			return fmt.Errorf("duplicate line %s", l.ProductID)
		}
		seen[l.ProductID] = true
	}
	return nil
}

// commit persists next and then makes it current. Callers hold c.mu.
func (c *Cart) commit(ctx context.Context, next []domain.CartLine) error {
	if err := c.coll.Save(ctx, next); err != nil {
		return err
	}
	c.lines = next
	return nil
}

func (c *Cart) snapshot() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func mergeLine(lines []domain.CartLine, productID string, qty int) []domain.CartLine {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			return lines
		}
	}
	return append(lines, domain.CartLine{ProductID: productID, Quantity: qty})
}

func checkAdd(productID string, qty int) error {
	if productID == "" {
		return domain.NewInvalidProductError("id", "cannot be empty", productID)
	}
	if qty < 1 {
		return domain.NewInvalidQuantityError(productID, qty)
	}
	return nil
}

// Add increments the line for productID by qty, creating it if needed.
func (c *Cart) Add(ctx context.Context, productID string, qty int) error {
	if err := checkAdd(productID, qty); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.commit(ctx, mergeLine(c.snapshot(), productID, qty)); err != nil {
		return err
	}
	c.logger.Debug("added to cart", "product_id", productID, "quantity", qty)
	return nil
}

// AddMultiple merges every entry like Add, with a single write. The batch is
// rejected as a whole if any entry is invalid.
func (c *Cart) AddMultiple(ctx context.Context, entries []domain.CartLine) error {
	for _, e := range entries {
		if err := checkAdd(e.ProductID, e.Quantity); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.snapshot()
	for _, e := range entries {
		next = mergeLine(next, e.ProductID, e.Quantity)
	}
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.logger.Debug("merged into cart", "entries", len(entries))
	return nil
}

// Reorder copies an order's products and quantities into the cart.
func (c *Cart) Reorder(ctx context.Context, o domain.Order) error {
	return c.AddMultiple(ctx, o.ReorderLines())
}

// UpdateQuantity replaces the quantity of an existing line. Quantities below
// one are stored as one; removing a line is Remove's job. Unknown ids are a
// no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.snapshot()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = domain.ClampQuantity(qty)
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.logger.Debug("cart quantity updated", "product_id", productID, "quantity", qty)
	return nil
}

// Remove deletes the line for productID; removing an absent line is a no-op.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]domain.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		if l.ProductID != productID {
			next = append(next, l)
		}
	}
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.logger.Debug("removed from cart", "product_id", productID)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.commit(ctx, emptyLines()); err != nil {
		return err
	}
	c.logger.Debug("cart cleared")
	return nil
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Quantity returns the quantity for productID, or 0.
func (c *Cart) Quantity(productID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Count is the sum of all quantities.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
