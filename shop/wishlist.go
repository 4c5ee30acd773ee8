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
	WishlistKey     = "wishlist"
	wishlistVersion = 1
)

// SessionChecker reports whether someone is logged in.
type SessionChecker interface {
	HasSession() bool
}

// Wishlist owns the saved products of the current session.
type Wishlist struct {
	mu       sync.RWMutex
	items    []domain.Product
	coll     *store.Collection[[]domain.Product]
	sessions SessionChecker
	logger   *slog.Logger
}

// NewWishlist loads the persisted wishlist.
func NewWishlist(ctx context.Context, p *store.Persister, sessions SessionChecker, logger *slog.Logger) *Wishlist {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Wishlist{
		coll:     store.NewCollection(p, WishlistKey, wishlistVersion, emptyProducts, validateUniqueProducts),
		sessions: sessions,
		logger:   logger.With("store", "wishlist"),
	}
	w.items = w.coll.Load(ctx)
	return w
}

func emptyProducts() []domain.Product { return []domain.Product{} }

func validateUniqueProducts(ps []domain.Product) error {
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if p.ID == "" {
			return fmt.Errorf("product without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func (w *Wishlist) indexOf(id string) int {
	for i, p := range w.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Add saves product. It reports NoSessionError when nobody is logged in and
// AlreadyPresentError for a product already saved.
func (w *Wishlist) Add(ctx context.Context, product domain.Product) error {
	if !w.sessions.HasSession() {
		return domain.NewNoSessionError("add to wishlist")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(product.ID) >= 0 {
		return domain.NewAlreadyPresentError(product.ID)
	}
	next := make([]domain.Product, 0, len(w.items)+1)
	next = append(next, w.items...)
	next = append(next, product)
	if err := w.coll.Save(ctx, next); err != nil {
		return err
	}
	w.items = next
	w.logger.Debug("added to wishlist", "product_id", product.ID)
	return nil
}

// Remove drops productID. Removing an absent id is not an error, and the
// resulting collection is persisted even when empty.
func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	if !w.sessions.HasSession() {
		return domain.NewNoSessionError("remove from wishlist")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	next := make([]domain.Product, 0, len(w.items))
	for _, p := range w.items {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	if err := w.coll.Save(ctx, next); err != nil {
		return err
	}
	w.items = next
	w.logger.Debug("removed from wishlist", "product_id", productID)
	return nil
}

// Contains reports membership.
func (w *Wishlist) Contains(productID string) bool {
	if !w.sessions.HasSession() {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(productID) >= 0
}

// Items returns a copy of the saved products; empty without a session.
func (w *Wishlist) Items() []domain.Product {
	if !w.sessions.HasSession() {
		return []domain.Product{}
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Product, len(w.items))
	copy(out, w.items)
	return out
}

// Discard destroys the whole collection, in memory and in storage. It runs
// when the session ends.
func (w *Wishlist) Discard(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.coll.Clear(ctx); err != nil {
		return err
	}
	w.items = emptyProducts()
	w.logger.Debug("wishlist discarded")
	return nil
}
