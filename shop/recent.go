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
	RecentlyViewedKey = "recently_viewed_products"
	recentVersion     = 1

	// MaxRecentlyViewed bounds the recently-viewed list.
	MaxRecentlyViewed = 7
)

// RecentlyViewed keeps the last viewed products, most recent first.
type RecentlyViewed struct {
	mu     sync.RWMutex
	items  []domain.Product
	coll   *store.Collection[[]domain.Product]
	logger *slog.Logger
}

// NewRecentlyViewed loads the persisted list.
func NewRecentlyViewed(ctx context.Context, p *store.Persister, logger *slog.Logger) *RecentlyViewed {
	if logger == nil {
		logger = slog.Default()
	}
	r := &RecentlyViewed{
		coll: store.NewCollection(p, RecentlyViewedKey, recentVersion, emptyProducts, func(ps []domain.Product) error {
			if len(ps) > MaxRecentlyViewed {
				return fmt.Errorf("%d entries exceed bound %d", len(ps), MaxRecentlyViewed)
			}
			return validateUniqueProducts(ps)
		}),
		logger: logger.With("store", "recently_viewed"),
	}
	r.items = r.coll.Load(ctx)
	return r
}

// Add moves product to the front, dropping any older entry for it and
// anything past the bound.
func (r *RecentlyViewed) Add(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Product, 0, MaxRecentlyViewed)
	next = append(next, product)
	for _, p := range r.items {
		if len(next) == MaxRecentlyViewed {
			break
		}
		if p.ID != product.ID {
			next = append(next, p)
		}
	}
	if err := r.coll.Save(ctx, next); err != nil {
		return err
	}
	r.items = next
	r.logger.Debug("product viewed", "product_id", product.ID)
	return nil
}

// Clear empties the list.
func (r *RecentlyViewed) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.coll.Clear(ctx); err != nil {
		return err
	}
	r.items = emptyProducts()
	return nil
}

// Items returns a copy, most recent first.
func (r *RecentlyViewed) Items() []domain.Product {
	return r.Recent(MaxRecentlyViewed)
}

// Recent returns at most n products, most recent first.
func (r *RecentlyViewed) Recent(n int) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n > len(r.items) {
		n = len(r.items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]domain.Product, n)
	copy(out, r.items[:n])
	return out
}
