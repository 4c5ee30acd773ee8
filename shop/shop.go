package shop

import (
	"context"
	"errors"
	"log/slog"

	"marketly/catalog"
	"marketly/domain"
	"marketly/store"
)

// Shop wires the stores over one persister and the catalog. Construct it once
// at start-up and pass it to consumers.
type Shop struct {
	Catalog  *catalog.Catalog
	Cart     *Cart
	Wishlist *Wishlist
	Recent   *RecentlyViewed
	Auth     *Auth

	persister *store.Persister
	logger    *slog.Logger
}

// New loads every store from p. Logout discards the wishlist, and so does
// starting without a session.
func New(ctx context.Context, p *store.Persister, cat *catalog.Catalog, logger *slog.Logger) *Shop {
	if logger == nil {
		logger = slog.Default()
	}
	auth := NewAuth(ctx, p, logger)
	wishlist := NewWishlist(ctx, p, auth, logger)
	auth.AddLogoutHook(wishlist.Discard)

	// a wishlist without a session has no owner
	if !auth.HasSession() {
		if err := wishlist.Discard(ctx); err != nil {
			logger.Warn("discard orphaned wishlist failed", "error", err)
		}
	}

	return &Shop{
		Catalog:   cat,
		Cart:      NewCart(ctx, p, logger),
		Wishlist:  wishlist,
		Recent:    NewRecentlyViewed(ctx, p, logger),
		Auth:      auth,
		persister: p,
		logger:    logger,
	}
}

// Persister exposes storage diagnostics.
func (s *Shop) Persister() *store.Persister {
	return s.persister
}

// Totals prices the current cart against the catalog.
func (s *Shop) Totals() catalog.Summary {
	return catalog.ComputeTotals(s.Cart.Lines(), s.Catalog)
}

// ViewProduct looks a product up and records the view.
func (s *Shop) ViewProduct(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Catalog.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.Recent.Add(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// AddToCart adds a catalog product to the cart.
func (s *Shop) AddToCart(ctx context.Context, id string, qty int) error {
	if _, err := s.Catalog.Get(id); err != nil {
		return err
	}
	return s.Cart.Add(ctx, id, qty)
}

// AddToWishlist saves a catalog product for the current session.
func (s *Shop) AddToWishlist(ctx context.Context, id string) error {
	p, err := s.Catalog.Get(id)
	if err != nil {
		return err
	}
	return s.Wishlist.Add(ctx, p)
}

// Reorder merges an order of the history into the cart and returns how many
// lines it carried.
func (s *Shop) Reorder(ctx context.Context, orderID string) (int, error) {
	o, err := catalog.OrderByID(orderID)
	if err != nil {
		return 0, err
	}
	if err := s.Cart.Reorder(ctx, o); err != nil {
		return 0, err
	}
	s.logger.Info("order reordered", "order_id", o.ID, "lines", len(o.Items))
	return len(o.Items), nil
}

// Authorize applies the page guard to the current visitor.
func (s *Shop) Authorize(req domain.Requirement, from string) domain.Decision {
	return domain.Guard(s.Auth.Access(), req, from)
}

// Reset returns every store to its empty state: cart and recently-viewed are
// cleared and the session ends.
func (s *Shop) Reset(ctx context.Context) error {
	return errors.Join(
		s.Cart.Clear(ctx),
		s.Recent.Clear(ctx),
		s.Auth.Logout(ctx),
	)
}
