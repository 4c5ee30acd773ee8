package shop

import (
	"context"
	"testing"

	"marketly/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_RequiresSession(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()
	p := product(t, s, "3")

	err := s.Wishlist.Add(ctx, p)
	assert.True(t, domain.IsNoSessionError(err))
	assert.Equal(t, domain.ReasonNoSession, domain.Reason(err))

	err = s.Wishlist.Remove(ctx, p.ID)
	assert.True(t, domain.IsNoSessionError(err))
	assert.False(t, s.Wishlist.Contains(p.ID))
	assert.Zero(t, b.writesTo(WishlistKey))
}

func TestWishlist_Uniqueness(t *testing.T) {
	s, _ := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	p := product(t, s, "3")

	require.NoError(t, s.Wishlist.Add(ctx, p))
	for i := 0; i < 3; i++ {
		err := s.Wishlist.Add(ctx, p)
		assert.True(t, domain.IsAlreadyPresentError(err))
		assert.Equal(t, domain.ReasonAlreadyPresent, domain.Reason(err))
	}
	assert.Len(t, s.Wishlist.Items(), 1)
	assert.True(t, s.Wishlist.Contains("3"))
}

func TestWishlist_RemovingLastItemPersistsEmpty(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))

	require.NoError(t, s.Wishlist.Add(ctx, product(t, s, "8")))
	require.NoError(t, s.Wishlist.Remove(ctx, "8"))
	require.NoError(t, s.Wishlist.Remove(ctx, "8"), "removing an absent id is not an error")

	r := reload(b)
	assert.False(t, r.Wishlist.Contains("8"), "a reload must not resurrect the removed item")
}

func TestWishlist_LogoutDiscards(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()
	p := product(t, s, "2")

	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	require.NoError(t, s.Wishlist.Add(ctx, p))

	require.NoError(t, s.Auth.Logout(ctx))
	assert.False(t, s.Wishlist.Contains(p.ID))
	_, stored, _ := b.Get(ctx, WishlistKey)
	assert.False(t, stored, "logout removes the stored wishlist")

	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	assert.Empty(t, s.Wishlist.Items(), "re-login does not restore the wishlist")
	assert.NoError(t, s.Wishlist.Add(ctx, p))
}

func TestWishlist_ItemsIsACopy(t *testing.T) {
	s, _ := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	require.NoError(t, s.Wishlist.Add(ctx, product(t, s, "2")))

	items := s.Wishlist.Items()
	items[0].ID = "tampered"
	assert.True(t, s.Wishlist.Contains("2"))
}

func TestWishlist_SwitchingIdentityDiscards(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	require.NoError(t, s.AddToWishlist(ctx, "2"))

	// same identity again keeps the wishlist
	require.NoError(t, s.Auth.Login(ctx, "CUSTOMER@test.com", "customer123"))
	assert.True(t, s.Wishlist.Contains("2"))

	require.NoError(t, s.Auth.Login(ctx, "staff@test.com", "staff123"))
	assert.True(t, s.Auth.IsStaff())
	assert.Empty(t, s.Wishlist.Items())
	_, stored, _ := b.Get(ctx, WishlistKey)
	assert.False(t, stored)

	require.NoError(t, s.AddToWishlist(ctx, "3"))
	require.NoError(t, s.Auth.Signup(ctx, "other@shop.com", "pw", "Other", ""))
	assert.Empty(t, s.Wishlist.Items(), "signup ends the previous session")
}

func TestWishlist_FailedLoginKeepsSession(t *testing.T) {
	s, _ := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	require.NoError(t, s.AddToWishlist(ctx, "2"))

	err := s.Auth.Login(ctx, "staff@test.com", "wrong")
	assert.True(t, domain.IsInvalidCredentialsError(err))
	assert.True(t, s.Auth.IsCustomer())
	assert.True(t, s.Wishlist.Contains("2"))
}

func TestWishlist_OrphanedAtStartIsDiscarded(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Auth.Login(ctx, "customer@test.com", "customer123"))
	require.NoError(t, s.AddToWishlist(ctx, "2"))
	// the session key is lost but the wishlist is still stored
	require.NoError(t, b.MemoryBackend.Set(ctx, SessionKey, "{broken"))

	r := reload(b)
	assert.False(t, r.Auth.HasSession())
	_, stored, _ := b.Get(ctx, WishlistKey)
	assert.False(t, stored)

	require.NoError(t, r.Auth.Login(ctx, "staff@test.com", "staff123"))
	assert.Empty(t, r.Wishlist.Items())
}
