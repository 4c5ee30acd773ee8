package shop

import (
	"context"
	"testing"

	"marketly/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_MergeAdd(t *testing.T) {
	ctx := context.Background()

	for _, q := range [][2]int{{1, 1}, {2, 5}, {3, 4}} {
		c, _ := newTestShop(t)
		require.NoError(t, c.Cart.Add(ctx, "7", q[0]))
		require.NoError(t, c.Cart.Add(ctx, "7", q[1]))
		assert.Equal(t, []domain.CartLine{{ProductID: "7", Quantity: q[0] + q[1]}}, c.Cart.Lines())
	}

	s, _ := newTestShop(t)
	require.NoError(t, s.Cart.Add(ctx, "1", 1))
	require.NoError(t, s.Cart.Add(ctx, "10", 2))
	assert.Equal(t, 3, s.Cart.Count())
	assert.Len(t, s.Cart.Lines(), 2)
}

func TestCart_AddRejectsBadInput(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()

	assert.True(t, domain.IsInvalidQuantityError(s.Cart.Add(ctx, "1", 0)))
	assert.True(t, domain.IsInvalidProductError(s.Cart.Add(ctx, "", 1)))
	err := s.Cart.AddMultiple(ctx, []domain.CartLine{{ProductID: "1", Quantity: 1}, {ProductID: "2", Quantity: -1}})
	assert.True(t, domain.IsInvalidQuantityError(err))

	assert.Zero(t, s.Cart.Count(), "a rejected batch adds nothing")
	assert.Zero(t, b.writesTo(CartKey))
}

func TestCart_AddMultipleIsOneWrite(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Cart.AddMultiple(ctx, []domain.CartLine{
		{ProductID: "A", Quantity: 2},
		{ProductID: "B", Quantity: 3},
		{ProductID: "A", Quantity: 1},
	}))
	assert.Equal(t, 1, b.writesTo(CartKey))
	assert.Equal(t, 3, s.Cart.Quantity("A"))
	assert.Equal(t, 3, s.Cart.Quantity("B"))
}

func TestCart_AddMultipleCommutes(t *testing.T) {
	ctx := context.Background()
	first := []domain.CartLine{{ProductID: "A", Quantity: 2}, {ProductID: "B", Quantity: 3}}
	reversed := []domain.CartLine{first[1], first[0]}

	quantities := func(batch []domain.CartLine) map[string]int {
		s, _ := newTestShop(t)
		require.NoError(t, s.Cart.AddMultiple(ctx, batch))
		require.NoError(t, s.Cart.AddMultiple(ctx, []domain.CartLine{{ProductID: "A", Quantity: 1}}))
		out := map[string]int{}
		for _, l := range s.Cart.Lines() {
			out[l.ProductID] = l.Quantity
		}
		return out
	}

	want := map[string]int{"A": 3, "B": 3}
	assert.Equal(t, want, quantities(first))
	assert.Equal(t, want, quantities(reversed))
}

func TestCart_UpdateQuantity(t *testing.T) {
	s, _ := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Cart.Add(ctx, "1", 4))

	require.NoError(t, s.Cart.UpdateQuantity(ctx, "1", 2))
	assert.Equal(t, 2, s.Cart.Quantity("1"), "update replaces, not adds")

	require.NoError(t, s.Cart.UpdateQuantity(ctx, "1", 0))
	assert.Equal(t, 1, s.Cart.Quantity("1"), "zero is clamped, never deletes")

	require.NoError(t, s.Cart.UpdateQuantity(ctx, "1", -7))
	assert.Equal(t, 1, s.Cart.Quantity("1"))

	require.NoError(t, s.Cart.UpdateQuantity(ctx, "absent", 5))
	assert.Zero(t, s.Cart.Quantity("absent"))
	assert.Len(t, s.Cart.Lines(), 1)
}

func TestCart_RemoveAndClear(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Cart.Add(ctx, "1", 1))
	require.NoError(t, s.Cart.Add(ctx, "2", 1))

	require.NoError(t, s.Cart.Remove(ctx, "absent"))
	assert.Equal(t, 2, s.Cart.Count())

	require.NoError(t, s.Cart.Remove(ctx, "1"))
	assert.Equal(t, []domain.CartLine{{ProductID: "2", Quantity: 1}}, s.Cart.Lines())

	require.NoError(t, s.Cart.Clear(ctx))
	assert.Zero(t, s.Cart.Count())
	assert.Zero(t, reload(b).Cart.Count(), "the empty cart is persisted")
}

func TestCart_FailedWriteKeepsState(t *testing.T) {
	s, b := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Cart.Add(ctx, "1", 1))

	b.fail = true
	assert.Error(t, s.Cart.Add(ctx, "1", 5))
	assert.Error(t, s.Cart.Clear(ctx))
	assert.Equal(t, 1, s.Cart.Quantity("1"))

	b.fail = false
	assert.Equal(t, 1, reload(b).Cart.Quantity("1"))
}

func TestCart_LinesIsACopy(t *testing.T) {
	s, _ := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Cart.Add(ctx, "1", 1))

	lines := s.Cart.Lines()
	lines[0].Quantity = 50
	assert.Equal(t, 1, s.Cart.Count())
}
