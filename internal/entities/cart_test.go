package entities_test

import (
	"math/rand/v2"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_RandomMutationsKeepInvariants(t *testing.T) {
	products := []string{"p1", "p2", "p3", "p4"}
	rng := rand.New(rand.NewPCG(42, 1024))

	for run := 0; run < 50; run++ {
		cart := entities.NewCart("user")
		for step := 0; step < 200; step++ {
			pid := products[rng.IntN(len(products))]
			qty := rng.IntN(7) - 2

			switch rng.IntN(5) {
			case 0:
				err := cart.AddItem(pid, qty)
				if qty <= 0 {
					require.Error(t, err)
				} else {
					require.NoError(t, err)
				}
			case 1:
				cart.UpdateQuantity(pid, qty)
			case 2:
				cart.RemoveItem(pid)
			case 3:
				cart.SaveForLater(pid)
			case 4:
				cart.MoveToCart(pid)
			}

			require.NoError(t, cart.Validate())

			sum := 0
			for _, it := range cart.Items {
				sum += it.Quantity
			}
			require.Equal(t, sum, cart.TotalItems())
		}
	}
}

func TestCart_AddMergesExistingLine(t *testing.T) {
	cart := entities.NewCart("user")
	require.NoError(t, cart.AddItem("P", 2))
	require.NoError(t, cart.AddItem("P", 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	view := cart.View(map[string]entities.Product{
		"P": {ID: "P", Price: decimal.NewFromInt(100)},
	})
	assert.Equal(t, 5, view.TotalItems)
	assert.True(t, decimal.NewFromInt(500).Equal(view.TotalPrice), "got %s", view.TotalPrice)
}

func TestCart_RemoveOnlyItem(t *testing.T) {
	cart := entities.NewCart("user")
	require.NoError(t, cart.AddItem("P", 2))

	cart.RemoveItem("P")

	view := cart.View(map[string]entities.Product{"P": {ID: "P", Price: decimal.NewFromInt(100)}})
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.True(t, view.TotalPrice.IsZero())
}

func TestCart_UpdateToZeroEqualsRemove(t *testing.T) {
	build := func() entities.Cart {
		c := entities.NewCart("user")
		require.NoError(t, c.AddItem("a", 1))
		require.NoError(t, c.AddItem("b", 4))
		require.NoError(t, c.AddItem("c", 2))
		return c
	}

	updated := build()
	updated.UpdateQuantity("b", 0)

	removed := build()
	removed.RemoveItem("b")

	assert.Equal(t, removed, updated)
}

func TestCart_UpdateQuantity(t *testing.T) {
	testCases := []struct {
		name string
		pid  string
		qty  int
		want []entities.LineItem
	}{
		{name: "replaces quantity", pid: "a", qty: 7, want: []entities.LineItem{{ProductID: "a", Quantity: 7}}},
		{name: "negative removes", pid: "a", qty: -1, want: []entities.LineItem{}},
		{name: "absent product is a no-op", pid: "zzz", qty: 3, want: []entities.LineItem{{ProductID: "a", Quantity: 2}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := entities.NewCart("user")
			require.NoError(t, c.AddItem("a", 2))
			c.UpdateQuantity(tc.pid, tc.qty)
			assert.Equal(t, tc.want, c.Items)
		})
	}
}

func TestCart_SaveForLaterThenMoveToCartRestoresLine(t *testing.T) {
	c := entities.NewCart("user")
	require.NoError(t, c.AddItem("a", 3))
	require.NoError(t, c.AddItem("b", 1))

	c.SaveForLater("a")
	require.Equal(t, []entities.LineItem{{ProductID: "a", Quantity: 3}}, c.SavedForLater)
	require.Equal(t, []entities.LineItem{{ProductID: "b", Quantity: 1}}, c.Items)

	c.MoveToCart("a")
	assert.Empty(t, c.SavedForLater)
	assert.ElementsMatch(t, []entities.LineItem{{ProductID: "a", Quantity: 3}, {ProductID: "b", Quantity: 1}}, c.Items)
	assert.Equal(t, 4, c.TotalItems())
}

func TestCart_MoveMergesIntoExistingLine(t *testing.T) {
	c := entities.NewCart("user")
	require.NoError(t, c.AddItem("a", 2))
	c.SaveForLater("a")
	require.NoError(t, c.AddItem("a", 1))

	c.SaveForLater("a")

	assert.Empty(t, c.Items)
	assert.Equal(t, []entities.LineItem{{ProductID: "a", Quantity: 3}}, c.SavedForLater)
}

func TestCart_MissingProductCountsItemsNotPrice(t *testing.T) {
	c := entities.NewCart("user")
	require.NoError(t, c.AddItem("gone", 2))
	require.NoError(t, c.AddItem("p", 1))

	view := c.View(map[string]entities.Product{"p": {ID: "p", Price: decimal.RequireFromString("9.99")}})

	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, decimal.RequireFromString("9.99").Equal(view.TotalPrice))
	assert.Nil(t, view.Items[0].Product)
}

func TestCart_PriceIsLive(t *testing.T) {
	c := entities.NewCart("user")
	require.NoError(t, c.AddItem("p", 2))

	before := c.View(map[string]entities.Product{"p": {ID: "p", Price: decimal.NewFromInt(10)}})
	after := c.View(map[string]entities.Product{"p": {ID: "p", Price: decimal.NewFromInt(15)}})

	assert.True(t, decimal.NewFromInt(20).Equal(before.TotalPrice))
	assert.True(t, decimal.NewFromInt(30).Equal(after.TotalPrice))
}

func TestParseCartAction(t *testing.T) {
	for _, s := range []string{"add", "update", "remove", "saveForLater", "moveToCart"} {
		a, err := entities.ParseCartAction(s)
		require.NoError(t, err)
		assert.Equal(t, entities.CartAction(s), a)
	}

	_, err := entities.ParseCartAction("explode")
	var ve *entities.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCart_ProductIDs(t *testing.T) {
	c := entities.NewCart("user")
	require.NoError(t, c.AddItem("a", 1))
	require.NoError(t, c.AddItem("b", 1))
	c.SaveForLater("b")
	require.NoError(t, c.AddItem("b", 1))

	assert.Equal(t, []string{"a", "b"}, c.ProductIDs())
}
