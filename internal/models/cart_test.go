package models_test

import (
	"testing"

	"storefront/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func widget() models.Item {
	return models.Item{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
}

func TestCartAddItemRecomputesTotal(t *testing.T) {
	cart := &models.Cart{}
	item := widget()

	cart.AddItem(item)
	cart.AddItem(item)

	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("5.98")), "total was %s", cart.Total)
}

func TestCartRemoveItemRemovesSingleOccurrence(t *testing.T) {
	cart := &models.Cart{}
	item := widget()
	cart.AddItem(item)
	cart.AddItem(item)

	cart.RemoveItem(item)

	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.Total.Equal(item.Price))
}

func TestCartRemoveAbsentItemIsNoOp(t *testing.T) {
	cart := &models.Cart{}
	cart.AddItem(widget())

	other := models.Item{ID: 2, Name: "Square Widget", Price: decimal.RequireFromString("1.99")}
	cart.RemoveItem(other)

	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("2.99")))
}

func TestCartRemoveBeyondContentsFloorsAtZero(t *testing.T) {
	cart := &models.Cart{}
	item := widget()
	cart.AddItem(item)

	cart.RemoveItem(item)
	cart.RemoveItem(item)

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total.Equal(decimal.Zero), "total must never go negative, was %s", cart.Total)
}

func TestNewOrderFromCartCopiesItems(t *testing.T) {
	cart := &models.Cart{ID: 9}
	item := widget()
	cart.AddItem(item)
	cart.AddItem(item)
	user := &models.User{ID: 4, Username: "Alice"}

	order := models.NewOrderFromCart(user, cart)

	assert.Equal(t, user.ID, order.UserID)
	assert.True(t, order.Total.Equal(cart.Total))
	assert.Len(t, order.Items, 2)

	// Mutating the cart afterwards must not affect the snapshot.
	cart.RemoveItem(item)
	cart.RemoveItem(item)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("5.98")))
}
