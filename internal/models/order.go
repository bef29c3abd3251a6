package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart at submission time. Orders are
// created once and never mutated afterwards.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    uint            `json:"-" gorm:"index"`
	Lines     []OrderLine     `json:"-" gorm:"foreignKey:OrderID"`
	Items     []Item          `json:"items" gorm:"-"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderLine is a single item unit inside an order, the persisted
// row-per-unit form of the snapshot.
type OrderLine struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	OrderID string `json:"-" gorm:"index;type:varchar(36)"`
	ItemID  uint   `json:"-"`
	Item    Item   `json:"-" gorm:"foreignKey:ItemID"`
}

// NewOrderFromCart snapshots the user's cart into a new order. The item
// sequence and total are copied so later cart mutations cannot affect the
// order.
func NewOrderFromCart(user *User, cart *Cart) *Order {
	items := make([]Item, len(cart.Items))
	copy(items, cart.Items)
	return &Order{
		UserID: user.ID,
		Items:  items,
		Total:  cart.Total,
	}
}
