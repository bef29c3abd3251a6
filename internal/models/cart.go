package models

import "github.com/shopspring/decimal"

// Cart is a per-user mutable collection of item units awaiting order
// submission. Duplicates are allowed: one entry per unit. The Items slice is
// the in-memory working copy; Entries is the persisted row-per-unit form
// maintained by the GORM repository.
type Cart struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	Entries []CartEntry     `json:"-" gorm:"foreignKey:CartID"`
	Items   []Item          `json:"items" gorm:"-"`
	Total   decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
}

// CartEntry is a single item unit inside a cart. Insertion order is the
// primary key order.
type CartEntry struct {
	ID     uint `json:"-" gorm:"primaryKey"`
	CartID uint `json:"-" gorm:"index"`
	ItemID uint `json:"-"`
	Item   Item `json:"-" gorm:"foreignKey:ItemID"`
}

// AddItem appends one unit of the given item and recomputes the total.
func (c *Cart) AddItem(item Item) {
	c.Items = append(c.Items, item)
	c.Recalculate()
}

// RemoveItem removes one occurrence of the given item, if present, and
// recomputes the total. Removing an absent item is a no-op, never an error.
func (c *Cart) RemoveItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.Recalculate()
}

// Recalculate sets Total to the exact decimal sum of the current contents.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	c.Total = total
}

// IsEmpty reports whether the cart contains no item units.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
