package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access. Save replaces
// the persisted contents with the cart's current item sequence; concurrent
// saves of the same cart are last-write-wins.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id uint) (*models.Cart, error)
	Save(cart *models.Cart) error
}
