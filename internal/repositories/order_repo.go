package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// write-once snapshots; there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID uint) ([]models.Order, error)
}
