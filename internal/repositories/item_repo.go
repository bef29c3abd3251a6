package repositories

import (
	"storefront/internal/models"
)

// ItemRepository defines the interface for catalog item data access. Items
// are created only by the seeding step; the API itself never mutates them.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	GetByName(name string) ([]models.Item, error)
	Create(item *models.Item) error
}
