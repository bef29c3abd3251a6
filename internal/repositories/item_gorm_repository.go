package repositories

import (
	"fmt"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetAll retrieves all items from the database.
func (r *GORMItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single item by its ID from the database.
func (r *GORMItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("item with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by ID %d: %w", id, err)
	}
	return &item, nil
}

// GetByName retrieves all items with the given name from the database.
func (r *GORMItemRepository) GetByName(name string) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id").Find(&items, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to get items by name %s: %w", name, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("items with name %s: %w", name, ErrNotFound)
	}
	return items, nil
}

// Create creates a new item in the database. Used by catalog seeding.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}
